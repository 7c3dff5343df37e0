package modal

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmModalCheckboxToggle(t *testing.T) {
	var got *bool
	m := NewConfirmModal(ConfirmOptions{
		Title:         "Delete",
		CheckboxLabel: "Also for everyone",
		OnConfirm: func(checked bool) tea.Cmd {
			got = &checked
			return nil
		},
	})

	m.HandleKey(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.Checked())
	m.HandleKey(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.Checked())
	m.HandleKey(tea.KeyMsg{Type: tea.KeySpace})

	handled, next, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, handled)
	assert.Nil(t, next, "confirm should close the modal")
	require.NotNil(t, got)
	assert.True(t, *got)
}

func TestConfirmModalWithoutCheckboxIgnoresSpace(t *testing.T) {
	m := NewConfirmModal(ConfirmOptions{Title: "Sure?"})

	m.HandleKey(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.Checked())
}

func TestConfirmModalCancel(t *testing.T) {
	cancelled := false
	m := NewConfirmModal(ConfirmOptions{
		Title:    "Sure?",
		OnCancel: func() tea.Cmd { cancelled = true; return nil },
	})

	// Move cursor to Cancel and press enter
	m.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	_, next, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, next)
	assert.True(t, cancelled)
}

func TestRenameModalRejectsEmptyTitle(t *testing.T) {
	called := false
	m := NewRenameModal(RenameOptions{
		ConversationID: 7,
		OnRename:       func(uint64, string) tea.Cmd { called = true; return nil },
	})

	handled, next, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, handled)
	assert.Same(t, m, next, "modal must stay open on validation failure")
	assert.False(t, called)
	assert.NotEmpty(t, m.errorMessage)
}

func TestRenameModalSubmits(t *testing.T) {
	var gotID uint64
	var gotTitle string
	m := NewRenameModal(RenameOptions{
		ConversationID: 7,
		OnRename: func(id uint64, title string) tea.Cmd {
			gotID = id
			gotTitle = title
			return nil
		},
	})

	for _, r := range "design chat" {
		m.HandleKey(keyRunes(string(r)))
	}
	_, next, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, next)
	assert.Equal(t, uint64(7), gotID)
	assert.Equal(t, "design chat", gotTitle)
}

func TestRenameModalInputCappedAtLimit(t *testing.T) {
	m := NewRenameModal(RenameOptions{})

	for i := 0; i < 70; i++ {
		m.HandleKey(keyRunes("x"))
	}
	assert.Len(t, []rune(m.Value()), 60, "textinput CharLimit caps the title")
}

func TestRenameModalResetClearsInput(t *testing.T) {
	m := NewRenameModal(RenameOptions{CurrentTitle: "old"})

	m.HandleKey(keyRunes("x"))
	require.Equal(t, "x", m.Value())

	m.Reset()
	assert.Empty(t, m.Value())
}

func TestMuteModalCursorClamped(t *testing.T) {
	m := NewMuteModal(MuteOptions{ConversationTitle: "standup"})

	for i := 0; i < 20; i++ {
		m.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(muteChoices)-1, m.cursor)

	for i := 0; i < 20; i++ {
		m.HandleKey(tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, 0, m.cursor)
}

func TestMuteModalSelectsDuration(t *testing.T) {
	var gotDuration time.Duration
	m := NewMuteModal(MuteOptions{
		ConversationID: 3,
		OnMute: func(_ uint64, d time.Duration) tea.Cmd {
			gotDuration = d
			return nil
		},
	})

	m.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	_, next, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, next)
	assert.Equal(t, time.Hour, gotDuration)
}

func TestIncomingCallAcceptAndDecline(t *testing.T) {
	m := NewIncomingCallModal(IncomingCallOptions{CallID: 42, FromName: "dana"})

	_, next, cmd := m.HandleKey(keyRunes("a"))
	assert.Nil(t, next)
	require.NotNil(t, cmd)
	assert.Equal(t, CallAcceptedMsg{CallID: 42}, cmd())

	m = NewIncomingCallModal(IncomingCallOptions{CallID: 42, FromName: "dana"})
	_, next, cmd = m.HandleKey(keyRunes("d"))
	assert.Nil(t, next)
	require.NotNil(t, cmd)
	assert.Equal(t, CallDeclinedMsg{CallID: 42}, cmd())
}

func TestModalTypeString(t *testing.T) {
	tests := []struct {
		mt   ModalType
		want string
	}{
		{ModalNone, "None"},
		{ModalError, "Error"},
		{ModalConfirm, "Confirm"},
		{ModalRename, "Rename"},
		{ModalMute, "Mute"},
		{ModalIncomingCall, "IncomingCall"},
		{ModalType(99), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mt.String())
	}
}
