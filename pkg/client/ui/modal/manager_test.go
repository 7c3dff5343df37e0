package modal

import (
	"bytes"
	"io"
	"log"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(log.New(io.Discard, "", 0), DefaultBuilders())
}

func errorRequest(title string) Request {
	return Request{
		Type:    ModalError,
		Options: ErrorOptions{Title: title, Message: "boom"},
	}
}

// drain runs a command tree and returns any HiddenMsg it produced
func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	var msgs []tea.Msg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			msgs = append(msgs, drain(t, sub)...)
		}
	default:
		msgs = append(msgs, msg)
	}
	return msgs
}

func TestManagerStartsUnbound(t *testing.T) {
	m := newTestManager()

	require.Equal(t, StateNone, m.State())

	// Show before Bind queues without opening
	m.Show(errorRequest("early"))
	assert.Equal(t, StateNone, m.State())
	assert.Equal(t, 1, m.QueueLen())
	assert.Nil(t, m.Active())
}

func TestBindReleasesQueuedRequest(t *testing.T) {
	m := newTestManager()
	m.Show(errorRequest("early"))

	m.Bind()

	assert.Equal(t, StateOpen, m.State())
	require.NotNil(t, m.Active())
	assert.Equal(t, ModalError, m.ActiveType())
	assert.Equal(t, 0, m.QueueLen())
}

func TestShowWhileOpenQueues(t *testing.T) {
	m := newTestManager()
	m.Bind()

	m.Show(errorRequest("first"))
	require.Equal(t, StateOpen, m.State())

	m.Show(errorRequest("second"))
	m.Show(errorRequest("third"))

	assert.Equal(t, StateOpen, m.State())
	assert.Equal(t, 2, m.QueueLen())
	assert.Equal(t, "first", m.Active().(*ErrorModal).title)
}

func TestFIFOOrderAcrossHideCycles(t *testing.T) {
	m := newTestManager()
	m.Bind()

	for _, title := range []string{"a", "b", "c"} {
		m.Show(errorRequest(title))
	}

	var surfaced []string
	for m.Active() != nil {
		surfaced = append(surfaced, m.Active().(*ErrorModal).title)
		m.Hide()
		m.OnHidden()
	}

	assert.Equal(t, []string{"a", "b", "c"}, surfaced)
	assert.Equal(t, StateReady, m.State())
}

func TestUnsupportedTypeDroppedWithoutStateChange(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(log.New(&buf, "", 0), DefaultBuilders())
	m.Bind()
	m.Show(errorRequest("first"))

	before := m.State()
	beforeQueue := m.QueueLen()

	cmd := m.Show(Request{Type: ModalType(99)})

	assert.Nil(t, cmd)
	assert.Equal(t, before, m.State())
	assert.Equal(t, beforeQueue, m.QueueLen())
	assert.Contains(t, buf.String(), "unsupported modal type")
}

func TestBadOptionsDroppedAndNextShown(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(log.New(&buf, "", 0), DefaultBuilders())
	m.Bind()

	// Wrong options struct fails the builder; the following request
	// should still surface
	m.Show(Request{Type: ModalError, Options: ConfirmOptions{}})
	m.Show(errorRequest("good"))

	require.Equal(t, StateOpen, m.State())
	assert.Equal(t, "good", m.Active().(*ErrorModal).title)
	assert.Contains(t, buf.String(), "building Error failed")
}

func TestHideInvokesCloseCallbackAndSchedulesHidden(t *testing.T) {
	m := newTestManager()
	m.Bind()

	closed := false
	req := errorRequest("x")
	req.OnClose = func() tea.Cmd {
		closed = true
		return nil
	}
	m.Show(req)

	cmd := m.Hide()

	assert.True(t, closed)
	assert.Equal(t, StateClosing, m.State())

	msgs := drain(t, cmd)
	require.Len(t, msgs, 1)
	assert.IsType(t, HiddenMsg{}, msgs[0])
}

func TestHideOutsideOpenIsNoop(t *testing.T) {
	m := newTestManager()

	assert.Nil(t, m.Hide())
	assert.Equal(t, StateNone, m.State())

	m.Bind()
	assert.Nil(t, m.Hide())
	assert.Equal(t, StateReady, m.State())
}

func TestOnHiddenResetsTransientState(t *testing.T) {
	m := newTestManager()
	m.Bind()

	confirm := false
	m.Show(Request{
		Type: ModalConfirm,
		Options: ConfirmOptions{
			Title:         "Delete",
			CheckboxLabel: "Also for everyone",
			OnConfirm: func(checked bool) tea.Cmd {
				confirm = checked
				return nil
			},
		},
	})

	cm := m.Active().(*ConfirmModal)
	cm.HandleKey(tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, cm.Checked())

	m.Hide()
	m.OnHidden()

	assert.False(t, cm.Checked(), "checkbox must be cleared after hiding")
	assert.Equal(t, StateReady, m.State())
	assert.Nil(t, m.Active())
	assert.False(t, confirm)
}

func TestOnHiddenIgnoredWhileOpen(t *testing.T) {
	m := newTestManager()
	m.Bind()

	closed := false
	req := errorRequest("x")
	req.OnClose = func() tea.Cmd {
		closed = true
		return nil
	}
	m.Show(req)

	// A hidden notification without a preceding Hide must not discard
	// the visible modal or skip its close callback
	assert.Nil(t, m.OnHidden())
	assert.Equal(t, StateOpen, m.State())
	assert.NotNil(t, m.Active())
	assert.False(t, closed)

	m.Hide()
	m.OnHidden()
	assert.True(t, closed)
	assert.Equal(t, StateReady, m.State())
}

func TestOnHiddenSurfacesNextRequest(t *testing.T) {
	m := newTestManager()
	m.Bind()

	m.Show(errorRequest("a"))
	m.Show(errorRequest("b"))

	m.Hide()
	assert.Equal(t, StateClosing, m.State())

	// The dying modal still renders and swallows keys while closing
	assert.NotEmpty(t, m.Render(80, 24))
	handled, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, handled)
	assert.Equal(t, StateClosing, m.State())

	m.OnHidden()
	assert.Equal(t, StateOpen, m.State())
	assert.Equal(t, "b", m.Active().(*ErrorModal).title)
}

func TestHandleKeyClosesModal(t *testing.T) {
	m := newTestManager()
	m.Bind()
	m.Show(errorRequest("x"))

	handled, cmd := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, handled)
	assert.Equal(t, StateClosing, m.State())

	msgs := drain(t, cmd)
	require.Len(t, msgs, 1)
	assert.IsType(t, HiddenMsg{}, msgs[0])
}

func TestHandleKeyWithoutModal(t *testing.T) {
	m := newTestManager()
	m.Bind()

	handled, cmd := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, handled)
	assert.Nil(t, cmd)
}
