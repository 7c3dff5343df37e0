package ui

import (
	"io"
	"log"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mglenn/parley/pkg/client"
	"github.com/mglenn/parley/pkg/client/event"
	"github.com/mglenn/parley/pkg/config"
)

// keyRunes builds a plain character key press
func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// NewTestModel builds a model over the standard test fixtures
func NewTestModel(t *testing.T) Model {
	t.Helper()
	repo := testConversationRepo()
	testUsers := testUserRepo()
	state := client.NewMockState()
	logger := log.New(io.Discard, "", 0)
	bus := event.NewBus(logger)
	nav := client.NewNav(repo, logger)

	cfg := config.DefaultConfig()
	cfg.Notifications.Enabled = false // No desktop popups from tests

	return NewModel(Deps{
		Conversations: repo,
		Users:         testUsers,
		State:         state,
		Nav:           nav,
		Bus:           bus,
		Logger:        logger,
		Config:        cfg,
	})
}

// applyWindowSize delivers the initial size message, which binds the
// modal manager
func applyWindowSize(m Model, w, h int) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}
