package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mglenn/parley/pkg/client/event"
	"github.com/mglenn/parley/pkg/client/ui/modal"
)

// Messages produced by modal callbacks. Repository mutations happen
// here in the update loop, never inside the modal itself.
type renameSubmittedMsg struct {
	conversationID uint64
	title          string
}

type muteSubmittedMsg struct {
	conversationID uint64
	duration       time.Duration
}

type deleteConfirmedMsg struct {
	conversationID uint64
	forEveryone    bool
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.modals.Bind()

	case modal.HiddenMsg:
		return m, m.modals.OnHidden()

	case PublishMsg:
		m.bus.Publish(msg.Event, msg.Payload)
		return m, nil

	case modal.CallAcceptedMsg:
		m.statusMessage = fmt.Sprintf("Joining call %d...", msg.CallID)
		return m, nil

	case modal.CallDeclinedMsg:
		m.statusMessage = "Call declined"
		return m, nil

	case renameSubmittedMsg:
		if err := m.repo.Rename(msg.conversationID, msg.title); err != nil {
			m.logger.Printf("[WARN] ui: rename failed: %v", err)
			m.statusMessage = "Rename failed"
			return m, nil
		}
		m.bus.Publish(event.ConversationUpdated, msg.conversationID)
		m.statusMessage = fmt.Sprintf("Renamed to %q", msg.title)
		return m, nil

	case muteSubmittedMsg:
		until := int64(-1)
		if msg.duration > 0 {
			until = time.Now().Add(msg.duration).UnixMilli()
		}
		if err := m.repo.Mute(msg.conversationID, until); err != nil {
			m.logger.Printf("[WARN] ui: mute failed: %v", err)
			m.statusMessage = "Mute failed"
			return m, nil
		}
		if err := m.state.SetMutedUntil(msg.conversationID, until); err != nil {
			m.logger.Printf("[WARN] ui: persisting mute failed: %v", err)
		}
		m.bus.Publish(event.ConversationUpdated, msg.conversationID)
		m.statusMessage = "Conversation muted"
		return m, nil

	case deleteConfirmedMsg:
		if err := m.repo.Delete(msg.conversationID, msg.forEveryone); err != nil {
			m.logger.Printf("[WARN] ui: delete failed: %v", err)
			m.statusMessage = "Delete failed"
			return m, nil
		}
		m.bus.Publish(event.ConversationUpdated, msg.conversationID)
		m.statusMessage = "Conversation deleted"
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.sidebar.Detach()
		return m, tea.Quit
	}

	// Modals eat input first
	if handled, cmd := m.modals.HandleKey(msg); handled {
		return m, cmd
	}

	// Mention popup intercepts keys only while it has suggestions
	if handled, commit := m.mentions.HandleKey(msg); handled {
		if commit != nil {
			value, pos := m.mentions.Commit(m.input.Value(), *commit)
			m.input.SetValue(value)
			m.input.SetCursor(pos)
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+s":
		m.sidebarFocus = !m.sidebarFocus
		if m.sidebarFocus {
			m.input.Blur()
			return m, nil
		}
		return m, m.input.Focus()
	}

	if m.sidebarFocus {
		return m.handleSidebarKeys(msg)
	}

	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.input.SetValue("")
		m.mentions.Clear()
		m.statusMessage = "Sent: " + text
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.mentions.Refresh(m.input.Value(), m.input.Position())
	return m, cmd
}

// handleSidebarKeys routes keys while the sidebar has focus. Conversation
// actions (rename, mute, delete) queue modals through the bus so they
// take the same path as externally triggered ones.
func (m Model) handleSidebarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.sidebar.HandleKey(msg); handled {
		return m, cmd
	}

	switch msg.String() {
	case "r":
		if c, ok := m.sidebar.Selected(); ok {
			m.bus.Publish(event.ShowModal, modal.Request{
				Type: modal.ModalRename,
				Options: modal.RenameOptions{
					ConversationID: c.ID,
					CurrentTitle:   c.Title,
					OnRename: func(id uint64, title string) tea.Cmd {
						return func() tea.Msg {
							return renameSubmittedMsg{conversationID: id, title: title}
						}
					},
				},
			})
		}
		return m, nil

	case "m":
		if c, ok := m.sidebar.Selected(); ok {
			m.bus.Publish(event.ShowModal, modal.Request{
				Type: modal.ModalMute,
				Options: modal.MuteOptions{
					ConversationID:    c.ID,
					ConversationTitle: c.Title,
					OnMute: func(id uint64, d time.Duration) tea.Cmd {
						return func() tea.Msg {
							return muteSubmittedMsg{conversationID: id, duration: d}
						}
					},
				},
			})
		}
		return m, nil

	case "x":
		if c, ok := m.sidebar.Selected(); ok {
			checkbox := ""
			if c.IsGroup {
				checkbox = "Also delete for everyone"
			}
			m.bus.Publish(event.ShowModal, modal.Request{
				Type: modal.ModalConfirm,
				Options: modal.ConfirmOptions{
					Title:         "Delete conversation",
					Message:       fmt.Sprintf("Delete %q? This cannot be undone.", c.Title),
					CheckboxLabel: checkbox,
					OnConfirm: func(checked bool) tea.Cmd {
						return func() tea.Msg {
							return deleteConfirmedMsg{conversationID: c.ID, forEveryone: checked}
						}
					},
				},
			})
		}
		return m, nil
	}
	return m, nil
}
