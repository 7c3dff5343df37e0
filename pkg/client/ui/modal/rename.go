package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RenameOptions configures a RenameModal request.
type RenameOptions struct {
	ConversationID uint64
	CurrentTitle   string
	OnRename       func(conversationID uint64, title string) tea.Cmd
}

// RenameModal edits a conversation title
type RenameModal struct {
	opts         RenameOptions
	input        textinput.Model
	errorMessage string
}

// NewRenameModal creates a new rename modal
func NewRenameModal(opts RenameOptions) *RenameModal {
	ti := textinput.New()
	ti.Placeholder = opts.CurrentTitle
	ti.CharLimit = 60
	ti.Width = 40
	ti.Focus()
	return &RenameModal{
		opts:  opts,
		input: ti,
	}
}

// Type returns the modal type
func (m *RenameModal) Type() ModalType {
	return ModalRename
}

// Reset clears the transient input state
func (m *RenameModal) Reset() {
	m.input.SetValue("")
	m.errorMessage = ""
}

// Value returns the current input value
func (m *RenameModal) Value() string {
	return m.input.Value()
}

// HandleKey processes keyboard input
func (m *RenameModal) HandleKey(msg tea.KeyMsg) (bool, Modal, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.errorMessage = "Title cannot be empty"
			return true, m, nil
		}
		var cmd tea.Cmd
		if m.opts.OnRename != nil {
			cmd = m.opts.OnRename(m.opts.ConversationID, title)
		}
		return true, nil, cmd

	case "esc":
		return true, nil, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return true, m, cmd
}

// Render returns the modal content
func (m *RenameModal) Render(width, height int) string {
	accent := lipgloss.Color("205")

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accent).
		MarginBottom(1)

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF5555"))

	var content string
	content += titleStyle.Render("Rename conversation") + "\n\n"
	content += m.input.View() + "\n\n"
	if m.errorMessage != "" {
		content += errorStyle.Render(m.errorMessage) + "\n\n"
	}
	content += hintStyle.Render("Enter to save, Esc to cancel")

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2)

	modalWidth := 52
	if width < modalWidth+4 {
		modalWidth = width - 4
	}

	box := borderStyle.Width(modalWidth - 4).Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// IsBlockingInput returns whether this modal blocks input to the main view
func (m *RenameModal) IsBlockingInput() bool {
	return true
}
