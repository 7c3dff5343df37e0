package modal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmOptions configures a ConfirmModal request. CheckboxLabel is
// optional; when set the modal shows a toggleable checkbox whose final
// value is passed to OnConfirm (e.g. "Also delete for everyone").
type ConfirmOptions struct {
	Title         string
	Message       string
	CheckboxLabel string
	OnConfirm     func(checked bool) tea.Cmd
	OnCancel      func() tea.Cmd
}

// ConfirmModal asks a yes/no question, optionally with a checkbox
type ConfirmModal struct {
	opts    ConfirmOptions
	checked bool
	cursor  int // 0 = confirm, 1 = cancel
}

// NewConfirmModal creates a new confirmation modal
func NewConfirmModal(opts ConfirmOptions) *ConfirmModal {
	return &ConfirmModal{opts: opts}
}

// Type returns the modal type
func (m *ConfirmModal) Type() ModalType {
	return ModalConfirm
}

// Reset clears the transient checkbox and cursor state
func (m *ConfirmModal) Reset() {
	m.checked = false
	m.cursor = 0
}

// Checked returns the current checkbox value
func (m *ConfirmModal) Checked() bool {
	return m.checked
}

// HandleKey processes keyboard input
func (m *ConfirmModal) HandleKey(msg tea.KeyMsg) (bool, Modal, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "tab":
		m.cursor = 1 - m.cursor
		return true, m, nil

	case " ":
		if m.opts.CheckboxLabel != "" {
			m.checked = !m.checked
		}
		return true, m, nil

	case "enter":
		if m.cursor == 0 {
			var cmd tea.Cmd
			if m.opts.OnConfirm != nil {
				cmd = m.opts.OnConfirm(m.checked)
			}
			return true, nil, cmd
		}
		var cmd tea.Cmd
		if m.opts.OnCancel != nil {
			cmd = m.opts.OnCancel()
		}
		return true, nil, cmd

	case "esc":
		var cmd tea.Cmd
		if m.opts.OnCancel != nil {
			cmd = m.opts.OnCancel()
		}
		return true, nil, cmd
	}
	return true, m, nil
}

// Render returns the modal content
func (m *ConfirmModal) Render(width, height int) string {
	accent := lipgloss.Color("205")

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accent).
		MarginBottom(1)

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	buttonStyle := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(lipgloss.Color("252"))

	selectedButtonStyle := buttonStyle.
		Bold(true).
		Foreground(lipgloss.Color("230")).
		Background(accent)

	var content string
	content += titleStyle.Render(m.opts.Title) + "\n\n"
	content += messageStyle.Render(m.opts.Message) + "\n\n"

	if m.opts.CheckboxLabel != "" {
		box := "[ ]"
		if m.checked {
			box = "[x]"
		}
		content += messageStyle.Render(box+" "+m.opts.CheckboxLabel+"  (space to toggle)") + "\n\n"
	}

	confirm := buttonStyle.Render("Confirm")
	cancel := buttonStyle.Render("Cancel")
	if m.cursor == 0 {
		confirm = selectedButtonStyle.Render("Confirm")
	} else {
		cancel = selectedButtonStyle.Render("Cancel")
	}
	content += lipgloss.JoinHorizontal(lipgloss.Top, confirm, "  ", cancel)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2)

	modalWidth := 54
	if width < modalWidth+4 {
		modalWidth = width - 4
	}

	box := borderStyle.Width(modalWidth - 4).Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// IsBlockingInput returns whether this modal blocks input to the main view
func (m *ConfirmModal) IsBlockingInput() bool {
	return true
}
