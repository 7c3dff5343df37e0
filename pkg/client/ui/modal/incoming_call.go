package modal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CallAcceptedMsg is sent when the user accepts an incoming call
type CallAcceptedMsg struct {
	CallID uint64
}

// CallDeclinedMsg is sent when the user declines an incoming call
type CallDeclinedMsg struct {
	CallID uint64
}

// IncomingCallOptions configures an IncomingCallModal request.
type IncomingCallOptions struct {
	CallID   uint64
	FromName string
	IsVideo  bool
}

// IncomingCallModal surfaces a ringing call with accept/decline options
type IncomingCallModal struct {
	opts   IncomingCallOptions
	cursor int // 0 = accept, 1 = decline
}

// NewIncomingCallModal creates a new incoming call modal
func NewIncomingCallModal(opts IncomingCallOptions) *IncomingCallModal {
	return &IncomingCallModal{opts: opts}
}

// Type returns the modal type
func (m *IncomingCallModal) Type() ModalType {
	return ModalIncomingCall
}

// Reset clears the transient cursor state
func (m *IncomingCallModal) Reset() {
	m.cursor = 0
}

// HandleKey processes keyboard input
func (m *IncomingCallModal) HandleKey(msg tea.KeyMsg) (bool, Modal, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "tab":
		m.cursor = 1 - m.cursor
		return true, m, nil

	case "a":
		return true, nil, func() tea.Msg { return CallAcceptedMsg{CallID: m.opts.CallID} }

	case "d", "esc":
		return true, nil, func() tea.Msg { return CallDeclinedMsg{CallID: m.opts.CallID} }

	case "enter":
		if m.cursor == 0 {
			return true, nil, func() tea.Msg { return CallAcceptedMsg{CallID: m.opts.CallID} }
		}
		return true, nil, func() tea.Msg { return CallDeclinedMsg{CallID: m.opts.CallID} }
	}
	return true, m, nil
}

// Render returns the modal content
func (m *IncomingCallModal) Render(width, height int) string {
	accent := lipgloss.Color("120")

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accent).
		MarginBottom(1).
		Align(lipgloss.Center)

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	buttonStyle := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(lipgloss.Color("252"))

	selectedButtonStyle := buttonStyle.
		Bold(true).
		Foreground(lipgloss.Color("230")).
		Background(accent)

	kind := "Voice call"
	if m.opts.IsVideo {
		kind = "Video call"
	}

	var content string
	content += titleStyle.Render("Incoming call") + "\n\n"
	content += messageStyle.Render(kind+" from "+m.opts.FromName) + "\n\n"

	accept := buttonStyle.Render("Accept (a)")
	decline := buttonStyle.Render("Decline (d)")
	if m.cursor == 0 {
		accept = selectedButtonStyle.Render("Accept (a)")
	} else {
		decline = selectedButtonStyle.Render("Decline (d)")
	}
	content += lipgloss.JoinHorizontal(lipgloss.Top, accept, "  ", decline)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(accent).
		Padding(1, 2)

	modalWidth := 46
	if width < modalWidth+4 {
		modalWidth = width - 4
	}

	box := borderStyle.Width(modalWidth - 4).Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// IsBlockingInput returns whether this modal blocks input to the main view
func (m *IncomingCallModal) IsBlockingInput() bool {
	return true
}
