package modal

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MuteOptions configures a MuteModal request.
type MuteOptions struct {
	ConversationID    uint64
	ConversationTitle string
	OnMute            func(conversationID uint64, d time.Duration) tea.Cmd
}

type muteChoice struct {
	label    string
	duration time.Duration // 0 means until unmuted
}

var muteChoices = []muteChoice{
	{"15 minutes", 15 * time.Minute},
	{"1 hour", time.Hour},
	{"8 hours", 8 * time.Hour},
	{"24 hours", 24 * time.Hour},
	{"Until I turn it back on", 0},
}

// MuteModal selects a mute duration for a conversation
type MuteModal struct {
	opts   MuteOptions
	cursor int
}

// NewMuteModal creates a new mute duration modal
func NewMuteModal(opts MuteOptions) *MuteModal {
	return &MuteModal{opts: opts}
}

// Type returns the modal type
func (m *MuteModal) Type() ModalType {
	return ModalMute
}

// Reset clears the transient cursor state
func (m *MuteModal) Reset() {
	m.cursor = 0
}

// HandleKey processes keyboard input
func (m *MuteModal) HandleKey(msg tea.KeyMsg) (bool, Modal, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return true, m, nil

	case "down", "j":
		if m.cursor < len(muteChoices)-1 {
			m.cursor++
		}
		return true, m, nil

	case "enter":
		var cmd tea.Cmd
		if m.opts.OnMute != nil {
			cmd = m.opts.OnMute(m.opts.ConversationID, muteChoices[m.cursor].duration)
		}
		return true, nil, cmd

	case "esc":
		return true, nil, nil
	}
	return true, m, nil
}

// Render returns the modal content
func (m *MuteModal) Render(width, height int) string {
	accent := lipgloss.Color("205")

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accent).
		MarginBottom(1)

	itemStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	selectedStyle := itemStyle.
		Bold(true).
		Foreground(lipgloss.Color("230")).
		Background(accent)

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	var content string
	content += titleStyle.Render("Mute "+m.opts.ConversationTitle) + "\n\n"
	for i, c := range muteChoices {
		line := "  " + c.label
		if i == m.cursor {
			line = selectedStyle.Render("> " + c.label)
		} else {
			line = itemStyle.Render(line)
		}
		content += line + "\n"
	}
	content += "\n" + hintStyle.Render("Enter to mute, Esc to cancel")

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
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
func (m *MuteModal) IsBlockingInput() bool {
	return true
}
