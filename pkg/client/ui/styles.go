package ui

import "github.com/charmbracelet/lipgloss"

// applyAccent recolors the accent-bearing styles from the configured
// accent color.
func applyAccent(accent string) {
	if accent == "" {
		return
	}
	c := lipgloss.Color(accent)
	HeaderStyle = HeaderStyle.Background(c)
	SidebarActiveTabStyle = SidebarActiveTabStyle.Background(c)
	SidebarSelectedStyle = SidebarSelectedStyle.Background(c)
	MentionSelectedStyle = MentionSelectedStyle.Background(c)
}

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("205")).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("120"))

	SidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	SidebarTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	SidebarActiveTabStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("205")).
				Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	SidebarSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("205"))

	SidebarPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)

	ConversationPaneStyle = lipgloss.NewStyle().
				Padding(0, 1)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("240"))
)
