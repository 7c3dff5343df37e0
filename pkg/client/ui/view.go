package ui

import (
	"fmt"

	"github.com/76creates/stickers/flexbox"
	"github.com/charmbracelet/lipgloss"
)

// View renders the current view
func (m Model) View() string {
	// Don't render until we have dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	baseView := m.renderMain()

	// A modal in OPEN or CLOSING state overlays everything else
	if m.modals.Active() != nil {
		return m.modals.Render(m.width, m.height)
	}

	return baseView
}

// renderMain renders the sidebar and conversation pane using flexbox
// for stable layout
func (m Model) renderMain() string {
	layout := flexbox.NewHorizontal(m.width, m.height-3) // minus header(1) + footer(1) + spacing(1)

	sidebarWidth := m.sidebarWidth
	if sidebarWidth > m.width/2 {
		sidebarWidth = m.width / 2
	}

	sidebarCol := layout.NewColumn().AddCells(
		flexbox.NewCell(1, 1).
			SetStyle(SidebarStyle.Width(sidebarWidth).Height(m.height - 4)).
			SetContent(m.sidebar.Render(sidebarWidth-2, m.height-4, m.sidebarFocus)),
	)

	mainCol := layout.NewColumn().AddCells(
		flexbox.NewCell(3, 1).
			SetStyle(ConversationPaneStyle).
			SetContent(m.renderConversationPane()),
	)

	layout.AddColumns([]*flexbox.Column{sidebarCol, mainCol})

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		layout.Render(),
		m.renderFooter(),
	)
}

func (m Model) renderConversationPane() string {
	var title string
	if c, ok := m.sidebar.Selected(); ok {
		title = c.Title
	} else {
		title = "No conversation selected"
	}

	body := SidebarPlaceholderStyle.Render("Select a conversation and start typing.")

	// The mention popup sits directly above the input line
	var sections []string
	sections = append(sections, lipgloss.NewStyle().Bold(true).Render(title), "", body)
	if popup := m.mentions.Render(40); popup != "" {
		sections = append(sections, popup)
	}
	sections = append(sections, InputStyle.Render(m.input.View()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	left := HeaderStyle.Render("parley")
	if m.nickname != "" {
		left += " " + FooterStyle.Render("as "+m.nickname)
	}
	return left
}

func (m Model) renderFooter() string {
	hints := "[ctrl+s] sidebar  [tab] tabs  [/] filter  [r]ename  [m]ute  [x] delete  [ctrl+c] quit"
	footer := FooterStyle.Render(hints)
	if m.statusMessage != "" {
		footer = StatusStyle.Render(m.statusMessage) + "  " + footer
	}
	if m.modals.QueueLen() > 0 {
		footer += FooterStyle.Render(fmt.Sprintf("  (%d queued)", m.modals.QueueLen()))
	}
	return footer
}
