package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"github.com/mglenn/parley/pkg/client"
	"github.com/mglenn/parley/pkg/client/event"
)

// SidebarTab selects which subset of conversations the sidebar lists
type SidebarTab int

const (
	TabAll SidebarTab = iota
	TabUnread
	TabGroups
	TabFavorites
)

var sidebarTabs = []SidebarTab{TabAll, TabUnread, TabGroups, TabFavorites}

// String returns the persisted name of the tab
func (t SidebarTab) String() string {
	switch t {
	case TabAll:
		return "all"
	case TabUnread:
		return "unread"
	case TabGroups:
		return "groups"
	case TabFavorites:
		return "favorites"
	default:
		return "unknown"
	}
}

// Title returns the tab's display label
func (t SidebarTab) Title() string {
	switch t {
	case TabAll:
		return "All"
	case TabUnread:
		return "Unread"
	case TabGroups:
		return "Groups"
	case TabFavorites:
		return "Favorites"
	default:
		return "?"
	}
}

// Placeholder returns the text shown when the tab's filtered list is empty
func (t SidebarTab) Placeholder() string {
	switch t {
	case TabUnread:
		return "You're all caught up."
	case TabGroups:
		return "No group conversations yet."
	case TabFavorites:
		return "Star a conversation to see it here."
	default:
		return "No conversations."
	}
}

// ParseSidebarTab maps a persisted name back to a tab
func ParseSidebarTab(name string) (SidebarTab, bool) {
	for _, t := range sidebarTabs {
		if t.String() == name {
			return t, true
		}
	}
	return TabAll, false
}

// FolderExpandPayload travels on the folder expand/collapse bus events
type FolderExpandPayload struct {
	FolderID uint64
	Expanded bool
}

// Sidebar is the conversations list. It composes the externally owned
// conversation repository and navigator; it owns only tab selection,
// the filter query and the cursor.
type Sidebar struct {
	repo   client.ConversationRepository
	nav    client.Navigator
	state  client.StateInterface
	bus    *event.Bus
	logger *log.Logger

	tab       SidebarTab
	query     textinput.Model
	searching bool
	cursor    int

	unsubscribe func()
}

// NewSidebar creates a sidebar, restoring the persisted tab preference
// (falling back to defaultTab).
func NewSidebar(repo client.ConversationRepository, nav client.Navigator, state client.StateInterface, bus *event.Bus, logger *log.Logger, defaultTab string) *Sidebar {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.CharLimit = 40
	ti.Width = 20

	tab := TabAll
	if saved := state.GetSidebarTab(); saved != "" {
		if parsed, ok := ParseSidebarTab(saved); ok {
			tab = parsed
		}
	} else if parsed, ok := ParseSidebarTab(defaultTab); ok {
		tab = parsed
	}

	return &Sidebar{
		repo:   repo,
		nav:    nav,
		state:  state,
		bus:    bus,
		logger: logger,
		tab:    tab,
		query:  ti,
	}
}

// Attach subscribes to folder-expand events. Call once when the sidebar
// becomes part of the live view; pair with Detach.
func (s *Sidebar) Attach() {
	if s.unsubscribe != nil {
		return
	}
	s.unsubscribe = s.bus.Subscribe(event.FolderExpanded, func(payload any) {
		if _, ok := payload.(FolderExpandPayload); !ok {
			s.logger.Printf("[WARN] sidebar: unexpected folder-expand payload %T", payload)
			return
		}
		// The repository owns folder state; re-reading on the next
		// render picks up the newly visible conversations. Keep the
		// cursor in bounds.
		s.cursor = clampIndex(s.cursor, len(s.Filtered()))
	})
}

// Detach unsubscribes from bus events. Safe to call twice.
func (s *Sidebar) Detach() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Tab returns the selected tab
func (s *Sidebar) Tab() SidebarTab {
	return s.tab
}

// SetTab selects a tab and persists the preference
func (s *Sidebar) SetTab(tab SidebarTab) {
	s.tab = tab
	s.cursor = 0
	if err := s.state.SetSidebarTab(tab.String()); err != nil {
		s.logger.Printf("[WARN] sidebar: persisting tab preference failed: %v", err)
	}
}

// NextTab cycles forward through the tabs
func (s *Sidebar) NextTab() {
	s.SetTab(sidebarTabs[(int(s.tab)+1)%len(sidebarTabs)])
}

// PrevTab cycles backward through the tabs
func (s *Sidebar) PrevTab() {
	s.SetTab(sidebarTabs[(int(s.tab)+len(sidebarTabs)-1)%len(sidebarTabs)])
}

// Filtered returns the conversations matching the selected tab and the
// free-text query. Conversations in collapsed folders are hidden.
func (s *Sidebar) Filtered() []client.Conversation {
	collapsed := make(map[uint64]bool)
	for _, f := range s.repo.Folders() {
		if !f.Expanded {
			collapsed[f.ID] = true
		}
	}

	list := lo.Filter(s.repo.Conversations(), func(c client.Conversation, _ int) bool {
		if c.FolderID != nil && collapsed[*c.FolderID] {
			return false
		}
		switch s.tab {
		case TabUnread:
			return c.UnreadCount > 0
		case TabGroups:
			return c.IsGroup
		case TabFavorites:
			return c.IsFavorite
		default:
			return true
		}
	})

	pattern := strings.TrimSpace(s.query.Value())
	if pattern == "" {
		return list
	}
	matches := fuzzy.FindFrom(pattern, conversationSource(list))
	return lo.Map(matches, func(m fuzzy.Match, _ int) client.Conversation {
		return list[m.Index]
	})
}

// Selected returns the conversation under the cursor
func (s *Sidebar) Selected() (client.Conversation, bool) {
	filtered := s.Filtered()
	if len(filtered) == 0 {
		return client.Conversation{}, false
	}
	return filtered[clampIndex(s.cursor, len(filtered))], true
}

// HandleKey processes keyboard input while the sidebar has focus
func (s *Sidebar) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if s.searching {
		switch msg.String() {
		case "enter", "esc":
			if msg.String() == "esc" {
				s.query.SetValue("")
			}
			s.searching = false
			s.query.Blur()
			s.cursor = 0
			return true, nil
		}
		var cmd tea.Cmd
		s.query, cmd = s.query.Update(msg)
		s.cursor = 0
		return true, cmd
	}

	switch msg.String() {
	case "tab":
		s.NextTab()
		return true, nil

	case "shift+tab":
		s.PrevTab()
		return true, nil

	case "/":
		s.searching = true
		return true, s.query.Focus()

	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		return true, nil

	case "down", "j":
		if s.cursor < len(s.Filtered())-1 {
			s.cursor++
		}
		return true, nil

	case "enter":
		if c, ok := s.Selected(); ok {
			s.nav.OpenConversation(c.ID)
		}
		return true, nil

	case "ctrl+n":
		s.nav.NextConversation()
		return true, nil

	case "ctrl+p":
		s.nav.PrevConversation()
		return true, nil

	case "e":
		// Toggle the folder containing the selected conversation
		if c, ok := s.Selected(); ok && c.FolderID != nil {
			s.toggleFolder(*c.FolderID)
		}
		return true, nil
	}
	return false, nil
}

func (s *Sidebar) toggleFolder(folderID uint64) {
	var expanded bool
	for _, f := range s.repo.Folders() {
		if f.ID == folderID {
			expanded = !f.Expanded
			break
		}
	}
	if err := s.repo.SetFolderExpanded(folderID, expanded); err != nil {
		s.logger.Printf("[WARN] sidebar: toggling folder %d failed: %v", folderID, err)
		return
	}
	if expanded {
		s.bus.Publish(event.FolderExpanded, FolderExpandPayload{FolderID: folderID, Expanded: true})
	} else {
		s.bus.Publish(event.FolderCollapsed, FolderExpandPayload{FolderID: folderID, Expanded: false})
	}
}

// Render draws the sidebar content for the given inner width and height
func (s *Sidebar) Render(width, height int, focused bool) string {
	var b strings.Builder

	// Tab bar
	var tabs []string
	for _, t := range sidebarTabs {
		if t == s.tab {
			tabs = append(tabs, SidebarActiveTabStyle.Render(t.Title()))
		} else {
			tabs = append(tabs, SidebarTabStyle.Render(t.Title()))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")

	if s.searching || s.query.Value() != "" {
		b.WriteString(s.query.View())
		b.WriteString("\n")
	}

	filtered := s.Filtered()
	if len(filtered) == 0 {
		b.WriteString("\n" + SidebarPlaceholderStyle.Width(width).Render(s.tab.Placeholder()))
		return b.String()
	}

	now := time.Now()
	cursor := clampIndex(s.cursor, len(filtered))
	maxRows := height - 3
	if maxRows < 1 {
		maxRows = 1
	}
	for i, c := range filtered {
		if i >= maxRows {
			b.WriteString(SidebarPlaceholderStyle.Render(fmt.Sprintf("… %d more", len(filtered)-maxRows)))
			break
		}
		b.WriteString(s.renderRow(c, i == cursor && focused, width, now))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Sidebar) renderRow(c client.Conversation, selected bool, width int, now time.Time) string {
	label := c.Title
	if c.IsGroup {
		label = "# " + label
	}
	if c.UnreadCount > 0 {
		label = fmt.Sprintf("%s (%d)", label, c.UnreadCount)
	}
	if c.Muted(now) {
		label += " 🔇"
	}
	if selected {
		return SidebarSelectedStyle.Width(width).Render("> " + label)
	}
	return SidebarItemStyle.Width(width).Render("  " + label)
}

// conversationSource adapts conversations for fuzzy title matching
type conversationSource []client.Conversation

func (s conversationSource) String(i int) string { return s[i].Title }
func (s conversationSource) Len() int            { return len(s) }
