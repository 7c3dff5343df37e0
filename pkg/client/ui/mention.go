package ui

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/mglenn/parley/pkg/client"
)

// maxMentionSuggestions caps the popup height
const maxMentionSuggestions = 5

// MentionList is the @-mention autocomplete popup. It holds a slice of
// candidate users and a selection index that is always clamped to
// [0, len-1]. The list only intercepts keys while it has suggestions;
// clearing it deactivates it immediately.
type MentionList struct {
	users client.UserRepository

	suggestions []client.User
	index       int
	tokenStart  int // byte offset of '@' in the input, -1 when inactive
}

// NewMentionList creates a mention list backed by the given user directory
func NewMentionList(users client.UserRepository) *MentionList {
	return &MentionList{users: users, tokenStart: -1}
}

// Active reports whether the popup currently has suggestions
func (ml *MentionList) Active() bool {
	return len(ml.suggestions) > 0
}

// Clear drops all suggestions and deactivates the popup
func (ml *MentionList) Clear() {
	ml.suggestions = nil
	ml.index = 0
	ml.tokenStart = -1
}

// Suggestions returns the current candidates, earliest first
func (ml *MentionList) Suggestions() []client.User {
	return ml.suggestions
}

// Index returns the current selection index
func (ml *MentionList) Index() int {
	return ml.index
}

// Selected returns the highlighted candidate
func (ml *MentionList) Selected() (client.User, bool) {
	if !ml.Active() {
		return client.User{}, false
	}
	return ml.suggestions[ml.index], true
}

// Refresh recomputes suggestions from the @-token under the cursor.
// cursor is a rune offset, as reported by the text input. No token (or
// no matches) clears the popup.
func (ml *MentionList) Refresh(value string, cursor int) {
	token, start, ok := mentionToken(value, byteOffset(value, cursor))
	if !ok {
		ml.Clear()
		return
	}

	all := ml.users.Users()
	var matched []client.User
	if token == "" {
		matched = all
	} else {
		matches := fuzzy.FindFrom(token, userSource(all))
		for _, m := range matches {
			matched = append(matched, all[m.Index])
		}
	}
	if len(matched) > maxMentionSuggestions {
		matched = matched[:maxMentionSuggestions]
	}

	ml.suggestions = matched
	ml.tokenStart = start
	ml.index = clampIndex(ml.index, len(ml.suggestions))
}

// MoveUp moves the selection toward later entries: the list renders
// bottom-up, so visually "up" is a higher index.
func (ml *MentionList) MoveUp() {
	ml.index = clampIndex(ml.index+1, len(ml.suggestions))
}

// MoveDown moves the selection toward earlier entries
func (ml *MentionList) MoveDown() {
	ml.index = clampIndex(ml.index-1, len(ml.suggestions))
}

// HandleKey processes a key press while the popup is active.
// Returns (handled, commit): commit is non-nil when the user accepted
// the highlighted candidate with Enter or Tab.
func (ml *MentionList) HandleKey(msg tea.KeyMsg) (bool, *client.User) {
	if !ml.Active() {
		return false, nil
	}

	switch msg.String() {
	case "up":
		ml.MoveUp()
		return true, nil

	case "down":
		ml.MoveDown()
		return true, nil

	case "enter", "tab":
		user := ml.suggestions[ml.index]
		return true, &user

	case "shift+tab":
		// Reverse field cycling belongs to the main view
		return false, nil

	case "esc":
		ml.Clear()
		return true, nil
	}
	return false, nil
}

// Commit replaces the @-token in value with the user's nickname and
// returns the updated value plus the new cursor position in runes (just
// past the space following the mention), ready for SetCursor.
func (ml *MentionList) Commit(value string, user client.User) (string, int) {
	start := ml.tokenStart
	if start < 0 || start >= len(value) {
		return value, utf8.RuneCountInString(value)
	}
	end := start + 1
	for end < len(value) && !unicode.IsSpace(rune(value[end])) {
		end++
	}
	mention := "@" + user.Nickname
	rest := value[end:]
	ml.Clear()
	updated := value[:start] + mention + " " + strings.TrimPrefix(rest, " ")
	return updated, utf8.RuneCountInString(updated[:start+len(mention)+1])
}

// Render draws the popup above the input: entries appear in reverse
// order so the first suggestion sits nearest the input line.
func (ml *MentionList) Render(width int) string {
	if !ml.Active() {
		return ""
	}

	var lines []string
	for i := len(ml.suggestions) - 1; i >= 0; i-- {
		u := ml.suggestions[i]
		label := "@" + u.Nickname
		if u.DisplayName != "" && u.DisplayName != u.Nickname {
			label = fmt.Sprintf("@%s (%s)", u.Nickname, u.DisplayName)
		}
		if !u.Online {
			label += " · offline"
		}
		if i == ml.index {
			lines = append(lines, MentionSelectedStyle.Width(width).Render("> "+label))
		} else {
			lines = append(lines, MentionItemStyle.Width(width).Render("  "+label))
		}
	}
	return MentionPopupStyle.Render(strings.Join(lines, "\n"))
}

// byteOffset converts a rune offset (the text input's cursor unit) into
// a byte offset into s. Offsets past the end clamp to len(s).
func byteOffset(s string, runeOff int) int {
	if runeOff <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == runeOff {
			return i
		}
		n++
	}
	return len(s)
}

// mentionToken finds the @-token containing the cursor. cursor is a
// byte offset. Returns the token text (without '@'), the byte offset of
// the '@', and whether a token exists. The '@' must start a word.
func mentionToken(value string, cursor int) (string, int, bool) {
	if cursor > len(value) {
		cursor = len(value)
	}
	if cursor < 0 {
		cursor = 0
	}

	start := -1
	for i := cursor - 1; i >= 0; i-- {
		c := value[i]
		if c == '@' {
			if i == 0 || unicode.IsSpace(rune(value[i-1])) {
				start = i
			}
			break
		}
		if unicode.IsSpace(rune(c)) {
			break
		}
	}
	if start == -1 {
		return "", 0, false
	}
	return value[start+1 : cursor], start, true
}

// clampIndex clamps i to [0, length-1]; an empty list pins it at 0.
func clampIndex(i, length int) int {
	if length == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i > length-1 {
		return length - 1
	}
	return i
}

// userSource adapts a user slice for fuzzy matching on nicknames
type userSource []client.User

func (s userSource) String(i int) string { return s[i].Nickname }
func (s userSource) Len() int            { return len(s) }

var (
	MentionPopupStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	MentionItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	MentionSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("205"))
)
