package client

import "time"

// Conversation is a single entry in the conversations sidebar. The data
// is owned by the conversation repository; the UI never mutates it
// directly.
type Conversation struct {
	ID           uint64
	Title        string
	FolderID     *uint64 // nil if the conversation is not foldered
	IsGroup      bool
	IsFavorite   bool
	UnreadCount  uint32
	MutedUntil   int64 // unix millis; 0 = not muted, -1 = muted until unmuted
	LastActivity int64 // unix millis
}

// Muted reports whether the conversation is muted at time now.
func (c Conversation) Muted(now time.Time) bool {
	if c.MutedUntil == -1 {
		return true
	}
	return c.MutedUntil > now.UnixMilli()
}

// Folder groups conversations in the sidebar.
type Folder struct {
	ID       uint64
	Name     string
	Expanded bool
}

// User is a mention-autocomplete candidate.
type User struct {
	ID          uint64
	Nickname    string
	DisplayName string
	Online      bool
}

// ConversationRepository is the externally owned conversation data layer.
// This allows for mocking in tests while the real store implements all
// these methods.
type ConversationRepository interface {
	Conversations() []Conversation
	ConversationByID(id uint64) (Conversation, bool)
	Folders() []Folder
	SetFolderExpanded(folderID uint64, expanded bool) error

	Rename(id uint64, title string) error
	Mute(id uint64, until int64) error
	MarkRead(id uint64) error
	Delete(id uint64, forEveryone bool) error
}

// UserRepository is the externally owned user directory backing mention
// autocomplete.
type UserRepository interface {
	Users() []User
	UserByNickname(nickname string) (User, bool)
}

// Navigator is the view-model surface the sidebar delegates navigation
// to. The sidebar never owns the active conversation.
type Navigator interface {
	OpenConversation(id uint64)
	NextConversation()
	PrevConversation()
}

// StateInterface defines the interface for client state persistence
// This allows for mocking in tests while the real State implements all
// these methods.
type StateInterface interface {
	// Configuration
	GetConfig(key string) (string, error)
	SetConfig(key, value string) error

	// Nickname management
	GetLastNickname() string
	SetLastNickname(nickname string) error

	// Sidebar view preference
	GetSidebarTab() string
	SetSidebarTab(tab string) error

	// Mute persistence
	GetMutedUntil(conversationID uint64) (int64, error)
	SetMutedUntil(conversationID uint64, until int64) error

	// First run tracking
	GetFirstRun() bool
	SetFirstRunComplete() error

	// State directory
	GetStateDir() string

	// Close the state
	Close() error
}
