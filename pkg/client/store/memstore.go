// Package store provides an in-memory implementation of the client's
// conversation and user repositories, so the UI runs without a backend.
package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/mglenn/parley/pkg/client"
)

// MemStore is a mutex-guarded in-memory conversation/user store
type MemStore struct {
	mu sync.RWMutex

	// Core data
	conversations map[uint64]*client.Conversation
	folders       map[uint64]*client.Folder
	users         map[uint64]*client.User

	// Index for nickname lookups
	usersByNickname map[string]uint64
}

// NewMemStore creates an empty store
func NewMemStore() *MemStore {
	return &MemStore{
		conversations:   make(map[uint64]*client.Conversation),
		folders:         make(map[uint64]*client.Folder),
		users:           make(map[uint64]*client.User),
		usersByNickname: make(map[string]uint64),
	}
}

// AddConversation inserts or replaces a conversation
func (m *MemStore) AddConversation(c client.Conversation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cc := c
	m.conversations[c.ID] = &cc
}

// AddFolder inserts or replaces a folder
func (m *MemStore) AddFolder(f client.Folder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ff := f
	m.folders[f.ID] = &ff
}

// AddUser inserts or replaces a user
func (m *MemStore) AddUser(u client.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	uu := u
	m.users[u.ID] = &uu
	m.usersByNickname[strings.ToLower(u.Nickname)] = u.ID
}

// Conversations returns every conversation, newest activity first
func (m *MemStore) Conversations() []client.Conversation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := lo.Map(lo.Values(m.conversations), func(c *client.Conversation, _ int) client.Conversation {
		return *c
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].LastActivity != list[j].LastActivity {
			return list[i].LastActivity > list[j].LastActivity
		}
		return list[i].ID < list[j].ID
	})
	return list
}

// ConversationByID looks up a single conversation
func (m *MemStore) ConversationByID(id uint64) (client.Conversation, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.conversations[id]
	if !ok {
		return client.Conversation{}, false
	}
	return *c, true
}

// Folders returns every folder sorted by name
func (m *MemStore) Folders() []client.Folder {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := lo.Map(lo.Values(m.folders), func(f *client.Folder, _ int) client.Folder {
		return *f
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// SetFolderExpanded toggles a folder's expanded flag
func (m *MemStore) SetFolderExpanded(folderID uint64, expanded bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.folders[folderID]
	if !ok {
		return fmt.Errorf("folder %d not found", folderID)
	}
	f.Expanded = expanded
	return nil
}

// Rename updates a conversation title
func (m *MemStore) Rename(id uint64, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.conversations[id]
	if !ok {
		return fmt.Errorf("conversation %d not found", id)
	}
	c.Title = title
	return nil
}

// Mute sets a conversation's mute deadline (unix millis, -1 = indefinite)
func (m *MemStore) Mute(id uint64, until int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.conversations[id]
	if !ok {
		return fmt.Errorf("conversation %d not found", id)
	}
	c.MutedUntil = until
	return nil
}

// MarkRead clears a conversation's unread count
func (m *MemStore) MarkRead(id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.conversations[id]
	if !ok {
		return fmt.Errorf("conversation %d not found", id)
	}
	c.UnreadCount = 0
	return nil
}

// Delete removes a conversation. forEveryone is forwarded by callers that
// delete on the remote end too; the local store behaves the same either way.
func (m *MemStore) Delete(id uint64, forEveryone bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.conversations[id]; !ok {
		return fmt.Errorf("conversation %d not found", id)
	}
	delete(m.conversations, id)
	return nil
}

// Users returns every user sorted by nickname
func (m *MemStore) Users() []client.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := lo.Map(lo.Values(m.users), func(u *client.User, _ int) client.User {
		return *u
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Nickname < list[j].Nickname })
	return list
}

// UserByNickname looks up a user by nickname, case-insensitively
func (m *MemStore) UserByNickname(nickname string) (client.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.usersByNickname[strings.ToLower(nickname)]
	if !ok {
		return client.User{}, false
	}
	return *m.users[id], true
}
