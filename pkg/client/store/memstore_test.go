package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mglenn/parley/pkg/client"
)

func seededStore() *MemStore {
	m := NewMemStore()
	m.AddConversation(client.Conversation{ID: 1, Title: "alpha", LastActivity: 300})
	m.AddConversation(client.Conversation{ID: 2, Title: "beta", LastActivity: 100})
	m.AddConversation(client.Conversation{ID: 3, Title: "gamma", LastActivity: 200})
	m.AddUser(client.User{ID: 1, Nickname: "Dana"})
	m.AddUser(client.User{ID: 2, Nickname: "mira"})
	return m
}

func TestConversationsSortedByActivity(t *testing.T) {
	m := seededStore()

	list := m.Conversations()
	require.Len(t, list, 3)
	assert.Equal(t, uint64(1), list[0].ID)
	assert.Equal(t, uint64(3), list[1].ID)
	assert.Equal(t, uint64(2), list[2].ID)
}

func TestConversationByID(t *testing.T) {
	m := seededStore()

	c, ok := m.ConversationByID(2)
	require.True(t, ok)
	assert.Equal(t, "beta", c.Title)

	_, ok = m.ConversationByID(99)
	assert.False(t, ok)
}

func TestRename(t *testing.T) {
	m := seededStore()

	require.NoError(t, m.Rename(1, "renamed"))
	c, _ := m.ConversationByID(1)
	assert.Equal(t, "renamed", c.Title)

	assert.Error(t, m.Rename(99, "nope"))
}

func TestMuteAndMarkRead(t *testing.T) {
	m := NewMemStore()
	m.AddConversation(client.Conversation{ID: 1, Title: "a", UnreadCount: 4})

	require.NoError(t, m.Mute(1, -1))
	c, _ := m.ConversationByID(1)
	assert.Equal(t, int64(-1), c.MutedUntil)

	require.NoError(t, m.MarkRead(1))
	c, _ = m.ConversationByID(1)
	assert.Equal(t, uint32(0), c.UnreadCount)
}

func TestDelete(t *testing.T) {
	m := seededStore()

	require.NoError(t, m.Delete(1, false))
	_, ok := m.ConversationByID(1)
	assert.False(t, ok)
	assert.Len(t, m.Conversations(), 2)

	assert.Error(t, m.Delete(1, true))
}

func TestFolderExpansion(t *testing.T) {
	m := NewMemStore()
	m.AddFolder(client.Folder{ID: 1, Name: "Work", Expanded: true})

	require.NoError(t, m.SetFolderExpanded(1, false))
	folders := m.Folders()
	require.Len(t, folders, 1)
	assert.False(t, folders[0].Expanded)

	assert.Error(t, m.SetFolderExpanded(99, true))
}

func TestUserByNicknameCaseInsensitive(t *testing.T) {
	m := seededStore()

	u, ok := m.UserByNickname("dana")
	require.True(t, ok)
	assert.Equal(t, uint64(1), u.ID)

	u, ok = m.UserByNickname("DANA")
	require.True(t, ok)
	assert.Equal(t, uint64(1), u.ID)

	_, ok = m.UserByNickname("ghost")
	assert.False(t, ok)
}

func TestMutationsDoNotLeakThroughReturnedCopies(t *testing.T) {
	m := seededStore()

	list := m.Conversations()
	list[0].Title = "mutated"

	c, _ := m.ConversationByID(list[0].ID)
	assert.NotEqual(t, "mutated", c.Title)
}
