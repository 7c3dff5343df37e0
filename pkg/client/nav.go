package client

import "log"

// Nav is the default Navigator: a small view-model tracking the active
// conversation on top of a ConversationRepository. The UI receives it
// as a Navigator and never constructs one itself.
type Nav struct {
	repo   ConversationRepository
	logger *log.Logger
	active uint64 // 0 = nothing open
}

// NewNav creates a navigator over the given repository
func NewNav(repo ConversationRepository, logger *log.Logger) *Nav {
	return &Nav{repo: repo, logger: logger}
}

// ActiveConversation returns the currently open conversation ID (0 = none)
func (n *Nav) ActiveConversation() uint64 {
	return n.active
}

// OpenConversation opens a conversation and marks it read
func (n *Nav) OpenConversation(id uint64) {
	if _, ok := n.repo.ConversationByID(id); !ok {
		return
	}
	n.active = id
	if err := n.repo.MarkRead(id); err != nil {
		n.logger.Printf("[WARN] nav: marking conversation %d read failed: %v", id, err)
	}
}

// NextConversation opens the conversation after the active one
func (n *Nav) NextConversation() {
	n.step(1)
}

// PrevConversation opens the conversation before the active one
func (n *Nav) PrevConversation() {
	n.step(-1)
}

func (n *Nav) step(delta int) {
	list := n.repo.Conversations()
	if len(list) == 0 {
		return
	}
	idx := -1
	for i, c := range list {
		if c.ID == n.active {
			idx = i
			break
		}
	}
	if idx == -1 {
		n.OpenConversation(list[0].ID)
		return
	}
	next := idx + delta
	if next < 0 || next >= len(list) {
		return
	}
	n.OpenConversation(list[next].ID)
}
