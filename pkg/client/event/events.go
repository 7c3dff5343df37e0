// Package event defines the client event taxonomy and a synchronous
// pub/sub bus used to decouple UI components from each other.
//
// Event names are typed string constants so call sites can't publish a
// misspelled event; Valid rejects names outside the taxonomy.
package event

// Event is a canonical client event name.
type Event string

// Modal events
const (
	ShowModal Event = "modal:show"
)

// Call lifecycle events (surfaced by the external calling subsystem)
const (
	CallIncoming Event = "call:incoming"
	CallEnded    Event = "call:ended"
)

// Sidebar / conversation events
const (
	FolderExpanded      Event = "folder:expanded"
	FolderCollapsed     Event = "folder:collapsed"
	ConversationUpdated Event = "conversation:updated"
	ConversationRead    Event = "conversation:read"
)

// Presence events
const (
	UserOnline  Event = "presence:online"
	UserOffline Event = "presence:offline"
)

var registry = map[Event]bool{
	ShowModal:           true,
	CallIncoming:        true,
	CallEnded:           true,
	FolderExpanded:      true,
	FolderCollapsed:     true,
	ConversationUpdated: true,
	ConversationRead:    true,
	UserOnline:          true,
	UserOffline:         true,
}

// Valid reports whether name is part of the client event taxonomy.
func Valid(name Event) bool {
	return registry[name]
}

// All returns every registered event name. Order is unspecified.
func All() []Event {
	names := make([]Event, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
