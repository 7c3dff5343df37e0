package modal

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ModalType uniquely identifies each modal type
type ModalType int

const (
	ModalNone ModalType = iota // Special value: no modal active
	ModalError
	ModalConfirm
	ModalRename
	ModalMute
	ModalIncomingCall
)

// String returns the string representation of the modal type
func (m ModalType) String() string {
	switch m {
	case ModalNone:
		return "None"
	case ModalError:
		return "Error"
	case ModalConfirm:
		return "Confirm"
	case ModalRename:
		return "Rename"
	case ModalMute:
		return "Mute"
	case ModalIncomingCall:
		return "IncomingCall"
	default:
		return "Unknown"
	}
}

// Modal represents a modal dialog
type Modal interface {
	// Type returns the modal type identifier
	Type() ModalType

	// HandleKey processes keyboard input when this modal is active
	// Returns (handled, newModal, cmd)
	// - handled: true if the key was consumed by this modal
	// - newModal: nil to close modal, same modal to stay open
	// - cmd: bubbletea command to execute
	HandleKey(msg tea.KeyMsg) (handled bool, newModal Modal, cmd tea.Cmd)

	// Render returns the modal content to be overlaid
	Render(width, height int) string

	// IsBlockingInput returns true if this modal blocks all input to underlying views
	// If false, unhandled keys fall through to the main view
	IsBlockingInput() bool
}

// Resettable is an optional interface for modals holding transient input
// state (text fields, checkboxes). The manager calls Reset once the modal
// has fully left the screen so a later showing starts clean.
type Resettable interface {
	Modal
	Reset()
}

// Request asks the manager to display a modal of the given type. Requests
// are queued FIFO and consumed one at a time.
type Request struct {
	Type    ModalType
	Options any            // per-type options struct, passed to the builder
	OnClose func() tea.Cmd // invoked when the modal starts closing
}

// Builder constructs a modal from a queued request. One builder is
// registered per supported type.
type Builder func(req Request) (Modal, error)
