package modal

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// State is the manager lifecycle state.
type State int

const (
	StateNone    State = iota // Constructed but not yet bound to a view
	StateReady                // Idle, can show the next queued request
	StateOpen                 // A modal is displayed
	StateClosing              // Dismissal in progress, waiting for HiddenMsg
)

// String returns the string representation of the manager state
func (s State) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateReady:
		return "Ready"
	case StateOpen:
		return "Open"
	case StateClosing:
		return "Closing"
	default:
		return "Unknown"
	}
}

// HiddenMsg is delivered once a dismissed modal has fully left the screen.
// The update loop routes it to Manager.OnHidden.
type HiddenMsg struct{}

// Manager serializes modal display requests. Requests queue FIFO and are
// consumed one at a time: at most one modal is ever open, and queued
// requests surface in arrival order once the manager returns to ready.
type Manager struct {
	logger   *log.Logger
	builders map[ModalType]Builder

	state     State
	queue     []Request
	active    Modal
	activeReq Request
}

// NewManager creates a manager with the given builder registry. There is
// no package-level instance; callers construct and inject one.
func NewManager(logger *log.Logger, builders map[ModalType]Builder) *Manager {
	return &Manager{
		logger:   logger,
		builders: builders,
		state:    StateNone,
	}
}

// Bind marks the view as attached and releases any requests queued before
// the first render. Safe to call more than once.
func (m *Manager) Bind() tea.Cmd {
	if m.state != StateNone {
		return nil
	}
	m.state = StateReady
	return m.unqueue()
}

// Show enqueues a display request and attempts to surface it. Requests
// arriving while another modal is open (or before Bind) wait their turn.
// A request for a type with no registered builder is logged and dropped
// without touching manager state.
func (m *Manager) Show(req Request) tea.Cmd {
	if _, ok := m.builders[req.Type]; !ok {
		m.logger.Printf("[WARN] modal: unsupported modal type %s dropped", req.Type)
		return nil
	}
	m.queue = append(m.queue, req)
	return m.unqueue()
}

// unqueue consumes the oldest queued request, but only while ready. All
// other states leave the queue untouched; OnHidden re-attempts, so every
// queued request is eventually shown.
func (m *Manager) unqueue() tea.Cmd {
	if m.state != StateReady || len(m.queue) == 0 {
		return nil
	}
	req := m.queue[0]
	m.queue = m.queue[1:]

	built, err := m.builders[req.Type](req)
	if err != nil {
		m.logger.Printf("[WARN] modal: building %s failed: %v", req.Type, err)
		return m.unqueue()
	}
	m.active = built
	m.activeReq = req
	m.state = StateOpen
	return nil
}

// Hide starts dismissing the open modal: the close callback runs and a
// HiddenMsg is scheduled. The modal stays on screen until OnHidden.
func (m *Manager) Hide() tea.Cmd {
	if m.state != StateOpen {
		return nil
	}
	m.state = StateClosing

	var closeCmd tea.Cmd
	if m.activeReq.OnClose != nil {
		closeCmd = m.activeReq.OnClose()
	}
	hidden := func() tea.Msg { return HiddenMsg{} }
	if closeCmd != nil {
		return tea.Batch(closeCmd, hidden)
	}
	return hidden
}

// OnHidden finishes a dismissal: transient modal state is reset, the
// content discarded, and the next queued request (if any) surfaced. The
// view calls this when it receives HiddenMsg. Calls outside a dismissal
// are ignored so a stray notification can't discard an open modal.
func (m *Manager) OnHidden() tea.Cmd {
	if m.state != StateClosing && m.state != StateReady {
		return nil
	}
	if r, ok := m.active.(Resettable); ok {
		r.Reset()
	}
	m.active = nil
	m.activeReq = Request{}
	m.state = StateReady
	return m.unqueue()
}

// HandleKey routes a key press to the open modal. A nil next modal from
// the handler closes it. While closing, keys are swallowed so a dying
// modal can't act on input.
func (m *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch m.state {
	case StateClosing:
		return true, nil
	case StateOpen:
		handled, next, cmd := m.active.HandleKey(msg)
		if handled && next != nil {
			m.active = next
		}
		if handled && next == nil {
			hideCmd := m.Hide()
			if cmd != nil {
				return true, tea.Batch(cmd, hideCmd)
			}
			return true, hideCmd
		}
		if !handled && !m.active.IsBlockingInput() {
			return false, cmd
		}
		return true, cmd
	default:
		return false, nil
	}
}

// Active returns the displayed modal, or nil outside OPEN/CLOSING.
func (m *Manager) Active() Modal {
	return m.active
}

// ActiveType returns the displayed modal's type, or ModalNone.
func (m *Manager) ActiveType() ModalType {
	if m.active == nil {
		return ModalNone
	}
	return m.active.Type()
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	return m.state
}

// QueueLen returns the number of requests waiting to be shown.
func (m *Manager) QueueLen() int {
	return len(m.queue)
}

// Render draws the displayed modal, or returns "" when nothing is shown.
func (m *Manager) Render(width, height int) string {
	if m.active == nil {
		return ""
	}
	return m.active.Render(width, height)
}
