package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/mglenn/parley/pkg/client"
	"github.com/mglenn/parley/pkg/client/event"
	"github.com/mglenn/parley/pkg/client/ui/modal"
	"github.com/mglenn/parley/pkg/config"
)

// CallInvite is the payload of the call:incoming bus event
type CallInvite struct {
	CallID   uint64
	FromName string
	IsVideo  bool
}

// PublishMsg routes an externally produced event through the bus on the
// update-loop goroutine. Senders outside the loop use Program.Send.
type PublishMsg struct {
	Event   event.Event
	Payload any
}

// Deps carries everything the UI model is constructed from. All
// collaborators are injected; the package holds no globals.
type Deps struct {
	Conversations client.ConversationRepository
	Users         client.UserRepository
	State         client.StateInterface
	Nav           client.Navigator
	Bus           *event.Bus
	Logger        *log.Logger
	Config        config.Config
}

// Model represents the application state
type Model struct {
	repo   client.ConversationRepository
	users  client.UserRepository
	state  client.StateInterface
	nav    client.Navigator
	bus    *event.Bus
	logger *log.Logger

	modals   *modal.Manager
	sidebar  *Sidebar
	mentions *MentionList
	input    textinput.Model

	width         int
	height        int
	sidebarWidth  int
	sidebarFocus  bool
	statusMessage string
	notifications bool
	nickname      string
}

// NewModel constructs the UI from its injected collaborators and
// registers the bus handlers that drive it (modal display requests and
// call invites).
func NewModel(deps Deps) Model {
	ti := textinput.New()
	ti.Placeholder = "Message (@ to mention)"
	ti.CharLimit = 1024
	ti.Focus()

	applyAccent(deps.Config.UI.Accent)

	manager := modal.NewManager(deps.Logger, modal.DefaultBuilders())
	sidebar := NewSidebar(deps.Conversations, deps.Nav, deps.State, deps.Bus, deps.Logger, deps.Config.UI.DefaultSidebarTab)
	sidebar.Attach()

	sidebarWidth := deps.Config.UI.SidebarWidth
	if sidebarWidth < 20 {
		sidebarWidth = 20
	}

	m := Model{
		repo:          deps.Conversations,
		users:         deps.Users,
		state:         deps.State,
		nav:           deps.Nav,
		bus:           deps.Bus,
		logger:        deps.Logger,
		modals:        manager,
		sidebar:       sidebar,
		mentions:      NewMentionList(deps.Users),
		input:         ti,
		sidebarWidth:  sidebarWidth,
		notifications: deps.Config.Notifications.Enabled,
		nickname:      deps.Config.Client.Nickname,
	}
	if m.nickname == "" {
		m.nickname = deps.State.GetLastNickname()
	}

	// Explicit handler registration replaces any implicit global wiring:
	// a show-modal event queues the request, a call invite queues the
	// incoming-call modal and raises a desktop notification.
	deps.Bus.Subscribe(event.ShowModal, func(payload any) {
		req, ok := payload.(modal.Request)
		if !ok {
			deps.Logger.Printf("[WARN] ui: show-modal payload %T ignored", payload)
			return
		}
		manager.Show(req)
	})
	deps.Bus.Subscribe(event.CallIncoming, func(payload any) {
		invite, ok := payload.(CallInvite)
		if !ok {
			deps.Logger.Printf("[WARN] ui: call-incoming payload %T ignored", payload)
			return
		}
		manager.Show(modal.Request{
			Type: modal.ModalIncomingCall,
			Options: modal.IncomingCallOptions{
				CallID:   invite.CallID,
				FromName: invite.FromName,
				IsVideo:  invite.IsVideo,
			},
		})
		if deps.Config.Notifications.Enabled {
			if err := beeep.Notify("Incoming call", invite.FromName+" is calling", ""); err != nil {
				deps.Logger.Printf("[WARN] ui: desktop notification failed: %v", err)
			}
		}
	})

	return m
}

// Init returns the initial command
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Teardown detaches the sidebar's bus subscriptions. Call when the
// program exits.
func (m Model) Teardown() {
	m.sidebar.Detach()
}

// Modals exposes the modal manager (used by the entry point to queue
// startup modals before the first render).
func (m Model) Modals() *modal.Manager {
	return m.modals
}
