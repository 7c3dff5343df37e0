// Command parley is a terminal messaging client. This build runs against
// an in-memory conversation store seeded with demo data; the data layer
// is swappable behind the repository interfaces.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mglenn/parley/pkg/client"
	"github.com/mglenn/parley/pkg/client/event"
	"github.com/mglenn/parley/pkg/client/store"
	"github.com/mglenn/parley/pkg/client/ui"
	"github.com/mglenn/parley/pkg/config"
)

func main() {
	configPath := flag.String("config", "~/.parley/config.toml", "Path to config file")
	debugLog := flag.String("debug-log", "", "Write debug log to this file")
	simulateCall := flag.Bool("simulate-call", false, "Deliver a fake incoming call after 10s")
	flag.Parse()

	logger := log.New(io.Discard, "", log.LstdFlags)
	if *debugLog != "" {
		f, err := os.OpenFile(*debugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	statePath, err := config.ExpandPath(cfg.Client.StatePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	state, err := client.OpenState(statePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open state: %v\n", err)
		os.Exit(1)
	}
	defer state.Close()

	if state.GetFirstRun() {
		if err := state.SetFirstRunComplete(); err != nil {
			logger.Printf("[WARN] marking first run complete failed: %v", err)
		}
	}

	repo := seedStore()
	bus := event.NewBus(logger)
	nav := client.NewNav(repo, logger)

	model := ui.NewModel(ui.Deps{
		Conversations: repo,
		Users:         repo,
		State:         state,
		Nav:           nav,
		Bus:           bus,
		Logger:        logger,
		Config:        cfg,
	})
	defer model.Teardown()

	p := tea.NewProgram(model, tea.WithAltScreen())

	if *simulateCall {
		go func() {
			time.Sleep(10 * time.Second)
			p.Send(ui.PublishMsg{
				Event:   event.CallIncoming,
				Payload: ui.CallInvite{CallID: 1, FromName: "dana", IsVideo: false},
			})
		}()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func seedStore() *store.MemStore {
	m := store.NewMemStore()
	now := time.Now().UnixMilli()
	work := uint64(1)

	m.AddFolder(client.Folder{ID: work, Name: "Work", Expanded: true})

	m.AddConversation(client.Conversation{ID: 1, Title: "dana", LastActivity: now, UnreadCount: 2})
	m.AddConversation(client.Conversation{ID: 2, Title: "platform-team", IsGroup: true, FolderID: &work, LastActivity: now - 60_000})
	m.AddConversation(client.Conversation{ID: 3, Title: "standup", IsGroup: true, FolderID: &work, LastActivity: now - 3_600_000, UnreadCount: 5})
	m.AddConversation(client.Conversation{ID: 4, Title: "mira", IsFavorite: true, LastActivity: now - 7_200_000})

	m.AddUser(client.User{ID: 1, Nickname: "dana", DisplayName: "Dana K", Online: true})
	m.AddUser(client.User{ID: 2, Nickname: "mira", Online: true})
	m.AddUser(client.User{ID: 3, Nickname: "marcus", DisplayName: "Marcus L", Online: false})
	m.AddUser(client.User{ID: 4, Nickname: "devon", Online: true})

	return m
}
