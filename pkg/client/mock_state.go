package client

import (
	"sync"
)

// MockState is an in-memory test implementation of StateInterface
type MockState struct {
	mu sync.RWMutex

	// In-memory storage
	config map[string]string
	muted  map[uint64]int64
	dir    string

	// Error injection
	getConfigErr error
	setConfigErr error
}

// NewMockState creates a new mock state
func NewMockState() *MockState {
	return &MockState{
		config: make(map[string]string),
		muted:  make(map[uint64]int64),
		dir:    "/tmp/mock-state",
	}
}

// SetConfigError injects errors returned by GetConfig/SetConfig
func (s *MockState) SetConfigError(getErr, setErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getConfigErr = getErr
	s.setConfigErr = setErr
}

// GetConfig retrieves a configuration value
func (s *MockState) GetConfig(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.getConfigErr != nil {
		return "", s.getConfigErr
	}

	return s.config[key], nil
}

// SetConfig stores a configuration value
func (s *MockState) SetConfig(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.setConfigErr != nil {
		return s.setConfigErr
	}

	s.config[key] = value
	return nil
}

// GetLastNickname returns the last used nickname
func (s *MockState) GetLastNickname() string {
	nickname, _ := s.GetConfig("last_nickname")
	return nickname
}

// SetLastNickname stores the last used nickname
func (s *MockState) SetLastNickname(nickname string) error {
	return s.SetConfig("last_nickname", nickname)
}

// GetSidebarTab returns the persisted sidebar tab preference
func (s *MockState) GetSidebarTab() string {
	tab, _ := s.GetConfig("sidebar_tab")
	return tab
}

// SetSidebarTab stores the sidebar tab preference
func (s *MockState) SetSidebarTab(tab string) error {
	return s.SetConfig("sidebar_tab", tab)
}

// GetMutedUntil returns the mute deadline for a conversation
func (s *MockState) GetMutedUntil(conversationID uint64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.muted[conversationID], nil
}

// SetMutedUntil stores the mute deadline for a conversation
func (s *MockState) SetMutedUntil(conversationID uint64, until int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted[conversationID] = until
	return nil
}

// GetFirstRun checks if this is the first run
func (s *MockState) GetFirstRun() bool {
	val, _ := s.GetConfig("first_run_complete")
	return val != "true"
}

// SetFirstRunComplete marks first run as complete
func (s *MockState) SetFirstRunComplete() error {
	return s.SetConfig("first_run_complete", "true")
}

// SetFirstRun sets the first-run flag for tests
func (s *MockState) SetFirstRun(firstRun bool) {
	if firstRun {
		s.SetConfig("first_run_complete", "")
	} else {
		s.SetConfig("first_run_complete", "true")
	}
}

// GetStateDir returns the mock state directory
func (s *MockState) GetStateDir() string {
	return s.dir
}

// Close is a no-op for the mock
func (s *MockState) Close() error {
	return nil
}
