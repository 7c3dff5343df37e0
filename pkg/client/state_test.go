package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestState(t *testing.T) *State {
	t.Helper()
	state, err := OpenState(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { state.Close() })
	return state
}

func TestStateConfigRoundTrip(t *testing.T) {
	state := openTestState(t)

	val, err := state.GetConfig("missing")
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, state.SetConfig("key", "value"))
	val, err = state.GetConfig("key")
	require.NoError(t, err)
	assert.Equal(t, "value", val)

	// Overwrite
	require.NoError(t, state.SetConfig("key", "other"))
	val, _ = state.GetConfig("key")
	assert.Equal(t, "other", val)
}

func TestStateSidebarTab(t *testing.T) {
	state := openTestState(t)

	assert.Empty(t, state.GetSidebarTab())
	require.NoError(t, state.SetSidebarTab("groups"))
	assert.Equal(t, "groups", state.GetSidebarTab())
}

func TestStateMutedUntil(t *testing.T) {
	state := openTestState(t)

	until, err := state.GetMutedUntil(7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), until)

	require.NoError(t, state.SetMutedUntil(7, 123456))
	until, err = state.GetMutedUntil(7)
	require.NoError(t, err)
	assert.Equal(t, int64(123456), until)

	require.NoError(t, state.SetMutedUntil(7, -1))
	until, _ = state.GetMutedUntil(7)
	assert.Equal(t, int64(-1), until)
}

func TestStateFirstRun(t *testing.T) {
	state := openTestState(t)

	assert.True(t, state.GetFirstRun())
	require.NoError(t, state.SetFirstRunComplete())
	assert.False(t, state.GetFirstRun())
}

func TestStateNickname(t *testing.T) {
	state := openTestState(t)

	assert.Empty(t, state.GetLastNickname())
	require.NoError(t, state.SetLastNickname("dana"))
	assert.Equal(t, "dana", state.GetLastNickname())
}
