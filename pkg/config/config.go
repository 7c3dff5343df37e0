// Package config loads the client's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the structure of the client config file
type Config struct {
	Client        ClientSection        `toml:"client"`
	UI            UISection            `toml:"ui"`
	Notifications NotificationsSection `toml:"notifications"`
}

type ClientSection struct {
	StatePath string `toml:"state_path"`
	Nickname  string `toml:"nickname"`
}

type UISection struct {
	Accent            string `toml:"accent"`
	DefaultSidebarTab string `toml:"default_sidebar_tab"`
	SidebarWidth      int    `toml:"sidebar_width"`
}

type NotificationsSection struct {
	Enabled       bool `toml:"enabled"`
	CallsOnly     bool `toml:"calls_only"`
	MutedRespects bool `toml:"respect_mutes"`
}

// DefaultConfig returns the default client configuration
func DefaultConfig() Config {
	return Config{
		Client: ClientSection{
			StatePath: "~/.parley/state.db",
		},
		UI: UISection{
			Accent:            "205",
			DefaultSidebarTab: "all",
			SidebarWidth:      28,
		},
		Notifications: NotificationsSection{
			Enabled:       true,
			MutedRespects: true,
		},
	}
}

// LoadConfig loads configuration from a TOML file, creating a default
// file when none exists, and applies environment variable overrides
func LoadConfig(path string) (Config, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return Config{}, err
	}
	path = expanded

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := writeDefaultConfig(path, cfg); err != nil {
			// Could not write (permissions?); defaults still work
			return applyEnvOverrides(cfg), nil
		}
		return applyEnvOverrides(cfg), nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	return applyEnvOverrides(cfg), nil
}

// ExpandPath expands a leading ~/ to the user's home directory
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}

// applyEnvOverrides applies environment variable overrides to the config
// Environment variables follow the pattern: PARLEY_SECTION_KEY
// Example: PARLEY_UI_ACCENT=120
func applyEnvOverrides(cfg Config) Config {
	if val := os.Getenv("PARLEY_CLIENT_STATE_PATH"); val != "" {
		cfg.Client.StatePath = val
	}
	if val := os.Getenv("PARLEY_CLIENT_NICKNAME"); val != "" {
		cfg.Client.Nickname = val
	}
	if val := os.Getenv("PARLEY_UI_ACCENT"); val != "" {
		cfg.UI.Accent = val
	}
	if val := os.Getenv("PARLEY_UI_DEFAULT_SIDEBAR_TAB"); val != "" {
		cfg.UI.DefaultSidebarTab = val
	}
	if val := os.Getenv("PARLEY_NOTIFICATIONS_ENABLED"); val != "" {
		cfg.Notifications.Enabled = val == "true" || val == "1"
	}
	return cfg
}

func writeDefaultConfig(path string, cfg Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	content := `# Parley Client Configuration
# This file was auto-generated with default values
#
# Environment variables can override these settings:
# PARLEY_SECTION_KEY (e.g., PARLEY_UI_ACCENT=120)

[client]
# Where client state (read markers, preferences) is stored
state_path = "` + cfg.Client.StatePath + `"

# Nickname used for @-mentions of yourself
#nickname = ""

[ui]
# Accent color (ANSI 256 color index or hex)
accent = "` + cfg.UI.Accent + `"

# Sidebar tab shown at startup when no preference has been saved
# One of: all, unread, groups, favorites
default_sidebar_tab = "` + cfg.UI.DefaultSidebarTab + `"

# Sidebar width in columns
sidebar_width = ` + strconv.Itoa(cfg.UI.SidebarWidth) + `

[notifications]
# Desktop notifications for incoming calls and mentions
enabled = ` + strconv.FormatBool(cfg.Notifications.Enabled) + `

# Only notify for calls, not mentions
#calls_only = false

# Skip notifications from muted conversations
respect_mutes = ` + strconv.FormatBool(cfg.Notifications.MutedRespects) + `
`

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
