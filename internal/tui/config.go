package tui

import (
	"github.com/leadline-crm/leadline/internal/api"
	"github.com/leadline-crm/leadline/internal/cache"
	"github.com/leadline-crm/leadline/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme  themes.Theme
	Client *api.Client
	Cache  *cache.Store
	Width  int
	Height int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Width:  80,
		Height: 24,
	}
}

// WithClient sets the backend API client.
func WithClient(client *api.Client) Option {
	return func(c *Config) {
		c.Client = client
	}
}

// WithCache sets the local snapshot store used for stale fallbacks.
func WithCache(store *cache.Store) Option {
	return func(c *Config) {
		c.Cache = store
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
