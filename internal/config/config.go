// Package config handles .kuposhan.yaml and .kuposhan.toml configuration
// files and their environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/junkd0g/kuposhan/internal/diagram"
)

// ErrUnknownWidget is returned when a widget name is not one the dashboard
// knows how to render.
var ErrUnknownWidget = errors.New("unknown widget")

// Config represents the contents of a kuposhan config file.
type Config struct {
	Title       string       `yaml:"title,omitempty" toml:"title,omitempty"`
	Description string       `yaml:"description,omitempty" toml:"description,omitempty"`
	Theme       string       `yaml:"theme,omitempty" toml:"theme,omitempty"`
	Widgets     []string     `yaml:"widgets,omitempty" toml:"widgets,omitempty"`
	Server      ServerConfig `yaml:"server,omitempty" toml:"server,omitempty"`
}

// ServerConfig holds the settings of `kuposhan serve`.
type ServerConfig struct {
	Addr           string   `yaml:"addr,omitempty" toml:"addr,omitempty"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty" toml:"allowed_origins,omitempty"`
	// CacheTTL is a time.ParseDuration string. "0" disables expiry.
	CacheTTL string `yaml:"cache_ttl,omitempty" toml:"cache_ttl,omitempty"`
}

// File names looked up in a directory, in order.
const (
	YAMLFileName = ".kuposhan.yaml"
	TOMLFileName = ".kuposhan.toml"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Theme: "light",
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
			CacheTTL:       "10m",
		},
	}
}

// TTL parses Server.CacheTTL. An empty value means the default of ten minutes.
func (c *Config) TTL() (time.Duration, error) {
	if c.Server.CacheTTL == "" {
		return 10 * time.Minute, nil
	}
	d, err := time.ParseDuration(c.Server.CacheTTL)
	if err != nil {
		return 0, fmt.Errorf("cache_ttl: %w", err)
	}
	return d, nil
}

// HTML converts the config into the dashboard builder settings. Widgets
// must have been validated.
func (c *Config) HTML() diagram.HTMLConfig {
	html := diagram.DefaultConfig()
	if c.Title != "" {
		html.Title = c.Title
	}
	if c.Description != "" {
		html.Description = c.Description
	}
	if c.Theme != "" {
		html.Theme = c.Theme
	}
	if widgets, err := ParseWidgets(c.Widgets); err == nil && len(widgets) > 0 {
		html.Widgets = widgets
	}
	return html
}

// ParseWidgets converts widget names to widget types, rejecting unknown names.
func ParseWidgets(names []string) ([]diagram.WidgetType, error) {
	widgets := make([]diagram.WidgetType, 0, len(names))
	for _, name := range names {
		if !diagram.IsWidget(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, name)
		}
		widgets = append(widgets, diagram.WidgetType(name))
	}
	return widgets, nil
}
