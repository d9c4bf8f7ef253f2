package config

import (
	"fmt"
	"strings"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	switch cfg.Theme {
	case "", "light", "dark":
	default:
		errs = append(errs, fmt.Sprintf("theme: invalid value %q (must be light or dark)", cfg.Theme))
	}

	for _, name := range cfg.Widgets {
		if _, err := ParseWidgets([]string{name}); err != nil {
			errs = append(errs, fmt.Sprintf("widgets: %v", err))
		}
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		errs = append(errs, "server.addr: must not be empty")
	}

	if ttl, err := cfg.TTL(); err != nil {
		errs = append(errs, fmt.Sprintf("server.%v", err))
	} else if ttl < 0 {
		errs = append(errs, fmt.Sprintf("server.cache_ttl: must be non-negative, got %s", cfg.Server.CacheTTL))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
