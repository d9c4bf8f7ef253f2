package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvAddr           = "KUPOSHAN_ADDR"
	EnvTheme          = "KUPOSHAN_THEME"
	EnvCacheTTL       = "KUPOSHAN_CACHE_TTL"
	EnvAllowedOrigins = "KUPOSHAN_ALLOWED_ORIGINS"
)

// LoadEnv loads a .env file into the process environment. Variables that are
// already set win. A missing file is not an error.
func LoadEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ApplyEnv overrides cfg with any KUPOSHAN_* variables that are set.
func ApplyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvAddr); ok && v != "" {
		cfg.Server.Addr = v
	}
	if v, ok := os.LookupEnv(EnvTheme); ok && v != "" {
		cfg.Theme = v
	}
	if v, ok := os.LookupEnv(EnvCacheTTL); ok && v != "" {
		cfg.Server.CacheTTL = v
	}
	if v, ok := os.LookupEnv(EnvAllowedOrigins); ok && v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Server.AllowedOrigins = origins
	}
}
