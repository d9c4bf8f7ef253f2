package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration at path. A directory is searched for
// .kuposhan.yaml then .kuposhan.toml; a file is decoded according to its
// extension. If nothing exists, it returns Default() and nil error.
// Values from the file are laid over the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "."
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	if info.IsDir() {
		for _, name := range []string{YAMLFileName, TOMLFileName} {
			candidate := filepath.Join(path, name)
			if _, err := os.Stat(candidate); err == nil {
				return loadFile(candidate)
			}
		}
		return Default(), nil
	}

	return loadFile(path)
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
	return cfg, nil
}
