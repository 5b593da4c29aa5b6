package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load resolves the run configuration. An explicit path is loaded directly
// and must exist. With an empty path the working directory is searched; when
// no config file is present the defaults are returned. Partial YAML is fine:
// fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		if path = discover(wd); path == "" {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// discover returns the first django-upgrade config file present in dir.
// Undotted names win over dotted ones, .yml over .yaml.
func discover(dir string) string {
	for _, prefix := range []string{"", "."} {
		for _, ext := range []string{".yml", ".yaml"} {
			path := filepath.Join(dir, prefix+"django-upgrade"+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}
