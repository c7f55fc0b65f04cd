// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package locale

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the YAML document shape for locale gazetteers.
type Config struct {
	Locales []Definition `yaml:"locales"`
}

// LoadConfig reads a YAML locale config and registers every locale in it.
// Returns the names of the locales registered.
func LoadConfig(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading locale config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing locale config %s: %w", path, err)
	}
	if len(cfg.Locales) == 0 {
		return nil, fmt.Errorf("locale config %s defines no locales", path)
	}

	var names []string
	for _, def := range cfg.Locales {
		loc, err := New(def)
		if err != nil {
			return nil, err
		}
		Register(loc)
		names = append(names, loc.Name)
	}
	return names, nil
}

// FindConfigFile looks for a locale config in the conventional places:
// the working directory, then the user's home directory.
func FindConfigFile() string {
	candidates := []string{
		"blind-redact.yaml",
		"blind-redact.yml",
		".blind-redact.yaml",
	}
	for _, name := range candidates {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range candidates {
			path := filepath.Join(home, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}
