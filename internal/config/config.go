// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

// Package config handles the yang2tosca translator configuration: the
// table mapping YANG scalar type names to target type names.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed typemap.yaml
var defaultConfig []byte

// Config represents the translator configuration file.
type Config struct {
	// TypeMap maps YANG scalar type names to target type names. The
	// reserved target "union" marks types that need union handling.
	TypeMap map[string]string `yaml:"type_map"`
}

// Default returns the built-in configuration covering the YANG
// built-in scalar types.
func Default() *Config {
	var cfg Config
	// The embedded config is validated by tests; it cannot fail to parse.
	if err := yaml.Unmarshal(defaultConfig, &cfg); err != nil {
		panic(fmt.Sprintf("embedded type map: %v", err))
	}
	return &cfg
}

// Load reads a Config from a file path. An unreadable or unparseable
// file is an error: translating with a wrong type map would silently
// corrupt every scalar type in the output.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for a usable type map.
func (c *Config) Validate() error {
	if len(c.TypeMap) == 0 {
		return errors.New("configuration defines no type_map")
	}
	return nil
}
