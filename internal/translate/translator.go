// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

// Package translate provides schema translation utilities.
package translate

import (
	"fmt"
	"io"

	"github.com/ubicity-corp/yang2tosca/internal/yang"
)

// Options carries per-run translation settings.
type Options struct {
	// TypeMap maps YANG scalar type names to target type names. The
	// reserved value "union" triggers union handling instead of a
	// direct type emission.
	TypeMap map[string]string

	// CamelCase applies a camel-case transform to emitted property and
	// attribute names (never to type names).
	CamelCase bool

	// Warnings receives diagnostic messages. Defaults to stderr when nil.
	Warnings io.Writer
}

// Translator defines the interface all format translators must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "tosca")
	Name() string

	// Translate converts a parsed YANG module to the target format.
	// The registry resolves imported modules for namespace lookups.
	Translate(module *yang.Node, registry *yang.Registry, opts Options) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".yaml")
	FileExtension() string
}

var translators = make(map[string]Translator)

// Register adds a translator to the registry.
func Register(t Translator) {
	translators[t.Name()] = t
}

// Get retrieves a translator by name.
func Get(name string) (Translator, error) {
	t, ok := translators[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names.
func Available() []string {
	names := make([]string, 0, len(translators))
	for name := range translators {
		names = append(names, name)
	}
	return names
}
