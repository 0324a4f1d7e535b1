// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubicity-corp/yang2tosca/internal/yang"
)

type stubTranslator struct{}

func (s *stubTranslator) Name() string { return "stub" }

func (s *stubTranslator) Translate(module *yang.Node, registry *yang.Registry, opts Options) ([]byte, error) {
	return []byte(module.Argument), nil
}

func (s *stubTranslator) FileExtension() string { return ".txt" }

func TestRegistry(t *testing.T) {
	Register(&stubTranslator{})

	translator, err := Get("stub")
	require.NoError(t, err)
	assert.Equal(t, "stub", translator.Name())
	assert.Equal(t, ".txt", translator.FileExtension())
	assert.Contains(t, Available(), "stub")
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown translator")
}
