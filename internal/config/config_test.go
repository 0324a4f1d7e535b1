// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "integer", cfg.TypeMap["uint8"])
	assert.Equal(t, "integer", cfg.TypeMap["int64"])
	assert.Equal(t, "float", cfg.TypeMap["decimal64"])
	assert.Equal(t, "boolean", cfg.TypeMap["boolean"])
	assert.Equal(t, "string", cfg.TypeMap["string"])
	assert.Equal(t, "string", cfg.TypeMap["leafref"])
	assert.Equal(t, "union", cfg.TypeMap["union"])
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typemap.yaml")
	data := []byte("type_map:\n  string: text\n  int32: number\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "text", cfg.TypeMap["string"])
	assert.Equal(t, "number", cfg.TypeMap["int32"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typemap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type_map: [not, a, map]"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_EmptyTypeMap(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())
}
