// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package tosca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustEscape(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"42", true},
		{"-7", true},
		{"3.14", true},
		{"1e6", true},
		{"true", true},
		{"false", true},
		{"null", true},
		{"~", true},
		{"2024-01-01", true},
		{"2024-01-01 10:30:00", true},
		{"hello", false},
		{"1..10", false},
		{"up", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MustEscape(tt.value), "value %q", tt.value)
	}
}

func TestEscapeValue(t *testing.T) {
	assert.Equal(t, "'42'", escapeValue("42"))
	assert.Equal(t, "plain", escapeValue("plain"))
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ip-address", "ipAddress"},
		{"max_retry_count", "maxRetryCount"},
		{"simple", "simple"},
		{"TCP-port", "tCPPort"},
		{"a-b-c", "aBC"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, camelCase(tt.in), "input %q", tt.in)
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("one two three four", 9)
	assert.Equal(t, []string{"one two", "three", "four"}, lines)

	assert.Nil(t, wrap("", 10))
	assert.Equal(t, []string{"word"}, wrap("word", 10))
}

func TestWrapText_PreformattedKept(t *testing.T) {
	lines := wrapText("first line\nsecond line")
	assert.Equal(t, []string{"first line", "second line"}, lines)
}

func TestText_FoldedBlockForColons(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  description "Contains: a colon";
}
`)
	assert.Contains(t, result, "description: >-")
	assert.Contains(t, result, "  Contains: a colon")
}

func TestText_FoldedBlockForMultiline(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  description "first line\nsecond line";
}
`)
	assert.Contains(t, result, "description: >-")
	assert.Contains(t, result, "first line")
	assert.Contains(t, result, "second line")
}

func TestText_InlineForPlainText(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  description "A short plain description.";
}
`)
	assert.Contains(t, result, "description: A short plain description.")
	assert.NotContains(t, result, ">-")
}
