// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package tosca

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ubicity-corp/yang2tosca/internal/yang"
)

// wrapWidth is the column at which unformatted free text is wrapped.
const wrapWidth = 70

// timestampRE matches the YAML timestamp forms that a generic YAML
// parser would auto-type away from a string: a four-digit year, month,
// and day with an optional time-of-day and offset.
var timestampRE = regexp.MustCompile(
	`^[0-9][0-9][0-9][0-9]` +
		`-[0-9][0-9]?` +
		`-[0-9][0-9]?` +
		`(?:(?:[Tt]|[ \t]+)` +
		`[0-9][0-9]?` +
		`:[0-9][0-9]` +
		`:[0-9][0-9]` +
		`(?:\.[0-9]*)?` +
		`(?:[ \t]*(?:Z|[-+][0-9][0-9]?(?::[0-9][0-9])?))?)?$`)

// MustEscape reports whether a literal value has to be quoted to stay a
// string under YAML parsing rules: integers, floats, booleans, nulls,
// and timestamps.
func MustEscape(s string) bool {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	if s == "true" || s == "false" {
		return true
	}
	if s == "null" || s == "~" {
		return true
	}
	return timestampRE.MatchString(s)
}

// escapeValue quotes a scalar value when YAML would otherwise mis-type it.
func escapeValue(s string) string {
	if MustEscape(s) {
		return "'" + s + "'"
	}
	return s
}

// wrapText splits free text into lines. Text that already contains
// newlines is kept as formatted; anything else is word-wrapped.
func wrapText(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 1 {
		return lines
	}
	return wrap(text, wrapWidth)
}

// wrap greedily word-wraps a single line of text.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}

// text writes a "key: value" entry for free text. Multi-line text, and
// text containing a colon or single quote, goes out in YAML folded
// block style; everything else is emitted inline.
func (e *Emitter) text(indent int, key, value string) {
	lines := wrapText(value)
	if len(lines) == 0 {
		lines = []string{""}
	}
	if len(lines) > 1 || strings.ContainsAny(lines[0], ":'") {
		e.w.Linef(indent, "%s: >-", key)
		for _, line := range lines {
			e.w.Linef(indent+1, "%s", strings.TrimLeft(line, " \t"))
		}
		return
	}
	e.w.Linef(indent, "%s: %s", key, lines[0])
}

// commentLines writes wrapped free text as comment lines.
func (e *Emitter) commentLines(indent int, text string) {
	for _, line := range wrapText(text) {
		e.w.Linef(indent, "# %s", line)
	}
}

func (e *Emitter) emitDescription(stmt *yang.Node, indent int) {
	e.text(indent, "description", stmt.Argument)
	e.check(stmt, nil)
}

// propertyName applies the configured naming style to a property or
// attribute name. Type names are never transformed.
func (e *Emitter) propertyName(name string) string {
	if e.ctx.camelCase {
		return camelCase(name)
	}
	return name
}

// camelCase converts a kebab-case or snake_case YANG identifier to
// camelCase. Adapted property names keep their interior capitalization.
func camelCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	if len(parts) == 0 {
		return s
	}
	var sb strings.Builder
	sb.WriteString(strings.ToLower(parts[0][:1]) + parts[0][1:])
	for _, part := range parts[1:] {
		sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return sb.String()
}
