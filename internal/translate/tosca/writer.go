// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package tosca

import (
	"bytes"
	"fmt"
	"strings"
)

// indentUnit is the indentation step of the emitted document: two
// spaces per nesting level.
const indentUnit = "  "

// Writer is the append-only output sink for the emitter. Lines are
// written once and never revisited; the indent level is passed on every
// call rather than kept as writer state, so the recursion owns the
// indentation discipline.
type Writer struct {
	buf bytes.Buffer
}

// Linef writes one line at the given indent level.
func (w *Writer) Linef(indent int, format string, args ...any) {
	w.buf.WriteString(strings.Repeat(indentUnit, indent))
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteByte('\n')
}

// Blank writes an empty line.
func (w *Writer) Blank() {
	w.buf.WriteByte('\n')
}

// Bytes returns the document produced so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}
