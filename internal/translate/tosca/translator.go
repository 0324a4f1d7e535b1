// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

// Package tosca translates parsed YANG modules into TOSCA Simple YAML
// data-type definitions. The translation is a single-pass, depth-first
// walk over the statement tree: every piece of information TOSCA can
// express is emitted structurally, and everything it cannot is folded
// into metadata or flagged with in-document comments instead of
// failing.
package tosca

import (
	"io"
	"os"

	"github.com/ubicity-corp/yang2tosca/internal/translate"
	"github.com/ubicity-corp/yang2tosca/internal/yang"
)

func init() {
	translate.Register(&Translator{})
}

// Translator implements translate.Translator for TOSCA Simple YAML.
type Translator struct{}

// Name returns the translator's identifier.
func (t *Translator) Name() string {
	return "tosca"
}

// FileExtension returns the file extension for TOSCA YAML files.
func (t *Translator) FileExtension() string {
	return ".yaml"
}

// Translate converts a parsed YANG module to a TOSCA data-type
// document. Translation is best-effort: per-node problems degrade to
// diagnostics on opts.Warnings and commented or omitted output.
func (t *Translator) Translate(module *yang.Node, registry *yang.Registry, opts translate.Options) ([]byte, error) {
	warn := opts.Warnings
	if warn == nil {
		warn = os.Stderr
	}
	e := &Emitter{
		ctx:      newContext(opts.TypeMap, opts.CamelCase),
		w:        &Writer{},
		warn:     warn,
		registry: registry,
	}
	e.emitModule(module)
	return e.w.Bytes(), nil
}

// Emitter drives one module translation. It owns the output sink and
// the per-run context; the source tree is read-only.
type Emitter struct {
	ctx      *Context
	w        *Writer
	warn     io.Writer
	registry *yang.Registry
}
