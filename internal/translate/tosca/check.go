// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package tosca

import (
	"fmt"
	"slices"

	"github.com/ubicity-corp/yang2tosca/internal/yang"
)

// warnf reports a diagnostic to the operator. Warnings never alter the
// emitted document or abort the run.
func (e *Emitter) warnf(format string, args ...any) {
	fmt.Fprintf(e.warn, format+"\n", args...)
}

// check compares a node's children against the handler's allow-list and
// reports every unrecognized child statement kind, naming the node's
// structural path. Purely diagnostic.
func (e *Emitter) check(stmt *yang.Node, handled []string) {
	for _, sub := range stmt.Children {
		if slices.Contains(handled, sub.Keyword) {
			continue
		}
		if stmt.Keyword == yang.KwModule || stmt.Keyword == yang.KwSubmodule {
			e.warnf("/: %s(%s) not handled", sub.Keyword, sub.Argument)
		} else {
			e.warnf("%s: %s(%s) not handled", stmt.Path(), sub.Keyword, sub.Argument)
		}
	}
}
