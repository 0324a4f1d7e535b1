// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package tosca

import "github.com/ubicity-corp/yang2tosca/internal/yang"

// TOSCA namespace for built-in IETF types, imported unconditionally.
const (
	ietfNamespace       = "org.ietf:1.0"
	ietfNamespacePrefix = "inet"
)

// emitImportsAndIncludes translates both YANG 'import' and 'include'
// statements into TOSCA import entries. Includes carry no namespace
// prefix; their definitions land in the importing file's namespace.
func (e *Emitter) emitImportsAndIncludes(stmt *yang.Node, indent int) {
	e.w.Linef(indent, "imports:")
	indent++

	// Always import the built-in YANG types.
	e.w.Linef(indent, "- file: %s", ietfNamespace)
	e.w.Linef(indent, "  namespace_prefix: %s", ietfNamespacePrefix)

	for _, imp := range stmt.Search(yang.KwImport) {
		e.emitImportOrInclude(imp, indent)
	}
	for _, include := range stmt.Search(yang.KwInclude) {
		e.emitImportOrInclude(include, indent)
	}
}

var importHandled = []string{yang.KwPrefix}

// emitImportOrInclude writes one import entry. The referenced module's
// namespace is looked up in the registry and emitted as an informational
// comment; a failed lookup just drops the comment.
func (e *Emitter) emitImportOrInclude(stmt *yang.Node, indent int) {
	file := stmt.Argument + ".yaml"

	var namespace string
	if e.registry != nil {
		if imported := e.registry.Module(stmt.Argument); imported != nil {
			namespace = imported.ArgOne(yang.KwNamespace)
		}
	}

	if prefix := stmt.ArgOne(yang.KwPrefix); prefix != "" {
		e.w.Linef(indent, "- file: %s", file)
		e.w.Linef(indent, "  namespace_prefix: %s", prefix)
		if namespace != "" {
			e.w.Linef(indent, "  # namespace: %s", namespace)
		}
	} else {
		e.w.Linef(indent, "- %s", file)
		if namespace != "" {
			e.w.Linef(indent, "  # namespace: %s", namespace)
		}
	}

	e.check(stmt, importHandled)
}
