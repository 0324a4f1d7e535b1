// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package tosca

import "github.com/ubicity-corp/yang2tosca/internal/yang"

// emitMetadata folds YANG statements with no TOSCA equivalent into a
// single metadata block. The block is only written when at least one
// such statement is present.
func (e *Emitter) emitMetadata(stmt *yang.Node, indent int) {
	yangVersion := stmt.SearchOne(yang.KwYangVersion)
	organization := stmt.SearchOne(yang.KwOrganization)
	contact := stmt.SearchOne(yang.KwContact)
	namespace := stmt.SearchOne(yang.KwNamespace)
	prefix := stmt.SearchOne(yang.KwPrefix)
	belongsTo := stmt.SearchOne(yang.KwBelongsTo)
	revisions := stmt.Search(yang.KwRevision)
	reference := stmt.SearchOne(yang.KwReference)
	features := stmt.Search(yang.KwFeature)

	if yangVersion == nil && organization == nil && contact == nil &&
		namespace == nil && prefix == nil && belongsTo == nil &&
		reference == nil && len(revisions) == 0 && len(features) == 0 {
		return
	}

	e.w.Linef(indent, "metadata:")
	indent++
	if yangVersion != nil {
		e.w.Linef(indent, "yang-version: %s", yangVersion.Argument)
		e.check(yangVersion, nil)
	}
	if organization != nil {
		e.text(indent, "organization", organization.Argument)
		e.check(organization, nil)
	}
	if contact != nil {
		e.text(indent, "contact", contact.Argument)
		e.check(contact, nil)
	}
	if namespace != nil {
		e.w.Linef(indent, "namespace: %s", namespace.Argument)
	}
	if prefix != nil {
		e.emitPrefix(prefix, indent)
	}
	if belongsTo != nil {
		e.w.Linef(indent, "belongs-to: %s", belongsTo.Argument)
	}
	if len(revisions) > 0 {
		e.emitRevisions(revisions, indent)
	}
	if reference != nil {
		e.emitReference(reference, indent)
	}
	if len(features) > 0 {
		e.emitFeatures(features, indent)
	}
}

// emitPrefix writes the module prefix into metadata and records it as
// the context's local prefix for later qualified-name resolution.
func (e *Emitter) emitPrefix(stmt *yang.Node, indent int) {
	e.w.Linef(indent, "# TOSCA does not support prefix for local namespaces")
	e.w.Linef(indent, "prefix: %s", stmt.Argument)
	e.ctx.setLocalPrefix(stmt.Argument)
}

func (e *Emitter) emitRevisions(revisions []*yang.Node, indent int) {
	e.w.Linef(indent, "revisions:")
	for _, revision := range revisions {
		e.emitRevision(revision, indent+1)
	}
}

var revisionHandled = []string{yang.KwDescription, yang.KwReference}

// emitRevision writes one revision entry, keyed by its date argument.
// Revisions carrying neither description nor reference are skipped.
func (e *Emitter) emitRevision(stmt *yang.Node, indent int) {
	description := stmt.SearchOne(yang.KwDescription)
	reference := stmt.SearchOne(yang.KwReference)
	e.check(stmt, revisionHandled)

	if description == nil && reference == nil {
		return
	}

	e.w.Linef(indent, "'%s':", stmt.Argument)
	indent++
	if description != nil {
		e.emitDescription(description, indent)
	}
	if reference != nil {
		e.emitReference(reference, indent)
	}
}

func (e *Emitter) emitReference(stmt *yang.Node, indent int) {
	e.text(indent, "reference", stmt.Argument)
	e.check(stmt, nil)
}

func (e *Emitter) emitFeatures(features []*yang.Node, indent int) {
	e.w.Linef(indent, "features:")
	for _, feature := range features {
		e.emitFeature(feature, indent+1)
	}
}

var featureHandled = []string{yang.KwDescription, yang.KwReference, yang.KwStatus}

// emitFeature writes one feature entry, keyed by its name. Features
// with no description, reference, or status are skipped.
func (e *Emitter) emitFeature(stmt *yang.Node, indent int) {
	description := stmt.SearchOne(yang.KwDescription)
	reference := stmt.SearchOne(yang.KwReference)
	status := stmt.SearchOne(yang.KwStatus)
	e.check(stmt, featureHandled)

	if description == nil && reference == nil && status == nil {
		return
	}

	e.w.Linef(indent, "'%s':", stmt.Argument)
	indent++
	if description != nil {
		e.emitDescription(description, indent)
	}
	if reference != nil {
		e.emitReference(reference, indent)
	}
	if status != nil {
		e.w.Linef(indent, "status: %s", status.Argument)
	}
}
