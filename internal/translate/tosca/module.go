// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package tosca

import "github.com/ubicity-corp/yang2tosca/internal/yang"

// moduleHandled lists the module substatements the emitter consumes.
var moduleHandled = []string{
	yang.KwAugment,
	yang.KwBelongsTo,
	yang.KwContact,
	yang.KwContainer,
	yang.KwDescription,
	yang.KwFeature,
	yang.KwGrouping,
	yang.KwImport,
	yang.KwInclude,
	yang.KwList,
	yang.KwNamespace,
	yang.KwOrganization,
	yang.KwPrefix,
	yang.KwReference,
	yang.KwRevision,
	yang.KwTypedef,
	yang.KwUses,
	yang.KwYangVersion,
}

// emitModule writes a complete TOSCA document for one YANG module: the
// version header, an attribution comment, the module description, the
// metadata block, the import list, and the data_types section.
func (e *Emitter) emitModule(stmt *yang.Node) {
	e.w.Linef(0, "tosca_definitions_version: tosca_simple_yaml_1_3")
	e.w.Blank()

	e.w.Linef(0, "# This template was auto-generated by yang2tosca from the YANG module '%s'", stmt.Argument)
	e.w.Blank()

	if description := stmt.SearchOne(yang.KwDescription); description != nil {
		e.emitDescription(description, 0)
		e.w.Blank()
	}

	e.emitMetadata(stmt, 0)
	e.w.Blank()

	e.emitImportsAndIncludes(stmt, 0)
	e.w.Blank()

	e.w.Linef(0, "data_types:")
	e.w.Blank()
	e.emitDataTypesIn(stmt, 1)

	e.check(stmt, moduleHandled)
}
