// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package tosca

import (
	"strings"

	"github.com/ubicity-corp/yang2tosca/internal/yang"
)

// structuralKeywords are the child kinds that turn into property or
// attribute definitions of an enclosing data type.
var structuralKeywords = []string{
	yang.KwLeaf,
	yang.KwLeafList,
	yang.KwList,
	yang.KwContainer,
	yang.KwChoice,
	yang.KwAugment,
}

func isStructural(keyword string) bool {
	for _, kw := range structuralKeywords {
		if kw == keyword {
			return true
		}
	}
	return false
}

// emitDataTypesIn emits a top-level TOSCA data type for each typedef,
// grouping, container, list, augment-under-uses, and module-level
// augment found under a statement, recursing through choice cases.
// Children are always emitted before the enclosing type so that every
// referenced type name exists by the time it is used.
func (e *Emitter) emitDataTypesIn(stmt *yang.Node, indent int) {
	for _, typedef := range stmt.Search(yang.KwTypedef) {
		e.emitTypedef(typedef, indent)
		e.w.Blank()
	}

	for _, grouping := range stmt.Search(yang.KwGrouping) {
		e.emitGrouping(grouping, indent)
		e.w.Blank()
	}

	// A container or list whose only structural content is a single
	// 'uses' statement gets no data type of its own; references name
	// the grouping directly.
	for _, container := range stmt.Search(yang.KwContainer) {
		if !hasSingleUsesOnly(container) {
			e.emitDataType(container, indent)
			e.w.Blank()
		}
	}
	for _, list := range stmt.Search(yang.KwList) {
		if !hasSingleUsesOnly(list) {
			e.emitDataType(list, indent)
			e.w.Blank()
		}
	}

	// An augment nested inside a 'uses' is a deviation that needs
	// manual review, but it is emitted with the same machinery.
	for _, uses := range stmt.Search(yang.KwUses) {
		for _, augment := range uses.Search(yang.KwAugment) {
			e.warnf("Warning: review <%s> augments <%s>", augment.Argument, uses.Argument)
			e.emitDataType(augment, indent)
			e.w.Blank()
		}
	}

	for _, choice := range stmt.Search(yang.KwChoice) {
		for _, c := range choice.Search(yang.KwCase) {
			e.emitDataTypesIn(c, indent)
		}
	}

	for _, augment := range stmt.Search(yang.KwAugment) {
		e.emitAugmentedType(augment, indent)
		e.w.Blank()
	}
}

var typedefHandled = []string{
	yang.KwDefault,
	yang.KwDescription,
	yang.KwReference,
	yang.KwType,
	yang.KwUnits,
}

// emitTypedef creates a TOSCA data type from a YANG 'typedef'.
func (e *Emitter) emitTypedef(stmt *yang.Node, indent int) {
	derivedFrom := stmt.SearchOne(yang.KwType)
	units := stmt.SearchOne(yang.KwUnits)
	defaultStmt := stmt.SearchOne(yang.KwDefault)
	description := stmt.SearchOne(yang.KwDescription)

	e.w.Linef(indent, "%s:", stmt.Argument)
	indent++
	if description != nil {
		e.emitDescription(description, indent)
	}
	if derivedFrom != nil {
		e.emitDerivedFrom(derivedFrom, indent)
	}
	if units != nil {
		e.emitUnits(units, indent)
	}
	if defaultStmt != nil {
		// TOSCA data types have no default; keep it visible.
		e.w.Linef(indent, "# TOSCA doesn't support 'default' here")
		e.w.Linef(indent, "# default: %s", defaultStmt.Argument)
	}
	e.emitMetadata(stmt, indent)

	e.check(stmt, typedefHandled)
}

var groupingHandled = []string{
	yang.KwChoice,
	yang.KwContainer,
	yang.KwDescription,
	yang.KwGrouping,
	yang.KwLeaf,
	yang.KwLeafList,
	yang.KwList,
	yang.KwReference,
	yang.KwTypedef,
	yang.KwUses,
}

// emitGrouping creates a TOSCA data type from a YANG 'grouping'. A thin
// wrapper around emitDataType so the grouping's own allow-list applies.
func (e *Emitter) emitGrouping(stmt *yang.Node, indent int) {
	e.emitDataType(stmt, indent)
	e.check(stmt, groupingHandled)
}

// hasSingleUsesOnly reports whether a statement's only structural
// content is exactly one 'uses' substatement.
func hasSingleUsesOnly(stmt *yang.Node) bool {
	if len(stmt.Search(yang.KwUses)) != 1 {
		return false
	}
	for _, sub := range stmt.Children {
		if isStructural(sub.Keyword) {
			return false
		}
	}
	return true
}

// singleUsesGrouping returns the (prefix-resolved) grouping name a
// single-uses statement stands for.
func (e *Emitter) singleUsesGrouping(stmt *yang.Node) string {
	uses := stmt.Search(yang.KwUses)
	return e.ctx.qualifiedName(uses[0].Argument, "")
}

// emitDataType creates a TOSCA data type from a 'container', 'grouping',
// 'list', or uses-level 'augment' statement. These statements produce
// both a data type (here) and a property definition inside some other
// type (in property.go); the consistency check runs on the property
// side, which sees the same children.
func (e *Emitter) emitDataType(stmt *yang.Node, indent int) {
	// Children first: nested typedefs, groupings, containers, lists,
	// choices, and augments become top-level types of their own.
	e.emitDataTypesIn(stmt, indent)

	e.w.Linef(indent, "%s:", stmt.Argument)
	indent++
	if description := stmt.SearchOne(yang.KwDescription); description != nil {
		e.emitDescription(description, indent)
	}
	e.emitMetadata(stmt, indent)

	// TOSCA supports single inheritance only: the first 'uses' becomes
	// the parent type, the rest are copied in as properties below.
	uses := stmt.Search(yang.KwUses)
	if len(uses) > 0 {
		e.w.Linef(indent, "derived_from: %s", e.ctx.qualifiedName(uses[0].Argument, ""))
	}
	if when := stmt.SearchOne(yang.KwWhen); when != nil {
		e.emitWhen(when, indent)
	}
	if must := stmt.SearchOne(yang.KwMust); must != nil {
		e.emitMust(must, indent)
	}

	hasProps := e.hasProperties(stmt)
	if hasProps {
		e.w.Linef(indent, "properties:")
		e.emitProperties(stmt, indent+1, true, "")
		if len(uses) > 1 {
			e.emitUsesCopies(stmt, uses[1:], indent+1, true)
		}
	}

	// Attribute-classified children ("config false") have no TOSCA
	// data-type equivalent; they are emitted in a commented block to be
	// enabled when the data type is promoted to a node type.
	if e.hasAttributes(stmt) {
		e.w.Linef(indent, "# TOSCA data types do not support attributes")
		e.w.Linef(indent, "# Enable attributes when converting to a node type")
		if !hasProps {
			e.w.Linef(indent, "properties:")
		}
		e.w.Linef(indent, "# attributes:")
		e.emitProperties(stmt, indent+1, false, "")
	}
	if len(uses) > 1 {
		e.emitUsesCopies(stmt, uses[1:], indent+1, false)
	}
}

var augmentedTypeHandled = []string{
	yang.KwCase,
	yang.KwChoice,
	yang.KwContainer,
	yang.KwDescription,
	yang.KwIfFeature,
	yang.KwLeaf,
	yang.KwLeafList,
	yang.KwList,
	yang.KwReference,
	yang.KwUses,
	yang.KwWhen,
}

// emitAugmentedType creates a TOSCA data type from a module-level
// 'augment' statement: a type named after the augmented target that
// derives from the target's own type.
func (e *Emitter) emitAugmentedType(stmt *yang.Node, indent int) {
	e.emitDataTypesIn(stmt, indent)

	e.w.Linef(indent, "%s:", e.augmentTargetName(stmt))
	indent++
	if description := stmt.SearchOne(yang.KwDescription); description != nil {
		e.emitDescription(description, indent)
	}
	if ifFeature := stmt.SearchOne(yang.KwIfFeature); ifFeature != nil {
		e.w.Linef(indent, "# if-feature: %s", ifFeature.Argument)
	}

	path := strings.Split(stmt.Argument, "/")
	if path[0] != "" {
		e.warnf("Augment does not specify an absolute path")
	}
	e.w.Linef(indent, "derived_from: %s", e.ctx.qualifiedName(path[len(path)-1], ""))

	e.emitMetadata(stmt, indent)

	if when := stmt.SearchOne(yang.KwWhen); when != nil {
		e.emitWhen(when, indent)
	}
	if must := stmt.SearchOne(yang.KwMust); must != nil {
		e.emitMust(must, indent)
	}

	e.w.Linef(indent, "properties:")
	e.emitProperties(stmt, indent+1, true, "")
	uses := stmt.Search(yang.KwUses)
	if len(uses) > 0 {
		e.emitUsesCopies(stmt, uses, indent+1, true)
	}

	if e.hasAttributes(stmt) {
		e.w.Linef(indent, "# TOSCA data types do not support attributes")
		e.w.Linef(indent, "# Enable attributes when converting to a node type")
		e.w.Linef(indent, "# attributes:")
		e.emitProperties(stmt, indent+1, false, "")
	}
	if len(uses) > 0 {
		e.emitUsesCopies(stmt, uses, indent+1, false)
	}

	e.check(stmt, augmentedTypeHandled)
}

// augmentTargetName names the data type produced by a module-level
// augment. The resolved target node wins; an unresolved target falls
// back to the last segment of the augment path.
func (e *Emitter) augmentTargetName(stmt *yang.Node) string {
	if stmt.Target != nil {
		return stmt.Target.Argument
	}
	path := strings.Split(stmt.Argument, "/")
	last := path[len(path)-1]
	if _, local, ok := strings.Cut(last, ":"); ok {
		return local
	}
	return last
}

var derivedFromHandled = []string{
	yang.KwEnum,
	yang.KwFractionDigits,
	yang.KwLength,
	yang.KwRange,
	yang.KwPattern,
	yang.KwType,
}

// emitDerivedFrom writes the derived_from line for a typedef's 'type'
// statement, resolving it through the type map. The reserved mapping
// target "union" has no TOSCA counterpart: every member type is written
// out as a commented option for manual disambiguation.
func (e *Emitter) emitDerivedFrom(stmt *yang.Node, indent int) {
	toscaType, ok := e.ctx.typeMap[stmt.Argument]
	if !ok {
		toscaType = e.ctx.qualifiedName(stmt.Argument, "")
	}

	if toscaType == "union" {
		e.w.Linef(indent, "# The YANG type is a union. Select one of the following options:")
		for i, member := range stmt.Search(yang.KwType) {
			e.w.Linef(indent, "# Option %d", i+1)
			e.emitDerivedFrom(member, indent)
		}
		e.w.Linef(indent, "#")
	} else {
		e.w.Linef(indent, "derived_from: %s", toscaType)
		if fractionDigits := stmt.SearchOne(yang.KwFractionDigits); fractionDigits != nil {
			e.w.Linef(indent, "# fraction-digits: %s", fractionDigits.Argument)
		}
		e.emitConstraints(stmt, indent)
	}

	e.check(stmt, derivedFromHandled)
}
