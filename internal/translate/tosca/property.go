// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package tosca

import (
	"strings"

	"github.com/ubicity-corp/yang2tosca/internal/yang"
)

// isAttribute reports whether a statement defines an attribute: a
// structural child carrying a "config false" substatement. Everything
// else is a property.
func isAttribute(stmt *yang.Node) bool {
	config := stmt.SearchOne(yang.KwConfig)
	return config != nil && config.Argument == "false"
}

// hasProperties reports whether a statement contributes any property
// definitions, either locally or through the groupings of its second
// and later 'uses' statements.
func (e *Emitter) hasProperties(stmt *yang.Node) bool {
	for _, sub := range stmt.Children {
		if isStructural(sub.Keyword) && !isAttribute(sub) {
			return true
		}
	}
	uses := stmt.Search(yang.KwUses)
	if len(uses) > 1 {
		for _, use := range uses[1:] {
			if use.Grouping != nil && e.hasProperties(use.Grouping) {
				return true
			}
		}
	}
	return false
}

// hasAttributes is the attribute-side counterpart of hasProperties.
func (e *Emitter) hasAttributes(stmt *yang.Node) bool {
	for _, sub := range stmt.Children {
		if isStructural(sub.Keyword) && isAttribute(sub) {
			return true
		}
	}
	uses := stmt.Search(yang.KwUses)
	if len(uses) > 1 {
		for _, use := range uses[1:] {
			if use.Grouping != nil && e.hasAttributes(use.Grouping) {
				return true
			}
		}
	}
	return false
}

// emitProperties walks a statement's children in declaration order and
// emits a definition for each structural child on the requested side of
// the property/attribute partition: prop selects properties, !prop
// selects the commented attribute block.
func (e *Emitter) emitProperties(stmt *yang.Node, indent int, prop bool, qualifier string) {
	for _, sub := range stmt.Children {
		switch sub.Keyword {
		case yang.KwLeaf:
			e.emitLeaf(sub, indent, prop, qualifier)
		case yang.KwLeafList:
			e.emitLeafList(sub, indent, prop, qualifier)
		case yang.KwList:
			e.emitList(sub, indent, prop, qualifier)
		case yang.KwContainer:
			e.emitContainer(sub, indent, prop, qualifier)
		case yang.KwChoice:
			e.emitChoice(sub, indent, prop, qualifier)
		case yang.KwAugment:
			e.emitAugmentProperty(sub, indent, prop)
		default:
			// Not a property-bearing statement.
		}
	}
}

// emitUsesCopies copies the property (or attribute) definitions of the
// groupings behind additional 'uses' statements into the current type.
// TOSCA's single inheritance already consumed the first 'uses' as the
// parent type; the rest cannot derive and are inlined with a provenance
// comment instead.
func (e *Emitter) emitUsesCopies(stmt *yang.Node, uses []*yang.Node, indent int, prop bool) {
	for _, use := range uses {
		e.emitUse(stmt, use, indent, prop)
	}
}

func (e *Emitter) emitUse(stmt, use *yang.Node, indent int, prop bool) {
	grouping := use.Grouping
	if grouping == nil {
		e.warnf("%s: uses(%s) not found", stmt.Path(), use.Argument)
		return
	}

	if (prop && !e.hasProperties(grouping)) || (!prop && !e.hasAttributes(grouping)) {
		return
	}

	// Copied names keep their namespace qualifier unless it is the
	// local prefix.
	qualifier := ""
	if prefix, _, ok := strings.Cut(use.Argument, ":"); ok && e.ctx.isForeignPrefix(prefix) {
		qualifier = prefix
	}

	label := "properties"
	if !prop {
		label = "attributes"
	}
	e.w.Linef(indent, "# %s from '%s'", label, use.Argument)
	if ifFeature := use.SearchOne(yang.KwIfFeature); ifFeature != nil {
		e.w.Linef(indent, "# Used only if the '%s' feature is enabled", ifFeature.Argument)
	}
	e.emitProperties(grouping, indent, prop, qualifier)
}

var leafHandled = []string{
	yang.KwReference,
	yang.KwDescription,
	yang.KwType,
	yang.KwUnits,
	yang.KwConfig,
	yang.KwMandatory,
	yang.KwDefault,
	yang.KwMust,
	yang.KwWhen,
}

// emitLeaf writes a scalar property or attribute definition.
func (e *Emitter) emitLeaf(stmt *yang.Node, indent int, prop bool, qualifier string) {
	isAttr := isAttribute(stmt)
	if isAttr == prop {
		return
	}

	e.w.Linef(indent, "%s:", e.propertyName(stmt.Argument))
	indent++
	if description := stmt.SearchOne(yang.KwDescription); description != nil {
		e.emitDescription(description, indent)
	}
	e.emitMetadata(stmt, indent)
	if typeStmt := stmt.SearchOne(yang.KwType); typeStmt != nil {
		e.emitType(typeStmt, indent, qualifier)
	}
	if !isAttr {
		e.emitMandatory(stmt.SearchOne(yang.KwMandatory), indent)
	}
	if defaultStmt := stmt.SearchOne(yang.KwDefault); defaultStmt != nil {
		e.w.Linef(indent, "default: %s", defaultStmt.Argument)
	}
	if units := stmt.SearchOne(yang.KwUnits); units != nil {
		e.emitUnits(units, indent)
	}
	if when := stmt.SearchOne(yang.KwWhen); when != nil {
		e.emitWhen(when, indent)
	}
	if must := stmt.SearchOne(yang.KwMust); must != nil {
		e.emitMust(must, indent)
	}

	e.check(stmt, leafHandled)
}

// emitMandatory maps YANG 'mandatory' onto TOSCA 'required'. YANG
// leaves default to optional, so a missing statement emits false.
func (e *Emitter) emitMandatory(stmt *yang.Node, indent int) {
	required := "false"
	if stmt != nil {
		required = stmt.Argument
	}
	e.w.Linef(indent, "required: %s", required)
}

var leafListHandled = []string{
	yang.KwReference,
	yang.KwDescription,
	yang.KwType,
	yang.KwUnits,
	yang.KwConfig,
	yang.KwMinElements,
	yang.KwMaxElements,
	yang.KwMust,
	yang.KwWhen,
}

// emitLeafList writes a list-typed property whose entry schema is the
// leaf-list's scalar type.
func (e *Emitter) emitLeafList(stmt *yang.Node, indent int, prop bool, qualifier string) {
	if isAttribute(stmt) == prop {
		return
	}

	e.w.Linef(indent, "%s:", e.propertyName(stmt.Argument))
	indent++
	if description := stmt.SearchOne(yang.KwDescription); description != nil {
		e.emitDescription(description, indent)
	}
	e.emitMetadata(stmt, indent)
	e.w.Linef(indent, "type: list")
	if typeStmt := stmt.SearchOne(yang.KwType); typeStmt != nil {
		e.w.Linef(indent, "entry_schema:")
		e.emitType(typeStmt, indent+1, qualifier)
	}
	if units := stmt.SearchOne(yang.KwUnits); units != nil {
		e.emitUnits(units, indent)
	}
	e.emitConstraints(stmt, indent)
	if when := stmt.SearchOne(yang.KwWhen); when != nil {
		e.emitWhen(when, indent)
	}
	if must := stmt.SearchOne(yang.KwMust); must != nil {
		e.emitMust(must, indent)
	}

	e.check(stmt, leafListHandled)
}

var listHandled = []string{
	yang.KwReference,
	yang.KwDescription,
	yang.KwConfig,
	yang.KwOrderedBy,
	yang.KwTypedef,
	yang.KwContainer,
	yang.KwGrouping,
	yang.KwList,
	yang.KwUses,
	yang.KwKey,
	yang.KwUnique,
	yang.KwLeaf,
	yang.KwLeafList,
	yang.KwMinElements,
	yang.KwMaxElements,
	yang.KwWhen,
	yang.KwMust,
}

// emitList writes a list-typed property whose entry schema is the data
// type generated for the list statement — or, for a single-uses list,
// the grouping it stands for.
func (e *Emitter) emitList(stmt *yang.Node, indent int, prop bool, qualifier string) {
	if isAttribute(stmt) == prop {
		return
	}

	entrySchema := stmt.Argument
	if hasSingleUsesOnly(stmt) {
		entrySchema = e.singleUsesGrouping(stmt)
	}
	if qualifier != "" {
		entrySchema = qualifier + ":" + entrySchema
	}

	e.w.Linef(indent, "%s:", e.propertyName(stmt.Argument))
	indent++
	if description := stmt.SearchOne(yang.KwDescription); description != nil {
		e.emitDescription(description, indent)
	}
	e.emitMetadata(stmt, indent)
	e.w.Linef(indent, "type: list")
	e.w.Linef(indent, "entry_schema: %s", entrySchema)
	e.emitConstraints(stmt, indent)
	if key := stmt.SearchOne(yang.KwKey); key != nil {
		e.w.Linef(indent, "# key: %s", key.Argument)
	}
	if unique := stmt.SearchOne(yang.KwUnique); unique != nil {
		e.w.Linef(indent, "# unique: %s", unique.Argument)
	}
	if orderedBy := stmt.SearchOne(yang.KwOrderedBy); orderedBy != nil {
		e.w.Linef(indent, "# ordered-by: %s", orderedBy.Argument)
	}

	e.check(stmt, listHandled)
}

var containerHandled = []string{
	yang.KwReference,
	yang.KwDescription,
	yang.KwConfig,
	yang.KwPresence,
	yang.KwTypedef,
	yang.KwContainer,
	yang.KwGrouping,
	yang.KwList,
	yang.KwUses,
	yang.KwLeaf,
	yang.KwLeafList,
	yang.KwWhen,
	yang.KwMust,
}

// emitContainer writes a property referencing the data type generated
// for the container — or, for a single-uses container, the grouping it
// stands for.
func (e *Emitter) emitContainer(stmt *yang.Node, indent int, prop bool, qualifier string) {
	if isAttribute(stmt) == prop {
		return
	}

	typeName := stmt.Argument
	if hasSingleUsesOnly(stmt) {
		typeName = e.singleUsesGrouping(stmt)
	}
	if qualifier != "" {
		typeName = qualifier + ":" + typeName
	}

	e.w.Linef(indent, "%s:", e.propertyName(stmt.Argument))
	indent++
	if description := stmt.SearchOne(yang.KwDescription); description != nil {
		e.emitDescription(description, indent)
	}
	e.emitMetadata(stmt, indent)
	e.w.Linef(indent, "type: %s", typeName)
	if must := stmt.SearchOne(yang.KwMust); must != nil {
		e.emitMust(must, indent)
	}
	if presence := stmt.SearchOne(yang.KwPresence); presence != nil {
		e.w.Linef(indent, "# presence: %s", presence.Argument)
	}

	e.check(stmt, containerHandled)
}

var choiceHandled = []string{
	yang.KwCase,
	yang.KwConfig,
	yang.KwDefault,
	yang.KwDescription,
	yang.KwLeaf,
	yang.KwMandatory,
}

// emitChoice flattens a YANG 'choice' into a string-typed property
// whose valid values are the case names, followed by one property block
// per option. TOSCA has no discriminated-union construct, so this is a
// deliberate, commented information loss.
func (e *Emitter) emitChoice(stmt *yang.Node, indent int, prop bool, qualifier string) {
	isAttr := isAttribute(stmt)
	if isAttr == prop {
		return
	}

	// Explicit cases win; bare leaf children each stand for a
	// single-leaf case.
	cases := stmt.Search(yang.KwCase)
	leafs := stmt.Search(yang.KwLeaf)
	options := cases
	if len(options) == 0 {
		options = leafs
	}

	e.w.Linef(indent, "%s:", e.propertyName(stmt.Argument))
	origIndent := indent
	indent++
	if description := stmt.SearchOne(yang.KwDescription); description != nil {
		e.emitDescription(description, indent)
	}
	// Choices are always strings.
	e.w.Linef(indent, "type: string")
	if !isAttr {
		e.emitMandatory(stmt.SearchOne(yang.KwMandatory), indent)
	}
	if defaultStmt := stmt.SearchOne(yang.KwDefault); defaultStmt != nil {
		e.w.Linef(indent, "default: %s", defaultStmt.Argument)
	}
	e.w.Linef(indent, "constraints:")
	e.w.Linef(indent+1, "- valid_values:")
	for _, option := range options {
		e.w.Linef(indent+2, "- %s", option.Argument)
	}

	// One property block per option, each flagged for the operator.
	indent = origIndent
	e.w.Linef(indent, "# Select one of the following options")
	e.w.Linef(indent, "#")
	for _, c := range cases {
		e.emitCase(c, indent, qualifier)
	}
	for _, leaf := range leafs {
		e.w.Linef(indent, "# The following properties are used in case of '%s'", leaf.Argument)
		e.emitLeaf(leaf, indent, true, qualifier)
	}
	e.w.Linef(indent, "# End of options")
	e.w.Linef(indent, "#")

	e.check(stmt, choiceHandled)
}

var caseHandled = []string{
	yang.KwLeaf,
	yang.KwLeafList,
	yang.KwList,
	yang.KwContainer,
	yang.KwChoice,
	yang.KwDescription,
}

func (e *Emitter) emitCase(stmt *yang.Node, indent int, qualifier string) {
	e.w.Linef(indent, "# The following properties are used in case of '%s'", stmt.Argument)
	if description := stmt.SearchOne(yang.KwDescription); description != nil {
		e.commentLines(indent+1, description.Argument)
	}
	e.emitProperties(stmt, indent, true, qualifier)

	e.check(stmt, caseHandled)
}

var augmentPropHandled = []string{
	yang.KwReference,
	yang.KwDescription,
	yang.KwContainer,
	yang.KwList,
	yang.KwUses,
	yang.KwLeaf,
	yang.KwLeafList,
	yang.KwWhen,
	yang.KwMust,
}

// emitAugmentProperty writes the property definition referencing the
// data type generated for an augment statement.
func (e *Emitter) emitAugmentProperty(stmt *yang.Node, indent int, prop bool) {
	if isAttribute(stmt) == prop {
		return
	}

	e.w.Linef(indent, "%s:", e.propertyName(stmt.Argument))
	indent++
	if description := stmt.SearchOne(yang.KwDescription); description != nil {
		e.emitDescription(description, indent)
	}
	e.emitMetadata(stmt, indent)
	e.w.Linef(indent, "type: %s", stmt.Argument)
	if must := stmt.SearchOne(yang.KwMust); must != nil {
		e.emitMust(must, indent)
	}

	e.check(stmt, augmentPropHandled)
}

var typeHandled = []string{
	yang.KwBit,
	yang.KwEnum,
	yang.KwFractionDigits,
	yang.KwLength,
	yang.KwRange,
	yang.KwPattern,
	yang.KwPath,
	yang.KwType,
}

// emitType writes the type line for a leaf or leaf-list entry schema,
// resolving the YANG type through the type map. Union member types are
// enumerated as commented options, since TOSCA has no union types.
func (e *Emitter) emitType(stmt *yang.Node, indent int, qualifier string) {
	toscaType, ok := e.ctx.typeMap[stmt.Argument]
	if !ok {
		toscaType = e.ctx.qualifiedName(stmt.Argument, qualifier)
	}

	if toscaType == "union" {
		e.w.Linef(indent, "# The YANG type is a union. Select one of the following options:")
		for i, member := range stmt.Search(yang.KwType) {
			e.w.Linef(indent, "# Option %d", i+1)
			e.emitType(member, indent, "")
		}
		e.w.Linef(indent, "#")
	} else {
		e.w.Linef(indent, "type: %s", toscaType)
		// Leafrefs keep their path for reference.
		if path := stmt.SearchOne(yang.KwPath); path != nil {
			e.w.Linef(indent, "# path: %s", path.Argument)
		}
		if fractionDigits := stmt.SearchOne(yang.KwFractionDigits); fractionDigits != nil {
			e.w.Linef(indent, "# fraction-digits: %s", fractionDigits.Argument)
		}
		e.emitConstraints(stmt, indent)
	}

	e.check(stmt, typeHandled)
}

// emitUnits notes YANG 'units' as a comment; TOSCA expresses units
// through scalar-unit types instead of a keyword.
func (e *Emitter) emitUnits(stmt *yang.Node, indent int) {
	e.w.Linef(indent, "# TOSCA uses scalar unit types")
	e.w.Linef(indent, "# units: %s", stmt.Argument)
}

func (e *Emitter) emitWhen(stmt *yang.Node, indent int) {
	e.w.Linef(indent, "# when: %s", stmt.Argument)
}

var mustHandled = []string{yang.KwErrorMessage}

// emitMust notes a YANG 'must' XPath constraint as a comment; TOSCA
// constraint clauses cannot express XPath.
func (e *Emitter) emitMust(stmt *yang.Node, indent int) {
	e.w.Linef(indent, "# must:")
	e.w.Linef(indent, "#   %s", stmt.Argument)
	if errorMessage := stmt.SearchOne(yang.KwErrorMessage); errorMessage != nil {
		e.w.Linef(indent, "#   error-message: %s", errorMessage.Argument)
	}

	e.check(stmt, mustHandled)
}
