// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package tosca

import (
	"strings"

	"github.com/ubicity-corp/yang2tosca/internal/yang"
)

// boundsClause is one clause of a YANG length or range expression:
// a low bound and an optional high bound. A clause without a high bound
// means a single admissible value for ranges and an upper bound for
// lengths.
type boundsClause struct {
	low  string
	high string
}

// parseClauses parses a '|'-separated length or range expression. Each
// clause is "low", optionally followed by ".." and "high"; the bounds
// may be the sentinels min, max, -INF, and INF.
func parseClauses(arg string) []boundsClause {
	var clauses []boundsClause
	for _, part := range strings.Split(arg, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		low, high, bounded := strings.Cut(part, "..")
		clause := boundsClause{low: strings.TrimSpace(low)}
		if bounded {
			clause.high = strings.TrimSpace(high)
		}
		clauses = append(clauses, clause)
	}
	return clauses
}

// emitConstraints writes the constraint list for a typed value, in
// fixed order: length, range, patterns, enums, bits, min-elements,
// max-elements. The block is omitted when no constraint is present.
func (e *Emitter) emitConstraints(stmt *yang.Node, indent int) {
	length := stmt.SearchOne(yang.KwLength)
	inRange := stmt.SearchOne(yang.KwRange)
	patterns := stmt.Search(yang.KwPattern)
	enums := stmt.Search(yang.KwEnum)
	bits := stmt.Search(yang.KwBit)
	minElements := stmt.SearchOne(yang.KwMinElements)
	maxElements := stmt.SearchOne(yang.KwMaxElements)

	if length == nil && inRange == nil && len(patterns) == 0 && len(enums) == 0 &&
		len(bits) == 0 && minElements == nil && maxElements == nil {
		return
	}

	e.w.Linef(indent, "constraints:")
	indent++
	if length != nil {
		e.emitLength(length, indent)
	}
	if inRange != nil {
		e.emitInRange(inRange, indent)
	}
	for _, pattern := range patterns {
		e.w.Linef(indent, "- pattern: '%s'", pattern.Argument)
		e.check(pattern, nil)
	}
	if len(enums) > 0 {
		e.emitEnums(enums, indent)
	}
	if len(bits) > 0 {
		e.emitBits(bits, indent)
	}
	if minElements != nil {
		e.w.Linef(indent, "- min_length: %s", minElements.Argument)
	}
	if maxElements != nil {
		e.w.Linef(indent, "- max_length: %s", maxElements.Argument)
	}
}

// emitLength translates a YANG length expression. A single clause maps
// directly onto min_length/max_length, omitting bounds equal to their
// sentinels. Multiple clauses become a disjunction, which the TOSCA
// constraint grammar does not actually allow; the output is flagged for
// manual correction rather than dropped.
func (e *Emitter) emitLength(stmt *yang.Node, indent int) {
	clauses := parseClauses(stmt.Argument)
	if len(clauses) == 0 {
		return
	}

	if len(clauses) > 1 {
		e.w.Linef(indent, "# This is not (yet) valid TOSCA. FIX MANUALLY")
		e.w.Linef(indent, "- or:")
		indent++
		for _, clause := range clauses {
			if clause.high == "" {
				if clause.low != "max" {
					e.w.Linef(indent, "- max_length: %s", clause.low)
				}
				continue
			}
			inner := indent
			if clause.low != "min" && clause.high != "max" {
				e.w.Linef(indent, "- and:")
				inner++
			}
			if clause.low != "min" {
				e.w.Linef(inner, "- min_length: %s", clause.low)
			}
			if clause.high != "max" {
				e.w.Linef(inner, "- max_length: %s", clause.high)
			}
		}
	} else {
		clause := clauses[0]
		if clause.high != "" {
			if clause.low != "min" {
				e.w.Linef(indent, "- min_length: %s", clause.low)
			}
			if clause.high != "max" {
				e.w.Linef(indent, "- max_length: %s", clause.high)
			}
		} else if clause.low != "max" {
			// A length with no high bound is an upper bound.
			e.w.Linef(indent, "- max_length: %s", clause.low)
		}
	}

	e.check(stmt, nil)
}

// emitInRange translates a YANG range expression. Bounded clauses map
// onto in_range pairs, unbounded sentinels onto UNBOUNDED; a clause
// with no high bound denotes one admissible value, not a bound. Mixing
// valid values with ranges, or using more than one range, is not valid
// TOSCA and is flagged for manual correction.
func (e *Emitter) emitInRange(stmt *yang.Node, indent int) {
	clauses := parseClauses(stmt.Argument)

	numValues := 0
	numRanges := 0
	for _, clause := range clauses {
		if clause.high != "" {
			numRanges++
		} else {
			numValues++
		}
	}

	if (numValues > 0 && numRanges > 0) || numRanges > 1 {
		e.w.Linef(indent, "# This is not (yet) valid TOSCA. FIX MANUALLY")
		e.w.Linef(indent, "- or:")
		indent++
	}

	if numValues > 0 {
		e.w.Linef(indent, "- valid_values:")
		for _, clause := range clauses {
			if clause.high == "" {
				e.w.Linef(indent+1, "- %s", clause.low)
			}
		}
	}

	for _, clause := range clauses {
		if clause.high == "" {
			continue
		}
		low, high := clause.low, clause.high
		if low == "min" {
			low = "UNBOUNDED"
		}
		if high == "max" {
			high = "UNBOUNDED"
		}
		e.w.Linef(indent, "- in_range: [%s, %s]", low, high)
	}

	e.check(stmt, nil)
}

var enumHandled = []string{yang.KwValue, yang.KwDescription}

// emitEnums writes an enumeration as a valid_values list. Values that
// YAML would auto-type (numbers, booleans, dates) are quoted.
func (e *Emitter) emitEnums(enums []*yang.Node, indent int) {
	e.w.Linef(indent, "- valid_values:")
	indent++
	for _, enum := range enums {
		value := enum.SearchOne(yang.KwValue)
		if value != nil {
			e.w.Linef(indent, "- %s  # Value: %s", escapeValue(enum.Argument), value.Argument)
		} else {
			e.w.Linef(indent, "- %s", escapeValue(enum.Argument))
		}
		if description := enum.SearchOne(yang.KwDescription); description != nil {
			e.commentLines(indent+1, description.Argument)
		}
		e.check(enum, enumHandled)
	}
}

var bitHandled = []string{yang.KwDescription}

// emitBits writes bit flags as a valid_values list of their names.
func (e *Emitter) emitBits(bits []*yang.Node, indent int) {
	e.w.Linef(indent, "- valid_values:")
	indent++
	for _, bit := range bits {
		e.w.Linef(indent, "- %s", escapeValue(bit.Argument))
		if description := bit.SearchOne(yang.KwDescription); description != nil {
			e.commentLines(indent+1, description.Argument)
		}
		e.check(bit, bitHandled)
	}
}
