// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package tosca

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// typedefSource wraps a type body in a minimal module for constraint
// translation tests.
func typedefSource(typeBody string) string {
	return fmt.Sprintf(`
module example {
  prefix ex;

  typedef subject {
    %s
  }
}
`, typeBody)
}

func TestConstraints_Range(t *testing.T) {
	result, _ := translateSource(t, typedefSource(`type uint8 { range "0..100"; }`))
	assert.Contains(t, result, "constraints:")
	assert.Contains(t, result, "- in_range: [0, 100]")
}

func TestConstraints_RangeUnbounded(t *testing.T) {
	result, _ := translateSource(t, typedefSource(`type int32 { range "min..0"; }`))
	assert.Contains(t, result, "- in_range: [UNBOUNDED, 0]")
}

func TestConstraints_RangeSingleValue(t *testing.T) {
	result, _ := translateSource(t, typedefSource(`type uint8 { range "5"; }`))
	assert.Contains(t, result, "- valid_values:")
	assert.Contains(t, result, "- 5")
	assert.NotContains(t, result, "in_range")
}

func TestConstraints_RangeDisjunction(t *testing.T) {
	result, _ := translateSource(t, typedefSource(`type uint8 { range "1..10 | 20..30"; }`))
	assert.Contains(t, result, "# This is not (yet) valid TOSCA. FIX MANUALLY")
	assert.Contains(t, result, "- or:")
	assert.Contains(t, result, "- in_range: [1, 10]")
	assert.Contains(t, result, "- in_range: [20, 30]")
}

func TestConstraints_RangeMixed(t *testing.T) {
	result, _ := translateSource(t, typedefSource(`type uint8 { range "5 | 10..20"; }`))
	assert.Contains(t, result, "# This is not (yet) valid TOSCA. FIX MANUALLY")
	assert.Contains(t, result, "- or:")
	assert.Contains(t, result, "- valid_values:")
	assert.Contains(t, result, "- in_range: [10, 20]")
}

func TestConstraints_Length(t *testing.T) {
	result, _ := translateSource(t, typedefSource(`type string { length "1..10"; }`))
	assert.Contains(t, result, "- min_length: 1")
	assert.Contains(t, result, "- max_length: 10")
}

func TestConstraints_LengthUpperBoundOnly(t *testing.T) {
	result, _ := translateSource(t, typedefSource(`type string { length "10"; }`))
	assert.Contains(t, result, "- max_length: 10")
	assert.NotContains(t, result, "min_length")
}

func TestConstraints_LengthSentinels(t *testing.T) {
	result, _ := translateSource(t, typedefSource(`type string { length "min..32"; }`))
	assert.Contains(t, result, "- max_length: 32")
	assert.NotContains(t, result, "min_length")
}

func TestConstraints_LengthDisjunction(t *testing.T) {
	result, _ := translateSource(t, typedefSource(`type string { length "1..4 | 8..12"; }`))
	assert.Contains(t, result, "# This is not (yet) valid TOSCA. FIX MANUALLY")
	assert.Contains(t, result, "- or:")
	assert.Contains(t, result, "- and:")
	assert.Contains(t, result, "- min_length: 1")
	assert.Contains(t, result, "- max_length: 4")
	assert.Contains(t, result, "- min_length: 8")
	assert.Contains(t, result, "- max_length: 12")
}

func TestConstraints_Pattern(t *testing.T) {
	result, _ := translateSource(t, typedefSource(`type string { pattern "[a-z]+"; }`))
	assert.Contains(t, result, "- pattern: '[a-z]+'")
}

func TestConstraints_Enumeration(t *testing.T) {
	result, _ := translateSource(t, typedefSource(`
    type enumeration {
      enum up {
        value 1;
        description "Interface is ready.";
      }
      enum down;
    }`))
	assert.Contains(t, result, "- valid_values:")
	assert.Contains(t, result, "- up  # Value: 1")
	assert.Contains(t, result, "# Interface is ready.")
	assert.Contains(t, result, "- down")
}

func TestConstraints_EnumValueEscaping(t *testing.T) {
	result, _ := translateSource(t, typedefSource(`
    type enumeration {
      enum true;
      enum 42;
      enum plain;
    }`))
	assert.Contains(t, result, "- 'true'")
	assert.Contains(t, result, "- '42'")
	assert.Contains(t, result, "- plain")
}

func TestConstraints_Bits(t *testing.T) {
	result, _ := translateSource(t, typedefSource(`
    type bits {
      bit sync {
        description "Synchronous operation.";
      }
      bit async;
    }`))
	assert.Contains(t, result, "- valid_values:")
	assert.Contains(t, result, "- sync")
	assert.Contains(t, result, "# Synchronous operation.")
	assert.Contains(t, result, "- async")
}

func TestConstraints_FractionDigits(t *testing.T) {
	result, _ := translateSource(t, typedefSource(`type decimal64 { fraction-digits 2; }`))
	assert.Contains(t, result, "derived_from: float")
	assert.Contains(t, result, "# fraction-digits: 2")
}

func TestConstraints_Union(t *testing.T) {
	result, _ := translateSource(t, typedefSource(`
    type union {
      type string;
      type uint32;
    }`))
	assert.Contains(t, result, "# The YANG type is a union. Select one of the following options:")
	assert.Contains(t, result, "# Option 1")
	assert.Contains(t, result, "derived_from: string")
	assert.Contains(t, result, "# Option 2")
	assert.Contains(t, result, "derived_from: integer")
}

func TestConstraints_Leafref(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  container ref {
    leaf target {
      type leafref {
        path "/ex:interfaces/ex:interface/ex:name";
      }
    }
  }
}
`)
	assert.Contains(t, result, "type: string")
	assert.Contains(t, result, "# path: /ex:interfaces/ex:interface/ex:name")
}

func TestParseClauses(t *testing.T) {
	clauses := parseClauses("1..10 | 20 | min..max")
	assert.Equal(t, []boundsClause{
		{low: "1", high: "10"},
		{low: "20"},
		{low: "min", high: "max"},
	}, clauses)

	assert.Nil(t, parseClauses(""))
}

func TestParseClauses_Whitespace(t *testing.T) {
	clauses := parseClauses("  1 .. 10  ")
	assert.Equal(t, []boundsClause{{low: "1", high: "10"}}, clauses)
	assert.False(t, strings.Contains(clauses[0].low, " "))
}
