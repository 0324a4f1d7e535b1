// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

// Package yang provides a minimal YANG statement tree: a parser for the
// RFC 7950 statement grammar, a module registry, and resolution of
// 'uses' and 'augment' cross-references. It performs no semantic
// validation beyond what the TOSCA translator consumes.
package yang

import "strings"

// Statement keywords consumed by the translator. YANG keywords form a
// closed set; handlers switch over these constants and report anything
// else through the consistency checker.
const (
	KwModule         = "module"
	KwSubmodule      = "submodule"
	KwYangVersion    = "yang-version"
	KwNamespace      = "namespace"
	KwPrefix         = "prefix"
	KwBelongsTo      = "belongs-to"
	KwOrganization   = "organization"
	KwContact        = "contact"
	KwDescription    = "description"
	KwReference      = "reference"
	KwRevision       = "revision"
	KwFeature        = "feature"
	KwIfFeature      = "if-feature"
	KwStatus         = "status"
	KwImport         = "import"
	KwInclude        = "include"
	KwTypedef        = "typedef"
	KwType           = "type"
	KwGrouping       = "grouping"
	KwUses           = "uses"
	KwContainer      = "container"
	KwList           = "list"
	KwLeaf           = "leaf"
	KwLeafList       = "leaf-list"
	KwChoice         = "choice"
	KwCase           = "case"
	KwAugment        = "augment"
	KwConfig         = "config"
	KwMandatory      = "mandatory"
	KwDefault        = "default"
	KwUnits          = "units"
	KwWhen           = "when"
	KwMust           = "must"
	KwPresence       = "presence"
	KwKey            = "key"
	KwUnique         = "unique"
	KwOrderedBy      = "ordered-by"
	KwLength         = "length"
	KwRange          = "range"
	KwPattern        = "pattern"
	KwEnum           = "enum"
	KwBit            = "bit"
	KwValue          = "value"
	KwPath           = "path"
	KwFractionDigits = "fraction-digits"
	KwMinElements    = "min-elements"
	KwMaxElements    = "max-elements"
	KwErrorMessage   = "error-message"
)

// Node is one statement in a parsed YANG module. The translator treats
// nodes as read-only: Keyword is the statement kind, Argument its text
// value, and Children the ordered substatements. Grouping and Target
// are resolved cross-references filled in by Registry.Resolve.
type Node struct {
	Keyword  string
	Argument string
	Children []*Node
	Parent   *Node

	// Grouping is the resolved grouping for 'uses' statements.
	Grouping *Node
	// Target is the resolved target node for 'augment' statements.
	Target *Node
}

// SearchOne returns the first child with the given keyword, or nil.
func (n *Node) SearchOne(keyword string) *Node {
	for _, c := range n.Children {
		if c.Keyword == keyword {
			return c
		}
	}
	return nil
}

// Search returns all children with the given keyword, in order.
func (n *Node) Search(keyword string) []*Node {
	var found []*Node
	for _, c := range n.Children {
		if c.Keyword == keyword {
			found = append(found, c)
		}
	}
	return found
}

// ArgOne returns the argument of the first child with the given
// keyword, or "" if no such child exists.
func (n *Node) ArgOne(keyword string) string {
	if c := n.SearchOne(keyword); c != nil {
		return c.Argument
	}
	return ""
}

// Path returns the structural path of the node for diagnostics, e.g.
// "/interfaces/interface/name". The module node itself renders as "/".
func (n *Node) Path() string {
	if n.Keyword == KwModule || n.Keyword == KwSubmodule {
		return "/"
	}
	var segs []string
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Keyword == KwModule || cur.Keyword == KwSubmodule {
			break
		}
		segs = append(segs, cur.Argument)
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return "/" + strings.Join(segs, "/")
}

// Module returns the enclosing module (or submodule) node.
func (n *Node) Module() *Node {
	cur := n
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}
