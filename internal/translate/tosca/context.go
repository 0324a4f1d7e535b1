// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package tosca

import "strings"

// Context holds per-translation state: the scalar type map, the naming
// style, and the module's own namespace prefix. The local prefix is
// written exactly once, when the module's prefix declaration is
// emitted, and only read afterward.
type Context struct {
	typeMap   map[string]string
	camelCase bool

	localPrefix string
	prefixSet   bool
}

func newContext(typeMap map[string]string, camelCase bool) *Context {
	if typeMap == nil {
		typeMap = make(map[string]string)
	}
	return &Context{typeMap: typeMap, camelCase: camelCase}
}

// setLocalPrefix records the module's own prefix. The first write wins;
// a module declares exactly one prefix.
func (c *Context) setLocalPrefix(prefix string) {
	if c.prefixSet {
		return
	}
	c.localPrefix = prefix
	c.prefixSet = true
}

// qualifiedName turns a YANG type or grouping name into a TOSCA type
// name. The local namespace prefix is stripped (TOSCA has no per-file
// local prefixes); any other prefix is kept as-is. A non-empty
// qualifier is prepended to the result.
func (c *Context) qualifiedName(name, qualifier string) string {
	if prefix, local, ok := strings.Cut(name, ":"); ok {
		if !c.prefixSet || prefix != c.localPrefix {
			return name
		}
		name = local
	}
	if qualifier != "" {
		return qualifier + ":" + name
	}
	return name
}

// isForeignPrefix reports whether a namespace prefix refers to a module
// other than the one being translated.
func (c *Context) isForeignPrefix(prefix string) bool {
	return !c.prefixSet || prefix != c.localPrefix
}
