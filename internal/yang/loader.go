// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package yang

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Registry holds loaded modules by name and resolves cross-references
// between them. It implements the module lookup the translator uses to
// recover imported-module namespaces.
type Registry struct {
	modules map[string]*Node
}

// NewRegistry returns an empty module registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*Node)}
}

// Add stores a parsed module under its own name.
func (r *Registry) Add(module *Node) {
	r.modules[module.Argument] = module
}

// Module returns the module with the given name, or nil if not loaded.
func (r *Registry) Module(name string) *Node {
	return r.modules[name]
}

// Names returns the names of all loaded modules.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	return names
}

// Resolve walks a module tree and fills in the Grouping reference of
// every 'uses' statement and the Target reference of every 'augment'
// statement. Unresolvable references are left nil; the translator
// degrades them to diagnostics.
func (r *Registry) Resolve(module *Node) {
	prefixes := importPrefixes(module)

	var walk func(n *Node)
	walk = func(n *Node) {
		switch n.Keyword {
		case KwUses:
			n.Grouping = r.findGrouping(module, n, prefixes)
		case KwAugment:
			n.Target = r.findAugmentTarget(module, n.Argument, prefixes)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(module)
}

// importPrefixes maps each import prefix declared by the module to the
// imported module name.
func importPrefixes(module *Node) map[string]string {
	prefixes := make(map[string]string)
	for _, imp := range module.Search(KwImport) {
		if prefix := imp.ArgOne(KwPrefix); prefix != "" {
			prefixes[prefix] = imp.Argument
		}
	}
	// The module's own prefix refers to itself.
	if prefix := module.ArgOne(KwPrefix); prefix != "" {
		prefixes[prefix] = module.Argument
	}
	return prefixes
}

// findGrouping resolves a 'uses' argument to its grouping definition.
// Unprefixed (and locally-prefixed) names are looked up lexically, from
// the enclosing scope outward; foreign-prefixed names are looked up at
// the top level of the imported module. Definitions from 'include'd
// submodules share the including module's namespace.
func (r *Registry) findGrouping(module, uses *Node, prefixes map[string]string) *Node {
	name := uses.Argument
	if prefix, local, ok := strings.Cut(name, ":"); ok {
		target := r.modules[prefixes[prefix]]
		if target == nil {
			return nil
		}
		if target != module {
			return r.searchGroupings(target, local)
		}
		name = local
	}

	for scope := uses.Parent; scope != nil; scope = scope.Parent {
		for _, g := range scope.Search(KwGrouping) {
			if g.Argument == name {
				return g
			}
		}
	}
	return r.searchGroupings(module, name)
}

// searchGroupings looks for a top-level grouping in a module and in the
// submodules it includes.
func (r *Registry) searchGroupings(module *Node, name string) *Node {
	for _, g := range module.Search(KwGrouping) {
		if g.Argument == name {
			return g
		}
	}
	for _, inc := range module.Search(KwInclude) {
		sub := r.modules[inc.Argument]
		if sub == nil {
			continue
		}
		for _, g := range sub.Search(KwGrouping) {
			if g.Argument == name {
				return g
			}
		}
	}
	return nil
}

// findAugmentTarget resolves an augment path ("/pfx:a/pfx:b") to the
// node it extends. Paths into foreign modules start at that module's
// root; relative paths and unresolvable segments yield nil.
func (r *Registry) findAugmentTarget(module *Node, arg string, prefixes map[string]string) *Node {
	if !strings.HasPrefix(arg, "/") {
		return nil
	}
	cur := module
	for _, seg := range strings.Split(strings.TrimPrefix(arg, "/"), "/") {
		if seg == "" {
			return nil
		}
		if prefix, local, ok := strings.Cut(seg, ":"); ok {
			if m := r.modules[prefixes[prefix]]; m != nil && cur == module && m != module {
				cur = m
			}
			seg = local
		}
		next := findDataChild(cur, seg)
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// findDataChild finds a structural child by name, looking through
// 'uses' and 'case' indirection.
func findDataChild(n *Node, name string) *Node {
	for _, c := range n.Children {
		switch c.Keyword {
		case KwContainer, KwList, KwLeaf, KwLeafList, KwChoice:
			if c.Argument == name {
				return c
			}
		case KwCase:
			if found := findDataChild(c, name); found != nil {
				return found
			}
		case KwUses:
			if c.Grouping != nil {
				if found := findDataChild(c.Grouping, name); found != nil {
					return found
				}
			}
		}
	}
	return nil
}

// Loader loads YANG modules from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a single module file.
func (l *Loader) LoadFile(filePath string) (*Node, error) {
	data, err := fs.ReadFile(l.fsys, filePath)
	if err != nil {
		return nil, err
	}
	module, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return module, nil
}

// LoadDir parses every .yang file in a directory into the registry.
// Files that fail to parse are skipped and reported through errs.
func (l *Loader) LoadDir(dir string, registry *Registry, errs func(error)) error {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yang") {
			continue
		}
		module, err := l.LoadFile(path.Join(dir, entry.Name()))
		if err != nil {
			if errs != nil {
				errs(err)
			}
			continue
		}
		registry.Add(module)
	}
	return nil
}
