package translate

import (
	"cmp"
	"slices"
	"strings"

	"sharpswift/internal/syntax"
)

type nsEntry struct {
	prefix string
	target string
}

// NamespaceMap maps using-directive prefixes to Swift include targets.
// The longest matching prefix wins.
type NamespaceMap struct {
	entries []nsEntry
}

// DefaultNamespaceMap sends everything under System to DNSwift.
func DefaultNamespaceMap() *NamespaceMap {
	return NewNamespaceMap(map[string]string{"System": "DNSwift"})
}

func NewNamespaceMap(m map[string]string) *NamespaceMap {
	nm := &NamespaceMap{}
	for p, t := range m {
		nm.entries = append(nm.entries, nsEntry{prefix: key(p), target: t})
	}
	slices.SortFunc(nm.entries, func(a, b nsEntry) int {
		if c := cmp.Compare(len(b.prefix), len(a.prefix)); c != 0 {
			return c
		}
		return strings.Compare(a.prefix, b.prefix)
	})
	return nm
}

// WithOverrides returns a copy of m with extra prefixes.
func (m *NamespaceMap) WithOverrides(overrides map[string]string) *NamespaceMap {
	merged := make(map[string]string, len(m.entries)+len(overrides))
	for _, e := range m.entries {
		merged[e.prefix] = e.target
	}
	for p, t := range overrides {
		merged[key(p)] = t
	}
	return NewNamespaceMap(merged)
}

// Target returns the include target for a using name; ok is false when no
// prefix matches.
func (m *NamespaceMap) Target(name string) (target string, ok bool) {
	name = key(name)
	for _, e := range m.entries {
		if name == e.prefix || strings.HasPrefix(name, e.prefix+".") {
			return e.target, true
		}
	}
	return "", false
}

// IncludeFor renders the include directive for a using, or "" when the
// using is not mapped. Unmapped usings only contribute when marked universal.
func (m *NamespaceMap) IncludeFor(u *syntax.Using) string {
	target, ok := m.Target(u.Name)
	if !ok {
		return ""
	}
	return includeLine(target)
}

func includeLine(name string) string {
	return "include " + name + ";"
}
