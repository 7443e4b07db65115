package translate

import (
	"maps"
	"strings"

	"golang.org/x/text/unicode/norm"

	"sharpswift/internal/syntax"
)

// TypeMap maps C# type names to Swift type names. Names without an entry
// pass through unchanged. Keys are stored NFC-normalised.
type TypeMap struct {
	names map[string]string

	// ArrayFormat renders an array or list type from its element type.
	ArrayFormat func(elem string) string
	// MapFormat renders a dictionary type.
	MapFormat func(key, val string) string
	// SetFormat renders a set type.
	SetFormat func(elem string) string

	arrays map[string]bool
	dicts  map[string]bool
	sets   map[string]bool
}

var defaultTypeNames = map[string]string{
	"bool":    "Bool",
	"byte":    "UInt8",
	"sbyte":   "Int8",
	"short":   "Int16",
	"ushort":  "UInt16",
	"int":     "Int",
	"uint":    "UInt",
	"long":    "Int64",
	"ulong":   "UInt64",
	"nint":    "Int",
	"nuint":   "UInt",
	"float":   "Float",
	"double":  "Double",
	"decimal": "Decimal",
	"char":    "Character",
	"string":  "String",
	"object":  "Any",
	"dynamic": "Any",
	"void":    "Void",

	"Boolean": "Bool",
	"Byte":    "UInt8",
	"SByte":   "Int8",
	"Int16":   "Int16",
	"UInt16":  "UInt16",
	"Int32":   "Int",
	"UInt32":  "UInt",
	"Int64":   "Int64",
	"UInt64":  "UInt64",
	"Single":  "Float",
	"Double":  "Double",
	"Decimal": "Decimal",
	"Char":    "Character",
	"String":  "String",
	"Object":  "Any",
}

// DefaultTypeMap returns the built-in C# primitive and collection mapping.
func DefaultTypeMap() *TypeMap {
	m := &TypeMap{
		names:       make(map[string]string, len(defaultTypeNames)),
		ArrayFormat: func(elem string) string { return "[" + elem + "]" },
		MapFormat:   func(key, val string) string { return "[" + key + ": " + val + "]" },
		SetFormat:   func(elem string) string { return "Set<" + elem + ">" },
		arrays: map[string]bool{
			"List": true, "IList": true, "ICollection": true, "IEnumerable": true,
			"IReadOnlyList": true, "IReadOnlyCollection": true,
		},
		dicts: map[string]bool{"Dictionary": true, "IDictionary": true, "IReadOnlyDictionary": true},
		sets:  map[string]bool{"HashSet": true, "ISet": true, "SortedSet": true},
	}
	for k, v := range defaultTypeNames {
		m.names[key(k)] = v
	}
	return m
}

// WithOverrides returns a copy of m with the given entries added or replaced.
func (m *TypeMap) WithOverrides(overrides map[string]string) *TypeMap {
	out := *m
	out.names = maps.Clone(m.names)
	for k, v := range overrides {
		out.names[key(k)] = v
	}
	return &out
}

// Name maps a bare type name. System-qualified names are looked up whole
// first, then by their last component.
func (m *TypeMap) Name(name string) string {
	if mapped, ok := m.names[key(name)]; ok {
		return mapped
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		if mapped, ok := m.names[key(name[i+1:])]; ok && strings.HasPrefix(name, "System.") {
			return mapped
		}
	}
	return name
}

// Map renders a full type reference. Implicit (var) types map to "".
func (m *TypeMap) Map(t *syntax.TypeRef) string {
	if t == nil || t.Implicit {
		return ""
	}
	if t.Name == "" {
		return t.Raw
	}
	out := m.base(t)
	if t.Nullable {
		out += "?"
	}
	for range t.ArrayRank {
		out = m.ArrayFormat(out)
	}
	return out
}

func (m *TypeMap) base(t *syntax.TypeRef) string {
	simple := t.SimpleName()
	switch n := len(t.Args); {
	case n == 1 && simple == "Nullable":
		return m.Map(t.Args[0]) + "?"
	case n == 1 && m.arrays[simple]:
		return m.ArrayFormat(m.Map(t.Args[0]))
	case n == 1 && m.sets[simple]:
		return m.SetFormat(m.Map(t.Args[0]))
	case n == 2 && m.dicts[simple]:
		return m.MapFormat(m.Map(t.Args[0]), m.Map(t.Args[1]))
	case n > 0:
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = m.Map(a)
		}
		return m.Name(t.Name) + "<" + strings.Join(args, ", ") + ">"
	}
	return m.Name(t.Name)
}

var conversionTargets = map[string]bool{
	"Int": true, "Int8": true, "Int16": true, "Int32": true, "Int64": true,
	"UInt": true, "UInt8": true, "UInt16": true, "UInt32": true, "UInt64": true,
	"Float": true, "Double": true, "Decimal": true, "String": true,
}

// IsConversionTarget reports whether a cast to the Swift type is written as
// an initializer call rather than a downcast.
func IsConversionTarget(swift string) bool {
	return conversionTargets[swift]
}

func key(s string) string {
	return norm.NFC.String(s)
}
