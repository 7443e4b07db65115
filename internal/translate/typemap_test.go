package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sharpswift/internal/syntax"
)

func ref(name string, args ...*syntax.TypeRef) *syntax.TypeRef {
	return &syntax.TypeRef{Name: name, Args: args}
}

func TestTypeMapMap(t *testing.T) {
	m := DefaultTypeMap()
	tests := []struct {
		in   *syntax.TypeRef
		want string
	}{
		{ref("int"), "Int"},
		{ref("string"), "String"},
		{ref("bool"), "Bool"},
		{ref("System.Int32"), "Int"},
		{ref("Customer"), "Customer"},
		{ref("My.Customer"), "My.Customer"},
		{&syntax.TypeRef{Name: "int", Nullable: true}, "Int?"},
		{&syntax.TypeRef{Name: "double", ArrayRank: 1}, "[Double]"},
		{&syntax.TypeRef{Name: "int", ArrayRank: 2}, "[[Int]]"},
		{ref("List", ref("string")), "[String]"},
		{ref("IEnumerable", ref("Customer")), "[Customer]"},
		{ref("Dictionary", ref("string"), ref("List", ref("int"))), "[String: [Int]]"},
		{ref("HashSet", ref("long")), "Set<Int64>"},
		{ref("Nullable", ref("int")), "Int?"},
		{ref("Task", ref("int")), "Task<Int>"},
		{&syntax.TypeRef{Name: "var", Implicit: true}, ""},
		{&syntax.TypeRef{Raw: "(int, string)"}, "(int, string)"},
		{nil, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Map(tt.in), "map %s", tt.in)
	}
}

func TestTypeMapOverridesAreCopies(t *testing.T) {
	base := DefaultTypeMap()
	custom := base.WithOverrides(map[string]string{"Guid": "UUID", "int": "Int32"})

	assert.Equal(t, "UUID", custom.Name("Guid"))
	assert.Equal(t, "Int32", custom.Name("int"))
	assert.Equal(t, "Guid", base.Name("Guid"))
	assert.Equal(t, "Int", base.Name("int"))
}

func TestTypeMapNormalizesKeys(t *testing.T) {
	// decomposed "é" in the override, composed in the lookup
	m := DefaultTypeMap().WithOverrides(map[string]string{"Cafe\u0301": "Coffee"})
	assert.Equal(t, "Coffee", m.Name("Caf\u00e9"))
}

func TestTypeMapDeterministic(t *testing.T) {
	typ := ref("Dictionary", ref("string"), &syntax.TypeRef{Name: "int", Nullable: true})
	first := DefaultTypeMap().Map(typ)
	for range 20 {
		assert.Equal(t, first, DefaultTypeMap().Map(typ))
	}
}

func TestIsConversionTarget(t *testing.T) {
	assert.True(t, IsConversionTarget("Int"))
	assert.True(t, IsConversionTarget("String"))
	assert.False(t, IsConversionTarget("Customer"))
	assert.False(t, IsConversionTarget("Bool"))
}

func TestNamespaceMap(t *testing.T) {
	m := DefaultNamespaceMap().WithOverrides(map[string]string{
		"System.Drawing": "DNSwiftDrawing",
		"UnityEngine":    "SpriteKit",
	})
	target := func(name string) string {
		got, _ := m.Target(name)
		return got
	}
	assert.Equal(t, "DNSwift", target("System"))
	assert.Equal(t, "DNSwift", target("System.Collections.Generic"))
	assert.Equal(t, "DNSwiftDrawing", target("System.Drawing.Imaging"))
	assert.Equal(t, "SpriteKit", target("UnityEngine"))

	_, ok := m.Target("Systemic")
	assert.False(t, ok)
	assert.Equal(t, "", m.IncludeFor(&syntax.Using{Name: "Newtonsoft.Json"}))
	assert.Equal(t, "include SpriteKit;", m.IncludeFor(&syntax.Using{Name: "UnityEngine.UI"}))
}
