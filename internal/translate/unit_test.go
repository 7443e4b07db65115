package translate

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharpswift/internal/diag"
	"sharpswift/internal/syntax"
)

func lineComment(text string) syntax.Trivia {
	return syntax.Trivia{Kind: syntax.TriviaLineComment, Text: text}
}

func fooInBar() *syntax.CompilationUnit {
	field := &syntax.Field{
		Type:        ref("int"),
		Declarators: []*syntax.VariableDeclarator{{Name: "x"}},
	}
	class := &syntax.TypeDecl{Keyword: syntax.TypeClass, Name: "Foo", Members: []syntax.Node{field}}
	return &syntax.CompilationUnit{
		Members: []syntax.Node{&syntax.Namespace{Name: "Bar", Members: []syntax.Node{class}}},
	}
}

func TestUnitClassInNamespace(t *testing.T) {
	unit, err := Translate(fooInBar(), Options{})
	require.NoError(t, err)

	want := Header +
		"include DNSwift;\n" +
		"\n" +
		"class Foo {\n" +
		"var x: Int\n" +
		"}\n"
	assert.Equal(t, want, unit.String())
	assert.Equal(t, []string{"include DNSwift;"}, unit.Directives.Lines())
}

func TestUnitTrailingIncludeAfterUsing(t *testing.T) {
	cu := fooInBar()
	cu.Usings = []*syntax.Using{{
		Name: "System",
		Base: syntax.Base{Trailing: []syntax.Trivia{lineComment("//include Extra;")}},
	}}
	unit, err := Translate(cu, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"include DNSwift;", "include Extra;"}, unit.Directives.Lines())
}

func TestUnitDirectiveOrder(t *testing.T) {
	cu := fooInBar()
	cu.Usings = []*syntax.Using{
		{Name: "Newtonsoft.Json", Base: syntax.Base{Leading: []syntax.Trivia{lineComment("//include First;")}}},
		{Name: "Sprites", Base: syntax.Base{Leading: []syntax.Trivia{lineComment("//universal")}}},
		{Name: "System.Linq", Base: syntax.Base{Trailing: []syntax.Trivia{lineComment("//include Tail;")}}},
	}
	ns := cu.Members[0].(*syntax.Namespace)
	ns.Leading = []syntax.Trivia{lineComment("//include FromNamespace;"), lineComment("//include First;")}

	unit, err := Translate(cu, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"include DNSwift;",
		"include First;",
		"include Sprites;",
		"include Tail;",
		"include FromNamespace;",
	}, unit.Directives.Lines())
}

func TestUnitDuplicateUsingsCollapse(t *testing.T) {
	cu := fooInBar()
	universal := syntax.Base{Leading: []syntax.Trivia{lineComment("// Universal")}}
	cu.Usings = []*syntax.Using{{Name: "Game.Core", Base: universal}, {Name: "Game.Core", Base: universal}, {Name: "System.IO"}}
	unit, err := Translate(cu, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"include DNSwift;", "include Game.Core;"}, unit.Directives.Lines())
}

func TestUnitUnmappedUsingContributesNothing(t *testing.T) {
	cu := fooInBar()
	cu.Usings = []*syntax.Using{{Name: "Newtonsoft.Json"}, {Name: "Game.Core"}}
	unit, err := Translate(cu, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"include DNSwift;"}, unit.Directives.Lines())
}

func TestUnitCustomTables(t *testing.T) {
	cu := fooInBar()
	cu.Usings = []*syntax.Using{{Name: "UnityEngine"}}
	unit, err := Translate(cu, Options{
		Types:          DefaultTypeMap().WithOverrides(map[string]string{"int": "Int32"}),
		Namespaces:     DefaultNamespaceMap().WithOverrides(map[string]string{"UnityEngine": "SpriteKit"}),
		BaselineImport: "Foundation",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"include Foundation;", "include SpriteKit;"}, unit.Directives.Lines())
	assert.Contains(t, unit.Body, "var x: Int32\n")
}

func TestUnitNamespaceUsings(t *testing.T) {
	cu := fooInBar()
	ns := cu.Members[0].(*syntax.Namespace)
	ns.Usings = []*syntax.Using{{Name: "Inner.Lib"}}
	unit, err := Translate(cu, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"include DNSwift;", "include Inner.Lib;"}, unit.Directives.Lines())
}

func TestUnitWithoutNamespace(t *testing.T) {
	cu := &syntax.CompilationUnit{Members: []syntax.Node{
		&syntax.TypeDecl{Name: "Orphan"},
	}}
	bag := diag.NewBag(10)
	unit, err := Translate(cu, Options{Reporter: diag.NewBagReporter(bag)})
	require.Error(t, err)
	assert.Nil(t, unit)
	assert.True(t, errors.Is(err, ErrNoNamespace))
	assert.NotEmpty(t, errors.GetAllHints(err))
	require.Equal(t, 1, bag.Len())
	assert.Equal(t, diag.StructuralPrecondition, bag.Items()[0].Code)
	assert.True(t, bag.HasErrors())
}

func TestUnitFileScopedNamespace(t *testing.T) {
	class := &syntax.TypeDecl{Name: "Foo"}
	cu := &syntax.CompilationUnit{Members: []syntax.Node{
		&syntax.Namespace{Name: "Bar", FileScoped: true, Members: []syntax.Node{class}},
	}}
	unit, err := Translate(cu, Options{})
	require.NoError(t, err)
	assert.Equal(t, "class Foo {\n}\n", unit.Body)
}

func TestUnitSeveralTypesAreSeparated(t *testing.T) {
	cu := fooInBar()
	ns := cu.Members[0].(*syntax.Namespace)
	ns.Members = append(ns.Members, &syntax.Enum{Name: "Color", Members: []*syntax.EnumMember{{Name: "Red"}}})
	unit, err := Translate(cu, Options{})
	require.NoError(t, err)
	assert.Equal(t, "class Foo {\nvar x: Int\n}\n\nenum Color: Int {\ncase Red\n}\n", unit.Body)
}
