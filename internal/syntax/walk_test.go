package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUnit() *CompilationUnit {
	x := &Identifier{Name: "x"}
	ret := &Return{Value: &Binary{Op: "+", Left: x, Right: &Literal{LitKind: LitInt, Value: "1"}}}
	method := &Method{
		Name:       "Inc",
		ReturnType: &TypeRef{Name: "int"},
		Params: &ParameterList{Params: []*Parameter{
			{Name: "x", Type: &TypeRef{Name: "int"}},
		}},
		Body: &Block{Statements: []Node{ret}},
	}
	class := &TypeDecl{Name: "Foo", Members: []Node{
		&Field{Type: &TypeRef{Name: "int"}, Declarators: []*VariableDeclarator{{Name: "y"}}},
		method,
	}}
	ns := &Namespace{Name: "Bar", Members: []Node{class}}
	return &CompilationUnit{
		Usings:  []*Using{{Name: "System"}},
		Members: []Node{ns},
	}
}

func TestChildrenOrder(t *testing.T) {
	cu := sampleUnit()
	kids := Children(cu)
	require.Len(t, kids, 2)
	assert.Equal(t, KindUsing, kids[0].Kind())
	assert.Equal(t, KindNamespace, kids[1].Kind())

	var kinds []Kind
	Inspect(cu, func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	assert.Equal(t, []Kind{
		KindCompilationUnit, KindUsing, KindNamespace, KindTypeDecl, KindField,
		KindMethod, KindParameterList, KindParameter, KindBlock, KindReturn,
		KindBinary, KindIdentifier, KindLiteral,
	}, kinds)
}

func TestChildrenSkipsNil(t *testing.T) {
	var body *Block
	m := &Method{Name: "Abstract", Body: body}
	assert.Empty(t, Children(m))

	iff := &If{Cond: &Identifier{Name: "ok"}, Then: &Block{}}
	assert.Len(t, Children(iff), 2)
}

func TestInspectPrune(t *testing.T) {
	count := 0
	Inspect(sampleUnit(), func(n Node) bool {
		count++
		return n.Kind() != KindTypeDecl
	})
	assert.Equal(t, 4, count)
}

func TestNamespaces(t *testing.T) {
	cu := sampleUnit()
	cu.Members = append(cu.Members, &Unknown{SourceKind: "global_statement"}, &Namespace{Name: "Baz"})
	nss := cu.Namespaces()
	require.Len(t, nss, 2)
	assert.Equal(t, "Bar", nss[0].Name)
	assert.Equal(t, "Baz", nss[1].Name)
}

func TestTypeRefString(t *testing.T) {
	cases := []struct {
		ref  *TypeRef
		want string
	}{
		{&TypeRef{Name: "int"}, "int"},
		{&TypeRef{Name: "int", Nullable: true}, "int?"},
		{&TypeRef{Name: "string", ArrayRank: 2}, "string[][]"},
		{&TypeRef{Name: "Dictionary", Args: []*TypeRef{{Name: "string"}, {Name: "List", Args: []*TypeRef{{Name: "int"}}}}}, "Dictionary<string, List<int>>"},
		{&TypeRef{Implicit: true, Name: "var"}, "var"},
		{nil, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.ref.String())
	}
}

func TestTypeRefHelpers(t *testing.T) {
	assert.Equal(t, "String", (&TypeRef{Name: "System.String"}).SimpleName())
	assert.True(t, (&TypeRef{Name: "void"}).IsVoid())
	assert.False(t, (&TypeRef{Name: "void", ArrayRank: 1}).IsVoid())
	var nilRef *TypeRef
	assert.False(t, nilRef.IsVoid())
	assert.Equal(t, "", nilRef.SimpleName())
}

func TestPropertyAuto(t *testing.T) {
	p := &Property{Name: "Age", Accessors: []*Accessor{{Keyword: "get"}, {Keyword: "set"}}}
	assert.True(t, p.IsAuto())
	assert.NotNil(t, p.Accessor("set"))
	assert.Nil(t, p.Accessor("init"))

	p.Accessors[0].Expr = &Identifier{Name: "age"}
	assert.False(t, p.IsAuto())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "namespace", KindNamespace.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "invalid", Kind(250).String())
	assert.True(t, Trivia{Kind: TriviaDocComment}.IsComment())
}
