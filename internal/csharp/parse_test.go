package csharp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharpswift/internal/diag"
	"sharpswift/internal/syntax"
)

func parse(t *testing.T, code string) (*syntax.CompilationUnit, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(100)
	cu, _, err := ParseString(context.Background(), "test.cs", code, diag.NewBagReporter(bag))
	require.NoError(t, err)
	require.NotNil(t, cu)
	return cu, bag
}

func onlyType(t *testing.T, cu *syntax.CompilationUnit) *syntax.TypeDecl {
	t.Helper()
	nss := cu.Namespaces()
	require.Len(t, nss, 1)
	require.Len(t, nss[0].Members, 1)
	td, ok := nss[0].Members[0].(*syntax.TypeDecl)
	require.True(t, ok, "got %T", nss[0].Members[0])
	return td
}

func TestParseClassInNamespace(t *testing.T) {
	cu, bag := parse(t, `using System;
namespace Foo {
    public class Bar {
        int x;
    }
}
`)
	assert.False(t, bag.HasErrors())
	require.Len(t, cu.Usings, 1)
	assert.Equal(t, "System", cu.Usings[0].Name)

	nss := cu.Namespaces()
	require.Len(t, nss, 1)
	assert.Equal(t, "Foo", nss[0].Name)
	assert.False(t, nss[0].FileScoped)

	td := onlyType(t, cu)
	assert.Equal(t, "Bar", td.Name)
	assert.Equal(t, syntax.TypeClass, td.Keyword)
	assert.True(t, td.Modifiers.Has("public"))
	require.Len(t, td.Members, 1)

	f, ok := td.Members[0].(*syntax.Field)
	require.True(t, ok)
	assert.Equal(t, "int", f.Type.Name)
	require.Len(t, f.Declarators, 1)
	assert.Equal(t, "x", f.Declarators[0].Name)
	assert.Nil(t, f.Declarators[0].Init)
}

func TestParseUsingTrivia(t *testing.T) {
	cu, _ := parse(t, `using System; //include Extra;
using System.Text;
// include Other;
namespace Foo { }
`)
	require.Len(t, cu.Usings, 2)
	require.Len(t, cu.Usings[0].Trailing, 1)
	assert.Equal(t, "//include Extra;", cu.Usings[0].Trailing[0].Text)
	assert.Equal(t, syntax.TriviaLineComment, cu.Usings[0].Trailing[0].Kind)
	assert.Equal(t, "System.Text", cu.Usings[1].Name)

	ns := cu.Namespaces()[0]
	require.Len(t, ns.Leading, 1)
	assert.Equal(t, "// include Other;", ns.Leading[0].Text)
}

func TestParseFileScopedNamespace(t *testing.T) {
	cu, _ := parse(t, `using System;
namespace Foo.Bar;
using System.Linq;
class A { }
`)
	nss := cu.Namespaces()
	require.Len(t, nss, 1)
	assert.True(t, nss[0].FileScoped)
	assert.Equal(t, "Foo.Bar", nss[0].Name)
	require.Len(t, nss[0].Usings, 1)
	assert.Equal(t, "System.Linq", nss[0].Usings[0].Name)
	require.Len(t, nss[0].Members, 1)
	assert.Equal(t, "A", nss[0].Members[0].(*syntax.TypeDecl).Name)
}

func TestParseMembers(t *testing.T) {
	cu, _ := parse(t, `namespace N {
    class C : Base, IThing {
        public const int Max = 10;
        public string Name { get; private set; } = "x";
        public int Twice => count * 2;
        public C(int count) : base(count) { }
        public static List<string> Find<T>(ref int a, bool exact = false, params string[] rest) {
            return null;
        }
    }
}`)
	td := onlyType(t, cu)
	require.Len(t, td.Bases, 2)
	assert.Equal(t, "Base", td.Bases[0].Name)
	require.Len(t, td.Members, 5)

	field := td.Members[0].(*syntax.Field)
	assert.True(t, field.Modifiers.Has("const"))
	require.IsType(t, &syntax.Literal{}, field.Declarators[0].Init)
	assert.Equal(t, "10", field.Declarators[0].Init.(*syntax.Literal).Value)

	prop := td.Members[1].(*syntax.Property)
	assert.Equal(t, "Name", prop.Name)
	assert.True(t, prop.IsAuto())
	require.NotNil(t, prop.Accessor("set"))
	assert.True(t, prop.Accessor("set").Modifiers.Has("private"))
	require.NotNil(t, prop.Init)

	twice := td.Members[2].(*syntax.Property)
	require.IsType(t, &syntax.Binary{}, twice.ExprBody)

	ctor := td.Members[3].(*syntax.Constructor)
	require.NotNil(t, ctor.Initializer)
	assert.Equal(t, "base", ctor.Initializer.Keyword)
	require.Len(t, ctor.Initializer.Args, 1)
	require.Len(t, ctor.Params.Params, 1)

	m := td.Members[4].(*syntax.Method)
	assert.Equal(t, "Find", m.Name)
	assert.Equal(t, []string{"T"}, m.TypeParams)
	assert.Equal(t, "List", m.ReturnType.Name)
	require.Len(t, m.ReturnType.Args, 1)
	require.Len(t, m.Params.Params, 3)
	assert.Equal(t, "ref", m.Params.Params[0].Modifier)
	assert.NotNil(t, m.Params.Params[1].Default)
	assert.Equal(t, "params", m.Params.Params[2].Modifier)
	assert.Equal(t, "rest", m.Params.Params[2].Name)
	assert.Equal(t, 1, m.Params.Params[2].Type.ArrayRank)
	assert.Equal(t, "params string[] rest", m.Params.Params[2].Text)
	require.NotNil(t, m.Body)
	require.Len(t, m.Body.Statements, 1)
	assert.IsType(t, &syntax.Return{}, m.Body.Statements[0])
}

func TestParseEnum(t *testing.T) {
	cu, _ := parse(t, `namespace N {
    enum Color : byte { Red, Green = 5, Blue }
}`)
	e, ok := cu.Namespaces()[0].Members[0].(*syntax.Enum)
	require.True(t, ok)
	assert.Equal(t, "byte", e.Underlying.Name)
	require.Len(t, e.Members, 3)
	assert.Equal(t, "Green", e.Members[1].Name)
	assert.NotNil(t, e.Members[1].Value)
	assert.Nil(t, e.Members[2].Value)
}

func TestParseStatementsAndComments(t *testing.T) {
	cu, _ := parse(t, `namespace N {
    class C {
        void M(List<int> xs) {
            // leading
            var total = 0; // trailing
            foreach (var x in xs) {
                if (x > 0) total += x; else continue;
            }
            while (total > 10) { total--; break; }
        }
    }
}`)
	m := onlyType(t, cu).Members[0].(*syntax.Method)
	stmts := m.Body.Statements
	require.Len(t, stmts, 3)

	local := stmts[0].(*syntax.LocalDeclaration)
	assert.True(t, local.Type.Implicit)
	require.Len(t, local.Leading, 1)
	assert.Equal(t, "// leading", local.Leading[0].Text)
	require.Len(t, local.Trailing, 1)
	assert.Equal(t, "// trailing", local.Trailing[0].Text)

	loop := stmts[1].(*syntax.ForEach)
	assert.Equal(t, "x", loop.Name)
	body := loop.Body.(*syntax.Block)
	ifs := body.Statements[0].(*syntax.If)
	assert.IsType(t, &syntax.Jump{}, ifs.Else)

	w := stmts[2].(*syntax.While)
	assert.IsType(t, &syntax.Binary{}, w.Cond)
}

func TestParseExpressions(t *testing.T) {
	cu, _ := parse(t, `namespace N {
    class C {
        void M() {
            a?.b.Call(count: 1, out x);
            var s = $"n={n + 1} {{x}}";
            var o = (int)y;
            var q = z as string;
            arr[0] = new Foo(1);
        }
    }
}`)
	stmts := onlyType(t, cu).Members[0].(*syntax.Method).Body.Statements
	require.Len(t, stmts, 5)

	call := stmts[0].(*syntax.ExpressionStatement).Expr.(*syntax.Invocation)
	require.Len(t, call.Args, 2)
	assert.Equal(t, "count", call.Args[0].Name)
	assert.Equal(t, "out", call.Args[1].Modifier)

	var conditional bool
	syntax.Inspect(call, func(n syntax.Node) bool {
		if ma, ok := n.(*syntax.MemberAccess); ok && ma.Conditional {
			conditional = true
			assert.Equal(t, "b", ma.Name)
		}
		return true
	})
	assert.True(t, conditional)

	interp := stmts[1].(*syntax.LocalDeclaration).Declarators[0].Init.(*syntax.InterpolatedString)
	require.Len(t, interp.Parts, 3)
	assert.Equal(t, "n=", interp.Parts[0].Text)
	assert.IsType(t, &syntax.Binary{}, interp.Parts[1].Expr)
	assert.Equal(t, " {{x}}", interp.Parts[2].Text)

	assert.IsType(t, &syntax.Cast{}, stmts[2].(*syntax.LocalDeclaration).Declarators[0].Init)

	as := stmts[3].(*syntax.LocalDeclaration).Declarators[0].Init.(*syntax.Binary)
	assert.Equal(t, "as", as.Op)
	assert.IsType(t, &syntax.TypeName{}, as.Right)

	assign := stmts[4].(*syntax.ExpressionStatement).Expr.(*syntax.Assignment)
	assert.Equal(t, "=", assign.Op)
	assert.IsType(t, &syntax.ElementAccess{}, assign.Target)
	assert.IsType(t, &syntax.ObjectCreation{}, assign.Value)
}

func TestParseTypes(t *testing.T) {
	cu, _ := parse(t, `namespace N {
    class C {
        int? a;
        int[][] b;
        System.Collections.Generic.Dictionary<string, int> c;
        string[]? d;
    }
}`)
	members := onlyType(t, cu).Members
	require.Len(t, members, 4)
	typ := func(i int) *syntax.TypeRef { return members[i].(*syntax.Field).Type }

	assert.True(t, typ(0).Nullable)
	assert.Equal(t, 2, typ(1).ArrayRank)
	assert.Equal(t, "System.Collections.Generic.Dictionary", typ(2).Name)
	assert.Len(t, typ(2).Args, 2)
	assert.Equal(t, "Nullable", typ(3).Name)
	assert.Equal(t, 1, typ(3).Args[0].ArrayRank)
}

func TestParseUnsupportedBecomesUnknown(t *testing.T) {
	cu, _ := parse(t, `namespace N {
    class C {
        void M() {
            switch (x) { default: break; }
        }
    }
}`)
	stmts := onlyType(t, cu).Members[0].(*syntax.Method).Body.Statements
	require.Len(t, stmts, 1)
	u, ok := stmts[0].(*syntax.Unknown)
	require.True(t, ok)
	assert.Equal(t, "switch statement", u.SourceKind)
	assert.Contains(t, u.Text, "switch (x)")
}

func TestParseReportsSyntaxErrors(t *testing.T) {
	_, bag := parse(t, `namespace N {
    class C {
        void M( { }
    }
}`)
	assert.True(t, bag.HasWarnings())
	assert.Positive(t, bag.Count(diag.ParseSyntaxError))
}

func TestParseCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := ParseString(ctx, "x.cs", "namespace N {}", nil)
	// tree-sitter checks cancellation only on long inputs; both outcomes are valid
	if err != nil {
		assert.Contains(t, err.Error(), "parse x.cs")
	}
}
