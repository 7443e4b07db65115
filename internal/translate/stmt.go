package translate

import (
	"strings"

	"sharpswift/internal/syntax"
)

// statements renders each statement on its own line(s), with its comments.
func (t *Translator) statements(stmts []syntax.Node) string {
	var sb strings.Builder
	for _, s := range stmts {
		if s == nil {
			continue
		}
		sb.WriteString(withTrivia(s, t.Node(s)))
	}
	return sb.String()
}

// body renders a loop or branch body without its braces.
func (t *Translator) body(n syntax.Node) string {
	if b, ok := n.(*syntax.Block); ok {
		return t.statements(b.Statements)
	}
	if n == nil {
		return ""
	}
	return withTrivia(n, t.Node(n))
}

// VisitBlock handles a nested block statement; Swift spells it `do { }`.
func (t *Translator) VisitBlock(n *syntax.Block) string {
	return "do {\n" + t.statements(n.Statements) + "}\n"
}

func (t *Translator) VisitExpressionStatement(n *syntax.ExpressionStatement) string {
	return ensureLine(t.Node(n.Expr))
}

func (t *Translator) VisitLocalDeclaration(n *syntax.LocalDeclaration) string {
	keyword := "var "
	if n.Const {
		keyword = "let "
	}
	typ := t.opts.Types.Map(n.Type)
	var sb strings.Builder
	for _, d := range n.Declarators {
		sb.WriteString(keyword)
		sb.WriteString(ident(d.Name))
		if typ != "" {
			sb.WriteString(": " + typ)
		}
		if d.Init != nil {
			sb.WriteString(" = " + t.Node(d.Init))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (t *Translator) VisitReturn(n *syntax.Return) string {
	if n.Value == nil {
		return "return\n"
	}
	return "return " + t.Node(n.Value) + "\n"
}

func (t *Translator) VisitIf(n *syntax.If) string {
	var sb strings.Builder
	sb.WriteString("if " + t.condition(n.Cond) + " {\n")
	sb.WriteString(t.body(n.Then))
	sb.WriteString("}")
	switch e := n.Else.(type) {
	case nil:
	case *syntax.If:
		sb.WriteString(" else ")
		sb.WriteString(strings.TrimSuffix(t.Node(e), "\n"))
	default:
		sb.WriteString(" else {\n")
		sb.WriteString(t.body(e))
		sb.WriteString("}")
	}
	sb.WriteByte('\n')
	return sb.String()
}

func (t *Translator) VisitWhile(n *syntax.While) string {
	return "while " + t.condition(n.Cond) + " {\n" + t.body(n.Body) + "}\n"
}

func (t *Translator) VisitForEach(n *syntax.ForEach) string {
	return "for " + ident(n.Name) + " in " + t.Node(n.Collection) + " {\n" + t.body(n.Body) + "}\n"
}

func (t *Translator) VisitJump(n *syntax.Jump) string {
	return n.Keyword + "\n"
}

// condition drops redundant outer parentheses; Swift does not need them.
func (t *Translator) condition(n syntax.Node) string {
	for {
		p, ok := n.(*syntax.Parenthesized)
		if !ok {
			break
		}
		n = p.Inner
	}
	return t.Node(n)
}
