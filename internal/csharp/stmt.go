package csharp

import (
	sitter "github.com/smacker/go-tree-sitter"

	"sharpswift/internal/syntax"
)

func (c *converter) block(n *sitter.Node) *syntax.Block {
	return &syntax.Block{Base: c.base(n), Statements: c.sequence(n, c.statement)}
}

func (c *converter) statement(n *sitter.Node) syntax.Node {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "block":
		return c.block(n)
	case "empty_statement":
		return nil
	case "expression_statement":
		return &syntax.ExpressionStatement{Base: c.base(n), Expr: c.expr(firstNamed(n))}
	case "local_declaration_statement":
		return c.localDeclaration(n)
	case "return_statement":
		return &syntax.Return{Base: c.base(n), Value: c.expr(firstNamed(n))}
	case "if_statement":
		return c.ifStatement(n)
	case "while_statement":
		return &syntax.While{
			Base: c.base(n),
			Cond: c.expr(field(n, "condition")),
			Body: c.statement(field(n, "body")),
		}
	case "foreach_statement":
		return c.forEach(n)
	case "break_statement":
		return &syntax.Jump{Base: c.base(n), Keyword: "break"}
	case "continue_statement":
		return &syntax.Jump{Base: c.base(n), Keyword: "continue"}
	}
	return c.unknown(n)
}

func (c *converter) localDeclaration(n *sitter.Node) syntax.Node {
	decl := childOfType(n, "variable_declaration")
	// using and await using declarations have no Swift equivalent
	if decl == nil || token(n, "using", "await") != "" {
		return c.unknown(n)
	}
	d := &syntax.LocalDeclaration{Base: c.base(n)}
	d.Const = token(n, "const") != "" || c.modifiers(n).Has("const")
	d.Type, d.Declarators = c.variables(decl)
	return d
}

func (c *converter) ifStatement(n *sitter.Node) syntax.Node {
	s := &syntax.If{
		Base: c.base(n),
		Cond: c.expr(field(n, "condition")),
		Then: c.statement(field(n, "consequence")),
	}
	alt := field(n, "alternative")
	if alt != nil && alt.Type() == "else_clause" {
		alt = firstNamed(alt)
	}
	if alt != nil {
		s.Else = c.statement(alt)
	}
	return s
}

func (c *converter) forEach(n *sitter.Node) syntax.Node {
	left := field(n, "left")
	if left == nil {
		return c.unknown(n)
	}
	return &syntax.ForEach{
		Base:       c.base(n),
		Type:       c.typeRef(field(n, "type")),
		Name:       c.identifier(left),
		Collection: c.expr(field(n, "right")),
		Body:       c.statement(field(n, "body")),
	}
}
