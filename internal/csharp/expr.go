package csharp

import (
	"strings"

	"fortio.org/safecast"

	sitter "github.com/smacker/go-tree-sitter"

	"sharpswift/internal/syntax"
)

var literalKinds = map[string]syntax.LiteralKind{
	"null_literal":            syntax.LitNull,
	"boolean_literal":         syntax.LitBool,
	"integer_literal":         syntax.LitInt,
	"real_literal":            syntax.LitReal,
	"character_literal":       syntax.LitChar,
	"string_literal":          syntax.LitString,
	"verbatim_string_literal": syntax.LitVerbatimString,
}

func (c *converter) expr(n *sitter.Node) syntax.Node {
	if n == nil {
		return nil
	}
	if kind, ok := literalKinds[n.Type()]; ok {
		value := strings.TrimSpace(c.text(n))
		if kind == syntax.LitString && strings.HasPrefix(value, "@") {
			kind = syntax.LitVerbatimString
		}
		if kind == syntax.LitString && strings.HasSuffix(value, "u8") {
			return c.unknown(n)
		}
		return &syntax.Literal{Base: c.base(n), LitKind: kind, Value: value}
	}

	switch n.Type() {
	case "identifier":
		return &syntax.Identifier{Base: c.base(n), Name: c.identifier(n)}
	case "this_expression", "this":
		return &syntax.Identifier{Base: c.base(n), Name: "this"}
	case "base_expression", "base":
		return &syntax.Identifier{Base: c.base(n), Name: "base"}
	case "predefined_type", "generic_name", "qualified_name", "nullable_type", "array_type":
		return &syntax.TypeName{Base: c.base(n), Type: c.typeRef(n)}
	case "interpolated_string_expression":
		return c.interpolated(n)
	case "parenthesized_expression":
		return &syntax.Parenthesized{Base: c.base(n), Inner: c.expr(firstNamed(n))}
	case "member_access_expression":
		name := field(n, "name")
		if name == nil {
			name = lastNamed(n)
		}
		target := field(n, "expression")
		if target == nil {
			target = firstNamed(n)
		}
		return &syntax.MemberAccess{Base: c.base(n), Target: c.expr(target), Name: c.identifier(name)}
	case "conditional_access_expression":
		return c.conditionalAccess(n)
	case "member_binding_expression":
		if c.binding == nil {
			return c.unknown(n)
		}
		name := field(n, "name")
		if name == nil {
			name = lastNamed(n)
		}
		return &syntax.MemberAccess{Base: c.base(n), Target: c.binding, Name: c.identifier(name), Conditional: true}
	case "invocation_expression":
		fn := field(n, "function")
		if fn == nil {
			fn = firstNamed(n)
		}
		args := field(n, "arguments")
		if args == nil {
			args = childOfType(n, "argument_list")
		}
		return &syntax.Invocation{Base: c.base(n), Target: c.expr(fn), Args: c.arguments(args)}
	case "element_access_expression":
		target := field(n, "expression")
		if target == nil {
			target = firstNamed(n)
		}
		sub := field(n, "subscript")
		if sub == nil {
			sub = childOfType(n, "bracketed_argument_list")
		}
		return &syntax.ElementAccess{Base: c.base(n), Target: c.expr(target), Index: c.arguments(sub)}
	case "binary_expression":
		return &syntax.Binary{
			Base:  c.base(n),
			Op:    c.operator(n),
			Left:  c.expr(field(n, "left")),
			Right: c.expr(field(n, "right")),
		}
	case "as_expression", "is_expression":
		op := "as"
		if n.Type() == "is_expression" {
			op = "is"
		}
		left, right := field(n, "left"), field(n, "right")
		if left == nil || right == nil {
			parts := named(n)
			if len(parts) != 2 {
				return c.unknown(n)
			}
			left, right = parts[0], parts[1]
		}
		return &syntax.Binary{
			Base:  c.base(n),
			Op:    op,
			Left:  c.expr(left),
			Right: &syntax.TypeName{Base: c.base(right), Type: c.typeRef(right)},
		}
	case "prefix_unary_expression":
		return &syntax.Unary{Base: c.base(n), Op: c.operator(n), Operand: c.expr(firstNamed(n))}
	case "postfix_unary_expression":
		return &syntax.Unary{Base: c.base(n), Op: lastToken(n), Operand: c.expr(firstNamed(n)), Postfix: true}
	case "await_expression":
		return &syntax.Unary{Base: c.base(n), Op: "await", Operand: c.expr(firstNamed(n))}
	case "assignment_expression":
		return &syntax.Assignment{
			Base:   c.base(n),
			Op:     c.operator(n),
			Target: c.expr(field(n, "left")),
			Value:  c.expr(field(n, "right")),
		}
	case "object_creation_expression":
		if field(n, "initializer") != nil || childOfType(n, "initializer_expression") != nil {
			return c.unknown(n)
		}
		args := field(n, "arguments")
		if args == nil {
			args = childOfType(n, "argument_list")
		}
		return &syntax.ObjectCreation{Base: c.base(n), Type: c.typeRef(field(n, "type")), Args: c.arguments(args)}
	case "cast_expression":
		return &syntax.Cast{Base: c.base(n), Type: c.typeRef(field(n, "type")), Operand: c.expr(field(n, "value"))}
	case "conditional_expression":
		return &syntax.Conditional{
			Base: c.base(n),
			Cond: c.expr(field(n, "condition")),
			Then: c.expr(field(n, "consequence")),
			Else: c.expr(field(n, "alternative")),
		}
	}
	return c.unknown(n)
}

// conditionalAccess converts `a?.b.c`: the member_binding_expression at the
// head of the right side binds to a.
func (c *converter) conditionalAccess(n *sitter.Node) syntax.Node {
	parts := named(n)
	if len(parts) != 2 {
		return c.unknown(n)
	}
	cond := field(n, "condition")
	if cond == nil {
		cond = parts[0]
	}
	saved := c.binding
	c.binding = c.expr(cond)
	out := c.expr(parts[1])
	c.binding = saved
	return out
}

func lastToken(n *sitter.Node) string {
	for i := int(n.ChildCount()) - 1; i >= 0; i-- {
		if ch := n.Child(i); !ch.IsNamed() {
			return ch.Type()
		}
	}
	return ""
}

func (c *converter) arguments(list *sitter.Node) []*syntax.Argument {
	var out []*syntax.Argument
	for _, a := range childrenOfType(list, "argument") {
		arg := &syntax.Argument{Modifier: token(a, "ref", "out", "in")}
		// `name:` is a field on current grammars, a name_colon node on older ones
		label := field(a, "name")
		if label != nil {
			arg.Name = c.identifier(label)
		}
		var value *sitter.Node
		for _, ch := range named(a) {
			switch {
			case sameNode(ch, label):
				continue
			case ch.Type() == "name_colon":
				arg.Name = strings.TrimSuffix(strings.TrimSpace(c.text(ch)), ":")
				arg.Name = strings.TrimPrefix(strings.TrimSpace(arg.Name), "@")
				continue
			}
			value = ch
		}
		arg.Value = c.expr(value)
		out = append(out, arg)
	}
	return out
}

// interpolated splits $"..." into text runs and interpolations. Text is
// taken from the source bytes between interpolation nodes so the result
// does not depend on how the grammar tokenizes string content.
func (c *converter) interpolated(n *sitter.Node) syntax.Node {
	text := c.text(n)
	open := strings.IndexByte(text, '"')
	if open < 0 || strings.HasPrefix(text[open:], `"""`) || !strings.HasSuffix(text, `"`) {
		return c.unknown(n)
	}
	s := &syntax.InterpolatedString{
		Base:     c.base(n),
		Verbatim: strings.Contains(text[:open], "@"),
	}
	offset, err := safecast.Conv[uint32](open + 1)
	if err != nil {
		return c.unknown(n)
	}
	cursor := n.StartByte() + offset
	end := n.EndByte() - 1
	for _, ch := range childrenOfType(n, "interpolation") {
		if ch.StartByte() > cursor {
			s.Parts = append(s.Parts, syntax.InterpolationPart{Text: string(c.src[cursor:ch.StartByte()])})
		}
		var value *sitter.Node
		for _, part := range named(ch) {
			switch part.Type() {
			case "interpolation_alignment_clause", "interpolation_format_clause", "interpolation_brace":
				continue
			}
			value = part
			break
		}
		if value == nil {
			return c.unknown(n)
		}
		if childOfType(ch, "interpolation_alignment_clause", "interpolation_format_clause") != nil {
			// format specifiers need String(format:), which is not in the base library
			s.Parts = append(s.Parts, syntax.InterpolationPart{Expr: c.unknown(ch)})
		} else {
			s.Parts = append(s.Parts, syntax.InterpolationPart{Expr: c.expr(value)})
		}
		cursor = ch.EndByte()
	}
	if end > cursor {
		s.Parts = append(s.Parts, syntax.InterpolationPart{Text: string(c.src[cursor:end])})
	}
	return s
}
