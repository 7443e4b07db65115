package translate

import (
	"strings"

	"sharpswift/internal/syntax"
)

func (t *Translator) VisitLiteral(n *syntax.Literal) string {
	switch n.LitKind {
	case syntax.LitNull:
		return "nil"
	case syntax.LitInt:
		return trimIntSuffix(n.Value)
	case syntax.LitReal:
		return realLiteral(n.Value)
	case syntax.LitChar:
		return `"` + convertEscapes(unquote(n.Value, "'"), '\'') + `"`
	case syntax.LitString:
		return `"` + convertEscapes(unquote(n.Value, `"`), '"') + `"`
	case syntax.LitVerbatimString:
		return `"` + escapeVerbatim(unquote(strings.TrimPrefix(n.Value, "@"), `"`)) + `"`
	}
	return n.Value
}

func (t *Translator) VisitInterpolatedString(n *syntax.InterpolatedString) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, p := range n.Parts {
		if p.Expr != nil {
			sb.WriteString(`\(`)
			sb.WriteString(t.Node(p.Expr))
			sb.WriteByte(')')
			continue
		}
		text := strings.NewReplacer("{{", "{", "}}", "}").Replace(p.Text)
		if n.Verbatim {
			sb.WriteString(escapeVerbatim(text))
		} else {
			sb.WriteString(convertEscapes(text, '"'))
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func (t *Translator) VisitIdentifier(n *syntax.Identifier) string {
	switch n.Name {
	case "this":
		return "self"
	case "base":
		return "super"
	}
	return ident(n.Name)
}

func (t *Translator) VisitTypeName(n *syntax.TypeName) string {
	return t.opts.Types.Map(n.Type)
}

func (t *Translator) VisitMemberAccess(n *syntax.MemberAccess) string {
	sep := "."
	if n.Conditional {
		sep = "?."
	}
	return t.operand(n.Target) + sep + n.Name
}

func (t *Translator) VisitInvocation(n *syntax.Invocation) string {
	return t.Node(n.Target) + "(" + t.arguments(n.Args) + ")"
}

func (t *Translator) arguments(args []*syntax.Argument) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		var sb strings.Builder
		if a.Name != "" {
			sb.WriteString(a.Name + ": ")
		}
		if a.Modifier == "ref" || a.Modifier == "out" {
			sb.WriteByte('&')
		}
		sb.WriteString(t.Node(a.Value))
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, ", ")
}

var binaryOps = map[string]string{
	"as":  "as?",
	">>>": ">>",
}

func (t *Translator) VisitBinary(n *syntax.Binary) string {
	op := n.Op
	if mapped, ok := binaryOps[op]; ok {
		op = mapped
	}
	return t.Node(n.Left) + " " + op + " " + t.Node(n.Right)
}

func (t *Translator) VisitUnary(n *syntax.Unary) string {
	operand := t.Node(n.Operand)
	switch n.Op {
	case "++":
		return operand + " += 1"
	case "--":
		return operand + " -= 1"
	case "await":
		return "await " + operand
	}
	if n.Postfix {
		return operand + n.Op
	}
	return n.Op + t.operand(n.Operand)
}

func (t *Translator) VisitAssignment(n *syntax.Assignment) string {
	target := t.Node(n.Target)
	value := t.Node(n.Value)
	switch n.Op {
	case "??=":
		return target + " = " + target + " ?? " + value
	case ">>>=":
		return target + " >>= " + value
	}
	return target + " " + n.Op + " " + value
}

// VisitObjectCreation drops `new`: Swift calls the initializer directly.
func (t *Translator) VisitObjectCreation(n *syntax.ObjectCreation) string {
	return t.opts.Types.Map(n.Type) + "(" + t.arguments(n.Args) + ")"
}

func (t *Translator) VisitParenthesized(n *syntax.Parenthesized) string {
	return "(" + t.Node(n.Inner) + ")"
}

func (t *Translator) VisitCast(n *syntax.Cast) string {
	target := t.opts.Types.Map(n.Type)
	if IsConversionTarget(target) {
		return target + "(" + t.Node(n.Operand) + ")"
	}
	return t.operand(n.Operand) + " as! " + target
}

func (t *Translator) VisitElementAccess(n *syntax.ElementAccess) string {
	return t.operand(n.Target) + "[" + t.arguments(n.Index) + "]"
}

func (t *Translator) VisitConditional(n *syntax.Conditional) string {
	return t.Node(n.Cond) + " ? " + t.Node(n.Then) + " : " + t.Node(n.Else)
}

// operand parenthesizes compound expressions used as the left side of a
// postfix construct.
func (t *Translator) operand(n syntax.Node) string {
	switch n.(type) {
	case *syntax.Binary, *syntax.Conditional, *syntax.Assignment, *syntax.Cast:
		return "(" + t.Node(n) + ")"
	}
	return t.Node(n)
}

func unquote(s, quote string) string {
	s = strings.TrimPrefix(s, quote)
	return strings.TrimSuffix(s, quote)
}

func trimIntSuffix(v string) string {
	return strings.TrimRight(v, "uUlL")
}

func realLiteral(v string) string {
	v = strings.TrimRight(v, "fFdDmM")
	if strings.HasPrefix(v, ".") {
		v = "0" + v
	}
	if strings.HasSuffix(v, ".") {
		v += "0"
	}
	return v
}

// convertEscapes rewrites a C# regular string or char body into a Swift
// string body. quote is the C# delimiter of the source literal.
func convertEscapes(body string, quote byte) string {
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '"' && quote == '\'' {
			sb.WriteString(`\"`)
			continue
		}
		if c != '\\' || i+1 >= len(body) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch e := body[i]; e {
		case '\'':
			sb.WriteByte('\'')
		case 'a':
			sb.WriteString(`\u{7}`)
		case 'b':
			sb.WriteString(`\u{8}`)
		case 'f':
			sb.WriteString(`\u{C}`)
		case 'v':
			sb.WriteString(`\u{B}`)
		case 'u', 'x', 'U':
			maxDigits := 4
			if e == 'U' {
				maxDigits = 8
			}
			j := i + 1
			for j < len(body) && j-(i+1) < maxDigits && isHex(body[j]) {
				j++
			}
			digits := strings.TrimLeft(body[i+1:j], "0")
			if digits == "" {
				digits = "0"
			}
			sb.WriteString(`\u{` + digits + `}`)
			i = j - 1
		default:
			sb.WriteByte('\\')
			sb.WriteByte(e)
		}
	}
	return sb.String()
}

func escapeVerbatim(body string) string {
	body = strings.ReplaceAll(body, `""`, `"`)
	return strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\r\n", `\n`,
		"\n", `\n`,
		"\t", `\t`,
	).Replace(body)
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
