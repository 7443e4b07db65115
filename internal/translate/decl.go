package translate

import (
	"strings"

	"sharpswift/internal/syntax"
)

func (t *Translator) VisitCompilationUnit(n *syntax.CompilationUnit) string {
	return t.members(n.Members, true)
}

// VisitUsing renders the include a using contributes: its own name when it
// is marked universal, the namespace table target when one matches, nothing
// otherwise.
func (t *Translator) VisitUsing(n *syntax.Using) string {
	if isUniversal(n) {
		return includeLine(n.Name) + "\n"
	}
	if inc := t.opts.Namespaces.IncludeFor(n); inc != "" {
		return inc + "\n"
	}
	return ""
}

// VisitNamespace flattens the namespace: Swift modules have no nested
// namespaces, so only the members are emitted.
func (t *Translator) VisitNamespace(n *syntax.Namespace) string {
	return t.members(n.Members, true)
}

// members renders declarations in order. Top-level declarations are
// separated by a blank line.
func (t *Translator) members(ms []syntax.Node, spaced bool) string {
	var sb strings.Builder
	for i, m := range ms {
		if m == nil {
			continue
		}
		text := t.Node(m)
		if text == "" {
			continue
		}
		if spaced && i > 0 && sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		if _, ok := m.(*syntax.Namespace); ok {
			sb.WriteString(ensureLine(text))
			continue
		}
		sb.WriteString(withTrivia(m, text))
	}
	return sb.String()
}

func (t *Translator) VisitTypeDecl(n *syntax.TypeDecl) string {
	var sb strings.Builder
	sb.WriteString(t.modifiers(n.Modifiers, declType))
	switch n.Keyword {
	case syntax.TypeInterface:
		sb.WriteString("protocol ")
	case syntax.TypeStruct:
		sb.WriteString("struct ")
	default:
		sb.WriteString("class ")
	}
	sb.WriteString(ident(n.Name))
	// protocols cannot be generic; type parameters become associated types
	if n.Keyword != syntax.TypeInterface {
		sb.WriteString(typeParams(n.TypeParams))
	}
	if len(n.Bases) > 0 {
		bases := make([]string, len(n.Bases))
		for i, b := range n.Bases {
			bases[i] = t.opts.Types.Map(b)
		}
		sb.WriteString(": ")
		sb.WriteString(strings.Join(bases, ", "))
	}
	sb.WriteString(" {\n")
	if n.Keyword == syntax.TypeInterface {
		for _, tp := range n.TypeParams {
			sb.WriteString("associatedtype " + ident(tp) + "\n")
		}
	}

	saveProto, saveStruct := t.inProtocol, t.inStruct
	t.inProtocol = n.Keyword == syntax.TypeInterface
	t.inStruct = n.Keyword == syntax.TypeStruct
	sb.WriteString(t.members(n.Members, false))
	t.inProtocol, t.inStruct = saveProto, saveStruct

	sb.WriteString("}\n")
	return sb.String()
}

func (t *Translator) VisitEnum(n *syntax.Enum) string {
	var sb strings.Builder
	sb.WriteString(t.modifiers(n.Modifiers, declType))
	sb.WriteString("enum ")
	sb.WriteString(ident(n.Name))
	sb.WriteString(": ")
	if n.Underlying != nil {
		sb.WriteString(t.opts.Types.Map(n.Underlying))
	} else {
		sb.WriteString("Int")
	}
	sb.WriteString(" {\n")
	for _, m := range n.Members {
		sb.WriteString(withTrivia(m, t.Node(m)))
	}
	sb.WriteString("}\n")
	return sb.String()
}

func (t *Translator) VisitEnumMember(n *syntax.EnumMember) string {
	if n.Value == nil {
		return "case " + ident(n.Name) + "\n"
	}
	return "case " + ident(n.Name) + " = " + t.Node(n.Value) + "\n"
}

func (t *Translator) VisitField(n *syntax.Field) string {
	var sb strings.Builder
	typ := t.opts.Types.Map(n.Type)
	for _, d := range n.Declarators {
		sb.WriteString(t.binding(n.Modifiers, d.Name, typ, d.Init))
	}
	return sb.String()
}

// binding renders one `var`/`let` member declaration.
func (t *Translator) binding(mods syntax.Modifiers, name, typ string, init syntax.Node) string {
	var sb strings.Builder
	sb.WriteString(t.modifiers(mods, declMember))
	switch {
	case mods.Has("const"):
		if !mods.Has("static") {
			sb.WriteString("static ")
		}
		sb.WriteString("let ")
	case mods.Has("readonly"):
		sb.WriteString("let ")
	default:
		sb.WriteString("var ")
	}
	sb.WriteString(ident(name))
	if typ != "" {
		sb.WriteString(": ")
		sb.WriteString(typ)
	}
	if init != nil {
		sb.WriteString(" = ")
		sb.WriteString(t.Node(init))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func (t *Translator) VisitProperty(n *syntax.Property) string {
	typ := t.opts.Types.Map(n.Type)
	name := ident(n.Name)

	if t.inProtocol {
		req := "get"
		if n.Accessor("set") != nil {
			req = "get set"
		}
		return "var " + name + ": " + typ + " { " + req + " }\n"
	}

	var sb strings.Builder
	if n.IsAuto() {
		setter := n.Accessor("set")
		if setter == nil {
			setter = n.Accessor("init")
		}
		sb.WriteString(t.modifiers(n.Modifiers, declMember))
		if setter == nil {
			sb.WriteString("let ")
		} else {
			if access := accessLevel(setter.Modifiers); access != "" && access != accessLevel(n.Modifiers) {
				sb.WriteString(access + "(set) ")
			}
			sb.WriteString("var ")
		}
		sb.WriteString(name + ": " + typ)
		if n.Init != nil {
			sb.WriteString(" = " + t.Node(n.Init))
		}
		sb.WriteByte('\n')
		return sb.String()
	}

	sb.WriteString(t.modifiers(n.Modifiers, declMember))
	sb.WriteString("var " + name + ": " + typ + " {\n")
	if n.ExprBody != nil {
		sb.WriteString("return " + t.Node(n.ExprBody) + "\n")
		sb.WriteString("}\n")
		return sb.String()
	}
	for _, a := range n.Accessors {
		switch a.Keyword {
		case "get":
			sb.WriteString("get {\n")
			sb.WriteString(t.functionBody(a.Body, a.Expr, true))
			sb.WriteString("}\n")
		case "set", "init":
			sb.WriteString("set(value) {\n")
			sb.WriteString(t.functionBody(a.Body, a.Expr, false))
			sb.WriteString("}\n")
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}

func (t *Translator) VisitMethod(n *syntax.Method) string {
	var sb strings.Builder
	if !t.inProtocol {
		sb.WriteString(t.modifiers(n.Modifiers, declMember))
	} else if n.Modifiers.Has("static") {
		sb.WriteString("static ")
	}
	sb.WriteString("func ")
	sb.WriteString(ident(n.Name))
	sb.WriteString(typeParams(n.TypeParams))
	sb.WriteString(t.params(n.Params))
	if n.Modifiers.Has("async") {
		sb.WriteString(" async")
	}
	hasResult := n.ReturnType != nil && !n.ReturnType.IsVoid()
	if hasResult {
		sb.WriteString(" -> ")
		sb.WriteString(t.opts.Types.Map(n.ReturnType))
	}
	if t.inProtocol && n.Body == nil && n.ExprBody == nil {
		sb.WriteByte('\n')
		return sb.String()
	}
	sb.WriteString(" {\n")
	sb.WriteString(t.functionBody(n.Body, n.ExprBody, hasResult))
	sb.WriteString("}\n")
	return sb.String()
}

func (t *Translator) VisitConstructor(n *syntax.Constructor) string {
	if n.Modifiers.Has("static") {
		return t.VisitUnknown(&syntax.Unknown{Base: n.Base, SourceKind: "static constructor"})
	}
	var sb strings.Builder
	sb.WriteString(t.modifiers(n.Modifiers, declMember))
	if n.Initializer != nil && n.Initializer.Keyword == "this" && !t.inStruct {
		sb.WriteString("convenience ")
	}
	sb.WriteString("init")
	sb.WriteString(t.params(n.Params))
	sb.WriteString(" {\n")
	if init := n.Initializer; init != nil {
		target := "super"
		if init.Keyword == "this" {
			target = "self"
		}
		sb.WriteString(target + ".init(" + t.arguments(init.Args) + ")\n")
	}
	sb.WriteString(t.functionBody(n.Body, n.ExprBody, false))
	sb.WriteString("}\n")
	return sb.String()
}

func (t *Translator) params(pl *syntax.ParameterList) string {
	if pl == nil {
		return "()"
	}
	return t.Node(pl)
}

func (t *Translator) VisitParameterList(n *syntax.ParameterList) string {
	parts := make([]string, 0, len(n.Params))
	for _, p := range n.Params {
		parts = append(parts, t.Node(p))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t *Translator) VisitParameter(n *syntax.Parameter) string {
	if n.Unknown != nil {
		return strings.TrimSuffix(t.Node(n.Unknown), "\n")
	}
	var sb strings.Builder
	sb.WriteString(ident(n.Name))
	sb.WriteString(": ")
	switch n.Modifier {
	case "ref", "out":
		sb.WriteString("inout ")
		sb.WriteString(t.opts.Types.Map(n.Type))
	case "params":
		elem := *n.Type
		if elem.ArrayRank > 0 {
			elem.ArrayRank--
		}
		sb.WriteString(t.opts.Types.Map(&elem))
		sb.WriteString("...")
	default:
		sb.WriteString(t.opts.Types.Map(n.Type))
	}
	if n.Default != nil {
		sb.WriteString(" = ")
		sb.WriteString(t.Node(n.Default))
	}
	return sb.String()
}

// functionBody renders the statements of a block body or the single
// expression of an expression body.
func (t *Translator) functionBody(body *syntax.Block, expr syntax.Node, hasResult bool) string {
	if body != nil {
		return t.statements(body.Statements)
	}
	if expr == nil {
		return ""
	}
	if hasResult {
		return "return " + t.Node(expr) + "\n"
	}
	return ensureLine(t.Node(expr))
}

func typeParams(tps []string) string {
	if len(tps) == 0 {
		return ""
	}
	names := make([]string, len(tps))
	for i, tp := range tps {
		names[i] = ident(tp)
	}
	return "<" + strings.Join(names, ", ") + ">"
}

type declContext uint8

const (
	declType declContext = iota
	declMember
)

// modifiers maps C# modifiers to Swift ones. Modifiers with no Swift
// counterpart (protected, virtual, abstract, partial, ...) are dropped.
func (t *Translator) modifiers(mods syntax.Modifiers, ctx declContext) string {
	var out []string
	if access := accessLevel(mods); access != "" {
		out = append(out, access)
	}
	if ctx == declMember && mods.Has("static") {
		out = append(out, "static")
	}
	if mods.Has("sealed") && !t.inStruct {
		out = append(out, "final")
	}
	if mods.Has("override") {
		out = append(out, "override")
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, " ") + " "
}

// accessLevel returns the Swift access keyword for the C# modifiers, or ""
// when none applies.
func accessLevel(mods syntax.Modifiers) string {
	switch {
	case mods.Has("public"):
		return "public"
	case mods.Has("private") && mods.Has("protected"):
		return "private"
	case mods.Has("internal"):
		return "internal"
	case mods.Has("private"):
		return "private"
	}
	return ""
}
