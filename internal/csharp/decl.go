package csharp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"sharpswift/internal/source"
	"sharpswift/internal/syntax"
)

func (c *converter) compilationUnit(root *sitter.Node) *syntax.CompilationUnit {
	cu := &syntax.CompilationUnit{Base: c.base(root)}
	// file-scoped namespace owns everything that follows it
	var scoped *syntax.Namespace
	for _, n := range c.sequence(root, c.member) {
		switch n := n.(type) {
		case *syntax.Using:
			if scoped != nil {
				scoped.Usings = append(scoped.Usings, n)
				continue
			}
			cu.Usings = append(cu.Usings, n)
		case *syntax.Namespace:
			if scoped != nil {
				scoped.Members = append(scoped.Members, n)
				continue
			}
			cu.Members = append(cu.Members, n)
			if n.FileScoped {
				scoped = n
			}
		default:
			if scoped != nil {
				scoped.Members = append(scoped.Members, n)
				continue
			}
			cu.Members = append(cu.Members, n)
		}
	}
	return cu
}

// member converts a namespace or type member.
func (c *converter) member(n *sitter.Node) syntax.Node {
	switch n.Type() {
	case "using_directive":
		return c.using(n)
	case "namespace_declaration", "file_scoped_namespace_declaration":
		return c.namespace(n)
	case "class_declaration", "struct_declaration", "interface_declaration":
		return c.typeDecl(n)
	case "enum_declaration":
		return c.enum(n)
	case "field_declaration":
		return c.field(n)
	case "property_declaration":
		return c.property(n)
	case "method_declaration":
		return c.method(n)
	case "constructor_declaration":
		return c.constructor(n)
	case "attribute_list", "global_attribute", "global_attribute_list", "preproc_region", "preproc_endregion":
		return nil
	}
	return c.unknown(n)
}

func (c *converter) using(n *sitter.Node) syntax.Node {
	u := &syntax.Using{Base: c.base(n), Static: token(n, "static") != ""}
	if token(n, "global") != "" {
		// global usings apply to the whole project; nothing to include here
		return c.unknown(n)
	}
	target := lastNamed(n)
	if alias := field(n, "alias"); alias != nil {
		u.Alias = c.identifier(alias)
	} else if eq := childOfType(n, "name_equals"); eq != nil {
		u.Alias = c.identifier(firstNamed(eq))
	}
	if f := field(n, "name"); f != nil && u.Alias == "" {
		target = f
	}
	u.Name = compactName(c.text(target))
	return u
}

func (c *converter) namespace(n *sitter.Node) *syntax.Namespace {
	ns := &syntax.Namespace{
		Base:       c.base(n),
		Name:       compactName(c.text(field(n, "name"))),
		FileScoped: n.Type() == "file_scoped_namespace_declaration",
	}
	container := field(n, "body")
	if container == nil {
		container = childOfType(n, "declaration_list")
	}
	if container == nil && ns.FileScoped {
		// newer grammars nest the members directly under the declaration
		container = n
	}
	for _, m := range c.sequence(container, c.namespaceMember(n)) {
		if u, ok := m.(*syntax.Using); ok {
			ns.Usings = append(ns.Usings, u)
			continue
		}
		ns.Members = append(ns.Members, m)
	}
	return ns
}

// namespaceMember skips the name node of a file-scoped namespace, which
// appears among its named children.
func (c *converter) namespaceMember(decl *sitter.Node) func(*sitter.Node) syntax.Node {
	name := field(decl, "name")
	return func(n *sitter.Node) syntax.Node {
		if sameNode(n, name) {
			return nil
		}
		switch n.Type() {
		case "identifier", "qualified_name":
			return nil
		}
		return c.member(n)
	}
}

func (c *converter) typeDecl(n *sitter.Node) syntax.Node {
	d := &syntax.TypeDecl{
		Base:      c.base(n),
		Modifiers: c.modifiers(n),
		Name:      c.identifier(field(n, "name")),
	}
	switch n.Type() {
	case "struct_declaration":
		d.Keyword = syntax.TypeStruct
	case "interface_declaration":
		d.Keyword = syntax.TypeInterface
	}
	d.TypeParams = c.typeParams(n)
	if bases := childOfType(n, "base_list"); bases != nil {
		for _, b := range named(bases) {
			if b.Type() == "primary_constructor_base_type" {
				b = firstNamed(b)
			}
			d.Bases = append(d.Bases, c.typeRef(b))
		}
	}
	body := field(n, "body")
	if body == nil {
		body = childOfType(n, "declaration_list")
	}
	d.Members = c.sequence(body, c.member)
	return d
}

func (c *converter) typeParams(n *sitter.Node) []string {
	list := field(n, "type_parameters")
	if list == nil {
		list = childOfType(n, "type_parameter_list")
	}
	var out []string
	for _, p := range childrenOfType(list, "type_parameter") {
		name := field(p, "name")
		if name == nil {
			name = childOfType(p, "identifier")
		}
		if name == nil {
			name = p
		}
		out = append(out, c.identifier(name))
	}
	return out
}

func (c *converter) enum(n *sitter.Node) syntax.Node {
	e := &syntax.Enum{
		Base:      c.base(n),
		Modifiers: c.modifiers(n),
		Name:      c.identifier(field(n, "name")),
	}
	if bases := childOfType(n, "base_list"); bases != nil {
		e.Underlying = c.typeRef(firstNamed(bases))
	}
	body := field(n, "body")
	if body == nil {
		body = childOfType(n, "enum_member_declaration_list")
	}
	for _, m := range c.sequence(body, c.enumMember) {
		if em, ok := m.(*syntax.EnumMember); ok {
			e.Members = append(e.Members, em)
		}
	}
	return e
}

func (c *converter) enumMember(n *sitter.Node) syntax.Node {
	if n.Type() != "enum_member_declaration" {
		return nil
	}
	m := &syntax.EnumMember{Base: c.base(n)}
	name := field(n, "name")
	if name == nil {
		name = childOfType(n, "identifier")
	}
	m.Name = c.identifier(name)
	if v := c.initializer(n, name); v != nil {
		m.Value = c.expr(v)
	}
	return m
}

func (c *converter) field(n *sitter.Node) syntax.Node {
	decl := childOfType(n, "variable_declaration")
	if decl == nil {
		return c.unknown(n)
	}
	f := &syntax.Field{Base: c.base(n), Modifiers: c.modifiers(n)}
	f.Type, f.Declarators = c.variables(decl)
	return f
}

// variables converts a variable_declaration: `T a = 1, b`.
func (c *converter) variables(decl *sitter.Node) (*syntax.TypeRef, []*syntax.VariableDeclarator) {
	typ := field(decl, "type")
	if typ == nil {
		typ = firstNamed(decl)
	}
	var out []*syntax.VariableDeclarator
	for _, v := range childrenOfType(decl, "variable_declarator") {
		name := field(v, "name")
		if name == nil {
			name = childOfType(v, "identifier")
		}
		d := &syntax.VariableDeclarator{Name: c.identifier(name)}
		if init := c.initializer(v, name); init != nil {
			d.Init = c.expr(init)
		}
		out = append(out, d)
	}
	return c.typeRef(typ), out
}

// initializer finds the value of `name = value` under n, whether the grammar
// wraps it in an equals_value_clause or not.
func (c *converter) initializer(n, name *sitter.Node) *sitter.Node {
	if v := field(n, "value"); v != nil {
		return v
	}
	if eq := childOfType(n, "equals_value_clause"); eq != nil {
		return firstNamed(eq)
	}
	seenEq := false
	for i := 0; i < int(n.ChildCount()); i++ {
		ch := n.Child(i)
		if !ch.IsNamed() {
			if ch.Type() == "=" {
				seenEq = true
			}
			continue
		}
		if seenEq && ch.Type() != "comment" && !sameNode(ch, name) {
			return ch
		}
	}
	return nil
}

func (c *converter) property(n *sitter.Node) syntax.Node {
	p := &syntax.Property{
		Base:      c.base(n),
		Modifiers: c.modifiers(n),
		Type:      c.typeRef(field(n, "type")),
		Name:      c.identifier(field(n, "name")),
	}
	if childOfType(n, "explicit_interface_specifier") != nil {
		return c.unknown(n)
	}
	accessors := field(n, "accessors")
	if accessors == nil {
		accessors = childOfType(n, "accessor_list")
	}
	for _, a := range childrenOfType(accessors, "accessor_declaration") {
		p.Accessors = append(p.Accessors, c.accessor(a))
	}
	switch v := field(n, "value"); {
	case v != nil && v.Type() == "arrow_expression_clause":
		p.ExprBody = c.expr(firstNamed(v))
	case v != nil:
		p.Init = c.expr(v)
	default:
		if arrow := childOfType(n, "arrow_expression_clause"); arrow != nil {
			p.ExprBody = c.expr(firstNamed(arrow))
		} else if eq := childOfType(n, "equals_value_clause"); eq != nil {
			p.Init = c.expr(firstNamed(eq))
		}
	}
	return p
}

func (c *converter) accessor(n *sitter.Node) *syntax.Accessor {
	a := &syntax.Accessor{Modifiers: c.modifiers(n)}
	if name := field(n, "name"); name != nil {
		a.Keyword = strings.TrimSpace(c.text(name))
	} else {
		a.Keyword = token(n, "get", "set", "init", "add", "remove")
	}
	body := field(n, "body")
	if body == nil {
		body = childOfType(n, "block", "arrow_expression_clause")
	}
	if body != nil {
		if body.Type() == "arrow_expression_clause" {
			a.Expr = c.expr(firstNamed(body))
		} else {
			a.Body = c.block(body)
		}
	}
	return a
}

func (c *converter) method(n *sitter.Node) syntax.Node {
	if childOfType(n, "explicit_interface_specifier") != nil {
		return c.unknown(n)
	}
	m := &syntax.Method{
		Base:       c.base(n),
		Modifiers:  c.modifiers(n),
		ReturnType: c.typeRef(field(n, "returns", "type")),
		Name:       c.identifier(field(n, "name")),
		TypeParams: c.typeParams(n),
		Params:     c.parameters(n),
	}
	m.Body, m.ExprBody = c.functionBody(n)
	return m
}

func (c *converter) constructor(n *sitter.Node) syntax.Node {
	k := &syntax.Constructor{
		Base:      c.base(n),
		Modifiers: c.modifiers(n),
		Name:      c.identifier(field(n, "name")),
		Params:    c.parameters(n),
	}
	if init := childOfType(n, "constructor_initializer"); init != nil {
		k.Initializer = &syntax.ConstructorInitializer{
			Keyword: token(init, "base", "this"),
			Args:    c.arguments(childOfType(init, "argument_list")),
		}
	}
	k.Body, k.ExprBody = c.functionBody(n)
	return k
}

func (c *converter) functionBody(n *sitter.Node) (*syntax.Block, syntax.Node) {
	body := field(n, "body")
	if body == nil {
		body = childOfType(n, "block", "arrow_expression_clause")
	}
	switch {
	case body == nil:
		return nil, nil
	case body.Type() == "arrow_expression_clause":
		return nil, c.expr(firstNamed(body))
	case body.Type() == "block":
		return c.block(body), nil
	}
	return nil, nil
}

func (c *converter) parameters(n *sitter.Node) *syntax.ParameterList {
	list := field(n, "parameters")
	if list == nil {
		list = childOfType(n, "parameter_list")
	}
	if list == nil {
		return &syntax.ParameterList{}
	}
	pl := &syntax.ParameterList{Base: c.base(list)}
	// newer grammars put `params T[] x` straight into the list as
	// type/name fields instead of a parameter_array node
	var kw, arrType, arrName *sitter.Node
	if kw = childOfType(list, "params"); kw != nil {
		arrType, arrName = field(list, "type"), field(list, "name")
	}
	for _, p := range named(list) {
		switch {
		case p.Type() == "parameter" || p.Type() == "parameter_array":
			pl.Params = append(pl.Params, c.parameter(p))
		case arrName != nil && sameNode(p, arrType):
			pl.Params = append(pl.Params, c.paramsArray(kw, arrType, arrName))
		case arrName != nil && sameNode(p, arrName):
		case p.Type() == "attribute_list":
		default:
			u := c.unknown(p)
			pl.Params = append(pl.Params, &syntax.Parameter{Base: u.Base, Unknown: u})
		}
	}
	return pl
}

func (c *converter) paramsArray(kw, typ, name *sitter.Node) *syntax.Parameter {
	sp := source.Span{File: c.file, Start: kw.StartByte(), End: name.EndByte()}
	return &syntax.Parameter{
		Base:     syntax.Base{Span: sp, Text: string(c.src[sp.Start:sp.End])},
		Modifier: "params",
		Type:     c.typeRef(typ),
		Name:     c.identifier(name),
	}
}

func (c *converter) parameter(n *sitter.Node) *syntax.Parameter {
	name := field(n, "name")
	if name == nil {
		name = lastOfType(n, "identifier")
	}
	p := &syntax.Parameter{
		Base: c.base(n),
		Name: c.identifier(name),
	}
	typ := field(n, "type")
	if typ == nil {
		for _, ch := range named(n) {
			switch ch.Type() {
			case "attribute_list", "parameter_modifier", "modifier", "equals_value_clause":
				continue
			}
			if !sameNode(ch, name) {
				typ = ch
			}
			break
		}
	}
	p.Type = c.typeRef(typ)
	if mod := childOfType(n, "parameter_modifier", "modifier"); mod != nil {
		p.Modifier = strings.TrimSpace(c.text(mod))
	} else {
		p.Modifier = token(n, "ref", "out", "in", "params", "this")
	}
	if n.Type() == "parameter_array" {
		p.Modifier = "params"
	}
	if def := c.initializer(n, name); def != nil {
		p.Default = c.expr(def)
	}
	return p
}

func lastOfType(n *sitter.Node, typ string) *sitter.Node {
	var last *sitter.Node
	for _, ch := range named(n) {
		if ch.Type() == typ {
			last = ch
		}
	}
	return last
}

// compactName drops whitespace and the global:: alias from a dotted name.
func compactName(s string) string {
	s = strings.Join(strings.Fields(s), "")
	return strings.TrimPrefix(s, "global::")
}

func sameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return false
	}
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}
