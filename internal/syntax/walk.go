package syntax

// Children returns the direct child nodes of n in source order.
// Nil children are skipped.
func Children(n Node) []Node {
	var out []Node
	add := func(ns ...Node) {
		for _, c := range ns {
			if c != nil && !isNilNode(c) {
				out = append(out, c)
			}
		}
	}
	args := func(as []*Argument) {
		for _, a := range as {
			if a != nil {
				add(a.Value)
			}
		}
	}
	decls := func(ds []*VariableDeclarator) {
		for _, d := range ds {
			if d != nil {
				add(d.Init)
			}
		}
	}

	switch n := n.(type) {
	case *CompilationUnit:
		for _, u := range n.Usings {
			add(u)
		}
		add(n.Members...)
	case *Namespace:
		for _, u := range n.Usings {
			add(u)
		}
		add(n.Members...)
	case *TypeDecl:
		add(n.Members...)
	case *Enum:
		for _, m := range n.Members {
			add(m)
		}
	case *EnumMember:
		add(n.Value)
	case *Field:
		decls(n.Declarators)
	case *Property:
		for _, a := range n.Accessors {
			if a.Body != nil {
				add(a.Body)
			}
			add(a.Expr)
		}
		add(n.ExprBody, n.Init)
	case *Method:
		if n.Params != nil {
			add(n.Params)
		}
		if n.Body != nil {
			add(n.Body)
		}
		add(n.ExprBody)
	case *Constructor:
		if n.Params != nil {
			add(n.Params)
		}
		if n.Initializer != nil {
			args(n.Initializer.Args)
		}
		if n.Body != nil {
			add(n.Body)
		}
		add(n.ExprBody)
	case *ParameterList:
		for _, p := range n.Params {
			add(p)
		}
	case *Parameter:
		if n.Unknown != nil {
			add(n.Unknown)
		}
		add(n.Default)
	case *Block:
		add(n.Statements...)
	case *ExpressionStatement:
		add(n.Expr)
	case *LocalDeclaration:
		decls(n.Declarators)
	case *Return:
		add(n.Value)
	case *If:
		add(n.Cond, n.Then, n.Else)
	case *While:
		add(n.Cond, n.Body)
	case *ForEach:
		add(n.Collection, n.Body)
	case *InterpolatedString:
		for _, p := range n.Parts {
			add(p.Expr)
		}
	case *MemberAccess:
		add(n.Target)
	case *Invocation:
		add(n.Target)
		args(n.Args)
	case *Binary:
		add(n.Left, n.Right)
	case *Unary:
		add(n.Operand)
	case *Assignment:
		add(n.Target, n.Value)
	case *ObjectCreation:
		args(n.Args)
	case *Parenthesized:
		add(n.Inner)
	case *Cast:
		add(n.Operand)
	case *ElementAccess:
		add(n.Target)
		args(n.Index)
	case *Conditional:
		add(n.Cond, n.Then, n.Else)
	}
	return out
}

// isNilNode catches typed nil pointers stored in a Node interface.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *Block:
		return v == nil
	case *If:
		return v == nil
	case *ParameterList:
		return v == nil
	}
	return false
}

// Inspect walks the tree depth-first in source order. If f returns false,
// the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}
