package csharp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"sharpswift/internal/syntax"
)

// typeRef converts a type node. Shapes the mapper cannot express keep
// their source text in Raw.
func (c *converter) typeRef(n *sitter.Node) *syntax.TypeRef {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "implicit_type":
		return &syntax.TypeRef{Implicit: true}
	case "predefined_type":
		return &syntax.TypeRef{Name: strings.TrimSpace(c.text(n))}
	case "identifier":
		name := c.identifier(n)
		if name == "var" {
			return &syntax.TypeRef{Implicit: true}
		}
		return &syntax.TypeRef{Name: name}
	case "qualified_name":
		return c.qualifiedType(n)
	case "alias_qualified_name":
		return &syntax.TypeRef{Name: compactName(c.text(n))}
	case "generic_name":
		return c.genericType(n)
	case "nullable_type":
		inner := c.typeRef(innerType(n))
		if inner == nil {
			break
		}
		if inner.ArrayRank > 0 {
			return &syntax.TypeRef{Name: "Nullable", Args: []*syntax.TypeRef{inner}}
		}
		inner.Nullable = true
		return inner
	case "array_type":
		inner := c.typeRef(innerType(n))
		if inner == nil {
			break
		}
		rank := field(n, "rank")
		if rank == nil {
			rank = childOfType(n, "array_rank_specifier")
		}
		// multi-dimensional arrays ([,]) have no Swift counterpart
		if rank != nil && strings.Contains(c.text(rank), ",") {
			break
		}
		inner.ArrayRank++
		return inner
	}
	return &syntax.TypeRef{Raw: strings.TrimSpace(c.text(n))}
}

func innerType(n *sitter.Node) *sitter.Node {
	if t := field(n, "type"); t != nil {
		return t
	}
	return firstNamed(n)
}

func (c *converter) qualifiedType(n *sitter.Node) *syntax.TypeRef {
	qualifier := field(n, "qualifier")
	name := field(n, "name")
	if name == nil {
		name = lastNamed(n)
	}
	if name == nil || name.Type() != "generic_name" {
		return &syntax.TypeRef{Name: compactName(c.text(n))}
	}
	ref := c.genericType(name)
	prefix := compactName(c.text(qualifier))
	if qualifier == nil {
		prefix = compactName(strings.TrimSuffix(c.text(n)[:name.StartByte()-n.StartByte()], "."))
	}
	if prefix != "" {
		ref.Name = strings.TrimSuffix(prefix, ".") + "." + ref.Name
	}
	return ref
}

func (c *converter) genericType(n *sitter.Node) *syntax.TypeRef {
	name := field(n, "name")
	if name == nil {
		name = childOfType(n, "identifier")
	}
	ref := &syntax.TypeRef{Name: c.identifier(name)}
	args := field(n, "type_arguments")
	if args == nil {
		args = childOfType(n, "type_argument_list")
	}
	for _, a := range named(args) {
		ref.Args = append(ref.Args, c.typeRef(a))
	}
	return ref
}
