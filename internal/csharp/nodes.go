package csharp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"sharpswift/internal/source"
	"sharpswift/internal/syntax"
)

func (c *converter) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(c.src)
}

func (c *converter) span(n *sitter.Node) source.Span {
	return source.Span{File: c.file, Start: n.StartByte(), End: n.EndByte()}
}

func (c *converter) base(n *sitter.Node) syntax.Base {
	return syntax.Base{Span: c.span(n), Text: c.text(n)}
}

func (c *converter) unknown(n *sitter.Node) *syntax.Unknown {
	kind := n.Type()
	if n.IsError() {
		kind = "unparsable code"
	}
	return &syntax.Unknown{Base: c.base(n), SourceKind: strings.ReplaceAll(kind, "_", " ")}
}

// named returns the named children of n, comments excluded.
func named(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	out := make([]*sitter.Node, 0, n.NamedChildCount())
	for i := 0; i < int(n.NamedChildCount()); i++ {
		ch := n.NamedChild(i)
		if ch.Type() != "comment" {
			out = append(out, ch)
		}
	}
	return out
}

func firstNamed(n *sitter.Node) *sitter.Node {
	if ns := named(n); len(ns) > 0 {
		return ns[0]
	}
	return nil
}

func lastNamed(n *sitter.Node) *sitter.Node {
	if ns := named(n); len(ns) > 0 {
		return ns[len(ns)-1]
	}
	return nil
}

// field returns the first present field among names. Grammar releases
// renamed a few fields, so callers pass every known spelling.
func field(n *sitter.Node, names ...string) *sitter.Node {
	if n == nil {
		return nil
	}
	for _, name := range names {
		if ch := n.ChildByFieldName(name); ch != nil {
			return ch
		}
	}
	return nil
}

func childOfType(n *sitter.Node, types ...string) *sitter.Node {
	if n == nil {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		ch := n.Child(i)
		for _, t := range types {
			if ch.Type() == t {
				return ch
			}
		}
	}
	return nil
}

func childrenOfType(n *sitter.Node, typ string) []*sitter.Node {
	var out []*sitter.Node
	for _, ch := range named(n) {
		if ch.Type() == typ {
			out = append(out, ch)
		}
	}
	return out
}

// token returns the first anonymous child whose type is one of toks.
func token(n *sitter.Node, toks ...string) string {
	if n == nil {
		return ""
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		ch := n.Child(i)
		if ch.IsNamed() {
			continue
		}
		for _, t := range toks {
			if ch.Type() == t {
				return t
			}
		}
	}
	return ""
}

// operator returns the operator of a binary, unary or assignment node.
func (c *converter) operator(n *sitter.Node) string {
	if op := field(n, "operator"); op != nil {
		return strings.TrimSpace(c.text(op))
	}
	if op := childOfType(n, "assignment_operator"); op != nil {
		return strings.TrimSpace(c.text(op))
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if ch := n.Child(i); !ch.IsNamed() {
			return ch.Type()
		}
	}
	return ""
}

func (c *converter) modifiers(n *sitter.Node) syntax.Modifiers {
	var mods syntax.Modifiers
	for i := 0; i < int(n.ChildCount()); i++ {
		ch := n.Child(i)
		if ch.Type() == "modifier" {
			mods = append(mods, strings.TrimSpace(c.text(ch)))
		}
	}
	return mods
}

func (c *converter) identifier(n *sitter.Node) string {
	return strings.TrimPrefix(strings.TrimSpace(c.text(n)), "@")
}

func (c *converter) trivia(n *sitter.Node) syntax.Trivia {
	text := c.text(n)
	kind := syntax.TriviaLineComment
	switch {
	case strings.HasPrefix(text, "///"):
		kind = syntax.TriviaDocComment
	case strings.HasPrefix(text, "/*"):
		kind = syntax.TriviaBlockComment
	}
	return syntax.Trivia{Kind: kind, Span: c.span(n), Text: text}
}

// sequence converts the named children of a container and attaches the
// comments found between them. convert may return nil to skip a child.
func (c *converter) sequence(n *sitter.Node, convert func(*sitter.Node) syntax.Node) []syntax.Node {
	if n == nil {
		return nil
	}
	var (
		out        []syntax.Node
		pending    []syntax.Trivia
		prev       syntax.Node
		prevEndRow uint32
	)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		ch := n.NamedChild(i)
		if ch.Type() == "comment" {
			tr := c.trivia(ch)
			if prev != nil && ch.StartPoint().Row == prevEndRow {
				info := prev.Info()
				info.Trailing = append(info.Trailing, tr)
				continue
			}
			pending = append(pending, tr)
			continue
		}
		node := convert(ch)
		if node == nil {
			continue
		}
		info := node.Info()
		info.Leading = append(pending, info.Leading...)
		pending = nil
		out = append(out, node)
		prev, prevEndRow = node, ch.EndPoint().Row
	}
	if len(pending) > 0 && prev != nil {
		info := prev.Info()
		info.Trailing = append(info.Trailing, pending...)
	}
	return out
}
