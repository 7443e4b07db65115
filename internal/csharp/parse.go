// Package csharp builds a syntax.CompilationUnit from C# source using the
// tree-sitter C# grammar.
//
// Only the subset the translator understands gets dedicated nodes; every
// other construct becomes a syntax.Unknown carrying its source text.
// Comments between declarations and statements become trivia of the
// neighbouring node: a comment on the same line as the end of the previous
// node trails it, any other comment leads the next node. Comments inside
// expressions and declaration headers are dropped.
//
// ERROR and MISSING nodes are reported as diag.ParseSyntaxError; the
// subtree they cover is kept as Unknown so translation can go on.
package csharp

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	tscsharp "github.com/smacker/go-tree-sitter/csharp"

	"sharpswift/internal/diag"
	"sharpswift/internal/source"
	"sharpswift/internal/syntax"
)

// Parse parses one file. The returned error is non-nil only when tree-sitter
// itself fails (for example on context cancellation); syntax errors are
// reported through r.
func Parse(ctx context.Context, f *source.File, r diag.Reporter) (*syntax.CompilationUnit, error) {
	if f == nil {
		return nil, errors.New("csharp: nil source file")
	}
	if r == nil {
		r = diag.NopReporter{}
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(tscsharp.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, f.Content)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", f.Path)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, errors.Newf("parse %s: tree-sitter returned no root", f.Path)
	}

	c := &converter{src: f.Content, file: f.ID, reporter: r}
	if root.HasError() {
		c.reportErrors(root)
	}
	return c.compilationUnit(root), nil
}

// ParseString parses an in-memory snippet; used by tests and the CLI's
// stdin mode.
func ParseString(ctx context.Context, name, code string, r diag.Reporter) (*syntax.CompilationUnit, *source.FileSet, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(code))
	cu, err := Parse(ctx, fs.Get(id), r)
	return cu, fs, err
}

type converter struct {
	src      []byte
	file     source.FileID
	reporter diag.Reporter

	// binding is the target of the enclosing `?.` expression.
	binding syntax.Node
}

// reportErrors walks ERROR and MISSING nodes, like a validator would.
func (c *converter) reportErrors(n *sitter.Node) {
	if n.IsError() || n.IsMissing() {
		msg := "syntax error"
		if n.IsMissing() {
			msg = "missing " + n.Type()
		} else if t := strings.TrimSpace(c.text(n)); t != "" {
			msg = "syntax error near `" + firstLine(t) + "`"
		}
		diag.ReportWarning(c.reporter, diag.ParseSyntaxError, c.span(n), msg).Emit()
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.HasError() || child.IsError() || child.IsMissing() {
			c.reportErrors(child)
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i]) + " ..."
	}
	if len(s) > 40 {
		return s[:40] + " ..."
	}
	return s
}
