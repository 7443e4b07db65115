package translate

import (
	"strings"

	"sharpswift/internal/diag"
	"sharpswift/internal/directive"
	"sharpswift/internal/syntax"
)

// Header is emitted at the top of every converted file.
const Header = "//Converted with SharpSwift - https://github.com/matthewsot/SharpSwift\n" +
	"//See https://github.com/matthewsot/DNSwift FMI about these includes\n\n"

// Unit is the translated form of one compilation unit.
type Unit struct {
	Header     string
	Directives *directive.Set
	Body       string
}

// String assembles header, directives, a blank line and the body.
func (u *Unit) String() string {
	var sb strings.Builder
	sb.WriteString(u.Header)
	sb.WriteString(u.Directives.String())
	sb.WriteByte('\n')
	sb.WriteString(u.Body)
	return sb.String()
}

// Unit translates a whole compilation unit. Directives are collected in
// this order: the baseline include; for each using its own include and the
// includes in its leading comments; includes trailing the last using;
// includes leading the first namespace; then usings declared inside that
// namespace. Duplicates keep their first position.
//
// A unit without a namespace is rejected with ErrNoNamespace.
func (t *Translator) Unit(cu *syntax.CompilationUnit) (*Unit, error) {
	namespaces := cu.Namespaces()
	if len(namespaces) == 0 {
		diag.ReportError(t.opts.Reporter, diag.StructuralPrecondition, cu.Span,
			"no namespace declaration; the translator needs one").Emit()
		return nil, noNamespaceError()
	}
	root := namespaces[0]

	set := directive.NewSet()
	set.Add(includeLine(t.opts.BaselineImport))
	t.addUsings(set, cu.Usings)
	if len(cu.Usings) > 0 {
		set.AddText(directive.Includes(cu.Usings[len(cu.Usings)-1].Trailing))
	}
	set.AddText(directive.Includes(root.Leading))
	t.addUsings(set, root.Usings)

	return &Unit{
		Header:     Header,
		Directives: set,
		Body:       t.Node(cu),
	}, nil
}

func (t *Translator) addUsings(set *directive.Set, usings []*syntax.Using) {
	for _, u := range usings {
		set.AddText(t.Node(u))
		set.AddText(directive.Includes(u.Leading))
	}
}

func isUniversal(u *syntax.Using) bool {
	return directive.IsUniversal(u.Leading)
}

// Translate is a convenience wrapper around New(opts).Unit(cu).
func Translate(cu *syntax.CompilationUnit, opts Options) (*Unit, error) {
	return New(opts).Unit(cu)
}
