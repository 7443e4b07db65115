// Package translate renders a C# syntax tree as Swift source text.
//
// Translator implements syntax.Visitor; every Visit method builds its own
// text and returns it, so no buffer is shared between frames. Output is
// flat: lines carry no indentation, internal/indent re-derives it.
//
// Constructs without a Swift mapping are emitted as a comment holding the
// original C# text and reported as diag.UnsupportedConstruct. Whether that
// fails the file is the caller's decision.
package translate

import (
	"strings"

	"sharpswift/internal/diag"
	"sharpswift/internal/syntax"
)

type Translator struct {
	opts Options

	// inProtocol is set while rendering interface members.
	inProtocol bool
	// inStruct is set while rendering struct members.
	inStruct bool
}

var _ syntax.Visitor = (*Translator)(nil)

func New(opts Options) *Translator {
	return &Translator{opts: opts.withDefaults()}
}

// Node renders any node. A nil node renders as "".
func (t *Translator) Node(n syntax.Node) string {
	if n == nil {
		return ""
	}
	return n.Accept(t)
}

func (t *Translator) VisitUnknown(n *syntax.Unknown) string {
	what := n.SourceKind
	if what == "" {
		what = "construct"
	}
	diag.ReportWarning(t.opts.Reporter, diag.UnsupportedConstruct, n.Span, "no Swift mapping for "+what+"; kept as comment").Emit()
	return Passthrough(n.Text)
}

// Passthrough wraps source text in a comment. Swift block comments nest, so
// text holding either block delimiter is emitted as line comments instead,
// and then always ends with a newline.
func Passthrough(text string) string {
	text = strings.TrimSpace(text)
	if !strings.Contains(text, "*/") && !strings.Contains(text, "/*") {
		return "/* " + text + " */"
	}
	var sb strings.Builder
	for _, l := range strings.Split(text, "\n") {
		sb.WriteString("// ")
		sb.WriteString(strings.TrimRight(l, "\r"))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// comments renders comment trivia one per line.
func comments(trivia []syntax.Trivia) string {
	var sb strings.Builder
	for _, tr := range trivia {
		if !tr.IsComment() {
			continue
		}
		sb.WriteString(strings.TrimRight(tr.Text, " \t\r\n"))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// withTrivia re-emits the leading comments of n before text and its
// trailing comments at the end of text's last line.
func withTrivia(n syntax.Node, text string) string {
	info := n.Info()
	var sb strings.Builder
	sb.WriteString(comments(info.Leading))
	body := ensureLine(text)
	if trailing := trailingComment(info.Trailing); trailing != "" {
		sb.WriteString(strings.TrimSuffix(body, "\n"))
		sb.WriteByte(' ')
		sb.WriteString(trailing)
		sb.WriteByte('\n')
	} else {
		sb.WriteString(body)
	}
	return sb.String()
}

func trailingComment(trivia []syntax.Trivia) string {
	var parts []string
	for _, tr := range trivia {
		if tr.IsComment() && !strings.Contains(tr.Text, "\n") {
			parts = append(parts, strings.TrimSpace(tr.Text))
		}
	}
	return strings.Join(parts, " ")
}

// ensureLine terminates s with exactly one newline.
func ensureLine(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

var swiftKeywords = map[string]bool{
	"associatedtype": true, "deinit": true, "extension": true, "fileprivate": true,
	"func": true, "import": true, "init": true, "inout": true, "let": true,
	"open": true, "protocol": true, "rethrows": true, "subscript": true,
	"typealias": true, "var": true, "defer": true, "fallthrough": true,
	"guard": true, "repeat": true, "where": true, "Any": true, "nil": true,
	"self": true, "Self": true, "throws": true, "class": true, "struct": true,
	"enum": true, "internal": true, "private": true, "public": true,
	"static": true, "break": true, "case": true, "continue": true,
	"default": true, "do": true, "else": true, "for": true, "if": true,
	"in": true, "return": true, "switch": true, "while": true, "as": true,
	"catch": true, "false": true, "is": true, "super": true, "throw": true,
	"true": true, "try": true, "operator": true,
}

// ident escapes names that are reserved in Swift.
func ident(name string) string {
	if swiftKeywords[name] {
		return "`" + name + "`"
	}
	return name
}
