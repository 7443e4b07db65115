package diag

import (
	"fmt"
	"path/filepath"
	"strings"

	"sharpswift/internal/source"
)

// FormatShort renders diagnostics one per line as
// `path:line:col: severity CODE message`, in the order given.
// Notes follow their diagnostic when includeNotes is set.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	var b strings.Builder
	for i := range diags {
		d := &diags[i]
		writeLine(&b, fs, d.Primary, d.Severity.Label(), d.Code.ID(), d.Message)
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			writeLine(&b, fs, n.Span, "note", d.Code.ID(), n.Msg)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// FormatContext is FormatShort with the offending source line and a caret
// marker printed under every primary span.
func FormatContext(diags []Diagnostic, fs *source.FileSet) string {
	var b strings.Builder
	for i := range diags {
		d := &diags[i]
		writeLine(&b, fs, d.Primary, d.Severity.Label(), d.Code.ID(), d.Message)
		writeSnippet(&b, fs, d.Primary)
		for _, n := range d.Notes {
			writeLine(&b, fs, n.Span, "note", d.Code.ID(), n.Msg)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeSnippet(b *strings.Builder, fs *source.FileSet, sp source.Span) {
	if fs == nil {
		return
	}
	f := fs.Get(sp.File)
	if f == nil {
		return
	}
	start, _ := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	if strings.TrimSpace(line) == "" {
		return
	}
	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	width := int(sp.Len())
	if rest := len(line) - col; width > rest {
		width = rest
	}
	if width < 1 {
		width = 1
	}
	// табы сохраняем, чтобы каретка совпала с колонкой
	pad := strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}
		return ' '
	}, line[:col])
	fmt.Fprintf(b, "    | %s\n    | %s%s\n", line, pad, strings.Repeat("^", width))
}

func writeLine(b *strings.Builder, fs *source.FileSet, sp source.Span, label, code, msg string) {
	path := "<unknown>"
	var start source.LineCol
	if fs != nil {
		if f := fs.Get(sp.File); f != nil {
			path = filepath.ToSlash(f.Path)
		}
		start, _ = fs.Resolve(sp)
	}
	fmt.Fprintf(b, "%s:%d:%d: %s %s %s\n", path, start.Line, start.Col, label, code, sanitizeMessage(msg))
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
