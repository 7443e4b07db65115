package indent

import (
	"fmt"
	"strings"
)

type LiteralKind uint8

const (
	LiteralString LiteralKind = iota
	LiteralBlockComment
	LiteralMultiLineString
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralBlockComment:
		return "block comment"
	case LiteralMultiLineString:
		return "multi-line string"
	default:
		return "string literal"
	}
}

// Malformed describes the literal that stopped depth tracking.
type Malformed struct {
	Line    int // 1-based line where the literal starts
	Literal LiteralKind
}

func (m *Malformed) String() string {
	return fmt.Sprintf("unterminated %s starting on line %d", m.Literal, m.Line)
}

// Normalize re-indents text. See Apply.
func Normalize(text string, opt Options) string {
	out, _ := Apply(text, opt)
	return out
}

// Apply re-indents text and reports the first malformed literal, if any.
// Line terminators, including \r\n, are kept as they are.
func Apply(text string, opt Options) (string, *Malformed) {
	opt = opt.withDefaults()
	w := newWriter(opt, len(text))
	var s scanner

	lineNo := 0
	for pos := 0; pos < len(text); {
		line, term, next := splitLine(text, pos)
		lineNo++

		if s.atLiteral() {
			w.raw(line)
			w.raw(term)
		} else {
			content := strings.TrimLeft(line, " \t")
			if content != "" {
				w.setLevel(s.depth() - leadingClosers(content, s.depth()))
				w.indentedLine(content)
			}
			w.raw(term)
		}

		if m := s.scanLine(line, lineNo); m != nil {
			w.raw(text[next:])
			return w.String(), m
		}
		pos = next
	}
	return w.String(), s.unterminated()
}

// splitLine returns the line starting at pos, its terminator and the offset
// of the next line.
func splitLine(text string, pos int) (line, term string, next int) {
	end := strings.IndexByte(text[pos:], '\n')
	if end < 0 {
		line, next = text[pos:], len(text)
	} else {
		line, term, next = text[pos:pos+end], "\n", pos+end+1
	}
	if strings.HasSuffix(line, "\r") {
		line = line[:len(line)-1]
		term = "\r" + term
	}
	return line, term, next
}

// leadingClosers counts closing delimiters at the start of content, capped
// at depth.
func leadingClosers(content string, depth int) int {
	n := 0
	for n < len(content) && n < depth {
		switch content[n] {
		case '}', ']', ')':
			n++
			continue
		}
		break
	}
	return n
}
