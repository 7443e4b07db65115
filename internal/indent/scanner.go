package indent

type mode uint8

const (
	modeBlockComment mode = iota + 1
	modeString
	modeMultiString
	modeInterp
)

// frame is one open literal. n is the nesting of block comments or the
// parenthesis count inside an interpolation.
type frame struct {
	mode mode
	n    int
	line int
}

// scanner tracks bracket depth and literal state across lines.
type scanner struct {
	frames []frame
	delims []byte
}

func (s *scanner) depth() int {
	return len(s.delims)
}

func (s *scanner) top() *frame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

func (s *scanner) push(m mode, line int) {
	s.frames = append(s.frames, frame{mode: m, n: 1, line: line})
}

func (s *scanner) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

// atLiteral reports whether the next line starts inside a block comment or
// a multi-line string.
func (s *scanner) atLiteral() bool {
	return len(s.frames) > 0
}

// scanLine consumes one line without its terminator. It returns a non-nil
// Malformed when a single-line string is still open at the end of the line.
func (s *scanner) scanLine(line string, lineNo int) *Malformed {
	for i := 0; i < len(line); {
		f := s.top()
		switch {
		case f == nil || f.mode == modeInterp:
			adv, stop := s.code(line, i, lineNo, f)
			if stop {
				i = len(line)
				continue
			}
			i += adv
		case f.mode == modeBlockComment:
			i += s.blockComment(line, i, f)
		case f.mode == modeString:
			i += s.str(line, i, lineNo)
		case f.mode == modeMultiString:
			i += s.multiStr(line, i, lineNo)
		}
	}
	for _, f := range s.frames {
		if f.mode == modeString {
			return &Malformed{Line: f.line, Literal: LiteralString}
		}
	}
	return nil
}

// code handles one token in code or interpolation position. stop means
// the rest of the line is a line comment.
func (s *scanner) code(line string, i, lineNo int, interp *frame) (adv int, stop bool) {
	c := line[i]
	next := byte(0)
	if i+1 < len(line) {
		next = line[i+1]
	}
	switch {
	case c == '/' && next == '/':
		return 0, true
	case c == '/' && next == '*':
		s.push(modeBlockComment, lineNo)
		return 2, false
	case c == '"' && hasPrefixAt(line, i, `"""`):
		s.push(modeMultiString, lineNo)
		return 3, false
	case c == '"':
		s.push(modeString, lineNo)
		return 1, false
	}

	if interp != nil {
		switch c {
		case '(':
			interp.n++
		case ')':
			interp.n--
			if interp.n == 0 {
				s.pop()
			}
		}
		return 1, false
	}

	switch c {
	case '{', '[', '(':
		s.delims = append(s.delims, c)
	case '}', ']', ')':
		if len(s.delims) > 0 {
			s.delims = s.delims[:len(s.delims)-1]
		}
	}
	return 1, false
}

func (s *scanner) blockComment(line string, i int, f *frame) int {
	switch {
	case hasPrefixAt(line, i, "/*"):
		f.n++
		return 2
	case hasPrefixAt(line, i, "*/"):
		f.n--
		if f.n == 0 {
			s.pop()
		}
		return 2
	}
	return 1
}

func (s *scanner) str(line string, i, lineNo int) int {
	switch line[i] {
	case '\\':
		if i+1 < len(line) && line[i+1] == '(' {
			s.push(modeInterp, lineNo)
		}
		return 2
	case '"':
		s.pop()
	}
	return 1
}

func (s *scanner) multiStr(line string, i, lineNo int) int {
	switch {
	case line[i] == '\\':
		if i+1 < len(line) && line[i+1] == '(' {
			s.push(modeInterp, lineNo)
		}
		return 2
	case hasPrefixAt(line, i, `"""`):
		s.pop()
		return 3
	}
	return 1
}

// unterminated reports a literal still open at the end of the text.
func (s *scanner) unterminated() *Malformed {
	if len(s.frames) == 0 {
		return nil
	}
	f := s.frames[0]
	kind := LiteralBlockComment
	switch f.mode {
	case modeString:
		kind = LiteralString
	case modeMultiString:
		kind = LiteralMultiLineString
	}
	return &Malformed{Line: f.line, Literal: kind}
}

func hasPrefixAt(s string, i int, prefix string) bool {
	return len(s)-i >= len(prefix) && s[i:i+len(prefix)] == prefix
}
