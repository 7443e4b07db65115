package directive

import "strings"

// Set is an ordered collection of directive lines. The first occurrence of a
// line wins; later exact duplicates are dropped. Not safe for concurrent use.
type Set struct {
	lines []string
	seen  map[string]struct{}
}

func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Add appends one directive line. Trailing whitespace is ignored and blank
// lines are skipped. Reports whether the line was new.
func (s *Set) Add(line string) bool {
	line = strings.TrimRight(line, " \t\r\n")
	if strings.TrimSpace(line) == "" {
		return false
	}
	if _, ok := s.seen[line]; ok {
		return false
	}
	s.seen[line] = struct{}{}
	s.lines = append(s.lines, line)
	return true
}

// AddText adds every line of text, as produced by Includes.
func (s *Set) AddText(text string) {
	for _, line := range strings.Split(text, "\n") {
		s.Add(line)
	}
}

// Lines returns a copy of the directives in insertion order.
func (s *Set) Lines() []string {
	return append([]string(nil), s.lines...)
}

// String renders the set with every line newline-terminated.
func (s *Set) String() string {
	var sb strings.Builder
	for _, l := range s.lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}
