// Package directive extracts target-language include directives from comment
// trivia and keeps them in an ordered, de-duplicated set.
//
// A directive is written in a C# comment:
//
//	//include Foundation;
//	/* include UIKit; */
//
// and is copied to the Swift output unchanged. Matching is case-sensitive.
package directive

import (
	"strings"

	"sharpswift/internal/syntax"
)

const (
	keywordInclude   = "include"
	keywordUniversal = "universal"
)

// Includes returns every include directive found in trivia, each followed by
// a newline, in order. It has no side effects and reads nothing but trivia.
func Includes(trivia []syntax.Trivia) string {
	var sb strings.Builder
	for _, t := range trivia {
		if !t.IsComment() {
			continue
		}
		body := commentBody(t.Text)
		if strings.HasPrefix(body, keywordInclude) {
			sb.WriteString(body)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// IsUniversal reports whether any comment in trivia starts with the word
// "universal", ignoring case. A using marked this way is emitted as an
// include of its own name.
func IsUniversal(trivia []syntax.Trivia) bool {
	for _, t := range trivia {
		if !t.IsComment() {
			continue
		}
		if strings.HasPrefix(strings.ToLower(commentBody(t.Text)), keywordUniversal) {
			return true
		}
	}
	return false
}

// commentBody strips comment delimiters and surrounding whitespace.
func commentBody(text string) string {
	s := strings.TrimLeft(text, "/*")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "*/")
	return strings.TrimSpace(s)
}
