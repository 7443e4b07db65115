package syntax

import "sharpswift/internal/source"

type TriviaKind uint8

const (
	TriviaLineComment TriviaKind = iota
	TriviaBlockComment
	TriviaDocComment
)

// Trivia is a comment attached to a node. Text is the exact source text,
// delimiters included.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsComment reports whether the trivia is any kind of comment.
func (t Trivia) IsComment() bool {
	switch t.Kind {
	case TriviaLineComment, TriviaBlockComment, TriviaDocComment:
		return true
	}
	return false
}
