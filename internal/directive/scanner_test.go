package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sharpswift/internal/syntax"
)

func line(text string) syntax.Trivia {
	return syntax.Trivia{Kind: syntax.TriviaLineComment, Text: text}
}

func block(text string) syntax.Trivia {
	return syntax.Trivia{Kind: syntax.TriviaBlockComment, Text: text}
}

func TestIncludes(t *testing.T) {
	tests := []struct {
		name   string
		trivia []syntax.Trivia
		want   string
	}{
		{"line comment", []syntax.Trivia{line("//include Extra;")}, "include Extra;\n"},
		{"spaced line comment", []syntax.Trivia{line("//   include Extra;  ")}, "include Extra;\n"},
		{"doc comment", []syntax.Trivia{{Kind: syntax.TriviaDocComment, Text: "/// include Docs;"}}, "include Docs;\n"},
		{"block comment", []syntax.Trivia{block("/* include UIKit; */")}, "include UIKit;\n"},
		{"ordinary comment", []syntax.Trivia{line("// just a note")}, ""},
		{"case sensitive", []syntax.Trivia{line("// Include Foo;")}, ""},
		{"order kept", []syntax.Trivia{line("//include B;"), line("// note"), line("//include A;")}, "include B;\ninclude A;\n"},
		{"nothing", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Includes(tt.trivia))
		})
	}
}

func TestIncludesIsPure(t *testing.T) {
	trivia := []syntax.Trivia{line("//include A;"), line("//include A;")}
	first := Includes(trivia)
	assert.Equal(t, first, Includes(trivia))
	assert.Equal(t, "include A;\ninclude A;\n", first)
	assert.Equal(t, "//include A;", trivia[0].Text)
}

func TestIsUniversal(t *testing.T) {
	assert.True(t, IsUniversal([]syntax.Trivia{line("//universal")}))
	assert.True(t, IsUniversal([]syntax.Trivia{block("/* Universal */")}))
	assert.True(t, IsUniversal([]syntax.Trivia{line("// note"), line("// UNIVERSAL using")}))
	assert.False(t, IsUniversal([]syntax.Trivia{line("// not universal")}))
	assert.False(t, IsUniversal(nil))
}
