package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetDeduplicatesInFirstSeenOrder(t *testing.T) {
	s := NewSet()
	assert.True(t, s.Add("include DNSwift;"))
	s.AddText("include Extra;\ninclude DNSwift;\n\n")
	assert.False(t, s.Add("include Extra;\n"))
	assert.True(t, s.Add("include Foundation;"))

	assert.Equal(t, []string{"include DNSwift;", "include Extra;", "include Foundation;"}, s.Lines())
	assert.Equal(t, "include DNSwift;\ninclude Extra;\ninclude Foundation;\n", s.String())
}

func TestSetSkipsBlankLines(t *testing.T) {
	s := NewSet()
	assert.False(t, s.Add("   "))
	assert.False(t, s.Add(""))
	assert.Equal(t, "", s.String())
}

func TestSetLinesIsCopy(t *testing.T) {
	s := NewSet()
	s.Add("include A;")
	lines := s.Lines()
	lines[0] = "mutated"
	assert.Equal(t, "include A;\n", s.String())
}
