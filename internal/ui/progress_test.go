package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharpswift/internal/pipeline"
)

func TestProgressModelAppliesEvents(t *testing.T) {
	events := make(chan pipeline.Event)
	m := NewProgressModel("converting", []string{"a.cs", "b.cs"}, events).(*progressModel)

	view := m.View()
	assert.Contains(t, view, "converting (2 files)")
	assert.Contains(t, view, "queued")

	m.Update(eventMsg{File: "a.cs", Stage: pipeline.StageParse, Status: pipeline.StatusWorking})
	assert.Contains(t, m.View(), "parsing")
	assert.InDelta(t, 0.1, m.percent(), 1e-9)

	m.Update(eventMsg{File: "a.cs", Stage: pipeline.StageWrite, Status: pipeline.StatusDone})
	m.Update(eventMsg{File: "b.cs", Stage: pipeline.StageTranslate, Status: pipeline.StatusError, Err: errors.New("boom")})
	// terminal states are final
	m.Update(eventMsg{File: "a.cs", Stage: pipeline.StageParse, Status: pipeline.StatusWorking})
	m.Update(eventMsg{File: "unknown.cs", Status: pipeline.StatusDone})

	assert.InDelta(t, 1.0, m.percent(), 1e-9)
	assert.Equal(t, 1, m.failed)
	assert.Contains(t, m.View(), "boom")

	_, cmd := m.Update(doneMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, strings.HasPrefix(stripStyles(m.View()), "done: converting (2 files), 1 failed"))
}

func TestEmptyModelRendersNothing(t *testing.T) {
	m := NewProgressModel("x", nil, nil)
	assert.Equal(t, "", m.View())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "whatever", truncate("whatever", 0))
}

// stripStyles drops ANSI sequences lipgloss may add.
func stripStyles(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == 0x1b:
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
