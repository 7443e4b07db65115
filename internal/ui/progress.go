// Package ui renders batch conversion progress with Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sharpswift/internal/pipeline"
)

// stageInfo: label shown while a file is in the stage and the share of the
// file's work finished once the stage starts.
var stageInfo = map[pipeline.Stage]struct {
	label  string
	weight float64
}{
	pipeline.StageLoad:      {"loading", 0},
	pipeline.StageParse:     {"parsing", 0.2},
	pipeline.StageTranslate: {"translating", 0.5},
	pipeline.StageIndent:    {"indenting", 0.7},
	pipeline.StageWrite:     {"writing", 0.9},
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Faint(true)
	statusColor = map[pipeline.Status]lipgloss.Color{
		pipeline.StatusQueued:  "7",
		pipeline.StatusWorking: "6",
		pipeline.StatusDone:    "2",
		pipeline.StatusCached:  "4",
		pipeline.StatusError:   "1",
	}
)

const labelWidth = 12

type fileItem struct {
	path   string
	status pipeline.Status
	stage  pipeline.Stage
	err    error
}

func (it fileItem) label() string {
	if it.status == pipeline.StatusWorking {
		if info, ok := stageInfo[it.stage]; ok {
			return info.label
		}
	}
	return string(it.status)
}

func (it fileItem) fraction() float64 {
	switch {
	case it.status.Terminal():
		return 1
	case it.status == pipeline.StatusWorking:
		return stageInfo[it.stage].weight
	}
	return 0
}

type progressModel struct {
	title   string
	events  <-chan pipeline.Event
	spinner spinner.Model
	bar     progress.Model
	items   []fileItem
	byPath  map[string]*fileItem
	failed  int
	width   int
	done    bool
}

type eventMsg pipeline.Event

// doneMsg arrives once the event channel is closed.
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders per-file progress
// until events is closed.
func NewProgressModel(title string, files []string, events <-chan pipeline.Event) tea.Model {
	m := &progressModel{
		title:   title,
		events:  events,
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("6")))),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
		items:   make([]fileItem, len(files)),
		byPath:  make(map[string]*fileItem, len(files)),
		width:   80,
	}
	for i, path := range files {
		m.items[i] = fileItem{path: path, status: pipeline.StatusQueued}
		m.byPath[path] = &m.items[i]
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

// next waits for one pipeline event.
func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return doneMsg{}
	}
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(pipeline.Event(msg)), m.next())

	case doneMsg:
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}

	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) apply(ev pipeline.Event) tea.Cmd {
	it, ok := m.byPath[ev.File]
	if !ok || it.status.Terminal() {
		return nil
	}
	it.status, it.stage, it.err = ev.Status, ev.Stage, ev.Err
	if it.status == pipeline.StatusError {
		m.failed++
	}
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.items) == 0 {
		return 0
	}
	var sum float64
	for _, it := range m.items {
		sum += it.fraction()
	}
	return sum / float64(len(m.items))
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.header()))
	b.WriteString("\n\n")

	pathWidth := max(m.width-labelWidth-4, 20)
	indent := strings.Repeat(" ", labelWidth+3)
	for _, it := range m.items {
		style := lipgloss.NewStyle().Foreground(statusColor[it.status])
		fmt.Fprintf(&b, "  %s %s\n", style.Render(fmt.Sprintf("%*s", labelWidth, it.label())), truncate(it.path, pathWidth))
		if it.err != nil {
			first, _, _ := strings.Cut(it.err.Error(), "\n")
			b.WriteString(errStyle.Render(indent + truncate(first, pathWidth)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) header() string {
	h := fmt.Sprintf("%s (%d files)", m.title, len(m.items))
	if !m.done {
		return m.spinner.View() + " " + h
	}
	h = "done: " + h
	if m.failed > 0 {
		h += fmt.Sprintf(", %d failed", m.failed)
	}
	return h
}

// truncate cuts value to width display cells, marking the cut with "...".
func truncate(value string, width int) string {
	switch {
	case width <= 0 || runewidth.StringWidth(value) <= width:
		return value
	case width <= 3:
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
