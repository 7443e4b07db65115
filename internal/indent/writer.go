package indent

// writer accumulates output lines and emits the indent unit at line starts.
type writer struct {
	opt         Options
	buf         []byte
	indentLevel int
}

func newWriter(opt Options, sizeHint int) *writer {
	return &writer{
		opt: opt,
		buf: make([]byte, 0, sizeHint+sizeHint/8),
	}
}

func (w *writer) String() string {
	return string(w.buf)
}

func (w *writer) writeIndent() {
	if w.opt.UseTabs {
		for range w.indentLevel {
			w.buf = append(w.buf, '\t')
		}
		return
	}
	for range w.indentLevel * w.opt.IndentWidth {
		w.buf = append(w.buf, ' ')
	}
}

// indentedLine writes content prefixed with the current indent.
func (w *writer) indentedLine(content string) {
	w.writeIndent()
	w.buf = append(w.buf, content...)
}

// raw writes s unchanged.
func (w *writer) raw(s string) {
	w.buf = append(w.buf, s...)
}

func (w *writer) setLevel(level int) {
	w.indentLevel = max(level, 0)
}
