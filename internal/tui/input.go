package tui

import tea "github.com/charmbracelet/bubbletea"

// EventSource is a blocking source of terminal events.
// ReadEvent returns false once the source is closed.
type EventSource interface {
	ReadEvent() (tea.Msg, bool)
}

// InputReader moves terminal events into the dispatcher's input queue
// unmodified. It never filters.
type InputReader struct {
	source EventSource
	out    chan<- tea.Msg
}

// NewInputReader creates a reader feeding out
func NewInputReader(source EventSource, out chan<- tea.Msg) *InputReader {
	return &InputReader{source: source, out: out}
}

// Run forwards events until the source closes or done is closed
func (r *InputReader) Run(done <-chan struct{}) {
	for {
		msg, ok := r.source.ReadEvent()
		if !ok {
			return
		}
		select {
		case r.out <- msg:
		case <-done:
			return
		}
	}
}
