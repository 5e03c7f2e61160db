package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/hcp/internal/keybinds"
	"github.com/studiowebux/hcp/internal/telemetry"
	"github.com/studiowebux/hcp/internal/types"
)

// CreateTestDispatcher creates a dispatcher with default bindings and the
// startup state used by hcp
func CreateTestDispatcher(t *testing.T, engine Executor) (*Dispatcher, *recordingDisplay) {
	t.Helper()

	display := &recordingDisplay{}
	state := NewAppState(StateOptions{
		URL:     "https://httpbin.org/get",
		Method:  types.MethodGet,
		Headers: "Content-Type: application/json",
	})
	state.Resize(120, 40)

	d := NewDispatcher(DispatcherOptions{
		State:    state,
		Keys:     keybinds.NewDefaultRegistry(),
		Engine:   engine,
		Renderer: NewRenderer(nil, "monokai", false),
		Display:  display,
	})
	t.Cleanup(d.Close)
	return d, display
}

// AssertModelField is a generic helper for checking state field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// key builds a key press the way bubbletea reports it
func key(s string) tea.KeyMsg {
	switch s {
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds keys straight into the dispatcher, as one Step would.
// It returns true if any key asked to quit.
func press(d *Dispatcher, keys ...string) bool {
	quit := false
	for _, k := range keys {
		if d.handleInput(key(k)) {
			quit = true
		}
	}
	return quit
}

// typeText types text rune by rune
func typeText(d *Dispatcher, text string) {
	for _, r := range text {
		d.handleInput(key(string(r)))
	}
}

// focusPane tabs until p has focus
func focusPane(d *Dispatcher, p types.Pane) {
	for d.state.Focus != p {
		press(d, "tab")
	}
}

// awaitCompletion steps the dispatcher until a mission completes
func awaitCompletion(t *testing.T, d *Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for d.state.Loading {
		if !d.Step(ctx) {
			t.Fatal("timed out waiting for mission completion")
		}
	}
}

// recordingDisplay keeps the frames it is shown
type recordingDisplay struct {
	mu     sync.Mutex
	frames []string
}

func (r *recordingDisplay) Show(frame string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, frame)
}

func (r *recordingDisplay) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return ""
	}
	return r.frames[len(r.frames)-1]
}

// fakeExecutor returns canned results and counts calls
type fakeExecutor struct {
	mu     sync.Mutex
	calls  []types.RequestDraft
	tele   telemetry.MissionTelemetry
	body   string
	err    error
	before func()
}

func (f *fakeExecutor) Execute(_ context.Context, draft types.RequestDraft) (telemetry.MissionTelemetry, string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, draft)
	before := f.before
	f.mu.Unlock()

	if before != nil {
		before()
	}
	return f.tele, f.body, f.err
}

func (f *fakeExecutor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeExecutor) lastCall() types.RequestDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}
