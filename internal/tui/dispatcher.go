package tui

import (
	"context"
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/studiowebux/hcp/internal/keybinds"
	"github.com/studiowebux/hcp/internal/telemetry"
	"github.com/studiowebux/hcp/internal/types"
)

// Executor runs one mission
type Executor interface {
	Execute(ctx context.Context, draft types.RequestDraft) (telemetry.MissionTelemetry, string, error)
}

// Display receives rendered frames. Show must not block.
type Display interface {
	Show(frame string)
}

// Dispatcher owns the AppState and is the only goroutine that touches it.
// Each step renders once, then applies exactly one input event or one
// mission completion.
type Dispatcher struct {
	state    *AppState
	keys     *keybinds.Registry
	engine   Executor
	renderer *Renderer
	display  Display
	copy     func(string) error
	logger   *slog.Logger

	inputs      chan tea.Msg
	completions chan EngineEvent
	done        chan struct{}
	closeOnce   sync.Once
}

// DispatcherOptions wires a Dispatcher to its collaborators
type DispatcherOptions struct {
	State     *AppState
	Keys      *keybinds.Registry
	Engine    Executor
	Renderer  *Renderer
	Display   Display
	Clipboard func(string) error
	Logger    *slog.Logger
}

// NewDispatcher creates a dispatcher with empty queues
func NewDispatcher(opts DispatcherOptions) *Dispatcher {
	if opts.Keys == nil {
		opts.Keys = keybinds.NewDefaultRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &Dispatcher{
		state:       opts.State,
		keys:        opts.Keys,
		engine:      opts.Engine,
		renderer:    opts.Renderer,
		display:     opts.Display,
		copy:        opts.Clipboard,
		logger:      opts.Logger,
		inputs:      make(chan tea.Msg, QueueCapacity),
		completions: make(chan EngineEvent, QueueCapacity),
		done:        make(chan struct{}),
	}
}

// Inputs is the queue the InputReader feeds
func (d *Dispatcher) Inputs() chan<- tea.Msg {
	return d.inputs
}

// Done is closed once the dispatcher has stopped
func (d *Dispatcher) Done() <-chan struct{} {
	return d.done
}

// State exposes the state for inspection once the loop is not running
func (d *Dispatcher) State() *AppState {
	return d.state
}

// Run steps until quit or ctx is cancelled, then closes Done
func (d *Dispatcher) Run(ctx context.Context) error {
	defer d.Close()

	for d.Step(ctx) {
	}
	return nil
}

// Close marks the dispatcher as stopped. Late completions are dropped.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() { close(d.done) })
}

// Step renders the current state and applies one event.
// It returns false when the loop should stop.
func (d *Dispatcher) Step(ctx context.Context) bool {
	d.render()

	select {
	case ev := <-d.completions:
		d.logger.Debug("completion applied", "mission", ev.missionID())
		d.state.ApplyEvent(ev)
		return true
	case msg := <-d.inputs:
		return !d.handleInput(msg)
	case <-ctx.Done():
		return false
	}
}

func (d *Dispatcher) render() {
	if d.display == nil || d.renderer == nil {
		return
	}
	d.display.Show(d.renderer.Render(d.state))
}

// submit validates the draft and launches a mission for it
func (d *Dispatcher) submit() {
	draft, ok := d.state.PrepareSubmission()
	if !ok {
		d.logger.Info("submission rejected", "method", d.state.Method.String(), "reason", d.state.ResponseText)
		return
	}
	d.launch(draft)
}

// launch runs the draft on its own goroutine. Missions are never cancelled:
// when several are in flight the last one to complete wins.
func (d *Dispatcher) launch(draft types.RequestDraft) {
	id := uuid.NewString()
	logger := d.logger.With("mission", id)
	logger.Info("mission started", "method", draft.Method.String(), "url", draft.URL, "body_bytes", len(draft.Body))

	go func() {
		tele, body, err := d.engine.Execute(context.Background(), draft)

		var ev EngineEvent
		if err != nil {
			logger.Error("mission failed", "error", err)
			ev = MissionFailed{ID: id, Err: err}
		} else {
			logger.Info("mission completed",
				"status", tele.Status,
				"ttfb", tele.ConnectToFirstByte,
				"transfer", tele.Transfer,
				"total", tele.Total,
				"bytes", tele.SizeBytes,
			)
			ev = MissionCompleted{ID: id, Telemetry: tele, Body: body}
		}

		select {
		case d.completions <- ev:
		case <-d.done:
			logger.Debug("completion dropped after shutdown")
		}
	}()
}

// copyResponse puts the response text on the system clipboard
func (d *Dispatcher) copyResponse() {
	if d.copy == nil || d.state.ResponseText == "" {
		return
	}
	if err := d.copy(d.state.ResponseText); err != nil {
		d.logger.Warn("clipboard copy failed", "error", err)
		d.state.StatusLine = "Copy failed: " + err.Error()
		return
	}
	d.state.StatusLine = "Response copied to clipboard"
}
