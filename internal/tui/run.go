package tui

import (
	"context"
	"log/slog"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/studiowebux/hcp/internal/keybinds"
)

// Options configures a full interactive session
type Options struct {
	State     StateOptions
	Engine    Executor
	Keys      *keybinds.Registry
	Theme     string
	Highlight bool
	Logger    *slog.Logger

	// ProgramOptions are passed to bubbletea, mostly for tests
	ProgramOptions []tea.ProgramOption
}

// Run starts the screen, the input reader and the dispatcher, and blocks
// until the user quits or ctx is cancelled
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	screen := NewScreen(opts.ProgramOptions...)
	dispatcher := NewDispatcher(DispatcherOptions{
		State:     NewAppState(opts.State),
		Keys:      opts.Keys,
		Engine:    opts.Engine,
		Renderer:  NewRenderer(opts.Keys, opts.Theme, opts.Highlight),
		Display:   screen,
		Clipboard: clipboard.WriteAll,
		Logger:    logger,
	})
	reader := NewInputReader(screen, dispatcher.Inputs())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// The program can also end on its own (signal, terminal gone)
		defer cancel()
		return screen.Run()
	})
	g.Go(func() error {
		reader.Run(dispatcher.Done())
		return nil
	})
	g.Go(func() error {
		defer screen.Close()
		return dispatcher.Run(ctx)
	})

	logger.Info("session started")
	err := g.Wait()
	logger.Info("session ended", "error", err)
	return err
}
