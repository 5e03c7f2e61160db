package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Screen hosts the bubbletea program. It owns the terminal (raw mode and
// alternate screen), decodes input for ReadEvent and paints frames handed
// to Show. It holds no application state.
type Screen struct {
	program *tea.Program

	events    chan tea.Msg
	frames    chan string
	closed    chan struct{}
	closeOnce sync.Once
}

// frameMsg delivers a rendered frame to the program
type frameMsg string

// NewScreen creates a screen on the alternate buffer
func NewScreen(opts ...tea.ProgramOption) *Screen {
	s := &Screen{
		events: make(chan tea.Msg),
		frames: make(chan string, 1),
		closed: make(chan struct{}),
	}
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	s.program = tea.NewProgram(screenModel{screen: s}, opts...)
	return s
}

// Run blocks until the program exits, then closes the screen
func (s *Screen) Run() error {
	defer s.closeChannels()
	_, err := s.program.Run()
	return err
}

// Close stops the program and unblocks ReadEvent
func (s *Screen) Close() {
	s.closeChannels()
	s.program.Quit()
}

func (s *Screen) closeChannels() {
	s.closeOnce.Do(func() { close(s.closed) })
}

// Show replaces the pending frame. Only the latest frame is kept.
func (s *Screen) Show(frame string) {
	for {
		select {
		case s.frames <- frame:
			return
		default:
		}
		select {
		case <-s.frames:
		default:
		}
	}
}

// ReadEvent blocks for the next key or resize event
func (s *Screen) ReadEvent() (tea.Msg, bool) {
	select {
	case msg := <-s.events:
		return msg, true
	case <-s.closed:
		return nil, false
	}
}

func (s *Screen) forward(msg tea.Msg) {
	select {
	case s.events <- msg:
	case <-s.closed:
	}
}

// waitForFrame is the command that feeds frames into the program
func (s *Screen) waitForFrame() tea.Msg {
	select {
	case frame := <-s.frames:
		return frameMsg(frame)
	case <-s.closed:
		return nil
	}
}

type screenModel struct {
	screen *Screen
	frame  string
}

func (m screenModel) Init() tea.Cmd {
	return m.screen.waitForFrame
}

func (m screenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = string(msg)
		return m, m.screen.waitForFrame
	case tea.KeyMsg, tea.WindowSizeMsg:
		m.screen.forward(msg)
	}
	return m, nil
}

func (m screenModel) View() string {
	return m.frame
}
