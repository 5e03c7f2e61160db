package tui

import (
	"fmt"
	"strings"

	"github.com/studiowebux/hcp/internal/executor"
	"github.com/studiowebux/hcp/internal/telemetry"
	"github.com/studiowebux/hcp/internal/types"
)

// StateOptions seeds the initial AppState
type StateOptions struct {
	URL     string
	Method  types.Method
	Headers string // editor text, one "Key: Value" per line
}

// AppState is everything the screen shows.
// It is owned by the dispatcher goroutine; nothing else reads or writes it.
type AppState struct {
	URL     string
	Method  types.Method
	Body    TextEditor
	Headers TextEditor

	Focus types.Pane
	Tab   types.InputTab

	Telemetry      *telemetry.MissionTelemetry
	ResponseText   string
	ResponseStatus int
	ResponseScroll int
	Loading        bool

	// StatusLine is a transient notice shown in the footer
	StatusLine string

	Width  int
	Height int
}

// NewAppState creates the startup state
func NewAppState(opts StateOptions) *AppState {
	return newAppStateWith(opts,
		NewTextEditor("JSON body", ""),
		NewTextEditor("Key: Value", opts.Headers),
	)
}

func newAppStateWith(opts StateOptions, body, headers TextEditor) *AppState {
	s := &AppState{
		URL:     opts.URL,
		Method:  opts.Method,
		Body:    body,
		Headers: headers,
		Focus:   types.PaneURLBar,
		Tab:     types.TabBody,
	}
	s.syncEditorFocus()
	return s
}

// ActiveEditor returns the editor of the selected tab
func (s *AppState) ActiveEditor() TextEditor {
	if s.Tab == types.TabHeaders {
		return s.Headers
	}
	return s.Body
}

// CycleFocus moves focus to the next pane
func (s *AppState) CycleFocus() {
	s.Focus = s.Focus.Next()
	s.syncEditorFocus()
}

// CycleFocusBack moves focus to the previous pane
func (s *AppState) CycleFocusBack() {
	s.Focus = s.Focus.Prev()
	s.syncEditorFocus()
}

// SelectTab switches the visible editor without changing the focused pane
func (s *AppState) SelectTab(tab types.InputTab) {
	s.Tab = tab
	s.syncEditorFocus()
}

// syncEditorFocus gives keyboard focus to the visible editor while the
// input area is focused, and blurs both editors otherwise
func (s *AppState) syncEditorFocus() {
	s.Body.Blur()
	s.Headers.Blur()
	if s.Focus == types.PaneInputArea {
		s.ActiveEditor().Focus()
	}
}

// ScrollResponse moves the response offset by delta, never below zero
func (s *AppState) ScrollResponse(delta int) {
	s.ResponseScroll = max(0, s.ResponseScroll+delta)
}

// ScrollTop resets the response offset
func (s *AppState) ScrollTop() {
	s.ResponseScroll = 0
}

// AppendURL appends typed text to the URL
func (s *AppState) AppendURL(text string) {
	s.URL += text
}

// BackspaceURL removes the last rune of the URL
func (s *AppState) BackspaceURL() {
	if s.URL == "" {
		return
	}
	r := []rune(s.URL)
	s.URL = string(r[:len(r)-1])
}

// CycleMethod advances GET -> POST -> PUT -> DELETE -> GET
func (s *AppState) CycleMethod() {
	s.Method = s.Method.Next()
}

// Draft snapshots the current request. GET and DELETE never carry a body,
// and a blank body is not sent.
func (s *AppState) Draft() types.RequestDraft {
	draft := types.RequestDraft{
		Method:     s.Method,
		URL:        s.URL,
		RawHeaders: editorText(s.Headers),
	}
	if body := editorText(s.Body); s.Method.HasBody() && strings.TrimSpace(body) != "" {
		draft.Body = body
	}
	return draft
}

// PrepareSubmission validates the draft. On success the state enters
// loading and the draft is returned for sending. On failure the reason is
// shown as the response and nothing is sent.
func (s *AppState) PrepareSubmission() (types.RequestDraft, bool) {
	draft := s.Draft()
	if draft.Body != "" {
		if err := executor.ValidateJSON(draft.Body); err != nil {
			s.ResponseText = fmt.Sprintf("JSON ERROR: %v", err)
			s.ResponseStatus = StatusValidationError
			return types.RequestDraft{}, false
		}
	}

	s.Loading = true
	s.ResponseText = ""
	s.StatusLine = ""
	return draft, true
}

// ApplyEvent records the outcome of a mission
func (s *AppState) ApplyEvent(ev EngineEvent) {
	s.Loading = false
	switch ev := ev.(type) {
	case MissionCompleted:
		tele := ev.Telemetry
		s.Telemetry = &tele
		s.ResponseStatus = tele.Status
		s.ResponseText = ev.Body
	case MissionFailed:
		s.ResponseText = fmt.Sprintf("CRITICAL FAILURE: %v", ev.Err)
		if hint := categorizeError(ev.Err); hint != "" {
			s.ResponseText += "\n\n" + hint
		}
		s.ResponseStatus = StatusMissionFailed
	}
}

// Resize records the terminal size and fits the editors to it
func (s *AppState) Resize(width, height int) {
	s.Width = width
	s.Height = height

	l := computeLayout(width, height)
	s.Body.SetSize(l.editorWidth, l.editorHeight)
	s.Headers.SetSize(l.editorWidth, l.editorHeight)
}
