package tui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/hcp/internal/keybinds"
	"github.com/studiowebux/hcp/internal/types"
)

// handleInput applies one terminal event. It returns true when hcp should exit.
func (d *Dispatcher) handleInput(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return d.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		d.state.Resize(msg.Width, msg.Height)
	}
	// Mouse and anything else is ignored
	return false
}

// handleKeyPress routes a key: global bindings first, then the focused pane's
// bindings, then the pane's own text handling
func (d *Dispatcher) handleKeyPress(msg tea.KeyMsg) bool {
	key := msg.String()

	if action, ok := d.keys.Lookup(keybinds.ContextGlobal, key); ok {
		if handled, quit := d.applyAction(action); handled {
			return quit
		}
	}

	if action, ok := d.keys.Lookup(keybinds.ContextForPane(d.state.Focus), key); ok {
		if handled, quit := d.applyAction(action); handled {
			return quit
		}
	}

	switch d.state.Focus {
	case types.PaneInputArea:
		d.state.ActiveEditor().Input(msg)
	case types.PaneURLBar:
		if text, ok := printable(msg); ok {
			d.state.AppendURL(text)
		}
	}
	return false
}

// applyAction performs a bound action. Conditional actions report
// handled=false when their condition fails so the key falls through.
func (d *Dispatcher) applyAction(action keybinds.Action) (handled, quit bool) {
	s := d.state

	switch action {
	case keybinds.ActionQuitForce:
		return true, true
	case keybinds.ActionQuit:
		if s.Loading || s.Focus == types.PaneInputArea {
			return false, false
		}
		return true, true
	case keybinds.ActionEscape:
		if s.Loading {
			return false, false
		}
		return true, true

	case keybinds.ActionSubmit:
		d.submit()
	case keybinds.ActionFocusNext:
		s.CycleFocus()
	case keybinds.ActionFocusPrev:
		s.CycleFocusBack()
	case keybinds.ActionTabBody:
		s.SelectTab(types.TabBody)
	case keybinds.ActionTabHeaders:
		s.SelectTab(types.TabHeaders)

	case keybinds.ActionScrollUp:
		s.ScrollResponse(-ScrollStep)
	case keybinds.ActionScrollDown:
		s.ScrollResponse(ScrollStep)
	case keybinds.ActionPageUp:
		s.ScrollResponse(-PageStep)
	case keybinds.ActionPageDown:
		s.ScrollResponse(PageStep)
	case keybinds.ActionGoToTop:
		s.ScrollTop()
	case keybinds.ActionCopyToClipboard:
		d.copyResponse()

	case keybinds.ActionTextBackspace:
		s.BackspaceURL()
	case keybinds.ActionCycleMethod:
		s.CycleMethod()

	default:
		return false, false
	}
	return true, false
}

// printable returns the text a key press types, if any
func printable(msg tea.KeyMsg) (string, bool) {
	if msg.Alt || (msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace) {
		return "", false
	}
	runes := make([]rune, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		if unicode.IsPrint(r) {
			runes = append(runes, r)
		}
	}
	if len(runes) == 0 {
		return "", false
	}
	return string(runes), true
}
