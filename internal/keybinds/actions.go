package keybinds

import "github.com/studiowebux/hcp/internal/types"

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active. Global bindings are
	// consulted before the focused pane's bindings.
	ContextGlobal         Context = "global"
	ContextURLBar         Context = "url_bar"
	ContextMethodSelector Context = "method_selector"
	ContextInputArea      Context = "input_area"
	ContextResponseViewer Context = "response_viewer"
)

const (
	// Global actions
	ActionQuit       Action = "quit"        // Quit unless loading or typing in the input area
	ActionEscape     Action = "escape"      // Quit unless loading
	ActionQuitForce  Action = "quit_force"  // Quit unconditionally (ctrl+c)
	ActionSubmit     Action = "submit"      // Fire the current draft
	ActionFocusNext  Action = "focus_next"  // Move focus to the next pane
	ActionFocusPrev  Action = "focus_prev"  // Move focus to the previous pane
	ActionTabBody    Action = "tab_body"    // Show the body editor
	ActionTabHeaders Action = "tab_headers" // Show the headers editor

	// Response viewer actions
	ActionScrollUp        Action = "scroll_up"         // Scroll response up one line
	ActionScrollDown      Action = "scroll_down"       // Scroll response down one line
	ActionPageUp          Action = "page_up"           // Scroll response up one page
	ActionPageDown        Action = "page_down"         // Scroll response down one page
	ActionGoToTop         Action = "go_to_top"         // Scroll response to the first line
	ActionCopyToClipboard Action = "copy_to_clipboard" // Copy response to clipboard

	// URL bar actions
	ActionTextBackspace Action = "text_backspace" // Delete the last URL character

	// Method selector actions
	ActionCycleMethod Action = "cycle_method" // Advance GET -> POST -> PUT -> DELETE

	// Other actions
	ActionNoOp Action = "noop" // Unbinds a key; it falls through as if never bound
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:            {ActionQuit, "Quit", "Global"},
	ActionEscape:          {ActionEscape, "Quit (escape)", "Global"},
	ActionQuitForce:       {ActionQuitForce, "Force quit", "Global"},
	ActionSubmit:          {ActionSubmit, "Send", "Global"},
	ActionFocusNext:       {ActionFocusNext, "Focus", "Global"},
	ActionFocusPrev:       {ActionFocusPrev, "Focus back", "Global"},
	ActionTabBody:         {ActionTabBody, "Body tab", "Global"},
	ActionTabHeaders:      {ActionTabHeaders, "Headers tab", "Global"},
	ActionScrollUp:        {ActionScrollUp, "Scroll up", "Response"},
	ActionScrollDown:      {ActionScrollDown, "Scroll down", "Response"},
	ActionPageUp:          {ActionPageUp, "Page up", "Response"},
	ActionPageDown:        {ActionPageDown, "Page down", "Response"},
	ActionGoToTop:         {ActionGoToTop, "Top", "Response"},
	ActionCopyToClipboard: {ActionCopyToClipboard, "Copy", "Response"},
	ActionTextBackspace:   {ActionTextBackspace, "Delete char", "URL"},
	ActionCycleMethod:     {ActionCycleMethod, "Cycle method", "Method"},
	ActionNoOp:            {ActionNoOp, "Unbound", "Other"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether action is one hcp can dispatch
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}

// ContextForPane returns the binding context of a focused pane
func ContextForPane(p types.Pane) Context {
	return Context(p.String())
}

// PaneContexts lists the pane contexts in focus order
func PaneContexts() []Context {
	return []Context{ContextURLBar, ContextMethodSelector, ContextInputArea, ContextResponseViewer}
}
