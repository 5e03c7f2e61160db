package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerURLBarBindings(r)
	registerMethodSelectorBindings(r)
	registerResponseViewerBindings(r)

	return r
}

// registerGlobalBindings sets up bindings consulted before any pane.
// The input area has no bindings of its own: unmatched keys go to the editor.
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextGlobal, "ctrl+s", ActionSubmit)
	r.Register(ContextGlobal, "tab", ActionFocusNext)
	r.Register(ContextGlobal, "shift+tab", ActionFocusPrev)
	r.Register(ContextGlobal, "1", ActionTabBody)
	r.Register(ContextGlobal, "2", ActionTabHeaders)
	r.Register(ContextGlobal, "q", ActionQuit)
	r.Register(ContextGlobal, "esc", ActionEscape)
}

func registerURLBarBindings(r *Registry) {
	r.Register(ContextURLBar, "backspace", ActionTextBackspace)
}

func registerMethodSelectorBindings(r *Registry) {
	r.RegisterMultiple(ContextMethodSelector, []string{"enter", " "}, ActionCycleMethod)
}

func registerResponseViewerBindings(r *Registry) {
	r.RegisterMultiple(ContextResponseViewer, []string{"up", "k"}, ActionScrollUp)
	r.RegisterMultiple(ContextResponseViewer, []string{"down", "j"}, ActionScrollDown)
	r.Register(ContextResponseViewer, "pgup", ActionPageUp)
	r.Register(ContextResponseViewer, "pgdown", ActionPageDown)
	r.RegisterMultiple(ContextResponseViewer, []string{"home", "g"}, ActionGoToTop)
	r.Register(ContextResponseViewer, "y", ActionCopyToClipboard)
}
