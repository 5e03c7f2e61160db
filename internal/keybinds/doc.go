/*
Package keybinds maps key presses to hcp actions.

# Key Concepts

Contexts:
  - Global: consulted first, whatever pane has focus
  - url_bar, method_selector, input_area, response_viewer: one per pane

A key bound globally wins over the same key in a pane context. Some global
actions are conditional (quit on "q" is ignored while typing in the input
area); the TUI lets those keys fall through to the pane when the condition
fails. Binding a key to "noop" removes it entirely.

The input area has no default bindings. Keys it does not match are handed
to the active text editor.

# Configuration File Format

Overrides are read from ~/.hcp/keybinds.json:

	{
	  "version": "1.0",
	  "global": {
	    "ctrl+r": "submit",
	    "1": "noop",
	    "2": "noop"
	  },
	  "response_viewer": {
	    "c": "copy_to_clipboard"
	  }
	}

# Validation

The validator reports unknown actions and empty keys as errors, and
reports a rebound ctrl+c or a pane binding hidden by a global one as a
warning.

# Example Usage

	registry, err := keybinds.LoadOrDefault(path)
	if err != nil {
		return err
	}
	if res := keybinds.NewValidator().ValidateRegistry(registry); res.HasErrors() {
		return errors.New(res.String())
	}

	action, ok := registry.Match(keybinds.ContextForPane(pane), msg.String())

The Registry is built once at startup and is read-only afterwards.
*/
package keybinds
