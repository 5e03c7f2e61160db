package keybinds

import (
	"testing"

	"github.com/studiowebux/hcp/internal/types"
)

func TestMatch_GlobalFirst(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		name    string
		context Context
		key     string
		want    Action
		wantOK  bool
	}{
		{"submit from url bar", ContextURLBar, "ctrl+s", ActionSubmit, true},
		{"submit from input area", ContextInputArea, "ctrl+s", ActionSubmit, true},
		{"force quit anywhere", ContextResponseViewer, "ctrl+c", ActionQuitForce, true},
		{"tab cycles focus", ContextMethodSelector, "tab", ActionFocusNext, true},
		{"scroll down", ContextResponseViewer, "j", ActionScrollDown, true},
		{"page up", ContextResponseViewer, "pgup", ActionPageUp, true},
		{"cycle with space", ContextMethodSelector, " ", ActionCycleMethod, true},
		{"backspace in url", ContextURLBar, "backspace", ActionTextBackspace, true},
		{"j unbound in url bar", ContextURLBar, "j", "", false},
		{"letters unbound in input", ContextInputArea, "x", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Match(tt.context, tt.key)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Match(%s, %q) = (%q, %v), want (%q, %v)", tt.context, tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLookup_NoOpIsUnbound(t *testing.T) {
	r := NewDefaultRegistry()
	r.Register(ContextGlobal, "1", ActionNoOp)

	if _, ok := r.Lookup(ContextGlobal, "1"); ok {
		t.Error("noop binding should be reported as unbound")
	}
	if _, ok := r.Match(ContextInputArea, "1"); ok {
		t.Error("Match should fall through a noop global key")
	}
}

func TestGetBindingString(t *testing.T) {
	r := NewDefaultRegistry()

	if got := r.GetBindingString(ContextMethodSelector, ActionCycleMethod); got != "space/enter" {
		t.Errorf("GetBindingString = %q, want %q", got, "space/enter")
	}
	// Falls back to global bindings
	if got := r.GetBindingString(ContextResponseViewer, ActionSubmit); got != "ctrl+s" {
		t.Errorf("GetBindingString = %q, want %q", got, "ctrl+s")
	}
	if got := r.GetBindingString(ContextURLBar, ActionGoToTop); got != "unbound" {
		t.Errorf("GetBindingString = %q, want unbound", got)
	}
}

func TestListBindings_Sorted(t *testing.T) {
	r := NewDefaultRegistry()
	list := r.ListBindings(ContextResponseViewer)
	if len(list) != 9 {
		t.Fatalf("expected 9 response viewer bindings, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Key > list[i].Key {
			t.Errorf("bindings not sorted: %q before %q", list[i-1].Key, list[i].Key)
		}
	}
}

func TestContextForPane(t *testing.T) {
	tests := []struct {
		pane types.Pane
		want Context
	}{
		{types.PaneURLBar, ContextURLBar},
		{types.PaneMethodSelector, ContextMethodSelector},
		{types.PaneInputArea, ContextInputArea},
		{types.PaneResponseViewer, ContextResponseViewer},
	}
	for _, tt := range tests {
		if got := ContextForPane(tt.pane); got != tt.want {
			t.Errorf("ContextForPane(%v) = %q, want %q", tt.pane, got, tt.want)
		}
	}
}

func TestGetActionInfo(t *testing.T) {
	if info := GetActionInfo(ActionSubmit); info.Description != "Send" {
		t.Errorf("Description = %q", info.Description)
	}
	if info := GetActionInfo(Action("nope")); info.Category != "Unknown" {
		t.Errorf("Category = %q, want Unknown", info.Category)
	}
}
