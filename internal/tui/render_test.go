package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/hcp/internal/keybinds"
	"github.com/studiowebux/hcp/internal/telemetry"
	"github.com/studiowebux/hcp/internal/types"
)

func renderState(t *testing.T, s *AppState) string {
	t.Helper()
	return NewRenderer(nil, "monokai", false).Render(s)
}

func TestRender_ZeroSizeIsEmpty(t *testing.T) {
	s := newTestState()
	AssertModelField(t, "frame", renderState(t, s), "")
}

func TestRender_FitsTerminal(t *testing.T) {
	s := newTestState()
	s.Resize(100, 30)

	frame := renderState(t, s)
	lines := strings.Split(frame, "\n")
	AssertModelField(t, "height", len(lines), 30)
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 100 {
			t.Errorf("line %d is %d cells wide", i, w)
		}
	}
}

func TestRender_ShowsPanels(t *testing.T) {
	s := newTestState()
	s.Resize(120, 40)
	s.Method = types.MethodDelete

	frame := renderState(t, s)
	for _, want := range []string{"DELETE", "https://httpbin.org/get", "[1] BODY", "[2] HEADERS",
		" METHOD ", " ENDPOINT URL ", " RESPONSE ", " TELEMETRY ",
		"[TAB] Focus", "[1/2] Switch Tab", "[J/K] Scroll Resp", "[CTRL+S] Send", "[Q] Quit"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestRender_FooterFollowsRebinding(t *testing.T) {
	keys := keybinds.NewRegistry()
	keys.Register(keybinds.ContextGlobal, "tab", keybinds.ActionFocusNext)
	keys.Register(keybinds.ContextGlobal, "ctrl+s", keybinds.ActionSubmit)
	keys.Register(keybinds.ContextGlobal, "q", keybinds.ActionQuit)
	keys.Register(keybinds.ContextGlobal, "b", keybinds.ActionTabBody)
	keys.Register(keybinds.ContextGlobal, "h", keybinds.ActionTabHeaders)
	keys.RegisterMultiple(keybinds.ContextResponseViewer, []string{"n", "down"}, keybinds.ActionScrollDown)
	keys.Register(keybinds.ContextResponseViewer, "p", keybinds.ActionScrollUp)

	s := newTestState()
	s.Resize(120, 40)
	frame := NewRenderer(keys, "monokai", false).Render(s)

	for _, want := range []string{"[B/H] Switch Tab", "[N/P] Scroll Resp"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q", want)
		}
	}
	for _, stale := range []string{"[1/2]", "[J/K]"} {
		if strings.Contains(frame, stale) {
			t.Errorf("frame still shows default hint %q", stale)
		}
	}
}

func TestRender_NarrowBoxDropsTitle(t *testing.T) {
	got := titledBox(styleBox.Width(2), " RESPONSE ", "x")
	if strings.Contains(got, "RESPONSE") {
		t.Errorf("title should not fit a 4 cell box:\n%s", got)
	}
	if lines := strings.Split(got, "\n"); len(lines) != 3 {
		t.Errorf("box has %d lines, want 3", len(lines))
	}
}

func TestRender_LoadingHidesResponse(t *testing.T) {
	s := newTestState()
	s.Resize(120, 40)
	s.ResponseText = "stale"
	s.Loading = true

	frame := renderState(t, s)
	if !strings.Contains(frame, "TRANSMITTING...") {
		t.Error("loading frame should say TRANSMITTING...")
	}
	if strings.Contains(frame, "stale") {
		t.Error("response text should be hidden while loading")
	}
}

func TestRender_Telemetry(t *testing.T) {
	s := newTestState()
	s.Resize(120, 40)
	s.Telemetry = &telemetry.MissionTelemetry{
		ConnectToFirstByte: 50 * time.Millisecond,
		Transfer:           50 * time.Millisecond,
		Total:              100 * time.Millisecond,
		SizeBytes:          2048,
		Status:             200,
	}

	frame := renderState(t, s)
	for _, want := range []string{" 200 ", "2.0 kB", "50ms", "100ms", strings.Repeat("█", 10) + strings.Repeat("░", 10)} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestRender_ScrollOffsetsResponse(t *testing.T) {
	s := newTestState()
	s.Resize(120, 40)
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, "line-"+strings.Repeat("x", i%3)+"#"+string(rune('A'+i%26)))
	}
	s.ResponseText = strings.Join(lines, "\n")

	top := renderState(t, s)
	s.ResponseScroll = 50
	scrolled := renderState(t, s)

	if !strings.Contains(top, lines[0]) {
		t.Error("unscrolled frame should show the first line")
	}
	if strings.Contains(scrolled, "│"+lines[0]+" ") {
		t.Error("scrolled frame should not show the first line")
	}
	if top == scrolled {
		t.Error("scrolling should change the frame")
	}
}

func TestRender_HighlightedJSONKeepsText(t *testing.T) {
	s := newTestState()
	s.Resize(120, 40)
	s.ResponseText = "{\n  \"ok\": true\n}"

	r := NewRenderer(nil, "no-such-theme", true)
	frame := r.Render(s)
	if !strings.Contains(frame, "ok") {
		t.Error("highlighted frame lost the body text")
	}
	// Cached on the second render
	if again := r.Render(s); again != frame {
		t.Error("rendering the same state twice should be stable")
	}
}

func TestComputeLayout_SmallTerminal(t *testing.T) {
	l := computeLayout(10, 5)
	if l.editorWidth < 1 || l.editorHeight < 1 || l.responseInnerW < 1 || l.responseInnerH < 1 {
		t.Errorf("layout has empty regions: %+v", l)
	}
}
