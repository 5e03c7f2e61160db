package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/hcp/internal/keybinds"
	"github.com/studiowebux/hcp/internal/telemetry"
	"github.com/studiowebux/hcp/internal/types"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen   = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed     = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow  = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorBlue    = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#5f87ff"} // Dark blue / Blue
	colorGray    = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan    = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
	colorMagenta = lipgloss.AdaptiveColor{Light: "#8b008b", Dark: "#ff00ff"} // Dark magenta / Magenta
	colorBlack   = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#000000"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleFooter = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray)
)

var methodColors = map[types.Method]lipgloss.AdaptiveColor{
	types.MethodGet:    colorGreen,
	types.MethodPost:   colorYellow,
	types.MethodPut:    colorBlue,
	types.MethodDelete: colorRed,
}

// layout holds the outer sizes of every region for one terminal size
type layout struct {
	width, height int

	middleHeight   int
	inputWidth     int
	responseWidth  int
	editorWidth    int // inner size of the editor box
	editorHeight   int
	responseInnerW int
	responseInnerH int
}

func computeLayout(width, height int) layout {
	l := layout{width: width, height: height}

	l.middleHeight = max(MinMiddleHeight, height-TopBarHeight-TelemetryHeight-FooterHeight)
	l.inputWidth = width * InputWidthPercent / 100
	l.responseWidth = width - l.inputWidth

	l.editorWidth = max(1, l.inputWidth-BorderSize)
	l.editorHeight = max(1, l.middleHeight-TabsHeight-BorderSize)
	l.responseInnerW = max(1, l.responseWidth-BorderSize)
	l.responseInnerH = max(1, l.middleHeight-BorderSize)

	return l
}

// Renderer turns an AppState into a frame. It never mutates the state.
type Renderer struct {
	keys      *keybinds.Registry
	style     *chroma.Style
	highlight bool

	viewport viewport.Model

	// last highlighted response, keyed by its plain text and width
	cacheKey string
	cacheOut string
}

// NewRenderer creates a renderer. theme names a chroma style; highlight
// false disables JSON colouring.
func NewRenderer(keys *keybinds.Registry, theme string, highlight bool) *Renderer {
	if keys == nil {
		keys = keybinds.NewDefaultRegistry()
	}
	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}
	return &Renderer{
		keys:      keys,
		style:     style,
		highlight: highlight,
		viewport:  viewport.New(0, 0),
	}
}

// Render draws the whole screen
func (r *Renderer) Render(s *AppState) string {
	if s.Width == 0 || s.Height == 0 {
		return ""
	}
	l := computeLayout(s.Width, s.Height)

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		r.renderMethod(s),
		r.renderURL(s, l),
	)
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		r.renderInput(s, l),
		r.renderResponse(s, l),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		middle,
		r.renderTelemetry(s, l),
		r.renderFooter(s, l),
	)
}

func (r *Renderer) renderMethod(s *AppState) string {
	color := methodColors[s.Method]
	label := lipgloss.NewStyle().Foreground(color)
	box := styleBox
	if s.Focus == types.PaneMethodSelector {
		label = lipgloss.NewStyle().Bold(true).Foreground(colorBlack).Background(color)
		box = box.BorderForeground(colorCyan)
	}

	inner := MethodBoxWidth - BorderSize
	return titledBox(box.Width(inner).Align(lipgloss.Center), " METHOD ", label.Render(s.Method.String()))
}

func (r *Renderer) renderURL(s *AppState, l layout) string {
	box := styleBox
	text := s.URL
	if s.Focus == types.PaneURLBar {
		box = box.BorderForeground(colorYellow)
		text += "▏"
	}

	inner := max(1, l.width-MethodBoxWidth-BorderSize)
	// Keep the end of long URLs visible, that is where typing happens
	if runes := []rune(text); len(runes) > inner {
		text = string(runes[len(runes)-inner:])
	}
	return titledBox(box.Width(inner).MaxHeight(TopBarHeight-1), " ENDPOINT URL ", text)
}

func (r *Renderer) renderInput(s *AppState, l layout) string {
	tabs := []struct {
		tab   types.InputTab
		label string
	}{
		{types.TabBody, " [1] BODY "},
		{types.TabHeaders, " [2] HEADERS "},
	}
	var labels []string
	for _, t := range tabs {
		if t.tab == s.Tab {
			labels = append(labels, styleTitle.Render(t.label))
		} else {
			labels = append(labels, styleSubtle.Render(t.label))
		}
	}
	tabLine := lipgloss.NewStyle().MaxWidth(l.inputWidth).Render(strings.Join(labels, "│"))
	underline := styleSubtle.Render(strings.Repeat("─", l.inputWidth))

	box := styleBox
	if s.Focus == types.PaneInputArea {
		box = box.BorderForeground(colorGreen)
	}
	editor := box.
		Width(l.editorWidth).
		Height(l.editorHeight).
		MaxHeight(l.editorHeight + BorderSize).
		Render(s.ActiveEditor().View())

	return lipgloss.JoinVertical(lipgloss.Left, tabLine, underline, editor)
}

func (r *Renderer) renderResponse(s *AppState, l layout) string {
	border := colorGray
	switch {
	case s.Focus == types.PaneResponseViewer:
		border = colorCyan
	case s.ResponseStatus >= 200 && s.ResponseStatus < 300:
		border = colorGreen
	case s.ResponseStatus > 0:
		border = colorRed
	}

	content := "TRANSMITTING..."
	if !s.Loading {
		content = r.responseContent(s.ResponseText, l.responseInnerW)
	}

	r.viewport.Width = l.responseInnerW
	r.viewport.Height = l.responseInnerH
	r.viewport.SetContent(content)
	r.viewport.SetYOffset(s.ResponseScroll)

	box := styleBox.
		BorderForeground(border).
		Width(l.responseInnerW).
		Height(l.responseInnerH)
	return titledBox(box, " RESPONSE ", r.viewport.View())
}

// responseContent wraps the response to width and highlights JSON
func (r *Renderer) responseContent(text string, width int) string {
	if text == "" {
		return ""
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	if !r.highlight || !json.Valid([]byte(text)) {
		return wrapped
	}

	key := fmt.Sprintf("%d:%s", width, text)
	if key == r.cacheKey {
		return r.cacheOut
	}

	out, err := r.highlightJSON(wrapped)
	if err != nil {
		return wrapped
	}
	r.cacheKey, r.cacheOut = key, out
	return out
}

func (r *Renderer) highlightJSON(text string) (string, error) {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := formatters.TTY256.Format(&b, r.style, iterator); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *Renderer) renderTelemetry(s *AppState, l layout) string {
	box := styleBox.
		Width(max(1, l.width-BorderSize)).
		Height(TelemetryHeight - BorderSize)

	if s.Telemetry == nil {
		return titledBox(box, " TELEMETRY ", "")
	}
	t := s.Telemetry

	statusColor := colorRed
	if t.IsSuccess() {
		statusColor = colorGreen
	}
	status := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorBlack).
		Background(statusColor).
		Render(fmt.Sprintf(" %d ", t.Status))

	lines := []string{
		fmt.Sprintf("STATUS: %s  SIZE: %s", status, telemetry.FormatSize(t.SizeBytes)),
		fmt.Sprintf("%-15s %8s ", "LATENCY:", telemetry.FormatDuration(t.ConnectToFirstByte)) +
			lipgloss.NewStyle().Foreground(colorCyan).Render(t.ConnectBar()),
		fmt.Sprintf("%-15s %8s ", "TRANSFER:", telemetry.FormatDuration(t.Transfer)) +
			lipgloss.NewStyle().Foreground(colorMagenta).Render(t.TransferBar()),
		lipgloss.NewStyle().Bold(true).Render(
			fmt.Sprintf("%-15s %8s", "TOTAL:", telemetry.FormatDuration(t.Total))),
	}
	return titledBox(box, " TELEMETRY ", strings.Join(lines, "\n"))
}

// titledBox renders content in box with title set into the top border.
// The title is dropped when the box is too narrow to hold it.
func titledBox(box lipgloss.Style, title, content string) string {
	body := box.BorderTop(false).Render(content)
	width := lipgloss.Width(body)

	if lipgloss.Width(title) > width-3 {
		title = ""
	}
	fill := max(0, width-3-lipgloss.Width(title))

	border := box.GetBorderStyle()
	line := lipgloss.NewStyle().Foreground(box.GetBorderTopForeground())
	top := line.Render(border.TopLeft+border.Top) +
		line.Bold(true).Render(title) +
		line.Render(strings.Repeat(border.Top, fill)+border.TopRight)

	return top + "\n" + body
}

func (r *Renderer) renderFooter(s *AppState, l layout) string {
	hint := func(action keybinds.Action) string {
		keys := r.keys.GetBindingString(keybinds.ContextGlobal, action)
		return fmt.Sprintf("[%s] %s", strings.ToUpper(keys), keybinds.GetActionInfo(action).Description)
	}
	parts := []string{
		hint(keybinds.ActionFocusNext),
		r.pairHint(keybinds.ContextGlobal, keybinds.ActionTabBody, keybinds.ActionTabHeaders, "Switch Tab"),
		r.pairHint(keybinds.ContextResponseViewer, keybinds.ActionScrollDown, keybinds.ActionScrollUp, "Scroll Resp"),
		hint(keybinds.ActionSubmit),
		hint(keybinds.ActionQuit),
	}
	text := " " + strings.Join(parts, " | ") + " "
	if s.StatusLine != "" {
		text += "│ " + s.StatusLine + " "
	}
	return styleFooter.Width(l.width).MaxWidth(l.width).MaxHeight(FooterHeight).Render(text)
}

// pairHint shows the shortest key of each action, e.g. "[J/K] Scroll Resp".
// Unbound actions are left out of the key list.
func (r *Renderer) pairHint(context keybinds.Context, first, second keybinds.Action, label string) string {
	var keys []string
	for _, action := range []keybinds.Action{first, second} {
		if key := shortestKey(r.keys.GetBinding(context, action)); key != "" {
			keys = append(keys, strings.ToUpper(key))
		}
	}
	if len(keys) == 0 {
		return "[UNBOUND] " + label
	}
	return fmt.Sprintf("[%s] %s", strings.Join(keys, "/"), label)
}

// shortestKey picks the most compact of sorted keys, the first one on a tie
func shortestKey(keys []string) string {
	best := ""
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		if best == "" || len(k) < len(best) {
			best = k
		}
	}
	return best
}
