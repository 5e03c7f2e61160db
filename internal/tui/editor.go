package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// TextEditor is the multi-line editor used for the body and headers tabs
type TextEditor interface {
	Input(msg tea.KeyMsg)
	Lines() []string
	View() string
	SetSize(width, height int)
	Focus()
	Blur()
}

// textareaEditor adapts a bubbles textarea to TextEditor.
// The textarea is driven synchronously, so the commands it returns are dropped
// and the cursor does not blink.
type textareaEditor struct {
	ta textarea.Model
}

// NewTextEditor creates an editor pre-filled with initial
func NewTextEditor(placeholder, initial string) TextEditor {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Cursor.SetMode(cursor.CursorStatic)
	ta.SetValue(initial)
	ta.Blur()

	return &textareaEditor{ta: ta}
}

func (e *textareaEditor) Input(msg tea.KeyMsg) {
	e.ta, _ = e.ta.Update(msg)
}

func (e *textareaEditor) Lines() []string {
	return strings.Split(e.ta.Value(), "\n")
}

func (e *textareaEditor) View() string {
	return e.ta.View()
}

func (e *textareaEditor) SetSize(width, height int) {
	e.ta.SetWidth(max(width, 1))
	e.ta.SetHeight(max(height, 1))
}

func (e *textareaEditor) Focus() {
	_ = e.ta.Focus()
}

func (e *textareaEditor) Blur() {
	e.ta.Blur()
}

// editorText joins the editor lines the way a draft sees them
func editorText(e TextEditor) string {
	return strings.Join(e.Lines(), "\n")
}
