package types

import (
	"fmt"
	"strings"
)

// Method is the HTTP method of a draft. Only the four values below exist.
type Method int

const (
	MethodGet Method = iota
	MethodPost
	MethodPut
	MethodDelete
)

var methodNames = [...]string{"GET", "POST", "PUT", "DELETE"}

// String returns the wire token for the method
func (m Method) String() string {
	if m < MethodGet || m > MethodDelete {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// Next returns the following method in GET -> POST -> PUT -> DELETE -> GET order
func (m Method) Next() Method {
	return (m + 1) % Method(len(methodNames))
}

// HasBody reports whether a draft with this method carries its body editor contents
func (m Method) HasBody() bool {
	return m == MethodPost || m == MethodPut
}

// ParseMethod converts a method token (case-insensitive) into a Method
func ParseMethod(s string) (Method, error) {
	for i, name := range methodNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Method(i), nil
		}
	}
	return MethodGet, fmt.Errorf("unsupported method %q (want GET, POST, PUT or DELETE)", s)
}

// Pane identifies the focused area of the screen
type Pane int

const (
	PaneURLBar Pane = iota
	PaneMethodSelector
	PaneInputArea
	PaneResponseViewer
	paneCount
)

var paneNames = [...]string{"url_bar", "method_selector", "input_area", "response_viewer"}

func (p Pane) String() string {
	if p < 0 || p >= paneCount {
		return fmt.Sprintf("Pane(%d)", int(p))
	}
	return paneNames[p]
}

// Next moves focus forward, wrapping after the response viewer
func (p Pane) Next() Pane {
	return (p + 1) % paneCount
}

// Prev moves focus backward, wrapping before the URL bar
func (p Pane) Prev() Pane {
	return (p + paneCount - 1) % paneCount
}

// InputTab selects which editor buffer is shown in the input area
type InputTab int

const (
	TabBody InputTab = iota
	TabHeaders
)

func (t InputTab) String() string {
	if t == TabHeaders {
		return "headers"
	}
	return "body"
}

// RequestDraft is the snapshot of the editing surface taken at submission time.
// An empty Body means no body is sent.
type RequestDraft struct {
	Method     Method
	URL        string
	Body       string
	RawHeaders string
}
