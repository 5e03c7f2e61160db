package types

import "testing"

func TestMethod_NextCyclesThroughAllValues(t *testing.T) {
	want := []Method{MethodPost, MethodPut, MethodDelete, MethodGet}
	m := MethodGet
	for i, w := range want {
		m = m.Next()
		if m != w {
			t.Fatalf("step %d: Next() = %v, want %v", i+1, m, w)
		}
	}
}

func TestMethod_FourStepsReturnToStart(t *testing.T) {
	for _, start := range []Method{MethodGet, MethodPost, MethodPut, MethodDelete} {
		m := start
		for i := 0; i < 4; i++ {
			m = m.Next()
		}
		if m != start {
			t.Errorf("4x Next() from %v = %v", start, m)
		}
	}
}

func TestMethod_String(t *testing.T) {
	tests := map[Method]string{
		MethodGet:    "GET",
		MethodPost:   "POST",
		MethodPut:    "PUT",
		MethodDelete: "DELETE",
	}
	for m, want := range tests {
		if got := m.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestMethod_HasBody(t *testing.T) {
	if MethodGet.HasBody() || MethodDelete.HasBody() {
		t.Error("GET and DELETE must not carry a body")
	}
	if !MethodPost.HasBody() || !MethodPut.HasBody() {
		t.Error("POST and PUT must carry a body")
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"GET", MethodGet, false},
		{"post", MethodPost, false},
		{" Put ", MethodPut, false},
		{"delete", MethodDelete, false},
		{"PATCH", MethodGet, true},
		{"", MethodGet, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMethod(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMethod(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMethod(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPane_ForwardAndBackwardCycles(t *testing.T) {
	for _, start := range []Pane{PaneURLBar, PaneMethodSelector, PaneInputArea, PaneResponseViewer} {
		fwd, back := start, start
		for i := 0; i < 4; i++ {
			fwd = fwd.Next()
			back = back.Prev()
		}
		if fwd != start {
			t.Errorf("4x Next() from %v = %v", start, fwd)
		}
		if back != start {
			t.Errorf("4x Prev() from %v = %v", start, back)
		}
	}
}

func TestPane_Order(t *testing.T) {
	if got := PaneURLBar.Next(); got != PaneMethodSelector {
		t.Errorf("url_bar.Next() = %v", got)
	}
	if got := PaneResponseViewer.Next(); got != PaneURLBar {
		t.Errorf("response_viewer.Next() = %v", got)
	}
	if got := PaneURLBar.Prev(); got != PaneResponseViewer {
		t.Errorf("url_bar.Prev() = %v", got)
	}
	if got := PaneInputArea.Prev(); got != PaneMethodSelector {
		t.Errorf("input_area.Prev() = %v", got)
	}
}
