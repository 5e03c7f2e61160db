package telemetry

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	// BarWidth is the number of cells every phase bar occupies
	BarWidth = 20

	barFilled = "█"
	barEmpty  = "░"
)

// MissionTelemetry holds the measurements of one completed mission.
// It is a value type: a new mission replaces it, it is never merged.
type MissionTelemetry struct {
	ConnectToFirstByte time.Duration // submission until response headers
	Transfer           time.Duration // body streaming phase
	Total              time.Duration // submission until end of body
	SizeBytes          uint64
	Status             int
}

// ConnectBar renders the connect-to-first-byte phase relative to Total
func (t MissionTelemetry) ConnectBar() string {
	return RenderBar(t.ConnectToFirstByte, t.Total)
}

// TransferBar renders the transfer phase relative to Total
func (t MissionTelemetry) TransferBar() string {
	return RenderBar(t.Transfer, t.Total)
}

// IsSuccess returns true if status code is 2xx
func (t MissionTelemetry) IsSuccess() bool {
	return t.Status >= 200 && t.Status < 300
}

// RenderBar draws phase as a share of total using BarWidth cells.
// The result is always exactly BarWidth runes wide.
func RenderBar(phase, total time.Duration) string {
	ratio := 0.0
	if total > 0 {
		ratio = float64(phase) / float64(total)
	}

	cells := int(ratio * BarWidth)
	cells = min(max(cells, 0), BarWidth)

	return strings.Repeat(barFilled, cells) + strings.Repeat(barEmpty, BarWidth-cells)
}

// FormatDuration formats a duration as whole milliseconds, or seconds above one second
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// FormatSize formats byte size to human-readable string
func FormatSize(bytes uint64) string {
	return humanize.Bytes(bytes)
}
