package tui

// Queue and navigation constants

const (
	// QueueCapacity bounds both the input queue and the completion queue
	QueueCapacity = 10

	// Response viewer scroll deltas
	ScrollStep = 1
	PageStep   = 10

	// Status codes shown for client-side outcomes
	StatusValidationError = 400 // body rejected before sending
	StatusMissionFailed   = 500 // transport or stream failure
)

// UI Layout Constants
// Heights and widths are outer sizes, borders included

const (
	TopBarHeight    = 3  // method + URL boxes
	TelemetryHeight = 8  // telemetry box
	FooterHeight    = 1  // key hints
	MethodBoxWidth  = 12 // method selector box
	TabsHeight      = 2  // tab labels + underline

	InputWidthPercent = 40 // editor column, response gets the rest

	BorderSize = 2 // left + right (or top + bottom) border cells

	MinMiddleHeight = 5 // tabs + a one-line editor box
)
