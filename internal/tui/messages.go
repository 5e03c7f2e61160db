package tui

import "github.com/studiowebux/hcp/internal/telemetry"

// EngineEvent is the outcome of one mission, delivered on the completion queue.
// Exactly one event is produced per accepted submission.
type EngineEvent interface {
	missionID() string
}

// MissionCompleted carries the telemetry and display text of a finished mission
type MissionCompleted struct {
	ID        string
	Telemetry telemetry.MissionTelemetry
	Body      string
}

// MissionFailed carries the error of a mission that produced no response
type MissionFailed struct {
	ID  string
	Err error
}

func (e MissionCompleted) missionID() string { return e.ID }
func (e MissionFailed) missionID() string    { return e.ID }
