package progress

import "time"

// Stage identifies which enrichment stage is active.
type Stage string

const (
	StageAudience Stage = "audience"
	StageVideos   Stage = "videos"
	StageModules  Stage = "modules"
	StageBase     Stage = "base"
	StageComplete Stage = "complete"
)

// Event carries progress information from the pipeline to the renderer.
type Event struct {
	Stage       Stage
	Message     string
	Percent     float64 // 0.0-1.0
	ModuleNum   int
	ModuleTotal int
	Elapsed     time.Duration
	Error       error
	// RecordID is set on StageComplete.
	RecordID string
}

// Callback is the function signature for progress event handlers.
type Callback func(Event)

// NopCallback is a no-op progress callback for tests and silent mode.
func NopCallback(Event) {}

// NewEvent creates an Event with common fields populated.
func NewEvent(stage Stage, msg string, pct float64, start time.Time) Event {
	return Event{
		Stage:   stage,
		Message: msg,
		Percent: pct,
		Elapsed: time.Since(start),
	}
}
