package ports

import "time"

// Renderer is the abstraction for install progress output.
// It decouples telemetry collection from presentation logic.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called once before the first window starts.
	// packages: every package of the run in install order
	// windows: the number of sequential windows
	OnPlanEmit(packages []string, windows int)

	// OnTaskStart is called when a package attempt begins.
	OnTaskStart(spanID, parentID, name string, startTime time.Time)

	// OnTaskComplete is called when a package attempt finishes.
	// outcome is the attempt's outcome attribute, empty if unset.
	// err is nil if successful.
	OnTaskComplete(spanID string, endTime time.Time, outcome string, err error)
}
