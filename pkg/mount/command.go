package mount

import "time"

// Command is one request to the controller. The union is closed: only
// the command types below implement it, so the dispatch switch in the
// controller is exhaustive.
type Command interface {
	// CommandName returns the protocol-level command name used in
	// logs and traces.
	CommandName() string
}

// Exit terminates the command loop, stopping the mount first if it is
// tracking.
type Exit struct{}

// StopMovement halts all mount motion.
type StopMovement struct{}

// Sync tells the mount its current pointing matches the given
// coordinates. RA and Dec are in degrees.
type Sync struct {
	RA  float64
	Dec float64
}

// GotoTarget slews the mount to the given coordinates and tracks.
// RA and Dec are in degrees.
type GotoTarget struct {
	RA  float64
	Dec float64
}

// ManualMovement nudges the mount in one direction at a named slew
// rate for a duration.
type ManualMovement struct {
	Direction Direction
	Rate      string
	Duration  time.Duration
}

// ReduceStepSize halves the manual-nudge step size.
type ReduceStepSize struct{}

// IncreaseStepSize doubles the manual-nudge step size.
type IncreaseStepSize struct{}

// SetStepSize sets the manual-nudge step size in degrees.
type SetStepSize struct {
	Value float64
}

// SpiralSearch requests a spiral pointing-refinement pattern. The
// operation is not implemented and always resolves as a fatal error.
type SpiralSearch struct{}

// Unknown carries an unrecognized command. The controller ignores it.
type Unknown struct {
	Raw string
}

func (Exit) CommandName() string           { return "exit" }
func (StopMovement) CommandName() string   { return "stop_movement" }
func (Sync) CommandName() string           { return "sync" }
func (GotoTarget) CommandName() string     { return "goto_target" }
func (ManualMovement) CommandName() string { return "manual_movement" }
func (ReduceStepSize) CommandName() string { return "reduce_step_size" }
func (IncreaseStepSize) CommandName() string {
	return "increase_step_size"
}
func (SetStepSize) CommandName() string  { return "set_step_size" }
func (SpiralSearch) CommandName() string { return "spiral_search" }
func (Unknown) CommandName() string      { return "unknown" }
