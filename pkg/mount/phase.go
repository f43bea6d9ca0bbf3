package mount

// Phase is the controller's own belief about what the mount is doing,
// derived from command outcomes.
type Phase uint8

const (
	// PhaseStopped indicates all motion has been stopped.
	PhaseStopped Phase = iota

	// PhaseTracking indicates the mount is tracking the sky.
	PhaseTracking

	// PhaseTargetAcquisitionMove indicates a slew toward a target is
	// in progress.
	PhaseTargetAcquisitionMove

	// PhaseTargetAcquisitionRefine indicates fine pointing refinement
	// after the initial slew.
	PhaseTargetAcquisitionRefine

	// PhaseDriftCompensation indicates drift-rate correction is active.
	PhaseDriftCompensation

	// PhaseInitTelescope indicates the mount needs re-initialization,
	// e.g. after an unrecoverable stop failure.
	PhaseInitTelescope
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStopped:
		return "STOPPED"
	case PhaseTracking:
		return "TRACKING"
	case PhaseTargetAcquisitionMove:
		return "TARGET_ACQUISITION_MOVE"
	case PhaseTargetAcquisitionRefine:
		return "TARGET_ACQUISITION_REFINE"
	case PhaseDriftCompensation:
		return "DRIFT_COMPENSATION"
	case PhaseInitTelescope:
		return "INIT_TELESCOPE"
	default:
		return "UNKNOWN"
	}
}
