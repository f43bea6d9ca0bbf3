package property

// State represents the completion state of a property vector.
// Writes to a property are fire-and-forget; the device reports the
// outcome asynchronously by transitioning the property state.
type State uint8

const (
	// StateIdle indicates the property is inactive.
	StateIdle State = 0

	// StateBusy indicates an operation on the property is in progress.
	StateBusy State = 1

	// StateOk indicates the last operation completed successfully.
	StateOk State = 2

	// StateAlert indicates the last operation failed.
	StateAlert State = 3
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateBusy:
		return "BUSY"
	case StateOk:
		return "OK"
	case StateAlert:
		return "ALERT"
	default:
		return "UNKNOWN"
	}
}

// Kind identifies the element type of a property vector.
// All elements of a vector share one kind.
type Kind uint8

const (
	// KindSwitch is a vector of boolean switch elements.
	KindSwitch Kind = 1

	// KindNumber is a vector of numeric elements.
	KindNumber Kind = 2

	// KindText is a vector of text elements.
	KindText Kind = 3
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSwitch:
		return "SWITCH"
	case KindNumber:
		return "NUMBER"
	case KindText:
		return "TEXT"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether k is a known element kind.
func (k Kind) IsValid() bool {
	return k >= KindSwitch && k <= KindText
}
