package mount

import (
	"context"
	"errors"
	"time"
)

// Adapter errors shared across implementations.
var (
	// ErrDriftRatesUnsupported indicates the device protocol cannot
	// set drift compensation rates.
	ErrDriftRatesUnsupported = errors.New("drift rates unsupported")

	// ErrSpiralSearchNotImplemented indicates the spiral search
	// refinement is not implemented. It is a fatal contract violation,
	// never swallowed.
	ErrSpiralSearchNotImplemented = errors.New("spiral search not implemented")
)

// Site is the observing location pushed to the device at init.
type Site struct {
	// LatitudeDeg is the geographic latitude in degrees, north positive.
	LatitudeDeg float64

	// LongitudeDeg is the geographic longitude in degrees, east positive.
	LongitudeDeg float64

	// ElevationM is the elevation above sea level in meters.
	ElevationM float64
}

// Adapter is the seam between the controller and the device protocol.
// Every fallible device operation returns an error; the controller
// alone decides the user-visible consequences of failure.
type Adapter interface {
	// Init connects to the device, binds it, pushes site and time
	// properties, and confirms the connection switch reaches ON
	// within a discovery timeout.
	Init(ctx context.Context, site Site, utc time.Time) error

	// Sync tells the mount its current pointing equals the target.
	// RA and Dec are in degrees.
	Sync(ctx context.Context, raDeg, decDeg float64) error

	// Goto slews the mount to the target and tracks. Success means
	// the write was accepted, not that the slew finished.
	Goto(ctx context.Context, raDeg, decDeg float64) error

	// Stop halts all motion. Safe to call when already stopped.
	Stop(ctx context.Context) error

	// ManualMove asserts the directional motion switch for the given
	// duration, then releases it. The wait is context-aware.
	ManualMove(ctx context.Context, dir Direction, rate string, duration time.Duration) error

	// SetStepSize records the nudge step size. Step size is local
	// controller state; implementations may always succeed.
	SetStepSize(value float64) error

	// SetDriftRates sets drift compensation rates in arcsec/s.
	// Unsupported protocols return ErrDriftRatesUnsupported.
	SetDriftRates(ctx context.Context, raRate, decRate float64) error

	// Disconnect releases the device and closes the transport.
	Disconnect() error
}
