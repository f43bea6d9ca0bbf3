package driver

import "github.com/skypoint-project/skypoint-go/pkg/mount"

// Property and element names of the mount device surface.
const (
	propConnection    = "CONNECTION"
	elemConnect       = "CONNECT"
	elemDisconnect    = "DISCONNECT"
	propCoordBehavior = "COORD_SET_BEHAVIOR"
	propEquatorial    = "EQUATORIAL_COORD"
	elemRA            = "RA"
	elemDec           = "DEC"
	propAbortMotion   = "ABORT_MOTION"
	elemAbort         = "ABORT"
	propMotionNS      = "MOTION_NS"
	elemMotionNorth   = "MOTION_NORTH"
	elemMotionSouth   = "MOTION_SOUTH"
	propMotionWE      = "MOTION_WE"
	elemMotionWest    = "MOTION_WEST"
	elemMotionEast    = "MOTION_EAST"
	propGeographic    = "GEOGRAPHIC_COORD"
	elemLat           = "LAT"
	elemLong          = "LONG"
	elemElev          = "ELEV"
	propTimeUTC       = "TIME_UTC"
	elemUTC           = "UTC"
	elemOffset        = "OFFSET"
	propSlewRate      = "SLEW_RATE"
	propTrackState    = "TRACK_STATE"
	elemTrackOn       = "TRACK_ON"
)

// coordMode is the closed set of coordinate-set behaviors. Using an
// enum keeps illegal two-hot switch states unrepresentable upstream.
type coordMode uint8

const (
	coordModeSync coordMode = iota
	coordModeTrack
	coordModeSlew
)

func (m coordMode) element() string {
	switch m {
	case coordModeSync:
		return "SYNC"
	case coordModeTrack:
		return "TRACK"
	default:
		return "SLEW"
	}
}

// motionTarget maps a nudge direction onto its switch vector and
// element.
func motionTarget(dir mount.Direction) (prop, element string) {
	switch dir {
	case mount.DirectionNorth:
		return propMotionNS, elemMotionNorth
	case mount.DirectionSouth:
		return propMotionNS, elemMotionSouth
	case mount.DirectionEast:
		return propMotionWE, elemMotionEast
	default:
		return propMotionWE, elemMotionWest
	}
}
