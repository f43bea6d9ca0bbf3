package mount

import (
	"fmt"
	"strings"
)

// Direction is a manual-nudge direction in equatorial terms.
type Direction uint8

const (
	// DirectionNorth moves toward increasing declination.
	DirectionNorth Direction = iota

	// DirectionSouth moves toward decreasing declination.
	DirectionSouth

	// DirectionEast moves toward increasing right ascension.
	DirectionEast

	// DirectionWest moves toward decreasing right ascension.
	DirectionWest
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionNorth:
		return "NORTH"
	case DirectionSouth:
		return "SOUTH"
	case DirectionEast:
		return "EAST"
	case DirectionWest:
		return "WEST"
	default:
		return "UNKNOWN"
	}
}

// ParseDirection parses a direction name, case-insensitively.
// Single-letter abbreviations are accepted.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(s) {
	case "NORTH", "N":
		return DirectionNorth, nil
	case "SOUTH", "S":
		return DirectionSouth, nil
	case "EAST", "E":
		return DirectionEast, nil
	case "WEST", "W":
		return DirectionWest, nil
	default:
		return DirectionNorth, fmt.Errorf("unknown direction: %q", s)
	}
}
