// Package interactive provides the interactive command-line interface
// for skypoint-mount.
package interactive

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/skypoint-project/skypoint-go/pkg/mount"
)

// Parse turns one input line into a mount command. Unrecognized verbs
// parse as mount.Unknown so the controller's forward-compatible
// default applies; malformed arguments of known verbs are an error.
func Parse(line string) (mount.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "exit", "quit":
		return mount.Exit{}, nil

	case "stop":
		return mount.StopMovement{}, nil

	case "sync":
		ra, dec, err := parseCoords(verb, args)
		if err != nil {
			return nil, err
		}
		return mount.Sync{RA: ra, Dec: dec}, nil

	case "goto":
		ra, dec, err := parseCoords(verb, args)
		if err != nil {
			return nil, err
		}
		return mount.GotoTarget{RA: ra, Dec: dec}, nil

	case "move":
		if len(args) != 3 {
			return nil, fmt.Errorf("usage: move <north|south|east|west> <rate> <seconds>")
		}
		dir, err := mount.ParseDirection(args[0])
		if err != nil {
			return nil, err
		}
		seconds, err := strconv.ParseFloat(args[2], 64)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid duration: %q", args[2])
		}
		return mount.ManualMovement{
			Direction: dir,
			Rate:      args[1],
			Duration:  time.Duration(seconds * float64(time.Second)),
		}, nil

	case "step":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: step <degrees> | step + | step -")
		}
		switch args[0] {
		case "+":
			return mount.IncreaseStepSize{}, nil
		case "-":
			return mount.ReduceStepSize{}, nil
		}
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid step size: %q", args[0])
		}
		return mount.SetStepSize{Value: value}, nil

	case "spiral":
		return mount.SpiralSearch{}, nil

	default:
		return mount.Unknown{Raw: line}, nil
	}
}

func parseCoords(verb string, args []string) (ra, dec float64, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("usage: %s <ra_deg> <dec_deg>", verb)
	}
	ra, err = strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid RA: %q", args[0])
	}
	dec, err = strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid Dec: %q", args[1])
	}
	if dec < -90 || dec > 90 {
		return 0, 0, fmt.Errorf("Dec %v out of range [-90, 90]", dec)
	}
	return ra, dec, nil
}
