// Command skypoint-monitor watches live property traffic and analyzes
// recorded session logs.
//
// Session log files are created by running skypoint-mount with the
// -session-log flag.
//
// Usage:
//
//	skypoint-monitor <command> [flags]
//
// Commands:
//
//	watch    Connect to a property server and print events live
//	view     View a session log file in human-readable format
//	stats    Show statistics about a session log file
//
// Examples:
//
//	# Watch a discovered server on the local network
//	skypoint-monitor watch
//
//	# View only controller command traces
//	skypoint-monitor view -category command session.cbor
//
//	# Show statistics
//	skypoint-monitor stats session.cbor
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skypoint-project/skypoint-go/cmd/skypoint-monitor/commands"
	"github.com/skypoint-project/skypoint-go/pkg/log"
)

const usage = `skypoint-monitor - SkyPoint Session Monitor

Usage:
  skypoint-monitor <command> [flags]

Commands:
  watch    Connect to a property server and print events live
  view     View a session log file in human-readable format
  stats    Show statistics about a session log file

Use "skypoint-monitor <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "watch":
		runWatch(args)
	case "view":
		runView(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// parseFilter builds a log filter from the shared filter flags.
func parseFilter(layer, direction, category, connID, device, timeStart, timeEnd string) (log.Filter, error) {
	var filter log.Filter
	filter.ConnectionID = connID
	filter.Device = device

	if layer != "" {
		l, err := commands.ParseLayerFlag(layer)
		if err != nil {
			return filter, err
		}
		filter.Layer = &l
	}
	if direction != "" {
		d, err := commands.ParseDirectionFlag(direction)
		if err != nil {
			return filter, err
		}
		filter.Direction = &d
	}
	if category != "" {
		c, err := commands.ParseCategoryFlag(category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}
	if timeStart != "" {
		t, err := time.Parse(time.RFC3339, timeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start: %w", err)
		}
		filter.TimeStart = &t
	}
	if timeEnd != "" {
		t, err := time.Parse(time.RFC3339, timeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end: %w", err)
		}
		filter.TimeEnd = &t
	}
	return filter, nil
}

func runWatch(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `skypoint-monitor watch - Connect to a property server and print events live

Usage:
  skypoint-monitor watch [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	address := fs.String("address", "auto", "Property server address, or \"auto\" for discovery")
	layer := fs.String("layer", "", "Filter by layer (transport, wire, client, controller)")
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (message, state, command, error)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	filter, err := parseFilter(*layer, *direction, *category, "", "", "", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := commands.RunWatch(ctx, *address, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `skypoint-monitor view - View a session log file in human-readable format

Usage:
  skypoint-monitor view [flags] <file.cbor>

Flags:
`)
		fs.PrintDefaults()
	}

	layer := fs.String("layer", "", "Filter by layer (transport, wire, client, controller)")
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (message, state, command, error)")
	connID := fs.String("conn-id", "", "Filter by connection ID")
	device := fs.String("device", "", "Filter by device name")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter, err := parseFilter(*layer, *direction, *category, *connID, *device, *timeStart, *timeEnd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := commands.RunView(fs.Arg(0), filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `skypoint-monitor stats - Show statistics about a session log file

Usage:
  skypoint-monitor stats <file.cbor>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
