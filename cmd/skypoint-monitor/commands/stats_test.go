package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skypoint-project/skypoint-go/pkg/log"
)

func TestRunStatsAggregates(t *testing.T) {
	base := time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)
	events := sampleEvents()
	events = append(events, log.Event{
		Timestamp:    base.Add(4 * time.Second),
		ConnectionID: "aabbccdd-1234",
		Layer:        log.LayerController,
		Category:     log.CategoryCommand,
		Command:      &log.CommandEvent{Name: "goto_target", Attempt: 1, Outcome: "retry"},
	}, log.Event{
		Timestamp:    base.Add(5 * time.Second),
		ConnectionID: "aabbccdd-1234",
		Layer:        log.LayerController,
		Category:     log.CategoryCommand,
		Command:      &log.CommandEvent{Name: "sync", Outcome: "warning: Cannot sync the mount"},
	})
	path := writeSessionLog(t, events)

	var buf bytes.Buffer
	require.NoError(t, RunStats(path, &buf))

	out := buf.String()
	assert.Contains(t, out, "Total Events: 6")
	assert.Contains(t, out, "Connections: 1")
	assert.Contains(t, out, "Errors: 1")
	assert.Contains(t, out, "Device: Telescope Simulator")
	// goto_target: one ok and one retry; sync: one warning trace.
	assert.Contains(t, out, "goto_target")
	assert.Contains(t, out, "ok=1 retries=1 exhausted=0 warnings=0")
	assert.Contains(t, out, "ok=0 retries=0 exhausted=0 warnings=1")
	assert.Contains(t, out, "Duration:   5s")
}

func TestRunStatsEmptyFile(t *testing.T) {
	path := writeSessionLog(t, nil)

	var buf bytes.Buffer
	require.NoError(t, RunStats(path, &buf))
	assert.Contains(t, buf.String(), "Total Events: 0")
}
