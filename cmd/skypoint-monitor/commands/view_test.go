package commands

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skypoint-project/skypoint-go/pkg/log"
	"github.com/skypoint-project/skypoint-go/pkg/wire"
)

// writeSessionLog records a fixed set of events and returns the file path.
func writeSessionLog(t *testing.T, events []log.Event) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.cbor")
	logger, err := log.NewFileLogger(path)
	require.NoError(t, err)
	for _, e := range events {
		logger.Log(e)
	}
	require.NoError(t, logger.Close())
	return path
}

func sampleEvents() []log.Event {
	base := time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)
	return []log.Event{
		{
			Timestamp:    base,
			ConnectionID: "aabbccdd-1234",
			Direction:    log.DirectionOut,
			Layer:        log.LayerWire,
			Category:     log.CategoryMessage,
			Device:       "Telescope Simulator",
			Message: &log.MessageEvent{
				Type:     wire.MsgSetProperty,
				Property: "EQUATORIAL_COORD",
				Elements: 2,
			},
		},
		{
			Timestamp:    base.Add(time.Second),
			ConnectionID: "aabbccdd-1234",
			Direction:    log.DirectionIn,
			Layer:        log.LayerTransport,
			Category:     log.CategoryMessage,
			Frame:        &log.FrameEvent{Size: 42},
		},
		{
			Timestamp:    base.Add(2 * time.Second),
			ConnectionID: "aabbccdd-1234",
			Layer:        log.LayerController,
			Category:     log.CategoryCommand,
			Command: &log.CommandEvent{
				Name:    "goto_target",
				Attempt: 1,
				Outcome: "ok",
				Phase:   "TARGET_ACQUISITION_MOVE",
			},
		},
		{
			Timestamp:    base.Add(3 * time.Second),
			ConnectionID: "aabbccdd-1234",
			Layer:        log.LayerClient,
			Category:     log.CategoryError,
			Error: &log.ErrorEventData{
				Layer:   log.LayerClient,
				Message: "connection closed",
				Context: "read loop",
			},
		},
	}
}

func TestRunViewFormatsAllEvents(t *testing.T) {
	path := writeSessionLog(t, sampleEvents())

	var buf bytes.Buffer
	require.NoError(t, RunView(path, log.Filter{}, &buf))

	out := buf.String()
	assert.Contains(t, out, "[conn:aabbccdd]")
	assert.Contains(t, out, "Property: EQUATORIAL_COORD")
	assert.Contains(t, out, "Device: Telescope Simulator")
	assert.Contains(t, out, "Size: 42 bytes")
	assert.Contains(t, out, "goto_target")
	assert.Contains(t, out, "Phase: TARGET_ACQUISITION_MOVE")
	assert.Contains(t, out, "Message: connection closed")
}

func TestRunViewAppliesFilter(t *testing.T) {
	path := writeSessionLog(t, sampleEvents())

	category := log.CategoryCommand
	var buf bytes.Buffer
	require.NoError(t, RunView(path, log.Filter{Category: &category}, &buf))

	out := buf.String()
	assert.Contains(t, out, "goto_target")
	assert.NotContains(t, out, "EQUATORIAL_COORD")
	assert.NotContains(t, out, "Size: 42 bytes")
}

func TestRunViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := RunView(filepath.Join(t.TempDir(), "nope.cbor"), log.Filter{}, &buf)
	assert.Error(t, err)
}

func TestParseFlagHelpers(t *testing.T) {
	layer, err := ParseLayerFlag("Controller")
	require.NoError(t, err)
	assert.Equal(t, log.LayerController, layer)

	dir, err := ParseDirectionFlag("IN")
	require.NoError(t, err)
	assert.Equal(t, log.DirectionIn, dir)

	cat, err := ParseCategoryFlag("command")
	require.NoError(t, err)
	assert.Equal(t, log.CategoryCommand, cat)

	_, err = ParseLayerFlag("bogus")
	assert.Error(t, err)
	_, err = ParseDirectionFlag("sideways")
	assert.Error(t, err)
	_, err = ParseCategoryFlag("noise")
	assert.Error(t, err)
}
