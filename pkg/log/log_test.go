package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skypoint-project/skypoint-go/pkg/wire"
)

func sampleEvent(connID string, dir Direction) Event {
	return Event{
		Timestamp:    time.Now(),
		ConnectionID: connID,
		Direction:    dir,
		Layer:        LayerWire,
		Category:     CategoryMessage,
		Device:       "Telescope Simulator",
		Message: &MessageEvent{
			Type:     wire.MsgSetProperty,
			Property: "ABORT_MOTION",
			Elements: 1,
		},
	}
}

func TestEncodeDecodeEvent(t *testing.T) {
	ev := sampleEvent("conn-1", DirectionOut)

	data, err := EncodeEvent(ev)
	require.NoError(t, err)

	decoded, err := DecodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, ev.ConnectionID, decoded.ConnectionID)
	assert.Equal(t, ev.Direction, decoded.Direction)
	assert.Equal(t, ev.Device, decoded.Device)
	require.NotNil(t, decoded.Message)
	assert.Equal(t, wire.MsgSetProperty, decoded.Message.Type)
	assert.Equal(t, "ABORT_MOTION", decoded.Message.Property)
}

func TestFileLoggerReaderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cbor")

	fl, err := NewFileLogger(path)
	require.NoError(t, err)
	fl.Log(sampleEvent("conn-1", DirectionOut))
	fl.Log(sampleEvent("conn-1", DirectionIn))
	fl.Log(sampleEvent("conn-2", DirectionOut))
	require.NoError(t, fl.Close())

	// Log after close is ignored, not an error.
	fl.Log(sampleEvent("conn-1", DirectionOut))

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	events, err := r.All()
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestReaderFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cbor")

	fl, err := NewFileLogger(path)
	require.NoError(t, err)
	fl.Log(sampleEvent("conn-1", DirectionOut))
	fl.Log(sampleEvent("conn-2", DirectionIn))
	require.NoError(t, fl.Close())

	in := DirectionIn
	r, err := NewFilteredReader(path, Filter{ConnectionID: "conn-2", Direction: &in})
	require.NoError(t, err)
	defer r.Close()

	ev, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "conn-2", ev.ConnectionID)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestMultiLoggerFansOut(t *testing.T) {
	var a, b recordingLogger
	ml := NewMultiLogger(&a, &b)

	ml.Log(sampleEvent("conn-1", DirectionOut))

	assert.Equal(t, 1, a.count)
	assert.Equal(t, 1, b.count)
}

func TestOrNoop(t *testing.T) {
	assert.NotNil(t, OrNoop(nil))
	l := &recordingLogger{}
	assert.Same(t, l, OrNoop(l).(*recordingLogger))
}

type recordingLogger struct {
	count int
}

func (r *recordingLogger) Log(Event) { r.count++ }
