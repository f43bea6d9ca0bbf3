package driver

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skypoint-project/skypoint-go/pkg/mount"
	"github.com/skypoint-project/skypoint-go/pkg/property"
	"github.com/skypoint-project/skypoint-go/pkg/transport"
	"github.com/skypoint-project/skypoint-go/pkg/wire"
)

const testDevice = "Telescope Simulator"

// fakeMountServer emulates a property server hosting one mount device.
// It answers getProperties with the full mount surface and confirms
// connection switch writes with an Ok update.
type fakeMountServer struct {
	t        *testing.T
	listener net.Listener

	mu       sync.Mutex
	framer   *transport.Framer
	received []wire.Message
}

func newFakeMountServer(t *testing.T) *fakeMountServer {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &fakeMountServer{t: t, listener: ln}
	go s.serve()
	t.Cleanup(func() { ln.Close() })
	return s
}

func (s *fakeMountServer) addr() string {
	return s.listener.Addr().String()
}

func switchDef(prop string, els ...wire.Element) wire.Message {
	return wire.Message{
		Type: wire.MsgDefineProperty, Device: testDevice, Property: prop,
		Kind: uint8(property.KindSwitch), Elements: els,
	}
}

func (s *fakeMountServer) definitions() []wire.Message {
	return []wire.Message{
		switchDef("CONNECTION",
			wire.Element{Name: "CONNECT"},
			wire.Element{Name: "DISCONNECT", Switch: true}),
		switchDef("COORD_SET_BEHAVIOR",
			wire.Element{Name: "TRACK", Switch: true},
			wire.Element{Name: "SLEW"},
			wire.Element{Name: "SYNC"}),
		{
			Type: wire.MsgDefineProperty, Device: testDevice, Property: "EQUATORIAL_COORD",
			Kind: uint8(property.KindNumber),
			Elements: []wire.Element{
				{Name: "RA", Label: "RA (hours)"},
				{Name: "DEC", Label: "Dec (degrees)"},
			},
		},
		switchDef("ABORT_MOTION", wire.Element{Name: "ABORT"}),
		switchDef("MOTION_NS",
			wire.Element{Name: "MOTION_NORTH"},
			wire.Element{Name: "MOTION_SOUTH"}),
		switchDef("MOTION_WE",
			wire.Element{Name: "MOTION_WEST"},
			wire.Element{Name: "MOTION_EAST"}),
		{
			Type: wire.MsgDefineProperty, Device: testDevice, Property: "GEOGRAPHIC_COORD",
			Kind: uint8(property.KindNumber),
			Elements: []wire.Element{
				{Name: "LAT"}, {Name: "LONG"}, {Name: "ELEV"},
			},
		},
		{
			Type: wire.MsgDefineProperty, Device: testDevice, Property: "TIME_UTC",
			Kind: uint8(property.KindText),
			Elements: []wire.Element{
				{Name: "UTC"}, {Name: "OFFSET"},
			},
		},
		switchDef("SLEW_RATE",
			wire.Element{Name: "SLEW_GUIDE", Label: "Guide"},
			wire.Element{Name: "SLEW_CENTERING", Label: "Centering", Switch: true},
			wire.Element{Name: "SLEW_FIND", Label: "Find"},
			wire.Element{Name: "SLEW_MAX", Label: "Max"}),
		switchDef("TRACK_STATE",
			wire.Element{Name: "TRACK_ON"},
			wire.Element{Name: "TRACK_OFF", Switch: true}),
	}
}

func (s *fakeMountServer) serve() {
	conn, err := s.listener.Accept()
	if err != nil {
		return
	}
	framer := transport.NewFramer(conn)

	s.mu.Lock()
	s.framer = framer
	s.mu.Unlock()

	for {
		data, err := framer.ReadFrame()
		if err != nil {
			return
		}
		var msg wire.Message
		if err := wire.Unmarshal(data, &msg); err != nil {
			continue
		}

		s.mu.Lock()
		s.received = append(s.received, msg)
		s.mu.Unlock()

		switch {
		case msg.Type == wire.MsgGetProperties:
			for _, def := range s.definitions() {
				s.push(def)
			}
		case msg.Type == wire.MsgSetProperty && msg.Property == "CONNECTION":
			// Confirm whatever the client asked for.
			s.push(wire.Message{
				Type: wire.MsgUpdateProperty, Device: testDevice, Property: "CONNECTION",
				State: uint8(property.StateOk), Elements: msg.Elements,
			})
		}
	}
}

func (s *fakeMountServer) push(msg wire.Message) {
	s.mu.Lock()
	framer := s.framer
	s.mu.Unlock()
	if framer == nil {
		return
	}
	data, err := wire.Marshal(msg)
	require.NoError(s.t, err)
	// The client may tear down the connection (Disconnect in test cleanup)
	// while a confirmation is in flight; asserting on t from this goroutine
	// after the test completed panics, so drop the frame instead. A write
	// failure during a test surfaces as a missing frame in its assertions.
	_ = framer.WriteFrame(data)
}

// sets returns the setProperty messages received so far, in order,
// excluding the connection handshake.
func (s *fakeMountServer) sets() []wire.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []wire.Message
	for _, msg := range s.received {
		if msg.Type == wire.MsgSetProperty && msg.Property != "CONNECTION" &&
			msg.Property != "GEOGRAPHIC_COORD" && msg.Property != "TIME_UTC" {
			out = append(out, msg)
		}
	}
	return out
}

func (s *fakeMountServer) setsFor(prop string) []wire.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []wire.Message
	for _, msg := range s.received {
		if msg.Type == wire.MsgSetProperty && msg.Property == prop {
			out = append(out, msg)
		}
	}
	return out
}

func onElements(msg wire.Message) map[string]bool {
	on := make(map[string]bool)
	for _, el := range msg.Elements {
		on[el.Name] = el.Switch
	}
	return on
}

func numberElements(msg wire.Message) map[string]float64 {
	vals := make(map[string]float64)
	for _, el := range msg.Elements {
		vals[el.Name] = el.Number
	}
	return vals
}

func initMount(t *testing.T, s *fakeMountServer) *Mount {
	t.Helper()

	m := New(Config{
		Address:          s.addr(),
		Device:           "auto",
		DiscoveryTimeout: 5 * time.Second,
		PropertyTimeout:  2 * time.Second,
	})
	site := mount.Site{LatitudeDeg: 48.14, LongitudeDeg: 11.58, ElevationM: 520}
	require.NoError(t, m.Init(context.Background(), site, time.Date(2026, 8, 25, 21, 0, 0, 0, time.UTC)))
	t.Cleanup(func() { m.Disconnect() })
	return m
}

func TestInitBindsDeviceAndReadsRates(t *testing.T) {
	s := newFakeMountServer(t)
	m := initMount(t, s)

	assert.Equal(t, testDevice, m.device)
	assert.Equal(t, []string{"Guide", "Centering", "Find", "Max"}, m.SlewRates())

	// Handshake turned the connection switch ON.
	conns := s.setsFor("CONNECTION")
	require.NotEmpty(t, conns)
	assert.True(t, onElements(conns[0])["CONNECT"])

	// Site and time were pushed.
	require.Eventually(t, func() bool {
		return len(s.setsFor("GEOGRAPHIC_COORD")) == 1 && len(s.setsFor("TIME_UTC")) == 1
	}, 2*time.Second, 10*time.Millisecond)
	geos := s.setsFor("GEOGRAPHIC_COORD")
	assert.InDelta(t, 48.14, numberElements(geos[0])["LAT"], 1e-9)
}

func TestSyncSequence(t *testing.T) {
	s := newFakeMountServer(t)
	m := initMount(t, s)

	require.NoError(t, m.Sync(context.Background(), 30.0, 45.0))

	require.Eventually(t, func() bool { return len(s.sets()) >= 4 }, 2*time.Second, 10*time.Millisecond)
	sets := s.sets()

	assert.Equal(t, "COORD_SET_BEHAVIOR", sets[0].Property)
	assert.True(t, onElements(sets[0])["SYNC"])

	assert.Equal(t, "EQUATORIAL_COORD", sets[1].Property)
	vals := numberElements(sets[1])
	assert.InDelta(t, 2.0, vals["RA"], 1e-9) // 30 degrees = 2 hours
	assert.InDelta(t, 45.0, vals["DEC"], 1e-9)

	assert.Equal(t, "COORD_SET_BEHAVIOR", sets[2].Property)
	assert.True(t, onElements(sets[2])["TRACK"])

	assert.Equal(t, "TRACK_STATE", sets[3].Property)
	assert.True(t, onElements(sets[3])["TRACK_ON"])
}

func TestGotoSelectsTrackThenWritesCoords(t *testing.T) {
	s := newFakeMountServer(t)
	m := initMount(t, s)

	require.NoError(t, m.Goto(context.Background(), 217.5, -60.8))

	require.Eventually(t, func() bool { return len(s.sets()) >= 2 }, 2*time.Second, 10*time.Millisecond)
	sets := s.sets()

	assert.Equal(t, "COORD_SET_BEHAVIOR", sets[0].Property)
	assert.True(t, onElements(sets[0])["TRACK"])
	assert.False(t, onElements(sets[0])["SYNC"])

	assert.Equal(t, "EQUATORIAL_COORD", sets[1].Property)
	assert.InDelta(t, 14.5, numberElements(sets[1])["RA"], 1e-9)
}

func TestStopAssertsAbort(t *testing.T) {
	s := newFakeMountServer(t)
	m := initMount(t, s)

	require.NoError(t, m.Stop(context.Background()))

	require.Eventually(t, func() bool { return len(s.setsFor("ABORT_MOTION")) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.True(t, onElements(s.setsFor("ABORT_MOTION")[0])["ABORT"])
}

func TestManualMoveAssertsThenReleases(t *testing.T) {
	s := newFakeMountServer(t)
	m := initMount(t, s)

	start := time.Now()
	require.NoError(t, m.ManualMove(context.Background(), mount.DirectionEast, "Centering", 50*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	require.Eventually(t, func() bool { return len(s.setsFor("MOTION_WE")) == 2 }, 2*time.Second, 10*time.Millisecond)

	rates := s.setsFor("SLEW_RATE")
	require.Len(t, rates, 1)
	assert.True(t, onElements(rates[0])["SLEW_CENTERING"])

	moves := s.setsFor("MOTION_WE")
	require.Len(t, moves, 2)
	assert.True(t, onElements(moves[0])["MOTION_EAST"])
	for _, on := range onElements(moves[1]) {
		assert.False(t, on)
	}
}

func TestManualMoveNorthUsesNSVector(t *testing.T) {
	s := newFakeMountServer(t)
	m := initMount(t, s)

	require.NoError(t, m.ManualMove(context.Background(), mount.DirectionNorth, "Guide", 10*time.Millisecond))

	require.Eventually(t, func() bool { return len(s.setsFor("MOTION_NS")) == 2 }, 2*time.Second, 10*time.Millisecond)
	moves := s.setsFor("MOTION_NS")
	assert.True(t, onElements(moves[0])["MOTION_NORTH"])
}

func TestManualMoveRejectsUnknownRate(t *testing.T) {
	s := newFakeMountServer(t)
	m := initMount(t, s)

	err := m.ManualMove(context.Background(), mount.DirectionWest, "Ludicrous", 10*time.Millisecond)
	assert.ErrorIs(t, err, ErrUnknownSlewRate)
	assert.Empty(t, s.setsFor("MOTION_WE"))
}

func TestSetStepSizeAlwaysSucceeds(t *testing.T) {
	m := New(Config{})
	assert.NoError(t, m.SetStepSize(0.25))
}

func TestSetDriftRatesUnsupported(t *testing.T) {
	m := New(Config{})
	err := m.SetDriftRates(context.Background(), 0.1, 0.1)
	assert.ErrorIs(t, err, mount.ErrDriftRatesUnsupported)
}

func TestOperationsBeforeInitFail(t *testing.T) {
	m := New(Config{})
	assert.ErrorIs(t, m.Stop(context.Background()), ErrNotInitialized)
	assert.ErrorIs(t, m.Sync(context.Background(), 0, 0), ErrNotInitialized)
	assert.ErrorIs(t, m.Goto(context.Background(), 0, 0), ErrNotInitialized)
}

func TestDisconnectAssertsSwitchAndCloses(t *testing.T) {
	s := newFakeMountServer(t)
	m := initMount(t, s)

	require.NoError(t, m.Disconnect())

	require.Eventually(t, func() bool { return len(s.setsFor("CONNECTION")) >= 2 }, 2*time.Second, 10*time.Millisecond)
	conns := s.setsFor("CONNECTION")
	last := conns[len(conns)-1]
	assert.True(t, onElements(last)["DISCONNECT"])

	// Second disconnect is a no-op.
	assert.NoError(t, m.Disconnect())
}
