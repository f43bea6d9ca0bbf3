package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/skypoint-project/skypoint-go/pkg/client"
	"github.com/skypoint-project/skypoint-go/pkg/discovery"
	"github.com/skypoint-project/skypoint-go/pkg/log"
	"github.com/skypoint-project/skypoint-go/pkg/mount"
	"github.com/skypoint-project/skypoint-go/pkg/property"
)

// Driver errors.
var (
	// ErrNotInitialized indicates a device operation before Init.
	ErrNotInitialized = errors.New("mount not initialized")

	// ErrConnectFailed indicates the device connection switch never
	// reached ON.
	ErrConnectFailed = errors.New("device connection failed")

	// ErrUnknownSlewRate indicates a manual move requested a rate the
	// device does not advertise.
	ErrUnknownSlewRate = errors.New("unknown slew rate")
)

// Default timeouts.
const (
	// DefaultDiscoveryTimeout bounds device binding and the
	// connection handshake.
	DefaultDiscoveryTimeout = 10 * time.Second

	// DefaultPropertyTimeout bounds individual property waits.
	DefaultPropertyTimeout = 5 * time.Second
)

// Config configures a Mount driver.
type Config struct {
	// Address is the property server address (host:port). "auto" or
	// empty triggers mDNS discovery.
	Address string

	// Device is the mount device name. "auto" or empty binds the
	// first device that looks like a telescope mount.
	Device string

	// Logger receives protocol events. Nil disables logging.
	Logger log.Logger

	// Slog receives operational debug output. Nil uses slog.Default.
	Slog *slog.Logger

	// DiscoveryTimeout bounds device binding (default 10s).
	DiscoveryTimeout time.Duration

	// PropertyTimeout bounds individual property waits (default 5s).
	PropertyTimeout time.Duration
}

// Mount implements mount.Adapter over the property protocol. All
// methods are called from the controller's single goroutine; the
// driver holds the only reference to the underlying connection.
type Mount struct {
	config Config
	slog   *slog.Logger

	client *client.Client
	device string

	// slewRates maps advertised rate labels to element names. Empty
	// when the device does not expose a slew rate vector.
	slewRates map[string]string
	rateOrder []string

	stepSize float64
}

// New creates an unconnected mount driver. Init establishes the
// connection.
func New(config Config) *Mount {
	if config.DiscoveryTimeout <= 0 {
		config.DiscoveryTimeout = DefaultDiscoveryTimeout
	}
	if config.PropertyTimeout <= 0 {
		config.PropertyTimeout = DefaultPropertyTimeout
	}
	sl := config.Slog
	if sl == nil {
		sl = slog.Default()
	}

	return &Mount{
		config:    config,
		slog:      sl,
		slewRates: make(map[string]string),
	}
}

// Init connects to the property server, binds the mount device, pushes
// site and time properties, and confirms the device connection switch
// reaches ON. Site and time pushes are best-effort: many drivers get
// them from GPS, so their absence is logged, not fatal.
func (m *Mount) Init(ctx context.Context, site mount.Site, utc time.Time) error {
	address := m.config.Address
	if address == "" || address == "auto" {
		svc, err := discovery.NewBrowser(discovery.BrowserConfig{}).FindFirst(ctx, m.config.DiscoveryTimeout)
		if err != nil {
			return fmt.Errorf("discover property server: %w", err)
		}
		address = svc.Addr()
		m.slog.Info("discovered property server", "instance", svc.InstanceName, "address", address)
	}

	c := client.NewClient(client.Config{
		Address: address,
		Logger:  m.config.Logger,
	})
	if err := c.Connect(ctx); err != nil {
		return err
	}
	m.client = c

	dev, err := c.DiscoverDevice(ctx, m.config.Device, m.config.DiscoveryTimeout)
	if err != nil {
		c.Close()
		m.client = nil
		return err
	}
	m.device = dev.Name()
	m.slog.Info("mount device bound", "device", m.device)

	if err := m.connectDevice(ctx, dev); err != nil {
		c.Close()
		m.client = nil
		return err
	}

	m.pushSite(ctx, site)
	m.pushTime(ctx, utc)
	m.readSlewRates(ctx)

	return nil
}

// connectDevice turns the device connection switch ON and waits for
// the device to confirm.
func (m *Mount) connectDevice(ctx context.Context, dev *property.Device) error {
	if _, err := m.client.WaitForProperty(ctx, m.device, propConnection, m.config.PropertyTimeout); err != nil {
		return fmt.Errorf("%w: %v", ErrConnectFailed, err)
	}

	if dev.Connected() {
		m.slog.Info("device already connected", "device", m.device)
		return nil
	}

	if err := m.client.SetSwitch(m.device, propConnection, elemConnect); err != nil {
		return fmt.Errorf("%w: %v", ErrConnectFailed, err)
	}

	err := m.client.WaitUntil(ctx, m.config.DiscoveryTimeout, func(r *property.Registry) bool {
		d := r.Device(m.device)
		return d != nil && d.Connected()
	})
	if err != nil {
		return fmt.Errorf("%w: connection switch never reached ON", ErrConnectFailed)
	}
	return nil
}

// pushSite writes the observing site, if the device exposes it.
func (m *Mount) pushSite(ctx context.Context, site mount.Site) {
	if _, err := m.client.WaitForProperty(ctx, m.device, propGeographic, m.config.PropertyTimeout); err != nil {
		m.slog.Warn("geographic coordinates not supported by device", "device", m.device)
		return
	}
	err := m.client.SetNumber(m.device, propGeographic, map[string]float64{
		elemLat:  site.LatitudeDeg,
		elemLong: site.LongitudeDeg,
		elemElev: site.ElevationM,
	})
	if err != nil {
		m.slog.Warn("failed to set geographic coordinates", "error", err)
		return
	}
	m.slog.Info("geographic coordinates set",
		"lat", site.LatitudeDeg, "lon", site.LongitudeDeg, "elev", site.ElevationM)
}

// pushTime writes UTC time, if the device exposes it.
func (m *Mount) pushTime(ctx context.Context, utc time.Time) {
	if utc.IsZero() {
		return
	}
	if _, err := m.client.WaitForProperty(ctx, m.device, propTimeUTC, m.config.PropertyTimeout); err != nil {
		m.slog.Warn("UTC time not supported by device", "device", m.device)
		return
	}
	err := m.client.SetText(m.device, propTimeUTC, map[string]string{
		elemUTC:    utc.UTC().Format("2006-01-02T15:04:05"),
		elemOffset: "0",
	})
	if err != nil {
		m.slog.Warn("failed to set UTC time", "error", err)
		return
	}
	m.slog.Info("UTC time set", "utc", utc.UTC())
}

// readSlewRates records the rate labels the device advertises.
func (m *Mount) readSlewRates(ctx context.Context) {
	prop, err := m.client.WaitForProperty(ctx, m.device, propSlewRate, m.config.PropertyTimeout)
	if err != nil {
		m.slog.Warn("slew rate vector not available on this mount", "device", m.device)
		return
	}

	for _, el := range prop.Elements() {
		label := el.Label
		if label == "" {
			label = el.Name
		}
		m.slewRates[label] = el.Name
		m.rateOrder = append(m.rateOrder, label)
	}
	m.slog.Info("available slew rates", "rates", m.rateOrder)
}

// SlewRates returns the advertised rate labels in device order.
func (m *Mount) SlewRates() []string {
	out := make([]string, len(m.rateOrder))
	copy(out, m.rateOrder)
	return out
}

// setCoordMode selects the coordinate-set behavior.
func (m *Mount) setCoordMode(mode coordMode) error {
	return m.client.SetSwitch(m.device, propCoordBehavior, mode.element())
}

// writeCoords writes target coordinates. RA converts from degrees to
// hours on the wire.
func (m *Mount) writeCoords(raDeg, decDeg float64) error {
	return m.client.SetNumber(m.device, propEquatorial, map[string]float64{
		elemRA:  raDeg / 15.0,
		elemDec: decDeg,
	})
}

// Sync tells the mount its current pointing equals the given
// coordinates, then restores track behavior so subsequent coordinate
// writes slew instead of re-syncing.
func (m *Mount) Sync(ctx context.Context, raDeg, decDeg float64) error {
	if m.client == nil {
		return ErrNotInitialized
	}

	if err := m.setCoordMode(coordModeSync); err != nil {
		return fmt.Errorf("select sync behavior: %w", err)
	}
	if err := m.writeCoords(raDeg, decDeg); err != nil {
		return fmt.Errorf("write sync coordinates: %w", err)
	}
	if err := m.setCoordMode(coordModeTrack); err != nil {
		return fmt.Errorf("restore track behavior: %w", err)
	}
	if err := m.client.SetSwitch(m.device, propTrackState, elemTrackOn); err != nil {
		return fmt.Errorf("enable tracking: %w", err)
	}

	m.slog.Info("mount synced", "ra", raDeg, "dec", decDeg)
	return nil
}

// Goto slews the mount to the target and tracks.
func (m *Mount) Goto(ctx context.Context, raDeg, decDeg float64) error {
	if m.client == nil {
		return ErrNotInitialized
	}

	if err := m.setCoordMode(coordModeTrack); err != nil {
		return fmt.Errorf("select track behavior: %w", err)
	}
	if err := m.writeCoords(raDeg, decDeg); err != nil {
		return fmt.Errorf("write goto coordinates: %w", err)
	}

	m.slog.Info("goto commanded", "ra", raDeg, "dec", decDeg)
	return nil
}

// Stop asserts the abort-motion switch. Safe when already stopped.
func (m *Mount) Stop(ctx context.Context) error {
	if m.client == nil {
		return ErrNotInitialized
	}
	if err := m.client.SetSwitch(m.device, propAbortMotion, elemAbort); err != nil {
		return fmt.Errorf("abort motion: %w", err)
	}
	return nil
}

// ManualMove asserts the directional motion switch for the given
// duration, then releases it. The wait yields on context cancellation;
// the switch is released either way.
func (m *Mount) ManualMove(ctx context.Context, dir mount.Direction, rate string, duration time.Duration) error {
	if m.client == nil {
		return ErrNotInitialized
	}

	if len(m.slewRates) > 0 {
		element, ok := m.slewRates[rate]
		if !ok {
			return fmt.Errorf("%w: %q (available: %v)", ErrUnknownSlewRate, rate, m.rateOrder)
		}
		if err := m.client.SetSwitch(m.device, propSlewRate, element); err != nil {
			return fmt.Errorf("set slew rate %q: %w", rate, err)
		}
	}

	prop, element := motionTarget(dir)
	if err := m.client.SetSwitch(m.device, prop, element); err != nil {
		return fmt.Errorf("assert %s motion: %w", dir, err)
	}

	var waitErr error
	select {
	case <-time.After(duration):
	case <-ctx.Done():
		waitErr = ctx.Err()
	}

	if err := m.client.ClearSwitches(m.device, prop); err != nil {
		m.slog.Warn("failed to release motion switch", "property", prop, "error", err)
		if waitErr == nil {
			waitErr = err
		}
	}
	return waitErr
}

// SetStepSize records the nudge step size. The protocol has no device
// property for it, so this always succeeds.
func (m *Mount) SetStepSize(value float64) error {
	m.stepSize = value
	return nil
}

// SetDriftRates is unsupported by this protocol family.
func (m *Mount) SetDriftRates(ctx context.Context, raRate, decRate float64) error {
	return mount.ErrDriftRatesUnsupported
}

// Disconnect releases the device and closes the transport. The
// disconnect switch is best-effort; the close always happens.
func (m *Mount) Disconnect() error {
	if m.client == nil {
		return nil
	}

	if dev := m.client.Registry().Device(m.device); dev != nil {
		if _, err := dev.Property(propConnection); err == nil {
			if err := m.client.SetSwitch(m.device, propConnection, elemDisconnect); err != nil {
				m.slog.Warn("failed to assert disconnect switch", "error", err)
			}
		}
	}

	err := m.client.Close()
	m.client = nil
	return err
}

var _ mount.Adapter = (*Mount)(nil)
