package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skypoint-project/skypoint-go/pkg/log"
	"github.com/skypoint-project/skypoint-go/pkg/property"
	"github.com/skypoint-project/skypoint-go/pkg/transport"
	"github.com/skypoint-project/skypoint-go/pkg/wire"
)

// Client errors.
var (
	// ErrNotConnected indicates no active connection.
	ErrNotConnected = errors.New("not connected")

	// ErrAlreadyConnected indicates Connect was called twice.
	ErrAlreadyConnected = errors.New("already connected")

	// ErrClosed indicates the client has been closed.
	ErrClosed = errors.New("client closed")

	// ErrDeviceNotFound indicates no matching device appeared in time.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrWaitTimeout indicates a property or device did not appear
	// within the wait budget.
	ErrWaitTimeout = errors.New("wait timed out")
)

// Config configures a property protocol client.
type Config struct {
	// Address is the property server address (host:port).
	Address string

	// Logger receives protocol events. Nil disables logging.
	Logger log.Logger

	// ConnectTimeout bounds the total Connect budget, including
	// backoff retries (default: 30s).
	ConnectTimeout time.Duration

	// MaxMessageSize is the maximum wire message size (default: 64KB).
	MaxMessageSize uint32

	// Backoff customizes the reconnect ramp used during Connect.
	Backoff BackoffConfig
}

// Client is a property protocol client bound to one server connection.
type Client struct {
	config Config
	logger log.Logger
	connID string

	mu       sync.Mutex
	conn     *transport.Conn
	registry *property.Registry
	updated  chan struct{}
	closed   bool

	wg sync.WaitGroup
}

// NewClient creates a client for the given server.
func NewClient(config Config) *Client {
	if config.ConnectTimeout <= 0 {
		config.ConnectTimeout = 30 * time.Second
	}
	if config.MaxMessageSize == 0 {
		config.MaxMessageSize = transport.DefaultMaxMessageSize
	}

	return &Client{
		config:   config,
		logger:   log.OrNoop(config.Logger),
		connID:   uuid.NewString(),
		registry: property.NewRegistry(),
		updated:  make(chan struct{}),
	}
}

// ConnectionID returns the UUID identifying this connection in logs.
func (c *Client) ConnectionID() string {
	return c.connID
}

// Registry returns the device registry mirrored from the server.
func (c *Client) Registry() *property.Registry {
	return c.registry
}

// Connect dials the property server, retrying with exponential backoff
// until it succeeds or the connect budget is exhausted. On success the
// read loop is started and a getProperties request is sent so the
// server streams its property definitions.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.conn != nil {
		c.mu.Unlock()
		return ErrAlreadyConnected
	}
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.config.ConnectTimeout)
	defer cancel()

	tc := transport.NewClient(transport.ClientConfig{
		MaxMessageSize: c.config.MaxMessageSize,
	})
	backoff := NewBackoffWithConfig(c.config.Backoff)

	var conn *transport.Conn
	for {
		var err error
		conn, err = tc.Connect(ctx, c.config.Address)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return fmt.Errorf("connect to %s: %w", c.config.Address, err)
		}

		select {
		case <-time.After(backoff.Next()):
		case <-ctx.Done():
			return fmt.Errorf("connect to %s: %w", c.config.Address, err)
		}
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		conn.Close()
		return ErrClosed
	}
	c.conn = conn
	c.mu.Unlock()

	conn.Framer().SetLogger(c.config.Logger, c.connID)
	c.logStateChange("", "CONNECTED", "")

	c.wg.Add(1)
	go c.readLoop(conn)

	return c.GetProperties("")
}

// Close shuts down the connection and waits for the read loop to exit.
func (c *Client) Close() error {
	c.mu.Lock()
	c.closed = true
	conn := c.conn
	c.mu.Unlock()

	var err error
	if conn != nil {
		err = conn.Close()
	}
	c.wg.Wait()
	return err
}

// Connected reports whether the client holds a live connection.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil && !c.conn.Closed()
}

// send encodes and transmits a message.
func (c *Client) send(msg wire.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}

	data, err := wire.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s: %w", msg.Type, err)
	}
	if err := conn.Send(data); err != nil {
		return fmt.Errorf("send %s: %w", msg.Type, err)
	}

	c.logMessage(msg, log.DirectionOut)
	return nil
}

// readLoop decodes incoming messages into the registry until the
// connection drops.
func (c *Client) readLoop(conn *transport.Conn) {
	defer c.wg.Done()

	for {
		data, err := conn.Receive(0)
		if err != nil {
			c.logStateChange("CONNECTED", "DISCONNECTED", err.Error())
			conn.Close()
			return
		}

		var msg wire.Message
		if err := wire.Unmarshal(data, &msg); err != nil {
			c.logError(fmt.Sprintf("decode message: %v", err))
			continue
		}
		if err := msg.Validate(); err != nil {
			c.logError(fmt.Sprintf("invalid message: %v", err))
			continue
		}

		c.logMessage(msg, log.DirectionIn)
		c.handle(msg)
	}
}

// handle applies one server message to the registry.
func (c *Client) handle(msg wire.Message) {
	switch msg.Type {
	case wire.MsgDefineProperty:
		dev := c.registry.Ensure(msg.Device)
		dev.Define(property.NewProperty(
			msg.Property,
			property.Kind(msg.Kind),
			property.State(msg.State),
			wireToElements(msg.Elements),
		))

	case wire.MsgUpdateProperty:
		dev := c.registry.Ensure(msg.Device)
		prop, err := dev.Property(msg.Property)
		if err != nil {
			// Update before definition: synthesize the vector so no
			// state transition is lost.
			prop = property.NewProperty(
				msg.Property,
				property.Kind(msg.Kind),
				property.State(msg.State),
				wireToElements(msg.Elements),
			)
			dev.Define(prop)
		} else {
			prop.Apply(property.State(msg.State), wireToElements(msg.Elements))
		}

	case wire.MsgDeleteProperty:
		if msg.Property == "" {
			c.registry.Remove(msg.Device)
		} else if dev := c.registry.Device(msg.Device); dev != nil {
			dev.Remove(msg.Property)
		}

	case wire.MsgMessage:
		// Device log lines carry no state; the wire-layer event
		// emitted by the read loop already recorded them.
	}

	c.notifyUpdated()
}

// notifyUpdated wakes all waiters blocked on registry changes.
func (c *Client) notifyUpdated() {
	c.mu.Lock()
	close(c.updated)
	c.updated = make(chan struct{})
	c.mu.Unlock()
}

// updateCh returns a channel closed on the next registry change.
func (c *Client) updateCh() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updated
}

func (c *Client) logMessage(msg wire.Message, dir log.Direction) {
	c.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connID,
		Direction:    dir,
		Layer:        log.LayerWire,
		Category:     log.CategoryMessage,
		Device:       msg.Device,
		Message: &log.MessageEvent{
			Type:     msg.Type,
			Property: msg.Property,
			State:    msg.State,
			Elements: len(msg.Elements),
		},
	})
}

func (c *Client) logStateChange(oldState, newState, reason string) {
	c.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connID,
		Layer:        log.LayerClient,
		Category:     log.CategoryState,
		StateChange: &log.StateChangeEvent{
			OldState: oldState,
			NewState: newState,
			Reason:   reason,
		},
	})
}

func (c *Client) logError(text string) {
	c.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connID,
		Direction:    log.DirectionIn,
		Layer:        log.LayerClient,
		Category:     log.CategoryError,
		Error: &log.ErrorEventData{
			Layer:   log.LayerClient,
			Message: text,
		},
	})
}

// wireToElements converts wire elements to registry elements.
func wireToElements(els []wire.Element) []property.Element {
	out := make([]property.Element, len(els))
	for i, el := range els {
		out[i] = property.Element{
			Name:   el.Name,
			Label:  el.Label,
			On:     el.Switch,
			Number: el.Number,
			Text:   el.Text,
		}
	}
	return out
}
