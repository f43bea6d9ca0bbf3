package client

import (
	"context"
	"fmt"
	"time"

	"github.com/skypoint-project/skypoint-go/pkg/property"
	"github.com/skypoint-project/skypoint-go/pkg/wire"
)

// GetProperties asks the server to (re)send property definitions.
// An empty device name requests all devices.
func (c *Client) GetProperties(device string) error {
	return c.send(wire.Message{
		Type:   wire.MsgGetProperties,
		Device: device,
	})
}

// SetSwitch writes a switch vector with exactly the named element ON.
// The full vector is sent with every other element OFF, so switch
// groups behave as an exclusive choice regardless of the server's rule
// setting. The property must already be defined in the registry.
func (c *Client) SetSwitch(device, prop, element string) error {
	p, err := c.lookup(device, prop)
	if err != nil {
		return err
	}

	names := p.ElementNames()
	els := make([]wire.Element, len(names))
	found := false
	for i, name := range names {
		els[i] = wire.Element{Name: name, Switch: name == element}
		if name == element {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%s.%s: %w: %s", device, prop, property.ErrElementNotFound, element)
	}

	return c.send(wire.Message{
		Type:     wire.MsgSetProperty,
		Device:   device,
		Property: prop,
		Kind:     uint8(property.KindSwitch),
		Elements: els,
	})
}

// ClearSwitches writes a switch vector with every element OFF. Used to
// release momentary switches such as motion controls.
func (c *Client) ClearSwitches(device, prop string) error {
	p, err := c.lookup(device, prop)
	if err != nil {
		return err
	}

	names := p.ElementNames()
	els := make([]wire.Element, len(names))
	for i, name := range names {
		els[i] = wire.Element{Name: name}
	}

	return c.send(wire.Message{
		Type:     wire.MsgSetProperty,
		Device:   device,
		Property: prop,
		Kind:     uint8(property.KindSwitch),
		Elements: els,
	})
}

// SetNumber writes values into a number vector. Only the named
// elements are sent; the server keeps the rest unchanged.
func (c *Client) SetNumber(device, prop string, values map[string]float64) error {
	if _, err := c.lookup(device, prop); err != nil {
		return err
	}

	els := make([]wire.Element, 0, len(values))
	for name, v := range values {
		els = append(els, wire.Element{Name: name, Number: v})
	}

	return c.send(wire.Message{
		Type:     wire.MsgSetProperty,
		Device:   device,
		Property: prop,
		Kind:     uint8(property.KindNumber),
		Elements: els,
	})
}

// SetText writes values into a text vector.
func (c *Client) SetText(device, prop string, values map[string]string) error {
	if _, err := c.lookup(device, prop); err != nil {
		return err
	}

	els := make([]wire.Element, 0, len(values))
	for name, v := range values {
		els = append(els, wire.Element{Name: name, Text: v})
	}

	return c.send(wire.Message{
		Type:     wire.MsgSetProperty,
		Device:   device,
		Property: prop,
		Kind:     uint8(property.KindText),
		Elements: els,
	})
}

// PollState returns the current completion state of a property.
func (c *Client) PollState(device, prop string) (property.State, error) {
	p, err := c.lookup(device, prop)
	if err != nil {
		return property.StateIdle, err
	}
	return p.State(), nil
}

// WaitForProperty blocks until the named property is defined on the
// device, or the timeout elapses.
func (c *Client) WaitForProperty(ctx context.Context, device, prop string, timeout time.Duration) (*property.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for {
		ch := c.updateCh()

		if dev := c.registry.Device(device); dev != nil {
			if p, err := dev.Property(prop); err == nil {
				return p, nil
			}
		}

		select {
		case <-ch:
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s.%s", ErrWaitTimeout, device, prop)
		}
	}
}

// DiscoverDevice blocks until a device matching the name is defined.
// The name "auto" (or empty) matches the first device that looks like
// a telescope mount.
func (c *Client) DiscoverDevice(ctx context.Context, name string, timeout time.Duration) (*property.Device, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for {
		ch := c.updateCh()

		if dev := c.registry.FindMount(name); dev != nil {
			return dev, nil
		}

		select {
		case <-ch:
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %q", ErrDeviceNotFound, name)
		}
	}
}

// WaitUntil blocks until cond holds for the registry, re-evaluating on
// every protocol update, or the timeout elapses.
func (c *Client) WaitUntil(ctx context.Context, timeout time.Duration, cond func(*property.Registry) bool) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for {
		ch := c.updateCh()

		if cond(c.registry) {
			return nil
		}

		select {
		case <-ch:
		case <-ctx.Done():
			return ErrWaitTimeout
		}
	}
}

// lookup fetches a defined property from the registry.
func (c *Client) lookup(device, prop string) (*property.Property, error) {
	dev := c.registry.Device(device)
	if dev == nil {
		return nil, fmt.Errorf("%w: %q", ErrDeviceNotFound, device)
	}
	p, err := dev.Property(prop)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", device, err, prop)
	}
	return p, nil
}
