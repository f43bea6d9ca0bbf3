package property

import (
	"strings"
	"sync"
)

// Device holds the property vectors of one remote device. Instances
// are created and torn down by the protocol client as devices appear
// on and disappear from the connection.
type Device struct {
	mu sync.RWMutex

	name       string
	properties map[string]*Property
}

// NewDevice creates an empty device with the given name.
func NewDevice(name string) *Device {
	return &Device{
		name:       name,
		properties: make(map[string]*Property),
	}
}

// Name returns the device name.
func (d *Device) Name() string {
	return d.name
}

// Property returns the named property vector.
func (d *Device) Property(name string) (*Property, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	prop, ok := d.properties[name]
	if !ok {
		return nil, ErrPropertyNotFound
	}
	return prop, nil
}

// Define registers or replaces a property vector.
func (d *Device) Define(prop *Property) {
	d.mu.Lock()
	d.properties[prop.Name()] = prop
	d.mu.Unlock()
}

// Remove deletes a property vector.
func (d *Device) Remove(name string) {
	d.mu.Lock()
	delete(d.properties, name)
	d.mu.Unlock()
}

// PropertyNames returns the names of all defined properties.
func (d *Device) PropertyNames() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.properties))
	for name := range d.properties {
		names = append(names, name)
	}
	return names
}

// Connected reports whether the device's CONNECTION switch shows the
// CONNECT element ON.
func (d *Device) Connected() bool {
	prop, err := d.Property("CONNECTION")
	if err != nil {
		return false
	}
	return prop.SwitchOn("CONNECT")
}

// mountKeywords identify telescope mount devices during automatic
// device binding.
var mountKeywords = []string{"telescope", "mount", "eqmod", "lx200"}

// IsMount reports whether the device name looks like a telescope
// mount. Used when the configured device name is "auto".
func (d *Device) IsMount() bool {
	name := strings.ToLower(d.name)
	for _, kw := range mountKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// Registry tracks the devices visible on one connection. It is the
// single owner of all Device instances for that connection.
type Registry struct {
	mu sync.RWMutex

	devices map[string]*Device
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		devices: make(map[string]*Device),
	}
}

// Device returns the named device, or nil if unknown.
func (r *Registry) Device(name string) *Device {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.devices[name]
}

// Ensure returns the named device, creating it if needed.
func (r *Registry) Ensure(name string) *Device {
	r.mu.Lock()
	defer r.mu.Unlock()

	dev, ok := r.devices[name]
	if !ok {
		dev = NewDevice(name)
		r.devices[name] = dev
	}
	return dev
}

// Remove forgets a device and all its properties.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	delete(r.devices, name)
	r.mu.Unlock()
}

// Devices returns a snapshot of all known devices.
func (r *Registry) Devices() []*Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Device, 0, len(r.devices))
	for _, dev := range r.devices {
		out = append(out, dev)
	}
	return out
}

// FindMount returns the first device that looks like a telescope
// mount, or the named device when name is not "auto" or empty.
func (r *Registry) FindMount(name string) *Device {
	if name != "" && name != "auto" {
		return r.Device(name)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, dev := range r.devices {
		if dev.IsMount() {
			return dev
		}
	}
	return nil
}
