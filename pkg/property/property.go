package property

import (
	"errors"
	"sync"
)

// Property errors.
var (
	ErrElementNotFound  = errors.New("element not found")
	ErrPropertyNotFound = errors.New("property not found")
)

// Element is one member of a property vector. Exactly one of the value
// fields is meaningful, selected by the owning vector's Kind.
type Element struct {
	// Name is the protocol-level element name (e.g. "CONNECT").
	Name string

	// Label is the optional human-readable label.
	Label string

	// On is the value for switch elements.
	On bool

	// Number is the value for numeric elements.
	Number float64

	// Text is the value for text elements.
	Text string
}

// Property represents a named vector of elements with a completion
// state. It is safe for concurrent use: the protocol read loop updates
// it while the controller task reads it.
type Property struct {
	mu sync.RWMutex

	name     string
	kind     Kind
	state    State
	elements []Element
}

// NewProperty creates a property with the given definition. The
// element order is preserved as defined by the device.
func NewProperty(name string, kind Kind, state State, elements []Element) *Property {
	p := &Property{
		name:     name,
		kind:     kind,
		state:    state,
		elements: make([]Element, len(elements)),
	}
	copy(p.elements, elements)
	return p
}

// Name returns the property name.
func (p *Property) Name() string {
	return p.name
}

// Kind returns the element kind of the vector.
func (p *Property) Kind() Kind {
	return p.kind
}

// State returns the current completion state.
func (p *Property) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// SetState updates the completion state.
func (p *Property) SetState(state State) {
	p.mu.Lock()
	p.state = state
	p.mu.Unlock()
}

// Elements returns a copy of the element vector.
func (p *Property) Elements() []Element {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]Element, len(p.elements))
	copy(out, p.elements)
	return out
}

// Element returns the element with the given name.
func (p *Property) Element(name string) (Element, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, el := range p.elements {
		if el.Name == name {
			return el, nil
		}
	}
	return Element{}, ErrElementNotFound
}

// ElementNames returns the element names in vector order.
func (p *Property) ElementNames() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	names := make([]string, len(p.elements))
	for i, el := range p.elements {
		names[i] = el.Name
	}
	return names
}

// SwitchOn reports whether the named switch element is ON.
func (p *Property) SwitchOn(name string) bool {
	el, err := p.Element(name)
	return err == nil && el.On
}

// Apply merges a state transition and element value update received
// from the device. Elements are matched by name; unknown elements are
// appended so a sparse definition still converges on the full vector.
func (p *Property) Apply(state State, elements []Element) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state = state
	for _, update := range elements {
		found := false
		for i := range p.elements {
			if p.elements[i].Name == update.Name {
				p.elements[i].On = update.On
				p.elements[i].Number = update.Number
				p.elements[i].Text = update.Text
				if update.Label != "" {
					p.elements[i].Label = update.Label
				}
				found = true
				break
			}
		}
		if !found {
			p.elements = append(p.elements, update)
		}
	}
}
