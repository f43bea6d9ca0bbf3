package wire

import (
	"fmt"
)

// CBOR map keys for message encoding.
// All SkyPoint messages use integer keys for efficiency.
const (
	KeyType     = 1
	KeyDevice   = 2
	KeyProperty = 3
	KeyKind     = 4
	KeyState    = 5
	KeyElements = 6
	KeyText     = 7
)

// MsgType identifies a protocol message.
type MsgType uint8

const (
	// MsgGetProperties asks the server to (re)send all property
	// definitions, optionally scoped to one device.
	MsgGetProperties MsgType = 1

	// MsgDefineProperty announces a property vector and its elements.
	MsgDefineProperty MsgType = 2

	// MsgSetProperty writes element values (client to server).
	MsgSetProperty MsgType = 3

	// MsgUpdateProperty reports element values and a state transition
	// (server to client).
	MsgUpdateProperty MsgType = 4

	// MsgDeleteProperty withdraws a property, or a whole device when
	// the property name is empty.
	MsgDeleteProperty MsgType = 5

	// MsgMessage carries a free-form log line from a device.
	MsgMessage MsgType = 6
)

// String returns the message type name.
func (t MsgType) String() string {
	switch t {
	case MsgGetProperties:
		return "getProperties"
	case MsgDefineProperty:
		return "defineProperty"
	case MsgSetProperty:
		return "setProperty"
	case MsgUpdateProperty:
		return "updateProperty"
	case MsgDeleteProperty:
		return "deleteProperty"
	case MsgMessage:
		return "message"
	default:
		return "unknown"
	}
}

// IsValid reports whether t is a known message type.
func (t MsgType) IsValid() bool {
	return t >= MsgGetProperties && t <= MsgMessage
}

// Element is one member of a property vector on the wire. Which value
// field is meaningful is determined by the enclosing message's Kind.
//
// CBOR encoding:
//
//	{
//	  1: name,    // tstr
//	  2: label,   // tstr, optional
//	  3: switch,  // bool, switch vectors
//	  4: number,  // float64, number vectors
//	  5: text     // tstr, text vectors
//	}
type Element struct {
	Name   string  `cbor:"1,keyasint"`
	Label  string  `cbor:"2,keyasint,omitempty"`
	Switch bool    `cbor:"3,keyasint,omitempty"`
	Number float64 `cbor:"4,keyasint,omitempty"`
	Text   string  `cbor:"5,keyasint,omitempty"`
}

// Message is the single wire message shape. Fields beyond Type are
// optional depending on the message type.
//
// CBOR encoding:
//
//	{
//	  1: type,      // uint8
//	  2: device,    // tstr
//	  3: property,  // tstr
//	  4: kind,      // uint8: 1=switch, 2=number, 3=text
//	  5: state,     // uint8: 0=idle, 1=busy, 2=ok, 3=alert
//	  6: elements,  // array of Element
//	  7: text       // tstr: device log line
//	}
type Message struct {
	Type     MsgType   `cbor:"1,keyasint"`
	Device   string    `cbor:"2,keyasint,omitempty"`
	Property string    `cbor:"3,keyasint,omitempty"`
	Kind     uint8     `cbor:"4,keyasint,omitempty"`
	State    uint8     `cbor:"5,keyasint,omitempty"`
	Elements []Element `cbor:"6,keyasint,omitempty"`
	Text     string    `cbor:"7,keyasint,omitempty"`
}

// Validate checks structural requirements per message type.
func (m *Message) Validate() error {
	if !m.Type.IsValid() {
		return fmt.Errorf("invalid message type: %d", m.Type)
	}

	switch m.Type {
	case MsgDefineProperty, MsgSetProperty, MsgUpdateProperty:
		if m.Device == "" {
			return fmt.Errorf("%s: device name required", m.Type)
		}
		if m.Property == "" {
			return fmt.Errorf("%s: property name required", m.Type)
		}
	case MsgDeleteProperty, MsgMessage:
		if m.Device == "" {
			return fmt.Errorf("%s: device name required", m.Type)
		}
	}

	if m.Type == MsgDefineProperty && (m.Kind < 1 || m.Kind > 3) {
		return fmt.Errorf("defineProperty: invalid element kind: %d", m.Kind)
	}
	if m.State > 3 {
		return fmt.Errorf("%s: invalid state: %d", m.Type, m.State)
	}

	return nil
}
