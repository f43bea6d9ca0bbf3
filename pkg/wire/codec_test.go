package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_SetSwitch(t *testing.T) {
	msg := &Message{
		Type:     MsgSetProperty,
		Device:   "Telescope Simulator",
		Property: "COORD_SET_BEHAVIOR",
		Kind:     1,
		Elements: []Element{
			{Name: "SYNC", Switch: true},
			{Name: "TRACK"},
			{Name: "SLEW"},
		},
	}

	data, err := Encode(msg)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, msg.Type, decoded.Type)
	assert.Equal(t, msg.Device, decoded.Device)
	assert.Equal(t, msg.Property, decoded.Property)
	require.Len(t, decoded.Elements, 3)
	assert.True(t, decoded.Elements[0].Switch)
	assert.False(t, decoded.Elements[1].Switch)
	assert.False(t, decoded.Elements[2].Switch)
}

func TestEncodeDecode_NumberUpdate(t *testing.T) {
	msg := &Message{
		Type:     MsgUpdateProperty,
		Device:   "Telescope Simulator",
		Property: "EQUATORIAL_COORD",
		State:    1, // busy: slew in progress
		Elements: []Element{
			{Name: "RA", Number: 1.0333},
			{Name: "DEC", Number: -20.3},
		},
	}

	data, err := Encode(msg)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, MsgUpdateProperty, decoded.Type)
	assert.Equal(t, uint8(1), decoded.State)
	assert.InDelta(t, 1.0333, decoded.Elements[0].Number, 1e-9)
	assert.InDelta(t, -20.3, decoded.Elements[1].Number, 1e-9)
}

func TestEncode_Deterministic(t *testing.T) {
	msg := &Message{
		Type:     MsgDefineProperty,
		Device:   "Telescope Simulator",
		Property: "ABORT_MOTION",
		Kind:     1,
		Elements: []Element{{Name: "ABORT", Label: "Abort motion"}},
	}

	a, err := Encode(msg)
	require.NoError(t, err)
	b, err := Encode(msg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name string
		msg  Message
	}{
		{"unknown type", Message{Type: 99}},
		{"set without device", Message{Type: MsgSetProperty, Property: "ABORT_MOTION"}},
		{"set without property", Message{Type: MsgSetProperty, Device: "scope"}},
		{"define with bad kind", Message{Type: MsgDefineProperty, Device: "scope", Property: "X", Kind: 9}},
		{"bad state", Message{Type: MsgUpdateProperty, Device: "scope", Property: "X", State: 7}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Encode(&tc.msg)
			assert.Error(t, err)
		})
	}
}

func TestValidate_GetPropertiesNeedsNoDevice(t *testing.T) {
	msg := &Message{Type: MsgGetProperties}
	assert.NoError(t, msg.Validate())
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode([]byte{0xff, 0x00, 0x13})
	assert.Error(t, err)
}
