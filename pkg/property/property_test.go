package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConnectionProperty() *Property {
	return NewProperty("CONNECTION", KindSwitch, StateIdle, []Element{
		{Name: "CONNECT", Label: "Connect"},
		{Name: "DISCONNECT", Label: "Disconnect", On: true},
	})
}

func TestProperty_ElementLookup(t *testing.T) {
	prop := newConnectionProperty()

	el, err := prop.Element("DISCONNECT")
	require.NoError(t, err)
	assert.True(t, el.On)

	_, err = prop.Element("NO_SUCH")
	assert.ErrorIs(t, err, ErrElementNotFound)
}

func TestProperty_ElementsReturnsCopy(t *testing.T) {
	prop := newConnectionProperty()

	els := prop.Elements()
	els[0].On = true

	el, err := prop.Element("CONNECT")
	require.NoError(t, err)
	assert.False(t, el.On, "mutating the snapshot must not affect the property")
}

func TestProperty_ApplyMergesByName(t *testing.T) {
	prop := newConnectionProperty()

	prop.Apply(StateBusy, []Element{{Name: "CONNECT", On: true}})

	assert.Equal(t, StateBusy, prop.State())
	assert.True(t, prop.SwitchOn("CONNECT"))
	// DISCONNECT keeps its previous value; Apply only touches named elements.
	assert.True(t, prop.SwitchOn("DISCONNECT"))
}

func TestProperty_ApplyAppendsUnknownElements(t *testing.T) {
	prop := NewProperty("SLEW_RATE", KindSwitch, StateIdle, nil)

	prop.Apply(StateOk, []Element{
		{Name: "SLEW_GUIDE", On: true},
		{Name: "SLEW_MAX"},
	})

	assert.Equal(t, []string{"SLEW_GUIDE", "SLEW_MAX"}, prop.ElementNames())
}

func TestDevice_Connected(t *testing.T) {
	dev := NewDevice("Telescope Simulator")
	assert.False(t, dev.Connected(), "no CONNECTION property yet")

	dev.Define(newConnectionProperty())
	assert.False(t, dev.Connected())

	prop, err := dev.Property("CONNECTION")
	require.NoError(t, err)
	prop.Apply(StateOk, []Element{
		{Name: "CONNECT", On: true},
		{Name: "DISCONNECT"},
	})
	assert.True(t, dev.Connected())
}

func TestDevice_IsMount(t *testing.T) {
	assert.True(t, NewDevice("Telescope Simulator").IsMount())
	assert.True(t, NewDevice("EQMod Mount").IsMount())
	assert.True(t, NewDevice("LX200 GPS").IsMount())
	assert.False(t, NewDevice("CCD Simulator").IsMount())
}

func TestRegistry_EnsureAndRemove(t *testing.T) {
	reg := NewRegistry()

	dev := reg.Ensure("Telescope Simulator")
	assert.Same(t, dev, reg.Ensure("Telescope Simulator"))
	assert.Same(t, dev, reg.Device("Telescope Simulator"))

	reg.Remove("Telescope Simulator")
	assert.Nil(t, reg.Device("Telescope Simulator"))
}

func TestRegistry_FindMount(t *testing.T) {
	reg := NewRegistry()
	reg.Ensure("CCD Simulator")
	scope := reg.Ensure("Telescope Simulator")

	assert.Same(t, scope, reg.FindMount("auto"))
	assert.Same(t, scope, reg.FindMount(""))
	assert.Same(t, scope, reg.FindMount("Telescope Simulator"))
	assert.Nil(t, reg.FindMount("LX200 GPS"), "explicit name must not fall back to keyword match")
}
