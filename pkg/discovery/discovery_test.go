package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceAddr_PrefersIPv4(t *testing.T) {
	svc := &Service{
		Host:      "scope.local.",
		Port:      7624,
		Addresses: []string{"fe80::1", "192.168.1.40"},
	}
	assert.Equal(t, "192.168.1.40:7624", svc.Addr())
}

func TestServiceAddr_FallsBackToHost(t *testing.T) {
	svc := &Service{Host: "scope.local.", Port: 7624}
	assert.Equal(t, "scope.local:7624", svc.Addr())
}

func TestServiceHasDevice(t *testing.T) {
	svc := &Service{Devices: []string{"EQMod Mount", "CCD Simulator"}}
	assert.True(t, svc.HasDevice("eqmod mount"))
	assert.False(t, svc.HasDevice("Telescope Simulator"))
}

func TestServiceCompatibleVersion(t *testing.T) {
	assert.True(t, (&Service{}).CompatibleVersion())
	assert.True(t, (&Service{Version: "1.0"}).CompatibleVersion())
	assert.True(t, (&Service{Version: "1.4"}).CompatibleVersion())
	assert.False(t, (&Service{Version: "2.0"}).CompatibleVersion())
	assert.False(t, (&Service{Version: "garbage"}).CompatibleVersion())
}

func TestTXTRoundTrip(t *testing.T) {
	svc := &Service{
		Driver:  "indiserver",
		Devices: []string{"EQMod Mount", "CCD Simulator"},
		Version: "1.0",
	}

	strs := TXTRecordsToStrings(EncodeServiceTXT(svc))

	var decoded Service
	DecodeServiceTXT(StringsToTXTRecords(strs), &decoded)
	assert.Equal(t, svc.Driver, decoded.Driver)
	assert.Equal(t, svc.Devices, decoded.Devices)
	assert.Equal(t, svc.Version, decoded.Version)
}

func TestDecodeServiceTXT_Empty(t *testing.T) {
	var svc Service
	DecodeServiceTXT(TXTRecordMap{}, &svc)
	assert.Empty(t, svc.Devices)
	assert.Empty(t, svc.Driver)
}

func TestStringsToTXTRecords(t *testing.T) {
	txt := StringsToTXTRecords([]string{"drv=indiserver", "flag", "dev=EQMod Mount"})
	assert.Equal(t, "indiserver", txt["drv"])
	assert.Equal(t, "", txt["flag"])
	assert.Equal(t, "EQMod Mount", txt["dev"])
}

func TestMergeAddresses(t *testing.T) {
	got := mergeAddresses([]string{"192.168.1.40"}, []string{"192.168.1.40", "fe80::1"})
	assert.Equal(t, []string{"192.168.1.40", "fe80::1"}, got)
}
