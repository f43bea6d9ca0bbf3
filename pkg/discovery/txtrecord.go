package discovery

import (
	"fmt"
	"strings"

	"github.com/skypoint-project/skypoint-go/pkg/version"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// EncodeServiceTXT creates TXT records for a property server announcement.
func EncodeServiceTXT(svc *Service) TXTRecordMap {
	txt := make(TXTRecordMap)

	if svc.Driver != "" {
		txt[TXTKeyDriver] = svc.Driver
	}
	if len(svc.Devices) > 0 {
		txt[TXTKeyDevices] = strings.Join(svc.Devices, ",")
	}
	if svc.Version != "" {
		txt[TXTKeyVersion] = svc.Version
	} else {
		txt[TXTKeyVersion] = version.Current
	}

	return txt
}

// DecodeServiceTXT parses TXT records from a property server announcement.
// All keys are optional: a server that advertises nothing is still usable,
// callers just have to probe it for devices.
func DecodeServiceTXT(txt TXTRecordMap, svc *Service) {
	svc.Driver = txt[TXTKeyDriver]
	svc.Version = txt[TXTKeyVersion]

	if devs, ok := txt[TXTKeyDevices]; ok && devs != "" {
		for _, d := range strings.Split(devs, ",") {
			d = strings.TrimSpace(d)
			if d != "" {
				svc.Devices = append(svc.Devices, d)
			}
		}
	}
}

// TXTRecordsToStrings converts a TXTRecordMap to a slice of "key=value" strings.
// This format is commonly used by mDNS libraries.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for k, v := range txt {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}

// StringsToTXTRecords parses a slice of "key=value" strings into a TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) == 2 {
			txt[parts[0]] = parts[1]
		} else if len(parts) == 1 && parts[0] != "" {
			// Key without value (boolean flag)
			txt[parts[0]] = ""
		}
	}
	return txt
}
