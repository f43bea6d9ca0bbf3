package discovery

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/skypoint-project/skypoint-go/pkg/version"
)

// Service type and domain constants.
const (
	// ServiceType is the mDNS service type for SkyPoint property servers.
	ServiceType = "_skypoint._tcp"

	// Domain is the mDNS domain.
	Domain = "local."

	// DefaultPort is the default property server port.
	DefaultPort = 7624

	// DefaultBrowseTimeout bounds a single discovery pass.
	DefaultBrowseTimeout = 10 * time.Second
)

// TXT record keys advertised by property servers.
const (
	// TXTKeyDriver names the driver software (e.g. "indiserver").
	TXTKeyDriver = "drv"

	// TXTKeyDevices is a comma-separated list of device names the
	// server exposes.
	TXTKeyDevices = "dev"

	// TXTKeyVersion is the protocol version.
	TXTKeyVersion = "ver"
)

// Discovery errors.
var (
	// ErrNotFound indicates no matching service was found.
	ErrNotFound = errors.New("service not found")

	// ErrBrowseFailed indicates the mDNS browse could not start.
	ErrBrowseFailed = errors.New("browse failed")
)

// Service describes a discovered property server.
type Service struct {
	// InstanceName is the mDNS instance name.
	InstanceName string

	// Host is the advertised hostname.
	Host string

	// Port is the TCP port.
	Port uint16

	// Addresses are the resolved IP addresses (IPv4 and IPv6).
	Addresses []string

	// Driver is the advertised driver name, if any.
	Driver string

	// Devices are the device names the server claims to expose.
	Devices []string

	// Version is the advertised protocol version, if any.
	Version string
}

// Addr returns a dialable "host:port" address, preferring a resolved
// IPv4 address over the advertised hostname.
func (s *Service) Addr() string {
	port := strconv.Itoa(int(s.Port))
	for _, a := range s.Addresses {
		ip := net.ParseIP(a)
		if ip != nil && ip.To4() != nil {
			return net.JoinHostPort(a, port)
		}
	}
	if len(s.Addresses) > 0 {
		return net.JoinHostPort(s.Addresses[0], port)
	}
	return net.JoinHostPort(strings.TrimSuffix(s.Host, "."), port)
}

// CompatibleVersion reports whether the advertised protocol version
// is compatible with this library. Servers that advertise no version
// are assumed compatible.
func (s *Service) CompatibleVersion() bool {
	if s.Version == "" {
		return true
	}
	advertised, err := version.Parse(s.Version)
	if err != nil {
		return false
	}
	current, _ := version.Parse(version.Current)
	return advertised.Compatible(current)
}

// HasDevice reports whether the server advertises the named device.
// Matching is case-insensitive.
func (s *Service) HasDevice(name string) bool {
	for _, d := range s.Devices {
		if strings.EqualFold(d, name) {
			return true
		}
	}
	return false
}
