// Package discovery locates SkyPoint property servers on the local
// network via mDNS (zeroconf).
//
// Property servers advertise a `_skypoint._tcp` service whose TXT
// records name the driver and the devices it exposes. The Browser
// aggregates announcements from multiple interfaces into one entry
// per instance name, so callers see each server once regardless of
// how many addresses it is reachable on.
package discovery
