// Package transport provides the TCP transport for the SkyPoint
// property protocol: length-prefixed frames carrying CBOR messages.
//
// The transport is single-owner: one connection is held by exactly one
// property client, which serializes all writes. Property servers are
// typically on a trusted local network; the transport is plaintext TCP.
package transport
