// Package client implements the SkyPoint property protocol client.
//
// A Client owns one TCP connection to a property server. A background
// read loop decodes incoming messages into a property.Registry, which
// mirrors the server's device and property state. Writes are
// fire-and-forget: a successful send means the message reached the
// socket, and the eventual outcome shows up asynchronously as a
// property state transition in the registry.
package client
