// Package wire implements the CBOR encoding of property-protocol
// messages exchanged between a SkyPoint client and a device server.
//
// All messages are CBOR maps with integer keys, encoded
// deterministically. Writes are fire-and-forget: a SetProperty message
// carries no reply; the server reports the outcome asynchronously via
// UpdateProperty messages that transition the property state.
package wire
