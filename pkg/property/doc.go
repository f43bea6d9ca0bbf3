// Package property implements the client-side data model of the
// property-vector device protocol: named properties holding vectors of
// switch, number, or text elements, each with an asynchronous
// completion state (Idle/Busy/Ok/Alert).
//
// Properties are ephemeral. They are defined, updated, and deleted by
// protocol events received from the device server; higher layers must
// never cache them across connections. The Registry owns the device
// and property instances for one connection.
package property
