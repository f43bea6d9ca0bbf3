// Package driver implements the mount.Adapter contract on top of the
// SkyPoint property protocol client. It maps the small domain
// vocabulary (sync, goto, stop, nudge) onto the asynchronous
// vector-property surface of a remote mount driver.
package driver
