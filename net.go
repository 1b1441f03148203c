// Package net implements the protocol-decoding core of a network stack:
// codecs that turn raw byte buffers from a link-layer driver into typed
// protocol structures (ethernet frame headers and ARP packets), and a
// concurrency-safe cache of address bindings learned from resolution
// traffic.
//
// The package performs no I/O of its own. Buffers arrive from a driver,
// decoded payloads are handed to whichever higher layer is registered for
// their protocol type, and generated frames leave through a FrameWriter.
// Checksum validation, fragmentation, and routing are the business of
// those collaborators, not of this package.
package net

import (
	"github.com/progbits/xv6-net/internal/errors"
)

// A Header is a fixed-layout protocol unit decoded from a byte buffer.
//
// EncodedLen reports the number of bytes the unit occupies in its encoded
// form, independent of the buffer it was decoded from. A caller chaining
// protocol layers uses it to advance a cursor past the unit to the
// payload that follows.
type Header interface {
	EncodedLen() int
}

// A FrameWriter is the transmit half of a link-layer driver. WriteFrame
// writes a single encoded frame, header and payload both supplied by the
// caller.
//
// Implementations must be safe for concurrent access.
type FrameWriter interface {
	WriteFrame(b []byte) error
}

// IsTooShort returns true if err indicates that a buffer was too short to
// hold the protocol unit being decoded. Too-short errors are recoverable:
// the caller drops the truncated frame and carries on.
func IsTooShort(err error) bool {
	return errors.IsTooShort(err)
}
