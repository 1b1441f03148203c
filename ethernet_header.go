package net

import (
	"github.com/progbits/xv6-net/internal/errors"
	"github.com/progbits/xv6-net/internal/parse"
)

// EthernetHeaderLen is the length in bytes of an ethernet frame header.
const EthernetHeaderLen = 14

// An EthernetHeader is the header of a single link-layer frame: the
// destination and source hardware addresses followed by the protocol type
// of the encapsulated payload. It is immutable once decoded.
type EthernetHeader struct {
	Dst, Src MAC
	Type     EtherType
}

// EncodedLen returns the number of bytes eh occupies on the wire.
func (eh EthernetHeader) EncodedLen() int {
	return EthernetHeaderLen
}

// ParseEthernetHeader decodes the 14-byte link-layer header at the front
// of b: destination address, source address, and a big-endian protocol
// type. Unrecognized protocol types decode to EtherTypeUnknown. If b is
// shorter than EthernetHeaderLen, ParseEthernetHeader returns an error
// for which IsTooShort returns true.
func ParseEthernetHeader(b []byte) (EthernetHeader, error) {
	if len(b) < EthernetHeaderLen {
		return EthernetHeader{}, errors.Annotate(
			errors.NewTooShort(EthernetHeaderLen, len(b)), "parse ethernet header")
	}

	var eh EthernetHeader
	copy(eh.Dst[:], parse.GetBytes(&b, 6))
	copy(eh.Src[:], parse.GetBytes(&b, 6))
	eh.Type = etherTypeFromWire(parse.GetUint16(&b))
	return eh, nil
}

// WriteEthernetHeader encodes eh into the first EthernetHeaderLen bytes
// of b. If b is too short to hold the header, WriteEthernetHeader returns
// an error for which IsTooShort returns true.
func WriteEthernetHeader(eh EthernetHeader, b []byte) error {
	if len(b) < EthernetHeaderLen {
		return errors.Annotate(
			errors.NewTooShort(EthernetHeaderLen, len(b)), "write ethernet header")
	}

	copy(parse.GetBytes(&b, 6), eh.Dst[:])
	copy(parse.GetBytes(&b, 6), eh.Src[:])
	parse.PutUint16(&b, uint16(eh.Type))
	return nil
}
