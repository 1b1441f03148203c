package net

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/progbits/xv6-net/internal/errors"
)

// MAC is an ethernet media access control address. MACs are comparable
// with == and totally ordered by Compare, so they can key an ordered
// mapping.
type MAC [6]byte

// BroadcastMAC is the broadcast MAC address.
var BroadcastMAC = MAC{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

// ParseMAC parses s as a colon-separated MAC address such as
// "aa:bb:cc:dd:ee:ff".
func ParseMAC(s string) (MAC, error) {
	var mac MAC
	parts := strings.Split(s, ":")
	if len(parts) != 6 {
		return MAC{}, errors.Errorf("parse mac address %q: unexpected number of octets: %v", s, len(parts))
	}
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return MAC{}, errors.Annotatef(err, "parse mac address %q", s)
		}
		mac[i] = byte(n)
	}
	return mac, nil
}

// Compare returns -1, 0, or 1 depending on whether m is less than, equal
// to, or greater than other in bytewise order.
func (m MAC) Compare(other MAC) int {
	return bytes.Compare(m[:], other[:])
}

func (m MAC) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", m[0], m[1], m[2], m[3], m[4], m[5])
}

// EtherType is a value of 1536 or greater which indicates
// the protocol type of a packet encapsulated in an ethernet frame.
type EtherType uint16

const (
	EtherTypeIPv4      EtherType = 0x0800
	EtherTypeARP       EtherType = 0x0806
	EtherTypeWakeOnLAN EtherType = 0x0842
	EtherTypeRARP      EtherType = 0x8035
	EtherTypeSLPP      EtherType = 0x8103
	EtherTypeIPv6      EtherType = 0x86DD
	// EtherTypeUnknown tags wire values outside the set above.
	// 0xFFFF is reserved by IEEE 802.3 and never assigned.
	EtherTypeUnknown EtherType = 0xFFFF
)

// etherTypeFromWire maps a wire value to its named EtherType.
// Unrecognized values map to EtherTypeUnknown.
func etherTypeFromWire(v uint16) EtherType {
	switch et := EtherType(v); et {
	case EtherTypeIPv4, EtherTypeARP, EtherTypeWakeOnLAN,
		EtherTypeRARP, EtherTypeSLPP, EtherTypeIPv6:
		return et
	default:
		return EtherTypeUnknown
	}
}

func (et EtherType) String() string {
	switch et {
	case EtherTypeIPv4:
		return "IPv4"
	case EtherTypeARP:
		return "ARP"
	case EtherTypeWakeOnLAN:
		return "Wake-on-LAN"
	case EtherTypeRARP:
		return "RARP"
	case EtherTypeSLPP:
		return "SLPP"
	case EtherTypeIPv6:
		return "IPv6"
	default:
		return fmt.Sprintf("unknown (0x%04X)", uint16(et))
	}
}

// A FrameHandler consumes the payload of one decoded frame. The payload
// slice aliases the frame buffer and is only valid for the duration of
// the call.
type FrameHandler func(hdr EthernetHeader, payload []byte) error

// A Demux dispatches received link-layer frames to per-EtherType
// handlers. The zero value is an empty Demux ready for use.
//
// A Demux is safe for concurrent access.
type Demux struct {
	handlers map[EtherType]FrameHandler
	dropped  uint64

	mu sync.RWMutex
}

// Register installs h as the handler for et, replacing any previously
// registered handler. A nil h removes the registration.
func (d *Demux) Register(et EtherType, h FrameHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.handlers == nil {
		d.handlers = make(map[EtherType]FrameHandler)
	}
	if h == nil {
		delete(d.handlers, et)
		return
	}
	d.handlers[et] = h
}

// HandleFrame decodes the link-layer header at the front of b and hands
// the remaining payload to the handler registered for the frame's
// protocol type. Frames with no registered handler are dropped silently;
// frames too short to carry a header are dropped and reported with an
// error for which IsTooShort returns true.
func (d *Demux) HandleFrame(b []byte) error {
	hdr, err := ParseEthernetHeader(b)
	if err != nil {
		d.drop()
		return errors.Annotate(err, "demux frame")
	}

	d.mu.RLock()
	h := d.handlers[hdr.Type]
	d.mu.RUnlock()
	if h == nil {
		d.drop()
		return nil
	}
	// the handler runs outside the lock so that it may call Register
	return h(hdr, b[hdr.EncodedLen():])
}

// Dropped returns the number of frames dropped because they were
// truncated or carried a protocol type with no registered handler.
func (d *Demux) Dropped() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.dropped
}

func (d *Demux) drop() {
	d.mu.Lock()
	d.dropped++
	d.mu.Unlock()
}
