package net

import (
	"github.com/progbits/xv6-net/internal/errors"
)

// An ARPResponder consumes resolution-layer traffic on behalf of a host.
// It learns the sender binding of every valid packet into its cache and
// answers requests for the host's own protocol address by writing an
// encoded reply frame to the underlying driver.
//
// An ARPResponder is safe for concurrent access if its FrameWriter is.
type ARPResponder struct {
	mac   MAC
	ip    IPv4
	cache *ARPCache
	w     FrameWriter
}

// NewARPResponder creates an ARPResponder answering for the host with the
// given hardware and protocol addresses. Learned bindings are inserted
// into cache; replies are written to w.
func NewARPResponder(mac MAC, ip IPv4, cache *ARPCache, w FrameWriter) *ARPResponder {
	if cache == nil || w == nil {
		panic("new arp responder with nil cache or writer")
	}
	return &ARPResponder{mac: mac, ip: ip, cache: cache, w: w}
}

// Cache returns the responder's cache.
func (a *ARPResponder) Cache() *ARPCache {
	return a.cache
}

// HandlePacket decodes one ARP packet from payload and acts on it.
// Packets that are not ethernet/IPv4 resolution, carry unexpected address
// lengths, or have an unknown operation are ignored without error. It is
// a FrameHandler suitable for registration under EtherTypeARP.
func (a *ARPResponder) HandlePacket(hdr EthernetHeader, payload []byte) error {
	pkt, err := ParseARPPacket(payload)
	if err != nil {
		return errors.Annotate(err, "handle arp packet")
	}
	if pkt.HType != ARPHardwareEthernet || pkt.PType != ARPProtocolIPv4 ||
		pkt.HLen != 6 || pkt.PLen != 4 {
		return nil
	}

	a.cache.Insert(pkt.SHA, pkt.SPA)

	if pkt.Op != ARPOpRequest || pkt.TPA != a.ip {
		return nil
	}
	return a.reply(pkt)
}

// reply encodes and transmits one frame answering request.
func (a *ARPResponder) reply(request ARPPacket) error {
	b := make([]byte, EthernetHeaderLen+ARPPacketLen)
	eh := EthernetHeader{
		Dst:  request.SHA,
		Src:  a.mac,
		Type: EtherTypeARP,
	}
	if err := WriteEthernetHeader(eh, b); err != nil {
		return errors.Annotate(err, "arp reply")
	}
	if err := WriteARPPacket(ARPReply(request, a.mac), b[EthernetHeaderLen:]); err != nil {
		return errors.Annotate(err, "arp reply")
	}
	return errors.Annotate(a.w.WriteFrame(b), "arp reply")
}
