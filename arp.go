package net

import (
	"github.com/progbits/xv6-net/internal/errors"
	"github.com/progbits/xv6-net/internal/parse"
)

// ARPPacketLen is the length in bytes of an ARP packet carrying ethernet
// hardware addresses and IPv4 protocol addresses.
const ARPPacketLen = 2 + 2 + 1 + 1 + 2 + 2*6 + 2*4

// ARPHardwareType identifies the link-layer address space of an ARP
// packet.
type ARPHardwareType uint16

const (
	// ARPHardwareUnknown tags hardware types this package does not
	// recognize. 0 is reserved on the wire.
	ARPHardwareUnknown ARPHardwareType = 0
	// ARPHardwareEthernet is the IANA-assigned hardware type for
	// ethernet.
	ARPHardwareEthernet ARPHardwareType = 1
)

// arpHardwareTypeFromWire maps a wire value to its ARPHardwareType.
// Unrecognized values map to ARPHardwareUnknown.
func arpHardwareTypeFromWire(v uint16) ARPHardwareType {
	switch t := ARPHardwareType(v); t {
	case ARPHardwareEthernet:
		return t
	default:
		return ARPHardwareUnknown
	}
}

func (t ARPHardwareType) String() string {
	if t == ARPHardwareEthernet {
		return "ethernet"
	}
	return "unknown"
}

// ARPProtocolType identifies the network-layer address space of an ARP
// packet. Values share the EtherType number space.
type ARPProtocolType uint16

const (
	// ARPProtocolUnknown tags protocol types this package does not
	// recognize.
	ARPProtocolUnknown ARPProtocolType = 0
	// ARPProtocolIPv4 is the protocol type for IPv4.
	ARPProtocolIPv4 ARPProtocolType = 0x0800
)

// arpProtocolTypeFromWire maps a wire value to its ARPProtocolType.
// Unrecognized values map to ARPProtocolUnknown.
func arpProtocolTypeFromWire(v uint16) ARPProtocolType {
	switch t := ARPProtocolType(v); t {
	case ARPProtocolIPv4:
		return t
	default:
		return ARPProtocolUnknown
	}
}

func (t ARPProtocolType) String() string {
	if t == ARPProtocolIPv4 {
		return "ipv4"
	}
	return "unknown"
}

// ARPOperation is the operation code of an ARP packet.
type ARPOperation uint16

// Operation codes defined by RFC 826.
const (
	// ARPOpUnknown tags operations this package does not recognize.
	ARPOpUnknown ARPOperation = 0
	ARPOpRequest ARPOperation = 1
	ARPOpReply   ARPOperation = 2
)

// arpOperationFromWire maps a wire value to its ARPOperation.
// Unrecognized values map to ARPOpUnknown.
func arpOperationFromWire(v uint16) ARPOperation {
	switch op := ARPOperation(v); op {
	case ARPOpRequest, ARPOpReply:
		return op
	default:
		return ARPOpUnknown
	}
}

func (op ARPOperation) String() string {
	switch op {
	case ARPOpRequest:
		return "request"
	case ARPOpReply:
		return "reply"
	default:
		return "unknown"
	}
}

// An ARPPacket is a single address-resolution packet correlating a
// hardware address with a protocol address. Packets are immutable value
// types; a reply is constructed fresh from a request with ARPReply, never
// by mutating the request.
//
// https://en.wikipedia.org/wiki/Address_Resolution_Protocol#Packet_structure
type ARPPacket struct {
	HType ARPHardwareType
	PType ARPProtocolType
	// HLen is 6 and PLen is 4 for ethernet/IPv4 resolution.
	HLen, PLen byte
	Op         ARPOperation
	SHA        MAC
	SPA        IPv4
	THA        MAC
	TPA        IPv4
}

// EncodedLen returns the number of bytes p occupies on the wire.
func (p ARPPacket) EncodedLen() int {
	return ARPPacketLen
}

// ParseARPPacket decodes the ARPPacketLen-byte ARP packet at the front of
// b. Unrecognized hardware types, protocol types, and operations decode
// to their Unknown values rather than failing; a correctly sized buffer
// always decodes. If b is shorter than ARPPacketLen, ParseARPPacket
// returns an error for which IsTooShort returns true.
func ParseARPPacket(b []byte) (ARPPacket, error) {
	if len(b) < ARPPacketLen {
		return ARPPacket{}, errors.Annotate(
			errors.NewTooShort(ARPPacketLen, len(b)), "parse arp packet")
	}

	var p ARPPacket
	p.HType = arpHardwareTypeFromWire(parse.GetUint16(&b))
	p.PType = arpProtocolTypeFromWire(parse.GetUint16(&b))
	p.HLen = parse.GetByte(&b)
	p.PLen = parse.GetByte(&b)
	p.Op = arpOperationFromWire(parse.GetUint16(&b))
	copy(p.SHA[:], parse.GetBytes(&b, 6))
	copy(p.SPA[:], parse.GetBytes(&b, 4))
	copy(p.THA[:], parse.GetBytes(&b, 6))
	copy(p.TPA[:], parse.GetBytes(&b, 4))
	return p, nil
}

// WriteARPPacket encodes p into the first ARPPacketLen bytes of b. If b
// is too short to hold the packet, WriteARPPacket returns an error for
// which IsTooShort returns true.
func WriteARPPacket(p ARPPacket, b []byte) error {
	if len(b) < ARPPacketLen {
		return errors.Annotate(
			errors.NewTooShort(ARPPacketLen, len(b)), "write arp packet")
	}

	parse.PutUint16(&b, uint16(p.HType))
	parse.PutUint16(&b, uint16(p.PType))
	parse.PutByte(&b, p.HLen)
	parse.PutByte(&b, p.PLen)
	parse.PutUint16(&b, uint16(p.Op))
	copy(parse.GetBytes(&b, 6), p.SHA[:])
	copy(parse.GetBytes(&b, 4), p.SPA[:])
	copy(parse.GetBytes(&b, 6), p.THA[:])
	copy(parse.GetBytes(&b, 4), p.TPA[:])
	return nil
}

// ARPReply constructs the reply to request on behalf of the host owning
// local: the responder claims the protocol address the requester asked
// about, so the reply's sender fields name the local host and the
// requested address, and its target fields name the requester.
func ARPReply(request ARPPacket, local MAC) ARPPacket {
	return ARPPacket{
		HType: ARPHardwareEthernet,
		PType: ARPProtocolIPv4,
		HLen:  6,
		PLen:  4,
		Op:    ARPOpReply,
		SHA:   local,
		SPA:   request.TPA,
		THA:   request.SHA,
		TPA:   request.SPA,
	}
}
