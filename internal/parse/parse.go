// Package parse provides cursor-style helpers for reading and writing
// big-endian wire formats. The Get and Put functions consume the front of
// a byte slice and advance it in place. If the slice is too short, they
// panic with an error for which errors.IsTooShort returns true; callers
// decoding untrusted input are expected to validate lengths up front and
// treat such a panic as a programming error.
package parse

import (
	"encoding/binary"

	"github.com/progbits/xv6-net/internal/errors"
)

// GetBytes returns (*b)[:n] and sets *b = (*b)[n:]
func GetBytes(b *[]byte, n int) []byte {
	if len(*b) < n {
		panic(errors.NewTooShort(n, len(*b)))
	}
	ret := (*b)[:n]
	*b = (*b)[n:]
	return ret
}

// GetByte is equivalent to GetBytes(b, 1).
func GetByte(b *[]byte) byte {
	if len(*b) < 1 {
		panic(errors.NewTooShort(1, 0))
	}
	ret := (*b)[0]
	*b = (*b)[1:]
	return ret
}

// GetUint16 calls GetBytes(b, 2) and converts the result to a uint16 using
// big endian encoding.
func GetUint16(b *[]byte) uint16 {
	return binary.BigEndian.Uint16(GetBytes(b, 2))
}

// GetUint32 calls GetBytes(b, 4) and converts the result to a uint32 using
// big endian encoding.
func GetUint32(b *[]byte) uint32 {
	return binary.BigEndian.Uint32(GetBytes(b, 4))
}

// PutByte calls GetBytes(b, 1) and stores n in the result.
func PutByte(b *[]byte, n byte) {
	GetBytes(b, 1)[0] = n
}

// PutUint16 calls GetBytes(b, 2) and encodes n into the result using big
// endian encoding.
func PutUint16(b *[]byte, n uint16) {
	binary.BigEndian.PutUint16(GetBytes(b, 2), n)
}

// PutUint32 calls GetBytes(b, 4) and encodes n into the result using big
// endian encoding.
func PutUint32(b *[]byte, n uint32) {
	binary.BigEndian.PutUint32(GetBytes(b, 4), n)
}
