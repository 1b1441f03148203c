package parse

import (
	"testing"

	"github.com/progbits/xv6-net/internal/errors"
)

func TestGetAdvancesCursor(t *testing.T) {
	b := []byte{0xAA, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0xBB}

	if got := GetByte(&b); got != 0xAA {
		t.Errorf("GetByte: got %#02x", got)
	}
	if got := GetUint16(&b); got != 0x0102 {
		t.Errorf("GetUint16: got %#04x", got)
	}
	if got := GetUint32(&b); got != 0x03040506 {
		t.Errorf("GetUint32: got %#08x", got)
	}
	if len(b) != 1 || b[0] != 0xBB {
		t.Errorf("cursor not advanced correctly; remaining %x", b)
	}
}

func TestPut(t *testing.T) {
	buf := make([]byte, 7)
	b := buf
	PutByte(&b, 0xAA)
	PutUint16(&b, 0x0102)
	PutUint32(&b, 0x03040506)

	want := []byte{0xAA, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	if string(buf) != string(want) {
		t.Errorf("got %x; want %x", buf, want)
	}
}

func TestGetBytesShortPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on short buffer")
		}
		err, ok := r.(error)
		if !ok || !errors.IsTooShort(err) {
			t.Fatalf("panic value: got %v; want too-short error", r)
		}
		required, available, ok := errors.TooShortLengths(err)
		if !ok || required != 4 || available != 2 {
			t.Errorf("lengths: got %v/%v; want 4/2", required, available)
		}
	}()

	b := []byte{0x01, 0x02}
	GetUint32(&b)
}
