package net

import (
	"testing"
)

func TestParseMAC(t *testing.T) {
	mac, err := ParseMAC("aa:bb:cc:dd:ee:ff")
	if err != nil {
		t.Fatalf("ParseMAC: %v", err)
	}
	want := MAC{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	if mac != want {
		t.Errorf("got %v; want %v", mac, want)
	}
	if mac.String() != "aa:bb:cc:dd:ee:ff" {
		t.Errorf("String: got %q", mac.String())
	}

	for _, s := range []string{"", "aa:bb:cc:dd:ee", "aa:bb:cc:dd:ee:ff:00", "aa:bb:cc:dd:ee:gg"} {
		if _, err := ParseMAC(s); err == nil {
			t.Errorf("ParseMAC(%q): expected error", s)
		}
	}
}

func TestMACCompare(t *testing.T) {
	a := MAC{0, 0, 0, 0, 0, 1}
	b := MAC{0, 0, 0, 0, 0, 2}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("MAC ordering is inconsistent: %v vs %v", a, b)
	}
}

func TestEtherTypeClassification(t *testing.T) {
	tests := []struct {
		wire uint16
		want EtherType
	}{
		{0x0800, EtherTypeIPv4},
		{0x0806, EtherTypeARP},
		{0x0842, EtherTypeWakeOnLAN},
		{0x8035, EtherTypeRARP},
		{0x8103, EtherTypeSLPP},
		{0x86DD, EtherTypeIPv6},
		// unassigned values classify as unknown, not as IPv6
		{0xFFFF, EtherTypeUnknown},
		{0x0000, EtherTypeUnknown},
		{0x1234, EtherTypeUnknown},
	}
	for _, test := range tests {
		if got := etherTypeFromWire(test.wire); got != test.want {
			t.Errorf("etherTypeFromWire(%#04x): got %v; want %v", test.wire, got, test.want)
		}
	}
}

func TestDemuxDispatch(t *testing.T) {
	frame := make([]byte, EthernetHeaderLen+4)
	hdr := EthernetHeader{
		Dst:  MAC{0x11, 0x22, 0x33, 0x44, 0x55, 0x66},
		Src:  MAC{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF},
		Type: EtherTypeIPv4,
	}
	if err := WriteEthernetHeader(hdr, frame); err != nil {
		t.Fatalf("WriteEthernetHeader: %v", err)
	}
	copy(frame[EthernetHeaderLen:], []byte{1, 2, 3, 4})

	var demux Demux
	var got EthernetHeader
	var payload []byte
	demux.Register(EtherTypeIPv4, func(hdr EthernetHeader, b []byte) error {
		got = hdr
		payload = append([]byte(nil), b...)
		return nil
	})

	if err := demux.HandleFrame(frame); err != nil {
		t.Fatalf("HandleFrame: %v", err)
	}
	if got != hdr {
		t.Errorf("handler saw header %+v; want %+v", got, hdr)
	}
	if string(payload) != string([]byte{1, 2, 3, 4}) {
		t.Errorf("handler saw payload %v", payload)
	}
}

func TestDemuxDrops(t *testing.T) {
	var demux Demux

	// no handler registered for this frame's type
	frame := make([]byte, EthernetHeaderLen)
	if err := WriteEthernetHeader(EthernetHeader{Type: EtherTypeIPv6}, frame); err != nil {
		t.Fatalf("WriteEthernetHeader: %v", err)
	}
	if err := demux.HandleFrame(frame); err != nil {
		t.Fatalf("HandleFrame: %v", err)
	}
	if n := demux.Dropped(); n != 1 {
		t.Errorf("Dropped: got %v; want 1", n)
	}

	// truncated frame
	err := demux.HandleFrame(frame[:13])
	if !IsTooShort(err) {
		t.Errorf("HandleFrame on 13 bytes: got %v; want too-short error", err)
	}
	if n := demux.Dropped(); n != 2 {
		t.Errorf("Dropped: got %v; want 2", n)
	}
}

func TestDemuxUnregister(t *testing.T) {
	var demux Demux
	called := false
	demux.Register(EtherTypeARP, func(EthernetHeader, []byte) error {
		called = true
		return nil
	})
	demux.Register(EtherTypeARP, nil)

	frame := make([]byte, EthernetHeaderLen)
	if err := WriteEthernetHeader(EthernetHeader{Type: EtherTypeARP}, frame); err != nil {
		t.Fatalf("WriteEthernetHeader: %v", err)
	}
	if err := demux.HandleFrame(frame); err != nil {
		t.Fatalf("HandleFrame: %v", err)
	}
	if called {
		t.Error("handler called after removal")
	}
}
