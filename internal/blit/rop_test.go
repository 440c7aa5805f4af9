package blit

import "testing"

func TestROP2Apply(t *testing.T) {
	s, d := Scanline(0b10101010), Scanline(0b11001100)
	tests := []struct {
		name string
		rop  ROP2
		want Scanline
	}{
		{"0", ROP20, 0x00},
		{"DSon", ROPDSon, ^(d | s)},
		{"DSna", ROPDSna, d &^ s},
		{"Sn", ROPSn, ^s},
		{"SDna", ROPSDna, s &^ d},
		{"Dn", ROPDn, ^d},
		{"DSx", ROPDSx, d ^ s},
		{"DSan", ROPDSan, ^(d & s)},
		{"DSa", ROPDSa, d & s},
		{"DSxn", ROPDSxn, ^(d ^ s)},
		{"D", ROPD, d},
		{"DSno", ROPDSno, d | ^s},
		{"S", ROPS, s},
		{"SDno", ROPSDno, s | ^d},
		{"DSo", ROPDSo, d | s},
		{"1", ROP21, 0xff},
	}
	for _, tt := range tests {
		if got := tt.rop.apply(s, d); got != tt.want {
			t.Errorf("%s.apply(%08b,%08b) = %08b, want %08b", tt.name, s, d, got, tt.want)
		}
	}
}

func TestROP2SynonymsMatchCanonicalCodes(t *testing.T) {
	if Invert != ROPDn {
		t.Error("Invert must resolve to Dn, not Sn (spec §9 Open Questions)")
	}
	if Copy != ROPS {
		t.Error("Copy must resolve to S")
	}
	if Whiteness != ROP21 {
		t.Error("Whiteness must resolve to 1")
	}
	if Blackness != ROP20 {
		t.Error("Blackness must resolve to 0")
	}
	if Xor != ROPDSx {
		t.Error("Xor must resolve to DSx")
	}
}
