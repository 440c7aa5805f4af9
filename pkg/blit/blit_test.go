package blit

import "testing"

func TestBitmapCopy(t *testing.T) {
	src := NewBitmap(16, 4)
	for x := 0; x < 16; x++ {
		src.SetPixel(x, 0, 1)
	}
	dst := NewBitmap(16, 4)
	if !BlitRegionXYHW(dst.Scan(), 0, 0, 16, 4, src.Scan(), 0, 0, Copy) {
		t.Fatal("BlitRegionXYHW(copy) returned false")
	}
	for x := 0; x < 16; x++ {
		if dst.GetPixel(x, 0) != 1 {
			t.Errorf("dst pixel (%d,0) = %d, want 1", x, dst.GetPixel(x, 0))
		}
		if dst.GetPixel(x, 1) != 0 {
			t.Errorf("dst pixel (%d,1) = %d, want 0", x, dst.GetPixel(x, 1))
		}
	}
}

func TestBlitRegionEmptyResult(t *testing.T) {
	dst := NewBitmap(10, 10)
	src := NewBitmap(10, 10)
	x := &Region1{Origin: -100, Extent: 50, OriginSource: 0}
	y := &Region1{Origin: 0, Extent: 10, OriginSource: 0}
	if BlitRegion(dst.Scan(), x, y, src.Scan(), Whiteness) {
		t.Fatal("BlitRegion returned true for an off-screen rectangle")
	}
}

func TestPeek8PublicAPI(t *testing.T) {
	data := []Scanline{0xDE, 0xAD, 0xBE}
	if got := Peek8(8, data); got != 0xAD {
		t.Errorf("Peek8(8) = %#x, want 0xAD", got)
	}
}
