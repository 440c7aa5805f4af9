package blit

import "testing"

func TestBitmapCreate(t *testing.T) {
	b := NewBitmap(80, 20)
	if b.Width() != 80 {
		t.Errorf("Width() = %d, want 80", b.Width())
	}
	if b.Height() != 20 {
		t.Errorf("Height() = %d, want 20", b.Height())
	}
	if pixel := b.GetPixel(0, 0); pixel != 0 {
		t.Errorf("GetPixel(0,0) = %d, want 0", pixel)
	}
	b.SetPixel(0, 0, 1)
	b.SetPixel(79, 19, 1)
	if pixel := b.GetPixel(0, 0); pixel != 1 {
		t.Errorf("GetPixel(0,0) = %d, want 1", pixel)
	}
	if pixel := b.GetPixel(79, 19); pixel != 1 {
		t.Errorf("GetPixel(79,19) = %d, want 1", pixel)
	}
}

func TestBitmapOutOfBoundsIsSafe(t *testing.T) {
	b := NewBitmap(10, 10)
	b.SetPixel(-1, 0, 1)
	b.SetPixel(10, 0, 1)
	if pixel := b.GetPixel(-1, 0); pixel != 0 {
		t.Errorf("GetPixel(-1,0) = %d, want 0", pixel)
	}
	if pixel := b.GetPixel(10, 0); pixel != 0 {
		t.Errorf("GetPixel(10,0) = %d, want 0", pixel)
	}
}

func TestBitmapEmptyIsSafe(t *testing.T) {
	b := NewBitmap(0, 0)
	if b.Width() != 0 || b.Height() != 0 {
		t.Errorf("empty bitmap has dimensions %dx%d", b.Width(), b.Height())
	}
	b.SetPixel(0, 0, 1)
	if pixel := b.GetPixel(0, 0); pixel != 0 {
		t.Errorf("GetPixel on empty bitmap = %d, want 0", pixel)
	}
}

func TestBitmapTooLargeFailsToAllocate(t *testing.T) {
	b := NewBitmap(80, 40000000)
	if b.Width() != 0 || b.Height() != 0 {
		t.Errorf("expected allocation failure, got %dx%d", b.Width(), b.Height())
	}
}

func TestBitmapFromExternalBuffer(t *testing.T) {
	width, height, stride := 20, 5, 4
	buf := make([]byte, height*stride)
	b, err := NewBitmapFromBuffer(width, height, stride, buf)
	if err != nil {
		t.Fatalf("NewBitmapFromBuffer: %v", err)
	}
	b.SetPixel(0, 0, 1)
	if buf[0] != 0x80 {
		t.Errorf("external buffer not mutated through Bitmap: %#x", buf[0])
	}
}

func TestBitmapFromBufferRejectsShortStride(t *testing.T) {
	buf := make([]byte, 100)
	if _, err := NewBitmapFromBuffer(20, 5, 2, buf); err == nil {
		t.Error("expected error for stride with no out-of-band headroom")
	}
}

func TestBitmapFillAndCopyLine(t *testing.T) {
	b := NewBitmap(16, 3)
	b.Fill(true)
	for x := 0; x < 16; x++ {
		if b.GetPixel(x, 1) != 1 {
			t.Fatalf("Fill(true) left pixel (%d,1) clear", x)
		}
	}
	b.SetPixel(0, 0, 0)
	b.CopyLine(1, 0)
	if b.GetPixel(0, 1) != 0 {
		t.Error("CopyLine did not copy the cleared pixel")
	}
}

func TestBitmapCropUsesEngine(t *testing.T) {
	b := NewBitmap(16, 16)
	for x := 4; x < 12; x++ {
		for y := 4; y < 12; y++ {
			b.SetPixel(x, y, 1)
		}
	}
	cropped := b.Crop(4, 4, 8, 8)
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			if cropped.GetPixel(x, y) != 1 {
				t.Fatalf("cropped pixel (%d,%d) = %d, want 1", x, y, cropped.GetPixel(x, y))
			}
		}
	}
}

func TestBitmapComposeXor(t *testing.T) {
	dst := NewBitmap(8, 8)
	dst.Fill(true)
	src := NewBitmap(8, 8)
	src.Fill(true)
	if !dst.Compose(0, 0, src, ROP2Xor) {
		t.Fatal("Compose(xor) returned false")
	}
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			if dst.GetPixel(x, y) != 0 {
				t.Fatalf("xor of identical bitmaps left pixel (%d,%d) set", x, y)
			}
		}
	}
}

func TestBitmapExpand(t *testing.T) {
	b := NewBitmap(8, 2)
	b.Fill(true)
	b.Expand(5, false)
	if b.Height() != 5 {
		t.Fatalf("Height() = %d, want 5", b.Height())
	}
	if b.GetPixel(0, 0) != 1 {
		t.Error("Expand lost existing pixel data")
	}
	if b.GetPixel(0, 4) != 0 {
		t.Error("Expand did not fill new rows with the requested value")
	}
}
