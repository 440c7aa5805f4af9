package blit

import "errors"

// maxBitmapPixels bounds the pixel count a Bitmap will allocate, mirroring
// the INT_MAX-31 guard the teacher's image allocator inherited from PDFium.
const maxBitmapPixels = int(^uint32(0)>>1) - 31

// Bitmap owns a 1-bpp pixel buffer and the Scan descriptor over it. Scan
// itself is deliberately allocation-free (spec §1 places bitmap allocation
// and lifetime out of the engine's scope); Bitmap is the external
// collaborator that owns storage and hands the engine a Scan to operate on.
type Bitmap struct {
	scan  Scan
	owned bool
}

// NewBitmap allocates a zeroed bitmap of the given pixel dimensions. Stride
// is rounded up to whole bytes, plus one spare trailing byte per row
// whatever the width, so that the phase aligner's documented
// one-byte out-of-band read is always safe against storage this module
// allocates itself. Returns a zero-valued Bitmap (no storage) when the
// dimensions are non-positive or too large to allocate.
func NewBitmap(width, height int) *Bitmap {
	b := &Bitmap{}
	if width <= 0 || height <= 0 {
		return b
	}
	stride := (width+7)>>3 + 1
	if stride <= 0 || height > maxBitmapPixels/(stride*8) {
		return b
	}
	b.scan = Scan{
		Store:  make([]Scanline, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
	}
	b.owned = true
	return b
}

// NewBitmapFromBuffer wraps an externally owned buffer without copying it.
// stride must be at least ceil(width/8)+1, the extra byte covering the
// aligner's out-of-band trailing read; callers that cannot spare it should
// pad their own buffers accordingly.
func NewBitmapFromBuffer(width, height, stride int, buf []byte) (*Bitmap, error) {
	if width < 0 || height < 0 {
		return nil, errors.New("blit: negative dimensions")
	}
	if stride <= 0 {
		return nil, errors.New("blit: non-positive stride")
	}
	minStride := (width+7)>>3 + 1
	if stride < minStride {
		return nil, errors.New("blit: stride too small for out-of-band read headroom")
	}
	required := stride * height
	if required > len(buf) {
		return nil, errors.New("blit: buffer too small")
	}
	return &Bitmap{
		scan: Scan{
			Store:  buf[:required],
			Width:  width,
			Height: height,
			Stride: stride,
		},
	}, nil
}

// Scan returns the Scan descriptor the engine operates on. The returned
// pointer aliases the Bitmap's storage; callers must not retain it past the
// Bitmap's lifetime.
func (b *Bitmap) Scan() *Scan { return &b.scan }

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.scan.Width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.scan.Height }

// Stride returns the number of bytes per scanline.
func (b *Bitmap) Stride() int { return b.scan.Stride }

// Data exposes the underlying backing buffer.
func (b *Bitmap) Data() []byte { return b.scan.Store }

// GetPixel returns the bit value at the requested coordinate, or 0 when out
// of bounds.
func (b *Bitmap) GetPixel(x, y int) int {
	if b == nil || b.scan.Store == nil {
		return 0
	}
	if x < 0 || x >= b.scan.Width || y < 0 || y >= b.scan.Height {
		return 0
	}
	idx := b.scan.Locate(x, y)
	return int((b.scan.Store[idx] >> (7 - uint(x&7))) & 1)
}

// SetPixel mutates the pixel at the requested coordinate; a no-op when out
// of bounds.
func (b *Bitmap) SetPixel(x, y, v int) {
	if b == nil || b.scan.Store == nil {
		return
	}
	if x < 0 || x >= b.scan.Width || y < 0 || y >= b.scan.Height {
		return
	}
	idx := b.scan.Locate(x, y)
	mask := Scanline(1 << (7 - uint(x&7)))
	if v != 0 {
		b.scan.Store[idx] |= mask
	} else {
		b.scan.Store[idx] &^= mask
	}
}

// Fill writes the same bit across the whole buffer.
func (b *Bitmap) Fill(v bool) {
	if b == nil || b.scan.Store == nil {
		return
	}
	value := Scanline(0)
	if v {
		value = 0xff
	}
	for i := range b.scan.Store {
		b.scan.Store[i] = value
	}
}

// CopyLine clones one scanline into another, zero-filling when the source
// row is out of bounds.
func (b *Bitmap) CopyLine(dstY, srcY int) {
	if b == nil || b.scan.Store == nil {
		return
	}
	if dstY < 0 || dstY >= b.scan.Height {
		return
	}
	dst := b.scan.Store[dstY*b.scan.Stride : (dstY+1)*b.scan.Stride]
	if srcY < 0 || srcY >= b.scan.Height {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	src := b.scan.Store[srcY*b.scan.Stride : (srcY+1)*b.scan.Stride]
	copy(dst, src)
}

// Crop returns a newly allocated Bitmap holding the w*h pixels starting at
// (x, y). Rather than repeat the shifted-copy logic C3 already solves, Crop
// is expressed as a Copy blit onto a fresh destination, so the one phase
// aligner implementation is exercised from this second call site too.
func (b *Bitmap) Crop(x, y, w, h int) *Bitmap {
	dst := NewBitmap(w, h)
	if dst.scan.Store == nil || b == nil || b.scan.Store == nil {
		return dst
	}
	Blit(&dst.scan, 0, 0, w, h, &b.scan, x, y, Copy)
	return dst
}

// Expand increases the bitmap's height, allocating new storage and filling
// the new rows with v.
func (b *Bitmap) Expand(height int, v bool) {
	if b == nil || b.scan.Store == nil {
		return
	}
	if height <= b.scan.Height || b.scan.Stride <= 0 || height > maxBitmapPixels/(b.scan.Stride*8) {
		return
	}
	currentSize := b.scan.Stride * b.scan.Height
	desiredSize := b.scan.Stride * height
	newBuf := make([]Scanline, desiredSize)
	copy(newBuf, b.scan.Store)
	fill := Scanline(0)
	if v {
		fill = 0xff
	}
	for i := currentSize; i < desiredSize; i++ {
		newBuf[i] = fill
	}
	b.scan.Store = newBuf
	b.scan.Height = height
	b.owned = true
}

// Compose is a convenience wrapper exercising the teacher's five-operation
// ComposeOp vocabulary (see SPEC_FULL.md §4) through the shared ROP2 engine,
// instead of a second bit-by-bit compositing loop.
func (b *Bitmap) Compose(x, y int, src *Bitmap, op ROP2) bool {
	if b == nil || b.scan.Store == nil || src == nil || src.scan.Store == nil {
		return false
	}
	return Blit(&b.scan, x, y, src.scan.Width, src.scan.Height, &src.scan, 0, 0, op)
}
