// Package blit implements a 1-bit-per-pixel bit-block transfer engine: it
// composes a rectangular region of a source bitmap onto a destination
// bitmap under one of sixteen binary raster operations, handling sub-byte
// horizontal bit alignment and clipping against both source and
// destination bounds.
//
// This package is a thin public wrapper around internal/blit, following the
// same split the original decoder used between its internal implementation
// and its exported API.
package blit

import "github.com/royratcliffe/go-blit/internal/blit"

// Scanline is a single byte of a 1-bpp scanline buffer. Bit 7 is the
// leftmost pixel.
type Scanline = blit.Scanline

// ROP2 is a binary raster operation code, one of the sixteen values below.
type ROP2 = blit.ROP2

// The sixteen canonical binary raster operations.
const (
	ROP20   = blit.ROP20
	ROPDSon = blit.ROPDSon
	ROPDSna = blit.ROPDSna
	ROPSn   = blit.ROPSn
	ROPSDna = blit.ROPSDna
	ROPDn   = blit.ROPDn
	ROPDSx  = blit.ROPDSx
	ROPDSan = blit.ROPDSan
	ROPDSa  = blit.ROPDSa
	ROPDSxn = blit.ROPDSxn
	ROPD    = blit.ROPD
	ROPDSno = blit.ROPDSno
	ROPS    = blit.ROPS
	ROPSDno = blit.ROPSDno
	ROPDSo  = blit.ROPDSo
	ROP21   = blit.ROP21
)

// Public synonyms for the canonical codes above.
const (
	Blackness  = blit.Blackness
	NotErase   = blit.NotErase
	NotCopy    = blit.NotCopy
	Erase      = blit.Erase
	Invert     = blit.Invert
	Xor        = blit.Xor
	And        = blit.And
	MergePaint = blit.MergePaint
	Copy       = blit.Copy
	Paint      = blit.Paint
	Whiteness  = blit.Whiteness

	// Synonyms matching the teacher's ComposeOp vocabulary (SPEC_FULL.md §4).
	ROP2Or      = blit.ROP2Or
	ROP2And     = blit.ROP2And
	ROP2Xor     = blit.ROP2Xor
	ROP2Xnor    = blit.ROP2Xnor
	ROP2Replace = blit.ROP2Replace
)

// Scan describes a 1-bpp rectangular pixel buffer, owned and sized by the
// caller. It is the low-level descriptor the engine operates on; most
// callers will prefer Bitmap, which owns its storage.
type Scan = blit.Scan

// Region1 is a half-open one-dimensional mapping from a source interval to a
// destination interval, sharing one extent.
type Region1 = blit.Region1

// BlitRegion performs a bitblt of the rectangle described by x and y from
// source onto dest under the given raster operation, mutating x and y in
// place with the clipped result. Returns false, making no modifications,
// when the clipped rectangle has zero area.
func BlitRegion(dest *Scan, x, y *Region1, source *Scan, rop ROP2) bool {
	return blit.BlitRegion(dest, x, y, source, rop)
}

// BlitRegionXYHW is the convenience form of BlitRegion that builds temporary
// regions from raw integer coordinates.
func BlitRegionXYHW(dest *Scan, x, y, xExtent, yExtent int, source *Scan, xSource, ySource int, rop ROP2) bool {
	return blit.Blit(dest, x, y, xExtent, yExtent, source, xSource, ySource, rop)
}

// Peek8 reads a single phase-aligned byte from src at bit offset b.
func Peek8(b int, src []Scanline) Scanline { return blit.Peek8(b, src) }

// Peek16BE reads a big-endian 16-bit value from src at bit offset b.
func Peek16BE(b int, src []Scanline) uint16 { return blit.Peek16BE(b, src) }

// Peek16LE reads a little-endian 16-bit value from src at bit offset b.
func Peek16LE(b int, src []Scanline) uint16 { return blit.Peek16LE(b, src) }

// Peek32BE reads a big-endian 32-bit value from src at bit offset b.
func Peek32BE(b int, src []Scanline) uint32 { return blit.Peek32BE(b, src) }

// Peek32LE reads a little-endian 32-bit value from src at bit offset b.
func Peek32LE(b int, src []Scanline) uint32 { return blit.Peek32LE(b, src) }

// Bitmap owns a 1-bpp pixel buffer. Unlike Scan, which is a bare descriptor
// over caller-owned storage, Bitmap allocates and manages its own buffer —
// the "bitmap allocation and lifetime" concern the engine itself declares
// out of scope.
type Bitmap struct {
	b *blit.Bitmap
}

// NewBitmap allocates a zeroed bitmap of the given pixel dimensions.
// Returns a zero-valued Bitmap when the dimensions are non-positive or too
// large to allocate.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{b: blit.NewBitmap(width, height)}
}

// NewBitmapFromBuffer wraps an externally owned buffer without copying it.
func NewBitmapFromBuffer(width, height, stride int, buf []byte) (*Bitmap, error) {
	b, err := blit.NewBitmapFromBuffer(width, height, stride, buf)
	if err != nil {
		return nil, err
	}
	return &Bitmap{b: b}, nil
}

// Width returns the bitmap width in pixels.
func (bm *Bitmap) Width() int {
	if bm == nil || bm.b == nil {
		return 0
	}
	return bm.b.Width()
}

// Height returns the bitmap height in pixels.
func (bm *Bitmap) Height() int {
	if bm == nil || bm.b == nil {
		return 0
	}
	return bm.b.Height()
}

// Stride returns the number of bytes per scanline.
func (bm *Bitmap) Stride() int {
	if bm == nil || bm.b == nil {
		return 0
	}
	return bm.b.Stride()
}

// Data exposes the underlying backing buffer.
func (bm *Bitmap) Data() []byte {
	if bm == nil || bm.b == nil {
		return nil
	}
	return bm.b.Data()
}

// Scan returns the Scan descriptor for use with BlitRegion/BlitRegionXYHW.
func (bm *Bitmap) Scan() *Scan {
	if bm == nil || bm.b == nil {
		return nil
	}
	return bm.b.Scan()
}

// GetPixel returns the bit value at the requested coordinate, or 0 when out
// of bounds.
func (bm *Bitmap) GetPixel(x, y int) int {
	if bm == nil || bm.b == nil {
		return 0
	}
	return bm.b.GetPixel(x, y)
}

// SetPixel mutates the pixel at the requested coordinate; a no-op when out
// of bounds.
func (bm *Bitmap) SetPixel(x, y, v int) {
	if bm == nil || bm.b == nil {
		return
	}
	bm.b.SetPixel(x, y, v)
}

// Fill writes the same bit across the whole buffer.
func (bm *Bitmap) Fill(v bool) {
	if bm == nil || bm.b == nil {
		return
	}
	bm.b.Fill(v)
}

// CopyLine clones one scanline into another, zero-filling when the source
// row is out of bounds.
func (bm *Bitmap) CopyLine(dstY, srcY int) {
	if bm == nil || bm.b == nil {
		return
	}
	bm.b.CopyLine(dstY, srcY)
}

// Crop returns a newly allocated Bitmap holding the w*h pixels starting at
// (x, y).
func (bm *Bitmap) Crop(x, y, w, h int) *Bitmap {
	if bm == nil || bm.b == nil {
		return NewBitmap(w, h)
	}
	return &Bitmap{b: bm.b.Crop(x, y, w, h)}
}

// Expand increases the bitmap's height, filling the new rows with v.
func (bm *Bitmap) Expand(height int, v bool) {
	if bm == nil || bm.b == nil {
		return
	}
	bm.b.Expand(height, v)
}

// Compose blits src onto bm at (x, y) using op, a convenience for callers
// migrating from the teacher's ComposeOp vocabulary.
func (bm *Bitmap) Compose(x, y int, src *Bitmap, op ROP2) bool {
	if bm == nil || bm.b == nil || src == nil || src.b == nil {
		return false
	}
	return bm.b.Compose(x, y, src.b, op)
}
