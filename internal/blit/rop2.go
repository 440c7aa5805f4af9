package blit

// BlitRegion performs a bitblt of the rectangle described by x and y from
// source onto dest under the given raster operation. x and y are normalized,
// slipped, and clipped in place against both dest and source bounds, so the
// caller can read back the effective (possibly shrunk) region on return.
// Reports false, making no modifications, when the clipped rectangle has
// zero area.
func BlitRegion(dest *Scan, x, y *Region1, source *Scan, rop ROP2) bool {
	x.Normalize()
	if !x.Slip() || !x.Clip(dest.Width-x.Origin) || !x.Clip(source.Width-x.OriginSource) {
		return false
	}
	y.Normalize()
	if !y.Slip() || !y.Clip(dest.Height-y.Origin) || !y.Clip(source.Height-y.OriginSource) {
		return false
	}

	xMax := x.Origin + x.Extent - 1
	extra := (xMax >> 3) - (x.Origin >> 3)
	leftMask := Scanline(0xff) >> uint(x.Origin&7)
	rightMask := Scanline(0xff) << uint(7-(xMax&7))

	destRowAdvance := dest.Stride - (extra + 1)
	sourceRowAdvance := source.Stride - (extra + 1)

	destCursor := dest.Locate(x.Origin, y.Origin)

	var align PhaseAlign
	align.Start(x.Origin, x.OriginSource&7, source.byteAt(x.OriginSource, y.OriginSource))

	for row := 0; row < y.Extent; row++ {
		align.Prefetch()
		d := dest.Store[destCursor:]
		if extra == 0 {
			mask := leftMask & rightMask
			writeMasked(&align, rop, mask, d)
			destCursor++
		} else {
			writeMasked(&align, rop, leftMask, d)
			destCursor++
			for i := 0; i < extra-1; i++ {
				write(&align, rop, dest.Store[destCursor:])
				destCursor++
			}
			writeMasked(&align, rop, rightMask, dest.Store[destCursor:])
			destCursor++
		}
		destCursor += destRowAdvance
		if row+1 < y.Extent {
			align.advance(sourceRowAdvance)
		}
	}
	return true
}

// Blit is the convenience form of BlitRegion that builds temporary regions
// from raw integer coordinates and discards them on return.
func Blit(dest *Scan, x, y, xExtent, yExtent int, source *Scan, xSource, ySource int, rop ROP2) bool {
	xRgn := Region1{Origin: x, Extent: xExtent, OriginSource: xSource}
	yRgn := Region1{Origin: y, Extent: yExtent, OriginSource: ySource}
	return BlitRegion(dest, &xRgn, &yRgn, source, rop)
}

// write applies rop unconditionally to the destination byte at d[0].
func write(align *PhaseAlign, rop ROP2, d []Scanline) {
	d[0] = rop.apply(align.Fetch(), d[0])
}

// writeMasked applies rop to the destination byte at d[0], but only within
// mask; bits outside mask are preserved verbatim. The read of d[0] inside
// rop.apply reflects the value before the write, so operations like Dn and
// DSx on partial bytes compute against the original destination bits.
func writeMasked(align *PhaseAlign, rop ROP2, mask Scanline, d []Scanline) {
	before := d[0]
	d[0] = (before &^ mask) | (mask & rop.apply(align.Fetch(), before))
}
