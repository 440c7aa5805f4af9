package blit

// Scanline is a single byte of a 1-bpp scanline buffer. Bit 7 is the
// leftmost pixel.
type Scanline = uint8

// Scan describes a 1-bpp rectangular pixel buffer. It owns no storage of its
// own; Store is a slice owned and sized by the caller. The engine never
// allocates, reallocates, or retains a Scan across calls.
type Scan struct {
	// Store is the scanline buffer, logically height*Stride bytes.
	Store []Scanline
	// Width is the pixel width (bits per row).
	Width int
	// Height is the number of rows.
	Height int
	// Stride is the byte distance between the first byte of row y and the
	// first byte of row y+1. Must satisfy Stride >= ceil(Width/8).
	Stride int
}

// Locate returns the byte index of pixel (x, y) within Store. There is no
// bounds check at this layer; callers must guarantee 0 <= x < Width and
// 0 <= y < Height before calling.
func (s *Scan) Locate(x, y int) int {
	return y*s.Stride + (x >> 3)
}

// byteAt returns a pointer-like index into Store for pixel (x, y), same as
// Locate but phrased as the slice itself for callers that want to slice from
// that point forward.
func (s *Scan) byteAt(x, y int) []Scanline {
	return s.Store[s.Locate(x, y):]
}
