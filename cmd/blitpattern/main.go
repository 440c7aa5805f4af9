// Command blitpattern generates synthetic bilevel test bitmaps from the
// scenarios in SPEC_FULL.md/spec.md §8 and writes them out as PNG, for use
// as fixtures when exercising the bitblt engine by hand.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/royratcliffe/go-blit/pkg/blit"
)

func main() {
	var pattern = flag.String("pattern", "checkerboard", "Pattern to generate: checkerboard, edge-shift")
	var size = flag.Int("size", 80, "Bitmap width and height in pixels")
	var thumb = flag.Int("thumb", 0, "If non-zero, also write a downsampled NxN thumbnail")
	var output = flag.String("output", "", "Output PNG file (required)")
	flag.Parse()

	if *output == "" {
		fmt.Println("Usage: blitpattern -pattern <name> -size N -output <file.png>")
		os.Exit(1)
	}

	var bm *blit.Bitmap
	switch *pattern {
	case "checkerboard":
		bm = checkerboard(*size)
	case "edge-shift":
		bm = edgeShift(*size)
	default:
		fmt.Printf("Unknown pattern %q\n", *pattern)
		os.Exit(1)
	}

	if err := writePNG(*output, bm); err != nil {
		fmt.Printf("Error writing %s: %v\n", *output, err)
		os.Exit(1)
	}
	fmt.Printf("Created pattern bitmap: %s\n", *output)

	if *thumb > 0 {
		thumbPath := *output + ".thumb.png"
		if err := writeThumbnail(thumbPath, bm, *thumb); err != nil {
			fmt.Printf("Error writing thumbnail %s: %v\n", thumbPath, err)
			os.Exit(1)
		}
		fmt.Printf("Created thumbnail: %s\n", thumbPath)
	}
}

// checkerboard tiles a 2x2 pattern (.# / #.) across a size x size bitmap
// using the copy raster operation, the same construction as spec §8
// scenario 2.
func checkerboard(size int) *blit.Bitmap {
	pattern, err := blit.NewBitmapFromBuffer(2, 2, 2, []byte{0x40, 0x00, 0x80, 0x00})
	if err != nil {
		panic(err)
	}
	image := blit.NewBitmap(size, size)
	for y := 0; y < size; y += pattern.Height() {
		for x := 0; x < size; x += pattern.Width() {
			image.Compose(x, y, pattern, blit.Copy)
		}
	}
	return image
}

// edgeShift fills one source column and copies it into the last column of
// the destination, the construction spec §8 scenario 1 runs for every
// column in turn to exercise the right-shift phase-alignment path (no-shift
// when the source phase is also 7) across every possible bit phase. This picks a single representative phase
// (size/3) so the generated PNG has something visible to inspect; the
// exhaustive all-phases check lives in the engine's own tests.
func edgeShift(size int) *blit.Bitmap {
	dest := blit.NewBitmap(size, size)
	source := blit.NewBitmap(size, size)
	column := size / 3
	blit.BlitRegionXYHW(source.Scan(), column, 0, 1, size, source.Scan(), 0, 0, blit.Whiteness)
	blit.BlitRegionXYHW(dest.Scan(), size-1, 0, 1, size, source.Scan(), column, 0, blit.Copy)
	return dest
}

func writePNG(path string, bm *blit.Bitmap) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, toGray(bm))
}

func writeThumbnail(path string, bm *blit.Bitmap, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src := toGray(bm)
	dst := image.NewGray(image.Rect(0, 0, size, size))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return png.Encode(f, dst)
}

func toGray(bm *blit.Bitmap) *image.Gray {
	rect := image.Rect(0, 0, bm.Width(), bm.Height())
	gray := image.NewGray(rect)
	for y := 0; y < bm.Height(); y++ {
		for x := 0; x < bm.Width(); x++ {
			v := byte(255)
			if bm.GetPixel(x, y) != 0 {
				v = 0
			}
			gray.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return gray
}
