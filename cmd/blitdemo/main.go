// Command blitdemo composes one bilevel image onto another using a named
// binary raster operation and writes the result back out, exercising the
// full bitblt engine from the command line.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/royratcliffe/go-blit/pkg/blit"
)

func main() {
	var destFile = flag.String("dest", "", "Destination image (PNG or BMP)")
	var srcFile = flag.String("src", "", "Source image (PNG or BMP)")
	var op = flag.String("op", "copy", "Raster operation (copy, xor, and, or, invert, whiteness, blackness, ...)")
	var x = flag.Int("x", 0, "Destination x origin")
	var y = flag.Int("y", 0, "Destination y origin")
	var w = flag.Int("w", 0, "Rectangle width (0 = source width)")
	var h = flag.Int("h", 0, "Rectangle height (0 = source height)")
	var sx = flag.Int("sx", 0, "Source x origin")
	var sy = flag.Int("sy", 0, "Source y origin")
	var outputFile = flag.String("output", "", "Output file (defaults to -dest with a .out.png suffix)")
	flag.Parse()

	if *destFile == "" || *srcFile == "" {
		log.Fatal("Both -dest and -src are required.")
	}

	dest, err := loadBitmap(*destFile)
	if err != nil {
		log.Fatalf("Failed to load destination image: %v", err)
	}
	src, err := loadBitmap(*srcFile)
	if err != nil {
		log.Fatalf("Failed to load source image: %v", err)
	}

	rop, err := parseROP2(*op)
	if err != nil {
		log.Fatalf("Failed to parse -op: %v", err)
	}

	width, height := *w, *h
	if width == 0 {
		width = src.Width()
	}
	if height == 0 {
		height = src.Height()
	}

	ok := blit.BlitRegionXYHW(dest.Scan(), *x, *y, width, height, src.Scan(), *sx, *sy, rop)
	if !ok {
		log.Fatal("Blit produced an empty result: the rectangle clipped away entirely.")
	}

	output := *outputFile
	if output == "" {
		output = strings.TrimSuffix(*destFile, fileExt(*destFile)) + ".out.png"
	}
	if err := savePNG(output, dest); err != nil {
		log.Fatalf("Failed to write output image: %v", err)
	}

	fmt.Printf("Wrote %s (%dx%d)\n", output, dest.Width(), dest.Height())
}

func fileExt(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i:]
		}
	}
	return ""
}

// parseROP2 resolves a raster-operation name to its ROP2 code, recognizing
// both the canonical names and the spec's public synonyms.
func parseROP2(name string) (blit.ROP2, error) {
	switch strings.ToLower(name) {
	case "0", "blackness":
		return blit.Blackness, nil
	case "dson", "not_erase":
		return blit.NotErase, nil
	case "dsna":
		return blit.ROPDSna, nil
	case "sn", "not_copy":
		return blit.NotCopy, nil
	case "sdna", "erase":
		return blit.Erase, nil
	case "dn", "invert":
		return blit.Invert, nil
	case "dsx", "xor":
		return blit.Xor, nil
	case "dsan":
		return blit.ROPDSan, nil
	case "dsa", "and":
		return blit.And, nil
	case "dsxn":
		return blit.ROPDSxn, nil
	case "d":
		return blit.ROPD, nil
	case "dsno", "merge_paint":
		return blit.MergePaint, nil
	case "s", "copy":
		return blit.Copy, nil
	case "sdno":
		return blit.ROPSDno, nil
	case "dso", "paint", "or":
		return blit.Paint, nil
	case "1", "whiteness":
		return blit.Whiteness, nil
	default:
		return 0, fmt.Errorf("unknown raster operation %q", name)
	}
}

// loadBitmap decodes a PNG or BMP file and thresholds it to a 1-bpp Bitmap:
// luma < 128 (a dark pixel) is a set pixel, the same convention savePNG
// uses when it writes set pixels black.
func loadBitmap(path string) (*blit.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	bm := blit.NewBitmap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			luma := (299*r + 587*g + 114*b) / 1000
			if luma>>8 < 128 {
				bm.SetPixel(x, y, 1)
			}
		}
	}
	return bm, nil
}

func savePNG(path string, bm *blit.Bitmap) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

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
	return png.Encode(f, gray)
}

func init() {
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
}
