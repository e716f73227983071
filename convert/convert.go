package convert

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/nfnt/resize"
)

// Ramp orders glyphs from densest (darkest) to sparsest (lightest).
type Ramp string

// DefaultRamp covers ten brightness bands.
const DefaultRamp Ramp = "@%#*+=-:. "

const (
	// DefaultWidth is the output width in characters when none is given.
	DefaultWidth = 100

	// DefaultAspect squeezes the output height to compensate for
	// character cells being taller than they are wide.
	DefaultAspect = 0.55
)

// CharAt maps an intensity to its ramp glyph by linear quantization.
func (r Ramp) CharAt(v uint8) byte {
	i := int(v) * len(r) / 256
	if i >= len(r) {
		i = len(r) - 1
	}
	return r[i]
}

type Options struct {
	// Width in characters. Non-positive means DefaultWidth.
	Width int

	// Aspect correction applied to the output height. Non-positive means
	// DefaultAspect.
	Aspect float64

	// Ramp used for brightness mapping. Empty means DefaultRamp.
	Ramp Ramp
}

// Convert renders img as ASCII art, rows joined top-to-bottom with newlines.
func Convert(img image.Image, opts Options) string {
	return strings.Join(Lines(img, opts), "\n")
}

// Lines renders img as one string per output row. Every row has exactly
// opts.Width characters; the row count is round(width * H/W * aspect) with a
// floor of one, so a 1x1 input still produces well-formed output.
func Lines(img image.Image, opts Options) []string {
	w := opts.Width
	if w <= 0 {
		w = DefaultWidth
	}
	aspect := opts.Aspect
	if aspect <= 0 {
		aspect = DefaultAspect
	}
	ramp := opts.Ramp
	if ramp == "" {
		ramp = DefaultRamp
	}

	h := outputHeight(img.Bounds(), w, aspect)

	scaled := resize.Resize(uint(w), uint(h), img, resize.Bilinear)
	gray := grayscale(flattenWhite(scaled))

	lines := make([]string, gray.H)
	row := make([]byte, gray.W)
	for y := 0; y < gray.H; y++ {
		for x := 0; x < gray.W; x++ {
			row[x] = ramp.CharAt(gray.At(x, y))
		}
		lines[y] = string(row)
	}
	return lines
}

func outputHeight(b image.Rectangle, width int, aspect float64) int {
	if b.Dx() == 0 || b.Dy() == 0 {
		return 1
	}
	h := int(math.Round(float64(width) * float64(b.Dy()) / float64(b.Dx()) * aspect))
	if h < 1 {
		h = 1
	}
	return h
}

// flattenWhite composites img over an opaque white background so that
// transparent regions read as light glyphs instead of black. Must run before
// grayscale conversion.
func flattenWhite(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// Grayscale holds one intensity per output cell, 0 (black) to 255 (white).
// Derived once from the flattened image and never mutated.
type Grayscale struct {
	W, H int
	Pix  []uint8
}

func (g *Grayscale) At(x, y int) uint8 { return g.Pix[y*g.W+x] }

func grayscale(img *image.RGBA) *Grayscale {
	b := img.Bounds()
	g := &Grayscale{W: b.Dx(), H: b.Dy(), Pix: make([]uint8, b.Dx()*b.Dy())}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		o := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			r := uint32(img.Pix[o])
			gr := uint32(img.Pix[o+1])
			bl := uint32(img.Pix[o+2])
			// Rec. 601 luma, same weights as color.GrayModel
			g.Pix[i] = uint8((299*r + 587*gr + 114*bl + 500) / 1000)
			i++
			o += 4
		}
	}
	return g
}
