package convert

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestSolidGrayEndToEnd(t *testing.T) {
	img := solid(200, 100, color.RGBA{128, 128, 128, 255})

	got := Convert(img, Options{Width: 10})

	// height = round(10 * 100/200 * 0.55) = 3, intensity 128 maps to '='
	want := strings.Join([]string{
		"==========",
		"==========",
		"==========",
	}, "\n")
	if got != want {
		t.Fatalf("Convert() = %q, want %q", got, want)
	}
}

func TestExtremes(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want byte
	}{
		{"opaque black", solid(40, 40, color.RGBA{0, 0, 0, 255}), '@'},
		{"opaque white", solid(40, 40, color.RGBA{255, 255, 255, 255}), ' '},
		{"fully transparent", image.NewRGBA(image.Rect(0, 0, 40, 40)), ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Lines(tt.img, Options{Width: 8})
			for y, line := range lines {
				for x := 0; x < len(line); x++ {
					if line[x] != tt.want {
						t.Fatalf("cell (%d,%d) = %q, want %q", x, y, line[x], tt.want)
					}
				}
			}
		})
	}
}

func TestPartialTransparencyLightens(t *testing.T) {
	// Half-transparent black over the white background lands mid-ramp,
	// never at either extreme.
	img := solid(20, 20, color.NRGBA{0, 0, 0, 128})

	lines := Lines(img, Options{Width: 10})
	for _, line := range lines {
		for x := 0; x < len(line); x++ {
			if !strings.ContainsRune("+=", rune(line[x])) {
				t.Fatalf("got %q, want a mid-ramp glyph", line[x])
			}
		}
	}
}

func TestLineGeometry(t *testing.T) {
	tests := []struct {
		name       string
		imgW, imgH int
		width      int
		wantLines  int
	}{
		{"landscape", 200, 100, 10, 3},
		{"square", 100, 100, 50, 28},
		{"single pixel", 1, 1, 7, 4},
		{"short strip", 10, 1, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := solid(tt.imgW, tt.imgH, color.RGBA{200, 10, 90, 255})

			lines := Lines(img, Options{Width: tt.width})
			if len(lines) != tt.wantLines {
				t.Fatalf("got %d lines, want %d", len(lines), tt.wantLines)
			}
			for i, line := range lines {
				if len(line) != tt.width {
					t.Errorf("line %d has %d chars, want %d", i, len(line), tt.width)
				}
			}
		})
	}
}

func TestRampMonotonic(t *testing.T) {
	if got := DefaultRamp.CharAt(0); got != '@' {
		t.Errorf("CharAt(0) = %q, want '@'", got)
	}
	if got := DefaultRamp.CharAt(255); got != ' ' {
		t.Errorf("CharAt(255) = %q, want ' '", got)
	}

	prev := -1
	for v := 0; v < 256; v++ {
		i := strings.IndexByte(string(DefaultRamp), DefaultRamp.CharAt(uint8(v)))
		if i < prev {
			t.Fatalf("ramp index decreased at intensity %d: %d -> %d", v, prev, i)
		}
		prev = i
	}
}

func TestDeterminism(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 4), uint8(y * 5), uint8(x + y), 255})
		}
	}

	first := Convert(img, Options{Width: 24})
	second := Convert(img, Options{Width: 24})
	if first != second {
		t.Fatal("two conversions of the same image differ")
	}
}

func TestDefaultsApplied(t *testing.T) {
	img := solid(200, 100, color.RGBA{128, 128, 128, 255})

	lines := Lines(img, Options{})
	// round(100 * 100/200 * 0.55) = 28
	if len(lines) != 28 {
		t.Fatalf("got %d lines, want 28", len(lines))
	}
	for i, line := range lines {
		if len(line) != DefaultWidth {
			t.Fatalf("line %d has %d chars, want %d", i, len(line), DefaultWidth)
		}
	}
}
