package dctfilter

import (
	"fmt"
	"image"
	"image/color"
)

// Gray is an 8-bit grayscale sample buffer in row-major order, stride equals Width.
type Gray struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGray allocates a zeroed w x h buffer.
func NewGray(w, h int) *Gray {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Gray{Width: w, Height: h, Pix: make([]uint8, w*h)}
}

// GrayFromImage converts img to grayscale using color.GrayModel.
func GrayFromImage(img image.Image) *Gray {
	b := img.Bounds()
	g := NewGray(b.Dx(), b.Dy())
	if src, ok := img.(*image.Gray); ok {
		for y := 0; y < g.Height; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(g.Pix[y*g.Width:(y+1)*g.Width], src.Pix[off:off+g.Width])
		}
		return g
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			g.Pix[y*g.Width+x] = c.Y
		}
	}
	return g
}

// Image returns a copy of g as *image.Gray anchored at the origin.
func (g *Gray) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+g.Width], g.Pix[y*g.Width:(y+1)*g.Width])
	}
	return img
}

// InBounds reports whether (x, y) addresses a sample of g.
func (g *Gray) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// At returns the sample at (x, y), or 0 outside the buffer.
func (g *Gray) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.Pix[y*g.Width+x]
}

// Set stores v at (x, y). Writes outside the buffer are ignored.
func (g *Gray) Set(x, y int, v uint8) {
	if !g.InBounds(x, y) {
		return
	}
	g.Pix[y*g.Width+x] = v
}

// CheckBlocks fails with ErrInvalidDimensions unless both dimensions are positive
// multiples of BlockEdge and Pix holds exactly Width*Height samples.
func (g *Gray) CheckBlocks() error {
	if g == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidDimensions)
	}
	if g.Width <= 0 || g.Height <= 0 || g.Width%BlockEdge != 0 || g.Height%BlockEdge != 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, g.Width, g.Height)
	}
	if len(g.Pix) != g.Width*g.Height {
		return fmt.Errorf("%w: %d samples for %dx%d", ErrInvalidDimensions, len(g.Pix), g.Width, g.Height)
	}
	return nil
}

func (g *Gray) sameSize(o *Gray) bool {
	return g.Width == o.Width && g.Height == o.Height
}
