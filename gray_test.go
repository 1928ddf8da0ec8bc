package dctfilter

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrayBounds(t *testing.T) {
	g := NewGray(3, 2)
	g.Set(2, 1, 9)
	g.Set(3, 1, 7)
	g.Set(-1, 0, 7)

	assert.Equal(t, uint8(9), g.At(2, 1))
	assert.Equal(t, uint8(0), g.At(3, 1))
	assert.Equal(t, uint8(0), g.At(0, -1))
	assert.True(t, g.InBounds(0, 0))
	assert.False(t, g.InBounds(0, 2))
	assert.Equal(t, []uint8{0, 0, 0, 0, 0, 9}, g.Pix)
}

func TestGrayCheckBlocks(t *testing.T) {
	require.NoError(t, NewGray(16, 8).CheckBlocks())
	for _, g := range []*Gray{NewGray(10, 8), NewGray(8, 12), NewGray(0, 8), NewGray(-8, 8), {Width: 8, Height: 8, Pix: make([]uint8, 10)}} {
		assert.ErrorIs(t, g.CheckBlocks(), ErrInvalidDimensions, "%dx%d", g.Width, g.Height)
	}
}

func TestGrayFromImage(t *testing.T) {
	src := image.NewGray(image.Rect(4, 2, 12, 10))
	src.SetGray(5, 3, color.Gray{Y: 200})
	g := GrayFromImage(src.SubImage(image.Rect(5, 3, 9, 7)))
	assert.Equal(t, 4, g.Width)
	assert.Equal(t, 4, g.Height)
	assert.Equal(t, uint8(200), g.At(0, 0))

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 1))
	rgba.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	rgba.Set(1, 0, color.RGBA{R: 255, A: 255})
	g = GrayFromImage(rgba)
	assert.Equal(t, uint8(255), g.At(0, 0))
	assert.Equal(t, color.GrayModel.Convert(rgba.At(1, 0)).(color.Gray).Y, g.At(1, 0))

	back := g.Image()
	assert.Equal(t, image.Rect(0, 0, 2, 1), back.Bounds())
	assert.Equal(t, g.Pix, back.Pix)
}
