package dctfilter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	a := NewGray(8, 8)
	b := NewGray(8, 8)
	b.Pix[0] = 255
	b.Pix[1] = 16

	d, err := Measure(a, b)
	require.NoError(t, err)
	assert.InDelta(t, float64(255*255+16*16)/64, d.MSE, 1e-12)

	psnr, ok := d.PSNR()
	require.True(t, ok)
	assert.InDelta(t, 10*math.Log10(255*255/d.MSE), psnr, 1e-12)
	assert.Contains(t, d.String(), "dB")
}

func TestMeasureNoOverflow(t *testing.T) {
	a := NewGray(1024, 1024)
	b := NewGray(1024, 1024)
	for i := range b.Pix {
		b.Pix[i] = 255
	}
	d, err := Measure(a, b)
	require.NoError(t, err)
	assert.Equal(t, 255.0*255.0, d.MSE)

	psnr, ok := d.PSNR()
	require.True(t, ok)
	assert.InDelta(t, 0, psnr, 1e-12)
}

func TestMeasureLossless(t *testing.T) {
	a := randomGray(16, 8, 1)
	d, err := Measure(a, a)
	require.NoError(t, err)
	assert.True(t, d.Lossless())

	psnr, ok := d.PSNR()
	assert.False(t, ok)
	assert.False(t, math.IsInf(psnr, 0))
	assert.Equal(t, "MSE: 0, PSNR: no distortion", d.String())
}

func TestMeasureMismatch(t *testing.T) {
	_, err := Measure(NewGray(8, 8), NewGray(16, 8))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Measure(nil, NewGray(8, 8))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Measure(NewGray(0, 0), NewGray(0, 0))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}
