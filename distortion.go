package dctfilter

import (
	"fmt"
	"math"
)

// Distortion holds the mean-squared error between two sample buffers.
type Distortion struct {
	MSE float64
}

// Measure computes the distortion of recon against orig.
func Measure(orig, recon *Gray) (Distortion, error) {
	if orig == nil || recon == nil {
		return Distortion{}, fmt.Errorf("%w: nil buffer", ErrDimensionMismatch)
	}
	if !orig.sameSize(recon) || len(orig.Pix) != len(recon.Pix) {
		return Distortion{}, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch,
			orig.Width, orig.Height, recon.Width, recon.Height)
	}
	if len(orig.Pix) == 0 {
		return Distortion{}, fmt.Errorf("%w: empty buffer", ErrInvalidDimensions)
	}
	var sum int64
	for i, a := range orig.Pix {
		d := int64(a) - int64(recon.Pix[i])
		sum += d * d
	}
	return Distortion{MSE: float64(sum) / float64(len(orig.Pix))}, nil
}

// Lossless reports whether both buffers were identical.
func (d Distortion) Lossless() bool {
	return d.MSE == 0
}

// PSNR returns the peak signal-to-noise ratio in dB. The second result is false for a
// lossless pair, where PSNR is unbounded.
func (d Distortion) PSNR() (float64, bool) {
	if d.Lossless() {
		return 0, false
	}
	return 10 * math.Log10(sampleMax*sampleMax/d.MSE), true
}

func (d Distortion) String() string {
	psnr, ok := d.PSNR()
	if !ok {
		return "MSE: 0, PSNR: no distortion"
	}
	return fmt.Sprintf("MSE: %g, PSNR: %.4f dB", d.MSE, psnr)
}
