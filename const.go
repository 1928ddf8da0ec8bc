package dctfilter

import "github.com/vearutop/dctfilter/internal/dct"

// BlockEdge is the edge length of a transform block, image dimensions must be multiples of it.
const BlockEdge = dct.Size

const (
	// CoefficientScale is applied to forward transform output before selection.
	CoefficientScale = 64.0
	// InverseScale divides selected coefficients before the inverse transform.
	InverseScale = 4.0
	// sampleMax is the peak 8-bit sample value, used for normalization and PSNR.
	sampleMax = 255.0
)

const (
	maxThreshold  = 255
	maxPercentage = 100

	defaultQuality = 95
)
