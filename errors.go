package dctfilter

import "errors"

var (
	ErrInvalidDimensions = errors.New("dctfilter: image dimensions must be positive multiples of 8")
	ErrInvalidParameter  = errors.New("dctfilter: policy parameter out of range")
	ErrUnknownPolicy     = errors.New("dctfilter: unknown policy")
	ErrDimensionMismatch = errors.New("dctfilter: image dimensions differ")
	ErrUnsupportedFormat = errors.New("dctfilter: unsupported image format")
)
