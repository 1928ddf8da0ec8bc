// Package dctfilter provides block-based frequency-domain filtering of grayscale images.
//
// An image is split into 8x8 blocks, each block is transformed with a 2D DCT, a selection
// policy zeroes some of its 64 coefficients, and the inverse transform rebuilds the block.
// The package reports MSE and PSNR between the source and the reconstruction.
// Image formats are handled by the standard image packages and golang.org/x/image.
package dctfilter
