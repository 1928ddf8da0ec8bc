// Package dct implements the separable 8x8 cosine transform used by dctfilter.
//
// Forward is the unnormalized 2D DCT-II and Inverse is the unnormalized 2D DCT-III,
// so Inverse(Forward(b)) equals Gain*b.
package dct

import "math"

const (
	// Size is the block edge length.
	Size = 8
	// BlockSize is the number of samples in a block.
	BlockSize = Size * Size
	// Gain is the factor Inverse(Forward(b)) applies to b, (Size/2)^2.
	Gain = (Size / 2) * (Size / 2)
)

// Block is an 8x8 block in row-major order.
type Block [BlockSize]float64

// Zigzag maps from the zig-zag ordering (lowest to highest spatial frequency)
// to the natural ordering. The walk starts downwards from the DC term.
var Zigzag = [BlockSize]int{
	0, 8, 1, 2, 9, 16, 24, 17,
	10, 3, 4, 11, 18, 25, 32, 40,
	33, 26, 19, 12, 5, 6, 13, 20,
	27, 34, 41, 48, 56, 49, 42, 35,
	28, 21, 14, 7, 15, 22, 29, 36,
	43, 50, 57, 58, 51, 44, 37, 30,
	23, 31, 38, 45, 52, 59, 60, 53,
	46, 39, 47, 54, 61, 62, 55, 63,
}

// cosTable[k][n] = cos(pi*k*(2n+1)/16).
var cosTable [Size][Size]float64

func init() {
	for k := 0; k < Size; k++ {
		for n := 0; n < Size; n++ {
			cosTable[k][n] = math.Cos(math.Pi * float64(k) * float64(2*n+1) / (2 * Size))
		}
	}
}

// Forward applies the 2D DCT-II in place, rows first. b[0] becomes 64 times the block mean.
func Forward(b *Block) {
	var line [Size]float64
	for r := 0; r < Size; r++ {
		row := b[r*Size : r*Size+Size]
		copy(line[:], row)
		forward1D(&line, row, 1)
	}
	for c := 0; c < Size; c++ {
		for r := 0; r < Size; r++ {
			line[r] = b[r*Size+c]
		}
		forward1D(&line, b[c:], Size)
	}
}

// Inverse applies the 2D DCT-III in place, columns first.
func Inverse(b *Block) {
	var line [Size]float64
	for c := 0; c < Size; c++ {
		for r := 0; r < Size; r++ {
			line[r] = b[r*Size+c]
		}
		inverse1D(&line, b[c:], Size)
	}
	for r := 0; r < Size; r++ {
		row := b[r*Size : r*Size+Size]
		copy(line[:], row)
		inverse1D(&line, row, 1)
	}
}

// forward1D writes the DCT-II of in to out[0], out[stride], ...
func forward1D(in *[Size]float64, out []float64, stride int) {
	for k := 0; k < Size; k++ {
		sum := 0.0
		for n := 0; n < Size; n++ {
			sum += in[n] * cosTable[k][n]
		}
		out[k*stride] = sum
	}
}

func inverse1D(in *[Size]float64, out []float64, stride int) {
	for n := 0; n < Size; n++ {
		sum := in[0] / 2
		for k := 1; k < Size; k++ {
			sum += in[k] * cosTable[k][n]
		}
		out[n*stride] = sum
	}
}
