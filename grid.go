package dctfilter

import (
	"math"

	"github.com/vearutop/dctfilter/internal/dct"
)

// grid is a block arena, block (row, col) is stored at row*cols+col.
type grid struct {
	cols   int
	rows   int
	blocks []dct.Block
}

func newGrid(w, h int) *grid {
	cols, rows := w/dct.Size, h/dct.Size
	return &grid{cols: cols, rows: rows, blocks: make([]dct.Block, cols*rows)}
}

func (g *grid) len() int {
	return len(g.blocks)
}

func (g *grid) coords(i int) (row, col int) {
	return i / g.cols, i % g.cols
}

// load copies samples of src into the blocks, normalized to [0,1].
func (g *grid) load(src *Gray) {
	for y := 0; y < src.Height; y++ {
		br, py := y/dct.Size, y%dct.Size
		line := src.Pix[y*src.Width : (y+1)*src.Width]
		for x, v := range line {
			b := &g.blocks[br*g.cols+x/dct.Size]
			b[py*dct.Size+x%dct.Size] = float64(v) / sampleMax
		}
	}
}

// store writes the blocks into dst, truncating each value into the byte range.
func (g *grid) store(dst *Gray) {
	for y := 0; y < dst.Height; y++ {
		br, py := y/dct.Size, y%dct.Size
		line := dst.Pix[y*dst.Width : (y+1)*dst.Width]
		for x := range line {
			b := &g.blocks[br*g.cols+x/dct.Size]
			line[x] = truncateToByte(b[py*dct.Size+x%dct.Size])
		}
	}
}

func truncateToByte(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
