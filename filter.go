package dctfilter

import "github.com/vearutop/dctfilter/internal/dct"

// Options controls block processing.
type Options struct {
	// Workers limits the number of goroutines, <= 0 uses GOMAXPROCS and 1 runs sequentially.
	Workers int
	// OnBlock is called after selection with the block position and the number of
	// coefficients the policy zeroed. It may be called concurrently.
	OnBlock func(row, col, zeroed int)
}

// Filter runs src through the block transform with the given selection policy and
// returns the reconstruction. Both precondition checks happen before any block is processed.
func Filter(src *Gray, p Policy, opts ...func(o *Options)) (*Gray, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := src.CheckBlocks(); err != nil {
		return nil, err
	}

	var opt Options
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	g := newGrid(src.Width, src.Height)
	g.load(src)
	parallelFor(g.len(), opt.Workers, func(start, end int) {
		for i := start; i < end; i++ {
			zeroed := filterBlock(&g.blocks[i], p)
			if opt.OnBlock != nil {
				row, col := g.coords(i)
				opt.OnBlock(row, col, zeroed)
			}
		}
	})

	out := NewGray(src.Width, src.Height)
	g.store(out)
	return out, nil
}

// filterBlock transforms a normalized block in place and returns the number of
// coefficients zeroed by the policy. For an untouched block the result is
// 256/255 of the input samples, which truncates back to the original bytes.
func filterBlock(b *dct.Block, p Policy) int {
	dct.Forward(b)
	for i := range b {
		b[i] *= CoefficientScale
	}
	before := *b
	p.Apply(b)
	zeroed := Zeroed(&before, b)
	for i := range b {
		b[i] /= InverseScale
	}
	dct.Inverse(b)
	return zeroed
}

