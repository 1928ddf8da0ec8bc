package dctfilter

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vearutop/dctfilter/internal/dct"
)

// Mode selects a coefficient selection policy.
type Mode int

const (
	// ModeKeep keeps every coefficient.
	ModeKeep Mode = iota
	// ModeZonal keeps the low-frequency triangle row+col < 8.
	ModeZonal
	// ModeThreshold zeroes coefficients with magnitude below Param (0-255).
	ModeThreshold
	// ModeFraction zeroes the smallest-magnitude Param percent (0-100) of coefficients.
	ModeFraction
	// ModeZigzag zeroes coefficients matching the magnitudes at the high-frequency
	// end of the zig-zag walk, Param percent (0-100) of it.
	ModeZigzag
)

var modeNames = map[Mode]string{
	ModeKeep:      "keep",
	ModeZonal:     "zonal",
	ModeThreshold: "threshold",
	ModeFraction:  "fraction",
	ModeZigzag:    "zigzag",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode resolves a policy name. Task numbers 1-4 are accepted as aliases
// for zonal, threshold, fraction and zigzag.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "keep", "none":
		return ModeKeep, nil
	case "zonal", "1":
		return ModeZonal, nil
	case "threshold", "2":
		return ModeThreshold, nil
	case "fraction", "3":
		return ModeFraction, nil
	case "zigzag", "4":
		return ModeZigzag, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Policy is a selection mode with its parameter.
type Policy struct {
	Mode Mode
	// Param is the magnitude threshold for ModeThreshold or the percentage for
	// ModeFraction and ModeZigzag, ignored otherwise.
	Param int
}

func (p Policy) String() string {
	switch p.Mode {
	case ModeThreshold, ModeFraction, ModeZigzag:
		return fmt.Sprintf("%s(%d)", p.Mode, p.Param)
	default:
		return p.Mode.String()
	}
}

// Validate checks the mode and the parameter domain.
func (p Policy) Validate() error {
	switch p.Mode {
	case ModeKeep, ModeZonal:
		return nil
	case ModeThreshold:
		if p.Param < 0 || p.Param > maxThreshold {
			return fmt.Errorf("%w: threshold %d not in [0,%d]", ErrInvalidParameter, p.Param, maxThreshold)
		}
		return nil
	case ModeFraction, ModeZigzag:
		if p.Param < 0 || p.Param > maxPercentage {
			return fmt.Errorf("%w: percentage %d not in [0,%d]", ErrInvalidParameter, p.Param, maxPercentage)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownPolicy, p.Mode)
}

// Apply zeroes coefficients of c according to p. Kept coefficients are not modified.
// Apply expects a validated policy, an unknown mode keeps everything.
func (p Policy) Apply(c *dct.Block) {
	switch p.Mode {
	case ModeZonal:
		selectZonal(c)
	case ModeThreshold:
		selectThreshold(c, float64(p.Param))
	case ModeFraction:
		selectFraction(c, fractionBound(p.Param))
	case ModeZigzag:
		selectZigzag(c, fractionBound(p.Param))
	}
}

// Zeroed counts coefficients that are non-zero in before and zero in after.
func Zeroed(before, after *dct.Block) int {
	n := 0
	for i := range before {
		if before[i] != 0 && after[i] == 0 {
			n++
		}
	}
	return n
}

func selectZonal(c *dct.Block) {
	for i := range c {
		if i/dct.Size+i%dct.Size >= dct.Size {
			c[i] = 0
		}
	}
}

func selectThreshold(c *dct.Block, t float64) {
	for i, v := range c {
		if math.Abs(v) < t {
			c[i] = 0
		}
	}
}

// fractionBound is the index of the last removed entry, floor(64*pct/100) capped
// so that 100% removes all 64 coefficients.
func fractionBound(pct int) int {
	bound := dct.BlockSize * pct / maxPercentage
	if bound > dct.BlockSize-1 {
		bound = dct.BlockSize - 1
	}
	if bound < 0 {
		bound = 0
	}
	return bound
}

// selectFraction removes every coefficient whose magnitude is among the bound+1
// smallest. Duplicate-magnitude coefficients at the cutoff are all removed together,
// which can remove more than bound+1 entries.
func selectFraction(c *dct.Block, bound int) {
	var mags [dct.BlockSize]float64
	for i, v := range c {
		mags[i] = math.Abs(v)
	}
	sort.Float64s(mags[:])
	cutoff := mags[bound]
	for i, v := range c {
		if math.Abs(v) <= cutoff {
			c[i] = 0
		}
	}
}

// selectZigzag walks the zig-zag order from the highest frequency and removes every
// coefficient whose magnitude equals one of the first bound+1 magnitudes met.
// Like selectFraction, equal magnitudes elsewhere in the block go too.
func selectZigzag(c *dct.Block, bound int) {
	tail := make(map[float64]struct{}, bound+1)
	for i := 0; i <= bound; i++ {
		tail[math.Abs(c[dct.Zigzag[dct.BlockSize-1-i]])] = struct{}{}
	}
	for i, v := range c {
		if _, ok := tail[math.Abs(v)]; ok {
			c[i] = 0
		}
	}
}
