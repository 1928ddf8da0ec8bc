package dctfilter

import "fmt"

// FileOptions controls FilterFile.
type FileOptions struct {
	Options
	// Quality is the JPEG quality for a .jpg destination, default 95.
	Quality int
	// Snap resamples a source whose dimensions are not multiples of 8 down to the
	// nearest ones instead of failing with ErrInvalidDimensions.
	Snap     bool
	OnResult func(res *Result)
}

// Result holds the buffers and the distortion of a FilterFile run.
type Result struct {
	Source     *Gray
	Filtered   *Gray
	Distortion Distortion
}

// FilterFile reads a source image, filters it with p and writes the reconstruction to
// outPath. Validation failures return before outPath is created.
func FilterFile(inPath, outPath string, p Policy, opts ...func(o *FileOptions)) (*Result, error) {
	opt := FileOptions{
		Quality: defaultQuality,
	}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if _, err := encoderFor(outPath); err != nil {
		return nil, err
	}

	img, err := DecodeImage(inPath)
	if err != nil {
		return nil, err
	}
	if opt.Snap {
		img = SnapToBlocks(img)
	}
	src := GrayFromImage(img)

	filtered, err := Filter(src, p, func(o *Options) {
		*o = opt.Options
	})
	if err != nil {
		return nil, fmt.Errorf("filter %s: %w", inPath, err)
	}
	if err := SaveGray(outPath, filtered, opt.Quality); err != nil {
		return nil, fmt.Errorf("write filtered: %w", err)
	}

	d, err := Measure(src, filtered)
	if err != nil {
		return nil, err
	}
	res := Result{
		Source:     src,
		Filtered:   filtered,
		Distortion: d,
	}
	if opt.OnResult != nil {
		opt.OnResult(&res)
	}
	return &res, nil
}

// CompareFiles measures the distortion between two image files of equal size.
func CompareFiles(origPath, reconPath string) (Distortion, error) {
	orig, err := LoadGray(origPath)
	if err != nil {
		return Distortion{}, err
	}
	recon, err := LoadGray(reconPath)
	if err != nil {
		return Distortion{}, err
	}
	return Measure(orig, recon)
}
