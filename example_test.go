package dctfilter_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vearutop/dctfilter"
)

func ExampleFilter() {
	src := dctfilter.NewGray(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			src.Set(x, y, uint8(16*(x/8)+8*(y/8)))
		}
	}

	out, err := dctfilter.Filter(src, dctfilter.Policy{Mode: dctfilter.ModeZonal})
	if err != nil {
		fmt.Println(err)
		return
	}
	d, err := dctfilter.Measure(src, out)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d)

	// Output:
	// MSE: 0, PSNR: no distortion
}

func ExampleFilterFile() {
	res, err := dctfilter.FilterFile(filepath.FromSlash("testdata/lena.png"), filepath.Join(os.TempDir(), "lena_zigzag.png"),
		dctfilter.Policy{Mode: dctfilter.ModeZigzag, Param: 50})
	if err != nil {
		return
	}
	_, _ = res.Distortion.PSNR()
}
