package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/vearutop/dctfilter"
)

const defaultThreshold = 128

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "psnr":
		if err := runPSNR(os.Args[2:]); err != nil {
			fail(err)
		}
	case "-h", "-help", "--help", "help":
		usage()
	default:
		mode, err := dctfilter.ParseMode(os.Args[1])
		if err != nil {
			usage()
			os.Exit(2)
		}
		if err := runFilter(mode, os.Args[2:]); err != nil {
			fail(err)
		}
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: dctfilter <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  keep      -in input.png -out output.png")
	fmt.Fprintln(os.Stderr, "  zonal     -in input.png -out output.png")
	fmt.Fprintln(os.Stderr, "  threshold -in input.png -out output.png [-t 128]   (magnitude, 0-255)")
	fmt.Fprintln(os.Stderr, "  fraction  -in input.png -out output.png -t 50      (percent, 0-100)")
	fmt.Fprintln(os.Stderr, "  zigzag    -in input.png -out output.png -t 50      (percent, 0-100)")
	fmt.Fprintln(os.Stderr, "  psnr      -a original.png -b reconstructed.png")
	fmt.Fprintln(os.Stderr, "Filter commands also accept [-q 95] [-workers 0] [-snap].")
}

func runFilter(mode dctfilter.Mode, args []string) error {
	fs := flag.NewFlagSet(mode.String(), flag.ContinueOnError)
	inPath := fs.String("in", "", "source image")
	outPath := fs.String("out", "", "destination image, format by extension (png, jpg, bmp, tif)")
	q := fs.Int("q", 95, "JPEG quality of the destination")
	workers := fs.Int("workers", 0, "block workers, 0 uses all CPUs")
	snap := fs.Bool("snap", false, "resample the source down to multiples of 8")
	param := -1
	switch mode {
	case dctfilter.ModeThreshold:
		fs.IntVar(&param, "t", defaultThreshold, "magnitude threshold (0-255)")
	case dctfilter.ModeFraction, dctfilter.ModeZigzag:
		fs.IntVar(&param, "t", -1, "percentage of coefficients to remove (0-100)")
	}
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}

	res, err := dctfilter.FilterFile(*inPath, *outPath, dctfilter.Policy{Mode: mode, Param: param},
		func(opt *dctfilter.FileOptions) {
			opt.Quality = *q
			opt.Workers = *workers
			opt.Snap = *snap
		})
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, res.Distortion)
	return nil
}

func runPSNR(args []string) error {
	fs := flag.NewFlagSet("psnr", flag.ContinueOnError)
	a := fs.String("a", "", "original image")
	b := fs.String("b", "", "reconstructed image")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *a == "" || *b == "" {
		return errors.New("missing required arguments")
	}
	d, err := dctfilter.CompareFiles(*a, *b)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, d)
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
