package dctfilter

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder.
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type encodeFunc func(w io.Writer, img image.Image, quality int) error

func encoderFor(path string) (encodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return func(w io.Writer, img image.Image, _ int) error {
			return png.Encode(w, img)
		}, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image, quality int) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
		}, nil
	case ".bmp":
		return func(w io.Writer, img image.Image, _ int) error {
			return bmp.Encode(w, img)
		}, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image, _ int) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// DecodeImage reads an image file in any registered format, including BMP and TIFF.
func DecodeImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// LoadGray decodes an image file and converts it to grayscale.
func LoadGray(path string) (*Gray, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return GrayFromImage(img), nil
}

// SaveGray encodes g to path, the format follows the file extension (png, jpg, bmp, tif).
// Quality only applies to JPEG. A failed encode leaves no file behind.
func SaveGray(path string, g *Gray, quality int) (err error) {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}
	if quality <= 0 || quality > 100 {
		quality = defaultQuality
	}

	path = filepath.Clean(path)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if clErr := f.Close(); clErr != nil && err == nil {
			err = clErr
		}
		if err != nil {
			err = errors.Join(err, removeIfExists(path))
		}
	}()

	if err := enc(f, g.Image(), quality); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// SnapToBlocks resamples img down to the nearest dimensions that are multiples of
// BlockEdge. Images that already fit, or are smaller than one block, are returned as is.
func SnapToBlocks(img image.Image) image.Image {
	b := img.Bounds()
	w := b.Dx() / BlockEdge * BlockEdge
	h := b.Dy() / BlockEdge * BlockEdge
	if w == 0 || h == 0 || (w == b.Dx() && h == b.Dy()) {
		return img
	}
	return resize.Resize(uint(w), uint(h), img, resize.Lanczos3)
}
