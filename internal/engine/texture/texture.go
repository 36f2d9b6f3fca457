// Package texture decodes image files into pixel buffers ready for GL upload.
package texture

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is 8-bit RGBA pixel data with the bottom row first, the order
// glTexImage2D expects.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// Load reads and decodes an image file.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening texture: %w", err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes any registered image format.
func Decode(r io.Reader) (*Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	if src.Bounds().Empty() {
		return nil, fmt.Errorf("decoding %s: empty image", format)
	}
	return FromImage(src), nil
}

// FromImage converts img to RGBA and flips it bottom-up.
func FromImage(img image.Image) *Image {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	w, h := b.Dx(), b.Dy()
	return &Image{
		Width:  w,
		Height: h,
		Pix:    FlipRows(rgba.Pix, rgba.Stride, w*4, h),
	}
}

// FlipRows returns a tightly packed copy of pix with the row order
// reversed. stride is the distance between rows in pix, rowSize the number
// of bytes copied per row.
func FlipRows(pix []byte, stride, rowSize, rows int) []byte {
	out := make([]byte, rowSize*rows)
	for y := 0; y < rows; y++ {
		src := (rows - 1 - y) * stride
		copy(out[y*rowSize:(y+1)*rowSize], pix[src:src+rowSize])
	}
	return out
}
