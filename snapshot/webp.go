package snapshot

import (
	"image"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"github.com/animus-rig/animus/aerror"
)

// Downsample scales a supersampled render down to targetSize with CatmullRom
// filtering, which keeps thin segments smooth instead of stair-stepped.
// Drawn pixels are fully opaque on a fully transparent background, so the
// filter can run on straight alpha directly.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WriteWebP writes an image to path as a lossless webp file.
func WriteWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return aerror.New("snapshot: creating %s: %v", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return aerror.New("snapshot: encoding %s: %v", path, err)
	}
	return nil
}
