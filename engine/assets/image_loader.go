package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/hubastard/grove2d/engine/gfx"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// Image is tightly packed RGBA8 (stride == 4*Width) with a bottom-left
// origin, ready for upload.
type Image struct {
	Width, Height int
	Pixels        []byte
}

// DecodeImage reads any registered format (png, jpeg, bmp, tiff) and returns
// its pixels flipped to match OpenGL's bottom-left origin.
func DecodeImage(r io.Reader) (Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return Image{}, fmt.Errorf("decode image: %w", err)
	}
	rgba := imageToRGBA(img)
	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()
	if w == 0 || h == 0 {
		return Image{}, fmt.Errorf("decode %s: empty image", format)
	}
	return Image{Width: w, Height: h, Pixels: FlipRows(rgba.Pix, rgba.Stride, w*4, h)}, nil
}

// LoadImage decodes the image file at path.
func LoadImage(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := DecodeImage(f)
	if err != nil {
		return Image{}, fmt.Errorf("%q: %w", path, err)
	}
	return img, nil
}

// LoadTexture uploads the image at path as an RGBA8 texture. A missing or
// unreadable file is an error; there is no placeholder fallback.
func LoadTexture(api gfx.API, path string, filter gfx.TextureFilter) (gfx.Texture2D, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	tex, err := api.NewTexture(gfx.TextureSpec{
		Width: img.Width, Height: img.Height,
		Format:    gfx.TextureRGBA8,
		MinFilter: filter,
		MagFilter: filter,
		Wrap:      gfx.WrapRepeat,
		Pixels:    img.Pixels,
	})
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", path, err)
	}
	return tex, nil
}

// FlipRows copies h rows of rowBytes from src (stride apart) in reverse order
// into a tight buffer.
func FlipRows(src []byte, stride, rowBytes, h int) []byte {
	out := make([]byte, rowBytes*h)
	for y := 0; y < h; y++ {
		dst := (h - 1 - y) * rowBytes
		copy(out[dst:dst+rowBytes], src[y*stride:y*stride+rowBytes])
	}
	return out
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
