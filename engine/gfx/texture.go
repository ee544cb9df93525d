package gfx

import "fmt"

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
	TextureRGB8
)

// BytesPerPixel of the client-side pixel data.
func (f TextureFormat) BytesPerPixel() int {
	switch f {
	case TextureRGBA8:
		return 4
	case TextureRGB8:
		return 3
	}
	panic(fmt.Sprintf("gfx: unknown texture format %d", int(f)))
}

type TextureFilter int

const (
	FilterLinear TextureFilter = iota
	FilterNearest
)

type TextureWrap int

const (
	WrapRepeat TextureWrap = iota
	WrapClamp
)

// TextureSpec describes a texture to allocate. Pixels may be nil for a blank
// texture filled later with SetData.
type TextureSpec struct {
	Width, Height int
	Format        TextureFormat
	MinFilter     TextureFilter
	MagFilter     TextureFilter
	Wrap          TextureWrap
	Pixels        []byte
}

// Validate checks the dimensions and, when present, the pixel payload size.
func (s TextureSpec) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("gfx: invalid texture size %dx%d", s.Width, s.Height)
	}
	if s.Pixels != nil {
		return CheckPixelData(s.Width, s.Height, s.Format, s.Pixels)
	}
	return nil
}

// CheckPixelData fails unless pixels covers the whole texture exactly.
func CheckPixelData(w, h int, f TextureFormat, pixels []byte) error {
	if want := w * h * f.BytesPerPixel(); len(pixels) != want {
		return fmt.Errorf("gfx: texture data is %d bytes, want %d for %dx%d", len(pixels), want, w, h)
	}
	return nil
}

// Texture2D is a 2D image resource. Two Texture2D values are the same texture
// iff they compare equal with ==; backends return pointer types.
type Texture2D interface {
	Width() int
	Height() int
	RendererID() uint32
	Format() TextureFormat
	// SetData replaces every pixel; len must be Width*Height*bpp.
	SetData(pixels []byte) error
	Bind(slot int)
	Delete()
}
