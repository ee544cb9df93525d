package glbackend

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grove2d/engine/gfx"
)

type Texture struct {
	id     uint32
	w, h   int
	format gfx.TextureFormat
}

func glFormats(f gfx.TextureFormat) (internal int32, data uint32) {
	switch f {
	case gfx.TextureRGB8:
		return gl.RGB8, gl.RGB
	default:
		return gl.RGBA8, gl.RGBA
	}
}

func glFilter(f gfx.TextureFilter) int32 {
	if f == gfx.FilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func glWrap(w gfx.TextureWrap) int32 {
	if w == gfx.WrapClamp {
		return gl.CLAMP_TO_EDGE
	}
	return gl.REPEAT
}

func (a *API) NewTexture(spec gfx.TextureSpec) (gfx.Texture2D, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	t := &Texture{w: spec.Width, h: spec.Height, format: spec.Format}
	internal, data := glFormats(spec.Format)

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(spec.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(spec.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(spec.Wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(spec.Wrap))

	var pix unsafe.Pointer
	if spec.Pixels != nil {
		pix = gl.Ptr(spec.Pixels)
	}
	t.unpackAlignment()
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(t.w), int32(t.h), 0, data, gl.UNSIGNED_BYTE, pix)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// RGB rows are not 4-byte aligned for most widths.
func (t *Texture) unpackAlignment() {
	if t.format == gfx.TextureRGB8 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	} else {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	}
}

func (t *Texture) Width() int                { return t.w }
func (t *Texture) Height() int               { return t.h }
func (t *Texture) RendererID() uint32        { return t.id }
func (t *Texture) Format() gfx.TextureFormat { return t.format }

func (t *Texture) SetData(pixels []byte) error {
	if err := gfx.CheckPixelData(t.w, t.h, t.format, pixels); err != nil {
		return err
	}
	_, data := glFormats(t.format)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	t.unpackAlignment()
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(t.w), int32(t.h), data, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return nil
}

func (t *Texture) Bind(slot int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

func (t *Texture) Delete() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
