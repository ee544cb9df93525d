package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grove2d/engine/gfx"
)

type Framebuffer struct {
	id    uint32
	depth uint32
	color *Texture
	spec  gfx.FramebufferSpec
}

func (a *API) NewFramebuffer(spec gfx.FramebufferSpec) (gfx.Framebuffer, error) {
	if spec.Width <= 0 || spec.Height <= 0 || spec.Width > gfx.MaxFramebufferSize || spec.Height > gfx.MaxFramebufferSize {
		return nil, fmt.Errorf("glbackend: invalid framebuffer size %dx%d", spec.Width, spec.Height)
	}
	fb := &Framebuffer{spec: spec}
	if err := fb.invalidate(); err != nil {
		fb.Delete()
		return nil, err
	}
	return fb, nil
}

// invalidate rebuilds the attachments at the current spec size.
func (fb *Framebuffer) invalidate() error {
	fb.Delete()

	gl.GenFramebuffers(1, &fb.id)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.id)

	fb.color = &Texture{w: fb.spec.Width, h: fb.spec.Height, format: gfx.TextureRGBA8}
	gl.GenTextures(1, &fb.color.id)
	gl.BindTexture(gl.TEXTURE_2D, fb.color.id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(fb.spec.Width), int32(fb.spec.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.color.id, 0)

	gl.GenTextures(1, &fb.depth)
	gl.BindTexture(gl.TEXTURE_2D, fb.depth)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH24_STENCIL8, int32(fb.spec.Width), int32(fb.spec.Height), 0, gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8, nil)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.TEXTURE_2D, fb.depth, 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("glbackend: framebuffer incomplete (status 0x%x)", status)
	}
	return nil
}

func (fb *Framebuffer) Spec() gfx.FramebufferSpec { return fb.spec }

func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.id)
	gl.Viewport(0, 0, int32(fb.spec.Width), int32(fb.spec.Height))
}

func (fb *Framebuffer) Unbind() { gl.BindFramebuffer(gl.FRAMEBUFFER, 0) }

func (fb *Framebuffer) Resize(w, h int) {
	if !gfx.AcceptFramebufferSize(w, h) {
		return
	}
	fb.spec.Width, fb.spec.Height = w, h
	if err := fb.invalidate(); err != nil {
		panic(err)
	}
}

func (fb *Framebuffer) ColorAttachment() gfx.Texture2D { return fb.color }

func (fb *Framebuffer) Delete() {
	if fb.id != 0 {
		gl.DeleteFramebuffers(1, &fb.id)
		fb.id = 0
	}
	if fb.color != nil {
		fb.color.Delete()
		fb.color = nil
	}
	if fb.depth != 0 {
		gl.DeleteTextures(1, &fb.depth)
		fb.depth = 0
	}
}
