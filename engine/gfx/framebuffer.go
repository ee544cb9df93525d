package gfx

import "github.com/hubastard/grove2d/engine/logging"

// MaxFramebufferSize bounds each framebuffer dimension.
const MaxFramebufferSize = 8192

type FramebufferSpec struct {
	Width, Height   int
	Samples         int
	SwapChainTarget bool
}

// Framebuffer is an offscreen render target with one color attachment.
type Framebuffer interface {
	Spec() FramebufferSpec
	// Bind redirects rendering to the framebuffer and sets the viewport to its size.
	Bind()
	Unbind()
	// Resize reallocates the attachments. Out-of-range sizes are ignored.
	Resize(w, h int)
	ColorAttachment() Texture2D
	Delete()
}

// AcceptFramebufferSize reports whether w x h is a legal framebuffer size and
// logs the rejected request otherwise.
func AcceptFramebufferSize(w, h int) bool {
	if w <= 0 || h <= 0 || w > MaxFramebufferSize || h > MaxFramebufferSize {
		logging.Logger().Warn("framebuffer resize rejected", "width", w, "height", h)
		return false
	}
	return true
}
