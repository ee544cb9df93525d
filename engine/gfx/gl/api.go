// Package glbackend implements gfx.API on OpenGL 3.3 core.
package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove2d/engine/gfx"
	"github.com/hubastard/grove2d/engine/logging"
)

// API drives the current GL context. The window must have made its context
// current before Init.
type API struct {
	maxSlots int
	info     gfx.DeviceInfo
}

var _ gfx.API = (*API)(nil)

func New() *API { return &API{} }

func (a *API) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("glbackend: init: %w", err)
	}
	a.info = gfx.DeviceInfo{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
	}
	var units int32
	gl.GetIntegerv(gl.MAX_TEXTURE_IMAGE_UNITS, &units)
	a.maxSlots = int(units)

	logging.Logger().Info("OpenGL info",
		"vendor", a.info.Vendor,
		"renderer", a.info.Renderer,
		"version", a.info.Version,
		"texture_units", a.maxSlots,
	)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	return nil
}

func (a *API) Info() gfx.DeviceInfo { return a.info }
func (a *API) MaxTextureSlots() int { return a.maxSlots }

func (a *API) SetViewport(x, y, w, h int) {
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
}

func (a *API) SetClearColor(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

func (a *API) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (a *API) DrawIndexed(va gfx.VertexArray, indexCount int) {
	va.Bind()
	if indexCount == 0 {
		indexCount = va.IndexBuffer().Count()
	}
	gl.DrawElements(gl.TRIANGLES, int32(indexCount), gl.UNSIGNED_INT, nil)
}

func (a *API) Shutdown() {}
