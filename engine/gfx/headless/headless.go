// Package headless is an in-memory gfx backend. It keeps every resource in
// host memory and records each draw, so renderers can run without a GPU.
package headless

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove2d/engine/gfx"
)

// DefaultTextureSlots matches the unit count of a typical desktop GPU.
const DefaultTextureSlots = 32

// DrawCall is a snapshot taken at DrawIndexed time.
type DrawCall struct {
	IndexCount  int
	VertexArray *VertexArray
	IndexBuffer *IndexBuffer
	Shader      *Shader
	// Vertices is a copy of the first vertex buffer's last upload.
	Vertices []byte
	// Bound holds the textures bound per unit since the previous draw.
	Bound map[int]*Texture
}

// API implements gfx.API.
type API struct {
	Viewport   [4]int
	ClearColor mgl32.Vec4
	Clears     int
	Draws      []DrawCall

	maxSlots int
	nextID   uint32
	units    map[int]*Texture
	bound    map[int]*Texture
	shader   *Shader
	fb       *Framebuffer
	inited   bool
}

var _ gfx.API = (*API)(nil)

// New returns a backend exposing maxTextureSlots units (DefaultTextureSlots when <= 0).
func New(maxTextureSlots int) *API {
	if maxTextureSlots <= 0 {
		maxTextureSlots = DefaultTextureSlots
	}
	return &API{
		maxSlots: maxTextureSlots,
		units:    make(map[int]*Texture),
		bound:    make(map[int]*Texture),
	}
}

func (a *API) Init() error {
	a.inited = true
	return nil
}

func (a *API) Initialized() bool { return a.inited }

func (a *API) SetViewport(x, y, w, h int) { a.Viewport = [4]int{x, y, w, h} }
func (a *API) SetClearColor(c mgl32.Vec4) { a.ClearColor = c }
func (a *API) Clear()                     { a.Clears++ }
func (a *API) MaxTextureSlots() int       { return a.maxSlots }

func (a *API) Info() gfx.DeviceInfo {
	return gfx.DeviceInfo{Vendor: "grove2d", Renderer: "headless", Version: "1.0"}
}

func (a *API) DrawIndexed(va gfx.VertexArray, indexCount int) {
	v, ok := va.(*VertexArray)
	if !ok {
		panic(fmt.Sprintf("headless: foreign vertex array %T", va))
	}
	if v.ib == nil {
		panic("headless: draw without index buffer")
	}
	if indexCount > v.ib.Count() {
		panic(fmt.Sprintf("headless: draw of %d indices exceeds index buffer of %d", indexCount, v.ib.Count()))
	}
	dc := DrawCall{
		IndexCount:  indexCount,
		VertexArray: v,
		IndexBuffer: v.ib,
		Shader:      a.shader,
		Bound:       a.bound,
	}
	if len(v.vbs) > 0 {
		vb := v.vbs[0]
		dc.Vertices = append([]byte(nil), vb.data[:vb.used]...)
	}
	a.Draws = append(a.Draws, dc)
	a.bound = make(map[int]*Texture)
}

// Unit returns the texture currently bound to slot, or nil.
func (a *API) Unit(slot int) *Texture { return a.units[slot] }

// BoundFramebuffer returns the active render target, nil for the default one.
func (a *API) BoundFramebuffer() *Framebuffer { return a.fb }

// ResetDraws clears the recorded draw list.
func (a *API) ResetDraws() { a.Draws = a.Draws[:0] }

func (a *API) Shutdown() {
	a.units = make(map[int]*Texture)
	a.bound = make(map[int]*Texture)
	a.shader = nil
	a.inited = false
}

func (a *API) id() uint32 {
	a.nextID++
	return a.nextID
}

func (a *API) bindTexture(slot int, t *Texture) {
	if slot < 0 || slot >= a.maxSlots {
		panic(fmt.Sprintf("headless: texture slot %d out of range [0,%d)", slot, a.maxSlots))
	}
	a.units[slot] = t
	a.bound[slot] = t
}
