package headless

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove2d/engine/gfx"
)

// ---- buffers ----

type VertexBuffer struct {
	id      uint32
	data    []byte
	used    int
	layout  gfx.BufferLayout
	Uploads int
	deleted bool
}

func (a *API) NewVertexBuffer(size int) (gfx.VertexBuffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("headless: invalid vertex buffer size %d", size)
	}
	return &VertexBuffer{id: a.id(), data: make([]byte, size)}, nil
}

func (a *API) NewVertexBufferWithData(data []byte) (gfx.VertexBuffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("headless: empty vertex data")
	}
	vb := &VertexBuffer{id: a.id(), data: append([]byte(nil), data...), used: len(data), Uploads: 1}
	return vb, nil
}

func (vb *VertexBuffer) Bind()   {}
func (vb *VertexBuffer) Unbind() {}
func (vb *VertexBuffer) Size() int { return len(vb.data) }

func (vb *VertexBuffer) SetData(data []byte) {
	if len(data) > len(vb.data) {
		panic(fmt.Sprintf("headless: upload of %d bytes exceeds vertex buffer of %d", len(data), len(vb.data)))
	}
	copy(vb.data, data)
	vb.used = len(data)
	vb.Uploads++
}

func (vb *VertexBuffer) Layout() gfx.BufferLayout    { return vb.layout }
func (vb *VertexBuffer) SetLayout(l gfx.BufferLayout) { vb.layout = l }
func (vb *VertexBuffer) Delete()                      { vb.deleted = true }
func (vb *VertexBuffer) Deleted() bool                { return vb.deleted }

// Contents returns the bytes of the last upload.
func (vb *VertexBuffer) Contents() []byte { return vb.data[:vb.used] }

type IndexBuffer struct {
	id      uint32
	indices []uint32
	deleted bool
}

func (a *API) NewIndexBuffer(indices []uint32) (gfx.IndexBuffer, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("headless: empty index data")
	}
	return &IndexBuffer{id: a.id(), indices: append([]uint32(nil), indices...)}, nil
}

func (ib *IndexBuffer) Bind()          {}
func (ib *IndexBuffer) Unbind()        {}
func (ib *IndexBuffer) Count() int     { return len(ib.indices) }
func (ib *IndexBuffer) Delete()        { ib.deleted = true }
func (ib *IndexBuffer) Deleted() bool  { return ib.deleted }
func (ib *IndexBuffer) Indices() []uint32 { return ib.indices }

// ---- vertex array ----

type VertexArray struct {
	id        uint32
	vbs       []*VertexBuffer
	ib        *IndexBuffer
	slots     []gfx.AttributeSlot
	nextIndex uint32
	deleted   bool
}

func (a *API) NewVertexArray() (gfx.VertexArray, error) {
	return &VertexArray{id: a.id()}, nil
}

func (va *VertexArray) Bind()   {}
func (va *VertexArray) Unbind() {}

func (va *VertexArray) AddVertexBuffer(vb gfx.VertexBuffer) {
	hb, ok := vb.(*VertexBuffer)
	if !ok {
		panic(fmt.Sprintf("headless: foreign vertex buffer %T", vb))
	}
	slots := gfx.AttributeSlots(hb.layout, va.nextIndex)
	va.slots = append(va.slots, slots...)
	va.nextIndex += uint32(len(slots))
	va.vbs = append(va.vbs, hb)
}

func (va *VertexArray) SetIndexBuffer(ib gfx.IndexBuffer) {
	hb, ok := ib.(*IndexBuffer)
	if !ok {
		panic(fmt.Sprintf("headless: foreign index buffer %T", ib))
	}
	va.ib = hb
}

func (va *VertexArray) VertexBuffers() []gfx.VertexBuffer {
	out := make([]gfx.VertexBuffer, len(va.vbs))
	for i, vb := range va.vbs {
		out[i] = vb
	}
	return out
}

func (va *VertexArray) IndexBuffer() gfx.IndexBuffer {
	if va.ib == nil {
		return nil
	}
	return va.ib
}

// Slots returns every attribute slot enabled so far.
func (va *VertexArray) Slots() []gfx.AttributeSlot { return va.slots }

func (va *VertexArray) Delete()       { va.deleted = true }
func (va *VertexArray) Deleted() bool { return va.deleted }

// ---- textures ----

type Texture struct {
	api     *API
	id      uint32
	w, h    int
	format  gfx.TextureFormat
	pixels  []byte
	deleted bool
}

func (a *API) NewTexture(spec gfx.TextureSpec) (gfx.Texture2D, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	t := &Texture{api: a, id: a.id(), w: spec.Width, h: spec.Height, format: spec.Format}
	t.pixels = make([]byte, spec.Width*spec.Height*spec.Format.BytesPerPixel())
	copy(t.pixels, spec.Pixels)
	return t, nil
}

func (t *Texture) Width() int                 { return t.w }
func (t *Texture) Height() int                { return t.h }
func (t *Texture) RendererID() uint32         { return t.id }
func (t *Texture) Format() gfx.TextureFormat  { return t.format }
func (t *Texture) Pixels() []byte             { return t.pixels }
func (t *Texture) Bind(slot int)              { t.api.bindTexture(slot, t) }
func (t *Texture) Delete()                    { t.deleted = true }
func (t *Texture) Deleted() bool              { return t.deleted }

func (t *Texture) SetData(pixels []byte) error {
	if err := gfx.CheckPixelData(t.w, t.h, t.format, pixels); err != nil {
		return err
	}
	copy(t.pixels, pixels)
	return nil
}

// ---- shaders ----

type Shader struct {
	api      *API
	name     string
	Stages   map[gfx.ShaderStage]string
	uniforms map[string]any
	writes   map[string]int
	deleted  bool
}

func (a *API) NewShader(name, source string) (gfx.Shader, error) {
	stages, err := gfx.PreprocessShader(source)
	if err != nil {
		return nil, fmt.Errorf("headless: shader %q: %w", name, err)
	}
	for _, st := range []gfx.ShaderStage{gfx.StageVertex, gfx.StageFragment} {
		if _, ok := stages[st]; !ok {
			return nil, fmt.Errorf("headless: shader %q: missing %s stage", name, st)
		}
	}
	return &Shader{
		api:      a,
		name:     name,
		Stages:   stages,
		uniforms: make(map[string]any),
		writes:   make(map[string]int),
	}, nil
}

func (s *Shader) Name() string { return s.name }
func (s *Shader) Bind()        { s.api.shader = s }

func (s *Shader) Unbind() {
	if s.api.shader == s {
		s.api.shader = nil
	}
}

func (s *Shader) set(name string, v any) {
	s.uniforms[name] = v
	s.writes[name]++
}

func (s *Shader) SetInt(name string, v int32) { s.set(name, v) }
func (s *Shader) SetIntArray(name string, values []int32) {
	s.set(name, append([]int32(nil), values...))
}
func (s *Shader) SetFloat(name string, v float32)      { s.set(name, v) }
func (s *Shader) SetFloat2(name string, v mgl32.Vec2)  { s.set(name, v) }
func (s *Shader) SetFloat3(name string, v mgl32.Vec3)  { s.set(name, v) }
func (s *Shader) SetFloat4(name string, v mgl32.Vec4)  { s.set(name, v) }
func (s *Shader) SetMat4(name string, m mgl32.Mat4)    { s.set(name, m) }
func (s *Shader) Delete()                              { s.deleted = true }
func (s *Shader) Deleted() bool                        { return s.deleted }

// Uniform returns the last value written to name.
func (s *Shader) Uniform(name string) (any, bool) {
	v, ok := s.uniforms[name]
	return v, ok
}

// UniformWrites counts how many times name was written.
func (s *Shader) UniformWrites(name string) int { return s.writes[name] }

// ---- framebuffers ----

type Framebuffer struct {
	api   *API
	spec  gfx.FramebufferSpec
	color *Texture
	// Generation increments every time the attachments are rebuilt.
	Generation int
}

func (a *API) NewFramebuffer(spec gfx.FramebufferSpec) (gfx.Framebuffer, error) {
	if spec.Width <= 0 || spec.Height <= 0 || spec.Width > gfx.MaxFramebufferSize || spec.Height > gfx.MaxFramebufferSize {
		return nil, fmt.Errorf("headless: invalid framebuffer size %dx%d", spec.Width, spec.Height)
	}
	fb := &Framebuffer{api: a, spec: spec}
	fb.invalidate()
	return fb, nil
}

func (fb *Framebuffer) invalidate() {
	if fb.color != nil {
		fb.color.Delete()
	}
	fb.color = &Texture{
		api: fb.api, id: fb.api.id(),
		w: fb.spec.Width, h: fb.spec.Height,
		format: gfx.TextureRGBA8,
		pixels: make([]byte, fb.spec.Width*fb.spec.Height*4),
	}
	fb.Generation++
}

func (fb *Framebuffer) Spec() gfx.FramebufferSpec { return fb.spec }

func (fb *Framebuffer) Bind() {
	fb.api.fb = fb
	fb.api.SetViewport(0, 0, fb.spec.Width, fb.spec.Height)
}

func (fb *Framebuffer) Unbind() {
	if fb.api.fb == fb {
		fb.api.fb = nil
	}
}

func (fb *Framebuffer) Resize(w, h int) {
	if !gfx.AcceptFramebufferSize(w, h) {
		return
	}
	fb.spec.Width, fb.spec.Height = w, h
	fb.invalidate()
}

func (fb *Framebuffer) ColorAttachment() gfx.Texture2D { return fb.color }
func (fb *Framebuffer) Delete()                        { fb.color.Delete() }
