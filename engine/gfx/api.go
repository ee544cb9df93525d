// Package gfx is the backend-agnostic GPU abstraction. Renderers talk only to
// these interfaces; a backend (OpenGL, headless) provides the implementations.
package gfx

import "github.com/go-gl/mathgl/mgl32"

// API is the narrow command surface of a graphics backend plus the factories
// for the resources it owns. Every call must happen on the render thread.
type API interface {
	Init() error
	SetViewport(x, y, w, h int)
	SetClearColor(c mgl32.Vec4)
	Clear()
	DrawIndexed(va VertexArray, indexCount int)

	// MaxTextureSlots is the number of texture units a fragment shader can sample.
	MaxTextureSlots() int
	Info() DeviceInfo

	NewVertexBuffer(size int) (VertexBuffer, error)
	NewVertexBufferWithData(data []byte) (VertexBuffer, error)
	NewIndexBuffer(indices []uint32) (IndexBuffer, error)
	NewVertexArray() (VertexArray, error)
	NewTexture(spec TextureSpec) (Texture2D, error)
	NewShader(name, source string) (Shader, error)
	NewFramebuffer(spec FramebufferSpec) (Framebuffer, error)

	Shutdown()
}

// DeviceInfo identifies the device behind an API.
type DeviceInfo struct {
	Vendor   string
	Renderer string
	Version  string
}

// VertexBuffer is a GPU array of vertex records described by a layout.
type VertexBuffer interface {
	Bind()
	Unbind()
	// SetData uploads data at offset 0. len(data) must not exceed Size.
	SetData(data []byte)
	Size() int
	Layout() BufferLayout
	SetLayout(l BufferLayout)
	Delete()
}

// IndexBuffer is an immutable GPU array of uint32 indices.
type IndexBuffer interface {
	Bind()
	Unbind()
	Count() int
	Delete()
}

// VertexArray binds vertex buffers and one index buffer to attribute slots.
type VertexArray interface {
	Bind()
	Unbind()
	// AddVertexBuffer panics when vb has an empty layout.
	AddVertexBuffer(vb VertexBuffer)
	SetIndexBuffer(ib IndexBuffer)
	VertexBuffers() []VertexBuffer
	IndexBuffer() IndexBuffer
	Delete()
}
