package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grove2d/engine/gfx"
)

type VertexBuffer struct {
	id     uint32
	size   int
	layout gfx.BufferLayout
}

// NewVertexBuffer allocates size bytes of dynamic storage.
func (a *API) NewVertexBuffer(size int) (gfx.VertexBuffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("glbackend: invalid vertex buffer size %d", size)
	}
	vb := &VertexBuffer{size: size}
	gl.GenBuffers(1, &vb.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	return vb, nil
}

// NewVertexBufferWithData uploads data once into static storage.
func (a *API) NewVertexBufferWithData(data []byte) (gfx.VertexBuffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("glbackend: empty vertex data")
	}
	vb := &VertexBuffer{size: len(data)}
	gl.GenBuffers(1, &vb.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STATIC_DRAW)
	return vb, nil
}

func (vb *VertexBuffer) Bind()   { gl.BindBuffer(gl.ARRAY_BUFFER, vb.id) }
func (vb *VertexBuffer) Unbind() { gl.BindBuffer(gl.ARRAY_BUFFER, 0) }
func (vb *VertexBuffer) Size() int { return vb.size }

func (vb *VertexBuffer) SetData(data []byte) {
	if len(data) == 0 {
		return
	}
	if len(data) > vb.size {
		panic(fmt.Sprintf("glbackend: upload of %d bytes exceeds vertex buffer of %d", len(data), vb.size))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data), gl.Ptr(data))
}

func (vb *VertexBuffer) Layout() gfx.BufferLayout     { return vb.layout }
func (vb *VertexBuffer) SetLayout(l gfx.BufferLayout) { vb.layout = l }

func (vb *VertexBuffer) Delete() {
	if vb.id != 0 {
		gl.DeleteBuffers(1, &vb.id)
		vb.id = 0
	}
}

type IndexBuffer struct {
	id    uint32
	count int
}

func (a *API) NewIndexBuffer(indices []uint32) (gfx.IndexBuffer, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("glbackend: empty index data")
	}
	ib := &IndexBuffer{count: len(indices)}
	gl.GenBuffers(1, &ib.id)
	// Bound through ARRAY_BUFFER so no VAO state is disturbed.
	gl.BindBuffer(gl.ARRAY_BUFFER, ib.id)
	gl.BufferData(gl.ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	return ib, nil
}

func (ib *IndexBuffer) Bind()      { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id) }
func (ib *IndexBuffer) Unbind()    { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0) }
func (ib *IndexBuffer) Count() int { return ib.count }

func (ib *IndexBuffer) Delete() {
	if ib.id != 0 {
		gl.DeleteBuffers(1, &ib.id)
		ib.id = 0
	}
}
