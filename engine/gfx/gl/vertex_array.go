package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grove2d/engine/gfx"
)

type VertexArray struct {
	id        uint32
	vbs       []gfx.VertexBuffer
	ib        gfx.IndexBuffer
	nextIndex uint32
}

func (a *API) NewVertexArray() (gfx.VertexArray, error) {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.id)
	if va.id == 0 {
		return nil, fmt.Errorf("glbackend: glGenVertexArrays failed")
	}
	return va, nil
}

func (va *VertexArray) Bind()   { gl.BindVertexArray(va.id) }
func (va *VertexArray) Unbind() { gl.BindVertexArray(0) }

// AddVertexBuffer enables one attribute per layout slot. Slot indices keep
// counting across buffers, so a second (instance) buffer lands after the first.
func (va *VertexArray) AddVertexBuffer(vb gfx.VertexBuffer) {
	slots := gfx.AttributeSlots(vb.Layout(), va.nextIndex)

	gl.BindVertexArray(va.id)
	vb.Bind()
	for _, s := range slots {
		gl.EnableVertexAttribArray(s.Index)
		switch s.Base {
		case gfx.BaseFloat:
			gl.VertexAttribPointerWithOffset(s.Index, int32(s.Components), gl.FLOAT, s.Normalized, int32(s.Stride), uintptr(s.Offset))
		case gfx.BaseInt:
			gl.VertexAttribIPointerWithOffset(s.Index, int32(s.Components), gl.INT, int32(s.Stride), uintptr(s.Offset))
		case gfx.BaseBool:
			gl.VertexAttribIPointerWithOffset(s.Index, int32(s.Components), gl.UNSIGNED_BYTE, int32(s.Stride), uintptr(s.Offset))
		}
		if s.Divisor != 0 {
			gl.VertexAttribDivisor(s.Index, s.Divisor)
		}
	}
	va.nextIndex += uint32(len(slots))
	va.vbs = append(va.vbs, vb)
}

func (va *VertexArray) SetIndexBuffer(ib gfx.IndexBuffer) {
	gl.BindVertexArray(va.id)
	ib.Bind()
	va.ib = ib
}

func (va *VertexArray) VertexBuffers() []gfx.VertexBuffer { return va.vbs }
func (va *VertexArray) IndexBuffer() gfx.IndexBuffer      { return va.ib }

func (va *VertexArray) Delete() {
	if va.id != 0 {
		gl.DeleteVertexArrays(1, &va.id)
		va.id = 0
	}
}
