package gfx

import "fmt"

// ShaderDataType is the semantic type of one vertex attribute element.
type ShaderDataType int

const (
	ShaderDataNone ShaderDataType = iota
	Float
	Float2
	Float3
	Float4
	Mat3
	Mat4
	Int
	Int2
	Int3
	Int4
	Bool
)

// BaseType is the scalar kind the GPU reads for an attribute.
type BaseType int

const (
	BaseFloat BaseType = iota
	BaseInt
	BaseBool
)

// Size returns the byte size of t.
func (t ShaderDataType) Size() int {
	switch t {
	case Float:
		return 4
	case Float2:
		return 4 * 2
	case Float3:
		return 4 * 3
	case Float4:
		return 4 * 4
	case Mat3:
		return 4 * 3 * 3
	case Mat4:
		return 4 * 4 * 4
	case Int:
		return 4
	case Int2:
		return 4 * 2
	case Int3:
		return 4 * 3
	case Int4:
		return 4 * 4
	case Bool:
		return 1
	}
	panic(fmt.Sprintf("gfx: unknown shader data type %d", int(t)))
}

// ComponentCount returns the number of components per attribute slot.
// Matrices report the number of components of one column.
func (t ShaderDataType) ComponentCount() int {
	switch t {
	case Float, Int, Bool:
		return 1
	case Float2, Int2:
		return 2
	case Float3, Int3, Mat3:
		return 3
	case Float4, Int4, Mat4:
		return 4
	}
	panic(fmt.Sprintf("gfx: unknown shader data type %d", int(t)))
}

// BaseType returns the scalar kind of t.
func (t ShaderDataType) BaseType() BaseType {
	switch t {
	case Float, Float2, Float3, Float4, Mat3, Mat4:
		return BaseFloat
	case Int, Int2, Int3, Int4:
		return BaseInt
	case Bool:
		return BaseBool
	}
	panic(fmt.Sprintf("gfx: unknown shader data type %d", int(t)))
}

func (t ShaderDataType) IsMatrix() bool { return t == Mat3 || t == Mat4 }

func (t ShaderDataType) String() string {
	switch t {
	case Float:
		return "Float"
	case Float2:
		return "Float2"
	case Float3:
		return "Float3"
	case Float4:
		return "Float4"
	case Mat3:
		return "Mat3"
	case Mat4:
		return "Mat4"
	case Int:
		return "Int"
	case Int2:
		return "Int2"
	case Int3:
		return "Int3"
	case Int4:
		return "Int4"
	case Bool:
		return "Bool"
	}
	return fmt.Sprintf("ShaderDataType(%d)", int(t))
}

// BufferElement describes one named attribute inside a vertex record.
type BufferElement struct {
	Type       ShaderDataType
	Name       string
	Offset     int
	Normalized bool
}

// Element is shorthand for a non-normalized BufferElement.
func Element(t ShaderDataType, name string) BufferElement {
	return BufferElement{Type: t, Name: name}
}

// BufferLayout is an ordered list of elements with precomputed offsets.
type BufferLayout struct {
	elements []BufferElement
	stride   int
}

// NewBufferLayout computes offsets as a running sum of element sizes.
func NewBufferLayout(elements ...BufferElement) BufferLayout {
	l := BufferLayout{elements: make([]BufferElement, len(elements))}
	offset := 0
	for i, e := range elements {
		e.Offset = offset
		offset += e.Type.Size()
		l.elements[i] = e
	}
	l.stride = offset
	return l
}

func (l BufferLayout) Stride() int { return l.stride }
func (l BufferLayout) Empty() bool { return len(l.elements) == 0 }

// Elements returns a copy of the elements in declaration order.
func (l BufferLayout) Elements() []BufferElement {
	out := make([]BufferElement, len(l.elements))
	copy(out, l.elements)
	return out
}

// AttributeSlot is one enabled vertex attribute index.
type AttributeSlot struct {
	Index      uint32
	Components int
	Base       BaseType
	Normalized bool
	Stride     int
	Offset     int
	Divisor    uint32 // 0 per-vertex, 1 per-instance
}

// AttributeSlots expands layout into attribute slots starting at index first.
// Matrix elements take one slot per column, advanced once per instance.
// The next free index is first+len(result).
func AttributeSlots(layout BufferLayout, first uint32) []AttributeSlot {
	if layout.Empty() {
		panic("gfx: vertex buffer has no layout")
	}
	slots := make([]AttributeSlot, 0, len(layout.elements))
	index := first
	for _, e := range layout.elements {
		count := e.Type.ComponentCount()
		if e.Type.IsMatrix() {
			for col := 0; col < count; col++ {
				slots = append(slots, AttributeSlot{
					Index:      index,
					Components: count,
					Base:       BaseFloat,
					Normalized: e.Normalized,
					Stride:     layout.stride,
					Offset:     e.Offset + 4*count*col,
					Divisor:    1,
				})
				index++
			}
			continue
		}
		slots = append(slots, AttributeSlot{
			Index:      index,
			Components: count,
			Base:       e.Type.BaseType(),
			Normalized: e.Normalized,
			Stride:     layout.stride,
			Offset:     e.Offset,
		})
		index++
	}
	return slots
}
