package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderDataTypeSizes(t *testing.T) {
	cases := []struct {
		t     ShaderDataType
		size  int
		count int
	}{
		{Float, 4, 1}, {Float2, 8, 2}, {Float3, 12, 3}, {Float4, 16, 4},
		{Mat3, 36, 3}, {Mat4, 64, 4},
		{Int, 4, 1}, {Int2, 8, 2}, {Int3, 12, 3}, {Int4, 16, 4},
		{Bool, 1, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.size, c.t.Size(), c.t.String())
		assert.Equal(t, c.count, c.t.ComponentCount(), c.t.String())
	}
	assert.Panics(t, func() { ShaderDataNone.Size() })
	assert.Panics(t, func() { ShaderDataType(99).ComponentCount() })
}

func TestBufferLayoutOffsets(t *testing.T) {
	l := NewBufferLayout(
		Element(Float3, "a_Position"),
		Element(Float4, "a_Color"),
		Element(Float2, "a_TexCoord"),
		Element(Float, "a_TexIndex"),
		Element(Float, "a_TilingFactor"),
	)
	require.False(t, l.Empty())
	assert.Equal(t, 44, l.Stride())

	var offsets []int
	var names []string
	for _, e := range l.Elements() {
		offsets = append(offsets, e.Offset)
		names = append(names, e.Name)
	}
	assert.Equal(t, []int{0, 12, 28, 36, 40}, offsets)
	assert.Equal(t, []string{"a_Position", "a_Color", "a_TexCoord", "a_TexIndex", "a_TilingFactor"}, names)
}

func TestAttributeSlotsExpandMatrices(t *testing.T) {
	l := NewBufferLayout(
		Element(Float2, "a_Pos"),
		Element(Mat4, "a_Model"),
		BufferElement{Type: Int, Name: "a_ID", Normalized: true},
	)
	slots := AttributeSlots(l, 3)
	require.Len(t, slots, 6)

	assert.Equal(t, uint32(3), slots[0].Index)
	assert.Equal(t, uint32(0), slots[0].Divisor)
	for col := 0; col < 4; col++ {
		s := slots[1+col]
		assert.Equal(t, uint32(4+col), s.Index)
		assert.Equal(t, 4, s.Components)
		assert.Equal(t, 8+16*col, s.Offset)
		assert.Equal(t, uint32(1), s.Divisor)
	}
	assert.Equal(t, BaseInt, slots[5].Base)
	assert.True(t, slots[5].Normalized)
	assert.Equal(t, l.Stride(), slots[5].Stride)
}

func TestAttributeSlotsRejectEmptyLayout(t *testing.T) {
	assert.PanicsWithValue(t, "gfx: vertex buffer has no layout", func() {
		AttributeSlots(NewBufferLayout(), 0)
	})
}

func TestTextureSpecValidate(t *testing.T) {
	assert.NoError(t, TextureSpec{Width: 1, Height: 1, Pixels: []byte{1, 2, 3, 4}}.Validate())
	assert.NoError(t, TextureSpec{Width: 2, Height: 2}.Validate())
	assert.Error(t, TextureSpec{Width: 0, Height: 1}.Validate())
	assert.Error(t, TextureSpec{Width: 1, Height: 1, Format: TextureRGB8, Pixels: []byte{1, 2, 3, 4}}.Validate())
}

func TestAcceptFramebufferSize(t *testing.T) {
	assert.True(t, AcceptFramebufferSize(1280, 720))
	assert.False(t, AcceptFramebufferSize(0, 720))
	assert.False(t, AcceptFramebufferSize(1280, MaxFramebufferSize+1))
}
