package renderer2d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove2d/engine/gfx"
	"github.com/hubastard/grove2d/engine/gfx/headless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubTextureCoords(t *testing.T) {
	api := headless.New(0)
	sheet, err := api.NewTexture(gfx.TextureSpec{Width: 2560, Height: 1664})
	require.NoError(t, err)

	tests := []struct {
		name             string
		coords, cellSize mgl32.Vec2
		spriteSize       mgl32.Vec2
		min, max         mgl32.Vec2
	}{
		{"origin cell", mgl32.Vec2{0, 0}, mgl32.Vec2{128, 128}, mgl32.Vec2{}, mgl32.Vec2{0, 0}, mgl32.Vec2{0.05, 128.0 / 1664}},
		{"offset cell", mgl32.Vec2{7, 6}, mgl32.Vec2{128, 128}, mgl32.Vec2{1, 1}, mgl32.Vec2{0.35, 768.0 / 1664}, mgl32.Vec2{0.4, 896.0 / 1664}},
		{"tall sprite", mgl32.Vec2{2, 1}, mgl32.Vec2{128, 128}, mgl32.Vec2{1, 2}, mgl32.Vec2{0.1, 128.0 / 1664}, mgl32.Vec2{0.15, 384.0 / 1664}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := FromCoords(sheet, tt.coords, tt.cellSize, tt.spriteSize)
			assert.Same(t, sheet.(*headless.Texture), sub.Texture.(*headless.Texture))
			assert.InDeltaSlice(t, tt.min[:], sub.TexCoords[0][:], 1e-6)
			assert.InDeltaSlice(t, []float32{tt.max.X(), tt.min.Y()}, sub.TexCoords[1][:], 1e-6)
			assert.InDeltaSlice(t, tt.max[:], sub.TexCoords[2][:], 1e-6)
			assert.InDeltaSlice(t, []float32{tt.min.X(), tt.max.Y()}, sub.TexCoords[3][:], 1e-6)
		})
	}
}

func TestSubTextureFromPixels(t *testing.T) {
	api := headless.New(0)
	tex, err := api.NewTexture(gfx.TextureSpec{Width: 64, Height: 32})
	require.NoError(t, err)

	sub := FromPixels(tex, 16, 8, 16, 16)
	assert.Equal(t, mgl32.Vec2{0.25, 0.25}, sub.TexCoords[0])
	assert.Equal(t, mgl32.Vec2{0.5, 0.75}, sub.TexCoords[2])
}
