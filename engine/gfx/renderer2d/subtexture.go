package renderer2d

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove2d/engine/gfx"
)

// SubTexture2D describes a UV sub-rect of a shared texture. It does not own
// the texture; every sub-texture of one atlas resolves to the same batch slot.
type SubTexture2D struct {
	Texture gfx.Texture2D
	// TexCoords in quad corner order: bottom-left, bottom-right, top-right, top-left.
	TexCoords [4]mgl32.Vec2
}

// NewSubTexture builds a sub-texture from normalized min/max UVs.
func NewSubTexture(tex gfx.Texture2D, min, max mgl32.Vec2) SubTexture2D {
	return SubTexture2D{
		Texture: tex,
		TexCoords: [4]mgl32.Vec2{
			{min.X(), min.Y()},
			{max.X(), min.Y()},
			{max.X(), max.Y()},
			{min.X(), max.Y()},
		},
	}
}

// FromCoords addresses grid cell coords of cellSize pixels, spanning
// spriteSize cells. A zero spriteSize means one cell.
func FromCoords(tex gfx.Texture2D, coords, cellSize, spriteSize mgl32.Vec2) SubTexture2D {
	if spriteSize == (mgl32.Vec2{}) {
		spriteSize = mgl32.Vec2{1, 1}
	}
	tw, th := float32(tex.Width()), float32(tex.Height())
	min := mgl32.Vec2{
		coords.X() * cellSize.X() / tw,
		coords.Y() * cellSize.Y() / th,
	}
	max := mgl32.Vec2{
		(coords.X() + spriteSize.X()) * cellSize.X() / tw,
		(coords.Y() + spriteSize.Y()) * cellSize.Y() / th,
	}
	return NewSubTexture(tex, min, max)
}

// FromPixels builds a sub-texture from a pixel rect in texture space
// (origin bottom-left, matching uploaded image data).
func FromPixels(tex gfx.Texture2D, x, y, w, h int) SubTexture2D {
	tw, th := float32(tex.Width()), float32(tex.Height())
	return NewSubTexture(tex,
		mgl32.Vec2{float32(x) / tw, float32(y) / th},
		mgl32.Vec2{float32(x+w) / tw, float32(y+h) / th},
	)
}
