package text

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove2d/engine/colors"
	"github.com/hubastard/grove2d/engine/gfx/renderer2d"
)

// DrawText draws s with the first baseline starting at pos, in font pixels.
// Positive Y goes up; each newline moves the baseline down one line height.
// Must be called between BeginScene and EndScene.
func DrawText(r2d *renderer2d.Renderer2D, f *Font, pos mgl32.Vec2, s string, c colors.Color) {
	penX, baseY := pos.X(), pos.Y()
	prev := rune(-1)

	for _, r := range s {
		if r == '\n' {
			penX = pos.X()
			baseY -= f.LineHeight()
			prev = -1
			continue
		}
		g, ok := f.Glyphs[r]
		if !ok {
			penX += f.Glyphs[' '].Advance
			prev = r
			continue
		}
		// Apply kerning between prev and current
		if prev >= 0 {
			penX += f.Kern(prev, r)
		}
		if g.Sprite.Texture != nil {
			cx := penX + g.BearingX + float32(g.W)*0.5
			cy := baseY + g.BearingY - float32(g.H)*0.5
			r2d.DrawSubTexture(mgl32.Vec2{cx, cy}, mgl32.Vec2{float32(g.W), float32(g.H)}, 0, g.Sprite, 1, c)
		}
		penX += g.Advance
		prev = r
	}
}

// Measure returns the pixel extent of s: the widest line and the number of
// lines times the line height.
func Measure(f *Font, s string) (width, height float32) {
	var lineW float32
	prev := rune(-1)
	lineH := f.LineHeight()
	height = lineH

	for _, r := range s {
		if r == '\n' {
			width = max(width, lineW)
			lineW = 0
			height += lineH
			prev = -1
			continue
		}
		g, ok := f.Glyphs[r]
		if !ok {
			lineW += f.Glyphs[' '].Advance
			prev = r
			continue
		}
		if prev >= 0 {
			lineW += f.Kern(prev, r)
		}
		lineW += g.Advance
		prev = r
	}
	return max(width, lineW), height
}
