package text

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hubastard/grove2d/engine/assets"
	"github.com/hubastard/grove2d/engine/gfx"
	"github.com/hubastard/grove2d/engine/gfx/renderer2d"
	"github.com/hubastard/grove2d/engine/logging"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	padding      = 2
	minAtlasSize = 256
	maxAtlasSize = 4096
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	// Sprite is the glyph's region of the font atlas. Blank glyphs have none.
	Sprite renderer2d.SubTexture2D
}

// Font is a baked glyph atlas: white glyphs with alpha coverage in a single
// texture, so a whole string draws from one texture slot.
type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Texture                  gfx.Texture2D
	AtlasW, AtlasH           int

	kerning map[[2]rune]float32
	face    font.Face
}

// LineHeight is the baseline-to-baseline distance.
func (f *Font) LineHeight() float32 { return f.Ascent - f.Descent + f.LineGap }

// Kern returns the pair adjustment between a and b in pixels.
func (f *Font) Kern(a, b rune) float32 { return f.kerning[[2]rune{a, b}] }

func (f *Font) Close() {
	if f == nil {
		return
	}
	if f.face != nil {
		_ = f.face.Close()
		f.face = nil
	}
	if f.Texture != nil {
		f.Texture.Delete()
		f.Texture = nil
	}
}

// NewDefaultFont bakes the Go Regular face.
func NewDefaultFont(api gfx.API, sizePx float32) (*Font, error) {
	return NewFont(api, goregular.TTF, sizePx)
}

type measured struct {
	r      rune
	w, h   int
	adv    float32
	bx, by float32
}

// NewFont parses ttf and bakes the Latin-1 printable range at sizePx.
func NewFont(api gfx.API, ttf []byte, sizePx float32) (*Font, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	// Metrics in pixels
	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	var glyphs []measured
	for r := rune(32); r <= rune(255); r++ {
		if r > 126 && r < 160 {
			continue
		}
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, measured{
			r:   r,
			w:   (br.Max.X - br.Min.X).Round(),
			h:   (br.Max.Y - br.Min.Y).Round(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Round()),
			by:  float32(-br.Min.Y.Round()),
		})
	}

	size, pos, err := packShelves(glyphs)
	if err != nil {
		face.Close()
		return nil, err
	}

	// Build atlas RGBA: white glyphs with alpha coverage
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.RGBA{}}, image.Point{}, draw.Src)
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}
	for _, g := range glyphs {
		p, ok := pos[g.r]
		if !ok {
			continue
		}
		drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
		drawer.DrawString(string(g.r))
	}

	// Uploaded bottom row first; glyph rects flip with it.
	tex, err := api.NewTexture(gfx.TextureSpec{
		Width: size, Height: size,
		Format:    gfx.TextureRGBA8,
		MinFilter: gfx.FilterNearest,
		MagFilter: gfx.FilterNearest,
		Wrap:      gfx.WrapClamp,
		Pixels:    assets.FlipRows(dst.Pix, dst.Stride, size*4, size),
	})
	if err != nil {
		face.Close()
		return nil, fmt.Errorf("font atlas texture: %w", err)
	}

	f := &Font{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs:  make(map[rune]Glyph, len(glyphs)),
		Texture: tex,
		AtlasW:  size, AtlasH: size,
		kerning: make(map[[2]rune]float32),
		face:    face,
	}
	for _, g := range glyphs {
		glyph := Glyph{Rune: g.r, Advance: g.adv, BearingX: g.bx, BearingY: g.by, W: g.w, H: g.h}
		if p, ok := pos[g.r]; ok {
			glyph.Sprite = renderer2d.FromPixels(tex, p.X, size-p.Y-g.h, g.w, g.h)
		}
		f.Glyphs[g.r] = glyph
	}
	for _, a := range glyphs {
		for _, b := range glyphs {
			if dx := face.Kern(a.r, b.r); dx != 0 {
				f.kerning[[2]rune{a.r, b.r}] = float32(dx.Round())
			}
		}
	}
	logging.Logger().Debug("font atlas baked", "size_px", sizePx, "glyphs", len(f.Glyphs), "atlas", size)
	return f, nil
}

// packShelves places glyphs in rows, doubling a square atlas until all fit.
func packShelves(glyphs []measured) (int, map[rune]image.Point, error) {
	for size := minAtlasSize; size <= maxAtlasSize; size *= 2 {
		if pos, ok := tryPack(glyphs, size); ok {
			return size, pos, nil
		}
	}
	return 0, nil, fmt.Errorf("font atlas too large (>%d)", maxAtlasSize)
}

func tryPack(glyphs []measured, size int) (map[rune]image.Point, bool) {
	x, y, rowH := padding, padding, 0
	pos := make(map[rune]image.Point, len(glyphs))
	for _, g := range glyphs {
		if g.w == 0 || g.h == 0 {
			continue
		}
		if g.w+padding*2 > size || g.h+padding*2 > size {
			return nil, false
		}
		if x+g.w+padding > size {
			x = padding
			y += rowH + padding
			rowH = 0
		}
		if y+g.h+padding > size {
			return nil, false
		}
		pos[g.r] = image.Pt(x, y)
		x += g.w + padding
		rowH = max(rowH, g.h)
	}
	return pos, true
}
