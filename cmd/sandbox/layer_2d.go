package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove2d/engine/assets"
	"github.com/hubastard/grove2d/engine/colors"
	"github.com/hubastard/grove2d/engine/core"
	"github.com/hubastard/grove2d/engine/gfx"
	"github.com/hubastard/grove2d/engine/gfx/renderer2d"
	"github.com/hubastard/grove2d/engine/profiler"
	"github.com/hubastard/grove2d/engine/scene"
)

// ------- A simple 2D Layer demo -------
type Layer2D struct {
	sheetPath string

	ctrl    *scene.OrthoCameraController
	checker gfx.Texture2D
	sheet   gfx.Texture2D
	sprites []renderer2d.SubTexture2D
	t       float32
}

func NewLayer2D(sheetPath string) *Layer2D { return &Layer2D{sheetPath: sheetPath} }

func (l *Layer2D) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.ctrl = scene.NewOrthoCameraController(float32(w)/float32(max(h, 1)), true)
	l.ctrl.SetZoomLevel(5)

	var err error
	l.checker, err = checkerboard(e.API, 8)
	if err != nil {
		panic(err)
	}

	if l.sheetPath == "" {
		return
	}
	l.sheet, err = assets.LoadTexture(e.API, l.sheetPath, gfx.FilterNearest)
	if err != nil {
		panic(err)
	}
	cell := mgl32.Vec2{128, 128}
	l.sprites = []renderer2d.SubTexture2D{
		renderer2d.FromCoords(l.sheet, mgl32.Vec2{7, 6}, cell, mgl32.Vec2{}),
		renderer2d.FromCoords(l.sheet, mgl32.Vec2{2, 1}, cell, mgl32.Vec2{1, 2}),
	}
}

// checkerboard builds an n x n two-tone texture.
func checkerboard(api gfx.API, n int) (gfx.Texture2D, error) {
	pix := make([]byte, 0, n*n*4)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := byte(0x40)
			if (x+y)%2 == 0 {
				v = 0xd0
			}
			pix = append(pix, v, v, v, 0xff)
		}
	}
	return api.NewTexture(gfx.TextureSpec{
		Width: n, Height: n,
		Format:    gfx.TextureRGBA8,
		MinFilter: gfx.FilterNearest,
		MagFilter: gfx.FilterNearest,
		Wrap:      gfx.WrapRepeat,
		Pixels:    pix,
	})
}

func (l *Layer2D) OnDetach(e *core.Engine) {
	l.checker.Delete()
	if l.sheet != nil {
		l.sheet.Delete()
	}
}

func (l *Layer2D) OnUpdate(e *core.Engine, ts core.Timestep) {
	l.ctrl.OnUpdate(e.Input, ts)
	l.t += ts.Seconds()

	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (l *Layer2D) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("Layer2D.OnRender")()

	r := e.Renderer2D
	r.BeginScene(l.ctrl.Camera())
	r.DrawTexture3D(mgl32.Vec3{0, 0, -0.1}, mgl32.Vec2{20, 20}, 0, l.checker, 10, colors.White)
	r.DrawQuad(mgl32.Vec2{-1, 0}, mgl32.Vec2{0.8, 0.8}, 0, colors.Red)
	r.DrawQuad(mgl32.Vec2{0.5, -0.5}, mgl32.Vec2{0.5, 0.75}, 0, colors.Blue)
	r.DrawQuad(mgl32.Vec2{2, 1}, mgl32.Vec2{1, 1}, mgl32.DegToRad(l.t*45), colors.Magenta)
	r.DrawTexture(mgl32.Vec2{-2, 2}, mgl32.Vec2{1, 1}, -l.t, l.checker, 1, colors.Cyan.WithAlpha(0.6))

	// a grid of translucent quads to push several batches
	for y := float32(-5); y < 5; y += 0.5 {
		for x := float32(-5); x < 5; x += 0.5 {
			c := colors.Color{(x + 5) / 10, 0.4, (y + 5) / 10, 0.5}
			r.DrawQuad(mgl32.Vec2{x, y}, mgl32.Vec2{0.45, 0.45}, 0, c)
		}
	}
	for i, s := range l.sprites {
		r.DrawSubTexture(mgl32.Vec2{float32(i) * 1.5, 3}, mgl32.Vec2{1, float32(i + 1)}, 0, s, 1, colors.White)
	}
	r.EndScene()
}

func (l *Layer2D) OnEvent(e *core.Engine, ev core.Event) bool {
	return l.ctrl.OnEvent(ev)
}
