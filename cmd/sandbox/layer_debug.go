package main

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove2d/engine/colors"
	"github.com/hubastard/grove2d/engine/core"
	"github.com/hubastard/grove2d/engine/gfx/renderer2d"
	"github.com/hubastard/grove2d/engine/profiler"
	"github.com/hubastard/grove2d/engine/scratch"
	"github.com/hubastard/grove2d/engine/text"
)

// ------- Debug overlay: renderer stats and process info -------
type LayerDebug struct {
	font    *text.Font
	hidden  bool
	last    time.Duration
	frameMS float32

	buf   *scratch.Buffer
	lines []string
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.last = e.Uptime()
	l.buf = scratch.New(1024)
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, ts core.Timestep) {}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	r := e.Renderer2D
	// Layers below drew this frame; snapshot before our own quads count.
	stats := r.Stats()
	defer r.ResetStats()

	now := e.Uptime()
	l.frameMS = float32((now - l.last).Seconds() * 1000)
	l.last = now
	if l.hidden {
		return
	}

	info := e.API.Info()
	b := l.buf
	b.Reset()
	l.lines = l.lines[:0]
	line := func(build func()) {
		m := b.Mark()
		build()
		l.lines = append(l.lines, b.View(m))
	}
	line(func() { b.S("Frame: ").F(float64(l.frameMS), 2).S(" ms (").F(float64(1000/max(l.frameMS, 0.001)), 0).S(" fps)") })
	line(func() { b.S("Draw calls: ").I(stats.DrawCalls) })
	line(func() { b.S("Quads: ").I(stats.QuadCount) })
	line(func() { b.S("Vertices: ").I(stats.TotalVertexCount()).S("  Indices: ").I(stats.TotalIndexCount()) })
	line(func() { b.S("Texture binds: ").I(stats.TextureBinds) })
	line(func() {
		b.S("Heap: ").F(float64(profiler.MemoryUsage())/(1<<20), 1).S(" MB  Allocs: ").U(profiler.MemoryAllocs())
	})
	line(func() { b.S("Goroutines: ").I(profiler.NumGoroutine()).S("  CPUs: ").I(profiler.NumCPU()) })
	line(func() { b.S("GPU: ").S(info.Renderer).S(" (").S(info.Vendor).C(')') })
	line(func() { b.S("GL: ").S(info.Version) })
	lines := l.lines

	var width float32
	for _, s := range lines {
		w, _ := text.Measure(l.font, s)
		width = max(width, w)
	}
	lh := l.font.LineHeight()
	height := lh * float32(len(lines))

	w, h := e.Window.FramebufferSize()
	const pad = 8
	r.BeginScene(renderer2d.FixedCamera(mgl32.Ortho2D(0, float32(w), 0, float32(h))))
	r.DrawQuad(
		mgl32.Vec2{pad + width/2 + pad, float32(h) - pad - height/2 - pad},
		mgl32.Vec2{width + 2*pad, height + 2*pad},
		0, colors.Black.WithAlpha(0.6),
	)
	y := float32(h) - 2*pad - l.font.Ascent
	for _, s := range lines {
		text.DrawText(r, l.font, mgl32.Vec2{2 * pad, y}, s, colors.White)
		y -= lh
	}
	r.EndScene()
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKeyPressed); ok && k.Key == core.KeyF1 && !k.Repeat {
		l.hidden = !l.hidden
		return true
	}
	return false
}
