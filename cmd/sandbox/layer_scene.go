package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove2d/engine/colors"
	"github.com/hubastard/grove2d/engine/core"
	"github.com/hubastard/grove2d/engine/gfx"
	"github.com/hubastard/grove2d/engine/gfx/renderer2d"
	"github.com/hubastard/grove2d/engine/profiler"
	"github.com/hubastard/grove2d/engine/scene"
)

const insetSize = 256

// LayerScene renders an ECS scene offscreen and shows it as an inset in the
// top right corner of the window.
type LayerScene struct {
	scene *scene.Scene
	fb    gfx.Framebuffer
}

// spinner rotates its entity around Z.
type spinner struct {
	scene.ScriptableEntity
	speed float32
}

func (s *spinner) OnUpdate(ts core.Timestep) {
	tc := scene.GetComponent[scene.TransformComponent](s.Entity)
	tc.Rotation[2] += s.speed * ts.Seconds()
}

func (l *LayerScene) OnAttach(e *core.Engine) {
	var err error
	l.fb, err = e.API.NewFramebuffer(gfx.FramebufferSpec{Width: insetSize, Height: insetSize})
	if err != nil {
		panic(err)
	}

	l.scene = scene.New()
	l.scene.OnViewportResize(insetSize, insetSize)

	cam := l.scene.CreateEntity("Camera")
	scene.AddComponent(cam, scene.NewCameraComponent())

	for i, c := range []colors.Color{colors.Red, colors.Green, colors.Yellow} {
		sq := l.scene.CreateEntity("Square")
		tc := scene.GetComponent[scene.TransformComponent](sq)
		tc.Translation = mgl32.Vec3{float32(i-1) * 3, 0, 0}
		tc.Scale = mgl32.Vec3{2, 2, 1}
		scene.AddComponent(sq, scene.SpriteRendererComponent{Color: c})

		speed := float32(i+1) * 0.75
		nsc := scene.AddComponent(sq, scene.NativeScriptComponent{})
		nsc.Bind(func() scene.Script { return &spinner{speed: speed} })
	}
}

func (l *LayerScene) OnDetach(e *core.Engine) {
	l.scene.Destroy()
	l.fb.Delete()
}

func (l *LayerScene) OnUpdate(e *core.Engine, ts core.Timestep) {
	defer profiler.Start("LayerScene.OnUpdate")()

	l.fb.Bind()
	e.API.SetClearColor(colors.DarkGray.Vec4())
	e.API.Clear()
	l.scene.OnUpdate(e.Renderer2D, ts)
	l.fb.Unbind()

	w, h := e.Window.FramebufferSize()
	e.API.SetViewport(0, 0, w, h)
	e.API.SetClearColor(e.Config.ClearColor.Vec4())
}

func (l *LayerScene) OnRender(e *core.Engine, alpha float64) {
	w, h := e.Window.FramebufferSize()
	r := e.Renderer2D
	r.BeginScene(renderer2d.FixedCamera(mgl32.Ortho2D(0, float32(w), 0, float32(h))))
	center := mgl32.Vec2{float32(w) - insetSize/2 - 8, float32(h) - insetSize/2 - 8}
	r.DrawQuad(center, mgl32.Vec2{insetSize + 4, insetSize + 4}, 0, colors.Gray)
	r.DrawTexture(center, mgl32.Vec2{insetSize, insetSize}, 0, l.fb.ColorAttachment(), 1, colors.White)
	r.EndScene()
}

func (l *LayerScene) OnEvent(e *core.Engine, ev core.Event) bool { return false }
