package core

import (
	"runtime"
	"time"

	"github.com/hubastard/grove2d/engine/gfx"
	"github.com/hubastard/grove2d/engine/profiler"
)

// maxSteps bounds fixed updates per frame to prevent a spiral of death.
const maxSteps = 10

// Run wires the platform window + graphics API and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newAPI func(Window) gfx.API) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	eng, err := NewEngine(win, newAPI(win), cfg)
	if err != nil {
		return err
	}
	defer eng.shutdown()

	app.OnStart(eng)

	prev := time.Now()
	for eng.running && !win.ShouldClose() {
		now := time.Now()
		eng.Step(now.Sub(prev))
		prev = now
	}

	app.OnShutdown(eng)
	eng.Log.Info("engine exit", "uptime", eng.Uptime().Round(time.Millisecond))
	return nil
}

// Dispatch routes ev through the engine, then to layers from the top until
// one handles it.
func (e *Engine) Dispatch(ev Event) {
	e.Input.Handle(ev)
	switch v := ev.(type) {
	case EventWindowClose:
		e.running = false
	case EventWindowResize:
		if v.W == 0 || v.H == 0 {
			e.minimized = true
			break
		}
		e.minimized = false
		e.API.SetViewport(0, 0, v.W, v.H)
	}
	e.Layers.ForEachReverse(func(l Layer) bool { return l.OnEvent(e, ev) })
}

// Step runs one frame that took frame since the previous one.
func (e *Engine) Step(frame time.Duration) {
	defer profiler.Start("Engine.Step")()

	// Poll OS events (platform will emit via callbacks)
	e.Window.PollEvents()
	if !e.running {
		return
	}
	if e.minimized {
		e.accum = 0
		return
	}

	alpha := 1.0
	if e.Config.TickRate <= 0 {
		e.update(TimestepOf(frame))
	} else {
		tick := time.Second / time.Duration(e.Config.TickRate)
		e.accum += frame
		steps := 0
		for e.accum >= tick && steps < maxSteps {
			e.update(TimestepOf(tick))
			e.accum -= tick
			steps++
		}
		if steps == maxSteps {
			e.accum = 0
		}
		// Interpolation factor for rendering
		alpha = float64(e.accum) / float64(tick)
	}

	e.API.Clear()
	func() {
		defer profiler.Start("LayerStack.OnRender")()
		e.Layers.ForEach(func(l Layer) { l.OnRender(e, alpha) })
	}()

	// Present
	e.Window.SwapBuffers()
}

func (e *Engine) update(ts Timestep) {
	defer profiler.Start("LayerStack.OnUpdate")()
	e.Layers.ForEach(func(l Layer) { l.OnUpdate(e, ts) })
}
