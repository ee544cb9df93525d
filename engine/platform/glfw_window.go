package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/grove2d/engine/core"
	"github.com/hubastard/grove2d/engine/logging"
)

// GLFWWindow implements core.Window and pushes events to the app via a handler.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
}

var _ core.Window = (*GLFWWindow)(nil)

// Must be called on main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("platform: glfw init: %w", err)
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("platform: create window: %w", err)
	}
	win.MakeContextCurrent()

	gw := &GLFWWindow{w: win}
	gw.SetVSync(cfg.VSync)
	logging.Logger().Info("window created", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "vsync", cfg.VSync)

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventWindowClose{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventWindowResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(core.EventMouseMoved{X: x, Y: y})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		m := translateMods(mods)
		switch action {
		case glfw.Press:
			gw.emit(core.EventKeyPressed{Key: k, Mods: m})
		case glfw.Repeat:
			gw.emit(core.EventKeyPressed{Key: k, Repeat: true, Mods: m})
		case glfw.Release:
			gw.emit(core.EventKeyReleased{Key: k, Mods: m})
		}
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		gw.emit(core.EventKeyTyped{Rune: r})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		btn, ok := translateButton(b)
		if !ok {
			return
		}
		if action == glfw.Press {
			gw.emit(core.EventMouseButtonPressed{Button: btn, Mods: translateMods(mods)})
		} else {
			gw.emit(core.EventMouseButtonReleased{Button: btn, Mods: translateMods(mods)})
		}
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(core.EventMouseScrolled{XOff: xoff, YOff: yoff})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }
func (g *GLFWWindow) Time() float64                        { return glfw.GetTime() }

func (g *GLFWWindow) SetVSync(on bool) {
	if on {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

var keyMap = map[glfw.Key]core.Key{
	glfw.KeyEscape:      core.KeyEscape,
	glfw.KeySpace:       core.KeySpace,
	glfw.KeyEnter:       core.KeyEnter,
	glfw.KeyTab:         core.KeyTab,
	glfw.KeyBackspace:   core.KeyBackspace,
	glfw.KeyLeft:        core.KeyLeft,
	glfw.KeyRight:       core.KeyRight,
	glfw.KeyUp:          core.KeyUp,
	glfw.KeyDown:        core.KeyDown,
	glfw.KeyLeftShift:   core.KeyLeftShift,
	glfw.KeyLeftControl: core.KeyLeftControl,
	glfw.KeyF1:          core.KeyF1,
	glfw.KeyF2:          core.KeyF2,
	glfw.KeyF3:          core.KeyF3,
	glfw.KeyF4:          core.KeyF4,
}

func translateKey(k glfw.Key) core.Key {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return core.KeyA + core.Key(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return core.Key0 + core.Key(k-glfw.Key0)
	}
	if ck, ok := keyMap[k]; ok {
		return ck
	}
	return core.KeyUnknown
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft, true
	case glfw.MouseButtonRight:
		return core.MouseRight, true
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle, true
	}
	return 0, false
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
