package core

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hubastard/grove2d/engine/colors"
	"github.com/hubastard/grove2d/engine/gfx"
	"github.com/hubastard/grove2d/engine/gfx/renderer2d"
	"github.com/hubastard/grove2d/engine/logging"
)

// App defines the application hooks around the layer stack.
type App interface {
	OnStart(e *Engine)    // called once after window/renderer init
	OnShutdown(e *Engine) // before exit, layers still attached
}

// Engine exposes core services to the App and its layers.
type Engine struct {
	Window     Window
	API        gfx.API
	Renderer2D *renderer2d.Renderer2D
	Input      *Input
	Layers     *LayerStack
	Log        *slog.Logger
	Config     Config

	running   bool
	minimized bool
	start     time.Time
	accum     time.Duration
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }
func (e *Engine) Running() bool         { return e.running }
func (e *Engine) Minimized() bool       { return e.minimized }

// Close stops the run loop after the current frame.
func (e *Engine) Close() { e.running = false }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetVSync(on bool)
	SetEventCallback(cb func(Event))
	// Time is seconds since the window layer started.
	Time() float64
	Destroy()
}

// Config for the engine run.
type Config struct {
	Title      string       `yaml:"title"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	VSync      bool         `yaml:"vsync"`
	ClearColor colors.Color `yaml:"clear_color"`
	// TickRate is the fixed update rate in Hz; 0 updates once per frame.
	TickRate int `yaml:"tick_rate"`

	Renderer2D renderer2d.Config `yaml:"-"`
}

// DefaultConfig is a 1280x720 vsynced window updating at 60 Hz.
func DefaultConfig() Config {
	return Config{
		Title:      "grove2d",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.Color{0.1, 0.1, 0.1, 1},
		TickRate:   60,
	}
}

// NewEngine initializes api on win and builds the shared 2D renderer.
func NewEngine(win Window, api gfx.API, cfg Config) (*Engine, error) {
	if err := api.Init(); err != nil {
		return nil, fmt.Errorf("core: graphics init: %w", err)
	}
	r2d, err := renderer2d.New(api, cfg.Renderer2D)
	if err != nil {
		return nil, fmt.Errorf("core: renderer2d: %w", err)
	}
	e := &Engine{
		Window:     win,
		API:        api,
		Renderer2D: r2d,
		Input:      NewInput(),
		Layers:     &LayerStack{},
		Log:        logging.Logger(),
		Config:     cfg,
		running:    true,
		start:      time.Now(),
	}
	w, h := win.FramebufferSize()
	if w > 0 && h > 0 {
		api.SetViewport(0, 0, w, h)
	} else {
		e.minimized = true
	}
	api.SetClearColor(cfg.ClearColor.Vec4())
	win.SetEventCallback(e.Dispatch)
	return e, nil
}

// PushLayer attaches l below every overlay.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.PushLayer(l)
	l.OnAttach(e)
}

// PushOverlay attaches l on top of the stack.
func (e *Engine) PushOverlay(l Layer) {
	e.Layers.PushOverlay(l)
	l.OnAttach(e)
}

// PopLayer detaches l if it is on the stack.
func (e *Engine) PopLayer(l Layer) {
	if e.Layers.PopLayer(l) {
		l.OnDetach(e)
	}
}

func (e *Engine) PopOverlay(l Layer) {
	if e.Layers.PopOverlay(l) {
		l.OnDetach(e)
	}
}

func (e *Engine) shutdown() {
	e.Layers.ForEachReverse(func(l Layer) bool {
		l.OnDetach(e)
		return false
	})
	e.Layers.Clear()
	e.Renderer2D.Shutdown()
	e.API.Shutdown()
}
