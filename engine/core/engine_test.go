package core

import (
	"testing"
	"time"

	"github.com/hubastard/grove2d/engine/colors"
	"github.com/hubastard/grove2d/engine/gfx/headless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	w, h    int
	pending []Event
	cb      func(Event)
	swaps   int
	closed  bool
}

func (f *fakeWindow) PollEvents() {
	evs := f.pending
	f.pending = nil
	for _, ev := range evs {
		f.cb(ev)
	}
}
func (f *fakeWindow) SwapBuffers()                { f.swaps++ }
func (f *fakeWindow) ShouldClose() bool           { return f.closed }
func (f *fakeWindow) RequestClose()               { f.closed = true }
func (f *fakeWindow) FramebufferSize() (int, int) { return f.w, f.h }
func (f *fakeWindow) SetTitle(string)             {}
func (f *fakeWindow) SetVSync(bool)               {}
func (f *fakeWindow) SetEventCallback(cb func(Event)) {
	f.cb = cb
}
func (f *fakeWindow) Time() float64 { return 0 }
func (f *fakeWindow) Destroy()      {}

type recLayer struct {
	name    string
	log     *[]string
	handle  bool
	updates []Timestep
	alphas  []float64
}

func (l *recLayer) OnAttach(*Engine) { *l.log = append(*l.log, "attach "+l.name) }
func (l *recLayer) OnDetach(*Engine) { *l.log = append(*l.log, "detach "+l.name) }
func (l *recLayer) OnUpdate(_ *Engine, ts Timestep) {
	l.updates = append(l.updates, ts)
}
func (l *recLayer) OnRender(_ *Engine, alpha float64) {
	l.alphas = append(l.alphas, alpha)
	*l.log = append(*l.log, "render "+l.name)
}
func (l *recLayer) OnEvent(_ *Engine, _ Event) bool {
	*l.log = append(*l.log, "event "+l.name)
	return l.handle
}

func newTestEngine(t *testing.T, cfg Config) (*Engine, *fakeWindow, *headless.API) {
	t.Helper()
	win := &fakeWindow{w: 800, h: 600}
	api := headless.New(0)
	cfg.Renderer2D.MaxQuads = 16
	e, err := NewEngine(win, api, cfg)
	require.NoError(t, err)
	return e, win, api
}

func TestNewEngineInitializesAPI(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ClearColor = colors.Blue
	e, _, api := newTestEngine(t, cfg)

	assert.True(t, api.Initialized())
	assert.Equal(t, [4]int{0, 0, 800, 600}, api.Viewport)
	assert.Equal(t, colors.Blue.Vec4(), api.ClearColor)
	assert.True(t, e.Running())
	assert.NotNil(t, e.Renderer2D)
}

func TestDispatchResize(t *testing.T) {
	e, _, api := newTestEngine(t, DefaultConfig())

	e.Dispatch(EventWindowResize{W: 0, H: 300})
	assert.True(t, e.Minimized())
	assert.Equal(t, [4]int{0, 0, 800, 600}, api.Viewport)

	e.Dispatch(EventWindowResize{W: 1024, H: 768})
	assert.False(t, e.Minimized())
	assert.Equal(t, [4]int{0, 0, 1024, 768}, api.Viewport)
}

func TestMinimizedSkipsFrame(t *testing.T) {
	var log []string
	e, win, api := newTestEngine(t, Config{TickRate: 0})
	l := &recLayer{name: "a", log: &log}
	e.PushLayer(l)

	win.pending = []Event{EventWindowResize{W: 0, H: 0}}
	e.Step(16 * time.Millisecond)
	assert.Empty(t, l.updates)
	assert.Zero(t, api.Clears)
	assert.Zero(t, win.swaps)

	win.pending = []Event{EventWindowResize{W: 10, H: 10}}
	e.Step(16 * time.Millisecond)
	assert.Len(t, l.updates, 1)
	assert.Equal(t, 1, api.Clears)
	assert.Equal(t, 1, win.swaps)
}

func TestCloseStopsLoop(t *testing.T) {
	var log []string
	e, win, _ := newTestEngine(t, DefaultConfig())
	e.PushLayer(&recLayer{name: "a", log: &log})

	win.pending = []Event{EventWindowClose{}}
	e.Step(time.Second)
	assert.False(t, e.Running())
	assert.Equal(t, []string{"attach a", "event a"}, log)
}

func TestEventsTopToBottomWithShortCircuit(t *testing.T) {
	var log []string
	e, _, _ := newTestEngine(t, DefaultConfig())
	base := &recLayer{name: "base", log: &log}
	game := &recLayer{name: "game", log: &log, handle: true}
	hud := &recLayer{name: "hud", log: &log}
	e.PushOverlay(hud)
	e.PushLayer(base)
	e.PushLayer(game)
	log = nil

	e.Dispatch(EventKeyPressed{Key: KeySpace})
	assert.Equal(t, []string{"event hud", "event game"}, log)
	assert.True(t, e.Input.IsKeyDown(KeySpace))
}

func TestFixedTick(t *testing.T) {
	var log []string
	e, _, _ := newTestEngine(t, Config{TickRate: 50})
	l := &recLayer{name: "a", log: &log}
	e.PushLayer(l)

	e.Step(50 * time.Millisecond)
	require.Len(t, l.updates, 2)
	assert.InDelta(t, 0.02, float64(l.updates[0]), 1e-6)
	assert.InDelta(t, 0.5, l.alphas[0], 1e-6)

	e.Step(10 * time.Millisecond)
	assert.Len(t, l.updates, 3)
	assert.InDelta(t, 0, l.alphas[1], 1e-6)
}

func TestFixedTickSpiralGuard(t *testing.T) {
	var log []string
	e, _, _ := newTestEngine(t, Config{TickRate: 100})
	l := &recLayer{name: "a", log: &log}
	e.PushLayer(l)

	e.Step(5 * time.Second)
	assert.Len(t, l.updates, maxSteps)
	assert.Zero(t, l.alphas[0])
}

func TestVariableTick(t *testing.T) {
	var log []string
	e, _, _ := newTestEngine(t, Config{})
	l := &recLayer{name: "a", log: &log}
	e.PushLayer(l)

	e.Step(33 * time.Millisecond)
	require.Len(t, l.updates, 1)
	assert.InDelta(t, 33, l.updates[0].Milliseconds(), 1e-3)
}

func TestShutdownDetachesTopFirst(t *testing.T) {
	var log []string
	e, _, _ := newTestEngine(t, DefaultConfig())
	e.PushLayer(&recLayer{name: "a", log: &log})
	e.PushOverlay(&recLayer{name: "b", log: &log})
	log = nil

	e.shutdown()
	assert.Equal(t, []string{"detach b", "detach a"}, log)
	assert.Zero(t, e.Layers.Len())
	assert.False(t, e.API.(*headless.API).Initialized())
}
