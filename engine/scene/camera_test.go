package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove2d/engine/core"
	"github.com/stretchr/testify/assert"
)

func TestOrthographicCameraViewProjection(t *testing.T) {
	cam := NewOrthographicCamera(-2, 2, -1, 1)
	assert.True(t, cam.ViewProjection().ApproxEqual(mgl32.Ortho(-2, 2, -1, 1, -1, 1)))

	cam.SetPosition(mgl32.Vec3{1, 0.5, 0})
	p := cam.ViewProjection().Mul4x1(mgl32.Vec4{1, 0.5, 0, 1})
	center := p.Vec2()
	assert.InDeltaSlice(t, []float32{0, 0}, center[:], 1e-6, "camera position maps to the center")

	cam.SetPosition(mgl32.Vec3{})
	cam.SetRotation(90)
	// With the camera turned 90 degrees CCW, world +Y lands on screen +X.
	p = cam.ViewProjection().Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	onX := p.Vec2()
	assert.InDeltaSlice(t, []float32{0.5, 0}, onX[:], 1e-6)
}

func TestOrthographicCameraLazy(t *testing.T) {
	cam := NewOrthographicCamera(-1, 1, -1, 1)
	_ = cam.ViewProjection()
	assert.False(t, cam.dirty)
	cam.SetRotation(10)
	assert.True(t, cam.dirty)
	cam.View()
	assert.False(t, cam.dirty)
}

type keys map[core.Key]bool

func (k keys) IsKeyDown(key core.Key) bool { return k[key] }

func TestControllerZoom(t *testing.T) {
	cc := NewOrthoCameraController(16.0/9, false)
	assert.Equal(t, CameraBounds{Left: -16.0 / 9, Right: 16.0 / 9, Bottom: -1, Top: 1}, cc.Bounds())

	cc.OnEvent(core.EventMouseScrolled{YOff: 2})
	assert.Equal(t, float32(0.5), cc.ZoomLevel())
	assert.InDelta(t, 1.0, cc.Bounds().Height(), 1e-6)

	cc.OnEvent(core.EventMouseScrolled{YOff: 10})
	assert.Equal(t, float32(minZoom), cc.ZoomLevel())

	cc.OnEvent(core.EventMouseScrolled{YOff: -4})
	assert.Equal(t, float32(1.25), cc.ZoomLevel())
	assert.Equal(t, float32(1.25), cc.TranslationSpeed())
}

func TestControllerSetZoomLevelClamps(t *testing.T) {
	cc := NewOrthoCameraController(1, false)

	cc.SetZoomLevel(0.1)
	assert.Equal(t, float32(minZoom), cc.ZoomLevel())
	assert.InDelta(t, 2*minZoom, cc.Bounds().Height(), 1e-6)

	cc.SetZoomLevel(-3)
	assert.Equal(t, float32(minZoom), cc.ZoomLevel())

	cc.SetZoomLevel(4)
	assert.Equal(t, float32(4), cc.ZoomLevel())
	assert.InDelta(t, 8.0, cc.Bounds().Height(), 1e-6)
}

func TestControllerResize(t *testing.T) {
	cc := NewOrthoCameraController(1, false)
	assert.False(t, cc.OnEvent(core.EventWindowResize{W: 800, H: 0}))
	assert.Equal(t, float32(1), cc.AspectRatio())

	cc.OnEvent(core.EventWindowResize{W: 800, H: 400})
	assert.Equal(t, float32(2), cc.AspectRatio())
	assert.Equal(t, float32(4), cc.Bounds().Width())
	assert.True(t, cc.Camera().Projection().ApproxEqual(mgl32.Ortho(-2, 2, -1, 1, -1, 1)))
}

func TestControllerTranslation(t *testing.T) {
	cc := NewOrthoCameraController(1, false)
	cc.OnUpdate(keys{core.KeyD: true, core.KeyW: true}, 0.5)
	pos := cc.Camera().Position()
	assert.InDeltaSlice(t, []float32{0.5, 0.5, 0}, pos[:], 1e-6)

	// A takes precedence over D.
	cc.OnUpdate(keys{core.KeyA: true, core.KeyD: true}, 1)
	assert.InDelta(t, -0.5, cc.Camera().Position().X(), 1e-6)
}

func TestControllerRotation(t *testing.T) {
	cc := NewOrthoCameraController(1, true)
	in := keys{core.KeyQ: true}
	cc.OnUpdate(in, 0.5)
	assert.InDelta(t, 90, cc.Camera().Rotation(), 1e-4)

	// Moving right is along the rotated X axis.
	cc.OnUpdate(keys{core.KeyD: true}, 1)
	pos := cc.Camera().Position().Vec2()
	assert.InDeltaSlice(t, []float32{0, 1}, pos[:], 1e-5)

	cc.OnUpdate(in, 0.625) // 90 + 112.5 wraps to -157.5
	assert.InDelta(t, -157.5, cc.Camera().Rotation(), 1e-3)

	cc.OnUpdate(keys{core.KeyE: true}, 0.125)
	// -157.5 - 22.5 = -180 wraps to 180
	assert.InDelta(t, 180, cc.Camera().Rotation(), 1e-3)
}

func TestControllerRotationDisabled(t *testing.T) {
	cc := NewOrthoCameraController(1, false)
	cc.OnUpdate(keys{core.KeyQ: true}, 1)
	assert.Zero(t, cc.Camera().Rotation())
}

func TestSceneCamera(t *testing.T) {
	c := NewSceneCamera()
	assert.Equal(t, Orthographic, c.ProjectionType())
	assert.True(t, c.Projection().ApproxEqual(mgl32.Ortho(-5, 5, -5, 5, -1, 1)))

	c.SetViewportSize(200, 100)
	assert.True(t, c.Projection().ApproxEqual(mgl32.Ortho(-10, 10, -5, 5, -1, 1)))

	c.SetViewportSize(200, 0)
	assert.Equal(t, float32(2), c.AspectRatio())

	c.SetPerspective(mgl32.DegToRad(60), 0.1, 100)
	assert.Equal(t, Perspective, c.ProjectionType())
	assert.True(t, c.Projection().ApproxEqual(mgl32.Perspective(mgl32.DegToRad(60), 2, 0.1, 100)))

	c.SetOrthographic(4, -2, 2)
	assert.True(t, c.Projection().ApproxEqual(mgl32.Ortho(-4, 4, -2, 2, -2, 2)))
}
