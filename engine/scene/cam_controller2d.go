package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove2d/engine/core"
)

const (
	minZoom       = 0.25
	zoomPerScroll = 0.25
)

// KeyPoller reports held keys; core.Input satisfies it.
type KeyPoller interface {
	IsKeyDown(k core.Key) bool
}

// CameraBounds is the current view volume in world units.
type CameraBounds struct {
	Left, Right, Bottom, Top float32
}

func (b CameraBounds) Width() float32  { return b.Right - b.Left }
func (b CameraBounds) Height() float32 { return b.Top - b.Bottom }

// OrthoCameraController: WASD move along the camera axes, Q/E rotate when
// enabled, scroll zooms.
type OrthoCameraController struct {
	// RotationSpeed in degrees per second.
	RotationSpeed float32

	aspect          float32
	zoom            float32
	rotationEnabled bool
	position        mgl32.Vec3
	rotation        float32
	bounds          CameraBounds
	camera          *OrthographicCamera
}

func NewOrthoCameraController(aspect float32, rotation bool) *OrthoCameraController {
	cc := &OrthoCameraController{
		RotationSpeed:   180,
		aspect:          aspect,
		zoom:            1,
		rotationEnabled: rotation,
	}
	cc.bounds = cc.computeBounds()
	cc.camera = NewOrthographicCamera(cc.bounds.Left, cc.bounds.Right, cc.bounds.Bottom, cc.bounds.Top)
	return cc
}

func (cc *OrthoCameraController) Camera() *OrthographicCamera { return cc.camera }
func (cc *OrthoCameraController) Bounds() CameraBounds        { return cc.bounds }
func (cc *OrthoCameraController) ZoomLevel() float32          { return cc.zoom }
func (cc *OrthoCameraController) AspectRatio() float32        { return cc.aspect }

// TranslationSpeed scales with zoom so panning feels constant on screen.
func (cc *OrthoCameraController) TranslationSpeed() float32 { return cc.zoom }

// SetZoomLevel sets the zoom, clamped to the scroll minimum.
func (cc *OrthoCameraController) SetZoomLevel(z float32) {
	cc.zoom = max(z, minZoom)
	cc.updateProjection()
}

// OnUpdate polls in once per tick.
func (cc *OrthoCameraController) OnUpdate(in KeyPoller, ts core.Timestep) {
	rad := float64(mgl32.DegToRad(cc.rotation))
	step := cc.TranslationSpeed() * ts.Seconds()
	cos := float32(math.Cos(rad)) * step
	sin := float32(math.Sin(rad)) * step

	if in.IsKeyDown(core.KeyA) {
		cc.position[0] -= cos
		cc.position[1] -= sin
	} else if in.IsKeyDown(core.KeyD) {
		cc.position[0] += cos
		cc.position[1] += sin
	}
	if in.IsKeyDown(core.KeyW) {
		cc.position[0] += -sin
		cc.position[1] += cos
	} else if in.IsKeyDown(core.KeyS) {
		cc.position[0] -= -sin
		cc.position[1] -= cos
	}

	if cc.rotationEnabled {
		if in.IsKeyDown(core.KeyQ) {
			cc.rotation += cc.RotationSpeed * ts.Seconds()
		} else if in.IsKeyDown(core.KeyE) {
			cc.rotation -= cc.RotationSpeed * ts.Seconds()
		}
		// keep within (-180, 180]
		if cc.rotation > 180 {
			cc.rotation -= 360
		} else if cc.rotation <= -180 {
			cc.rotation += 360
		}
		cc.camera.SetRotation(cc.rotation)
	}
	cc.camera.SetPosition(cc.position)
}

// OnEvent reacts to scroll and resize events. It never consumes them.
func (cc *OrthoCameraController) OnEvent(ev core.Event) bool {
	switch e := ev.(type) {
	case core.EventMouseScrolled:
		cc.zoom -= float32(e.YOff) * zoomPerScroll
		cc.zoom = max(cc.zoom, minZoom)
		cc.updateProjection()
	case core.EventWindowResize:
		if e.H == 0 {
			return false
		}
		cc.OnResize(float32(e.W), float32(e.H))
	}
	return false
}

func (cc *OrthoCameraController) OnResize(w, h float32) {
	if h == 0 {
		return
	}
	cc.aspect = w / h
	cc.updateProjection()
}

func (cc *OrthoCameraController) computeBounds() CameraBounds {
	return CameraBounds{
		Left:   -cc.aspect * cc.zoom,
		Right:  cc.aspect * cc.zoom,
		Bottom: -cc.zoom,
		Top:    cc.zoom,
	}
}

func (cc *OrthoCameraController) updateProjection() {
	cc.bounds = cc.computeBounds()
	cc.camera.SetProjection(cc.bounds.Left, cc.bounds.Right, cc.bounds.Bottom, cc.bounds.Top)
}
