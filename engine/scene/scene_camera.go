package scene

import "github.com/go-gl/mathgl/mgl32"

type ProjectionType int

const (
	Perspective ProjectionType = iota
	Orthographic
)

// SceneCamera holds only a projection; its view comes from the owning
// entity's transform.
type SceneCamera struct {
	projectionType ProjectionType

	perspectiveFOV  float32 // radians
	perspectiveNear float32
	perspectiveFar  float32

	orthoSize float32
	orthoNear float32
	orthoFar  float32

	aspect     float32
	projection mgl32.Mat4
}

// NewSceneCamera returns an orthographic camera of size 10 at aspect 1.
func NewSceneCamera() SceneCamera {
	c := SceneCamera{
		projectionType:  Orthographic,
		perspectiveFOV:  mgl32.DegToRad(45),
		perspectiveNear: 0.01,
		perspectiveFar:  1000,
		orthoSize:       10,
		orthoNear:       -1,
		orthoFar:        1,
		aspect:          1,
	}
	c.recalculate()
	return c
}

func (c *SceneCamera) ProjectionType() ProjectionType { return c.projectionType }
func (c *SceneCamera) Projection() mgl32.Mat4         { return c.projection }
func (c *SceneCamera) AspectRatio() float32           { return c.aspect }
func (c *SceneCamera) OrthographicSize() float32      { return c.orthoSize }
func (c *SceneCamera) PerspectiveFOV() float32        { return c.perspectiveFOV }

func (c *SceneCamera) SetProjectionType(t ProjectionType) {
	c.projectionType = t
	c.recalculate()
}

func (c *SceneCamera) SetOrthographic(size, near, far float32) {
	c.projectionType = Orthographic
	c.orthoSize, c.orthoNear, c.orthoFar = size, near, far
	c.recalculate()
}

// SetPerspective takes the vertical field of view in radians.
func (c *SceneCamera) SetPerspective(fov, near, far float32) {
	c.projectionType = Perspective
	c.perspectiveFOV, c.perspectiveNear, c.perspectiveFar = fov, near, far
	c.recalculate()
}

func (c *SceneCamera) SetOrthographicSize(size float32) {
	c.orthoSize = size
	c.recalculate()
}

// SetViewportSize updates the aspect ratio. A zero height is ignored.
func (c *SceneCamera) SetViewportSize(w, h int) {
	if h == 0 {
		return
	}
	c.aspect = float32(w) / float32(h)
	c.recalculate()
}

func (c *SceneCamera) recalculate() {
	if c.projectionType == Perspective {
		c.projection = mgl32.Perspective(c.perspectiveFOV, c.aspect, c.perspectiveNear, c.perspectiveFar)
		return
	}
	halfW := c.orthoSize * c.aspect * 0.5
	halfH := c.orthoSize * 0.5
	c.projection = mgl32.Ortho(-halfW, halfW, -halfH, halfH, c.orthoNear, c.orthoFar)
}
