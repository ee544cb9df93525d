package scene

import "github.com/go-gl/mathgl/mgl32"

// OrthographicCamera is a 2D camera with a position and a Z rotation in
// degrees. The view-projection is recomputed lazily on read.
type OrthographicCamera struct {
	projection mgl32.Mat4
	view       mgl32.Mat4
	vp         mgl32.Mat4
	position   mgl32.Vec3
	rotation   float32
	dirty      bool
}

func NewOrthographicCamera(left, right, bottom, top float32) *OrthographicCamera {
	c := &OrthographicCamera{view: mgl32.Ident4()}
	c.SetProjection(left, right, bottom, top)
	return c
}

// SetProjection replaces the view volume; near and far are -1 and 1.
func (c *OrthographicCamera) SetProjection(left, right, bottom, top float32) {
	c.projection = mgl32.Ortho(left, right, bottom, top, -1, 1)
	c.dirty = true
}

func (c *OrthographicCamera) Position() mgl32.Vec3 { return c.position }

func (c *OrthographicCamera) SetPosition(p mgl32.Vec3) {
	c.position = p
	c.dirty = true
}

// Rotation in degrees.
func (c *OrthographicCamera) Rotation() float32 { return c.rotation }

func (c *OrthographicCamera) SetRotation(deg float32) {
	c.rotation = deg
	c.dirty = true
}

func (c *OrthographicCamera) Projection() mgl32.Mat4 { return c.projection }

func (c *OrthographicCamera) View() mgl32.Mat4 {
	c.recalculate()
	return c.view
}

func (c *OrthographicCamera) ViewProjection() mgl32.Mat4 {
	c.recalculate()
	return c.vp
}

func (c *OrthographicCamera) recalculate() {
	if !c.dirty {
		return
	}
	// view = inverse(T(pos) * Rz(rot))
	transform := mgl32.Translate3D(c.position.X(), c.position.Y(), c.position.Z()).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(c.rotation)))
	c.view = transform.Inv()
	c.vp = c.projection.Mul4(c.view)
	c.dirty = false
}
