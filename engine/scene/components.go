package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/hubastard/grove2d/engine/colors"
	"github.com/hubastard/grove2d/engine/core"
	"github.com/hubastard/grove2d/engine/gfx"
)

type IDComponent struct {
	ID uuid.UUID
}

type TagComponent struct {
	Tag string
}

// TransformComponent rotation is Euler radians applied X, then Y, then Z.
type TransformComponent struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Vec3
	Scale       mgl32.Vec3
}

func NewTransform() TransformComponent {
	return TransformComponent{Scale: mgl32.Vec3{1, 1, 1}}
}

// Transform returns T * R * S.
func (t TransformComponent) Transform() mgl32.Mat4 {
	rot := mgl32.AnglesToQuat(t.Rotation.X(), t.Rotation.Y(), t.Rotation.Z(), mgl32.XYZ).Mat4()
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(rot).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// SpriteRendererComponent draws a flat quad, or Texture tinted by Color.
// A zero TilingFactor draws the texture once.
type SpriteRendererComponent struct {
	Color        colors.Color
	Texture      gfx.Texture2D
	TilingFactor float32
}

type CameraComponent struct {
	Camera           SceneCamera
	Primary          bool
	FixedAspectRatio bool
}

func NewCameraComponent() CameraComponent {
	return CameraComponent{Camera: NewSceneCamera(), Primary: true}
}

// Script is native per-entity behavior. Implementations embed ScriptableEntity.
type Script interface {
	OnCreate()
	OnDestroy()
	OnUpdate(ts core.Timestep)
	attach(e Entity)
}

// NativeScriptComponent creates its script on the first scene update.
type NativeScriptComponent struct {
	Instance    Script
	Instantiate func() Script
}

// Bind sets the factory used to create the script instance.
func (n *NativeScriptComponent) Bind(factory func() Script) {
	n.Instantiate = factory
}
