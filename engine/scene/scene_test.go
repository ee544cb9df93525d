package scene

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/hubastard/grove2d/engine/colors"
	"github.com/hubastard/grove2d/engine/core"
	"github.com/hubastard/grove2d/engine/gfx"
	"github.com/hubastard/grove2d/engine/gfx/headless"
	"github.com/hubastard/grove2d/engine/gfx/renderer2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryGenerations(t *testing.T) {
	r := NewRegistry()
	a := r.Create()
	b := r.Create()
	assert.True(t, r.Valid(a))
	assert.False(t, r.Valid(NullEntity))
	assert.Equal(t, 2, r.Len())

	Add(r, a, TagComponent{Tag: "a"})
	r.Destroy(a)
	assert.False(t, r.Valid(a))
	assert.False(t, Has[TagComponent](r, a))

	c := r.Create()
	assert.Equal(t, a.Index(), c.Index(), "slot is reused")
	assert.NotEqual(t, a, c)
	assert.False(t, Has[TagComponent](r, c), "components do not leak into a reused slot")
	assert.Panics(t, func() { Add(r, a, TagComponent{}) })
	assert.True(t, r.Valid(b))
}

func TestRegistryComponents(t *testing.T) {
	r := NewRegistry()
	id := r.Create()

	tag := Add(r, id, TagComponent{Tag: "x"})
	tag.Tag = "y"
	got, ok := Get[TagComponent](r, id)
	require.True(t, ok)
	assert.Equal(t, "y", got.Tag)

	_, ok = Get[TransformComponent](r, id)
	assert.False(t, ok)

	Remove[TagComponent](r, id)
	assert.False(t, Has[TagComponent](r, id))
}

func TestView2Order(t *testing.T) {
	r := NewRegistry()
	var ids []EntityID
	for i := 0; i < 5; i++ {
		id := r.Create()
		ids = append(ids, id)
		Add(r, id, NewTransform())
		if i%2 == 0 {
			Add(r, id, SpriteRendererComponent{Color: colors.Red})
		}
	}
	var seen []EntityID
	View2[TransformComponent, SpriteRendererComponent](r, func(id EntityID, _ *TransformComponent, _ *SpriteRendererComponent) {
		seen = append(seen, id)
	})
	assert.Equal(t, []EntityID{ids[0], ids[2], ids[4]}, seen)
}

func TestTransformComponent(t *testing.T) {
	tc := NewTransform()
	assert.True(t, tc.Transform().ApproxEqual(mgl32.Ident4()))

	tc.Translation = mgl32.Vec3{1, 2, 0}
	tc.Rotation = mgl32.Vec3{0, 0, float32(math.Pi / 2)}
	tc.Scale = mgl32.Vec3{2, 1, 1}
	p := tc.Transform().Mul4x1(mgl32.Vec4{0.5, 0, 0, 1})
	world := p.Vec3()
	assert.InDeltaSlice(t, []float32{1, 3, 0}, world[:], 1e-5)
}

func TestCreateEntityDefaults(t *testing.T) {
	s := New()
	e := s.CreateEntity("")
	assert.Equal(t, "Entity", GetComponent[TagComponent](e).Tag)
	assert.NotEqual(t, uuid.Nil, GetComponent[IDComponent](e).ID)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, GetComponent[TransformComponent](e).Scale)

	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	named := s.CreateEntityWithID(id, "player")
	assert.Equal(t, id, GetComponent[IDComponent](named).ID)
	assert.Equal(t, "player", GetComponent[TagComponent](named).Tag)
	assert.NotEqual(t, GetComponent[IDComponent](e).ID, GetComponent[IDComponent](named).ID)
}

type counterScript struct {
	ScriptableEntity
	created, updated, destroyed *int
}

func (c *counterScript) OnCreate()  { *c.created++ }
func (c *counterScript) OnDestroy() { *c.destroyed++ }
func (c *counterScript) OnUpdate(ts core.Timestep) {
	*c.updated++
	GetComponent[TransformComponent](c.Entity).Translation[0] += ts.Seconds()
}

func TestNativeScriptLifecycle(t *testing.T) {
	s := New()
	r2d, err := renderer2d.New(headless.New(0), renderer2d.Config{MaxQuads: 4})
	require.NoError(t, err)
	defer r2d.Shutdown()

	var created, updated, destroyed int
	e := s.CreateEntity("mover")
	nsc := AddComponent(e, NativeScriptComponent{})
	nsc.Bind(func() Script {
		return &counterScript{created: &created, updated: &updated, destroyed: &destroyed}
	})

	s.OnUpdate(r2d, 0.5)
	s.OnUpdate(r2d, 0.5)
	assert.Equal(t, 1, created)
	assert.Equal(t, 2, updated)
	assert.InDelta(t, 1.0, GetComponent[TransformComponent](e).Translation.X(), 1e-6)

	s.Destroy()
	assert.Equal(t, 1, destroyed)
}

func decodePositions(raw []byte) []mgl32.Vec3 {
	const stride = 44
	var out []mgl32.Vec3
	for off := 0; off+stride <= len(raw); off += stride {
		var v mgl32.Vec3
		for j := range v {
			v[j] = math.Float32frombits(binary.LittleEndian.Uint32(raw[off+j*4:]))
		}
		out = append(out, v)
	}
	return out
}

func TestSceneRendersThroughPrimaryCamera(t *testing.T) {
	api := headless.New(0)
	r2d, err := renderer2d.New(api, renderer2d.Config{MaxQuads: 16})
	require.NoError(t, err)
	defer r2d.Shutdown()

	s := New()
	sprite := s.CreateEntity("sprite")
	AddComponent(sprite, SpriteRendererComponent{Color: colors.Green})
	tex, err := api.NewTexture(gfx.TextureSpec{Width: 2, Height: 2})
	require.NoError(t, err)
	textured := s.CreateEntity("textured")
	AddComponent(textured, SpriteRendererComponent{Color: colors.White, Texture: tex})

	// No camera yet: nothing is drawn.
	s.OnUpdate(r2d, 0.016)
	assert.Empty(t, api.Draws)

	secondary := s.CreateEntity("secondary")
	cc := AddComponent(secondary, NewCameraComponent())
	cc.Primary = false

	camera := s.CreateEntity("camera")
	AddComponent(camera, NewCameraComponent())
	GetComponent[TransformComponent](camera).Translation = mgl32.Vec3{5, 0, 0}

	primary, ok := s.PrimaryCamera()
	require.True(t, ok)
	assert.Equal(t, camera.ID(), primary.ID())

	s.OnUpdate(r2d, 0.016)
	require.Len(t, api.Draws, 1)
	assert.Equal(t, 12, api.Draws[0].IndexCount)
	assert.Len(t, api.Draws[0].Bound, 2)

	vp, _ := api.Draws[0].Shader.Uniform("u_ViewProjection")
	want := mgl32.Ortho(-5, 5, -5, 5, -1, 1).Mul4(mgl32.Translate3D(-5, 0, 0))
	assert.True(t, vp.(mgl32.Mat4).ApproxEqual(want))

	pos := decodePositions(api.Draws[0].Vertices)
	require.Len(t, pos, 8)
	assert.InDeltaSlice(t, []float32{-0.5, -0.5, 0}, pos[0][:], 1e-6)
}

func TestOnViewportResize(t *testing.T) {
	s := New()
	free := AddComponent(s.CreateEntity("free"), NewCameraComponent())
	fixed := AddComponent(s.CreateEntity("fixed"), NewCameraComponent())
	fixed.FixedAspectRatio = true

	s.OnViewportResize(400, 200)
	assert.Equal(t, float32(2), free.Camera.AspectRatio())
	assert.Equal(t, float32(1), fixed.Camera.AspectRatio())
	w, h := s.ViewportSize()
	assert.Equal(t, [2]int{400, 200}, [2]int{w, h})
}

func TestDestroyEntityRunsScript(t *testing.T) {
	s := New()
	r2d, err := renderer2d.New(headless.New(0), renderer2d.Config{MaxQuads: 4})
	require.NoError(t, err)
	defer r2d.Shutdown()

	var created, updated, destroyed int
	e := s.CreateEntity("")
	AddComponent(e, NativeScriptComponent{Instantiate: func() Script {
		return &counterScript{created: &created, updated: &updated, destroyed: &destroyed}
	}})
	s.OnUpdate(r2d, 0)
	s.DestroyEntity(e)
	assert.Equal(t, 1, destroyed)
	assert.False(t, e.Valid())
}
