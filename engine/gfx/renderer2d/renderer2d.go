package renderer2d

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove2d/engine/colors"
	"github.com/hubastard/grove2d/engine/gfx"
	"github.com/hubastard/grove2d/engine/logging"
	"github.com/hubastard/grove2d/engine/profiler"
)

const (
	DefaultMaxQuads        = 20000
	DefaultMaxTextureSlots = 32

	vertsPerQuad = 4
	indsPerQuad  = 6
	whiteSlot    = 0

	slotCountToken = "{{MAX_TEXTURE_SLOTS}}"
)

//go:embed shaders/texture.glsl
var textureShader string

// QuadVertex is one record of the staging buffer: 11 float32, 44 bytes.
type QuadVertex struct {
	Position     mgl32.Vec3
	Color        colors.Color
	TexCoord     mgl32.Vec2
	TexIndex     float32
	TilingFactor float32
}

var quadLayout = gfx.NewBufferLayout(
	gfx.Element(gfx.Float3, "a_Position"),
	gfx.Element(gfx.Float4, "a_Color"),
	gfx.Element(gfx.Float2, "a_TexCoord"),
	gfx.Element(gfx.Float, "a_TexIndex"),
	gfx.Element(gfx.Float, "a_TilingFactor"),
)

const vertexSize = int(unsafe.Sizeof(QuadVertex{}))

var (
	quadCorners = [vertsPerQuad]mgl32.Vec4{
		{-0.5, -0.5, 0, 1},
		{0.5, -0.5, 0, 1},
		{0.5, 0.5, 0, 1},
		{-0.5, 0.5, 0, 1},
	}
	quadTexCoords = [vertsPerQuad]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
)

// Config sizes a Renderer2D. Zero fields take the defaults.
type Config struct {
	MaxQuads        int `yaml:"max_quads"`
	MaxTextureSlots int `yaml:"max_texture_slots"`
	// ShaderSource replaces the embedded shader. A "{{MAX_TEXTURE_SLOTS}}"
	// token is substituted with the slot count.
	ShaderSource string `yaml:"-"`
}

func (c Config) withDefaults() Config {
	if c.MaxQuads <= 0 {
		c.MaxQuads = DefaultMaxQuads
	}
	if c.MaxTextureSlots <= 0 {
		c.MaxTextureSlots = DefaultMaxTextureSlots
	}
	if c.ShaderSource == "" {
		c.ShaderSource = textureShader
	}
	return c
}

// Camera supplies the matrix a scene is drawn with.
type Camera interface {
	ViewProjection() mgl32.Mat4
}

// FixedCamera is a Camera over a precomputed view-projection.
type FixedCamera mgl32.Mat4

func (c FixedCamera) ViewProjection() mgl32.Mat4 { return mgl32.Mat4(c) }

// Statistics accumulate until ResetStats; scene boundaries do not reset them.
type Statistics struct {
	DrawCalls int
	QuadCount int
	// TextureBinds counts slot bindings issued across all draws.
	TextureBinds int
}

// TotalVertexCount reports vertices submitted since the last reset.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted since the last reset.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

type state int

const (
	stateReady state = iota
	stateInScene
	stateShutdown
)

// Renderer2D batches quads into one vertex buffer and draws each batch with a
// single indexed call. It is owned by the application and driven from the
// render thread only.
type Renderer2D struct {
	api    gfx.API
	va     gfx.VertexArray
	vb     gfx.VertexBuffer
	ib     gfx.IndexBuffer
	shader gfx.Shader
	white  gfx.Texture2D

	maxQuads    int
	maxVertices int
	maxSlots    int

	vertices    []QuadVertex
	vertexCount int
	slots       []gfx.Texture2D
	nextSlot    int

	stats Statistics
	state state
}

// New allocates every GPU resource the batcher needs. The index pattern and
// the sampler bindings are uploaded here once and never rewritten.
func New(api gfx.API, cfg Config) (*Renderer2D, error) {
	defer profiler.Start("Renderer2D.New")()

	cfg = cfg.withDefaults()
	slots := cfg.MaxTextureSlots
	if hw := api.MaxTextureSlots(); hw < slots {
		logging.Logger().Warn("texture slots clamped to device limit", "requested", slots, "device", hw)
		slots = hw
	}
	if slots < 2 {
		return nil, fmt.Errorf("renderer2d: need at least 2 texture slots, have %d", slots)
	}

	r := &Renderer2D{
		api:         api,
		maxQuads:    cfg.MaxQuads,
		maxVertices: cfg.MaxQuads * vertsPerQuad,
		maxSlots:    slots,
	}
	if err := r.init(cfg.ShaderSource); err != nil {
		r.release()
		return nil, err
	}
	logging.Logger().Debug("renderer2d ready", "max_quads", r.maxQuads, "texture_slots", r.maxSlots)
	return r, nil
}

func (r *Renderer2D) init(shaderSource string) error {
	var err error
	if r.va, err = r.api.NewVertexArray(); err != nil {
		return fmt.Errorf("renderer2d: vertex array: %w", err)
	}
	if r.vb, err = r.api.NewVertexBuffer(r.maxVertices * vertexSize); err != nil {
		return fmt.Errorf("renderer2d: vertex buffer: %w", err)
	}
	r.vb.SetLayout(quadLayout)
	r.va.AddVertexBuffer(r.vb)

	if r.ib, err = r.api.NewIndexBuffer(quadIndices(r.maxQuads)); err != nil {
		return fmt.Errorf("renderer2d: index buffer: %w", err)
	}
	r.va.SetIndexBuffer(r.ib)

	r.white, err = r.api.NewTexture(gfx.TextureSpec{
		Width: 1, Height: 1,
		Format:    gfx.TextureRGBA8,
		MinFilter: gfx.FilterNearest,
		MagFilter: gfx.FilterNearest,
		Wrap:      gfx.WrapClamp,
		Pixels:    []byte{255, 255, 255, 255},
	})
	if err != nil {
		return fmt.Errorf("renderer2d: white texture: %w", err)
	}

	src := strings.ReplaceAll(shaderSource, slotCountToken, strconv.Itoa(r.maxSlots))
	if r.shader, err = r.api.NewShader("Texture", src); err != nil {
		return fmt.Errorf("renderer2d: texture shader: %w", err)
	}
	samplers := make([]int32, r.maxSlots)
	for i := range samplers {
		samplers[i] = int32(i)
	}
	r.shader.Bind()
	r.shader.SetIntArray("u_Textures", samplers)

	r.vertices = make([]QuadVertex, r.maxVertices)
	r.slots = make([]gfx.Texture2D, r.maxSlots)
	r.slots[whiteSlot] = r.white
	r.nextSlot = 1
	return nil
}

// quadIndices builds {0,1,2, 2,3,0} + 4q for every quad of a batch.
func quadIndices(maxQuads int) []uint32 {
	out := make([]uint32, maxQuads*indsPerQuad)
	for q := 0; q < maxQuads; q++ {
		base := uint32(q * vertsPerQuad)
		i := q * indsPerQuad
		out[i+0] = base + 0
		out[i+1] = base + 1
		out[i+2] = base + 2
		out[i+3] = base + 2
		out[i+4] = base + 3
		out[i+5] = base + 0
	}
	return out
}

// Shutdown releases the batch resources. Further use panics.
func (r *Renderer2D) Shutdown() {
	if r.state == stateShutdown {
		return
	}
	r.release()
	r.vertices = nil
	r.slots = nil
	r.state = stateShutdown
}

func (r *Renderer2D) release() {
	if r.shader != nil {
		r.shader.Delete()
	}
	if r.white != nil {
		r.white.Delete()
	}
	if r.ib != nil {
		r.ib.Delete()
	}
	if r.vb != nil {
		r.vb.Delete()
	}
	if r.va != nil {
		r.va.Delete()
	}
}

var errSceneState = errors.New("renderer2d: call outside BeginScene/EndScene")

func (r *Renderer2D) mustBeInScene(op string) {
	if r.state != stateInScene {
		panic(fmt.Errorf("%s: %w", op, errSceneState))
	}
}

// BeginScene binds the shader with the camera matrix and starts an empty batch.
func (r *Renderer2D) BeginScene(cam Camera) {
	defer profiler.Start("Renderer2D.BeginScene")()

	switch r.state {
	case stateInScene:
		panic("renderer2d: BeginScene called twice without EndScene")
	case stateShutdown:
		panic("renderer2d: BeginScene after Shutdown")
	}
	r.shader.Bind()
	r.shader.SetMat4("u_ViewProjection", cam.ViewProjection())
	r.resetBatch()
	r.state = stateInScene
}

// EndScene uploads the pending vertices and draws them.
func (r *Renderer2D) EndScene() {
	defer profiler.Start("Renderer2D.EndScene")()

	r.mustBeInScene("EndScene")
	r.submit()
	r.state = stateReady
}

// submit uploads the live prefix of the staging buffer, then flushes.
func (r *Renderer2D) submit() {
	if r.vertexCount > 0 {
		r.vb.SetData(vertexBytes(r.vertices[:r.vertexCount]))
	}
	r.flush()
}

func (r *Renderer2D) flush() {
	if r.vertexCount == 0 {
		return
	}
	for i := 0; i < r.nextSlot; i++ {
		r.slots[i].Bind(i)
	}
	r.api.DrawIndexed(r.va, r.vertexCount/vertsPerQuad*indsPerQuad)
	r.stats.DrawCalls++
	r.stats.TextureBinds += r.nextSlot
}

// Flush draws the pending batch immediately and continues the scene with an
// empty one.
func (r *Renderer2D) Flush() {
	r.mustBeInScene("Flush")
	r.flushAndReset()
}

// flushAndReset ends the current batch without touching the camera uniform.
func (r *Renderer2D) flushAndReset() {
	r.submit()
	r.resetBatch()
}

func (r *Renderer2D) resetBatch() {
	r.vertexCount = 0
	for i := 1; i < r.nextSlot; i++ {
		r.slots[i] = nil
	}
	r.nextSlot = 1
}

func (r *Renderer2D) isFull() bool { return r.vertexCount >= r.maxVertices }

// textureSlot returns the batch slot of tex, flushing first when the table is
// exhausted so the assignment always succeeds.
func (r *Renderer2D) textureSlot(tex gfx.Texture2D) int {
	for i := 1; i < r.nextSlot; i++ {
		if r.slots[i] == tex {
			return i
		}
	}
	if r.nextSlot == r.maxSlots {
		r.flushAndReset()
	}
	slot := r.nextSlot
	r.slots[slot] = tex
	r.nextSlot++
	return slot
}

// ComputeTransform returns T(position) * Rz(rotation) * S(size).
func ComputeTransform(position mgl32.Vec3, size mgl32.Vec2, rotation float32) mgl32.Mat4 {
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	if rotation != 0 {
		t = t.Mul4(mgl32.HomogRotate3DZ(rotation))
	}
	return t.Mul4(mgl32.Scale3D(size.X(), size.Y(), 1))
}

// DrawQuad draws a flat colored quad centered at position (z = 0).
// Rotation is in radians.
func (r *Renderer2D) DrawQuad(position, size mgl32.Vec2, rotation float32, color colors.Color) {
	r.DrawQuad3D(position.Vec3(0), size, rotation, color)
}

// DrawQuad3D is DrawQuad with an explicit z for depth ordering.
func (r *Renderer2D) DrawQuad3D(position mgl32.Vec3, size mgl32.Vec2, rotation float32, color colors.Color) {
	r.DrawQuadTransform(ComputeTransform(position, size, rotation), color)
}

// DrawQuadTransform draws a flat colored unit quad under transform.
func (r *Renderer2D) DrawQuadTransform(transform mgl32.Mat4, color colors.Color) {
	r.mustBeInScene("DrawQuad")
	if r.isFull() {
		r.flushAndReset()
	}
	r.writeQuad(transform, color, &quadTexCoords, whiteSlot, 1)
}

// DrawTexture draws tex tinted by tint, repeating it tiling times across the quad.
func (r *Renderer2D) DrawTexture(position, size mgl32.Vec2, rotation float32, tex gfx.Texture2D, tiling float32, tint colors.Color) {
	r.DrawTexture3D(position.Vec3(0), size, rotation, tex, tiling, tint)
}

// DrawTexture3D is DrawTexture with an explicit z for depth ordering.
func (r *Renderer2D) DrawTexture3D(position mgl32.Vec3, size mgl32.Vec2, rotation float32, tex gfx.Texture2D, tiling float32, tint colors.Color) {
	r.DrawTextureTransform(ComputeTransform(position, size, rotation), tex, tiling, tint)
}

// DrawTextureTransform draws tex on a unit quad under transform. tex must not be nil.
func (r *Renderer2D) DrawTextureTransform(transform mgl32.Mat4, tex gfx.Texture2D, tiling float32, tint colors.Color) {
	r.mustBeInScene("DrawTexture")
	if tex == nil {
		panic("renderer2d: DrawTexture with nil texture")
	}
	if r.isFull() {
		r.flushAndReset()
	}
	slot := r.textureSlot(tex)
	r.writeQuad(transform, tint, &quadTexCoords, slot, tiling)
}

// DrawSubTexture draws the atlas region of sub. Sub-textures of one atlas
// share the atlas slot.
func (r *Renderer2D) DrawSubTexture(position, size mgl32.Vec2, rotation float32, sub SubTexture2D, tiling float32, tint colors.Color) {
	r.DrawSubTexture3D(position.Vec3(0), size, rotation, sub, tiling, tint)
}

// DrawSubTexture3D is DrawSubTexture with an explicit z for depth ordering.
func (r *Renderer2D) DrawSubTexture3D(position mgl32.Vec3, size mgl32.Vec2, rotation float32, sub SubTexture2D, tiling float32, tint colors.Color) {
	r.mustBeInScene("DrawSubTexture")
	if sub.Texture == nil {
		panic("renderer2d: DrawSubTexture with nil texture")
	}
	if r.isFull() {
		r.flushAndReset()
	}
	slot := r.textureSlot(sub.Texture)
	r.writeQuad(ComputeTransform(position, size, rotation), tint, &sub.TexCoords, slot, tiling)
}

func (r *Renderer2D) writeQuad(transform mgl32.Mat4, color colors.Color, uv *[vertsPerQuad]mgl32.Vec2, slot int, tiling float32) {
	for i := 0; i < vertsPerQuad; i++ {
		v := &r.vertices[r.vertexCount]
		v.Position = transform.Mul4x1(quadCorners[i]).Vec3()
		v.Color = color
		v.TexCoord = uv[i]
		v.TexIndex = float32(slot)
		v.TilingFactor = tiling
		r.vertexCount++
	}
	r.stats.QuadCount++
}

// vertexBytes views staged vertices as raw bytes for upload.
func vertexBytes(v []QuadVertex) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*vertexSize)
}

// ResetStats zeroes the counters. Call once per application frame.
func (r *Renderer2D) ResetStats() { r.stats = Statistics{} }

func (r *Renderer2D) Stats() Statistics { return r.stats }

func (r *Renderer2D) MaxQuads() int        { return r.maxQuads }
func (r *Renderer2D) MaxTextureSlots() int { return r.maxSlots }

// WhiteTexture is the reserved 1x1 texture in slot 0.
func (r *Renderer2D) WhiteTexture() gfx.Texture2D { return r.white }

// PendingQuads is the number of quads staged in the current batch.
func (r *Renderer2D) PendingQuads() int { return r.vertexCount / vertsPerQuad }

// TextureSlots returns the occupied slots of the current batch, slot 0 first.
func (r *Renderer2D) TextureSlots() []gfx.Texture2D {
	out := make([]gfx.Texture2D, r.nextSlot)
	copy(out, r.slots[:r.nextSlot])
	return out
}
