package scene

import (
	"github.com/google/uuid"
	"github.com/hubastard/grove2d/engine/core"
	"github.com/hubastard/grove2d/engine/gfx/renderer2d"
	"github.com/hubastard/grove2d/engine/profiler"
)

// Scene is a registry of entities rendered through a primary camera entity.
type Scene struct {
	Registry *Registry

	viewportW, viewportH int
}

func New() *Scene {
	return &Scene{Registry: NewRegistry()}
}

// CreateEntity adds an entity with ID, Transform and Tag components. An
// empty name is tagged "Entity".
func (s *Scene) CreateEntity(name string) Entity {
	return s.CreateEntityWithID(uuid.New(), name)
}

func (s *Scene) CreateEntityWithID(id uuid.UUID, name string) Entity {
	e := Entity{id: s.Registry.Create(), scene: s}
	if name == "" {
		name = "Entity"
	}
	AddComponent(e, IDComponent{ID: id})
	AddComponent(e, NewTransform())
	AddComponent(e, TagComponent{Tag: name})
	return e
}

// DestroyEntity runs the entity's script OnDestroy, then removes it.
func (s *Scene) DestroyEntity(e Entity) {
	if nsc := GetComponent[NativeScriptComponent](e); nsc != nil && nsc.Instance != nil {
		nsc.Instance.OnDestroy()
		nsc.Instance = nil
	}
	s.Registry.Destroy(e.id)
}

// Entity wraps a live handle of this scene.
func (s *Scene) Entity(id EntityID) Entity { return Entity{id: id, scene: s} }

// OnUpdate runs scripts, then draws every sprite through the primary camera.
// Nothing is drawn without a primary camera.
func (s *Scene) OnUpdate(r2d *renderer2d.Renderer2D, ts core.Timestep) {
	defer profiler.Start("Scene.OnUpdate")()

	View[NativeScriptComponent](s.Registry, func(id EntityID, nsc *NativeScriptComponent) {
		if nsc.Instance == nil {
			if nsc.Instantiate == nil {
				return
			}
			nsc.Instance = nsc.Instantiate()
			nsc.Instance.attach(s.Entity(id))
			nsc.Instance.OnCreate()
		}
		nsc.Instance.OnUpdate(ts)
	})

	cam, ok := s.primaryCamera()
	if !ok {
		return
	}
	r2d.BeginScene(cam)
	View2[TransformComponent, SpriteRendererComponent](s.Registry, func(_ EntityID, t *TransformComponent, sp *SpriteRendererComponent) {
		if sp.Texture == nil {
			r2d.DrawQuadTransform(t.Transform(), sp.Color)
			return
		}
		tiling := sp.TilingFactor
		if tiling == 0 {
			tiling = 1
		}
		r2d.DrawTextureTransform(t.Transform(), sp.Texture, tiling, sp.Color)
	})
	r2d.EndScene()
}

// PrimaryCamera returns the first entity whose camera is primary.
func (s *Scene) PrimaryCamera() (Entity, bool) {
	var (
		found Entity
		ok    bool
	)
	View2[TransformComponent, CameraComponent](s.Registry, func(id EntityID, _ *TransformComponent, c *CameraComponent) {
		if !ok && c.Primary {
			found, ok = s.Entity(id), true
		}
	})
	return found, ok
}

func (s *Scene) primaryCamera() (renderer2d.Camera, bool) {
	e, ok := s.PrimaryCamera()
	if !ok {
		return nil, false
	}
	cc := GetComponent[CameraComponent](e)
	t := GetComponent[TransformComponent](e)
	return renderer2d.FixedCamera(cc.Camera.Projection().Mul4(t.Transform().Inv())), true
}

// OnViewportResize resizes every camera without a fixed aspect ratio.
func (s *Scene) OnViewportResize(w, h int) {
	s.viewportW, s.viewportH = w, h
	View[CameraComponent](s.Registry, func(_ EntityID, c *CameraComponent) {
		if !c.FixedAspectRatio {
			c.Camera.SetViewportSize(w, h)
		}
	})
}

func (s *Scene) ViewportSize() (int, int) { return s.viewportW, s.viewportH }

// Destroy runs every live script's OnDestroy.
func (s *Scene) Destroy() {
	View[NativeScriptComponent](s.Registry, func(_ EntityID, nsc *NativeScriptComponent) {
		if nsc.Instance != nil {
			nsc.Instance.OnDestroy()
			nsc.Instance = nil
		}
	})
}
