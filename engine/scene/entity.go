package scene

import "github.com/hubastard/grove2d/engine/core"

// Entity pairs a registry handle with the scene that owns it.
type Entity struct {
	id    EntityID
	scene *Scene
}

func (e Entity) ID() EntityID   { return e.id }
func (e Entity) Scene() *Scene  { return e.scene }
func (e Entity) Valid() bool    { return e.scene != nil && e.scene.Registry.Valid(e.id) }
func (e Entity) String() string { return e.id.String() }

func AddComponent[T any](e Entity, c T) *T { return Add(e.scene.Registry, e.id, c) }

// GetComponent returns nil when e has no T.
func GetComponent[T any](e Entity) *T {
	c, _ := Get[T](e.scene.Registry, e.id)
	return c
}

func HasComponent[T any](e Entity) bool { return Has[T](e.scene.Registry, e.id) }

func RemoveComponent[T any](e Entity) { Remove[T](e.scene.Registry, e.id) }

// ScriptableEntity provides no-op hooks and the owning Entity to scripts.
type ScriptableEntity struct {
	Entity Entity
}

func (s *ScriptableEntity) attach(e Entity) { s.Entity = e }

func (s *ScriptableEntity) OnCreate()  {}
func (s *ScriptableEntity) OnDestroy() {}

func (s *ScriptableEntity) OnUpdate(_ core.Timestep) {}
