package scene

import (
	"fmt"
	"reflect"
)

// EntityID is a generational handle. A handle goes stale once its entity is
// destroyed, even if the slot is reused.
type EntityID struct {
	index uint32
	gen   uint32
}

// NullEntity is never valid; generations start at 1.
var NullEntity = EntityID{}

func (id EntityID) Index() uint32 { return id.index }

func (id EntityID) String() string { return fmt.Sprintf("entity(%d:%d)", id.index, id.gen) }

type storage interface {
	remove(index uint32)
}

type table[T any] struct {
	items map[uint32]*T
}

func (t *table[T]) remove(index uint32) { delete(t.items, index) }

// Registry owns entity slots and one component table per component type.
type Registry struct {
	gens   []uint32
	alive  []bool
	free   []uint32
	count  int
	tables map[reflect.Type]storage
}

func NewRegistry() *Registry {
	return &Registry{tables: make(map[reflect.Type]storage)}
}

// Create returns a fresh handle, reusing a destroyed slot when one is free.
func (r *Registry) Create() EntityID {
	r.count++
	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		r.alive[idx] = true
		return EntityID{index: idx, gen: r.gens[idx]}
	}
	r.gens = append(r.gens, 1)
	r.alive = append(r.alive, true)
	return EntityID{index: uint32(len(r.gens) - 1), gen: 1}
}

func (r *Registry) Valid(id EntityID) bool {
	return int(id.index) < len(r.gens) && r.alive[id.index] && r.gens[id.index] == id.gen
}

// Destroy drops every component of id and invalidates the handle.
func (r *Registry) Destroy(id EntityID) {
	if !r.Valid(id) {
		return
	}
	for _, t := range r.tables {
		t.remove(id.index)
	}
	r.alive[id.index] = false
	r.gens[id.index]++
	r.free = append(r.free, id.index)
	r.count--
}

// Len is the number of live entities.
func (r *Registry) Len() int { return r.count }

// Each visits live entities in ascending index order.
func (r *Registry) Each(fn func(EntityID)) {
	for i, ok := range r.alive {
		if ok {
			fn(EntityID{index: uint32(i), gen: r.gens[i]})
		}
	}
}

func tableOf[T any](r *Registry, create bool) *table[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()
	s, ok := r.tables[key]
	if !ok {
		if !create {
			return nil
		}
		t := &table[T]{items: make(map[uint32]*T)}
		r.tables[key] = t
		return t
	}
	return s.(*table[T])
}

func mustBeValid(r *Registry, id EntityID, op string) {
	if !r.Valid(id) {
		panic(fmt.Sprintf("scene: %s on stale or unknown %s", op, id))
	}
}

// Add stores c on id, replacing any component of the same type.
func Add[T any](r *Registry, id EntityID, c T) *T {
	mustBeValid(r, id, "Add")
	p := &c
	tableOf[T](r, true).items[id.index] = p
	return p
}

func Get[T any](r *Registry, id EntityID) (*T, bool) {
	if !r.Valid(id) {
		return nil, false
	}
	t := tableOf[T](r, false)
	if t == nil {
		return nil, false
	}
	p, ok := t.items[id.index]
	return p, ok
}

func Has[T any](r *Registry, id EntityID) bool {
	_, ok := Get[T](r, id)
	return ok
}

func Remove[T any](r *Registry, id EntityID) {
	if !r.Valid(id) {
		return
	}
	if t := tableOf[T](r, false); t != nil {
		t.remove(id.index)
	}
}

// View visits every entity carrying an A, in ascending index order.
func View[A any](r *Registry, fn func(EntityID, *A)) {
	ta := tableOf[A](r, false)
	if ta == nil {
		return
	}
	r.Each(func(id EntityID) {
		if a, ok := ta.items[id.index]; ok {
			fn(id, a)
		}
	})
}

// View2 visits every entity carrying both an A and a B, in ascending index order.
func View2[A, B any](r *Registry, fn func(EntityID, *A, *B)) {
	ta, tb := tableOf[A](r, false), tableOf[B](r, false)
	if ta == nil || tb == nil {
		return
	}
	r.Each(func(id EntityID) {
		a, ok := ta.items[id.index]
		if !ok {
			return
		}
		if b, ok := tb.items[id.index]; ok {
			fn(id, a, b)
		}
	})
}
