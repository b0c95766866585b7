package systems

import (
	"slices"

	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/shared/physics"
	"github.com/automoto/castlecrush/systems/factory"
	"github.com/automoto/castlecrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// DestroyObserver is told about an entity just before it is removed. The
// entry is still valid during the call.
type DestroyObserver interface {
	EntityDestroyed(e *donburi.Entry)
}

// Registry owns entity teardown. It keeps the body handle to block lookup
// used by collision handling and guarantees each entity is destroyed once.
type Registry struct {
	world     donburi.World
	blocks    map[physics.Handle]donburi.Entity
	observers []DestroyObserver
}

func NewRegistry(w donburi.World) *Registry {
	return &Registry{
		world:  w,
		blocks: map[physics.Handle]donburi.Entity{},
	}
}

func (r *Registry) Observe(o DestroyObserver) {
	r.observers = append(r.observers, o)
}

// Track registers a freshly created entity. Blocks become resolvable by
// their body handle.
func (r *Registry) Track(e *donburi.Entry) {
	if e.HasComponent(components.Block) && e.HasComponent(components.Body) {
		r.blocks[components.Body.Get(e).Handle] = e.Entity()
	}
}

// Block resolves a body handle to its live block entry.
func (r *Registry) Block(h physics.Handle) (*donburi.Entry, bool) {
	ent, ok := r.blocks[h]
	if !ok || !r.world.Valid(ent) {
		return nil, false
	}
	return r.world.Entry(ent), true
}

// Handles lists the body handles of every registered block in ascending
// order.
func (r *Registry) Handles() []physics.Handle {
	hs := make([]physics.Handle, 0, len(r.blocks))
	for h := range r.blocks {
		hs = append(hs, h)
	}
	slices.Sort(hs)
	return hs
}

// BlockCount is the number of live registered blocks.
func (r *Registry) BlockCount() int {
	return len(r.blocks)
}

// Destroy removes e and its physics body. Destroying an entity that is
// already gone is a no-op and returns false.
func (r *Registry) Destroy(e *donburi.Entry) bool {
	if e == nil || !e.Valid() {
		return false
	}
	for _, o := range r.observers {
		o.EntityDestroyed(e)
	}
	if e.HasComponent(components.Body) {
		h := components.Body.Get(e).Handle
		if ent, ok := r.blocks[h]; ok && ent == e.Entity() {
			delete(r.blocks, h)
		}
		factory.Space(r.world).Remove(h)
	}
	r.world.Remove(e.Entity())
	return true
}

var roundEntities = donburi.NewQuery(filter.And(
	filter.Contains(components.Transform),
	filter.Not(filter.Contains(tags.Boundary)),
))

// DestroyRound tears down every round-scoped entity: blocks, projectiles,
// the target and the cannon. Boundaries survive.
func (r *Registry) DestroyRound() int {
	var doomed []*donburi.Entry
	roundEntities.Each(r.world, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})
	n := 0
	for _, e := range doomed {
		if r.Destroy(e) {
			n++
		}
	}
	return n
}
