package archetypes

import (
	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/tags"
	"github.com/yohamta/donburi"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Round = newArchetype(
		components.Round,
		components.Tutorial,
	)
	Boundary = newArchetype(
		tags.Boundary,
		components.Body,
		components.Transform,
	)
	Block = newArchetype(
		tags.Block,
		components.Block,
		components.Body,
		components.Transform,
		components.Sprite,
		components.Flash,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Body,
		components.Transform,
		components.Sprite,
	)
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Body,
		components.Transform,
		components.Sprite,
	)
	Cannon = newArchetype(
		tags.Cannon,
		components.Cannon,
		components.Aim,
		components.State,
		components.Body,
		components.Transform,
		components.Sprite,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
