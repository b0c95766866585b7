package archetypes

import (
	"testing"

	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/tags"
	"github.com/yohamta/donburi"
)

func TestSpawnAddsArchetypeComponents(t *testing.T) {
	w := donburi.NewWorld()
	e := Block.Spawn(w)

	for _, c := range []donburi.IComponentType{tags.Block, components.Block, components.Body, components.Transform, components.Sprite, components.Flash} {
		if !e.HasComponent(c) {
			t.Errorf("block missing %v", c)
		}
	}
	if e.HasComponent(components.Projectile) {
		t.Error("block should not be a projectile")
	}
}

func TestSpawnExtraComponentsDoNotLeak(t *testing.T) {
	w := donburi.NewWorld()
	withState := Projectile.Spawn(w, components.State)
	plain := Projectile.Spawn(w)

	if !withState.HasComponent(components.State) {
		t.Fatal("extra component not added")
	}
	if plain.HasComponent(components.State) {
		t.Fatal("extra component leaked into the archetype")
	}
}
