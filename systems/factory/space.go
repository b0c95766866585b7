package factory

import (
	"github.com/automoto/castlecrush/archetypes"
	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/shared/physics"
	"github.com/yohamta/donburi"
)

// CreateSpace spawns the singleton physics world configured from cfg.
func CreateSpace(w donburi.World, cfg config.Config) *donburi.Entry {
	minX, minY, maxX, maxY := cfg.WorldBounds()
	pc := cfg.Physics

	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		World: physics.NewWorld(physics.WorldDef{
			Gravity:              physics.Vec{X: 0, Y: pc.Gravity},
			Bounds:               physics.Rect{Min: physics.Vec{X: minX, Y: minY}, Max: physics.Vec{X: maxX, Y: maxY}},
			CellSize:             pc.CellSize,
			Iterations:           pc.Iterations,
			RestitutionThreshold: pc.RestitutionThreshold,
			Slop:                 pc.Slop,
			Correction:           pc.Correction,
			EnableSleeping:       pc.EnableSleeping,
			SleepThreshold:       pc.SleepThreshold,
			SleepTicks:           pc.SleepTicks,
			WakeThreshold:        pc.SleepThreshold * 2.25,
		}),
	})
	return space
}

// Space returns the round's physics world.
func Space(w donburi.World) *physics.World {
	return components.Space.Get(components.Space.MustFirst(w)).World
}

// attachBody adds def to the physics world and records pose and handle on e.
func attachBody(w donburi.World, e *donburi.Entry, def physics.BodyDef) physics.Handle {
	h := Space(w).Add(def)
	components.Body.SetValue(e, components.BodyData{Handle: h})

	width, height := def.Shape.Width, def.Shape.Height
	if def.Shape.Kind == physics.ShapeCircle {
		width, height = def.Shape.Radius*2, def.Shape.Radius*2
	}
	tf := components.Transform.Get(e)
	tf.Position.X, tf.Position.Y = def.Position.X, def.Position.Y
	tf.Rotation = def.Angle
	tf.Width, tf.Height = width, height
	return h
}
