package factory

import (
	"github.com/automoto/castlecrush/archetypes"
	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/shared/gamemath"
	"github.com/automoto/castlecrush/shared/physics"
	"github.com/automoto/castlecrush/tags"
	"github.com/yohamta/donburi"
)

// CreateCannon spawns the cannon base as a static body and initialises an
// idle, fully loaded aiming state.
func CreateCannon(w donburi.World, cfg config.CannonConfig) *donburi.Entry {
	cannon := archetypes.Cannon.Spawn(w)
	attachBody(w, cannon, physics.BodyDef{
		Label:    tags.LabelCannon,
		Shape:    physics.Box(cfg.BaseWidth, cfg.BaseHeight),
		Position: physics.Vec{X: cfg.BaseX, Y: cfg.BaseY},
		Static:   true,
		Friction: 0.8,
	})

	defaultAngle, _ := gamemath.ElevationArc(cfg.DefaultElevation, cfg.DefaultElevation)
	components.Cannon.SetValue(cannon, components.CannonData{
		PivotX:       cfg.BaseX + cfg.PivotOffsetX,
		PivotY:       cfg.BaseY + cfg.PivotOffsetY,
		Angle:        defaultAngle,
		DefaultAngle: defaultAngle,
		ShotsAllowed: cfg.Ammo,
	})
	components.State.SetValue(cannon, components.StateData{CurrentState: config.Idle})
	components.Sprite.SetValue(cannon, components.SpriteData{Key: "cannon"})
	return cannon
}
