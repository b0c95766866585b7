package factory

import (
	"github.com/automoto/castlecrush/archetypes"
	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/shared/physics"
	"github.com/automoto/castlecrush/tags"
	"github.com/yohamta/donburi"
)

// CreateTarget spawns the static sensor the player is trying to hit.
func CreateTarget(w donburi.World, c config.CastleConfig) *donburi.Entry {
	target := archetypes.Target.Spawn(w)
	attachBody(w, target, physics.BodyDef{
		Label:    tags.LabelTarget,
		Shape:    physics.Box(c.TargetWidth, c.TargetHeight),
		Position: physics.Vec{X: c.AnchorX + c.TargetOffsetX, Y: c.AnchorY - c.TargetOffsetY},
		Static:   true,
		Sensor:   true,
	})
	components.Sprite.SetValue(target, components.SpriteData{Key: "target"})
	return target
}
