package factory

import (
	"math"

	"github.com/automoto/castlecrush/archetypes"
	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/shared/physics"
	"github.com/automoto/castlecrush/tags"
	"github.com/yohamta/donburi"
)

// CreateBlock spawns a destructible block at world position (x, y).
// Entity construction does not validate; bad placements are rejected by
// config.Validate.
func CreateBlock(w donburi.World, cfg config.BlocksConfig, p config.BlockPlacement, x, y float64) *donburi.Entry {
	t := cfg.Types[p.Type]
	block := archetypes.Block.Spawn(w)

	attachBody(w, block, physics.BodyDef{
		Label:       tags.LabelBlock,
		Shape:       physics.Box(t.Width, t.Height),
		Position:    physics.Vec{X: x, Y: y},
		Angle:       p.Rotation * math.Pi / 180,
		Density:     t.Density,
		Restitution: t.Restitution,
		Friction:    t.Friction,
		AirFriction: t.AirFriction,
	})

	data := components.BlockData{
		Type:      p.Type,
		Damage:    p.InitialDamage,
		MaxDamage: t.MaxDamage(),
		Variants:  t.Variants,
		CreatedAt: Space(w).Time(),
		Immunity:  cfg.ImmunityTicks,
	}
	components.Block.SetValue(block, data)
	components.Sprite.SetValue(block, components.SpriteData{Key: data.Variant()})
	return block
}

// CreateCastle lays out every block of the configured castle. Placements are
// relative to the anchor with y pointing up.
func CreateCastle(w donburi.World, cfg config.Config) []*donburi.Entry {
	c := cfg.Castle
	blocks := make([]*donburi.Entry, 0, len(c.Layout))
	for _, p := range c.Layout {
		blocks = append(blocks, CreateBlock(w, cfg.Blocks, p, c.AnchorX+p.X, c.AnchorY-p.Y))
	}
	return blocks
}
