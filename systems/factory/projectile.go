package factory

import (
	"github.com/automoto/castlecrush/archetypes"
	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/shared/physics"
	"github.com/automoto/castlecrush/tags"
	"github.com/yohamta/donburi"
)

// CreateProjectile spawns a ball at (x, y) and gives it its one launch
// velocity.
func CreateProjectile(w donburi.World, cfg config.ProjectileConfig, x, y, vx, vy float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(w)

	h := attachBody(w, p, physics.BodyDef{
		Label:       tags.LabelProjectile,
		Shape:       physics.Circle(cfg.Radius),
		Position:    physics.Vec{X: x, Y: y},
		Density:     cfg.Density,
		Restitution: cfg.Restitution,
		Friction:    cfg.Friction,
		AirFriction: cfg.AirFriction,
	})

	space := Space(w)
	if body, ok := space.Body(h); ok {
		body.SetVelocity(physics.Vec{X: vx, Y: vy})
	}

	components.Projectile.SetValue(p, components.ProjectileData{LaunchedAt: space.Time()})
	components.Sprite.SetValue(p, components.SpriteData{Key: "projectile"})
	return p
}
