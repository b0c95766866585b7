package systems

import (
	"math"

	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/systems/factory"
	"github.com/yohamta/donburi"
)

// ProjectileAtRest reports whether a fired ball no longer needs watching:
// it stopped moving, left the world, or is already gone.
func ProjectileAtRest(w donburi.World, e *donburi.Entry, cfg config.ProjectileConfig) bool {
	if e == nil || !e.Valid() || !e.HasComponent(components.Body) {
		return true
	}
	space := factory.Space(w)
	h := components.Body.Get(e).Handle
	body, ok := space.Body(h)
	if !ok {
		return true
	}
	if !space.InBounds(h) {
		components.Projectile.Get(e).Spent = true
		components.Sprite.Get(e).Hidden = true
		return true
	}
	return body.Velocity().LenSq() < cfg.RestSpeedSq &&
		math.Abs(body.AngularVelocity()) < cfg.RestAngularSpeed
}

// ProjectileSettled reports whether the ball has been at rest for
// cfg.RestPolls consecutive polls. A ball that is gone or out of the world
// settles at once.
func ProjectileSettled(w donburi.World, e *donburi.Entry, cfg config.ProjectileConfig) bool {
	if !ProjectileAtRest(w, e, cfg) {
		components.Projectile.Get(e).RestPolls = 0
		return false
	}
	if e == nil || !e.Valid() || !e.HasComponent(components.Body) {
		return true
	}
	data := components.Projectile.Get(e)
	if data.Spent {
		return true
	}
	data.RestPolls++
	return data.RestPolls >= cfg.RestPolls
}
