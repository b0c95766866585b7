package systems

import (
	"math"

	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/shared/gamemath"
	"github.com/automoto/castlecrush/systems/factory"
	"github.com/yohamta/donburi"
)

// CannonController drives the cannon's Idle -> Dragging -> Firing cycle from
// pointer events. Coordinates are world pixels.
type CannonController struct {
	world    donburi.World
	registry *Registry
	cannon   config.CannonConfig
	proj     config.ProjectileConfig

	minAngle, maxAngle float64
}

func NewCannonController(w donburi.World, r *Registry, cannon config.CannonConfig, proj config.ProjectileConfig) *CannonController {
	minA, maxA := gamemath.ElevationArc(cannon.MinElevation, cannon.MaxElevation)
	return &CannonController{
		world:    w,
		registry: r,
		cannon:   cannon,
		proj:     proj,
		minAngle: minA,
		maxAngle: maxA,
	}
}

// PointerDown starts a drag when the cannon is idle, loaded, and the pointer
// lands within reach of the pivot.
func (c *CannonController) PointerDown(e *donburi.Entry, x, y float64) bool {
	state := components.State.Get(e)
	cannon := components.Cannon.Get(e)
	if state.CurrentState != config.Idle || cannon.ShotsRemaining() <= 0 {
		return false
	}
	if math.Hypot(cannon.PivotX-x, cannon.PivotY-y) >= c.cannon.MaxDragRadius {
		return false
	}
	state.Set(config.Dragging)
	return true
}

// PointerMove updates the aim while dragging. Pulling back inside the
// minimum radius clears the aim; moving past the maximum radius keeps the
// last aim.
func (c *CannonController) PointerMove(e *donburi.Entry, x, y float64) {
	if components.State.Get(e).CurrentState != config.Dragging {
		return
	}
	cannon := components.Cannon.Get(e)
	dx, dy := cannon.PivotX-x, cannon.PivotY-y
	d := math.Hypot(dx, dy)
	switch {
	case d < c.cannon.MinDragRadius:
		c.resetAim(cannon)
	case d <= c.cannon.MaxDragRadius:
		c.aim(cannon, dx, dy, d)
	}
}

// PointerUp ends a drag. A release inside the minimum radius cancels;
// otherwise the cannon fires and the new projectile is returned.
func (c *CannonController) PointerUp(e *donburi.Entry, x, y float64) (*donburi.Entry, bool) {
	state := components.State.Get(e)
	if state.CurrentState != config.Dragging {
		return nil, false
	}
	cannon := components.Cannon.Get(e)
	dx, dy := cannon.PivotX-x, cannon.PivotY-y
	d := math.Hypot(dx, dy)
	if d < c.cannon.MinDragRadius {
		c.resetAim(cannon)
		state.Set(config.Idle)
		return nil, false
	}
	if d <= c.cannon.MaxDragRadius {
		c.aim(cannon, dx, dy, d)
	}
	return c.fire(e), true
}

// Settle returns a firing cannon to idle once its projectile has stopped.
func (c *CannonController) Settle(e *donburi.Entry) {
	state := components.State.Get(e)
	if state.CurrentState != config.Firing {
		return
	}
	c.resetAim(components.Cannon.Get(e))
	state.Set(config.Idle)
}

func (c *CannonController) aim(cannon *components.CannonData, dx, dy, d float64) {
	cannon.Power = gamemath.LaunchPower(d, c.cannon.MinDragRadius, c.cannon.MaxLaunchPowerRadius, c.cannon.MaxLaunchPower)
	cannon.Angle = gamemath.BarrelAngle(dx, dy, c.minAngle, c.maxAngle)
	cannon.Aimed = true
}

func (c *CannonController) resetAim(cannon *components.CannonData) {
	cannon.Power = 0
	cannon.Angle = cannon.DefaultAngle
	cannon.Aimed = false
}

func (c *CannonController) fire(e *donburi.Entry) *donburi.Entry {
	cannon := components.Cannon.Get(e)
	tipX, tipY := gamemath.BarrelTip(cannon.PivotX, cannon.PivotY, cannon.Angle, c.cannon.BarrelLength)
	vx, vy := gamemath.LaunchVelocity(cannon.Angle, cannon.Power)

	projectile := factory.CreateProjectile(c.world, c.proj, tipX, tipY, vx, vy)
	c.registry.Track(projectile)

	cannon.ShotsFired++
	cannon.Power = 0
	cannon.Aimed = false
	cannon.Projectile = projectile
	components.State.Get(e).Set(config.Firing)
	return projectile
}
