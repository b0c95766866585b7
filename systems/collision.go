package systems

import (
	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/shared/gamemath"
	"github.com/automoto/castlecrush/shared/physics"
	"github.com/automoto/castlecrush/tags"
)

// CollisionResolver turns collision-start batches into block damage and
// target hits.
type CollisionResolver struct {
	registry   *Registry
	cfg        config.BlocksConfig
	flashTicks float32
	now        func() float64
	onWin      func()
}

func NewCollisionResolver(r *Registry, cfg config.BlocksConfig, flashTicks float32, now func() float64, onWin func()) *CollisionResolver {
	return &CollisionResolver{
		registry:   r,
		cfg:        cfg,
		flashTicks: flashTicks,
		now:        now,
		onWin:      onWin,
	}
}

// Resolve handles one batch. A projectile touching the target signals a win
// and that pair deals no damage; other pairs in the same batch are still
// graded.
func (c *CollisionResolver) Resolve(pairs []physics.CollisionPair) {
	for _, p := range pairs {
		if isTargetHit(p) {
			c.onWin()
			continue
		}

		blockA, okA := c.registry.Block(p.A)
		blockB, okB := c.registry.Block(p.B)
		if !okA && !okB {
			continue
		}

		speed := gamemath.ImpactSpeed(p.RelativeVelocity.X, p.RelativeVelocity.Y, p.Normal.X, p.Normal.Y)
		damage := gamemath.ImpactDamage(speed, c.cfg.DamageThreshold, c.cfg.DestructionThreshold)
		if damage == 0 {
			continue
		}
		now := c.now()
		if okA {
			DealDamage(c.registry, blockA, damage, now, c.flashTicks)
		}
		if okB {
			DealDamage(c.registry, blockB, damage, now, c.flashTicks)
		}
	}
}

func isTargetHit(p physics.CollisionPair) bool {
	return (p.LabelA == tags.LabelTarget && p.LabelB == tags.LabelProjectile) ||
		(p.LabelA == tags.LabelProjectile && p.LabelB == tags.LabelTarget)
}
