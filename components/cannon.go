package components

import (
	"github.com/automoto/castlecrush/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CannonData struct {
	PivotX, PivotY float64

	Angle        float64 // barrel angle, radians
	DefaultAngle float64
	Power        float64
	Aimed        bool // aim aids visible

	ShotsFired   int
	ShotsAllowed int

	// Projectile is the most recently fired ball; nil until the first shot.
	Projectile *donburi.Entry
}

// ShotsRemaining is the ammo left this round.
func (c *CannonData) ShotsRemaining() int {
	return c.ShotsAllowed - c.ShotsFired
}

var Cannon = donburi.NewComponentType[CannonData]()

// AimData holds the predicted trajectory shown while dragging.
type AimData struct {
	Samples []gamemath.TrajectorySample
}

var Aim = donburi.NewComponentType[AimData]()
