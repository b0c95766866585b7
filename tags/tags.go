package tags

import "github.com/yohamta/donburi"

var (
	Block      = donburi.NewTag().SetName("Block")
	Projectile = donburi.NewTag().SetName("Projectile")
	Target     = donburi.NewTag().SetName("Target")
	Cannon     = donburi.NewTag().SetName("Cannon")
	Boundary   = donburi.NewTag().SetName("Boundary")
)

// Body labels, carried on physics bodies and collision pairs
const (
	LabelBlock      = "block"
	LabelProjectile = "projectile"
	LabelTarget     = "target"
	LabelCannon     = "cannon"
	LabelGround     = "ground"
	LabelWall       = "wall"
)
