package components

import (
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	LaunchedAt float64
	Spent      bool // left the world bounds
	RestPolls  int  // consecutive polls spent at rest
}

var Projectile = donburi.NewComponentType[ProjectileData]()

type TargetData struct {
	Hit bool
}

var Target = donburi.NewComponentType[TargetData]()
