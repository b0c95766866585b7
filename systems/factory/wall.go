package factory

import (
	"github.com/automoto/castlecrush/archetypes"
	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/shared/physics"
	"github.com/automoto/castlecrush/tags"
	"github.com/yohamta/donburi"
)

// CreateWall spawns a static boundary box centred at (x, y).
func CreateWall(w donburi.World, label string, x, y, width, height float64) *donburi.Entry {
	wall := archetypes.Boundary.Spawn(w)
	attachBody(w, wall, physics.BodyDef{
		Label:    label,
		Shape:    physics.Box(width, height),
		Position: physics.Vec{X: x, Y: y},
		Static:   true,
		Friction: 0.8,
	})
	return wall
}

// CreateBoundaries spawns the ground slab and the two side walls. They live
// for the whole session.
func CreateBoundaries(w donburi.World, cfg config.Config) []*donburi.Entry {
	b := cfg.Boundaries
	sw, sh := float64(cfg.Screen.Width), float64(cfg.Screen.Height)

	groundW := sw + 2*b.GroundMargin
	ground := CreateWall(w, tags.LabelGround, sw/2, sh-b.GroundHeight/2, groundW, b.GroundHeight)

	wallY := sh - b.WallHeight/2
	left := CreateWall(w, tags.LabelWall, -b.WallOffset-b.WallWidth/2, wallY, b.WallWidth, b.WallHeight)
	right := CreateWall(w, tags.LabelWall, sw+b.WallOffset+b.WallWidth/2, wallY, b.WallWidth, b.WallHeight)

	return []*donburi.Entry{ground, left, right}
}
