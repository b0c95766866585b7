// Package leveldata parses castle layouts from Tiled TMX maps.
package leveldata

import "github.com/automoto/castlecrush/config"

// CastleData is a castle layout read from a TMX object group. Block and
// target positions are centres relative to the anchor, with y measured
// upward.
type CastleData struct {
	AnchorX, AnchorY float64
	Blocks           []BlockData
	Target           *TargetData
	MapWidth         int
	MapHeight        int
}

// BlockData is one block placement.
type BlockData struct {
	Type     string
	X, Y     float64
	Rotation float64 // degrees
	Damage   int
}

// TargetData is the target rectangle.
type TargetData struct {
	X, Y, W, H float64
}

// Apply replaces c's anchor, layout and (when present) target with d.
func (d *CastleData) Apply(c *config.CastleConfig) {
	c.AnchorX, c.AnchorY = d.AnchorX, d.AnchorY
	c.Layout = make([]config.BlockPlacement, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		c.Layout = append(c.Layout, config.BlockPlacement{
			Type:          config.BlockType(b.Type),
			X:             b.X,
			Y:             b.Y,
			Rotation:      b.Rotation,
			InitialDamage: b.Damage,
		})
	}
	if d.Target != nil {
		c.TargetOffsetX, c.TargetOffsetY = d.Target.X, d.Target.Y
		c.TargetWidth, c.TargetHeight = d.Target.W, d.Target.H
	}
}
