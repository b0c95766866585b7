package components

import (
	"github.com/automoto/castlecrush/config"
	"github.com/yohamta/donburi"
)

type BlockData struct {
	Type      config.BlockType
	Damage    int
	MaxDamage int
	Variants  []string

	CreatedAt float64 // physics time at spawn
	Immunity  float64 // ticks after CreatedAt during which damage is ignored
}

// Variant is the texture key for the current damage tier.
func (b *BlockData) Variant() string {
	if len(b.Variants) == 0 {
		return ""
	}
	i := b.Damage
	if i >= len(b.Variants) {
		i = len(b.Variants) - 1
	}
	return b.Variants[i]
}

var Block = donburi.NewComponentType[BlockData]()
