package systems

import (
	"github.com/automoto/castlecrush/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// DamageResult reports what DealDamage did to a block.
type DamageResult int

const (
	DamageIgnored DamageResult = iota
	DamageApplied
	DamageDestroyed
)

// DealDamage adds amount to a block's damage level. Damage inside the
// block's immunity window is dropped; reaching capacity destroys the block,
// otherwise it switches to the next variant and flashes.
func DealDamage(r *Registry, e *donburi.Entry, amount int, now float64, flashTicks float32) DamageResult {
	if amount <= 0 || e == nil || !e.Valid() || !e.HasComponent(components.Block) {
		return DamageIgnored
	}
	block := components.Block.Get(e)
	if now-block.CreatedAt < block.Immunity {
		return DamageIgnored
	}

	block.Damage += amount
	if block.Damage >= block.MaxDamage {
		r.Destroy(e)
		return DamageDestroyed
	}

	components.Sprite.Get(e).Key = block.Variant()
	if flashTicks > 0 {
		components.Flash.SetValue(e, components.FlashData{
			Tween:     gween.New(1, 0, flashTicks, ease.OutQuad),
			Intensity: 1,
		})
	}
	return DamageApplied
}
