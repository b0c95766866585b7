package factory

import (
	"github.com/automoto/castlecrush/archetypes"
	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/config"
	"github.com/google/uuid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateRound spawns the round singleton with a fresh identity. The drag
// hint starts looping when the tutorial is enabled.
func CreateRound(w donburi.World, number int, cannon config.CannonConfig, tut config.TutorialConfig) *donburi.Entry {
	round := archetypes.Round.Spawn(w)
	components.Round.SetValue(round, components.RoundData{
		ID:     uuid.New(),
		Number: number,
	})

	pivotX, pivotY := cannon.BaseX+cannon.PivotOffsetX, cannon.BaseY+cannon.PivotOffsetY
	hint := components.TutorialData{
		FromX: pivotX,
		FromY: pivotY,
		ToX:   pivotX + tut.DragX,
		ToY:   pivotY + tut.DragY,
	}
	if tut.Enabled {
		hint.Tween = gween.New(0, 1, tut.LoopTicks, ease.InOutCubic)
	}
	components.Tutorial.SetValue(round, hint)
	return round
}
