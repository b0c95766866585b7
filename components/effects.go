package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks a block's damage flash. Intensity runs from 1 to 0.
type FlashData struct {
	Tween     *gween.Tween
	Intensity float32
}

var Flash = donburi.NewComponentType[FlashData]()
