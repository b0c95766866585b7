package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData names what the presentation layer should draw for an entity.
type SpriteData struct {
	Key    string
	Hidden bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
