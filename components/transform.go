package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is the entity pose as last copied from its body.
type TransformData struct {
	Position math.Vec2
	Rotation float64 // radians
	Width    float64 // circles use Width as the diameter
	Height   float64
}

var Transform = donburi.NewComponentType[TransformData]()
