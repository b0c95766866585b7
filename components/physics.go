package components

import (
	"github.com/automoto/castlecrush/shared/physics"
	"github.com/yohamta/donburi"
)

// SpaceData holds the physics world shared by every body in a round.
type SpaceData struct {
	World *physics.World
}

var Space = donburi.NewComponentType[SpaceData]()

// BodyData links an entity to the physics body it exclusively owns.
type BodyData struct {
	Handle physics.Handle
}

var Body = donburi.NewComponentType[BodyData]()
