package systems

import (
	"github.com/automoto/castlecrush/components"
	"github.com/yohamta/donburi"
)

// UpdateStates counts frames spent in the current state.
func UpdateStates(w donburi.World) {
	components.State.Each(w, func(e *donburi.Entry) {
		components.State.Get(e).StateTimer++
	})
}
