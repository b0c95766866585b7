package systems

import (
	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateObjects copies every body's pose onto its entity's transform.
func UpdateObjects(w donburi.World) {
	space := factory.Space(w)
	components.Body.Each(w, func(e *donburi.Entry) {
		body, ok := space.Body(components.Body.Get(e).Handle)
		if !ok || body.IsStatic() {
			return
		}
		tf := components.Transform.Get(e)
		pos := body.Position()
		tf.Position.X, tf.Position.Y = pos.X, pos.Y
		tf.Rotation = body.Angle()
	})
}
