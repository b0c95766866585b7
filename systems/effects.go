package systems

import (
	"github.com/automoto/castlecrush/components"
	"github.com/yohamta/donburi"
)

// UpdateEffects advances flash, banner and drag hint tweens by dt ticks.
func UpdateEffects(w donburi.World, dt float32) {
	updateFlashEffects(w, dt)
	updateBanner(w, dt)
	updateTutorial(w, dt)
}

func updateFlashEffects(w donburi.World, dt float32) {
	components.Flash.Each(w, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		v, done := flash.Tween.Update(dt)
		flash.Intensity = v
		if done {
			flash.Tween = nil
			flash.Intensity = 0
		}
	})
}

func updateBanner(w donburi.World, dt float32) {
	components.Round.Each(w, func(e *donburi.Entry) {
		round := components.Round.Get(e)
		if round.Banner == nil {
			return
		}
		v, done := round.Banner.Update(dt)
		round.BannerOffset = v
		if done {
			round.Banner = nil
		}
	})
}

func updateTutorial(w donburi.World, dt float32) {
	components.Tutorial.Each(w, func(e *donburi.Entry) {
		hint := components.Tutorial.Get(e)
		if hint.Tween == nil {
			return
		}
		v, done := hint.Tween.Update(dt)
		hint.Progress = v
		if done {
			hint.Tween.Reset()
			hint.Progress = 0
		}
	})
}

// StopTutorial dismisses the drag hint. It reports whether a running hint
// was stopped.
func StopTutorial(w donburi.World) bool {
	stopped := false
	components.Tutorial.Each(w, func(e *donburi.Entry) {
		hint := components.Tutorial.Get(e)
		if hint.Tween != nil {
			hint.Tween = nil
			hint.Progress = 0
			stopped = true
		}
	})
	return stopped
}
