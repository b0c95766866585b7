package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TutorialData is the drag hint: a hand moving from the barrel pivot to a
// drag end point, looping until the player first drags.
type TutorialData struct {
	FromX, FromY float64
	ToX, ToY     float64

	Tween    *gween.Tween // nil once dismissed
	Progress float32      // 0 at From, 1 at To
}

// Active reports whether the hint is still shown.
func (t *TutorialData) Active() bool {
	return t.Tween != nil
}

// Position is the hand's current point along the hint path.
func (t *TutorialData) Position() (float64, float64) {
	p := float64(t.Progress)
	return t.FromX + (t.ToX-t.FromX)*p, t.FromY + (t.ToY-t.FromY)*p
}

var Tutorial = donburi.NewComponentType[TutorialData]()
