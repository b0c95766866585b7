package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionReset
	ActionQuit
	ActionCount
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var bindings = map[ActionID]InputBinding{
	ActionReset: {
		Keys: []ebiten.Key{ebiten.KeyR},
		// Start button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterRight,
		},
	},
	ActionQuit: {
		Keys: []ebiten.Key{ebiten.KeyEscape},
	},
}

var gamepadIDs []ebiten.GamepadID

// justPressed reports whether any binding for a fired this tick.
func justPressed(a ActionID) bool {
	b := bindings[a]
	for _, k := range b.Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

// pointer merges mouse and single-touch input into down/move/up events.
type pointer struct {
	touch    ebiten.TouchID
	touching bool
	touchIDs []ebiten.TouchID
}

type pointerSink interface {
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp(x, y float64) bool
}

func (p *pointer) poll(s pointerSink) {
	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		s.PointerDown(float64(mx), float64(my))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		s.PointerUp(float64(mx), float64(my))
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		s.PointerMove(float64(mx), float64(my))
	}

	if p.touching {
		if inpututil.IsTouchJustReleased(p.touch) {
			x, y := inpututil.TouchPositionInPreviousTick(p.touch)
			s.PointerUp(float64(x), float64(y))
			p.touching = false
		} else {
			x, y := ebiten.TouchPosition(p.touch)
			s.PointerMove(float64(x), float64(y))
		}
		return
	}
	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		p.touch = p.touchIDs[0]
		p.touching = true
		x, y := ebiten.TouchPosition(p.touch)
		s.PointerDown(float64(x), float64(y))
	}
}
