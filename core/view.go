package core

import (
	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/shared/gamemath"
	"github.com/automoto/castlecrush/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// EntityKind tells the presentation layer what an entity is.
type EntityKind int

const (
	KindBoundary EntityKind = iota
	KindBlock
	KindProjectile
	KindTarget
	KindCannon
)

// EntityView is a read-only description of one entity for drawing.
type EntityView struct {
	Kind          EntityKind
	X, Y          float64
	Rotation      float64
	Width, Height float64
	Hidden        bool
	Sprite        string
	DamageTier    int
	Flash         float32
}

// AimView describes the cannon and its aim aids.
type AimView struct {
	PivotX, PivotY float64
	Angle          float64
	BarrelLength   float64
	Power          float64
	MaxPower       float64
	Aiming         bool
	State          config.StateID
	Samples        []gamemath.TrajectorySample

	ShotsRemaining int
	ShotsAllowed   int
}

// HintView is the looping drag hint shown until the first drag.
type HintView struct {
	Visible      bool
	X, Y         float64 // hand position
	FromX, FromY float64
}

// Snapshot is everything needed to draw one frame.
type Snapshot struct {
	RoundID      uuid.UUID
	Number       int
	Outcome      components.Outcome
	BannerOffset float32
	Entities     []EntityView
	Aim          AimView
	Hint         HintView
}

var visible = donburi.NewQuery(filter.Contains(components.Transform))

// Snapshot captures the current round state. The returned slices are owned
// by the caller.
func (r *Round) Snapshot() Snapshot {
	round := components.Round.Get(r.round)
	snap := Snapshot{
		RoundID:      round.ID,
		Number:       round.Number,
		Outcome:      round.Outcome,
		BannerOffset: round.BannerOffset,
		Aim:          r.aimView(),
		Hint:         r.hintView(),
	}

	visible.Each(r.world, func(e *donburi.Entry) {
		snap.Entities = append(snap.Entities, entityView(e))
	})
	return snap
}

func entityView(e *donburi.Entry) EntityView {
	tf := components.Transform.Get(e)
	v := EntityView{
		Kind:     kindOf(e),
		X:        tf.Position.X,
		Y:        tf.Position.Y,
		Rotation: tf.Rotation,
		Width:    tf.Width,
		Height:   tf.Height,
	}
	if e.HasComponent(components.Sprite) {
		s := components.Sprite.Get(e)
		v.Sprite, v.Hidden = s.Key, s.Hidden
	}
	if e.HasComponent(components.Block) {
		v.DamageTier = components.Block.Get(e).Damage
	}
	if e.HasComponent(components.Flash) {
		v.Flash = components.Flash.Get(e).Intensity
	}
	return v
}

func kindOf(e *donburi.Entry) EntityKind {
	switch {
	case e.HasComponent(tags.Block):
		return KindBlock
	case e.HasComponent(tags.Projectile):
		return KindProjectile
	case e.HasComponent(tags.Target):
		return KindTarget
	case e.HasComponent(tags.Cannon):
		return KindCannon
	default:
		return KindBoundary
	}
}

func (r *Round) aimView() AimView {
	cannon := components.Cannon.Get(r.cannonEntry)
	return AimView{
		PivotX:         cannon.PivotX,
		PivotY:         cannon.PivotY,
		Angle:          cannon.Angle,
		BarrelLength:   r.cfg.Cannon.BarrelLength,
		Power:          cannon.Power,
		MaxPower:       r.cfg.Cannon.MaxLaunchPower,
		Aiming:         cannon.Aimed,
		State:          components.State.Get(r.cannonEntry).CurrentState,
		Samples:        append([]gamemath.TrajectorySample(nil), components.Aim.Get(r.cannonEntry).Samples...),
		ShotsRemaining: cannon.ShotsRemaining(),
		ShotsAllowed:   cannon.ShotsAllowed,
	}
}

func (r *Round) hintView() HintView {
	hint := components.Tutorial.Get(r.round)
	if !hint.Active() || r.Outcome() != components.OutcomePending {
		return HintView{}
	}
	x, y := hint.Position()
	return HintView{Visible: true, X: x, Y: y, FromX: hint.FromX, FromY: hint.FromY}
}
