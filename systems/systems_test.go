package systems

import (
	"math"
	"testing"

	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/shared/physics"
	"github.com/automoto/castlecrush/systems/factory"
	"github.com/automoto/castlecrush/tags"
	"github.com/yohamta/donburi"
)

type fixture struct {
	w        donburi.World
	cfg      config.Config
	registry *Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.Default()
	w := donburi.NewWorld()
	factory.CreateSpace(w, cfg)
	return &fixture{w: w, cfg: cfg, registry: NewRegistry(w)}
}

func (f *fixture) block(typ config.BlockType) *donburi.Entry {
	e := factory.CreateBlock(f.w, f.cfg.Blocks, config.BlockPlacement{Type: typ}, 400, 300)
	f.registry.Track(e)
	return e
}

func handleOf(e *donburi.Entry) physics.Handle {
	return components.Body.Get(e).Handle
}

type recordingObserver struct {
	seen []donburi.Entity
}

func (o *recordingObserver) EntityDestroyed(e *donburi.Entry) {
	o.seen = append(o.seen, e.Entity())
}

func TestRegistryDestroysOnce(t *testing.T) {
	f := newFixture(t)
	obs := &recordingObserver{}
	f.registry.Observe(obs)

	b := f.block(config.BlockShort)
	h := handleOf(b)
	if _, ok := f.registry.Block(h); !ok {
		t.Fatal("tracked block not resolvable")
	}

	if !f.registry.Destroy(b) {
		t.Fatal("first destroy reported false")
	}
	if f.registry.Destroy(b) {
		t.Fatal("second destroy reported true")
	}
	if len(obs.seen) != 1 {
		t.Fatalf("observer saw %d destroys, want 1", len(obs.seen))
	}
	if _, ok := f.registry.Block(h); ok {
		t.Fatal("destroyed block still resolvable")
	}
	if _, ok := factory.Space(f.w).Body(h); ok {
		t.Fatal("body outlived its entity")
	}
	if f.registry.BlockCount() != 0 {
		t.Fatalf("block count %d", f.registry.BlockCount())
	}
}

func TestDestroyRoundKeepsBoundaries(t *testing.T) {
	f := newFixture(t)
	walls := factory.CreateBoundaries(f.w, f.cfg)
	for _, b := range factory.CreateCastle(f.w, f.cfg) {
		f.registry.Track(b)
	}
	factory.CreateTarget(f.w, f.cfg.Castle)
	factory.CreateCannon(f.w, f.cfg.Cannon)

	n := f.registry.DestroyRound()
	want := len(f.cfg.Castle.Layout) + 2
	if n != want {
		t.Fatalf("destroyed %d entities, want %d", n, want)
	}
	if got := factory.Space(f.w).Len(); got != len(walls) {
		t.Fatalf("%d bodies left, want %d boundaries", got, len(walls))
	}
	for _, wall := range walls {
		if !wall.Valid() {
			t.Fatal("boundary destroyed")
		}
	}
}

func TestDealDamage(t *testing.T) {
	f := newFixture(t)
	flash := f.cfg.Effects.DamageFlashTicks

	t.Run("immune right after spawn", func(t *testing.T) {
		b := f.block(config.BlockLong)
		created := components.Block.Get(b).CreatedAt
		if got := DealDamage(f.registry, b, 1, created+10, flash); got != DamageIgnored {
			t.Fatalf("got %v, want ignored", got)
		}
		if components.Block.Get(b).Damage != 0 {
			t.Fatal("damage applied during immunity")
		}

		// Even a crushing impact cannot break a freshly spawned block.
		for _, amount := range []int{2, 1000} {
			if got := DealDamage(f.registry, b, amount, created+1, flash); got != DamageIgnored {
				t.Fatalf("amount %d: got %v, want ignored", amount, got)
			}
		}
		if !b.Valid() || components.Block.Get(b).Damage != 0 {
			t.Fatal("block broke during immunity")
		}
	})

	t.Run("long block takes one hit then breaks", func(t *testing.T) {
		b := f.block(config.BlockLong)
		now := components.Block.Get(b).CreatedAt + 100

		if got := DealDamage(f.registry, b, 1, now, flash); got != DamageApplied {
			t.Fatalf("got %v, want applied", got)
		}
		if key := components.Sprite.Get(b).Key; key != "block_long_damage1" {
			t.Fatalf("sprite %q", key)
		}
		if components.Flash.Get(b).Tween == nil {
			t.Fatal("no flash after damage")
		}
		if got := DealDamage(f.registry, b, 1, now, flash); got != DamageDestroyed {
			t.Fatalf("got %v, want destroyed", got)
		}
		if b.Valid() {
			t.Fatal("block survived max damage")
		}
	})

	t.Run("short block breaks on first hit", func(t *testing.T) {
		b := f.block(config.BlockShort)
		now := components.Block.Get(b).CreatedAt + 100
		if got := DealDamage(f.registry, b, 1, now, flash); got != DamageDestroyed {
			t.Fatalf("got %v, want destroyed", got)
		}
	})

	t.Run("zero damage", func(t *testing.T) {
		b := f.block(config.BlockShort)
		if got := DealDamage(f.registry, b, 0, 1e6, flash); got != DamageIgnored {
			t.Fatalf("got %v, want ignored", got)
		}
	})
}

func TestCollisionResolver(t *testing.T) {
	f := newFixture(t)
	wins := 0
	r := NewCollisionResolver(f.registry, f.cfg.Blocks, 12, func() float64 { return 1e6 }, func() { wins++ })

	long := f.block(config.BlockLong)
	short := f.block(config.BlockShort)
	hit := func(h physics.Handle, label string, speed float64) physics.CollisionPair {
		return physics.CollisionPair{
			A: h, B: 999, LabelA: label, LabelB: tags.LabelGround,
			Normal:           physics.Vec{X: 0, Y: 1},
			RelativeVelocity: physics.Vec{X: 2, Y: -speed},
		}
	}

	r.Resolve([]physics.CollisionPair{
		hit(handleOf(long), tags.LabelBlock, 2),
		hit(handleOf(short), tags.LabelBlock, 2.9),
	})
	if components.Block.Get(long).Damage != 0 || !short.Valid() {
		t.Fatal("slow impacts dealt damage")
	}

	r.Resolve([]physics.CollisionPair{hit(handleOf(long), tags.LabelBlock, 5)})
	if d := components.Block.Get(long).Damage; d != 1 {
		t.Fatalf("long damage %d, want 1", d)
	}

	r.Resolve([]physics.CollisionPair{
		{A: 500, B: 501, LabelA: tags.LabelTarget, LabelB: tags.LabelProjectile, RelativeVelocity: physics.Vec{Y: 50}, Normal: physics.Vec{Y: 1}},
		hit(handleOf(short), tags.LabelBlock, 7),
	})
	if wins != 1 {
		t.Fatalf("wins %d, want 1", wins)
	}
	if short.Valid() {
		t.Fatal("fast impact in the same batch was skipped")
	}

	r.Resolve([]physics.CollisionPair{hit(12345, tags.LabelProjectile, 20)})
	if !long.Valid() {
		t.Fatal("unrelated pair affected a block")
	}
}

func TestCannonFiresOnRelease(t *testing.T) {
	f := newFixture(t)
	cannon := factory.CreateCannon(f.w, f.cfg.Cannon)
	ctl := NewCannonController(f.w, f.registry, f.cfg.Cannon, f.cfg.Projectile)
	data := components.Cannon.Get(cannon)
	px, py := data.PivotX, data.PivotY

	if !ctl.PointerDown(cannon, px, py) {
		t.Fatal("pointer down at pivot rejected")
	}
	ctl.PointerMove(cannon, px-100, py+50)
	if !data.Aimed || data.Power <= 0 {
		t.Fatalf("not aimed after drag: %+v", data)
	}
	wantAngle := math.Atan2(-50, 100)
	if math.Abs(data.Angle-wantAngle) > 1e-9 {
		t.Fatalf("angle %v, want %v", data.Angle, wantAngle)
	}
	power, angle := data.Power, data.Angle

	projectile, fired := ctl.PointerUp(cannon, px-100, py+50)
	if !fired || projectile == nil {
		t.Fatal("release did not fire")
	}
	if data.ShotsFired != 1 || data.Power != 0 || data.Aimed {
		t.Fatalf("cannon after firing: %+v", data)
	}
	if data.Angle != angle {
		t.Fatal("firing changed the barrel angle")
	}
	if st := components.State.Get(cannon).CurrentState; st != config.Firing {
		t.Fatalf("state %v, want firing", st)
	}

	body, _ := factory.Space(f.w).Body(handleOf(projectile))
	if math.Abs(body.Velocity().Len()-power) > 1e-9 {
		t.Fatalf("launch speed %v, want %v", body.Velocity().Len(), power)
	}

	if ctl.PointerDown(cannon, px, py) {
		t.Fatal("pointer down accepted while firing")
	}
	ctl.Settle(cannon)
	if st := components.State.Get(cannon).CurrentState; st != config.Idle {
		t.Fatalf("state %v after settle", st)
	}
	if data.Angle != data.DefaultAngle {
		t.Fatal("settle kept the aim")
	}
}

func TestCannonDragEdges(t *testing.T) {
	f := newFixture(t)
	cannon := factory.CreateCannon(f.w, f.cfg.Cannon)
	ctl := NewCannonController(f.w, f.registry, f.cfg.Cannon, f.cfg.Projectile)
	data := components.Cannon.Get(cannon)
	state := components.State.Get(cannon)
	px, py := data.PivotX, data.PivotY

	if ctl.PointerDown(cannon, px+300, py) {
		t.Fatal("pointer down out of reach accepted")
	}

	ctl.PointerDown(cannon, px, py)
	ctl.PointerMove(cannon, px-100, py+50)
	power, angle := data.Power, data.Angle

	ctl.PointerMove(cannon, px-300, py+170)
	if data.Power != power || data.Angle != angle {
		t.Fatal("moving past max radius changed the aim")
	}

	ctl.PointerMove(cannon, px-5, py)
	if data.Aimed || data.Power != 0 || data.Angle != data.DefaultAngle {
		t.Fatalf("soft reset not applied: %+v", data)
	}
	if state.CurrentState != config.Dragging {
		t.Fatal("soft reset ended the drag")
	}

	if _, fired := ctl.PointerUp(cannon, px-5, py); fired {
		t.Fatal("release inside min radius fired")
	}
	if state.CurrentState != config.Idle || data.ShotsFired != 0 {
		t.Fatalf("cancel left state %v shots %d", state.CurrentState, data.ShotsFired)
	}

	data.ShotsFired = data.ShotsAllowed
	if ctl.PointerDown(cannon, px, py) {
		t.Fatal("pointer down accepted with no ammo")
	}
}

func TestProjectileAtRest(t *testing.T) {
	f := newFixture(t)
	pc := f.cfg.Projectile

	still := factory.CreateProjectile(f.w, pc, 300, 300, 0, 0)
	if !ProjectileAtRest(f.w, still, pc) {
		t.Fatal("motionless ball not at rest")
	}

	moving := factory.CreateProjectile(f.w, pc, 300, 300, 5, 0)
	if ProjectileAtRest(f.w, moving, pc) {
		t.Fatal("moving ball at rest")
	}

	gone := factory.CreateProjectile(f.w, pc, 3000, 300, 5, 0)
	if !ProjectileAtRest(f.w, gone, pc) {
		t.Fatal("ball outside the world not at rest")
	}
	if !components.Projectile.Get(gone).Spent {
		t.Fatal("ball outside the world not marked spent")
	}
	if !components.Sprite.Get(gone).Hidden {
		t.Fatal("ball outside the world still drawn")
	}

	if !ProjectileAtRest(f.w, nil, pc) {
		t.Fatal("missing ball not at rest")
	}
}

func TestProjectileSettledNeedsConsecutivePolls(t *testing.T) {
	f := newFixture(t)
	pc := f.cfg.Projectile
	pc.RestPolls = 2
	space := factory.Space(f.w)

	// A ball at the apex of its arc is momentarily still.
	ball := factory.CreateProjectile(f.w, pc, 300, 300, 0, 0)
	if ProjectileSettled(f.w, ball, pc) {
		t.Fatal("settled after a single still poll")
	}

	body, _ := space.Body(handleOf(ball))
	body.SetVelocity(physics.Vec{Y: 3})
	if ProjectileSettled(f.w, ball, pc) {
		t.Fatal("moving ball settled")
	}
	if got := components.Projectile.Get(ball).RestPolls; got != 0 {
		t.Fatalf("rest count %d after moving, want 0", got)
	}

	body.SetVelocity(physics.Vec{})
	if ProjectileSettled(f.w, ball, pc) {
		t.Fatal("count not restarted after moving")
	}
	if !ProjectileSettled(f.w, ball, pc) {
		t.Fatal("not settled after two still polls")
	}

	gone := factory.CreateProjectile(f.w, pc, 3000, 300, 5, 0)
	if !ProjectileSettled(f.w, gone, pc) {
		t.Fatal("ball outside the world must settle at once")
	}
	if !ProjectileSettled(f.w, nil, pc) {
		t.Fatal("missing ball must settle at once")
	}
}

func TestUpdateObjectsSyncsTransforms(t *testing.T) {
	f := newFixture(t)
	p := factory.CreateProjectile(f.w, f.cfg.Projectile, 300, 300, 4, 0)
	space := factory.Space(f.w)
	space.Step(1)
	UpdateObjects(f.w)

	body, _ := space.Body(handleOf(p))
	tf := components.Transform.Get(p)
	if tf.Position.X != body.Position().X || tf.Position.Y != body.Position().Y {
		t.Fatalf("transform %+v, body %+v", tf.Position, body.Position())
	}
	if tf.Position.X <= 300 {
		t.Fatal("ball did not move")
	}
}

func TestUpdateAim(t *testing.T) {
	f := newFixture(t)
	cannon := factory.CreateCannon(f.w, f.cfg.Cannon)
	ctl := NewCannonController(f.w, f.registry, f.cfg.Cannon, f.cfg.Projectile)
	data := components.Cannon.Get(cannon)

	UpdateAim(f.w, cannon, f.cfg)
	if len(components.Aim.Get(cannon).Samples) != 0 {
		t.Fatal("idle cannon shows a trajectory")
	}

	ctl.PointerDown(cannon, data.PivotX, data.PivotY)
	ctl.PointerMove(cannon, data.PivotX-100, data.PivotY+50)
	UpdateAim(f.w, cannon, f.cfg)
	samples := components.Aim.Get(cannon).Samples
	if len(samples) == 0 {
		t.Fatal("dragging cannon shows no trajectory")
	}
	if samples[0].X <= data.PivotX {
		t.Fatal("trajectory starts behind the barrel")
	}

	ctl.PointerUp(cannon, data.PivotX-100, data.PivotY+50)
	UpdateAim(f.w, cannon, f.cfg)
	if len(components.Aim.Get(cannon).Samples) != 0 {
		t.Fatal("trajectory kept after firing")
	}
}

func TestUpdateEffectsRunsFlashToZero(t *testing.T) {
	f := newFixture(t)
	b := f.block(config.BlockLong)
	now := components.Block.Get(b).CreatedAt + 100
	DealDamage(f.registry, b, 1, now, 12)

	UpdateEffects(f.w, 6)
	flash := components.Flash.Get(b)
	if flash.Intensity <= 0 || flash.Intensity >= 1 {
		t.Fatalf("mid-flash intensity %v", flash.Intensity)
	}
	UpdateEffects(f.w, 6)
	if flash.Tween != nil || flash.Intensity != 0 {
		t.Fatalf("flash not finished: %+v", flash)
	}
}

func TestTutorialLoopsUntilStopped(t *testing.T) {
	f := newFixture(t)
	f.cfg.Tutorial.LoopTicks = 10
	round := factory.CreateRound(f.w, 1, f.cfg.Cannon, f.cfg.Tutorial)
	hint := components.Tutorial.Get(round)

	UpdateEffects(f.w, 5)
	if hint.Progress <= 0 || hint.Progress >= 1 {
		t.Fatalf("mid-loop progress %v", hint.Progress)
	}
	UpdateEffects(f.w, 5)
	if hint.Progress != 0 || !hint.Active() {
		t.Fatalf("hint did not restart: progress %v active %v", hint.Progress, hint.Active())
	}
	UpdateEffects(f.w, 5)
	if hint.Progress <= 0 {
		t.Fatal("hint stalled after looping")
	}

	if !StopTutorial(f.w) {
		t.Fatal("running hint not stopped")
	}
	if StopTutorial(f.w) {
		t.Fatal("stopped hint stopped twice")
	}
	UpdateEffects(f.w, 5)
	if hint.Active() || hint.Progress != 0 {
		t.Fatalf("stopped hint moved: %+v", hint)
	}
}

func TestUpdateStatesCountsFrames(t *testing.T) {
	f := newFixture(t)
	cannon := factory.CreateCannon(f.w, f.cfg.Cannon)
	state := components.State.Get(cannon)

	UpdateStates(f.w)
	UpdateStates(f.w)
	if state.StateTimer != 2 {
		t.Fatalf("timer %d, want 2", state.StateTimer)
	}
	state.Set(config.Dragging)
	if state.StateTimer != 0 || state.PreviousState != config.Idle {
		t.Fatalf("state change kept timer %d prev %v", state.StateTimer, state.PreviousState)
	}
}
