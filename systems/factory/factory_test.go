package factory

import (
	"math"
	"testing"

	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/tags"
	"github.com/yohamta/donburi"
)

func newWorld(t *testing.T) (donburi.World, config.Config) {
	t.Helper()
	cfg := config.Default()
	w := donburi.NewWorld()
	CreateSpace(w, cfg)
	return w, cfg
}

func TestCreateCastleFollowsLayout(t *testing.T) {
	w, cfg := newWorld(t)
	blocks := CreateCastle(w, cfg)

	if len(blocks) != len(cfg.Castle.Layout) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(cfg.Castle.Layout))
	}
	space := Space(w)
	for i, e := range blocks {
		p := cfg.Castle.Layout[i]
		h := components.Body.Get(e).Handle
		body, ok := space.Body(h)
		if !ok {
			t.Fatalf("block %d has no body", i)
		}
		wantX, wantY := cfg.Castle.AnchorX+p.X, cfg.Castle.AnchorY-p.Y
		if pos := body.Position(); pos.X != wantX || pos.Y != wantY {
			t.Errorf("block %d at (%v, %v), want (%v, %v)", i, pos.X, pos.Y, wantX, wantY)
		}
		if body.Label() != tags.LabelBlock {
			t.Errorf("block %d label %q", i, body.Label())
		}
		if math.Abs(body.Angle()-p.Rotation*math.Pi/180) > 1e-9 {
			t.Errorf("block %d angle %v", i, body.Angle())
		}

		data := components.Block.Get(e)
		if data.Damage != p.InitialDamage || data.MaxDamage != cfg.Blocks.Types[p.Type].MaxDamage() {
			t.Errorf("block %d damage %d/%d", i, data.Damage, data.MaxDamage)
		}
		if got := components.Sprite.Get(e).Key; got != data.Variant() {
			t.Errorf("block %d sprite %q, want %q", i, got, data.Variant())
		}
	}
}

func TestCreateTargetIsStaticSensor(t *testing.T) {
	w, cfg := newWorld(t)
	target := CreateTarget(w, cfg.Castle)

	body, ok := Space(w).Body(components.Body.Get(target).Handle)
	if !ok {
		t.Fatal("target has no body")
	}
	if !body.IsStatic() || !body.IsSensor() {
		t.Fatal("target must be a static sensor")
	}
	wantY := cfg.Castle.AnchorY - cfg.Castle.TargetOffsetY
	if body.Position().Y != wantY {
		t.Fatalf("target y = %v, want %v", body.Position().Y, wantY)
	}
}

func TestCreateCannonStartsIdleAndLoaded(t *testing.T) {
	w, cfg := newWorld(t)
	cannon := CreateCannon(w, cfg.Cannon)

	data := components.Cannon.Get(cannon)
	if data.ShotsRemaining() != cfg.Cannon.Ammo {
		t.Fatalf("shots remaining %d", data.ShotsRemaining())
	}
	if math.Abs(data.Angle-(-cfg.Cannon.DefaultElevation*math.Pi/180)) > 1e-9 {
		t.Fatalf("angle %v", data.Angle)
	}
	if st := components.State.Get(cannon).CurrentState; st != config.Idle {
		t.Fatalf("state %v, want idle", st)
	}
}

func TestCreateProjectileLaunches(t *testing.T) {
	w, cfg := newWorld(t)
	p := CreateProjectile(w, cfg.Projectile, 100, 200, 3, -4)

	body, _ := Space(w).Body(components.Body.Get(p).Handle)
	if v := body.Velocity(); v.X != 3 || v.Y != -4 {
		t.Fatalf("velocity %+v", v)
	}
	tf := components.Transform.Get(p)
	if tf.Width != 2*cfg.Projectile.Radius {
		t.Fatalf("transform width %v", tf.Width)
	}
}

func TestCreateBoundaries(t *testing.T) {
	w, cfg := newWorld(t)
	walls := CreateBoundaries(w, cfg)
	if len(walls) != 3 {
		t.Fatalf("got %d boundaries", len(walls))
	}
	ground, _ := Space(w).Body(components.Body.Get(walls[0]).Handle)
	top := ground.Bounds().Min.Y
	if top != cfg.GroundTop() {
		t.Fatalf("ground top %v, want %v", top, cfg.GroundTop())
	}
}

func TestCreateRoundStartsHint(t *testing.T) {
	w, cfg := newWorld(t)
	round := CreateRound(w, 1, cfg.Cannon, cfg.Tutorial)

	hint := components.Tutorial.Get(round)
	if !hint.Active() {
		t.Fatal("hint not running")
	}
	x, y := hint.Position()
	if x != hint.FromX || y != hint.FromY {
		t.Fatalf("hint starts at (%v, %v), want the pivot", x, y)
	}
	if hint.ToX != hint.FromX+cfg.Tutorial.DragX || hint.ToY != hint.FromY+cfg.Tutorial.DragY {
		t.Fatalf("hint ends at (%v, %v)", hint.ToX, hint.ToY)
	}

	cfg.Tutorial.Enabled = false
	if off := CreateRound(donburi.NewWorld(), 1, cfg.Cannon, cfg.Tutorial); components.Tutorial.Get(off).Active() {
		t.Fatal("disabled hint is running")
	}
}
