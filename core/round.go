package core

import (
	"fmt"
	"io"

	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/shared/physics"
	"github.com/automoto/castlecrush/systems"
	"github.com/automoto/castlecrush/systems/factory"
	"github.com/automoto/castlecrush/tags"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

//go:generate go tool mockgen -destination=./mocks/outcome_mock.go -package=mocks . OutcomeSink

// OutcomeSink is told how a round ended. Each round produces at most one
// call, and never both.
type OutcomeSink interface {
	Win()
	Lose()
}

// Round orchestrates one castle: input, stepping, damage, and outcome. It is
// single-threaded; every method must be called from the frame goroutine.
type Round struct {
	cfg    config.Config
	sink   OutcomeSink
	logger *log.Logger

	world    donburi.World
	space    *physics.World
	registry *systems.Registry
	cannon   *systems.CannonController
	loop     *SimulationLoop

	round       *donburi.Entry
	cannonEntry *donburi.Entry
	target      *donburi.Entry

	scale            float64
	offsetX, offsetY float64
}

// NewRound validates cfg and builds the first round. A nil logger discards
// output.
func NewRound(cfg config.Config, sink OutcomeSink, logger *log.Logger) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new round: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := &Round{
		cfg:    cfg,
		sink:   sink,
		logger: logger.WithPrefix("round"),
		world:  donburi.NewWorld(),
		scale:  1,
	}

	factory.CreateSpace(r.world, cfg)
	r.space = factory.Space(r.world)
	factory.CreateBoundaries(r.world, cfg)

	r.registry = systems.NewRegistry(r.world)
	r.registry.Observe(r)
	resolver := systems.NewCollisionResolver(r.registry, cfg.Blocks, cfg.Effects.DamageFlashTicks, r.space.Time, r.win)
	r.space.OnCollisionStart(resolver.Resolve)

	r.cannon = systems.NewCannonController(r.world, r.registry, cfg.Cannon, cfg.Projectile)
	r.loop = NewSimulationLoop(r.space,
		func() { systems.UpdateObjects(r.world) },
		func(dt float32) { systems.UpdateEffects(r.world, dt) },
		cfg.Loop,
	)

	r.round = factory.CreateRound(r.world, 1, cfg.Cannon, cfg.Tutorial)
	r.build()
	r.logger.Info("round started", "id", r.ID(), "blocks", r.registry.BlockCount())
	return r, nil
}

func (r *Round) build() {
	r.cannonEntry = factory.CreateCannon(r.world, r.cfg.Cannon)
	for _, b := range factory.CreateCastle(r.world, r.cfg) {
		r.registry.Track(b)
	}
	r.target = factory.CreateTarget(r.world, r.cfg.Castle)
}

// Reset destroys every round entity and rebuilds the castle, cannon and
// target under a new round id. Boundaries are kept.
func (r *Round) Reset() {
	n := r.registry.DestroyRound()

	round := components.Round.Get(r.round)
	round.ID = uuid.New()
	round.Number++
	round.Outcome = components.OutcomePending
	round.Banner = nil
	round.BannerOffset = 0

	r.build()
	r.logger.Info("round reset", "id", round.ID, "number", round.Number, "destroyed", n)
}

// Update advances one frame. ratio is the elapsed time in reference ticks.
func (r *Round) Update(ratio float64) {
	r.loop.Frame(ratio)
	systems.UpdateStates(r.world)
	systems.UpdateAim(r.world, r.cannonEntry, r.cfg)
	r.pollProjectile()
}

func (r *Round) pollProjectile() {
	if components.State.Get(r.cannonEntry).CurrentState != config.Firing {
		return
	}
	cannon := components.Cannon.Get(r.cannonEntry)
	if !systems.ProjectileSettled(r.world, cannon.Projectile, r.cfg.Projectile) {
		return
	}
	frames := components.State.Get(r.cannonEntry).StateTimer
	r.cannon.Settle(r.cannonEntry)
	r.logger.Debug("projectile at rest", "frames", frames, "shots", cannon.ShotsFired, "remaining", cannon.ShotsRemaining())

	if cannon.ShotsRemaining() <= 0 {
		r.lose()
	}
}

// SetViewport sets how screen coordinates map to the world: world =
// (screen - offset) / scale.
func (r *Round) SetViewport(scale, offsetX, offsetY float64) {
	if scale <= 0 {
		scale = 1
	}
	r.scale, r.offsetX, r.offsetY = scale, offsetX, offsetY
}

func (r *Round) toWorld(sx, sy float64) (float64, float64) {
	return (sx - r.offsetX) / r.scale, (sy - r.offsetY) / r.scale
}

// PointerDown starts aiming. It is ignored once the round is decided. The
// first accepted drag dismisses the drag hint for good.
func (r *Round) PointerDown(sx, sy float64) {
	if r.Outcome() != components.OutcomePending {
		return
	}
	x, y := r.toWorld(sx, sy)
	if r.cannon.PointerDown(r.cannonEntry, x, y) && systems.StopTutorial(r.world) {
		r.logger.Debug("drag hint dismissed")
	}
}

func (r *Round) PointerMove(sx, sy float64) {
	x, y := r.toWorld(sx, sy)
	r.cannon.PointerMove(r.cannonEntry, x, y)
}

// PointerUp releases the drag and reports whether a shot was fired.
func (r *Round) PointerUp(sx, sy float64) bool {
	x, y := r.toWorld(sx, sy)
	projectile, fired := r.cannon.PointerUp(r.cannonEntry, x, y)
	if !fired {
		return false
	}
	cannon := components.Cannon.Get(r.cannonEntry)
	var speed float64
	if body, ok := r.space.Body(components.Body.Get(projectile).Handle); ok {
		speed = body.Velocity().Len()
	}
	r.logger.Info("shot fired",
		"shot", cannon.ShotsFired,
		"speed", fmt.Sprintf("%.2f", speed),
		"angle", fmt.Sprintf("%.3f", cannon.Angle),
	)
	return true
}

func (r *Round) win() {
	round := components.Round.Get(r.round)
	if round.Outcome != components.OutcomePending {
		return
	}
	round.Outcome = components.OutcomeWin
	if r.target != nil && r.target.Valid() {
		components.Target.Get(r.target).Hit = true
		r.registry.Destroy(r.target)
	}
	r.startBanner(round)
	r.logger.Info("castle breached", "id", round.ID, "shots", components.Cannon.Get(r.cannonEntry).ShotsFired)
	if r.sink != nil {
		r.sink.Win()
	}
}

func (r *Round) lose() {
	round := components.Round.Get(r.round)
	if round.Outcome != components.OutcomePending {
		return
	}
	round.Outcome = components.OutcomeLose
	r.startBanner(round)
	r.logger.Info("out of ammo", "id", round.ID)
	if r.sink != nil {
		r.sink.Lose()
	}
}

func (r *Round) startBanner(round *components.RoundData) {
	fx := r.cfg.Effects
	round.BannerOffset = -fx.BannerSlideOffset
	round.Banner = gween.New(-fx.BannerSlideOffset, 0, fx.BannerTicks, ease.InOutCubic)
}

// EntityDestroyed logs block destruction.
func (r *Round) EntityDestroyed(e *donburi.Entry) {
	if e.HasComponent(tags.Block) {
		b := components.Block.Get(e)
		r.logger.Debug("block destroyed", "type", b.Type, "damage", b.Damage)
	}
}

// ID is the current round's identity.
func (r *Round) ID() uuid.UUID {
	return components.Round.Get(r.round).ID
}

func (r *Round) Outcome() components.Outcome {
	return components.Round.Get(r.round).Outcome
}

// Time is the physics clock in reference ticks.
func (r *Round) Time() float64 {
	return r.space.Time()
}

// BlockCount is the number of blocks still standing.
func (r *Round) BlockCount() int {
	return r.registry.BlockCount()
}

// ShotsRemaining is the ammo left this round.
func (r *Round) ShotsRemaining() int {
	return components.Cannon.Get(r.cannonEntry).ShotsRemaining()
}
