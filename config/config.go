package config

import (
	"errors"
	"fmt"
	"image/color"
)

// BlockType names a castle block shape.
type BlockType string

const (
	BlockShort BlockType = "short"
	BlockLong  BlockType = "long"
)

// ScreenConfig is the design resolution the world is laid out in.
type ScreenConfig struct {
	Width  int
	Height int
	Title  string
}

// PhysicsConfig contains rigid body solver settings. Units are pixels and
// reference ticks (one tick = 16.667ms).
type PhysicsConfig struct {
	Gravity    float64 // px/tick², positive is down
	Iterations int     // velocity iterations per step
	CellSize   int     // broad-phase cell size in pixels

	RestitutionThreshold float64 // approach speed below which contacts don't bounce
	Slop                 float64
	Correction           float64

	EnableSleeping bool
	SleepThreshold float64
	SleepTicks     int
}

// LoopConfig controls how a frame's elapsed time becomes physics steps.
type LoopConfig struct {
	MaxStepRatio   float64 // upper clamp for a single physics step, in ticks
	SplitThreshold float64 // frames longer than this are stepped as two halves
}

// CannonConfig contains aiming and launching configuration values
type CannonConfig struct {
	BaseX, BaseY          float64 // centre of the cannon base
	BaseWidth, BaseHeight float64
	PivotOffsetX          float64 // barrel pivot relative to the base centre
	PivotOffsetY          float64
	BarrelLength          float64

	// Drag distances measured from the barrel pivot
	MinDragRadius        float64 // below this a drag is ignored
	MaxDragRadius        float64 // pointer-down must land within this
	MaxLaunchPowerRadius float64 // drag distance that yields full power

	MaxLaunchPower float64 // px/tick
	Ammo           int

	// Elevation above the horizon in degrees
	DefaultElevation float64
	MinElevation     float64
	MaxElevation     float64
}

// ProjectileConfig contains the launched ball's body settings
type ProjectileConfig struct {
	Radius      float64
	Density     float64
	Restitution float64
	Friction    float64
	AirFriction float64

	RestSpeedSq      float64 // |v|² under which the ball counts as stopped
	RestAngularSpeed float64
	RestPolls        int // consecutive at-rest polls before a shot settles
}

// BlockTypeConfig describes one block shape.
type BlockTypeConfig struct {
	Width, Height float64
	Density       float64
	Restitution   float64
	Friction      float64
	AirFriction   float64
	Variants      []string // texture key per damage tier; max damage = len-1
}

// MaxDamage is the damage level at which a block of this type breaks.
func (b BlockTypeConfig) MaxDamage() int {
	return len(b.Variants) - 1
}

// BlocksConfig contains block types and the impact grading thresholds
type BlocksConfig struct {
	Types map[BlockType]BlockTypeConfig

	DamageThreshold      float64 // impact speed for 1 damage
	DestructionThreshold float64 // impact speed for 2 damage
	ImmunityTicks        float64 // damage ignored this long after spawning
}

// BlockPlacement positions a block relative to the castle anchor, with y
// measured upward.
type BlockPlacement struct {
	Type          BlockType
	X, Y          float64
	Rotation      float64 // degrees
	InitialDamage int
}

// CastleConfig contains the castle layout and target placement
type CastleConfig struct {
	AnchorX, AnchorY float64
	Layout           []BlockPlacement

	TargetOffsetX, TargetOffsetY float64 // y measured upward, like the layout
	TargetWidth, TargetHeight    float64
}

// TrajectoryConfig controls the aim preview dots
type TrajectoryConfig struct {
	MaxSamples int
	TimeStep   float64 // ticks between samples
	SpeedScale float64 // predicted launch speed = SpeedScale * power
}

// BoundariesConfig describes the static ground and side walls
type BoundariesConfig struct {
	GroundHeight float64
	GroundMargin float64 // ground extends this far past each screen edge
	WallWidth    float64
	WallOffset   float64 // walls sit this far outside the screen
	WallHeight   float64
}

// EffectsConfig contains tween timings, in ticks
type EffectsConfig struct {
	DamageFlashTicks  float32
	BannerTicks       float32
	BannerSlideOffset float32 // banner starts this far above its rest position
}

// TutorialConfig drives the looping drag hint shown until the first drag
type TutorialConfig struct {
	Enabled      bool
	DragX, DragY float64 // hint drag end, relative to the barrel pivot
	LoopTicks    float32
}

// PaletteConfig contains debug drawing colors
type PaletteConfig struct {
	Sky        color.RGBA
	Ground     color.RGBA
	Cannon     color.RGBA
	Barrel     color.RGBA
	Projectile color.RGBA
	Target     color.RGBA
	Block      []color.RGBA // per damage tier
	AimDot     color.RGBA
	Hint       color.RGBA
	Text       color.RGBA
}

// Config holds every tunable value for a game session.
type Config struct {
	Screen     ScreenConfig
	Physics    PhysicsConfig
	Loop       LoopConfig
	Cannon     CannonConfig
	Projectile ProjectileConfig
	Blocks     BlocksConfig
	Castle     CastleConfig
	Trajectory TrajectoryConfig
	Boundaries BoundariesConfig
	Effects    EffectsConfig
	Tutorial   TutorialConfig
	Palette    PaletteConfig
}

// Default returns the tuned configuration.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			Title:  "Castle Crush",
		},
		Physics: PhysicsConfig{
			Gravity:              0.3,
			Iterations:           10,
			CellSize:             32,
			RestitutionThreshold: 1,
			Slop:                 0.05,
			Correction:           0.4,
			EnableSleeping:       true,
			SleepThreshold:       0.08,
			SleepTicks:           60,
		},
		Loop: LoopConfig{
			MaxStepRatio:   1.0,
			SplitThreshold: 0.5,
		},
		Cannon: CannonConfig{
			BaseX:                100,
			BaseY:                550,
			BaseWidth:            80,
			BaseHeight:           40,
			PivotOffsetX:         0,
			PivotOffsetY:         -20,
			BarrelLength:         60,
			MinDragRadius:        20,
			MaxDragRadius:        200,
			MaxLaunchPowerRadius: 150,
			MaxLaunchPower:       16,
			Ammo:                 3,
			DefaultElevation:     30,
			MinElevation:         5,
			MaxElevation:         80,
		},
		Projectile: ProjectileConfig{
			Radius:           10,
			Density:          0.002,
			Restitution:      0.5,
			Friction:         0.1,
			AirFriction:      0.01,
			RestSpeedSq:      0.01,
			RestAngularSpeed: 0.01,
			RestPolls:        2,
		},
		Blocks: BlocksConfig{
			Types: map[BlockType]BlockTypeConfig{
				BlockShort: {
					Width: 60, Height: 30,
					Density: 0.001, Restitution: 0.1, Friction: 0.8, AirFriction: 0.01,
					Variants: []string{"block_short_damage0", "block_short_damage1"},
				},
				BlockLong: {
					Width: 120, Height: 30,
					Density: 0.001, Restitution: 0.1, Friction: 0.8, AirFriction: 0.01,
					Variants: []string{"block_long_damage0", "block_long_damage1", "block_long_damage2"},
				},
			},
			DamageThreshold:      3,
			DestructionThreshold: 7,
			ImmunityTicks:        60,
		},
		Castle: CastleConfig{
			AnchorX: 550,
			AnchorY: 570,
			Layout: []BlockPlacement{
				{Type: BlockShort, X: -60, Y: 15},
				{Type: BlockShort, X: 0, Y: 15},
				{Type: BlockShort, X: 60, Y: 15},
				{Type: BlockLong, X: 0, Y: 45},
				{Type: BlockShort, X: -45, Y: 90, Rotation: 90},
				{Type: BlockShort, X: 45, Y: 90, Rotation: 90},
				{Type: BlockLong, X: 0, Y: 135},
				{Type: BlockShort, X: 0, Y: 165},
			},
			TargetOffsetX: 0,
			TargetOffsetY: 90,
			TargetWidth:   30,
			TargetHeight:  30,
		},
		Trajectory: TrajectoryConfig{
			MaxSamples: 15,
			TimeStep:   2,
			SpeedScale: 1,
		},
		Boundaries: BoundariesConfig{
			GroundHeight: 30,
			GroundMargin: 500,
			WallWidth:    50,
			WallOffset:   300,
			WallHeight:   2000,
		},
		Effects: EffectsConfig{
			DamageFlashTicks:  12,
			BannerTicks:       30,
			BannerSlideOffset: 100,
		},
		Tutorial: TutorialConfig{
			Enabled:   true,
			DragX:     -100,
			DragY:     50,
			LoopTicks: 90,
		},
		Palette: PaletteConfig{
			Sky:        color.RGBA{R: 135, G: 206, B: 235, A: 255},
			Ground:     color.RGBA{R: 34, G: 139, B: 34, A: 255},
			Cannon:     color.RGBA{R: 60, G: 60, B: 70, A: 255},
			Barrel:     color.RGBA{R: 30, G: 30, B: 35, A: 255},
			Projectile: color.RGBA{R: 20, G: 20, B: 20, A: 255},
			Target:     color.RGBA{R: 220, G: 40, B: 40, A: 255},
			Block: []color.RGBA{
				{R: 160, G: 120, B: 80, A: 255},
				{R: 130, G: 95, B: 60, A: 255},
				{R: 100, G: 70, B: 45, A: 255},
			},
			AimDot: color.RGBA{R: 255, G: 255, B: 255, A: 255},
			Hint:   color.RGBA{R: 255, G: 230, B: 120, A: 220},
			Text:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		},
	}
}

// GroundTop is the y coordinate of the ground surface.
func (c Config) GroundTop() float64 {
	return float64(c.Screen.Height) - c.Boundaries.GroundHeight
}

// WorldBounds is the region bodies may occupy; anything leaving it is out
// of play.
func (c Config) WorldBounds() (minX, minY, maxX, maxY float64) {
	reach := c.Boundaries.WallOffset + c.Boundaries.WallWidth + 100
	return -reach, -c.Boundaries.WallHeight, float64(c.Screen.Width) + reach, float64(c.Screen.Height) + 200
}

// Validate reports every inconsistency in c.
func (c Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		add("screen: size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	}
	if c.Loop.MaxStepRatio <= 0 {
		add("loop: max step ratio %v must be positive", c.Loop.MaxStepRatio)
	}
	if c.Loop.SplitThreshold <= 0 {
		add("loop: split threshold %v must be positive", c.Loop.SplitThreshold)
	}

	cn := c.Cannon
	if cn.MinDragRadius < 0 {
		add("cannon: min drag radius %v is negative", cn.MinDragRadius)
	}
	if cn.MaxDragRadius <= cn.MinDragRadius {
		add("cannon: max drag radius %v must exceed min drag radius %v", cn.MaxDragRadius, cn.MinDragRadius)
	}
	if cn.MaxLaunchPowerRadius <= cn.MinDragRadius {
		add("cannon: max launch power radius %v must exceed min drag radius %v", cn.MaxLaunchPowerRadius, cn.MinDragRadius)
	}
	if cn.MaxLaunchPower <= 0 {
		add("cannon: max launch power %v must be positive", cn.MaxLaunchPower)
	}
	if cn.Ammo <= 0 {
		add("cannon: ammo %d must be positive", cn.Ammo)
	}
	if cn.MinElevation >= cn.MaxElevation {
		add("cannon: elevation limits [%v, %v] are empty", cn.MinElevation, cn.MaxElevation)
	}

	if c.Projectile.Radius <= 0 {
		add("projectile: radius %v must be positive", c.Projectile.Radius)
	}
	if c.Projectile.RestPolls < 1 {
		add("projectile: rest polls %d must be at least 1", c.Projectile.RestPolls)
	}
	if c.Tutorial.Enabled && c.Tutorial.LoopTicks <= 0 {
		add("tutorial: loop of %v ticks must be positive", c.Tutorial.LoopTicks)
	}

	b := c.Blocks
	if b.DamageThreshold <= 0 || b.DestructionThreshold < b.DamageThreshold {
		add("blocks: thresholds damage=%v destruction=%v are inconsistent", b.DamageThreshold, b.DestructionThreshold)
	}
	for name, t := range b.Types {
		if len(t.Variants) == 0 {
			add("blocks: type %q has no variants", name)
		}
		if t.Width <= 0 || t.Height <= 0 {
			add("blocks: type %q size %vx%v must be positive", name, t.Width, t.Height)
		}
	}

	for i, p := range c.Castle.Layout {
		t, ok := b.Types[p.Type]
		if !ok {
			add("castle: block %d has unknown type %q", i, p.Type)
			continue
		}
		if len(t.Variants) == 0 {
			continue
		}
		if p.InitialDamage < 0 || (t.MaxDamage() > 0 && p.InitialDamage >= t.MaxDamage()) {
			add("castle: block %d initial damage %d outside [0, %d)", i, p.InitialDamage, t.MaxDamage())
		}
	}
	if c.Castle.TargetWidth <= 0 || c.Castle.TargetHeight <= 0 {
		add("castle: target size %vx%v must be positive", c.Castle.TargetWidth, c.Castle.TargetHeight)
	}

	if c.Trajectory.MaxSamples <= 0 || c.Trajectory.TimeStep <= 0 {
		add("trajectory: %d samples every %v ticks is invalid", c.Trajectory.MaxSamples, c.Trajectory.TimeStep)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid config: %w", errors.Join(errs...))
}
