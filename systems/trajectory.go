package systems

import (
	"github.com/automoto/castlecrush/components"
	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/shared/gamemath"
	"github.com/automoto/castlecrush/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateAim refreshes the predicted trajectory of a cannon being dragged.
// Any other state clears it.
func UpdateAim(w donburi.World, e *donburi.Entry, cfg config.Config) {
	aim := components.Aim.Get(e)
	cannon := components.Cannon.Get(e)
	if !cannon.Aimed || components.State.Get(e).CurrentState != config.Dragging {
		aim.Samples = nil
		return
	}

	x, y := gamemath.BarrelTip(cannon.PivotX, cannon.PivotY, cannon.Angle, cfg.Cannon.BarrelLength)
	aim.Samples = gamemath.PredictTrajectory(gamemath.TrajectoryParams{
		OriginX:    x,
		OriginY:    y,
		Angle:      cannon.Angle,
		Power:      cannon.Power,
		SpeedScale: cfg.Trajectory.SpeedScale,
		Gravity:    factory.Space(w).Gravity().Y,
		TimeStep:   cfg.Trajectory.TimeStep,
		MaxSamples: cfg.Trajectory.MaxSamples,
		FloorY:     float64(cfg.Screen.Height),
	})
}
