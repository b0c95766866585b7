package core

import (
	"math"

	"github.com/automoto/castlecrush/config"
)

// Stepper advances physics by dt reference ticks.
type Stepper interface {
	Step(dt float64)
}

// SimulationLoop turns a frame's elapsed-time ratio into clamped physics
// steps. A ratio of 1 is one 16.667ms reference tick.
type SimulationLoop struct {
	stepper Stepper
	update  func()
	animate func(dt float32)
	cfg     config.LoopConfig
}

// NewSimulationLoop wires a stepper with the per-step entity pass and the
// per-frame tween pass. Either func may be nil.
func NewSimulationLoop(s Stepper, update func(), animate func(dt float32), cfg config.LoopConfig) *SimulationLoop {
	return &SimulationLoop{
		stepper: s,
		update:  update,
		animate: animate,
		cfg:     cfg,
	}
}

// Frame runs one frame and returns the physics time it advanced, which never
// exceeds ratio. Frames longer than the split threshold run as two halves,
// each followed by an entity pass.
func (l *SimulationLoop) Frame(ratio float64) float64 {
	steps := 1
	if ratio > l.cfg.SplitThreshold {
		steps = 2
	}
	each := ratio / float64(steps)

	var total float64
	for i := 0; i < steps; i++ {
		dt := clampStep(each, l.cfg.MaxStepRatio)
		if dt > 0 {
			l.stepper.Step(dt)
		}
		total += dt
		if l.update != nil {
			l.update()
		}
	}

	if l.animate != nil && total > 0 {
		l.animate(float32(total))
	}
	return total
}

func clampStep(dt, limit float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return math.Min(dt, limit)
}
