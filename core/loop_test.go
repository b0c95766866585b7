package core

import (
	"math"
	"testing"

	"github.com/automoto/castlecrush/config"
)

type recordingStepper struct {
	steps []float64
}

func (s *recordingStepper) Step(dt float64) {
	s.steps = append(s.steps, dt)
}

func TestSimulationLoopFrame(t *testing.T) {
	tests := []struct {
		name      string
		ratio     float64
		wantSteps []float64
		wantSyncs int
	}{
		{name: "short frame", ratio: 0.4, wantSteps: []float64{0.4}, wantSyncs: 1},
		{name: "reference frame", ratio: 1, wantSteps: []float64{0.5, 0.5}, wantSyncs: 2},
		{name: "long frame", ratio: 1.3, wantSteps: []float64{0.65, 0.65}, wantSyncs: 2},
		{name: "stall is clamped", ratio: 5, wantSteps: []float64{1, 1}, wantSyncs: 2},
		{name: "zero", ratio: 0, wantSteps: nil, wantSyncs: 1},
		{name: "negative", ratio: -2, wantSteps: nil, wantSyncs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stepper := &recordingStepper{}
			syncs := 0
			var animated []float32
			loop := NewSimulationLoop(stepper,
				func() { syncs++ },
				func(dt float32) { animated = append(animated, dt) },
				config.LoopConfig{MaxStepRatio: 1, SplitThreshold: 0.5},
			)

			total := loop.Frame(tt.ratio)

			if len(stepper.steps) != len(tt.wantSteps) {
				t.Fatalf("steps %v, want %v", stepper.steps, tt.wantSteps)
			}
			var sum float64
			for i, dt := range stepper.steps {
				if math.Abs(dt-tt.wantSteps[i]) > 1e-12 {
					t.Errorf("step %d = %v, want %v", i, dt, tt.wantSteps[i])
				}
				sum += dt
			}
			if syncs != tt.wantSyncs {
				t.Errorf("syncs %d, want %d", syncs, tt.wantSyncs)
			}
			if math.Abs(total-sum) > 1e-12 {
				t.Errorf("returned %v, stepped %v", total, sum)
			}
			if tt.ratio > 0 && total > tt.ratio+1e-12 {
				t.Errorf("advanced %v past ratio %v", total, tt.ratio)
			}
			if sum > 0 && (len(animated) != 1 || math.Abs(float64(animated[0])-sum) > 1e-6) {
				t.Errorf("tweens advanced %v, want one call of %v", animated, sum)
			}
			if sum == 0 && len(animated) != 0 {
				t.Errorf("tweens advanced on an empty frame")
			}
		})
	}
}
