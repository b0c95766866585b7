package gamemath

import (
	"math"
	"testing"
)

func TestPredictTrajectoryFollowsParabola(t *testing.T) {
	p := TrajectoryParams{
		OriginX: 100, OriginY: 400,
		Angle:      -math.Pi / 4,
		Power:      10,
		SpeedScale: 1,
		Gravity:    0.3,
		TimeStep:   2,
		MaxSamples: 15,
		FloorY:     1000,
	}
	samples := PredictTrajectory(p)
	if len(samples) != 15 {
		t.Fatalf("got %d samples, want 15", len(samples))
	}
	vx, vy := LaunchVelocity(p.Angle, p.Power)
	for i, s := range samples {
		tt := float64(i+1) * p.TimeStep
		wantX := p.OriginX + vx*tt
		wantY := p.OriginY + vy*tt + 0.5*p.Gravity*tt*tt
		if math.Abs(s.X-wantX) > 1e-9 || math.Abs(s.Y-wantY) > 1e-9 {
			t.Fatalf("sample %d = (%v, %v), want (%v, %v)", i, s.X, s.Y, wantX, wantY)
		}
	}
	last := samples[len(samples)-1]
	if last.Opacity != 0 || math.Abs(last.Scale-0.2) > 1e-9 {
		t.Fatalf("last sample opacity %v scale %v", last.Opacity, last.Scale)
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].Opacity >= samples[i-1].Opacity {
			t.Fatal("opacity must fade along the arc")
		}
	}
}

func TestPredictTrajectoryStopsAtFloor(t *testing.T) {
	samples := PredictTrajectory(TrajectoryParams{
		OriginX: 0, OriginY: 590,
		Angle:      0,
		Power:      5,
		SpeedScale: 1,
		Gravity:    0.3,
		TimeStep:   2,
		MaxSamples: 15,
		FloorY:     600,
	})
	// y = 590 + 0.15 t², crosses 600 between t=8 and t=10
	if len(samples) != 4 {
		t.Fatalf("got %d samples, want 4", len(samples))
	}
	for _, s := range samples {
		if s.Y > 600 {
			t.Fatalf("sample below floor: %+v", s)
		}
	}
}

func TestPredictTrajectoryZeroPowerFallsStraight(t *testing.T) {
	samples := PredictTrajectory(TrajectoryParams{
		OriginX: 50, OriginY: 0, Angle: -1, Power: 0, SpeedScale: 1,
		Gravity: 0.3, TimeStep: 1, MaxSamples: 3, FloorY: 100,
	})
	for _, s := range samples {
		if s.X != 50 {
			t.Fatalf("zero power drifted sideways: %+v", s)
		}
	}
}
