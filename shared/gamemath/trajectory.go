package gamemath

// TrajectorySample is one predicted point along a launch arc.
type TrajectorySample struct {
	X, Y    float64
	Opacity float64 // fades from near 1 to 0 along the arc
	Scale   float64 // shrinks from near 1 to 0.2
}

// TrajectoryParams describes a launch to predict.
type TrajectoryParams struct {
	OriginX, OriginY float64
	Angle            float64 // radians, world space
	Power            float64
	SpeedScale       float64 // launch speed = SpeedScale * Power
	Gravity          float64 // px/tick², positive is down
	TimeStep         float64 // ticks between samples
	MaxSamples       int
	FloorY           float64 // samples below this are dropped
}

// PredictTrajectory samples the ballistic path x = x0 + vx·t,
// y = y0 + vy·t + ½·g·t² at t = step, 2·step, ... and stops at the first
// sample below FloorY.
func PredictTrajectory(p TrajectoryParams) []TrajectorySample {
	if p.MaxSamples <= 0 {
		return nil
	}
	vx, vy := LaunchVelocity(p.Angle, p.Power*p.SpeedScale)
	total := float64(p.MaxSamples) * p.TimeStep

	samples := make([]TrajectorySample, 0, p.MaxSamples)
	for i := 1; i <= p.MaxSamples; i++ {
		t := float64(i) * p.TimeStep
		x := p.OriginX + vx*t
		y := p.OriginY + vy*t + 0.5*p.Gravity*t*t
		if y > p.FloorY {
			break
		}
		progress := t / total
		samples = append(samples, TrajectorySample{
			X:       x,
			Y:       y,
			Opacity: 1 - progress,
			Scale:   1 - 0.8*progress,
		})
	}
	return samples
}
