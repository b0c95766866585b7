package gamemath

import "math"

// LaunchPower maps a drag distance to launch power. Distances below
// minDistance give zero; power grows linearly up to maxPowerDistance and is
// capped at maxPower beyond it.
func LaunchPower(distance, minDistance, maxPowerDistance, maxPower float64) float64 {
	if distance < minDistance || maxPowerDistance <= minDistance {
		return 0
	}
	ratio := (distance - minDistance) / (maxPowerDistance - minDistance)
	return math.Min(ratio, 1) * maxPower
}

// ElevationArc converts upward elevation limits in degrees into world-space
// barrel angles. Screen y grows downward, so elevation is negated and the
// limits swap.
func ElevationArc(minElevationDeg, maxElevationDeg float64) (minAngle, maxAngle float64) {
	return -maxElevationDeg * math.Pi / 180, -minElevationDeg * math.Pi / 180
}

// BarrelAngle returns the drag direction's angle clamped to [minAngle,
// maxAngle]. The raw angle is measured around the arc midpoint so clamping
// picks the nearer limit even when the drag points across ±π.
func BarrelAngle(dx, dy, minAngle, maxAngle float64) float64 {
	mid := (minAngle + maxAngle) / 2
	rel := WrapAngle(math.Atan2(dy, dx) - mid)
	rel = math.Min(rel, maxAngle-mid)
	rel = math.Max(rel, minAngle-mid)
	return rel + mid
}

// WrapAngle folds a into (-π, π].
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// BarrelTip is the muzzle position for a barrel of the given length.
func BarrelTip(pivotX, pivotY, angle, length float64) (x, y float64) {
	return pivotX + math.Cos(angle)*length, pivotY + math.Sin(angle)*length
}

// LaunchVelocity is the projectile's initial velocity for an aim.
func LaunchVelocity(angle, power float64) (vx, vy float64) {
	return math.Cos(angle) * power, math.Sin(angle) * power
}
