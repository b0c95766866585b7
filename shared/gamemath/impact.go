package gamemath

import "math"

// ImpactSpeed is the magnitude of the relative velocity along the contact
// normal.
func ImpactSpeed(relVX, relVY, normalX, normalY float64) float64 {
	return math.Abs(relVX*normalX + relVY*normalY)
}

// ImpactDamage grades an impact: 2 at or above the destruction threshold,
// 1 at or above the damage threshold, otherwise 0.
func ImpactDamage(speed, damageThreshold, destructionThreshold float64) int {
	switch {
	case speed >= destructionThreshold:
		return 2
	case speed >= damageThreshold:
		return 1
	default:
		return 0
	}
}
