package gamemath

import "math"

// FitViewport scales an inner area to fit inside an outer one, keeping its
// aspect ratio, and centres it. Screen points map to inner ones as
// (screen - offset) / scale. Degenerate sizes give the identity mapping.
func FitViewport(outerW, outerH, innerW, innerH float64) (scale, offsetX, offsetY float64) {
	if outerW <= 0 || outerH <= 0 || innerW <= 0 || innerH <= 0 {
		return 1, 0, 0
	}
	scale = math.Min(outerW/innerW, outerH/innerH)
	return scale, (outerW - innerW*scale) / 2, (outerH - innerH*scale) / 2
}
