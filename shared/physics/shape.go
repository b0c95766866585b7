package physics

import "math"

type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// Shape describes a body's collision geometry in its local frame, centred
// on the body position.
type Shape struct {
	Kind   ShapeKind
	Radius float64 // circles
	Width  float64 // boxes
	Height float64
}

func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

func Box(w, h float64) Shape {
	return Shape{Kind: ShapeBox, Width: w, Height: h}
}

func (s Shape) area() float64 {
	if s.Kind == ShapeCircle {
		return math.Pi * s.Radius * s.Radius
	}
	return s.Width * s.Height
}

func (s Shape) inertia(mass float64) float64 {
	if s.Kind == ShapeCircle {
		return 0.5 * mass * s.Radius * s.Radius
	}
	return mass * (s.Width*s.Width + s.Height*s.Height) / 12
}

// bounds returns the world-space AABB of the shape at pos rotated by angle.
func (s Shape) bounds(pos Vec, angle float64) Rect {
	if s.Kind == ShapeCircle {
		r := Vec{s.Radius, s.Radius}
		return Rect{Min: pos.Sub(r), Max: pos.Add(r)}
	}
	sin, cos := math.Sincos(angle)
	hw, hh := s.Width/2, s.Height/2
	ex := math.Abs(cos)*hw + math.Abs(sin)*hh
	ey := math.Abs(sin)*hw + math.Abs(cos)*hh
	e := Vec{ex, ey}
	return Rect{Min: pos.Sub(e), Max: pos.Add(e)}
}

// Corners returns the four world-space corners of a box shape.
func (s Shape) Corners(pos Vec, angle float64) [4]Vec {
	hw, hh := s.Width/2, s.Height/2
	local := [4]Vec{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4]Vec
	for i, c := range local {
		out[i] = pos.Add(c.Rotate(angle))
	}
	return out
}
