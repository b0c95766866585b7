package physics

import "math"

type contact struct {
	point Vec
	depth float64

	rA, rB      Vec
	normalMass  float64
	tangentMass float64
	bias        float64

	// accumulated impulses for this step
	pn, pt float64
}

// manifold is the narrow-phase result for one overlapping pair. normal
// points from a to b.
type manifold struct {
	a, b     *Body
	normal   Vec
	contacts []contact
}

func (m *manifold) depth() float64 {
	d := 0.0
	for _, c := range m.contacts {
		d = math.Max(d, c.depth)
	}
	return d
}

// collide runs the narrow phase for a and b.
func collide(a, b *Body) (*manifold, bool) {
	switch {
	case a.shape.Kind == ShapeCircle && b.shape.Kind == ShapeCircle:
		return collideCircles(a, b)
	case a.shape.Kind == ShapeCircle && b.shape.Kind == ShapeBox:
		return collideCircleBox(a, b)
	case a.shape.Kind == ShapeBox && b.shape.Kind == ShapeCircle:
		m, ok := collideCircleBox(b, a)
		if !ok {
			return nil, false
		}
		m.a, m.b = a, b
		m.normal = m.normal.Neg()
		return m, true
	default:
		return collideBoxes(a, b)
	}
}

func collideCircles(a, b *Body) (*manifold, bool) {
	d := b.position.Sub(a.position)
	total := a.shape.Radius + b.shape.Radius
	distSq := d.LenSq()
	if distSq >= total*total {
		return nil, false
	}
	dist := math.Sqrt(distSq)
	normal := Vec{1, 0}
	if dist > 0 {
		normal = d.Scale(1 / dist)
	}
	return &manifold{
		a:      a,
		b:      b,
		normal: normal,
		contacts: []contact{{
			point: a.position.Add(normal.Scale(a.shape.Radius)),
			depth: total - dist,
		}},
	}, true
}

// collideCircleBox expects c to be the circle; the normal points from the
// circle into the box.
func collideCircleBox(c, box *Body) (*manifold, bool) {
	r := c.shape.Radius
	hw, hh := box.shape.Width/2, box.shape.Height/2
	local := c.position.Sub(box.position).Rotate(-box.angle)
	clamped := Vec{clamp(local.X, -hw, hw), clamp(local.Y, -hh, hh)}

	var outward Vec // box to circle, local frame
	var depth float64
	var pointLocal Vec
	if clamped != local {
		delta := local.Sub(clamped)
		distSq := delta.LenSq()
		if distSq >= r*r {
			return nil, false
		}
		dist := math.Sqrt(distSq)
		outward = delta.Scale(1 / dist)
		depth = r - dist
		pointLocal = clamped
	} else {
		dx := hw - math.Abs(local.X)
		dy := hh - math.Abs(local.Y)
		if dx < dy {
			s := sign(local.X)
			outward = Vec{s, 0}
			depth = dx + r
			pointLocal = Vec{s * hw, local.Y}
		} else {
			s := sign(local.Y)
			outward = Vec{0, s}
			depth = dy + r
			pointLocal = Vec{local.X, s * hh}
		}
	}

	return &manifold{
		a:      c,
		b:      box,
		normal: outward.Rotate(box.angle).Neg(),
		contacts: []contact{{
			point: box.position.Add(pointLocal.Rotate(box.angle)),
			depth: depth,
		}},
	}, true
}

// collideBoxes is a separating-axis test followed by clipping the incident
// face against the reference face, yielding up to two contact points.
func collideBoxes(a, b *Body) (*manifold, bool) {
	axesA := boxAxes(a.angle)
	axesB := boxAxes(b.angle)
	d := b.position.Sub(a.position)

	bestOverlap := math.Inf(1)
	var bestAxis Vec
	refIsA := true

	test := func(axis Vec, ownerA bool) bool {
		ra := projectRadius(a, axesA, axis)
		rb := projectRadius(b, axesB, axis)
		dist := d.Dot(axis)
		overlap := ra + rb - math.Abs(dist)
		if overlap <= 0 {
			return false
		}
		// b's axes must win clearly, or the reference face flip-flops
		// between nearly equal candidates
		cmp := overlap
		if !ownerA {
			cmp = overlap/0.95 + 0.01
		}
		if cmp < bestOverlap {
			bestOverlap = cmp
			if dist < 0 {
				axis = axis.Neg()
			}
			bestAxis = axis
			refIsA = ownerA
		}
		return true
	}
	for _, ax := range axesA {
		if !test(ax, true) {
			return nil, false
		}
	}
	for _, ax := range axesB {
		if !test(ax, false) {
			return nil, false
		}
	}

	normal := bestAxis // a to b
	ref, inc := a, b
	refNormal := normal
	if !refIsA {
		ref, inc = b, a
		refNormal = normal.Neg()
	}

	refAxes := boxAxes(ref.angle)
	hwRef, hhRef := ref.shape.Width/2, ref.shape.Height/2
	// extent of the reference box along its face normal and tangent
	var faceExtent, sideExtent float64
	if math.Abs(refNormal.Dot(refAxes[0])) > math.Abs(refNormal.Dot(refAxes[1])) {
		faceExtent, sideExtent = hwRef, hhRef
	} else {
		faceExtent, sideExtent = hhRef, hwRef
	}
	faceCenter := ref.position.Add(refNormal.Scale(faceExtent))
	tangent := refNormal.Perp()

	v1, v2 := incidentEdge(inc, refNormal)

	offset := tangent.Dot(faceCenter)
	pts, ok := clipSegment(v1, v2, tangent, offset+sideExtent)
	if !ok {
		return nil, false
	}
	pts, ok = clipSegment(pts[0], pts[1], tangent.Neg(), -offset+sideExtent)
	if !ok {
		return nil, false
	}

	m := &manifold{a: a, b: b, normal: normal}
	for _, p := range pts {
		sep := refNormal.Dot(p.Sub(faceCenter))
		if sep <= 0 {
			m.contacts = append(m.contacts, contact{point: p, depth: -sep})
		}
	}
	if len(m.contacts) == 0 {
		return nil, false
	}
	return m, true
}

func boxAxes(angle float64) [2]Vec {
	s, c := math.Sincos(angle)
	return [2]Vec{{c, s}, {-s, c}}
}

func projectRadius(b *Body, axes [2]Vec, axis Vec) float64 {
	return b.shape.Width/2*math.Abs(axes[0].Dot(axis)) + b.shape.Height/2*math.Abs(axes[1].Dot(axis))
}

// incidentEdge returns the edge of b whose outward normal is most opposed
// to n.
func incidentEdge(b *Body, n Vec) (Vec, Vec) {
	axes := boxAxes(b.angle)
	hw, hh := b.shape.Width/2, b.shape.Height/2
	type face struct {
		normal Vec
		v1, v2 Vec
	}
	faces := [4]face{
		{axes[0], Vec{hw, -hh}, Vec{hw, hh}},
		{axes[0].Neg(), Vec{-hw, hh}, Vec{-hw, -hh}},
		{axes[1], Vec{hw, hh}, Vec{-hw, hh}},
		{axes[1].Neg(), Vec{-hw, -hh}, Vec{hw, -hh}},
	}
	best := 0
	bestDot := math.Inf(1)
	for i, f := range faces {
		if dot := f.normal.Dot(n); dot < bestDot {
			bestDot = dot
			best = i
		}
	}
	f := faces[best]
	return b.position.Add(f.v1.Rotate(b.angle)), b.position.Add(f.v2.Rotate(b.angle))
}

// clipSegment keeps the part of v1-v2 where n·p <= limit.
func clipSegment(v1, v2, n Vec, limit float64) ([2]Vec, bool) {
	var out [2]Vec
	count := 0
	d1 := n.Dot(v1) - limit
	d2 := n.Dot(v2) - limit
	if d1 <= 0 {
		out[count] = v1
		count++
	}
	if d2 <= 0 {
		out[count] = v2
		count++
	}
	if d1*d2 < 0 && count < 2 {
		t := d1 / (d1 - d2)
		out[count] = v1.Add(v2.Sub(v1).Scale(t))
		count++
	}
	return out, count == 2
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
