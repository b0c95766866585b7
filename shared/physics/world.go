package physics

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"
)

// CollisionPair is reported once, on the first step two bodies touch.
type CollisionPair struct {
	A, B           Handle
	LabelA, LabelB string
	// Normal points from A to B.
	Normal Vec
	// RelativeVelocity is B's velocity minus A's, sampled before the step's
	// contact impulses are applied.
	RelativeVelocity Vec
	Point            Vec
	Depth            float64
}

// Involves reports whether the pair touches h.
func (p CollisionPair) Involves(h Handle) bool {
	return p.A == h || p.B == h
}

// WorldDef configures a World. Units are pixels and reference ticks
// (one tick = 1/60 s).
type WorldDef struct {
	Gravity    Vec
	Bounds     Rect // bodies outside Bounds stop colliding
	CellSize   int
	Iterations int

	RestitutionThreshold float64 // approach speed below which bounces are damped
	Slop                 float64
	Correction           float64

	EnableSleeping bool
	SleepThreshold float64
	SleepTicks     int
	WakeThreshold  float64
}

// DefaultWorldDef returns solver settings tuned for ~60 fps stepping.
func DefaultWorldDef() WorldDef {
	return WorldDef{
		Gravity:              Vec{0, 0.3},
		Bounds:               Rect{Min: Vec{-512, -1024}, Max: Vec{1536, 1024}},
		CellSize:             32,
		Iterations:           10,
		RestitutionThreshold: 1,
		Slop:                 0.05,
		Correction:           0.4,
		EnableSleeping:       true,
		SleepThreshold:       0.08,
		SleepTicks:           60,
		WakeThreshold:        0.18,
	}
}

type pairKey struct{ lo, hi Handle }

func keyOf(a, b Handle) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// World owns every body and advances them with an impulse solver. It is not
// safe for concurrent use.
type World struct {
	def    WorldDef
	space  *resolv.Space
	bodies map[Handle]*Body
	objs   map[Handle]*resolv.Object
	order  []Handle
	next   Handle
	time   float64

	active   map[pairKey]bool
	stepping bool
	pending  []Handle

	listeners []func([]CollisionPair)
}

func NewWorld(def WorldDef) *World {
	if def.CellSize <= 0 {
		def.CellSize = 32
	}
	if def.Iterations <= 0 {
		def.Iterations = 10
	}
	w := &World{
		def:    def,
		bodies: map[Handle]*Body{},
		objs:   map[Handle]*resolv.Object{},
		active: map[pairKey]bool{},
	}
	w.space = resolv.NewSpace(
		int(math.Ceil(def.Bounds.Width())),
		int(math.Ceil(def.Bounds.Height())),
		def.CellSize, def.CellSize,
	)
	return w
}

// Time is the accumulated simulated time in ticks.
func (w *World) Time() float64 { return w.time }

func (w *World) Gravity() Vec { return w.def.Gravity }

func (w *World) Len() int { return len(w.bodies) }

// OnCollisionStart registers fn to receive each step's batch of new
// contacts. Callbacks run inside Step, before contacts are resolved.
func (w *World) OnCollisionStart(fn func([]CollisionPair)) {
	w.listeners = append(w.listeners, fn)
}

func (w *World) Add(def BodyDef) Handle {
	w.next++
	h := w.next
	b := newBody(h, def)
	w.bodies[h] = b
	w.order = append(w.order, h)

	bb := b.Bounds()
	obj := resolv.NewObject(bb.Min.X-w.def.Bounds.Min.X, bb.Min.Y-w.def.Bounds.Min.Y, math.Max(bb.Width(), 1), math.Max(bb.Height(), 1))
	obj.Data = h
	w.space.Add(obj)
	w.objs[h] = obj
	return h
}

// Body resolves h. Bodies queued for removal still resolve until the step
// that removed them finishes.
func (w *World) Body(h Handle) (*Body, bool) {
	b, ok := w.bodies[h]
	return b, ok
}

// Remove deletes h. Removal requested during Step is deferred until the
// step completes. Unknown handles are ignored.
func (w *World) Remove(h Handle) {
	if _, ok := w.bodies[h]; !ok {
		return
	}
	if w.stepping {
		w.pending = append(w.pending, h)
		return
	}
	w.remove(h)
}

func (w *World) remove(h Handle) {
	if _, ok := w.bodies[h]; !ok {
		return
	}
	// anything resting on h has lost its support
	for k := range w.active {
		if k.lo != h && k.hi != h {
			continue
		}
		other := k.lo
		if other == h {
			other = k.hi
		}
		if b, ok := w.bodies[other]; ok {
			b.wake()
		}
		delete(w.active, k)
	}
	if obj, ok := w.objs[h]; ok {
		w.space.Remove(obj)
		delete(w.objs, h)
	}
	delete(w.bodies, h)
	for i, oh := range w.order {
		if oh == h {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

func (w *World) isPending(h Handle) bool {
	for _, p := range w.pending {
		if p == h {
			return true
		}
	}
	return false
}

// Clear removes every body. Time keeps running.
func (w *World) Clear() {
	for _, h := range append([]Handle(nil), w.order...) {
		w.remove(h)
	}
}

// InBounds reports whether h's AABB still overlaps the world bounds.
func (w *World) InBounds(h Handle) bool {
	b, ok := w.bodies[h]
	if !ok {
		return false
	}
	return b.Bounds().Overlaps(w.def.Bounds)
}

// Step advances the world by dt ticks.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.stepping = true
	w.time += dt

	w.syncBroadphase()
	manifolds := w.detect()
	w.fireStarts(manifolds)

	var solvable []*manifold
	for _, m := range manifolds {
		if m.a.sensor || m.b.sensor || w.isPending(m.a.handle) || w.isPending(m.b.handle) {
			continue
		}
		solvable = append(solvable, m)
	}
	w.wakeTouched(solvable)

	for _, h := range w.order {
		w.integrateVelocity(w.bodies[h], dt)
	}
	for _, m := range solvable {
		w.prepare(m)
	}
	for i := 0; i < w.def.Iterations; i++ {
		for _, m := range solvable {
			w.solve(m)
		}
	}
	for _, h := range w.order {
		b := w.bodies[h]
		if b.static || b.sleeping {
			continue
		}
		b.position = b.position.Add(b.velocity.Scale(dt))
		b.angle = normalizeAngle(b.angle + b.angularVelocity*dt)
	}
	for _, m := range solvable {
		w.correct(m)
	}
	if w.def.EnableSleeping {
		for _, h := range w.order {
			w.updateSleep(w.bodies[h])
		}
	}

	w.stepping = false
	pending := w.pending
	w.pending = nil
	for _, h := range pending {
		w.remove(h)
	}
}

func (w *World) syncBroadphase() {
	for _, h := range w.order {
		b := w.bodies[h]
		if b.static {
			continue
		}
		obj := w.objs[h]
		bb := b.Bounds()
		obj.X = bb.Min.X - w.def.Bounds.Min.X
		obj.Y = bb.Min.Y - w.def.Bounds.Min.Y
		obj.W = math.Max(bb.Width(), 1)
		obj.H = math.Max(bb.Height(), 1)
		obj.Update()
	}
}

// detect gathers candidate pairs from the spatial hash and runs the narrow
// phase on them. Only awake, non-static bodies start a query.
func (w *World) detect() []*manifold {
	seen := map[pairKey]bool{}
	var keys []pairKey
	for _, h := range w.order {
		b := w.bodies[h]
		if b.static || b.sleeping {
			continue
		}
		col := w.objs[h].Check(0, 0)
		if col == nil {
			continue
		}
		for _, o := range col.Objects {
			oh, ok := o.Data.(Handle)
			if !ok || oh == h {
				continue
			}
			k := keyOf(h, oh)
			if seen[k] {
				continue
			}
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].lo != keys[j].lo {
			return keys[i].lo < keys[j].lo
		}
		return keys[i].hi < keys[j].hi
	})

	var out []*manifold
	for _, k := range keys {
		a, b := w.bodies[k.lo], w.bodies[k.hi]
		if a.static && b.static {
			continue
		}
		if (a.sensor && b.static) || (b.sensor && a.static) {
			continue
		}
		if !a.Bounds().Overlaps(b.Bounds()) {
			continue
		}
		if m, ok := collide(a, b); ok {
			out = append(out, m)
		}
	}
	return out
}

func (w *World) fireStarts(manifolds []*manifold) {
	current := make(map[pairKey]bool, len(manifolds))
	var starts []CollisionPair
	for _, m := range manifolds {
		k := keyOf(m.a.handle, m.b.handle)
		current[k] = true
		if w.active[k] {
			continue
		}
		starts = append(starts, CollisionPair{
			A:                m.a.handle,
			B:                m.b.handle,
			LabelA:           m.a.label,
			LabelB:           m.b.label,
			Normal:           m.normal,
			RelativeVelocity: m.b.velocity.Sub(m.a.velocity),
			Point:            m.contacts[0].point,
			Depth:            m.depth(),
		})
	}
	// pairs involving a sleeping body are not re-detected but still touch
	for k := range w.active {
		if current[k] {
			continue
		}
		a, aok := w.bodies[k.lo]
		b, bok := w.bodies[k.hi]
		if aok && bok && (a.sleeping || a.static) && (b.sleeping || b.static) {
			current[k] = true
		}
	}
	w.active = current
	if len(starts) == 0 {
		return
	}
	for _, fn := range w.listeners {
		fn(starts)
	}
}

// wakeTouched wakes sleeping bodies hit by something moving fast enough.
func (w *World) wakeTouched(manifolds []*manifold) {
	for _, m := range manifolds {
		for _, pair := range [2][2]*Body{{m.a, m.b}, {m.b, m.a}} {
			sleeper, other := pair[0], pair[1]
			if !sleeper.sleeping || other.static || other.sleeping {
				continue
			}
			if other.motion > w.def.WakeThreshold {
				sleeper.wake()
			}
		}
	}
}

func (w *World) integrateVelocity(b *Body, dt float64) {
	if b.static || b.sleeping {
		return
	}
	b.velocity = b.velocity.Add(w.def.Gravity.Scale(dt))
	if b.airFriction > 0 {
		damp := math.Pow(1-b.airFriction, dt)
		b.velocity = b.velocity.Scale(damp)
		b.angularVelocity *= damp
	}
}

func (w *World) prepare(m *manifold) {
	imA, iiA := m.a.solverMass()
	imB, iiB := m.b.solverMass()
	restitution := math.Max(m.a.restitution, m.b.restitution)
	tangent := m.normal.Perp()
	for i := range m.contacts {
		c := &m.contacts[i]
		c.rA = c.point.Sub(m.a.position)
		c.rB = c.point.Sub(m.b.position)

		rnA, rnB := c.rA.Cross(m.normal), c.rB.Cross(m.normal)
		kn := imA + imB + iiA*rnA*rnA + iiB*rnB*rnB
		if kn > 0 {
			c.normalMass = 1 / kn
		}
		rtA, rtB := c.rA.Cross(tangent), c.rB.Cross(tangent)
		kt := imA + imB + iiA*rtA*rtA + iiB*rtB*rtB
		if kt > 0 {
			c.tangentMass = 1 / kt
		}

		vn := m.b.pointVelocity(c.rB).Sub(m.a.pointVelocity(c.rA)).Dot(m.normal)
		c.bias = 0
		if vn < -w.def.RestitutionThreshold {
			c.bias = -restitution * vn
		}
		c.pn, c.pt = 0, 0
	}
}

func (w *World) solve(m *manifold) {
	imA, iiA := m.a.solverMass()
	imB, iiB := m.b.solverMass()
	if imA == 0 && imB == 0 {
		return
	}
	friction := math.Min(m.a.friction, m.b.friction)
	tangent := m.normal.Perp()

	for i := range m.contacts {
		c := &m.contacts[i]

		dv := m.b.pointVelocity(c.rB).Sub(m.a.pointVelocity(c.rA))
		vn := dv.Dot(m.normal)
		lambda := c.normalMass * (-vn + c.bias)
		old := c.pn
		c.pn = math.Max(old+lambda, 0)
		lambda = c.pn - old
		applyImpulse(m, m.normal.Scale(lambda), c, imA, iiA, imB, iiB)

		dv = m.b.pointVelocity(c.rB).Sub(m.a.pointVelocity(c.rA))
		vt := dv.Dot(tangent)
		lambda = c.tangentMass * -vt
		maxFriction := friction * c.pn
		old = c.pt
		c.pt = clamp(old+lambda, -maxFriction, maxFriction)
		lambda = c.pt - old
		applyImpulse(m, tangent.Scale(lambda), c, imA, iiA, imB, iiB)
	}
}

func applyImpulse(m *manifold, p Vec, c *contact, imA, iiA, imB, iiB float64) {
	m.a.velocity = m.a.velocity.Sub(p.Scale(imA))
	m.a.angularVelocity -= iiA * c.rA.Cross(p)
	m.b.velocity = m.b.velocity.Add(p.Scale(imB))
	m.b.angularVelocity += iiB * c.rB.Cross(p)
}

// correct pushes overlapping bodies apart along the contact normal.
func (w *World) correct(m *manifold) {
	imA, _ := m.a.solverMass()
	imB, _ := m.b.solverMass()
	total := imA + imB
	if total == 0 {
		return
	}
	pen := m.depth() - w.def.Slop
	if pen <= 0 {
		return
	}
	shift := m.normal.Scale(pen / total * w.def.Correction)
	m.a.position = m.a.position.Sub(shift.Scale(imA))
	m.b.position = m.b.position.Add(shift.Scale(imB))
}

// updateSleep keeps a biased running average of each body's motion and
// puts it to sleep once it stays under the threshold long enough.
func (w *World) updateSleep(b *Body) {
	if b.static || b.sleeping {
		return
	}
	motion := b.velocity.LenSq() + b.angularVelocity*b.angularVelocity
	minMotion := math.Min(b.motion, motion)
	maxMotion := math.Max(b.motion, motion)
	b.motion = 0.9*minMotion + 0.1*maxMotion

	if b.motion < w.def.SleepThreshold {
		b.sleepCounter++
		if b.sleepCounter >= w.def.SleepTicks {
			b.sleep()
		}
		return
	}
	b.sleepCounter = 0
}

func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
