package physics

// Handle identifies a body inside a World. Handles are never reused, so a
// stale handle simply fails to resolve.
type Handle uint64

// NoBody is the zero Handle; it never refers to a live body.
const NoBody Handle = 0

// BodyDef describes a body to be added to a World.
type BodyDef struct {
	Label    string
	Shape    Shape
	Position Vec
	Angle    float64 // radians
	Static   bool
	Sensor   bool // reports collisions, never pushes

	Density     float64
	Restitution float64
	Friction    float64
	AirFriction float64 // velocity fraction lost per tick
}

type Body struct {
	handle Handle
	label  string
	shape  Shape

	position        Vec
	angle           float64
	velocity        Vec
	angularVelocity float64

	mass, invMass       float64
	inertia, invInertia float64

	static, sensor bool
	restitution    float64
	friction       float64
	airFriction    float64

	sleeping     bool
	motion       float64
	sleepCounter int
}

func newBody(h Handle, def BodyDef) *Body {
	b := &Body{
		handle:      h,
		label:       def.Label,
		shape:       def.Shape,
		position:    def.Position,
		angle:       def.Angle,
		static:      def.Static,
		sensor:      def.Sensor,
		restitution: def.Restitution,
		friction:    def.Friction,
		airFriction: def.AirFriction,
	}
	if !b.static {
		density := def.Density
		if density <= 0 {
			density = 0.001
		}
		b.mass = density * def.Shape.area()
		b.inertia = def.Shape.inertia(b.mass)
		if b.mass > 0 {
			b.invMass = 1 / b.mass
		}
		if b.inertia > 0 {
			b.invInertia = 1 / b.inertia
		}
	}
	return b
}

func (b *Body) Handle() Handle { return b.handle }
func (b *Body) Label() string { return b.label }
func (b *Body) Shape() Shape { return b.shape }
func (b *Body) Position() Vec { return b.position }
func (b *Body) Angle() float64 { return b.angle }
func (b *Body) Velocity() Vec { return b.velocity }
func (b *Body) AngularVelocity() float64 { return b.angularVelocity }
func (b *Body) Mass() float64 { return b.mass }
func (b *Body) IsStatic() bool { return b.static }
func (b *Body) IsSensor() bool { return b.sensor }
func (b *Body) IsSleeping() bool { return b.sleeping }

// Bounds returns the body's current world-space AABB.
func (b *Body) Bounds() Rect {
	return b.shape.bounds(b.position, b.angle)
}

// SetVelocity overwrites the linear velocity and wakes the body.
func (b *Body) SetVelocity(v Vec) {
	if b.static {
		return
	}
	b.velocity = v
	b.wake()
}

func (b *Body) SetAngularVelocity(w float64) {
	if b.static {
		return
	}
	b.angularVelocity = w
	b.wake()
}

// ApplyImpulse changes momentum by impulse applied at a world point.
func (b *Body) ApplyImpulse(impulse, point Vec) {
	if b.static {
		return
	}
	b.velocity = b.velocity.Add(impulse.Scale(b.invMass))
	b.angularVelocity += point.Sub(b.position).Cross(impulse) * b.invInertia
	b.wake()
}

func (b *Body) wake() {
	b.sleeping = false
	b.sleepCounter = 0
}

func (b *Body) sleep() {
	b.sleeping = true
	b.velocity = Vec{}
	b.angularVelocity = 0
}

// solverMass returns the inverse mass and inertia the solver should use;
// static and sleeping bodies do not move.
func (b *Body) solverMass() (float64, float64) {
	if b.static || b.sleeping || b.sensor {
		return 0, 0
	}
	return b.invMass, b.invInertia
}

// pointVelocity is the velocity of a world point rigidly attached to b.
func (b *Body) pointVelocity(r Vec) Vec {
	return b.velocity.Add(crossSV(b.angularVelocity, r))
}
