package skink

import "math"

// Body is the stock DynamicEntity. Hosts with richer movement models can
// implement the interface themselves; Body covers the usual platformer
// needs: walk acceleration, friction as deceleration, per-axis speed caps
// and a collision callback.
type Body struct {
	loc   Vec2
	speed Vec2
	half  Vec2

	accel    Vec2
	friction float64 // horizontal deceleration applied when accel.x is zero
	maxSpeed Vec2    // per-axis cap on |speed|; zero means uncapped

	gravity bool
	pushed  bool

	onCollision func(MovingCollision)
}

// NewBody returns a body centered at loc with the given half-extents.
// Gravity and geometry pushing start enabled.
func NewBody(loc, half Vec2) *Body {
	return &Body{
		loc:     loc,
		half:    half,
		gravity: true,
		pushed:  true,
	}
}

func (b *Body) Loc() Vec2          { return b.loc }
func (b *Body) Speed() Vec2        { return b.speed }
func (b *Body) HalfWidth() float64  { return b.half.X() }
func (b *Body) HalfHeight() float64 { return b.half.Y() }

func (b *Body) AffectedByGravity() bool { return b.gravity }
func (b *Body) PushedByGeometry() bool  { return b.pushed }

func (b *Body) SetLoc(loc Vec2)                         { b.loc = loc }
func (b *Body) SetSpeed(speed Vec2)                     { b.speed = speed }
func (b *Body) SetAcceleration(accel Vec2)              { b.accel = accel }
func (b *Body) SetFriction(decel float64)               { b.friction = decel }
func (b *Body) SetMaxSpeed(max Vec2)                    { b.maxSpeed = max }
func (b *Body) SetAffectedByGravity(enabled bool)       { b.gravity = enabled }
func (b *Body) SetPushedByGeometry(enabled bool)        { b.pushed = enabled }
func (b *Body) SetOnCollision(fn func(MovingCollision)) { b.onCollision = fn }

// Jump sets the vertical speed to v upward. Convenience for hosts; the
// engine never calls it.
func (b *Body) Jump(v float64) {
	b.speed[1] = -v
}

func (b *Body) ApplyAccelerations(dt float64) {
	b.speed = b.speed.Add(impulse(b.accel, dt))

	// Friction only fights horizontal coasting; it never reverses it.
	if b.accel.X() == 0 && b.friction > 0 {
		drop := b.friction * dt
		switch {
		case b.speed.X() > drop:
			b.speed[0] -= drop
		case b.speed.X() < -drop:
			b.speed[0] += drop
		default:
			b.speed[0] = 0
		}
	}

	if b.maxSpeed.X() > 0 && math.Abs(b.speed.X()) > b.maxSpeed.X() {
		b.speed[0] = math.Copysign(b.maxSpeed.X(), b.speed.X())
	}
	if b.maxSpeed.Y() > 0 && math.Abs(b.speed.Y()) > b.maxSpeed.Y() {
		b.speed[1] = math.Copysign(b.maxSpeed.Y(), b.speed.Y())
	}
}

func (b *Body) ApplyGravityImpulse(dv, terminalVelocity float64) {
	b.speed[1] += dv
	if b.speed[1] > terminalVelocity {
		b.speed[1] = terminalVelocity
	}
}

func (b *Body) ApplySpeeds(dt float64) {
	b.loc = b.loc.Add(b.speed.Mul(dt))
}

func (b *Body) AdjustForCollision(hit SweptAABB) {
	switch {
	case hit.Normal.X() > 0:
		b.speed[0] = 0
		b.loc[0] = float64(hit.TileX+1) + b.half.X()
	case hit.Normal.X() < 0:
		b.speed[0] = 0
		b.loc[0] = float64(hit.TileX) - b.half.X()
	case hit.Normal.Y() > 0:
		b.speed[1] = 0
		b.loc[1] = float64(hit.TileY+1) + b.half.Y()
	case hit.Normal.Y() < 0:
		b.speed[1] = 0
		b.loc[1] = float64(hit.TileY) - b.half.Y()
	}
}

func (b *Body) PotentialCollisionOrigin(dt float64) (int, int) {
	end := b.loc.Add(b.speed.Mul(dt))
	minX := math.Min(b.loc.X(), end.X()) - b.half.X()
	minY := math.Min(b.loc.Y(), end.Y()) - b.half.Y()
	return int(math.Floor(minX)), int(math.Floor(minY))
}

func (b *Body) PotentialCollisionEnd(dt float64) (int, int) {
	end := b.loc.Add(b.speed.Mul(dt))
	maxX := math.Max(b.loc.X(), end.X()) + b.half.X()
	maxY := math.Max(b.loc.Y(), end.Y()) + b.half.Y()
	return int(math.Floor(maxX)), int(math.Floor(maxY))
}

func (b *Body) IsColliding(other DynamicEntity) bool {
	dx := math.Abs(b.loc.X() - other.Loc().X())
	dy := math.Abs(b.loc.Y() - other.Loc().Y())
	return dx < b.half.X()+other.HalfWidth() && dy < b.half.Y()+other.HalfHeight()
}

func (b *Body) MovingCollisionOccurred(mc MovingCollision) {
	if b.onCollision != nil {
		b.onCollision(mc)
	}
}
