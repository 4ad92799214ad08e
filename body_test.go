package skink

import (
	"math"
	"testing"
)

func TestBodyFrictionDeceleratesToZero(t *testing.T) {
	b := NewBody(Vec2{0, 0}, Vec2{0.5, 0.5})
	b.SetSpeed(Vec2{3, 0})
	b.SetFriction(10)

	b.ApplyAccelerations(0.2) // drops 2 of the 3
	if math.Abs(b.Speed().X()-1) > 1e-12 {
		t.Errorf("speed.x = %f, want 1", b.Speed().X())
	}
	b.ApplyAccelerations(0.2) // would drop 2, clamps at 0
	if b.Speed().X() != 0 {
		t.Errorf("speed.x = %f, want 0 (friction never reverses)", b.Speed().X())
	}
}

func TestBodyFrictionIgnoredWhileAccelerating(t *testing.T) {
	b := NewBody(Vec2{0, 0}, Vec2{0.5, 0.5})
	b.SetFriction(100)
	b.SetAcceleration(Vec2{5, 0})

	b.ApplyAccelerations(1)
	if math.Abs(b.Speed().X()-5) > 1e-12 {
		t.Errorf("speed.x = %f, want 5", b.Speed().X())
	}
}

func TestBodyMaxSpeedCapsBothSigns(t *testing.T) {
	b := NewBody(Vec2{0, 0}, Vec2{0.5, 0.5})
	b.SetMaxSpeed(Vec2{2, 4})

	b.SetSpeed(Vec2{10, -10})
	b.ApplyAccelerations(0.01)
	if b.Speed().X() != 2 || b.Speed().Y() != -4 {
		t.Errorf("speed = %v, want (2, -4)", b.Speed())
	}

	b.SetSpeed(Vec2{-10, 10})
	b.ApplyAccelerations(0.01)
	if b.Speed().X() != -2 || b.Speed().Y() != 4 {
		t.Errorf("speed = %v, want (-2, 4)", b.Speed())
	}
}

func TestBodyGravityImpulseClampsToTerminal(t *testing.T) {
	b := NewBody(Vec2{0, 0}, Vec2{0.5, 0.5})
	b.ApplyGravityImpulse(12, 20)
	if b.Speed().Y() != 12 {
		t.Errorf("speed.y = %f, want 12", b.Speed().Y())
	}
	b.ApplyGravityImpulse(12, 20)
	if b.Speed().Y() != 20 {
		t.Errorf("speed.y = %f, want terminal 20", b.Speed().Y())
	}
	// Upward speed is never clamped.
	b.SetSpeed(Vec2{0, -50})
	b.ApplyGravityImpulse(5, 20)
	if b.Speed().Y() != -45 {
		t.Errorf("speed.y = %f, want -45", b.Speed().Y())
	}
}

func TestBodyJump(t *testing.T) {
	b := NewBody(Vec2{0, 0}, Vec2{0.5, 0.5})
	b.Jump(8)
	if b.Speed().Y() != -8 {
		t.Errorf("speed.y = %f, want -8 (up is negative)", b.Speed().Y())
	}
}

func TestBodyPotentialCollisionBounds(t *testing.T) {
	b := NewBody(Vec2{1.0, 0.5}, Vec2{0.4, 0.4})
	b.SetSpeed(Vec2{0, 5})

	ox, oy := b.PotentialCollisionOrigin(0.5)
	ex, ey := b.PotentialCollisionEnd(0.5)
	if ox != 0 || oy != 0 {
		t.Errorf("origin = %d,%d, want 0,0", ox, oy)
	}
	// End of travel: y = 0.5 + 2.5 + 0.4 = 3.4.
	if ex != 1 || ey != 3 {
		t.Errorf("end = %d,%d, want 1,3", ex, ey)
	}

	// Moving in -X the origin leads the box.
	b.SetSpeed(Vec2{-3, 0})
	ox, _ = b.PotentialCollisionOrigin(1)
	if ox != -3 {
		t.Errorf("origin x = %d, want -3", ox)
	}
}

func TestBodyIsCollidingStrictOverlap(t *testing.T) {
	a := NewBody(Vec2{1, 1}, Vec2{0.5, 0.5})
	b := NewBody(Vec2{1.9, 1}, Vec2{0.5, 0.5})
	c := NewBody(Vec2{2.0, 1}, Vec2{0.5, 0.5})

	if !a.IsColliding(b) {
		t.Error("overlapping boxes should collide")
	}
	if a.IsColliding(c) {
		t.Error("boxes touching at distance zero should not collide")
	}
}
