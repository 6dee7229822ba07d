package components

import (
	"testing"

	"dicetable/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newColliderHost(pos rl.Vector3) *engine.GameObject {
	obj := engine.NewGameObject("Host")
	obj.Transform.Position = pos
	return obj
}

func TestRigidbodyDefaults(t *testing.T) {
	rb := NewRigidbody()

	if rb.Mass != 1.0 {
		t.Errorf("Expected default mass 1, got %v", rb.Mass)
	}
	if !rb.UseGravity {
		t.Error("Gravity should be on by default")
	}
	if rb.Speed() != 0 || rb.AngularSpeed() != 0 {
		t.Error("A new rigidbody should be at rest")
	}
}

func TestRigidbodyApplyImpulse(t *testing.T) {
	rb := NewRigidbody()
	rb.Mass = 2.0

	rb.ApplyImpulse(rl.Vector3{X: 4, Y: 0, Z: 0})
	if rb.Velocity.X != 2 {
		t.Errorf("Impulse 4 on mass 2 should give velocity 2, got %v", rb.Velocity.X)
	}

	// Impulses accumulate
	rb.ApplyImpulse(rl.Vector3{X: 4, Y: 2, Z: 0})
	if rb.Velocity.X != 4 || rb.Velocity.Y != 1 {
		t.Errorf("Expected velocity (4,1,0), got %v", rb.Velocity)
	}

	if rb.Speed() == 0 {
		t.Error("Speed should be non-zero after an impulse")
	}
}

func TestRigidbodyApplyTorqueImpulse(t *testing.T) {
	rb := NewRigidbody()
	rb.Mass = 2.0

	rb.ApplyTorqueImpulse(rl.Vector3{X: 0, Y: 180, Z: 0})
	if rb.AngularVelocity.Y != 90 {
		t.Errorf("Torque 180 on mass 2 should give 90 deg/s, got %v", rb.AngularVelocity.Y)
	}
	if rb.AngularSpeed() != 90 {
		t.Errorf("Expected angular speed 90, got %v", rb.AngularSpeed())
	}
}

func TestBoxColliderCenter(t *testing.T) {
	obj := newColliderHost(rl.Vector3{X: 1, Y: 2, Z: 3})
	col := NewBoxCollider(rl.Vector3{X: 0.4, Y: 0.4, Z: 0.4})
	obj.AddComponent(col)

	center := col.GetCenter()
	if center.X != 1 || center.Y != 2 || center.Z != 3 {
		t.Errorf("Expected center at the object position, got %v", center)
	}

	col.Offset = rl.Vector3{Y: 0.5}
	center = col.GetCenter()
	if center.Y != 2.5 {
		t.Errorf("Offset should shift the center, got %v", center)
	}
}

func TestSurfaceMaterial(t *testing.T) {
	s := NewSurface(0.1, 0.8)
	if s.Restitution != 0.1 || s.Friction != 0.8 {
		t.Errorf("Expected material (0.1, 0.8), got (%v, %v)", s.Restitution, s.Friction)
	}
}

func TestPowerBarClampsPercent(t *testing.T) {
	pb := NewPowerBar()

	pb.SetPercent(0.5)
	if pb.GetPercent() != 0.5 {
		t.Errorf("Expected 0.5, got %v", pb.GetPercent())
	}

	pb.SetPercent(1.7)
	if pb.GetPercent() != 1 {
		t.Errorf("Overfill should clamp to 1, got %v", pb.GetPercent())
	}

	pb.SetPercent(-0.3)
	if pb.GetPercent() != 0 {
		t.Errorf("Negative fill should clamp to 0, got %v", pb.GetPercent())
	}
}
