package physics

import (
	"testing"

	"dicetable/internal/components"
	"dicetable/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const worldStep float32 = 1.0 / 60.0

func newTestBody(pos rl.Vector3) (*engine.GameObject, *components.Rigidbody) {
	obj := engine.NewGameObject("Body")
	obj.Transform.Position = pos
	obj.AddComponent(components.NewBoxCollider(rl.Vector3{X: 0.4, Y: 0.4, Z: 0.4}))

	rb := components.NewRigidbody()
	rb.Bounciness = 0.15
	rb.Friction = 0.7
	obj.AddComponent(rb)
	return obj, rb
}

func newTestFloor() *engine.GameObject {
	obj := engine.NewGameObject("Floor")
	obj.Transform.Position = rl.Vector3{Y: -0.05}
	obj.AddComponent(components.NewBoxCollider(rl.Vector3{X: 10, Y: 0.1, Z: 10}))
	obj.AddComponent(components.NewSurface(0.1, 0.8))
	return obj
}

func TestWorldGravity(t *testing.T) {
	w := NewWorld()
	obj, rb := newTestBody(rl.Vector3{Y: 5})
	w.AddBody(obj)

	w.Step(worldStep)
	if rb.Velocity.Y >= 0 {
		t.Error("Gravity should pull the body down")
	}
	if obj.Transform.Position.Y >= 5 {
		t.Error("Body should fall")
	}

	rb.UseGravity = false
	v := rb.Velocity.Y
	w.Step(worldStep)
	if rb.Velocity.Y != v {
		t.Error("UseGravity=false should disable gravity")
	}
}

func TestWorldBodyComesToRestOnFloor(t *testing.T) {
	w := NewWorld()
	obj, rb := newTestBody(rl.Vector3{Y: 1})
	rb.LinearDamping = 2.0
	rb.AngularDamping = 3.0
	w.AddBody(obj)
	w.AddStatic(newTestFloor())

	// 3 simulated seconds is plenty for a half-meter drop
	for i := 0; i < 180; i++ {
		w.Step(worldStep)
	}

	if rb.Speed() > 0.25 {
		t.Errorf("Body should be nearly at rest, speed %v", rb.Speed())
	}
	// Resting on the surface, not inside or below it
	bottom := obj.Transform.Position.Y - 0.2
	if bottom < -0.05 || bottom > 0.1 {
		t.Errorf("Body should rest on the floor, bottom at %v", bottom)
	}
}

func TestWorldWallBounce(t *testing.T) {
	w := NewWorld()
	obj, rb := newTestBody(rl.Vector3{X: -0.5, Y: 0.2})
	rb.UseGravity = false
	rb.Velocity = rl.Vector3{X: 3}
	w.AddBody(obj)

	wall := engine.NewGameObject("Wall")
	wall.Transform.Position = rl.Vector3{X: 0.5, Y: 0.5}
	wall.AddComponent(components.NewBoxCollider(rl.Vector3{X: 0.2, Y: 1, Z: 4}))
	wall.AddComponent(components.NewSurface(0.08, 0.5))
	w.AddStatic(wall)

	for i := 0; i < 30; i++ {
		w.Step(worldStep)
	}

	if rb.Velocity.X >= 0 {
		t.Errorf("Body should rebound off the wall, velocity X %v", rb.Velocity.X)
	}
	if obj.Transform.Position.X > 0.5 {
		t.Errorf("Body should not pass through the wall, at X %v", obj.Transform.Position.X)
	}
}

func TestWorldDynamicPairSeparates(t *testing.T) {
	w := NewWorld()
	a, rbA := newTestBody(rl.Vector3{X: -0.15, Y: 1})
	b, rbB := newTestBody(rl.Vector3{X: 0.15, Y: 1})
	rbA.UseGravity = false
	rbB.UseGravity = false
	w.AddBody(a)
	w.AddBody(b)

	w.Step(worldStep)

	// Overlapping boxes get pushed apart symmetrically (equal masses)
	gap := b.Transform.Position.X - a.Transform.Position.X
	if gap < 0.39 {
		t.Errorf("Bodies should be pushed apart to at least a box width, gap %v", gap)
	}
}

func TestWorldRemoveBody(t *testing.T) {
	w := NewWorld()
	obj, _ := newTestBody(rl.Vector3{Y: 1})
	w.AddBody(obj)
	if len(w.Bodies()) != 1 {
		t.Fatal("Body not added")
	}

	w.RemoveBody(obj)
	if len(w.Bodies()) != 0 {
		t.Error("Body not removed")
	}

	// Removing again is a no-op
	w.RemoveBody(obj)
}
