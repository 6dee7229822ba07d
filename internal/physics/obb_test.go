package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestOBBIntersection(t *testing.T) {
	a := NewAABBasOBB(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	b := NewAABBasOBB(rl.Vector3{X: 0.5}, rl.Vector3{X: 1, Y: 1, Z: 1})
	c := NewAABBasOBB(rl.Vector3{X: 3}, rl.Vector3{X: 1, Y: 1, Z: 1})

	if !a.IntersectsOBB(b) {
		t.Error("Overlapping boxes should intersect")
	}
	if a.IntersectsOBB(c) {
		t.Error("Separated boxes should not intersect")
	}
}

func TestOBBRotatedIntersection(t *testing.T) {
	// Two unit boxes 1.2 apart: separated when axis-aligned, but a 45 degree
	// yaw stretches the diagonal to ~1.41 and they touch
	a := NewAABBasOBB(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	aligned := NewOBB(rl.Vector3{X: 1.2}, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Vector3{})
	rotated := NewOBB(rl.Vector3{X: 1.2}, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Vector3{Y: 45})

	if a.IntersectsOBB(aligned) {
		t.Error("Axis-aligned boxes 1.2 apart should not intersect")
	}
	if !a.IntersectsOBB(rotated) {
		t.Error("The rotated box's corner should reach into the other box")
	}
}

func TestResolveOBBPushDirection(t *testing.T) {
	// Box a slightly inside the top of box b: minimal push is straight up
	ground := NewAABBasOBB(rl.Vector3{Y: -0.5}, rl.Vector3{X: 10, Y: 1, Z: 10})
	box := NewAABBasOBB(rl.Vector3{Y: 0.4}, rl.Vector3{X: 1, Y: 1, Z: 1})

	mtv := box.ResolveOBB(ground)
	if mtv.Y <= 0 {
		t.Errorf("Push should point up out of the ground, got %v", mtv)
	}
	if absf(mtv.X) > 0.0001 || absf(mtv.Z) > 0.0001 {
		t.Errorf("Vertical contact should have no lateral push, got %v", mtv)
	}
	// Penetration is 0.1: box bottom at -0.1, ground top at 0
	if absf(mtv.Y-0.1) > 0.001 {
		t.Errorf("Expected push of ~0.1, got %v", mtv.Y)
	}
}

func TestResolveOBBNoOverlap(t *testing.T) {
	a := NewAABBasOBB(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	b := NewAABBasOBB(rl.Vector3{X: 5}, rl.Vector3{X: 1, Y: 1, Z: 1})

	mtv := a.ResolveOBB(b)
	if mtv != rl.Vector3Zero() {
		t.Errorf("No overlap should give a zero MTV, got %v", mtv)
	}
}
