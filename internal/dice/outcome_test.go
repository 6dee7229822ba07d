package dice

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestFaceUpAllSixFaces(t *testing.T) {
	cases := []struct {
		rotation rl.Vector3
		want     int
	}{
		{rl.Vector3{}, 1},                   // identity, +Y up
		{rl.Vector3{X: -90}, 2},             // +Z rolled up
		{rl.Vector3{Z: 90}, 3},              // +X rolled up
		{rl.Vector3{Z: -90}, 4},             // -X rolled up
		{rl.Vector3{X: 90}, 5},              // -Z rolled up
		{rl.Vector3{X: 180}, 6},             // upside down
		{rl.Vector3{X: 360, Y: 720}, 1},   // full turns
		{rl.Vector3{X: 180, Y: 180}, 6},   // composes to a half turn about Z
	}

	for _, c := range cases {
		if got := FaceUp(c.rotation); got != c.want {
			t.Errorf("FaceUp(%v) = %d, want %d", c.rotation, got, c.want)
		}
	}
}

func TestFaceUpYawInvariant(t *testing.T) {
	// Spinning around the vertical axis never changes the up face
	for _, yaw := range []float32{0, 30, 90, 145, 270} {
		if got := FaceUp(rl.Vector3{Y: yaw}); got != 1 {
			t.Errorf("FaceUp with yaw %v = %d, want 1", yaw, got)
		}
	}
}

func TestFaceUpTieBreaksToSmallestValue(t *testing.T) {
	// 45 degrees about X balances the die on the edge between faces 1 and 5
	if got := FaceUp(rl.Vector3{X: 45}); got != 1 {
		t.Errorf("Edge rest between 1 and 5 should read 1, got %d", got)
	}

	// Between faces 5 and 6
	if got := FaceUp(rl.Vector3{X: 135}); got != 5 {
		t.Errorf("Edge rest between 5 and 6 should read 5, got %d", got)
	}

	// Ambiguous orientations always read the same
	for i := 0; i < 5; i++ {
		if got := FaceUp(rl.Vector3{X: 45}); got != 1 {
			t.Fatalf("Tie-break should be deterministic, got %d on read %d", got, i)
		}
	}
}

func TestStandardFacesLayout(t *testing.T) {
	// Opposite faces of a standard die sum to seven
	sums := map[int]int{1: 6, 2: 5, 3: 4}
	for low, high := range sums {
		var lowN, highN rl.Vector3
		for _, f := range StandardFaces {
			if f.Value == low {
				lowN = f.Normal
			}
			if f.Value == high {
				highN = f.Normal
			}
		}
		opposite := rl.Vector3Scale(lowN, -1)
		if opposite != highN {
			t.Errorf("Faces %d and %d should be opposite, normals %v and %v", low, high, lowN, highN)
		}
	}

	for i := 1; i < len(StandardFaces); i++ {
		if StandardFaces[i].Value <= StandardFaces[i-1].Value {
			t.Fatal("StandardFaces must be ordered by value")
		}
	}
}
