package dice

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Face maps a die value to its outward normal in the die's local space.
type Face struct {
	Value  int
	Normal rl.Vector3
}

// StandardFaces is a right-handed die layout with opposite faces summing
// to seven. Ordered by value, which FaceUp relies on for tie-breaking.
var StandardFaces = [6]Face{
	{Value: 1, Normal: rl.Vector3{X: 0, Y: 1, Z: 0}},
	{Value: 2, Normal: rl.Vector3{X: 0, Y: 0, Z: 1}},
	{Value: 3, Normal: rl.Vector3{X: 1, Y: 0, Z: 0}},
	{Value: 4, Normal: rl.Vector3{X: -1, Y: 0, Z: 0}},
	{Value: 5, Normal: rl.Vector3{X: 0, Y: 0, Z: -1}},
	{Value: 6, Normal: rl.Vector3{X: 0, Y: -1, Z: 0}},
}

// faceEpsilon is the dot-product band inside which two faces count as tied
// (edge or corner rest, ~45 degrees off).
const faceEpsilon = 0.001

// FaceUp returns the value of the face pointing up for a die at the given
// Euler rotation (degrees, X-Y-Z order). Ties within faceEpsilon of the
// best dot product resolve to the smallest face value, so an ambiguous
// orientation always reads the same.
func FaceUp(rotation rl.Vector3) int {
	rotX := rl.MatrixRotateX(rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rotation.Z * rl.Deg2rad)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	var dots [6]float32
	best := float32(-2)
	for i, face := range StandardFaces {
		world := rl.Vector3Transform(face.Normal, rotMatrix)
		dots[i] = world.Y // dot with world up
		if dots[i] > best {
			best = dots[i]
		}
	}

	// StandardFaces is ordered by value: the first face inside the epsilon
	// band is the smallest tied value.
	for i, face := range StandardFaces {
		if dots[i] >= best-faceEpsilon {
			return face.Value
		}
	}
	return StandardFaces[0].Value
}

// Outcome is the result of one completed throw. Immutable once emitted.
type Outcome struct {
	Die0 int
	Die1 int

	// Forced marks a timeout-forced settle (degraded read) as opposed to a
	// clean one.
	Forced bool
}
