package components

import (
	"math"

	"dicetable/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ThrowController is a stationary first-person look controller. The player
// stands at the table rail; only the view direction changes, and the look
// direction is what orients the throw.
type ThrowController struct {
	engine.BaseComponent
	Yaw       float32
	Pitch     float32
	LookSpeed float32
	EyeHeight float32
}

func NewThrowController() *ThrowController {
	return &ThrowController{
		Yaw:       0.0,
		Pitch:     -25.0,
		LookSpeed: 0.1,
		EyeHeight: 1.7,
	}
}

func (t *ThrowController) Update(deltaTime float32) {
	mouseDelta := rl.GetMouseDelta()
	t.Yaw += mouseDelta.X * t.LookSpeed
	t.Pitch -= mouseDelta.Y * t.LookSpeed

	// Clamp pitch so the view can't flip over
	if t.Pitch > 89 {
		t.Pitch = 89
	}
	if t.Pitch < -89 {
		t.Pitch = -89
	}
}

// GetLookDirection implements engine.LookProvider.
func (t *ThrowController) GetLookDirection() (x, y, z float32) {
	yawRad := float64(t.Yaw) * math.Pi / 180
	pitchRad := float64(t.Pitch) * math.Pi / 180
	x = float32(math.Cos(yawRad) * math.Cos(pitchRad))
	y = float32(math.Sin(pitchRad))
	z = float32(math.Sin(yawRad) * math.Cos(pitchRad))
	return
}

// GetEyeHeight implements engine.LookProvider.
func (t *ThrowController) GetEyeHeight() float32 {
	return t.EyeHeight
}

// Forward returns the look direction as a vector.
func (t *ThrowController) Forward() rl.Vector3 {
	x, y, z := t.GetLookDirection()
	return rl.Vector3{X: x, Y: y, Z: z}
}
