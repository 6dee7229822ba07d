package components

import (
	"dicetable/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Rigidbody struct {
	engine.BaseComponent
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // degrees per second on each axis
	Mass            float32
	Bounciness      float32 // 0 = no bounce, 1 = perfect bounce
	Friction        float32 // 0 = ice, 1 = stops immediately
	LinearDamping   float32 // drag rate, 1/s
	AngularDamping  float32 // rotational drag rate, 1/s
	UseGravity      bool
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Velocity:        rl.Vector3{},
		AngularVelocity: rl.Vector3{},
		Mass:            1.0,
		Bounciness:      0.5,
		Friction:        0.1,
		LinearDamping:   0,
		AngularDamping:  0,
		UseGravity:      true,
	}
}

// ApplyImpulse adds an instantaneous change of linear momentum.
func (r *Rigidbody) ApplyImpulse(impulse rl.Vector3) {
	r.Velocity = rl.Vector3Add(r.Velocity, rl.Vector3Scale(impulse, 1/r.Mass))
}

// ApplyTorqueImpulse adds an instantaneous change of angular momentum,
// in degrees per second.
func (r *Rigidbody) ApplyTorqueImpulse(impulse rl.Vector3) {
	r.AngularVelocity = rl.Vector3Add(r.AngularVelocity, rl.Vector3Scale(impulse, 1/r.Mass))
}

// Speed returns the magnitude of the linear velocity.
func (r *Rigidbody) Speed() float32 {
	return rl.Vector3Length(r.Velocity)
}

// AngularSpeed returns the magnitude of the angular velocity in deg/s.
func (r *Rigidbody) AngularSpeed() float32 {
	return rl.Vector3Length(r.AngularVelocity)
}
