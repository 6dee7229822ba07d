package components

import (
	"dicetable/internal/engine"
)

// Surface carries the contact material of a static collider (table felt,
// cushion walls). Dynamic bodies keep their material on the Rigidbody.
type Surface struct {
	engine.BaseComponent
	Restitution float32
	Friction    float32
}

func NewSurface(restitution, friction float32) *Surface {
	return &Surface{
		Restitution: restitution,
		Friction:    friction,
	}
}
