package physics

import (
	"dicetable/internal/components"
	"dicetable/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Contact torque factor converting a contact impulse at a box corner into
// deg/s of spin. Tuned against dice-sized boxes.
const contactTorqueScale = 300.0

// World is a small CPU rigid-body world: a handful of dynamic boxes inside
// static box geometry. Bodies are kept in insertion order and all pair
// iteration is over slices, so stepping with a fixed dt is deterministic.
type World struct {
	Gravity rl.Vector3
	bodies  []*engine.GameObject // dynamic rigidbodies
	statics []*engine.GameObject // no rigidbody (table surface, walls)
}

func NewWorld() *World {
	return &World{
		Gravity: rl.Vector3{X: 0, Y: -20.0, Z: 0},
		bodies:  make([]*engine.GameObject, 0),
		statics: make([]*engine.GameObject, 0),
	}
}

func (w *World) AddBody(g *engine.GameObject) {
	w.bodies = append(w.bodies, g)
}

func (w *World) AddStatic(g *engine.GameObject) {
	w.statics = append(w.statics, g)
}

func (w *World) RemoveBody(g *engine.GameObject) {
	for i, obj := range w.bodies {
		if obj == g {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

func (w *World) Bodies() []*engine.GameObject {
	return w.bodies
}

func (w *World) Statics() []*engine.GameObject {
	return w.statics
}

// Step advances the simulation by one fixed timestep.
func (w *World) Step(deltaTime float32) {
	// 1. Apply gravity, integrate, damp
	for _, obj := range w.bodies {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil {
			continue
		}

		if rb.UseGravity {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(w.Gravity, deltaTime))
		}

		obj.Transform.Position = rl.Vector3Add(
			obj.Transform.Position,
			rl.Vector3Scale(rb.Velocity, deltaTime),
		)
		obj.Transform.Rotation = rl.Vector3Add(
			obj.Transform.Rotation,
			rl.Vector3Scale(rb.AngularVelocity, deltaTime),
		)

		// Rapier-style damping: v' = v / (1 + c*dt)
		if rb.LinearDamping > 0 {
			rb.Velocity = rl.Vector3Scale(rb.Velocity, 1/(1+rb.LinearDamping*deltaTime))
		}
		if rb.AngularDamping > 0 {
			rb.AngularVelocity = rl.Vector3Scale(rb.AngularVelocity, 1/(1+rb.AngularDamping*deltaTime))
		}
	}

	// 2. Dynamic vs dynamic
	for i := 0; i < len(w.bodies); i++ {
		for j := i + 1; j < len(w.bodies); j++ {
			w.resolveDynamic(w.bodies[i], w.bodies[j])
		}
	}

	// 3. Dynamic vs static
	for _, obj := range w.bodies {
		for _, static := range w.statics {
			w.resolveStatic(obj, static)
		}
	}
}

func (w *World) resolveDynamic(a, b *engine.GameObject) {
	rbA := engine.GetComponent[*components.Rigidbody](a)
	rbB := engine.GetComponent[*components.Rigidbody](b)
	boxA := engine.GetComponent[*components.BoxCollider](a)
	boxB := engine.GetComponent[*components.BoxCollider](b)
	if rbA == nil || rbB == nil || boxA == nil || boxB == nil {
		return
	}

	obbA := NewOBB(boxA.GetCenter(), boxA.Size, a.Transform.Rotation)
	obbB := NewOBB(boxB.GetCenter(), boxB.Size, b.Transform.Rotation)

	pushOut := obbA.ResolveOBB(obbB)
	if pushOut.X == 0 && pushOut.Y == 0 && pushOut.Z == 0 {
		return
	}

	// Split the push based on mass ratio
	totalMass := rbA.Mass + rbB.Mass
	ratioA := rbB.Mass / totalMass
	ratioB := rbA.Mass / totalMass

	a.Transform.Position = rl.Vector3Add(a.Transform.Position, rl.Vector3Scale(pushOut, ratioA))
	b.Transform.Position = rl.Vector3Subtract(b.Transform.Position, rl.Vector3Scale(pushOut, ratioB))

	pushLen := rl.Vector3Length(pushOut)
	if pushLen < 0.0001 {
		return
	}
	normal := rl.Vector3Scale(pushOut, 1/pushLen)

	relVel := rl.Vector3Subtract(rbA.Velocity, rbB.Velocity)
	velAlongNormal := rl.Vector3DotProduct(relVel, normal)

	// Only resolve if objects are moving toward each other
	if velAlongNormal > 0 {
		return
	}

	e := (rbA.Bounciness + rbB.Bounciness) / 2

	j := -(1 + e) * velAlongNormal
	j /= (1/rbA.Mass + 1/rbB.Mass)

	impulse := rl.Vector3Scale(normal, j)
	rbA.Velocity = rl.Vector3Add(rbA.Velocity, rl.Vector3Scale(impulse, 1/rbA.Mass))
	rbB.Velocity = rl.Vector3Subtract(rbB.Velocity, rl.Vector3Scale(impulse, 1/rbB.Mass))

	// Contact torque: contact point approximated on the face along the normal
	halfA := rl.Vector3{X: boxA.Size.X / 2, Y: boxA.Size.Y / 2, Z: boxA.Size.Z / 2}
	halfB := rl.Vector3{X: boxB.Size.X / 2, Y: boxB.Size.Y / 2, Z: boxB.Size.Z / 2}
	rA := contactPoint(halfA, rl.Vector3Scale(normal, -1))
	rB := contactPoint(halfB, normal)

	torqueA := cross(rA, impulse)
	torqueB := cross(rB, rl.Vector3Scale(impulse, -1))
	rbA.AngularVelocity = rl.Vector3Add(rbA.AngularVelocity, rl.Vector3Scale(torqueA, contactTorqueScale/rbA.Mass))
	rbB.AngularVelocity = rl.Vector3Add(rbB.AngularVelocity, rl.Vector3Scale(torqueB, contactTorqueScale/rbB.Mass))
}

func (w *World) resolveStatic(obj, static *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](obj)
	colObj := engine.GetComponent[*components.BoxCollider](obj)
	colStatic := engine.GetComponent[*components.BoxCollider](static)
	if rb == nil || colObj == nil || colStatic == nil {
		return
	}

	obbObj := NewOBB(colObj.GetCenter(), colObj.Size, obj.Transform.Rotation)
	obbStatic := NewOBB(colStatic.GetCenter(), colStatic.Size, static.Transform.Rotation)

	pushOut := obbObj.ResolveOBB(obbStatic)
	if pushOut.X == 0 && pushOut.Y == 0 && pushOut.Z == 0 {
		return
	}

	// Push fully out (static doesn't move)
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, pushOut)

	pushLen := rl.Vector3Length(pushOut)
	if pushLen < 0.0001 {
		return
	}
	normal := rl.Vector3Scale(pushOut, 1/pushLen)

	velAlongNormal := rl.Vector3DotProduct(rb.Velocity, normal)
	if velAlongNormal >= 0 {
		return
	}

	// Combine the body material with the static's Surface material
	e := rb.Bounciness
	friction := rb.Friction
	if mat := engine.GetComponent[*components.Surface](static); mat != nil {
		e = (rb.Bounciness + mat.Restitution) / 2
		friction = (rb.Friction + mat.Friction) / 2
	}

	// Remove the full approach velocity plus the bounce fraction, so a
	// low-restitution body comes to rest instead of jittering on the contact
	reflect := rl.Vector3Scale(normal, -(1+e)*velAlongNormal)
	rb.Velocity = rl.Vector3Add(rb.Velocity, reflect)

	// Friction perpendicular to the contact
	rb.Velocity.X *= (1 - friction)
	rb.Velocity.Z *= (1 - friction)

	// Contact torque
	half := rl.Vector3{X: colObj.Size.X / 2, Y: colObj.Size.Y / 2, Z: colObj.Size.Z / 2}
	r := contactPoint(half, rl.Vector3Scale(normal, -1))
	torque := cross(r, reflect)
	rb.AngularVelocity = rl.Vector3Add(rb.AngularVelocity, rl.Vector3Scale(torque, contactTorqueScale/rb.Mass))

	// Ground contact also drags spin down
	if normal.Y > 0.5 {
		rb.AngularVelocity.X *= (1 - friction*0.5)
		rb.AngularVelocity.Z *= (1 - friction*0.5)
	}
}

// contactPoint estimates the contact point on a box surface, in body space,
// given the push direction.
func contactPoint(halfSize, pushDir rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: -pushDir.X * halfSize.X,
		Y: -pushDir.Y * halfSize.Y,
		Z: -pushDir.Z * halfSize.Z,
	}
}

func cross(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}
