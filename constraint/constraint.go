package constraint

import (
	"github.com/akmonengine/minigolf/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Environment holds what a response needs beyond the two objects in contact.
type Environment struct {
	Gravity  mgl64.Vec4
	Recovery mgl64.Vec4 // where the ball is put back after an out-of-bounds contact
}

type Constraint interface {
	Solve(env Environment)
}

// Reflect mirrors v on the plane of normal n: the normal component is negated,
// the tangential component kept. Restitution is exactly 1.
func Reflect(v, n mgl64.Vec4) mgl64.Vec4 {
	normal := n.Mul(v.Dot(n))
	tangential := v.Sub(normal)
	return tangential.Sub(normal)
}

// NormalForce is the force cancelling the component of gravity along n.
func NormalForce(gravity, n mgl64.Vec4, mass float64) mgl64.Vec4 {
	return n.Mul(-gravity.Dot(n)).Mul(mass)
}

// Bounce reflects the body's velocity on n when it moves into the surface, then
// adds the normal force. n must be unit length and point from the surface toward the body.
func Bounce(body *actor.RigidBody, n, gravity mgl64.Vec4) {
	if body.GetVelocity().Dot(n) < 0 {
		body.SetVelocity(Reflect(body.GetVelocity(), n))
	}
	body.AddForce(NormalForce(gravity, n, body.GetMass()))
}

// Recover puts the body back at point with no velocity or acceleration.
func Recover(body *actor.RigidBody, point mgl64.Vec4) {
	body.SetPosition(point)
	body.ResetVelocity()
	body.ResetAcceleration()
}

// Release drops every accumulated force and leaves gravity alone, so the body falls.
func Release(body *actor.RigidBody, gravity mgl64.Vec4) {
	body.ResetForce()
	body.AddForce(gravity.Mul(body.GetMass()))
}
