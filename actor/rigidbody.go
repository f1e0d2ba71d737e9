package actor

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// MinThreshold is the magnitude under which force, torque, acceleration,
// velocity and angular velocity are snapped to zero during Update. Velocities
// are snapped again once damped.
const MinThreshold = 0.001

const (
	DefaultMass           = 1.0
	DefaultInertia        = 0.5
	DefaultLinearDamping  = 0.4
	DefaultAngularDamping = 0.4
)

// ErrInvalidState is returned when a body would be given a non-positive mass or inertia.
var ErrInvalidState = errors.New("invalid rigid body state")

type Material struct {
	mass    float64
	inertia float64 // isotropic, no tensor

	LinearDamping  float64 // [0, 1), decay per second
	AngularDamping float64 // [0, 1), decay per second
}

func (material Material) GetMass() float64 {
	return material.mass
}

func (material Material) GetInertia() float64 {
	return material.inertia
}

// RigidBody is a point mass with isotropic inertia, integrated once per frame.
// It is not safe for concurrent use: the owning object and the course step are
// its only writers.
type RigidBody struct {
	Transform Transform
	Material  Material

	// Offset of the geometric center from Position, used for collision centers.
	centerOfMass mgl64.Vec4

	velocity            mgl64.Vec4
	angularVelocity     mgl64.Vec4
	acceleration        mgl64.Vec4
	angularAcceleration mgl64.Vec4

	accumulatedForce  mgl64.Vec4
	accumulatedTorque mgl64.Vec4

	deltaTime float64
}

// NewRigidBody creates a body at rest with default damping.
// mass and inertia must be strictly positive.
func NewRigidBody(transform Transform, mass, inertia float64) (*RigidBody, error) {
	if err := checkPositive("mass", mass); err != nil {
		return nil, err
	}
	if err := checkPositive("inertia", inertia); err != nil {
		return nil, err
	}

	return &RigidBody{
		Transform: transform,
		Material: Material{
			mass:           mass,
			inertia:        inertia,
			LinearDamping:  DefaultLinearDamping,
			AngularDamping: DefaultAngularDamping,
		},
		centerOfMass: Point(0, 0, 0),
	}, nil
}

func checkPositive(name string, value float64) error {
	if !(value > 0) {
		return fmt.Errorf("%s must be positive, got %v: %w", name, value, ErrInvalidState)
	}
	return nil
}

// Update advances the body by dt seconds and consumes the accumulated force and torque.
func (rb *RigidBody) Update(dt float64) {
	rb.deltaTime = dt

	rb.acceleration = rb.accumulatedForce.Mul(1.0 / rb.Material.mass)
	alpha := rb.accumulatedTorque.Mul(1.0 / rb.Material.inertia)
	// Physics space to Euler space: (x, y, z) -> (z, -y, -x).
	rb.angularAcceleration = mgl64.Vec4{alpha.Z(), -alpha.Y(), -alpha.X(), alpha.W()}

	rb.ClearForces()

	clampSmall(&rb.accumulatedForce)
	clampSmall(&rb.accumulatedTorque)
	clampSmall(&rb.acceleration)
	clampSmall(&rb.velocity)
	clampSmall(&rb.angularVelocity)

	// ========== LINEAR ==========
	rb.velocity = rb.velocity.Add(rb.acceleration.Mul(dt))
	rb.velocity = rb.velocity.Mul(1.0 - rb.Material.LinearDamping*dt)
	clampSmall(&rb.velocity)
	rb.Transform.Position = rb.Transform.Position.Add(rb.velocity.Mul(dt))

	// ========== ANGULAR ==========
	rb.angularVelocity = rb.angularVelocity.Add(rb.angularAcceleration.Mul(dt))
	rb.angularVelocity = rb.angularVelocity.Mul(1.0 - rb.Material.AngularDamping*dt)
	clampSmall(&rb.angularVelocity)
	rb.Transform.Rotation = rb.Transform.Rotation.Add(rb.angularVelocity.Mul(dt))
}

func clampSmall(v *mgl64.Vec4) {
	if v.Len() < MinThreshold {
		*v = mgl64.Vec4{}
	}
}

// AddForce accumulates a force until the next Update.
func (rb *RigidBody) AddForce(force mgl64.Vec4) {
	rb.accumulatedForce = rb.accumulatedForce.Add(force)
}

// ApplyTorque accumulates a torque until the next Update.
func (rb *RigidBody) ApplyTorque(torque mgl64.Vec4) {
	rb.accumulatedTorque = rb.accumulatedTorque.Add(torque)
}

// ApplyTorqueAtPoint replaces the accumulated torque with (point - pivot) × force.
// Unlike ApplyTorque it does not add to previous torques.
func (rb *RigidBody) ApplyTorqueAtPoint(point, force mgl64.Vec4) {
	r := point.Sub(rb.Transform.Pivot)
	rb.accumulatedTorque = Cross(r, force)
}

func (rb *RigidBody) ClearForces() {
	rb.accumulatedForce = mgl64.Vec4{}
	rb.accumulatedTorque = mgl64.Vec4{}
}

func (rb *RigidBody) ResetForce()               { rb.accumulatedForce = mgl64.Vec4{} }
func (rb *RigidBody) ResetTorque()              { rb.accumulatedTorque = mgl64.Vec4{} }
func (rb *RigidBody) ResetAcceleration()        { rb.acceleration = mgl64.Vec4{} }
func (rb *RigidBody) ResetVelocity()            { rb.velocity = mgl64.Vec4{} }
func (rb *RigidBody) ResetAngularVelocity()     { rb.angularVelocity = mgl64.Vec4{} }
func (rb *RigidBody) ResetAngularAcceleration() { rb.angularAcceleration = mgl64.Vec4{} }

// SetMass fails with ErrInvalidState and keeps the previous mass when m <= 0.
func (rb *RigidBody) SetMass(m float64) error {
	if err := checkPositive("mass", m); err != nil {
		return err
	}
	rb.Material.mass = m
	return nil
}

// SetInertia fails with ErrInvalidState and keeps the previous inertia when i <= 0.
func (rb *RigidBody) SetInertia(i float64) error {
	if err := checkPositive("inertia", i); err != nil {
		return err
	}
	rb.Material.inertia = i
	return nil
}

func (rb *RigidBody) SetPosition(p mgl64.Vec4)            { rb.Transform.Position = p }
func (rb *RigidBody) SetRotation(r mgl64.Vec4)            { rb.Transform.Rotation = r }
func (rb *RigidBody) SetScale(s mgl64.Vec4)               { rb.Transform.Scale = s }
func (rb *RigidBody) SetPivot(p mgl64.Vec4)               { rb.Transform.Pivot = p }
func (rb *RigidBody) SetCenterOfMass(p mgl64.Vec4)        { rb.centerOfMass = p }
func (rb *RigidBody) SetVelocity(v mgl64.Vec4)            { rb.velocity = v }
func (rb *RigidBody) SetAngularVelocity(v mgl64.Vec4)     { rb.angularVelocity = v }
func (rb *RigidBody) SetAcceleration(a mgl64.Vec4)        { rb.acceleration = a }
func (rb *RigidBody) SetAngularAcceleration(a mgl64.Vec4) { rb.angularAcceleration = a }
func (rb *RigidBody) SetLinearDamping(d float64)          { rb.Material.LinearDamping = d }
func (rb *RigidBody) SetAngularDamping(d float64)         { rb.Material.AngularDamping = d }

func (rb *RigidBody) GetMass() float64                    { return rb.Material.mass }
func (rb *RigidBody) GetInertia() float64                 { return rb.Material.inertia }
func (rb *RigidBody) GetPosition() mgl64.Vec4             { return rb.Transform.Position }
func (rb *RigidBody) GetRotation() mgl64.Vec4             { return rb.Transform.Rotation }
func (rb *RigidBody) GetScale() mgl64.Vec4                { return rb.Transform.Scale }
func (rb *RigidBody) GetPivot() mgl64.Vec4                { return rb.Transform.Pivot }
func (rb *RigidBody) GetVelocity() mgl64.Vec4             { return rb.velocity }
func (rb *RigidBody) GetAngularVelocity() mgl64.Vec4      { return rb.angularVelocity }
func (rb *RigidBody) GetAcceleration() mgl64.Vec4         { return rb.acceleration }
func (rb *RigidBody) GetAngularAcceleration() mgl64.Vec4  { return rb.angularAcceleration }
func (rb *RigidBody) GetForce() mgl64.Vec4                { return rb.accumulatedForce }
func (rb *RigidBody) GetTorque() mgl64.Vec4               { return rb.accumulatedTorque }
func (rb *RigidBody) GetLinearDamping() float64           { return rb.Material.LinearDamping }
func (rb *RigidBody) GetAngularDamping() float64          { return rb.Material.AngularDamping }
func (rb *RigidBody) GetDeltaTime() float64               { return rb.deltaTime }

// GetCenterOfMass returns Position offset by the center-of-mass vector, as a point.
func (rb *RigidBody) GetCenterOfMass() mgl64.Vec4 {
	p := rb.Transform.Position
	c := rb.centerOfMass
	return Point(p.X()+c.X(), p.Y()+c.Y(), p.Z()+c.Z())
}

// GetFuturePosition returns the displacement velocity·dt of the last Update.
// It is not an absolute position: callers add it to a center.
func (rb *RigidBody) GetFuturePosition() mgl64.Vec4 {
	return rb.velocity.Mul(rb.deltaTime)
}

// Model returns the body's world matrix.
func (rb *RigidBody) Model() mgl64.Mat4 {
	return rb.Transform.Model()
}

// IsResting reports whether the body has no linear or angular velocity left.
func (rb *RigidBody) IsResting() bool {
	return rb.velocity.Len() == 0 && rb.angularVelocity.Len() == 0
}
