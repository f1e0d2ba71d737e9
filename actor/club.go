package actor

import "github.com/go-gl/mathgl/mgl64"

const (
	DefaultClubLength = 1.0
	clubThickness     = 0.08
)

// Club is the putter. The club and its collision box hold the same *RigidBody:
// moving or rotating one moves the other.
//
// In model space the shaft is centered on the origin, the grip sits at
// +Length/2 and doubles as the rotation pivot, the head at -Length/2.
type Club struct {
	Body   *RigidBody
	Box    *Object
	Length float64
}

// NewClub creates a club hanging from grip.
func NewClub(grip mgl64.Vec4, length float64) (*Club, error) {
	transform := NewTransform()
	transform.Position = Point(grip.X(), grip.Y()-length*0.5, grip.Z())
	transform.Pivot = Point(0, length*0.5, 0)

	body, err := NewRigidBody(transform, DefaultMass, DefaultInertia)
	if err != nil {
		return nil, err
	}

	box := &Object{
		Name:   "club",
		Shape:  ShapeTypeBox,
		Body:   body,
		Width:  clubThickness,
		Height: length,
		Depth:  clubThickness,
		Normal: Up,
	}
	box.SetGeometry(scaledVertices(UnitCubeVertices, clubThickness, length, clubThickness))

	return &Club{Body: body, Box: box, Length: length}, nil
}

// HeadLocal is the club head in model space.
func (c *Club) HeadLocal() mgl64.Vec4 {
	return Point(0, -c.Length*0.5, 0)
}

// HeadWorld is the club head in world space.
func (c *Club) HeadWorld() mgl64.Vec4 {
	return c.Body.Model().Mul4x1(c.HeadLocal())
}

// Swing sets the torque produced by force pushing on the club head.
// It overwrites any torque accumulated this frame.
func (c *Club) Swing(force mgl64.Vec4) {
	c.Body.ApplyTorqueAtPoint(c.HeadLocal(), force)
}

// PlaceAt moves the grip to grip without changing the club's rotation.
func (c *Club) PlaceAt(grip mgl64.Vec4) {
	c.Body.SetPosition(Point(grip.X(), grip.Y()-c.Length*0.5, grip.Z()))
}

// Rest stops the club and returns it to hanging straight down.
func (c *Club) Rest() {
	c.Body.ResetTorque()
	c.Body.ResetAngularVelocity()
	c.Body.ResetAngularAcceleration()
	c.Body.SetRotation(mgl64.Vec4{})
}
