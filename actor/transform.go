package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform places a body in world space.
// Rotation holds Euler angles (pitch, yaw, roll) in radians, applied Z·Y·X
// around Pivot. Points carry w=1, directions w=0.
type Transform struct {
	Position mgl64.Vec4
	Rotation mgl64.Vec4
	Scale    mgl64.Vec4
	Pivot    mgl64.Vec4
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: Point(0, 0, 0),
		Rotation: mgl64.Vec4{},
		Scale:    mgl64.Vec4{1, 1, 1, 1},
		Pivot:    Point(0, 0, 0),
	}
}

// Model composes the world matrix T(position) · T(pivot) · Rz · Ry · Rx · T(-pivot) · S(scale).
func (t Transform) Model() mgl64.Mat4 {
	translate := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	toPivot := mgl64.Translate3D(t.Pivot.X(), t.Pivot.Y(), t.Pivot.Z())
	fromPivot := mgl64.Translate3D(-t.Pivot.X(), -t.Pivot.Y(), -t.Pivot.Z())

	rotation := mgl64.HomogRotate3DZ(t.Rotation.Z()).
		Mul4(mgl64.HomogRotate3DY(t.Rotation.Y())).
		Mul4(mgl64.HomogRotate3DX(t.Rotation.X()))

	scale := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(toPivot).Mul4(rotation).Mul4(fromPivot).Mul4(scale)
}

// Point builds a homogeneous point (w=1).
func Point(x, y, z float64) mgl64.Vec4 {
	return mgl64.Vec4{x, y, z, 1}
}

// Direction builds a homogeneous direction (w=0).
func Direction(x, y, z float64) mgl64.Vec4 {
	return mgl64.Vec4{x, y, z, 0}
}
