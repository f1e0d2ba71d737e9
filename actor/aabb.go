package actor

import "github.com/go-gl/mathgl/mgl64"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// ClosestPoint clamps point onto the box, component by component
func (a AABB) ClosestPoint(point mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(point.X(), a.Min.X(), a.Max.X()),
		mgl64.Clamp(point.Y(), a.Min.Y(), a.Max.Y()),
		mgl64.Clamp(point.Z(), a.Min.Z(), a.Max.Z()),
	}
}
