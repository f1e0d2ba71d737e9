// Package collisor holds the narrow-phase tests between the ball (a sphere)
// and every obstacle shape. The tests are stateless and never move the ball;
// SphereToCube writes the contact normal back onto the cube.
package collisor

import (
	"math"

	"github.com/akmonengine/minigolf/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// PlaneEpsilon is the contact slack for planes; thin planes tunnel without it.
	PlaneEpsilon = 0.1
	// CubeEpsilon is the contact slack for boxes.
	CubeEpsilon = 0.01
	// CubeNormalEpsilon is the distance under which the cube normal falls back to Up.
	CubeNormalEpsilon = 1e-4
)

// SphereToPlane tests the ball's look-ahead center against an infinite plane.
func SphereToPlane(ball, plane *actor.Object) bool {
	return math.Abs(PlaneDistance(LookAhead(ball), plane)) <= ball.Radius+PlaneEpsilon
}

// PlaneDistance is the signed distance from point to plane along the plane normal.
func PlaneDistance(point mgl64.Vec4, plane *actor.Object) float64 {
	return point.Sub(plane.Center()).Dot(plane.Normal)
}

// LookAhead is the ball center advanced by its last frame displacement.
func LookAhead(ball *actor.Object) mgl64.Vec4 {
	return ball.Center().Add(ball.Body.GetFuturePosition())
}

// SphereToCube tests the ball's current center against the cube, an AABB in
// its own model space. The normal from the closest point to the ball center is
// stored in cube.Normal, or actor.Up when the center lies on the surface or inside.
func SphereToCube(ball, cube *actor.Object) bool {
	model := cube.Body.Model()
	center := ball.Center()

	local := model.Inv().Mul4x1(center)
	closestLocal := cube.LocalBounds().ClosestPoint(local.Vec3())
	closest := model.Mul4x1(closestLocal.Vec4(1))

	d := center.Sub(closest).Vec3()
	distance := d.Len()

	if distance > CubeNormalEpsilon {
		cube.Normal = d.Mul(1.0 / distance).Vec4(0)
	} else {
		cube.Normal = actor.Up
	}

	return distance <= ball.Radius+CubeEpsilon
}

// SphereToCylinder tests the ball against an infinite vertical column, in the XZ plane only.
func SphereToCylinder(ball, cylinder *actor.Object) bool {
	return HorizontalDistance(ball.Center(), cylinder.Center()) <= ball.Radius+cylinder.Radius
}

// SphereToCylinderBottom reports whether the ball has sunk into the hole: it
// touches the column, its center is below the cylinder bottom, and the center
// lies within the hole's own radius.
func SphereToCylinderBottom(ball, cylinder *actor.Object) bool {
	if !SphereToCylinder(ball, cylinder) {
		return false
	}

	center := ball.Center()
	if center.Y() >= Bottom(cylinder) {
		return false
	}

	return HorizontalDistance(center, cylinder.Center()) <= cylinder.Radius
}

// InsideRadius reports whether the ball center is within the cylinder's horizontal radius.
func InsideRadius(ball, cylinder *actor.Object) bool {
	return HorizontalDistance(ball.Center(), cylinder.Center()) <= cylinder.Radius
}

// Bottom is the Y coordinate of the cylinder's lower cap.
func Bottom(cylinder *actor.Object) float64 {
	return cylinder.Center().Y() - cylinder.Height/2
}

// SphereToSphere tests two balls using their current centers.
func SphereToSphere(a, b *actor.Object) bool {
	return a.Center().Sub(b.Center()).Vec3().Len() <= a.Radius+b.Radius
}

// HorizontalDistance is the distance between a and b projected on the XZ plane.
func HorizontalDistance(a, b mgl64.Vec4) float64 {
	return mgl64.Vec2{a.X() - b.X(), a.Z() - b.Z()}.Len()
}

// Collide dispatches on the obstacle's shape. Cylinders use the column test;
// callers wanting the sink condition call SphereToCylinderBottom.
func Collide(ball, obstacle *actor.Object) bool {
	switch obstacle.Shape {
	case actor.ShapeTypePlane:
		return SphereToPlane(ball, obstacle)
	case actor.ShapeTypeBox:
		return SphereToCube(ball, obstacle)
	case actor.ShapeTypeCylinder:
		return SphereToCylinder(ball, obstacle)
	case actor.ShapeTypeSphere:
		return SphereToSphere(ball, obstacle)
	default:
		return false
	}
}
