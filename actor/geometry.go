package actor

import "github.com/go-gl/mathgl/mgl64"

// NormalizeEpsilon is the magnitude under which a vector is considered degenerate.
const NormalizeEpsilon = 1e-6

// Up is the fallback normal for degenerate geometry.
var Up = Direction(0, 1, 0)

// Cross is the 3D cross product of two homogeneous vectors, returned as a direction.
func Cross(a, b mgl64.Vec4) mgl64.Vec4 {
	return a.Vec3().Cross(b.Vec3()).Vec4(0)
}

// SafeNormalize returns v scaled to unit length, or fallback when |v| < NormalizeEpsilon.
// The w component is ignored and the result is a direction.
func SafeNormalize(v mgl64.Vec4, fallback mgl64.Vec4) mgl64.Vec4 {
	v3 := v.Vec3()
	l := v3.Len()
	if l < NormalizeEpsilon {
		return fallback
	}
	return v3.Mul(1.0 / l).Vec4(0)
}

// ComputeRigidBodyCenter returns the centroid of a flat xyz vertex list as a point.
// An empty list yields the origin.
func ComputeRigidBodyCenter(vertices []float64) mgl64.Vec4 {
	count := len(vertices) / 3
	if count == 0 {
		return Point(0, 0, 0)
	}

	var sum mgl64.Vec3
	for i := 0; i+2 < len(vertices); i += 3 {
		sum = sum.Add(mgl64.Vec3{vertices[i], vertices[i+1], vertices[i+2]})
	}

	return sum.Mul(1.0 / float64(count)).Vec4(1)
}

// ComputePlaneNormal returns the unit normal of the first triangle (counter-clockwise)
// in a flat xyz vertex list. Fewer than three vertices, or a degenerate triangle, yield Up.
func ComputePlaneNormal(vertices []float64) mgl64.Vec4 {
	if len(vertices) < 9 {
		return Up
	}

	a := mgl64.Vec3{vertices[0], vertices[1], vertices[2]}
	b := mgl64.Vec3{vertices[3], vertices[4], vertices[5]}
	c := mgl64.Vec3{vertices[6], vertices[7], vertices[8]}

	n := b.Sub(a).Cross(c.Sub(a))
	return SafeNormalize(n.Vec4(0), Up)
}

// UnitCubeVertices are the eight corners of a unit cube centered on the origin.
var UnitCubeVertices = []float64{
	-0.5, 0.5, 0.5,
	-0.5, -0.5, 0.5,
	0.5, -0.5, 0.5,
	0.5, 0.5, 0.5,
	-0.5, 0.5, -0.5,
	-0.5, -0.5, -0.5,
	0.5, -0.5, -0.5,
	0.5, 0.5, -0.5,
}

// UnitQuadVertices is a unit square in the XZ plane, wound so its normal points +Y.
var UnitQuadVertices = []float64{
	-0.5, 0, -0.5,
	-0.5, 0, 0.5,
	0.5, 0, 0.5,
	0.5, 0, -0.5,
}
