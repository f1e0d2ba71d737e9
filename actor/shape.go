package actor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeType represents the type of collision shape
type ShapeType int

const (
	ShapeTypeSphere ShapeType = iota
	ShapeTypeBox
	ShapeTypePlane
	ShapeTypeCylinder
)

func (s ShapeType) String() string {
	switch s {
	case ShapeTypeSphere:
		return "sphere"
	case ShapeTypeBox:
		return "box"
	case ShapeTypePlane:
		return "plane"
	case ShapeTypeCylinder:
		return "cylinder"
	default:
		return fmt.Sprintf("ShapeType(%d)", int(s))
	}
}

// Object is a physical game object: a rigid body plus the geometric
// parameters of its shape. Which parameters are meaningful depends on Shape:
//
//	Sphere:   Radius
//	Plane:    Normal
//	Box:      Width, Height, Depth (model space), Normal (last contact normal)
//	Cylinder: Radius, Height, infinite Y axis
type Object struct {
	Name  string
	Shape ShapeType
	Body  *RigidBody

	Radius float64
	Width  float64
	Height float64
	Depth  float64
	Normal mgl64.Vec4

	// Model-space vertices as flat xyz triples, if the object has geometry.
	Vertices []float64
}

// NewBall creates a sphere of the given radius and mass at position.
func NewBall(name string, position mgl64.Vec4, radius, mass float64) (*Object, error) {
	body, err := newBodyAt(position, mass)
	if err != nil {
		return nil, fmt.Errorf("ball %q: %w", name, err)
	}

	return &Object{
		Name:   name,
		Shape:  ShapeTypeSphere,
		Body:   body,
		Radius: radius,
	}, nil
}

// NewPlane creates a plane through center. The normal is normalized, with Up as fallback.
func NewPlane(name string, center, normal mgl64.Vec4) *Object {
	return &Object{
		Name:   name,
		Shape:  ShapeTypePlane,
		Body:   newStaticBody(center),
		Normal: SafeNormalize(normal, Up),
	}
}

// NewBox creates a box centered on center with the given model-space dimensions.
func NewBox(name string, center mgl64.Vec4, width, height, depth float64) *Object {
	return &Object{
		Name:     name,
		Shape:    ShapeTypeBox,
		Body:     newStaticBody(center),
		Width:    width,
		Height:   height,
		Depth:    depth,
		Normal:   Up,
		Vertices: scaledVertices(UnitCubeVertices, width, height, depth),
	}
}

// NewHole creates a vertical cylinder centered on center.
func NewHole(name string, center mgl64.Vec4, radius, height float64) *Object {
	return &Object{
		Name:   name,
		Shape:  ShapeTypeCylinder,
		Body:   newStaticBody(center),
		Radius: radius,
		Height: height,
	}
}

func newBodyAt(position mgl64.Vec4, mass float64) (*RigidBody, error) {
	transform := NewTransform()
	transform.Position = position
	return NewRigidBody(transform, mass, DefaultInertia)
}

// Obstacles never integrate, so the default mass cannot fail validation.
func newStaticBody(position mgl64.Vec4) *RigidBody {
	body, _ := newBodyAt(position, DefaultMass)
	return body
}

func scaledVertices(vertices []float64, sx, sy, sz float64) []float64 {
	out := make([]float64, len(vertices))
	for i := 0; i+2 < len(vertices); i += 3 {
		out[i] = vertices[i] * sx
		out[i+1] = vertices[i+1] * sy
		out[i+2] = vertices[i+2] * sz
	}
	return out
}

// Center is the world-space center used by collision tests.
func (o *Object) Center() mgl64.Vec4 {
	return o.Body.GetCenterOfMass()
}

// SetGeometry stores model-space vertices and moves the center of mass to their centroid.
func (o *Object) SetGeometry(vertices []float64) {
	o.Vertices = vertices
	o.Body.SetCenterOfMass(ComputeRigidBodyCenter(vertices))
}

// ComputeNormals derives a plane's world normal from its geometry and current transform.
// Objects without geometry keep their normal.
func (o *Object) ComputeNormals() {
	if len(o.Vertices) < 9 {
		return
	}

	// Normals go through the inverse transpose, so non-uniform scale keeps them perpendicular.
	normalMatrix := o.Body.Model().Mat3().Inv().Transpose()
	local := ComputePlaneNormal(o.Vertices)
	world := normalMatrix.Mul3x1(local.Vec3()).Vec4(0)
	o.Normal = SafeNormalize(world, o.Normal)
}

// LocalBounds is the box extent in model space.
func (o *Object) LocalBounds() AABB {
	half := mgl64.Vec3{o.Width * 0.5, o.Height * 0.5, o.Depth * 0.5}
	return AABB{Min: half.Mul(-1), Max: half}
}
