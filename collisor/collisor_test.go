package collisor

import (
	"math"
	"testing"

	"github.com/akmonengine/minigolf/actor"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func newBall(t *testing.T, position mgl64.Vec4, radius float64) *actor.Object {
	t.Helper()
	ball, err := actor.NewBall("ball", position, radius, 0.2)
	require.NoError(t, err)
	return ball
}

func assertVec4(t *testing.T, want, got mgl64.Vec4) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, tolerance), "want %v, got %v", want, got)
}

func TestSphereToPlane(t *testing.T) {
	floor := actor.NewPlane("floor", actor.Point(0, 0, 0), actor.Up)

	tests := []struct {
		name   string
		height float64
		want   bool
	}{
		{"touching at radius", 0.1, true},
		{"inside epsilon", 0.19, true},
		{"just outside epsilon", 0.21, false},
		{"radius plus one", 1.1, false},
		{"center on plane", 0, true},
		{"below plane within slack", -0.15, true},
		{"far below plane", -2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := newBall(t, actor.Point(3, tt.height, -7), 0.1)
			assert.Equal(t, tt.want, SphereToPlane(ball, floor))
		})
	}
}

func TestSphereToPlane_IgnoresPlaneBounds(t *testing.T) {
	wall := actor.NewPlane("wall", actor.Point(5, 0, 0), actor.Direction(-1, 0, 0))
	ball := newBall(t, actor.Point(4.9, 1000, -1000), 0.1)

	assert.True(t, SphereToPlane(ball, wall))
}

func TestSphereToPlane_UsesLookAhead(t *testing.T) {
	floor := actor.NewPlane("floor", actor.Point(0, 0, 0), actor.Up)
	ball := newBall(t, actor.Point(0, 0.6, 0), 0.1)
	ball.Body.SetLinearDamping(0)
	ball.Body.SetVelocity(actor.Direction(0, -3, 0))
	ball.Body.Update(0.1)

	// Current center is at 0.3, outside radius+epsilon; the look-ahead center is at 0.
	require.InDelta(t, 0.3, ball.Center().Y(), tolerance)
	assert.InDelta(t, 0.0, LookAhead(ball).Y(), tolerance)
	assert.True(t, SphereToPlane(ball, floor))
}

func TestPlaneDistance_IsSigned(t *testing.T) {
	floor := actor.NewPlane("floor", actor.Point(0, 1, 0), actor.Up)

	assert.InDelta(t, 2.0, PlaneDistance(actor.Point(0, 3, 0), floor), tolerance)
	assert.InDelta(t, -1.5, PlaneDistance(actor.Point(9, -0.5, 9), floor), tolerance)
}

func TestSphereToCube_BallAtCenter(t *testing.T) {
	cube := actor.NewBox("cube", actor.Point(0, 0, 0), 1, 1, 1)
	cube.Normal = actor.Direction(1, 0, 0)
	ball := newBall(t, actor.Point(0, 0, 0), 0.1)

	assert.True(t, SphereToCube(ball, cube))
	assert.Equal(t, actor.Up, cube.Normal)
}

func TestSphereToCube(t *testing.T) {
	tests := []struct {
		name       string
		position   mgl64.Vec4
		radius     float64
		want       bool
		wantNormal mgl64.Vec4
	}{
		{"touching +X face", actor.Point(1, 0, 0), 0.6, true, actor.Direction(1, 0, 0)},
		{"inside epsilon", actor.Point(1.105, 0, 0), 0.6, true, actor.Direction(1, 0, 0)},
		{"outside epsilon", actor.Point(1.2, 0, 0), 0.6, false, actor.Direction(1, 0, 0)},
		{"above top face", actor.Point(0.2, 0.55, -0.1), 0.1, true, actor.Up},
		{"below bottom face", actor.Point(0, -0.6, 0), 0.1, true, actor.Direction(0, -1, 0)},
		{"near edge", actor.Point(0.6, 0.6, 0), 0.15, true, actor.Direction(math.Sqrt2/2, math.Sqrt2/2, 0)},
		{"far away", actor.Point(10, 10, 10), 0.1, false, actor.Direction(1, 1, 1).Mul(1 / math.Sqrt(3))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cube := actor.NewBox("cube", actor.Point(0, 0, 0), 1, 1, 1)
			ball := newBall(t, tt.position, tt.radius)

			assert.Equal(t, tt.want, SphereToCube(ball, cube))
			assertVec4(t, tt.wantNormal, cube.Normal)
		})
	}
}

func TestSphereToCube_Transformed(t *testing.T) {
	t.Run("translated", func(t *testing.T) {
		cube := actor.NewBox("cube", actor.Point(5, 0, 0), 2, 2, 2)
		assert.True(t, SphereToCube(newBall(t, actor.Point(3.95, 0, 0), 0.1), cube))
		assert.False(t, SphereToCube(newBall(t, actor.Point(0, 0, 0), 0.1), cube))
	})

	t.Run("rotated corner reaches further", func(t *testing.T) {
		cube := actor.NewBox("cube", actor.Point(0, 0, 0), 1, 1, 1)
		ball := newBall(t, actor.Point(0.8, 0, 0), 0.1)

		assert.False(t, SphereToCube(ball, cube))

		cube.Body.SetRotation(actor.Direction(0, math.Pi/4, 0))
		assert.True(t, SphereToCube(ball, cube))
		assertVec4(t, actor.Direction(1, 0, 0), cube.Normal)
	})

	t.Run("uses current center, not look-ahead", func(t *testing.T) {
		cube := actor.NewBox("cube", actor.Point(0, 0, 0), 1, 1, 1)
		ball := newBall(t, actor.Point(0.85, 0, 0), 0.1)
		ball.Body.SetLinearDamping(0)
		ball.Body.SetVelocity(actor.Direction(-15, 0, 0))
		ball.Body.Update(0.01)

		// Center at 0.7 is outside; the look-ahead center at 0.55 would touch.
		require.InDelta(t, 0.55, LookAhead(ball).X(), tolerance)
		assert.False(t, SphereToCube(ball, cube))
	})
}

func TestSphereToCylinder(t *testing.T) {
	hole := actor.NewHole("hole", actor.Point(0, -0.5, 0), 0.25, 1)

	tests := []struct {
		name     string
		position mgl64.Vec4
		want     bool
	}{
		{"centered", actor.Point(0, 0, 0), true},
		{"within radii sum", actor.Point(0.3, 0, 0), true},
		{"along Z", actor.Point(0, 0, 0.34), true},
		{"outside radii sum", actor.Point(0.5, 0, 0), false},
		{"height ignored", actor.Point(0.1, 100, 0.1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SphereToCylinder(newBall(t, tt.position, 0.1), hole))
		})
	}
}

func TestSphereToCylinderBottom(t *testing.T) {
	hole := actor.NewHole("hole", actor.Point(2, -0.5, 2), 0.25, 1)
	bottom := Bottom(hole)
	require.InDelta(t, -1.0, bottom, tolerance)

	tests := []struct {
		name     string
		position mgl64.Vec4
		want     bool
	}{
		{"sunk inside radius", actor.Point(2.1, bottom-0.01, 2), true},
		{"sunk at center", actor.Point(2, bottom-0.5, 2), true},
		{"horizontally at radius plus one", actor.Point(2+0.25+1.0, bottom-0.01, 2), false},
		{"touching column but outside hole radius", actor.Point(2.3, bottom-0.01, 2), false},
		{"above bottom", actor.Point(2, bottom+0.01, 2), false},
		{"exactly at bottom", actor.Point(2, bottom, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SphereToCylinderBottom(newBall(t, tt.position, 0.1), hole))
		})
	}
}

func TestInsideRadius(t *testing.T) {
	hole := actor.NewHole("hole", actor.Point(0, 0, 0), 0.25, 1)

	assert.True(t, InsideRadius(newBall(t, actor.Point(0.2, 5, 0), 0.1), hole))
	assert.False(t, InsideRadius(newBall(t, actor.Point(0.3, 0, 0), 0.1), hole))
}

func TestSphereToSphere(t *testing.T) {
	a := newBall(t, actor.Point(0, 0, 0), 0.5)

	assert.True(t, SphereToSphere(a, newBall(t, actor.Point(0.9, 0, 0), 0.5)))
	assert.True(t, SphereToSphere(a, newBall(t, actor.Point(0, 1, 0), 0.5)))
	assert.False(t, SphereToSphere(a, newBall(t, actor.Point(0, 0, 1.1), 0.5)))
}

func TestCollide_DispatchesOnShape(t *testing.T) {
	ball := newBall(t, actor.Point(0, 0.1, 0), 0.1)

	hits := []*actor.Object{
		actor.NewPlane("floor", actor.Point(0, 0, 0), actor.Up),
		actor.NewBox("box", actor.Point(0, -0.5, 0), 1, 1, 1),
		actor.NewHole("hole", actor.Point(0.2, -0.5, 0), 0.25, 1),
		newBall(t, actor.Point(0.15, 0.1, 0), 0.1),
	}
	for _, obstacle := range hits {
		assert.True(t, Collide(ball, obstacle), "%s should collide", obstacle.Shape)
	}

	misses := []*actor.Object{
		actor.NewPlane("ceiling", actor.Point(0, 5, 0), actor.Direction(0, -1, 0)),
		actor.NewBox("box", actor.Point(0, 5, 0), 1, 1, 1),
		actor.NewHole("hole", actor.Point(3, -0.5, 0), 0.25, 1),
		newBall(t, actor.Point(1, 0.1, 0), 0.1),
		{Shape: actor.ShapeType(99), Body: ball.Body},
	}
	for _, obstacle := range misses {
		assert.False(t, Collide(ball, obstacle), "%s should not collide", obstacle.Shape)
	}
}
