package constraint

import (
	"github.com/akmonengine/minigolf/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Response selects how a contact changes the ball.
type Response uint8

const (
	// ResponseBounce reflects the ball on the contact normal and adds the normal force.
	ResponseBounce Response = iota
	// ResponseRecover teleports the ball to the recovery point.
	ResponseRecover
	// ResponseRelease lets the ball fall under gravity alone.
	ResponseRelease
	// ResponseTouch records the contact and leaves the ball as it is.
	ResponseTouch
)

func (r Response) String() string {
	switch r {
	case ResponseBounce:
		return "bounce"
	case ResponseRecover:
		return "recover"
	case ResponseRelease:
		return "release"
	case ResponseTouch:
		return "touch"
	default:
		return "unknown"
	}
}

type ContactConstraint struct {
	Ball     *actor.Object
	Obstacle *actor.Object
	// Normal points from the obstacle toward the ball.
	Normal   mgl64.Vec4
	Response Response
}

func (c *ContactConstraint) Solve(env Environment) {
	body := c.Ball.Body

	switch c.Response {
	case ResponseBounce:
		Bounce(body, c.Normal, env.Gravity)
	case ResponseRecover:
		Recover(body, env.Recovery)
	case ResponseRelease:
		Release(body, env.Gravity)
	}
}

// SolveAll solves constraints in order. A recovery moves the ball, so the
// contacts after it are stale and skipped; the recovering constraint is returned.
func SolveAll(constraints []*ContactConstraint, env Environment) (recovered *ContactConstraint) {
	for _, c := range constraints {
		c.Solve(env)
		if c.Response == ResponseRecover {
			return c
		}
	}
	return nil
}
