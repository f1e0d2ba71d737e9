package minigolf

import (
	"github.com/akmonengine/minigolf/actor"
	"github.com/akmonengine/minigolf/collisor"
	"github.com/akmonengine/minigolf/constraint"
	"go.uber.org/zap"
)

// FloorThreshold is the minimum normal·up for a plane to count as floor.
// Floors are ignored while the ball is inside a hole, so it can drop in.
const FloorThreshold = 0.7

// detectCollision runs the narrow phase of the ball against every obstacle and
// returns the contacts in solving order: holes first, since releasing the ball
// into a hole drops every force accumulated before it.
func (c *Course) detectCollision() []*constraint.ContactConstraint {
	contacts, inHole := c.collideHoles()

	for _, obstacle := range c.Obstacles {
		if obstacle == c.Ball || obstacle.Shape == actor.ShapeTypeCylinder {
			continue
		}
		if inHole && obstacle.Shape == actor.ShapeTypePlane && obstacle.Normal.Dot(actor.Up) > FloorThreshold {
			continue
		}
		if !collisor.Collide(c.Ball, obstacle) {
			continue
		}
		contacts = append(contacts, c.contact(obstacle))
	}

	for _, contact := range contacts {
		c.Logger.Debug("contact",
			zap.Uint64("frame", c.frame),
			zap.String("obstacle", contact.Obstacle.Name),
			zap.Stringer("shape", contact.Obstacle.Shape),
			zap.Stringer("response", contact.Response))
	}

	return contacts
}

// collideHoles reports the hole contacts and whether the ball center is within a hole's radius.
func (c *Course) collideHoles() (contacts []*constraint.ContactConstraint, inHole bool) {
	for _, hole := range c.Obstacles {
		if hole.Shape != actor.ShapeTypeCylinder {
			continue
		}

		switch {
		case collisor.SphereToCylinderBottom(c.Ball, hole):
			// The ball rests on the bottom of the cup.
			contacts = append(contacts, &constraint.ContactConstraint{
				Ball:     c.Ball,
				Obstacle: hole,
				Normal:   actor.Up,
				Response: constraint.ResponseBounce,
			})
			inHole = true
		case collisor.SphereToCylinder(c.Ball, hole):
			// On the rim the floor still carries the ball; release it only
			// once its center is over the cup.
			response := constraint.ResponseTouch
			if collisor.InsideRadius(c.Ball, hole) {
				response = constraint.ResponseRelease
				inHole = true
			}
			contacts = append(contacts, &constraint.ContactConstraint{
				Ball:     c.Ball,
				Obstacle: hole,
				Normal:   actor.Up,
				Response: response,
			})
		}
	}

	return contacts, inHole
}

// contact builds the response to a touched plane, box or sphere.
func (c *Course) contact(obstacle *actor.Object) *constraint.ContactConstraint {
	contact := &constraint.ContactConstraint{
		Ball:     c.Ball,
		Obstacle: obstacle,
		Normal:   obstacle.Normal,
		Response: constraint.ResponseBounce,
	}

	switch obstacle.Shape {
	case actor.ShapeTypePlane:
		// Orient the normal toward the side of the plane the ball is on.
		if collisor.PlaneDistance(c.Ball.Center(), obstacle) < 0 {
			contact.Normal = obstacle.Normal.Mul(-1)
		}
	case actor.ShapeTypeBox:
		contact.Response = constraint.ResponseRecover
	case actor.ShapeTypeSphere:
		contact.Normal = actor.SafeNormalize(c.Ball.Center().Sub(obstacle.Center()), actor.Up)
	}

	return contact
}
