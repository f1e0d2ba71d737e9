package minigolf

import (
	"github.com/akmonengine/minigolf/actor"
	"github.com/akmonengine/minigolf/constraint"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// DefaultGravity is the gravitational acceleration (m/s², or N/kg).
var DefaultGravity = actor.Direction(0, -9.81, 0)

// Course is the simulated room: one ball, its obstacles and the club.
// Step is driven once per frame from a single goroutine.
type Course struct {
	Ball      *actor.Object
	Obstacles []*actor.Object
	Club      *actor.Club

	// Gravity acceleration (m/s², or N/kg)
	Gravity mgl64.Vec4
	// Recovery is where the ball is put back after touching a box or leaving Bounds.
	Recovery mgl64.Vec4
	// Bounds, when set, is the region the ball center must stay in.
	Bounds *actor.AABB

	Events Events
	Logger *zap.Logger

	frame uint64
}

// NewCourse creates a course around ball, with the ball's position as recovery point.
func NewCourse(ball *actor.Object) *Course {
	return &Course{
		Ball:     ball,
		Gravity:  DefaultGravity,
		Recovery: ball.Body.GetPosition(),
		Events:   NewEvents(),
		Logger:   zap.NewNop(),
	}
}

// AddObstacle adds an obstacle to the course
func (c *Course) AddObstacle(obstacle *actor.Object) {
	c.Obstacles = append(c.Obstacles, obstacle)
}

// RemoveObstacle removes an obstacle and forgets its contact history
func (c *Course) RemoveObstacle(obstacle *actor.Object) {
	k := -1
	for i, o := range c.Obstacles {
		if o == obstacle {
			k = i
			break
		}
	}

	if k != -1 {
		c.Obstacles = append(c.Obstacles[:k], c.Obstacles[k+1:]...)
	}

	c.Events.forget(obstacle)
}

// Frame is the number of steps run so far.
func (c *Course) Frame() uint64 {
	return c.frame
}

// Step advances the course by dt seconds.
func (c *Course) Step(dt float64) {
	c.frame++

	// Phase 1: external forces
	c.applyGravity()

	// Phase 2: narrow phase against every obstacle
	constraints := c.detectCollision()
	c.Events.recordContacts(constraints)

	// Phase 3: contact response
	env := constraint.Environment{Gravity: c.Gravity, Recovery: c.Recovery}
	if recovered := constraint.SolveAll(constraints, env); recovered != nil {
		c.Events.emitOutOfBounds(c.Ball, recovered.Obstacle)
		c.Logger.Info("ball recovered after box contact",
			zap.Uint64("frame", c.frame),
			zap.String("obstacle", recovered.Obstacle.Name))
	} else if c.outOfBounds() {
		constraint.Recover(c.Ball.Body, c.Recovery)
		c.Events.emitOutOfBounds(c.Ball, nil)
		c.Logger.Info("ball left the course bounds", zap.Uint64("frame", c.frame))
	}

	// Phase 4: integration
	c.Ball.Body.Update(dt)
	if c.Club != nil {
		c.Club.Body.Update(dt)
	}

	c.Events.processRestEvents(c.Ball)
	c.Events.flush()
}

func (c *Course) applyGravity() {
	c.Ball.Body.AddForce(c.Gravity.Mul(c.Ball.Body.GetMass()))
}

func (c *Course) outOfBounds() bool {
	if c.Bounds == nil {
		return false
	}
	return !c.Bounds.ContainsPoint(c.Ball.Center().Vec3())
}
