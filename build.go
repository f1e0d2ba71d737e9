package minigolf

import (
	"fmt"

	"github.com/akmonengine/minigolf/actor"
	"github.com/akmonengine/minigolf/config"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Build creates the course described by cfg. A nil logger discards everything.
func Build(cfg *config.Config, logger *zap.Logger) (*Course, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ball, err := actor.NewBall("ball", cfg.Ball.Start.Point(), cfg.Ball.Radius, cfg.Ball.Mass)
	if err != nil {
		return nil, fmt.Errorf("building course: %w", err)
	}
	if err := ball.Body.SetInertia(cfg.Physics.Inertia); err != nil {
		return nil, fmt.Errorf("building course: %w", err)
	}
	ball.Body.SetLinearDamping(cfg.Physics.LinearDamping)
	ball.Body.SetAngularDamping(cfg.Physics.AngularDamping)

	course := NewCourse(ball)
	course.Gravity = cfg.Physics.Gravity.Direction()
	course.Recovery = cfg.Ball.Recovery.Point()
	course.Logger = logger

	for _, p := range cfg.Course.Planes {
		course.AddObstacle(actor.NewPlane(p.Name, p.Center.Point(), p.Normal.Direction()))
	}

	for _, b := range cfg.Course.Boxes {
		box := actor.NewBox(b.Name, b.Center.Point(), b.Size[0], b.Size[1], b.Size[2])
		box.Body.SetRotation(mgl64.Vec4{
			mgl64.DegToRad(b.Rotation[0]),
			mgl64.DegToRad(b.Rotation[1]),
			mgl64.DegToRad(b.Rotation[2]),
			0,
		})
		course.AddObstacle(box)
	}

	for _, h := range cfg.Course.Holes {
		course.AddObstacle(actor.NewHole(h.Name, h.Center.Point(), h.Radius, h.Height))
	}

	if b := cfg.Course.Bounds; b != nil {
		course.Bounds = &actor.AABB{
			Min: mgl64.Vec3(b.Min),
			Max: mgl64.Vec3(b.Max),
		}
	}

	if cfg.Course.Club.Enabled {
		grip := ball.Center().Add(actor.Direction(0, cfg.Course.Club.Length, 0))
		club, err := actor.NewClub(grip, cfg.Course.Club.Length)
		if err != nil {
			return nil, fmt.Errorf("building club: %w", err)
		}
		course.Club = club
	}

	logger.Info("course built",
		zap.Int("obstacles", len(course.Obstacles)),
		zap.Bool("bounds", course.Bounds != nil),
		zap.Bool("club", course.Club != nil))

	return course, nil
}
