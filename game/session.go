// Package game turns player intents into strokes on a course.
package game

import (
	"math"

	"github.com/akmonengine/minigolf"
	"github.com/akmonengine/minigolf/actor"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

const (
	// AimStep is the yaw change of one aim intent (22.5°).
	AimStep = math.Pi / 16

	PowerStep    = 5.0
	MinPower     = 5.0
	MaxPower     = 60.0
	DefaultPower = 30.0

	// clubBackoff is the distance between the club head and the ball center while aiming.
	clubBackoff = 0.15
)

// Session is one player on one course.
type Session struct {
	Course *minigolf.Course
	Start  mgl64.Vec4

	Strokes   int
	Penalties int
	// Yaw is the aim direction in radians around +Y, 0 pointing to +Z.
	Yaw    float64
	Power  float64
	Aiming bool
	Sunk   bool

	logger *zap.Logger
}

// NewSession starts a session with the ball at its current position.
func NewSession(course *minigolf.Course, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		Course: course,
		Start:  course.Ball.Body.GetPosition(),
		Power:  DefaultPower,
		logger: logger,
	}

	course.Events.Subscribe(minigolf.HOLE_SUNK, s.onHoleSunk)
	course.Events.Subscribe(minigolf.OUT_OF_BOUNDS, s.onOutOfBounds)
	course.Events.Subscribe(minigolf.ON_REST, s.onRest)

	s.placeClub()

	return s
}

// Direction is the unit horizontal aim direction.
func (s *Session) Direction() mgl64.Vec4 {
	return actor.Direction(math.Sin(s.Yaw), 0, math.Cos(s.Yaw))
}

// Score is the strokes played plus penalties.
func (s *Session) Score() int {
	return s.Strokes + s.Penalties
}

// CanHit reports whether a stroke would be accepted now.
func (s *Session) CanHit() bool {
	return !s.Sunk && s.Course.Ball.Body.IsResting()
}

// Apply performs an intent and reports whether it was accepted.
func (s *Session) Apply(intent Intent) bool {
	switch intent {
	case IntentHit:
		return s.hit()
	case IntentToggleAim:
		s.Aiming = !s.Aiming
		if s.Aiming {
			s.placeClub()
		}
		return true
	case IntentAimLeft, IntentAimRight:
		if !s.Aiming {
			return false
		}
		step := AimStep
		if intent == IntentAimRight {
			step = -AimStep
		}
		s.Yaw = wrapAngle(s.Yaw + step)
		s.placeClub()
		return true
	case IntentPowerUp, IntentPowerDown:
		if !s.Aiming {
			return false
		}
		step := PowerStep
		if intent == IntentPowerDown {
			step = -PowerStep
		}
		s.Power = mgl64.Clamp(s.Power+step, MinPower, MaxPower)
		return true
	case IntentReset:
		s.reset()
		return true
	default:
		return false
	}
}

// Shoot aims at yaw (radians) with power and hits.
func (s *Session) Shoot(yaw, power float64) bool {
	if !s.CanHit() {
		return false
	}
	s.Yaw = wrapAngle(yaw)
	s.Power = mgl64.Clamp(power, MinPower, MaxPower)
	return s.hit()
}

// Update advances the course by dt seconds.
func (s *Session) Update(dt float64) {
	s.Course.Step(dt)
}

func (s *Session) hit() bool {
	if !s.CanHit() {
		s.logger.Debug("stroke refused", zap.Bool("sunk", s.Sunk))
		return false
	}

	force := minigolf.Shot{Yaw: s.Yaw, Power: s.Power}.Force()
	s.Course.Ball.Body.AddForce(force)

	if club := s.Course.Club; club != nil {
		s.placeClub()
		club.Swing(force)
	}

	s.Strokes++
	s.Aiming = false

	s.logger.Info("stroke",
		zap.Int("strokes", s.Strokes),
		zap.Float64("yaw", mgl64.RadToDeg(s.Yaw)),
		zap.Float64("power", s.Power))

	return true
}

func (s *Session) reset() {
	body := s.Course.Ball.Body
	body.SetPosition(s.Start)
	body.ResetVelocity()
	body.ResetAcceleration()
	body.ClearForces()

	s.Strokes = 0
	s.Penalties = 0
	s.Sunk = false
	s.Aiming = false
	s.placeClub()

	s.logger.Info("session reset")
}

// placeClub hangs the club behind the ball, its head at the ball center height.
func (s *Session) placeClub() {
	club := s.Course.Club
	if club == nil {
		return
	}

	head := s.Course.Ball.Center().Sub(s.Direction().Mul(clubBackoff))
	club.Rest()
	club.PlaceAt(head.Add(actor.Direction(0, club.Length, 0)))
}

func (s *Session) onHoleSunk(event minigolf.Event) {
	e := event.(minigolf.HoleSunkEvent)
	if s.Sunk {
		return
	}
	s.Sunk = true
	s.logger.Info("hole sunk",
		zap.String("hole", e.Hole.Name),
		zap.Int("strokes", s.Strokes),
		zap.Int("score", s.Score()))
}

func (s *Session) onOutOfBounds(event minigolf.Event) {
	e := event.(minigolf.OutOfBoundsEvent)
	s.Penalties++

	obstacle := "bounds"
	if e.Obstacle != nil {
		obstacle = e.Obstacle.Name
	}
	s.logger.Info("penalty", zap.String("cause", obstacle), zap.Int("penalties", s.Penalties))
}

func (s *Session) onRest(minigolf.Event) {
	if !s.Sunk {
		s.placeClub()
	}
}

// wrapAngle maps a to [0, 2π).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
