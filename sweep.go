package minigolf

import (
	"math"
	"sort"

	"github.com/akmonengine/minigolf/actor"
	"github.com/akmonengine/minigolf/config"
	"github.com/go-gl/mathgl/mgl64"
)

// Shot is one stroke: Yaw in radians around +Y with 0 pointing to +Z, and the
// magnitude of the force applied to the ball for one frame.
type Shot struct {
	Yaw   float64
	Power float64
}

// Force is the force the shot applies to the ball.
func (s Shot) Force() mgl64.Vec4 {
	return actor.Direction(math.Sin(s.Yaw), 0, math.Cos(s.Yaw)).Mul(s.Power)
}

// ShotResult is what happened to the ball after a shot.
type ShotResult struct {
	Shot      Shot
	Sunk      bool
	Hole      string
	Frames    int
	Penalties int
	// Rest is the ball position when the run stopped.
	Rest mgl64.Vec4
	Err  error
}

// PlayShot builds a fresh course from cfg and plays shot until the ball sinks,
// comes to rest or Simulation.MaxFrames run out.
func PlayShot(cfg *config.Config, shot Shot) ShotResult {
	result := ShotResult{Shot: shot}

	course, err := Build(cfg, nil)
	if err != nil {
		result.Err = err
		return result
	}

	course.Events.Subscribe(HOLE_SUNK, func(event Event) {
		result.Sunk = true
		result.Hole = event.(HoleSunkEvent).Hole.Name
	})
	course.Events.Subscribe(OUT_OF_BOUNDS, func(Event) {
		result.Penalties++
	})

	course.Ball.Body.AddForce(shot.Force())
	for result.Frames < cfg.Simulation.MaxFrames && !result.Sunk {
		course.Step(cfg.Simulation.Timestep)
		result.Frames++

		if course.Ball.Body.IsResting() {
			break
		}
	}
	result.Rest = course.Ball.Body.GetPosition()

	return result
}

// SweepShots plays every shot on its own course, spread over workers
// goroutines. Results keep the order of shots.
func SweepShots(cfg *config.Config, shots []Shot, workers int) []ShotResult {
	results := make([]ShotResult, len(shots))

	indices := make([]int, len(shots))
	for i := range indices {
		indices[i] = i
	}

	task(workers, indices, func(i int) {
		results[i] = PlayShot(cfg, shots[i])
	})

	return results
}

// ShotGrid spreads yawSteps yaws over a full turn and powerSteps powers over
// [minPower, maxPower].
func ShotGrid(yawSteps, powerSteps int, minPower, maxPower float64) []Shot {
	if yawSteps <= 0 || powerSteps <= 0 {
		return nil
	}

	shots := make([]Shot, 0, yawSteps*powerSteps)
	for y := 0; y < yawSteps; y++ {
		yaw := 2 * math.Pi * float64(y) / float64(yawSteps)
		for p := 0; p < powerSteps; p++ {
			power := minPower
			if powerSteps > 1 {
				power += (maxPower - minPower) * float64(p) / float64(powerSteps-1)
			}
			shots = append(shots, Shot{Yaw: yaw, Power: power})
		}
	}
	return shots
}

// BestShots returns the sunk shots, fewest frames first.
func BestShots(results []ShotResult) []ShotResult {
	var sunk []ShotResult
	for _, r := range results {
		if r.Sunk && r.Err == nil {
			sunk = append(sunk, r)
		}
	}

	sort.SliceStable(sunk, func(i, j int) bool {
		return sunk[i].Frames < sunk[j].Frames
	})
	return sunk
}
