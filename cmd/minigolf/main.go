// Package main runs a headless minigolf course: it plays the scripted shots
// of the configuration frame by frame and logs what happens.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/akmonengine/minigolf"
	"github.com/akmonengine/minigolf/config"
	"github.com/akmonengine/minigolf/game"
	"github.com/akmonengine/minigolf/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Minigolf ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	course, err := minigolf.Build(cfg, logger.Named("course"))
	if err != nil {
		logger.Error("failed to build course", zap.Error(err))
		os.Exit(1)
	}

	if sweep := cfg.Simulation.Sweep; sweep != nil {
		runSweep(cfg, sweep)
		return
	}

	session := game.NewSession(course, logger.Named("session"))
	result := play(session, cfg.Simulation)

	logger.Info("simulation finished",
		zap.Bool("sunk", session.Sunk),
		zap.Int("strokes", session.Strokes),
		zap.Int("score", session.Score()),
		zap.Uint64("frames", course.Frame()),
		zap.Duration("elapsed", result.elapsed),
		zap.Duration("slowest_frame", result.slowest))
}

type runResult struct {
	elapsed time.Duration
	slowest time.Duration
}

// play runs the fixed-timestep loop: each scripted shot is played as soon as
// the ball rests, until the hole is sunk, the shots run out or MaxFrames is reached.
func play(session *game.Session, sim config.SimulationConfig) runResult {
	var result runResult
	shots := sim.Shots
	start := time.Now()

	for frame := 0; frame < sim.MaxFrames && !session.Sunk; frame++ {
		if session.CanHit() {
			if len(shots) == 0 {
				logger.Info("no shots left", zap.Int("frame", frame))
				break
			}
			shot := shots[0]
			shots = shots[1:]
			session.Shoot(mgl64.DegToRad(shot.Yaw), shot.Power)
		}

		frameStart := time.Now()
		session.Update(sim.Timestep)
		elapsed := time.Since(frameStart)
		result.slowest = max(result.slowest, elapsed)

		if logger.Log.Core().Enabled(zap.DebugLevel) && frame%30 == 0 {
			ball := session.Course.Ball.Body
			logger.Debug("frame",
				zap.Int("frame", frame),
				zap.Duration("step", elapsed),
				zap.Any("position", ball.GetPosition().Vec3()),
				zap.Float64("speed", ball.GetVelocity().Len()))
		}
	}

	result.elapsed = time.Since(start)
	return result
}

// runSweep plays a grid of shots on independent courses and logs the ones that sink.
func runSweep(cfg *config.Config, sweep *config.SweepConfig) {
	shots := minigolf.ShotGrid(sweep.YawSteps, sweep.PowerSteps, sweep.MinPower, sweep.MaxPower)
	logger.Info("sweep started", zap.Int("shots", len(shots)), zap.Int("workers", sweep.Workers))

	start := time.Now()
	results := minigolf.SweepShots(cfg, shots, sweep.Workers)
	best := minigolf.BestShots(results)

	logger.Info("sweep finished",
		zap.Int("holes_in_one", len(best)),
		zap.Duration("elapsed", time.Since(start)))

	for i, r := range best {
		if i == 10 {
			break
		}
		logger.Info("hole in one",
			zap.Float64("yaw", mgl64.RadToDeg(r.Shot.Yaw)),
			zap.Float64("power", r.Shot.Power),
			zap.Int("frames", r.Frames),
			zap.String("hole", r.Hole))
	}
}
