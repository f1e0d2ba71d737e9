// Package config handles simulation configuration loading and management.
package config

import "github.com/go-gl/mathgl/mgl64"

// Config holds all simulation settings.
type Config struct {
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Ball       BallConfig       `yaml:"ball" toml:"ball"`
	Course     CourseConfig     `yaml:"course" toml:"course"`
	Simulation SimulationConfig `yaml:"simulation" toml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

// Vec3 is an (x, y, z) triple, written as a YAML flow sequence.
type Vec3 [3]float64

// Point returns v as a homogeneous point (w=1).
func (v Vec3) Point() mgl64.Vec4 {
	return mgl64.Vec4{v[0], v[1], v[2], 1}
}

// Direction returns v as a homogeneous direction (w=0).
func (v Vec3) Direction() mgl64.Vec4 {
	return mgl64.Vec4{v[0], v[1], v[2], 0}
}

// PhysicsConfig holds the world constants.
type PhysicsConfig struct {
	Gravity        Vec3    `yaml:"gravity,flow" toml:"gravity"`
	LinearDamping  float64 `yaml:"linear_damping" toml:"linear_damping"`
	AngularDamping float64 `yaml:"angular_damping" toml:"angular_damping"`
	Inertia        float64 `yaml:"inertia" toml:"inertia"`
}

// BallConfig holds the ball and where it starts.
type BallConfig struct {
	Mass     float64 `yaml:"mass" toml:"mass"`
	Radius   float64 `yaml:"radius" toml:"radius"`
	Start    Vec3    `yaml:"start,flow" toml:"start"`
	Recovery Vec3    `yaml:"recovery,flow" toml:"recovery"` // where the ball goes after a hazard
}

// CourseConfig holds the obstacles of the room.
type CourseConfig struct {
	Bounds *BoundsConfig `yaml:"bounds,omitempty" toml:"bounds,omitempty"`
	Planes []PlaneConfig `yaml:"planes" toml:"planes"`
	Boxes  []BoxConfig   `yaml:"boxes" toml:"boxes"`
	Holes  []HoleConfig  `yaml:"holes" toml:"holes"`
	Club   ClubConfig    `yaml:"club" toml:"club"`
}

// BoundsConfig is the region the ball center must stay in.
type BoundsConfig struct {
	Min Vec3 `yaml:"min,flow" toml:"min"`
	Max Vec3 `yaml:"max,flow" toml:"max"`
}

type PlaneConfig struct {
	Name   string `yaml:"name" toml:"name"`
	Center Vec3   `yaml:"center,flow" toml:"center"`
	Normal Vec3   `yaml:"normal,flow" toml:"normal"`
}

type BoxConfig struct {
	Name     string `yaml:"name" toml:"name"`
	Center   Vec3   `yaml:"center,flow" toml:"center"`
	Size     Vec3   `yaml:"size,flow" toml:"size"`
	Rotation Vec3   `yaml:"rotation,flow" toml:"rotation"` // Euler angles, degrees
}

type HoleConfig struct {
	Name   string  `yaml:"name" toml:"name"`
	Center Vec3    `yaml:"center,flow" toml:"center"`
	Radius float64 `yaml:"radius" toml:"radius"`
	Height float64 `yaml:"height" toml:"height"`
}

type ClubConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Length  float64 `yaml:"length" toml:"length"`
}

// SimulationConfig holds the headless run settings.
type SimulationConfig struct {
	Timestep  float64      `yaml:"timestep" toml:"timestep"` // seconds
	MaxFrames int          `yaml:"max_frames" toml:"max_frames"`
	Shots     []ShotConfig `yaml:"shots" toml:"shots"`
	// Sweep, when set, searches shots in parallel instead of playing Shots.
	Sweep *SweepConfig `yaml:"sweep,omitempty" toml:"sweep,omitempty"`
}

// ShotConfig is one scripted stroke, played once the ball rests.
type ShotConfig struct {
	Yaw   float64 `yaml:"yaw" toml:"yaw"` // degrees, 0 is +Z
	Power float64 `yaml:"power" toml:"power"`
}

// SweepConfig is a grid of shots played on independent courses.
type SweepConfig struct {
	Workers    int     `yaml:"workers" toml:"workers"`
	YawSteps   int     `yaml:"yaw_steps" toml:"yaw_steps"`
	PowerSteps int     `yaml:"power_steps" toml:"power_steps"`
	MinPower   float64 `yaml:"min_power" toml:"min_power"`
	MaxPower   float64 `yaml:"max_power" toml:"max_power"`
}

// DefaultSweep returns a 64 yaws by 12 powers grid over 4 workers.
func DefaultSweep() *SweepConfig {
	return &SweepConfig{
		Workers:    4,
		YawSteps:   64,
		PowerSteps: 12,
		MinPower:   5,
		MaxPower:   60,
	}
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with a single room: a floor, four walls, one hole
// and a hazard box.
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			Gravity:        Vec3{0, -9.81, 0},
			LinearDamping:  0.4,
			AngularDamping: 0.4,
			Inertia:        0.5,
		},
		Ball: BallConfig{
			Mass:     0.2,
			Radius:   0.1,
			Start:    Vec3{0, 0.1, -3},
			Recovery: Vec3{0, 0.1, -3},
		},
		Course: CourseConfig{
			Bounds: &BoundsConfig{
				Min: Vec3{-6, -3, -6},
				Max: Vec3{6, 6, 6},
			},
			Planes: []PlaneConfig{
				{Name: "floor", Center: Vec3{0, 0, 0}, Normal: Vec3{0, 1, 0}},
				{Name: "wall_north", Center: Vec3{0, 0, 5}, Normal: Vec3{0, 0, -1}},
				{Name: "wall_south", Center: Vec3{0, 0, -5}, Normal: Vec3{0, 0, 1}},
				{Name: "wall_east", Center: Vec3{5, 0, 0}, Normal: Vec3{-1, 0, 0}},
				{Name: "wall_west", Center: Vec3{-5, 0, 0}, Normal: Vec3{1, 0, 0}},
			},
			Boxes: []BoxConfig{
				{Name: "hazard", Center: Vec3{2.5, 0.25, 0}, Size: Vec3{1, 0.5, 1}},
			},
			Holes: []HoleConfig{
				{Name: "cup", Center: Vec3{0, -0.5, 3}, Radius: 0.25, Height: 1},
			},
			Club: ClubConfig{
				Enabled: true,
				Length:  1,
			},
		},
		Simulation: SimulationConfig{
			Timestep:  1.0 / 60.0,
			MaxFrames: 3600,
			Shots: []ShotConfig{
				{Yaw: 0, Power: 30},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
