package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file (.yaml or .toml, ~ expanded)")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile   = flag.String("log-file", "", "Write logs to this file too")
	flagFrames    = flag.Int("frames", 0, "Maximum number of frames to simulate")
	flagTimestep  = flag.Float64("timestep", 0, "Fixed timestep in seconds")
	flagYaw       = flag.Float64("yaw", 0, "Yaw of the first shot, in degrees")
	flagPower     = flag.Float64("power", 0, "Power of the first shot")
	flagNoBounds  = flag.Bool("no-bounds", false, "Disable the out of bounds region")
	flagNoHazards = flag.Bool("no-hazards", false, "Remove every box from the course")
	flagSweep     = flag.Bool("sweep", false, "Search for hole-in-one shots instead of playing")
	flagWorkers   = flag.Int("workers", 0, "Goroutines used by -sweep")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagFrames > 0 {
		cfg.Simulation.MaxFrames = *flagFrames
	}
	if *flagTimestep > 0 {
		cfg.Simulation.Timestep = *flagTimestep
	}
	if *flagPower > 0 {
		if len(cfg.Simulation.Shots) == 0 {
			cfg.Simulation.Shots = append(cfg.Simulation.Shots, ShotConfig{})
		}
		cfg.Simulation.Shots[0].Power = *flagPower
		cfg.Simulation.Shots[0].Yaw = *flagYaw
	}
	if *flagNoBounds {
		cfg.Course.Bounds = nil
	}
	if *flagNoHazards {
		cfg.Course.Boxes = nil
	}
	if *flagSweep && cfg.Simulation.Sweep == nil {
		cfg.Simulation.Sweep = DefaultSweep()
	}
	if *flagWorkers > 0 && cfg.Simulation.Sweep != nil {
		cfg.Simulation.Sweep.Workers = *flagWorkers
	}
}
