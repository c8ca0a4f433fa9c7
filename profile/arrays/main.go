// Profiling:
// go build ./profile/arrays
// DEVTOOLS_PROFILE_MODE=mem ./arrays
// go tool pprof -http=":8000" -nodefraction=0.001 ./arrays mem.pprof

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/edwinsyarief/devtools/arrays"
	"github.com/pkg/profile"
)

type config struct {
	Rounds int    `env:"DEVTOOLS_PROFILE_ROUNDS" envDefault:"50"`
	Iters  int    `env:"DEVTOOLS_PROFILE_ITERS" envDefault:"1000"`
	Size   int    `env:"DEVTOOLS_PROFILE_SIZE" envDefault:"1000"`
	Mode   string `env:"DEVTOOLS_PROFILE_MODE" envDefault:"mem"`
	Path   string `env:"DEVTOOLS_PROFILE_PATH" envDefault:"."`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Size < 1 {
		return cfg, fmt.Errorf("size must be positive, got %d", cfg.Size)
	}
	return cfg, nil
}

func profileMode(mode string) (func(*profile.Profile), error) {
	switch mode {
	case "mem":
		return profile.MemProfileAllocs, nil
	case "cpu":
		return profile.CPUProfile, nil
	case "trace":
		return profile.TraceProfile, nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "profile",
		ReportTimestamp: true,
	})

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	mode, err := profileMode(cfg.Mode)
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	logger.Info("starting", "mode", cfg.Mode, "rounds", cfg.Rounds, "iters", cfg.Iters, "size", cfg.Size)
	start := time.Now()
	p := profile.Start(mode, profile.ProfilePath(cfg.Path), profile.NoShutdownHook, profile.Quiet)
	edits, err := run(cfg.Rounds, cfg.Iters, cfg.Size)
	p.Stop()
	if err != nil {
		logger.Fatal("run failed", "error", err)
	}
	logger.Info("done", "edits", edits, "elapsed", time.Since(start))
}

// run applies a mix of edits to a slice of size elements and returns how many
// edits were made.
func run(rounds, iters, size int) (int, error) {
	edits := 0
	isOdd := func(v int) bool { return v&1 == 1 }
	for range rounds {
		base := make([]int, size)
		for i := range base {
			base[i] = i
		}
		for i := range iters {
			s := arrays.Add(base, i)
			s, err := arrays.InsertAt(s, len(s)/2, -i)
			if err != nil {
				return edits, err
			}
			if s, err = arrays.RemoveAt(s, 0); err != nil {
				return edits, err
			}
			if s, err = arrays.Remove(s, -i); err != nil {
				return edits, err
			}
			if s, err = arrays.SubArray(s, 0, len(s)/2); err != nil {
				return edits, err
			}
			if _, err = arrays.RemoveAll(arrays.Concat(s, base), isOdd); err != nil {
				return edits, err
			}
			edits += 7
		}
	}
	return edits, nil
}
