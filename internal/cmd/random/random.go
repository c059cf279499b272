// Package random parses random service flags and launches the service.
package random

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/glulxrand/internal/platform/cmd"
	server "github.com/louisbranch/glulxrand/internal/services/random/app"
)

// Config holds random command configuration.
type Config struct {
	Port   int    `env:"GLULXRAND_RANDOM_PORT" envDefault:"8095"`
	Source string `env:"GLULXRAND_RANDOM_SOURCE" envDefault:"system"`
	Seed   uint   `env:"GLULXRAND_RANDOM_SEED" envDefault:"0"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The random gRPC server port")
	fs.StringVar(&cfg.Source, "source", cfg.Source, "Native entropy source: system, os, or clock")
	fs.UintVar(&cfg.Seed, "seed", cfg.Seed, "Startup seed (0 = native randomness)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Seed > 1<<32-1 {
		return Config{}, fmt.Errorf("seed %d does not fit in 32 bits", cfg.Seed)
	}
	return cfg, nil
}

// Run starts the random gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRandom, func(context.Context) error {
		return server.Run(ctx, cfg.Port, server.Options{
			Source: cfg.Source,
			Seed:   uint32(cfg.Seed),
		})
	})
}
