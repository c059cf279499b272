// Package randseq prints a run of generator output so two builds or two
// platforms can be diffed for sequence parity.
package randseq

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"strings"

	entrypoint "github.com/louisbranch/glulxrand/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/glulxrand/internal/platform/grpc"
	"github.com/louisbranch/glulxrand/internal/platform/timeouts"
	rng "github.com/louisbranch/glulxrand/internal/random"
	randomservice "github.com/louisbranch/glulxrand/internal/services/random/api/grpc/random"
)

// Config holds randseq command configuration.
type Config struct {
	// Addr selects a remote random server; empty runs the generator locally.
	Addr  string `env:"GLULXRAND_RANDSEQ_ADDR"`
	Seed  uint   `env:"GLULXRAND_RANDSEQ_SEED" envDefault:"0"`
	Count int    `env:"GLULXRAND_RANDSEQ_COUNT" envDefault:"10"`
	// Bound, when nonzero, prints Range(Bound) values instead of raw words.
	Bound int `env:"GLULXRAND_RANDSEQ_BOUND" envDefault:"0"`
	// Fresh draws a new nonzero seed and logs it so the run can be replayed
	// with -seed.
	Fresh bool `env:"GLULXRAND_RANDSEQ_FRESH" envDefault:"false"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Random server address (empty = local generator)")
	fs.UintVar(&cfg.Seed, "seed", cfg.Seed, "Seed to apply before reading (0 = native randomness)")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "Number of values to print")
	fs.IntVar(&cfg.Bound, "bound", cfg.Bound, "Print Range(bound) values instead of raw words")
	fs.BoolVar(&cfg.Fresh, "fresh", cfg.Fresh, "Draw a new seed, log it, and run deterministically")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Addr = strings.TrimSpace(cfg.Addr)
	if cfg.Seed > math.MaxUint32 {
		return Config{}, fmt.Errorf("seed %d does not fit in 32 bits", cfg.Seed)
	}
	if cfg.Fresh && cfg.Seed != 0 {
		return Config{}, errors.New("-fresh and -seed cannot be combined")
	}
	if cfg.Count < 0 {
		return Config{}, errors.New("count must be non-negative")
	}
	if cfg.Bound < math.MinInt32 || cfg.Bound > math.MaxInt32 {
		return Config{}, fmt.Errorf("bound %d does not fit in 32 bits", cfg.Bound)
	}
	return cfg, nil
}

// Run prints cfg.Count values to out, one per line.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRandSeq, func(ctx context.Context) error {
		seed, err := resolveSeed(cfg, rng.NewSeed, log.Printf)
		if err != nil {
			return err
		}
		cfg.Seed = uint(seed)
		if cfg.Addr == "" {
			return printLocal(cfg, out)
		}
		return printRemote(ctx, cfg, out)
	})
}

// resolveSeed returns the seed to apply, drawing and logging one when
// cfg.Fresh is set.
func resolveSeed(cfg Config, draw func() (uint32, error), logf func(string, ...any)) (uint32, error) {
	if !cfg.Fresh {
		return uint32(cfg.Seed), nil
	}
	seed, err := draw()
	if err != nil {
		return 0, fmt.Errorf("draw seed: %w", err)
	}
	logf("using seed %d (replay with -seed %d)", seed, seed)
	return seed, nil
}

func printLocal(cfg Config, out io.Writer) error {
	gen := rng.NewSeeded(uint32(cfg.Seed), nil)
	for i := 0; i < cfg.Count; i++ {
		if err := printValue(out, cfg.Bound, gen.Uint32, gen.Range); err != nil {
			return err
		}
	}
	return nil
}

func printRemote(ctx context.Context, cfg Config, out io.Writer) error {
	conn, err := platformgrpc.Dial(ctx, cfg.Addr, randomservice.ServiceName, timeouts.GRPCDial, log.Printf)
	if err != nil {
		return fmt.Errorf("dial random server: %w", err)
	}
	defer conn.Close()

	client := randomservice.NewClient(conn)
	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	err = client.SetSeed(callCtx, uint32(cfg.Seed))
	cancel()
	if err != nil {
		return err
	}

	if cfg.Bound != 0 {
		for i := 0; i < cfg.Count; i++ {
			callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
			v, err := client.Range(callCtx, int32(cfg.Bound))
			cancel()
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out, v); err != nil {
				return err
			}
		}
		return nil
	}

	for remaining := cfg.Count; remaining > 0; {
		batch := min(remaining, randomservice.MaxReadWords)
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		words, err := client.ReadWords(callCtx, uint32(batch))
		cancel()
		if err != nil {
			return err
		}
		if len(words) == 0 {
			return fmt.Errorf("read words: server returned no words for a batch of %d", batch)
		}
		for _, w := range words {
			if _, err := fmt.Fprintf(out, "%08x\n", w); err != nil {
				return err
			}
		}
		remaining -= len(words)
	}
	return nil
}

func printValue(out io.Writer, bound int, word func() uint32, ranged func(int32) int32) error {
	var err error
	if bound != 0 {
		_, err = fmt.Fprintln(out, ranged(int32(bound)))
	} else {
		_, err = fmt.Fprintf(out, "%08x\n", word())
	}
	return err
}
