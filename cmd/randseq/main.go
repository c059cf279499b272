// Package main prints generator output for sequence parity checks.
package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	randseqcmd "github.com/louisbranch/glulxrand/internal/cmd/randseq"
	"github.com/louisbranch/glulxrand/internal/platform/config"
)

func main() {
	cfg, err := randseqcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := bufio.NewWriter(os.Stdout)
	if err := randseqcmd.Run(ctx, cfg, out); err != nil {
		config.Exitf("Error: %v", err)
	}
	if err := out.Flush(); err != nil {
		config.Exitf("Error: %v", err)
	}
}
