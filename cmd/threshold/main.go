// Command threshold estimates the site percolation threshold of an L×L
// lattice by bisecting the spanning probability.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	thresholdcmd "percolate/internal/cmd/threshold"
	"percolate/internal/config"
)

func main() {
	cfg, err := thresholdcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := thresholdcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
