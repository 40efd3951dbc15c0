// Command percolate sweeps site percolation over a range of occupation
// probabilities read from a parameter file and writes the results to disk.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	percolatecmd "percolate/internal/cmd/percolate"
	"percolate/internal/config"
)

func main() {
	cfg, err := percolatecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := percolatecmd.Run(ctx, cfg, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
