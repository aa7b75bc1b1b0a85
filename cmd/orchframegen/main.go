package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jittakal/orchframes/internal/generator"
)

var (
	outPath  = flag.String("out", "", "output NDJSON file (default stdout)")
	count    = flag.Int("count", 50, "number of events to generate")
	seed     = flag.Int64("seed", 0, "random seed (0 for time-based)")
	logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")
)

func main() {
	flag.Parse()

	logger, err := initLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	gen := generator.NewGenerator(*seed, logger)
	events := gen.Generate(*count)

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			logger.Fatal("Failed to create output file", zap.Error(err))
		}
		defer f.Close()
		out = f
	}

	if err := generator.WriteNDJSON(out, events); err != nil {
		logger.Fatal("Failed to write events", zap.Error(err))
	}

	if *outPath != "" {
		logger.Info("Wrote events", zap.String("path", *outPath), zap.Int("count", *count))
	}
}

func initLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
