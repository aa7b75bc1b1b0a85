package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jittakal/orchframes/internal/config"
	"github.com/jittakal/orchframes/internal/encoder"
	"github.com/jittakal/orchframes/internal/observability"
	"github.com/jittakal/orchframes/internal/pipeline"
	"github.com/jittakal/orchframes/internal/server"
	"github.com/jittakal/orchframes/internal/storage"
	pkgencoder "github.com/jittakal/orchframes/pkg/encoder"
	pkgstorage "github.com/jittakal/orchframes/pkg/storage"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}

func run() error {
	// Parse command-line flags
	inputPath := flag.String("input", "", "path to NDJSON event log (required)")
	outDir := flag.String("outdir", "", "output directory or key prefix for frames (required)")
	configPath := flag.String("config", "", "path to configuration file")
	flag.Parse()

	if *inputPath == "" {
		return fmt.Errorf("missing required flag: --input")
	}
	if *outDir == "" {
		return fmt.Errorf("missing required flag: --outdir")
	}

	// Load configuration
	// Priority: CLI flag > CONFIG_PATH env var > default path
	var cfgPath string
	if *configPath != "" {
		cfgPath = *configPath
	} else if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		cfgPath = envPath
	} else {
		cfgPath = "config/application.yaml"
	}

	loader := config.NewLoader()
	cfg, err := loader.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize observability
	logger := observability.NewLogger(observability.LoggingConfig{
		Level:  cfg.Observability.Logging.Level,
		Format: cfg.Observability.Logging.Format,
		Output: cfg.Observability.Logging.Output,
	})
	logger.Info("starting orchframes",
		"version", cfg.Application.Version,
		"environment", cfg.Application.Environment,
		"input", *inputPath,
		"outdir", *outDir,
	)

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	ctx := context.Background()

	if cfg.Observability.Metrics.Enabled {
		srv := server.NewServer(cfg.Observability.Metrics.Port, cfg.Observability.Metrics.Path, registry, logger)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("metrics server shutdown failed", "error", err)
			}
		}()
	}

	// Resolve the bundled schema once; the compiler is handed an absolute path.
	schemaPath, err := filepath.Abs(cfg.Encoder.SchemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}

	// Select the frame encoder for this run
	compiler := encoder.NewExecCompiler(cfg.Encoder.Binary, cfg.Encoder.Timeout())
	factory := encoder.NewFactory(compiler, schemaPath, cfg.Encoder.TempDir, logger)
	frameEncoder := factory.CreateEncoder()
	if frameEncoder.Format() == pkgencoder.FormatJSON {
		metrics.IncFallbackRuns()
	}

	// Initialize the frame sink
	var writer pkgstorage.Writer
	switch cfg.Storage.Backend {
	case "s3":
		writer, err = storage.NewS3Writer(ctx, storage.S3Config{
			Bucket:       cfg.Storage.S3.Bucket,
			Region:       cfg.Storage.S3.Region,
			Prefix:       *outDir,
			Endpoint:     cfg.Storage.S3.Endpoint,
			UsePathStyle: cfg.Storage.S3.UsePathStyle,
			SSEEnabled:   cfg.Storage.S3.SSEEnabled,
			SSEKMSKeyID:  cfg.Storage.S3.SSEKMSKeyID,
		}, logger, metrics)
	default:
		writer, err = storage.NewFileWriter(*outDir, logger, metrics)
	}
	if err != nil {
		return fmt.Errorf("failed to create frame writer: %w", err)
	}
	defer writer.Close()

	// Run the conversion pipeline
	p := pipeline.New(frameEncoder, writer, logger, metrics)
	results := p.Run(ctx, *inputPath)

	converted, failed := 0, 0
	for _, r := range results {
		if r.Failed() {
			failed++
		} else {
			converted++
		}
	}

	// Per-event failures are reported, not escalated to the exit status.
	logger.Info("run complete",
		"events", len(results),
		"converted", converted,
		"failed", failed,
		"format", frameEncoder.Format(),
	)
	return nil
}
