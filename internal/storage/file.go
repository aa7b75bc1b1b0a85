package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jittakal/orchframes/pkg/storage"
)

// Ensure implementation satisfies interface at compile time.
var _ storage.Writer = (*FileWriter)(nil)

// MetricsCollector defines metrics operations for storage.
type MetricsCollector interface {
	IncFramesWritten(backend string, status string)
	ObserveFrameSize(backend string, size float64)
	IncStorageErrors(backend string, operation string)
}

// FileWriter implements storage.Writer for local filesystem sinks.
// Frames land directly under the base directory; an existing frame with
// the same name is overwritten per the naming policy.
type FileWriter struct {
	baseDir string
	logger  *slog.Logger
	metrics MetricsCollector
}

// NewFileWriter creates a filesystem frame writer rooted at baseDir,
// creating the directory (including parents) if missing.
func NewFileWriter(baseDir string, logger *slog.Logger, metrics MetricsCollector) (*FileWriter, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	logger.Info("filesystem writer created", "base_dir", baseDir)

	return &FileWriter{
		baseDir: baseDir,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Write stores one frame under the base directory and returns its path.
func (w *FileWriter) Write(_ context.Context, name string, frame []byte) (string, error) {
	path := filepath.Join(w.baseDir, name)
	if err := os.WriteFile(path, frame, 0644); err != nil {
		if w.metrics != nil {
			w.metrics.IncStorageErrors("file", "write")
		}
		return "", fmt.Errorf("failed to write frame: %w", err)
	}

	w.logger.Debug("wrote frame", "path", path, "size", len(frame))

	if w.metrics != nil {
		w.metrics.IncFramesWritten("file", "success")
		w.metrics.ObserveFrameSize("file", float64(len(frame)))
	}
	return path, nil
}

// Close closes the writer.
func (w *FileWriter) Close() error {
	return nil
}
