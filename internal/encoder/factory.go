package encoder

import (
	"log/slog"

	pkgencoder "github.com/jittakal/orchframes/pkg/encoder"
)

// Factory selects the frame encoder for a run based on compiler availability.
// Unavailability degrades to JSON frames; a compiler that is present but
// broken is not masked by the fallback (its failures surface per event).
type Factory struct {
	compiler   Compiler
	schemaPath string
	tempDir    string
	logger     *slog.Logger
}

// NewFactory creates a new encoder factory.
func NewFactory(compiler Compiler, schemaPath, tempDir string, logger *slog.Logger) *Factory {
	return &Factory{
		compiler:   compiler,
		schemaPath: schemaPath,
		tempDir:    tempDir,
		logger:     logger,
	}
}

// CreateEncoder returns the bebop encoder when the compiler is on the
// system path, otherwise the JSON fallback encoder with a warning.
func (f *Factory) CreateEncoder() pkgencoder.Encoder {
	if f.compiler.Available() {
		return NewBebopEncoder(f.compiler, f.schemaPath, f.tempDir)
	}
	f.logger.Warn("bebop compiler not found, writing degraded JSON frames")
	return NewJSONEncoder()
}

// SupportedFormats returns the frame formats this factory can produce.
func SupportedFormats() []pkgencoder.FrameFormat {
	return []pkgencoder.FrameFormat{
		pkgencoder.FormatBebop,
		pkgencoder.FormatJSON,
	}
}
