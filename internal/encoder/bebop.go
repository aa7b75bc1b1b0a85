package encoder

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	apperrors "github.com/jittakal/orchframes/internal/errors"
	pkgencoder "github.com/jittakal/orchframes/pkg/encoder"
	"github.com/jittakal/orchframes/pkg/event"
)

// Ensure implementation satisfies interface at compile time.
var _ pkgencoder.Encoder = (*BebopEncoder)(nil)

// BebopEncoder encodes normalized payloads to binary frames by handing a
// temporary JSON file to the external bebop compiler. One temp file is
// written per call and removed after the compiler returns, success or
// failure; the UUID in its name keeps concurrent runs sharing a temp
// directory from colliding.
type BebopEncoder struct {
	compiler   Compiler
	schemaPath string
	tempDir    string
}

// NewBebopEncoder creates a binary frame encoder backed by the given
// compiler and schema definition file. An empty tempDir falls back to the
// system temp directory.
func NewBebopEncoder(compiler Compiler, schemaPath, tempDir string) *BebopEncoder {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &BebopEncoder{
		compiler:   compiler,
		schemaPath: schemaPath,
		tempDir:    tempDir,
	}
}

// Encode serializes the payload to a temp JSON file and invokes the
// compiler. A compiler failure surfaces as bebopc_failed; no JSON fallback
// is produced here, by design.
func (e *BebopEncoder) Encode(ctx context.Context, typ event.SchemaType, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload for %s: %w", typ, err)
	}

	tempPath := filepath.Join(e.tempDir, fmt.Sprintf("orchframes_%s_%s.json", typ, uuid.NewString()))
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return nil, fmt.Errorf("write temp payload: %w", err)
	}
	defer os.Remove(tempPath)

	frame, err := e.compiler.Compile(ctx, e.schemaPath, typ, tempPath)
	if err != nil {
		return nil, apperrors.EncoderFailed(string(typ), err)
	}
	return frame, nil
}

// Format returns the frame format.
func (e *BebopEncoder) Format() pkgencoder.FrameFormat {
	return pkgencoder.FormatBebop
}

// FileExtension returns the output file extension.
func (e *BebopEncoder) FileExtension() string {
	return ".bebop"
}
