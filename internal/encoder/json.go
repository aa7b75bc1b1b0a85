package encoder

import (
	"context"
	"encoding/json"
	"fmt"

	pkgencoder "github.com/jittakal/orchframes/pkg/encoder"
	"github.com/jittakal/orchframes/pkg/event"
)

// Ensure implementation satisfies interface at compile time.
var _ pkgencoder.Encoder = (*JSONEncoder)(nil)

// JSONEncoder is the degraded-mode encoder used when the bebop compiler is
// not installed. The frame is the JSON serialization of the normalized
// payload, so downstream tooling can still replay the run.
type JSONEncoder struct{}

// NewJSONEncoder creates a JSON fallback encoder.
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{}
}

// Encode serializes the normalized payload to JSON.
func (e *JSONEncoder) Encode(_ context.Context, typ event.SchemaType, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload for %s: %w", typ, err)
	}
	return data, nil
}

// Format returns the frame format.
func (e *JSONEncoder) Format() pkgencoder.FrameFormat {
	return pkgencoder.FormatJSON
}

// FileExtension returns the output file extension.
func (e *JSONEncoder) FileExtension() string {
	return ".json"
}
