// Package encoder defines interfaces for encoding normalized payloads
// into output frames.
package encoder

import (
	"context"

	"github.com/jittakal/orchframes/pkg/event"
)

// FrameFormat represents the frame output format.
type FrameFormat string

const (
	FormatBebop FrameFormat = "bebop"
	FormatJSON  FrameFormat = "json"
)

// Encoder encodes one normalized payload into a frame.
type Encoder interface {
	// Encode produces the frame bytes for a payload of the given schema type.
	Encode(ctx context.Context, typ event.SchemaType, payload interface{}) ([]byte, error)

	// Format returns the frame format this encoder produces.
	Format() FrameFormat

	// FileExtension returns the output file extension (e.g. ".bebop", ".json").
	FileExtension() string
}
