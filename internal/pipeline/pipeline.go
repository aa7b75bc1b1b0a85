// Package pipeline drives per-event conversion of decoded NDJSON events
// into encoded frames.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jittakal/orchframes/internal/decoder"
	apperrors "github.com/jittakal/orchframes/internal/errors"
	"github.com/jittakal/orchframes/internal/projector"
	"github.com/jittakal/orchframes/internal/storage"
	pkgencoder "github.com/jittakal/orchframes/pkg/encoder"
	"github.com/jittakal/orchframes/pkg/event"
	pkgstorage "github.com/jittakal/orchframes/pkg/storage"
)

// MetricsCollector defines metrics operations for the pipeline.
type MetricsCollector interface {
	IncEventsDecoded(count int)
	IncEventsConverted(eventType string, status string)
	ObserveEncodeDuration(format string, duration float64)
}

// Pipeline converts a bounded list of events, one at a time, in input
// order. Events share no state, so one event's failure never blocks the
// rest of the batch.
type Pipeline struct {
	encoder pkgencoder.Encoder
	writer  pkgstorage.Writer
	logger  *slog.Logger
	metrics MetricsCollector
}

// New creates a pipeline over the given encoder and frame sink.
func New(encoder pkgencoder.Encoder, writer pkgstorage.Writer, logger *slog.Logger, metrics MetricsCollector) *Pipeline {
	return &Pipeline{
		encoder: encoder,
		writer:  writer,
		logger:  logger,
		metrics: metrics,
	}
}

// Run decodes the input file and converts every event, returning one
// ConversionResult per decoded event in input order. Lines that fail to
// decode produce no result at all.
func (p *Pipeline) Run(ctx context.Context, inputPath string) []event.ConversionResult {
	events := decoder.DecodeFile(inputPath)
	if p.metrics != nil {
		p.metrics.IncEventsDecoded(len(events))
	}

	results := make([]event.ConversionResult, 0, len(events))
	for _, raw := range events {
		results = append(results, p.convert(ctx, raw))
	}
	return results
}

func (p *Pipeline) convert(ctx context.Context, raw event.RawEvent) event.ConversionResult {
	eventType := raw.EventType()

	typ, ok := event.Classify(raw)
	if !ok {
		p.logger.Warn("unsupported event type", "event_type", eventType)
		p.countOutcome(eventType, "unsupported_event")
		return event.ConversionResult{
			EventType: eventType,
			Err:       apperrors.Unsupported(eventType),
		}
	}

	payload := projector.Project(typ, raw)

	start := time.Now()
	frame, err := p.encoder.Encode(ctx, typ, payload)
	if p.metrics != nil {
		p.metrics.ObserveEncodeDuration(string(p.encoder.Format()), time.Since(start).Seconds())
	}
	if err != nil {
		p.logger.Error("encode failed", "event_type", eventType, "error", err)
		p.countOutcome(eventType, outcomeLabel(err))
		return event.ConversionResult{EventType: eventType, Err: err}
	}

	name := storage.FrameFileName(raw, p.encoder.FileExtension())
	path, err := p.writer.Write(ctx, name, frame)
	if err != nil {
		p.logger.Error("write failed", "event_type", eventType, "name", name, "error", err)
		p.countOutcome(eventType, "write_failed")
		return event.ConversionResult{EventType: eventType, Err: err}
	}

	p.countOutcome(eventType, "success")
	return event.ConversionResult{EventType: eventType, Path: path}
}

func (p *Pipeline) countOutcome(eventType string, status string) {
	if p.metrics != nil {
		p.metrics.IncEventsConverted(eventType, status)
	}
}

func outcomeLabel(err error) string {
	if errors.Is(err, apperrors.ErrEncoderFailed) {
		return "bebopc_failed"
	}
	return "encode_failed"
}
