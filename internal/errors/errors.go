// Package errors defines application-specific error types and sentinel errors.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for per-event failure kinds.
var (
	// ErrUnsupportedEvent marks an event whose declared type is unknown
	// or missing.
	ErrUnsupportedEvent = errors.New("unsupported_event")

	// ErrEncoderFailed marks an event for which the external bebop
	// compiler ran but exited non-zero (or timed out).
	ErrEncoderFailed = errors.New("bebopc_failed")
)

// ConversionError represents a per-event conversion failure.
type ConversionError struct {
	EventType string
	Kind      error
	Err       error
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("conversion error: event_type=%s kind=%s: %v",
			e.EventType, e.Kind, e.Err)
	}
	return fmt.Sprintf("conversion error: event_type=%s kind=%s",
		e.EventType, e.Kind)
}

func (e *ConversionError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is lets errors.Is match a ConversionError against its failure kind.
func (e *ConversionError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Unsupported builds the failure for an unknown or missing event type.
func Unsupported(eventType string) *ConversionError {
	return &ConversionError{EventType: eventType, Kind: ErrUnsupportedEvent}
}

// EncoderFailed builds the failure for a non-zero bebopc exit.
func EncoderFailed(eventType string, err error) *ConversionError {
	return &ConversionError{EventType: eventType, Kind: ErrEncoderFailed, Err: err}
}
