// Package event defines the core event types for frame conversion.
//
// This package contains the public API for working with raw orchestrator
// observability events and their schema-typed normalized payloads.
package event

// RawEvent is one decoded NDJSON record as emitted by the orchestrator.
// Its shape is dynamic; all typed access goes through the projector.
type RawEvent map[string]interface{}

// EventType returns the declared event type, or "" if absent.
func (e RawEvent) EventType() string {
	s, _ := e["event_type"].(string)
	return s
}

// Timestamp returns the declared timestamp, or "" if absent.
func (e RawEvent) Timestamp() string {
	s, _ := e["timestamp"].(string)
	return s
}

// Payload returns the nested payload record. A missing or mistyped
// payload yields an empty map so field reads fall through to defaults.
func (e RawEvent) Payload() map[string]interface{} {
	p, _ := e["payload"].(map[string]interface{})
	if p == nil {
		return map[string]interface{}{}
	}
	return p
}

// SchemaType identifies one of the fixed set of bebop wire schemas.
type SchemaType string

const (
	SchemaPlacementDecision   SchemaType = "PlacementDecision"
	SchemaLogScan             SchemaType = "LogScan"
	SchemaStateVaultCapture   SchemaType = "StateVaultCapture"
	SchemaUnmanagedDetection  SchemaType = "UnmanagedDetection"
	SchemaUnmanagedSuggestion SchemaType = "UnmanagedSuggestion"
)

// schemaTypes maps declared event types to schema type names.
// This table is the single source of truth for supported event kinds;
// the projector switches over the same set.
var schemaTypes = map[string]SchemaType{
	"placement_decision":   SchemaPlacementDecision,
	"log_scan":             SchemaLogScan,
	"state_vault_capture":  SchemaStateVaultCapture,
	"unmanaged_detection":  SchemaUnmanagedDetection,
	"unmanaged_suggestion": SchemaUnmanagedSuggestion,
}

// Classify maps an event's declared type to its schema type name.
// The lookup is exact and case-sensitive; ok is false for unknown or
// missing event types.
func Classify(e RawEvent) (SchemaType, bool) {
	st, ok := schemaTypes[e.EventType()]
	return st, ok
}

// SupportedEventTypes returns the declared event types this pipeline
// can encode, in no particular order.
func SupportedEventTypes() []string {
	types := make([]string, 0, len(schemaTypes))
	for t := range schemaTypes {
		types = append(types, t)
	}
	return types
}

// PlacementDecision is the normalized payload for placement_decision events.
type PlacementDecision struct {
	OperationID     string `json:"operation_id"`
	PackageID       string `json:"package_id"`
	Intent          string `json:"intent"`
	Profile         string `json:"profile"`
	SelectedSurface string `json:"selected_surface"`
	Result          string `json:"result"`
	DryRun          bool   `json:"dry_run"`
}

// Finding is one log-scan finding.
type Finding struct {
	Source   string `json:"source"`
	Category string `json:"category"`
	Line     string `json:"line"`
}

// LogScan is the normalized payload for log_scan events.
type LogScan struct {
	Findings []Finding `json:"findings"`
	Since    string    `json:"since"`
	Limit    int       `json:"limit"`
}

// StateVaultCapture is the normalized payload for state_vault_capture events.
type StateVaultCapture struct {
	OperationID string `json:"operation_id"`
	PackageID   string `json:"package_id"`
	VaultPath   string `json:"vault_path"`
	EntryDir    string `json:"entry_dir"`
	DryRun      bool   `json:"dry_run"`
}

// UnmanagedEntry is one detected or suggested unmanaged entry.
// OriginConfidence is always text: upstream emits it as a number, string,
// or boolean depending on the detector, and the wire schema carries a
// single string field.
type UnmanagedEntry struct {
	Path             string `json:"path"`
	Name             string `json:"name"`
	Kind             string `json:"kind"`
	Origin           string `json:"origin"`
	SuggestedSurface string `json:"suggested_surface"`
	SuggestedRoute   string `json:"suggested_route"`
	OriginConfidence string `json:"origin_confidence"`
}

// UnmanagedDetection is the normalized payload for unmanaged_detection events.
type UnmanagedDetection struct {
	Entries []UnmanagedEntry `json:"entries"`
}

// UnmanagedSuggestion is the normalized payload for unmanaged_suggestion events.
type UnmanagedSuggestion struct {
	Entries []UnmanagedEntry `json:"entries"`
}

// ConversionResult is the per-event outcome of one pipeline run entry.
// Exactly one of Path or Err is meaningful.
type ConversionResult struct {
	EventType string
	Path      string
	Err       error
}

// Failed reports whether the event's conversion failed.
func (r ConversionResult) Failed() bool {
	return r.Err != nil
}
