// Package projector normalizes raw event payloads into schema-shaped records.
//
// Each schema's field set is a strict subset of the loosely-typed upstream
// event. All "what if missing" decisions live here: every field the schema
// expects is present in the projected record, with its zero default when the
// source field is absent, so encoders never reason about absence.
package projector

import (
	"strconv"

	"github.com/jittakal/orchframes/pkg/event"
)

// Project builds the normalized payload for a classified event.
// The switch is total over the schema type set; classification is the sole
// gate for "supported", so the default arm projects an empty record rather
// than failing.
func Project(typ event.SchemaType, raw event.RawEvent) interface{} {
	payload := raw.Payload()

	switch typ {
	case event.SchemaPlacementDecision:
		return event.PlacementDecision{
			OperationID:     stringField(payload, "operation_id"),
			PackageID:       stringField(payload, "package_id"),
			Intent:          stringField(payload, "intent"),
			Profile:         stringField(payload, "profile"),
			SelectedSurface: stringField(payload, "selected_surface"),
			Result:          stringField(payload, "result"),
			DryRun:          boolField(payload, "dry_run"),
		}
	case event.SchemaLogScan:
		return event.LogScan{
			Findings: projectFindings(listField(payload, "findings")),
			Since:    stringField(payload, "since"),
			Limit:    intField(payload, "limit"),
		}
	case event.SchemaStateVaultCapture:
		return event.StateVaultCapture{
			OperationID: stringField(payload, "operation_id"),
			PackageID:   stringField(payload, "package_id"),
			VaultPath:   stringField(payload, "vault_path"),
			EntryDir:    stringField(payload, "entry_dir"),
			DryRun:      boolField(payload, "dry_run"),
		}
	case event.SchemaUnmanagedDetection:
		return event.UnmanagedDetection{
			Entries: projectEntries(listField(payload, "entries")),
		}
	case event.SchemaUnmanagedSuggestion:
		return event.UnmanagedSuggestion{
			Entries: projectEntries(listField(payload, "entries")),
		}
	default:
		return map[string]interface{}{}
	}
}

func projectFindings(items []interface{}) []event.Finding {
	findings := make([]event.Finding, 0, len(items))
	for _, item := range items {
		src, _ := item.(map[string]interface{})
		findings = append(findings, event.Finding{
			Source:   stringField(src, "source"),
			Category: stringField(src, "category"),
			Line:     stringField(src, "line"),
		})
	}
	return findings
}

func projectEntries(items []interface{}) []event.UnmanagedEntry {
	entries := make([]event.UnmanagedEntry, 0, len(items))
	for _, item := range items {
		src, _ := item.(map[string]interface{})
		entries = append(entries, event.UnmanagedEntry{
			Path:             stringField(src, "path"),
			Name:             stringField(src, "name"),
			Kind:             stringField(src, "kind"),
			Origin:           stringField(src, "origin"),
			SuggestedSurface: stringField(src, "suggested_surface"),
			SuggestedRoute:   stringField(src, "suggested_route"),
			OriginConfidence: textField(src, "origin_confidence"),
		})
	}
	return entries
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func boolField(m map[string]interface{}, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func intField(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func listField(m map[string]interface{}, key string) []interface{} {
	l, _ := m[key].([]interface{})
	return l
}

// textField coerces a value of any upstream type (number, string, boolean,
// null) to its textual representation. Detectors disagree on the confidence
// type, so the normalization is deliberately lossy.
func textField(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
