package projector

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jittakal/orchframes/pkg/event"
)

func TestProjectPlacementDecision(t *testing.T) {
	raw := event.RawEvent{
		"event_type": "placement_decision",
		"payload": map[string]interface{}{
			"operation_id":     "op-1",
			"package_id":       "pkg-vim",
			"intent":           "install",
			"profile":          "work",
			"selected_surface": "home",
			"result":           "placed",
			"dry_run":          true,
			"extraneous":       "dropped",
		},
	}

	got := Project(event.SchemaPlacementDecision, raw)
	require.Equal(t, event.PlacementDecision{
		OperationID:     "op-1",
		PackageID:       "pkg-vim",
		Intent:          "install",
		Profile:         "work",
		SelectedSurface: "home",
		Result:          "placed",
		DryRun:          true,
	}, got)
}

func TestProjectPlacementDecisionDefaults(t *testing.T) {
	raw := event.RawEvent{"event_type": "placement_decision"}

	got := Project(event.SchemaPlacementDecision, raw)
	require.Equal(t, event.PlacementDecision{}, got)
}

func TestProjectLogScan(t *testing.T) {
	raw := event.RawEvent{
		"event_type": "log_scan",
		"payload": map[string]interface{}{
			"findings": []interface{}{
				map[string]interface{}{"source": "/var/log/a.log", "category": "drift", "line": "x moved"},
				map[string]interface{}{"category": "error"},
			},
			"since": "2024-01-01T00:00:00Z",
			"limit": 25.0,
		},
	}

	got, ok := Project(event.SchemaLogScan, raw).(event.LogScan)
	require.True(t, ok)
	require.Equal(t, "2024-01-01T00:00:00Z", got.Since)
	require.Equal(t, 25, got.Limit)
	require.Len(t, got.Findings, 2)
	require.Equal(t, event.Finding{Source: "/var/log/a.log", Category: "drift", Line: "x moved"}, got.Findings[0])
	require.Equal(t, event.Finding{Category: "error"}, got.Findings[1])
}

func TestProjectLogScanMissingFindings(t *testing.T) {
	raw := event.RawEvent{"event_type": "log_scan", "payload": map[string]interface{}{}}

	got, ok := Project(event.SchemaLogScan, raw).(event.LogScan)
	require.True(t, ok)
	require.NotNil(t, got.Findings)
	require.Empty(t, got.Findings)
	require.Zero(t, got.Limit)
}

func TestProjectStateVaultCapture(t *testing.T) {
	raw := event.RawEvent{
		"event_type": "state_vault_capture",
		"payload": map[string]interface{}{
			"operation_id": "op-2",
			"package_id":   "pkg-zsh",
			"vault_path":   "/home/u/.local/share/vault",
			"entry_dir":    ".config/zsh",
		},
	}

	got := Project(event.SchemaStateVaultCapture, raw)
	require.Equal(t, event.StateVaultCapture{
		OperationID: "op-2",
		PackageID:   "pkg-zsh",
		VaultPath:   "/home/u/.local/share/vault",
		EntryDir:    ".config/zsh",
	}, got)
}

func TestProjectUnmanagedEntries(t *testing.T) {
	raw := event.RawEvent{
		"event_type": "unmanaged_detection",
		"payload": map[string]interface{}{
			"entries": []interface{}{
				map[string]interface{}{
					"path":              "/home/u/.vimrc",
					"name":              ".vimrc",
					"kind":              "file",
					"origin":            "manual",
					"suggested_surface": "home",
					"suggested_route":   "packages/vim",
					"origin_confidence": 0.87,
				},
			},
		},
	}

	got, ok := Project(event.SchemaUnmanagedDetection, raw).(event.UnmanagedDetection)
	require.True(t, ok)
	require.Len(t, got.Entries, 1)
	require.Equal(t, event.UnmanagedEntry{
		Path:             "/home/u/.vimrc",
		Name:             ".vimrc",
		Kind:             "file",
		Origin:           "manual",
		SuggestedSurface: "home",
		SuggestedRoute:   "packages/vim",
		OriginConfidence: "0.87",
	}, got.Entries[0])
}

func TestOriginConfidenceCoercion(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"number", 0.87, "0.87"},
		{"string", "high", "high"},
		{"boolean", true, "true"},
		{"absent", nil, ""},
		{"integral number", 1.0, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := map[string]interface{}{"path": "/x"}
			if tt.value != nil {
				entry["origin_confidence"] = tt.value
			}
			raw := event.RawEvent{
				"event_type": "unmanaged_suggestion",
				"payload": map[string]interface{}{
					"entries": []interface{}{entry},
				},
			}

			got, ok := Project(event.SchemaUnmanagedSuggestion, raw).(event.UnmanagedSuggestion)
			require.True(t, ok)
			require.Equal(t, tt.want, got.Entries[0].OriginConfidence)
		})
	}
}

// The normalized payload must carry exactly the schema's fields, nothing
// extra from the raw event.
func TestProjectionFieldSet(t *testing.T) {
	raw := event.RawEvent{
		"event_type": "placement_decision",
		"payload": map[string]interface{}{
			"operation_id": "op-1",
			"unrelated":    "value",
		},
	}

	data, err := json.Marshal(Project(event.SchemaPlacementDecision, raw))
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	require.ElementsMatch(t,
		[]string{"operation_id", "package_id", "intent", "profile", "selected_surface", "result", "dry_run"},
		keys(fields))
}

func TestProjectUnknownType(t *testing.T) {
	got := Project(event.SchemaType("Bogus"), event.RawEvent{"event_type": "bogus"})
	data, err := json.Marshal(got)
	require.NoError(t, err)
	require.JSONEq(t, "{}", string(data))
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
