package observability

import (
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		config LoggingConfig
	}{
		{"json info", LoggingConfig{Level: "info", Format: "json", Output: "stderr"}},
		{"text debug", LoggingConfig{Level: "debug", Format: "text", Output: "stdout"}},
		{"warn alias", LoggingConfig{Level: "warning", Format: "json"}},
		{"unknown values fall back", LoggingConfig{Level: "loud", Format: "xml", Output: "pipe"}},
		{"empty config", LoggingConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.config)
			if logger == nil {
				t.Fatal("expected non-nil logger")
			}
		})
	}
}
