package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jittakal/orchframes/internal/config/dto"
)

func TestLoadDefaults(t *testing.T) {
	loader := NewLoader()
	cfg, err := loader.Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Encoder.Binary != "bebopc" {
		t.Errorf("encoder.binary = %q", cfg.Encoder.Binary)
	}
	if cfg.Encoder.SchemaPath != "schemas/orchestration.bop" {
		t.Errorf("encoder.schema_path = %q", cfg.Encoder.SchemaPath)
	}
	if cfg.Encoder.Timeout() != 30*time.Second {
		t.Errorf("encoder timeout = %v", cfg.Encoder.Timeout())
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("storage.backend = %q", cfg.Storage.Backend)
	}
	if cfg.Observability.Logging.Level != "info" {
		t.Errorf("logging.level = %q", cfg.Observability.Logging.Level)
	}
	if cfg.Observability.Metrics.Enabled {
		t.Error("metrics should be disabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
encoder:
  binary: bebopc-nightly
  timeout_ms: 5000
storage:
  backend: s3
  s3:
    bucket: orch-frames
    region: eu-west-1
observability:
  logging:
    level: debug
`
	path := filepath.Join(t.TempDir(), "application.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Encoder.Binary != "bebopc-nightly" {
		t.Errorf("encoder.binary = %q", cfg.Encoder.Binary)
	}
	if cfg.Encoder.Timeout() != 5*time.Second {
		t.Errorf("encoder timeout = %v", cfg.Encoder.Timeout())
	}
	if cfg.Storage.S3.Bucket != "orch-frames" {
		t.Errorf("s3.bucket = %q", cfg.Storage.S3.Bucket)
	}
	// Defaults still apply for keys the file omits.
	if cfg.Encoder.SchemaPath != "schemas/orchestration.bop" {
		t.Errorf("encoder.schema_path = %q", cfg.Encoder.SchemaPath)
	}
}

func TestValidate(t *testing.T) {
	base := func() *dto.ApplicationConfig {
		return &dto.ApplicationConfig{
			Encoder: dto.EncoderConfig{
				Binary:     "bebopc",
				SchemaPath: "schemas/orchestration.bop",
				TimeoutMS:  30000,
			},
			Storage: dto.StorageConfig{Backend: "file"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*dto.ApplicationConfig)
		wantErr bool
	}{
		{"valid file backend", func(c *dto.ApplicationConfig) {}, false},
		{"missing binary", func(c *dto.ApplicationConfig) { c.Encoder.Binary = "" }, true},
		{"missing schema", func(c *dto.ApplicationConfig) { c.Encoder.SchemaPath = "" }, true},
		{"zero timeout", func(c *dto.ApplicationConfig) { c.Encoder.TimeoutMS = 0 }, true},
		{"unknown backend", func(c *dto.ApplicationConfig) { c.Storage.Backend = "ftp" }, true},
		{"s3 missing bucket", func(c *dto.ApplicationConfig) {
			c.Storage.Backend = "s3"
			c.Storage.S3.Region = "us-east-1"
		}, true},
		{"s3 missing region", func(c *dto.ApplicationConfig) {
			c.Storage.Backend = "s3"
			c.Storage.S3.Bucket = "b"
		}, true},
		{"s3 valid", func(c *dto.ApplicationConfig) {
			c.Storage.Backend = "s3"
			c.Storage.S3.Bucket = "b"
			c.Storage.S3.Region = "us-east-1"
		}, false},
		{"bad metrics port", func(c *dto.ApplicationConfig) {
			c.Observability.Metrics.Enabled = true
			c.Observability.Metrics.Port = 70000
		}, true},
	}

	loader := NewLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := loader.Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
