// Package generator produces synthetic orchestrator observability events
// for demos and load testing.
package generator

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"
	"go.uber.org/zap"

	"github.com/jittakal/orchframes/pkg/event"
)

// Generator generates fake orchestrator events
type Generator struct {
	faker  faker.Faker
	rand   *rand.Rand
	logger *zap.Logger
	now    time.Time
}

// NewGenerator creates a new event generator. A non-zero seed makes the
// output reproducible.
func NewGenerator(seed int64, logger *zap.Logger) *Generator {
	var f faker.Faker
	var r *rand.Rand
	if seed != 0 {
		src := rand.NewSource(seed)
		f = faker.NewWithSeed(src)
		r = rand.New(rand.NewSource(seed))
	} else {
		f = faker.New()
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		faker:  f,
		rand:   r,
		logger: logger,
		now:    time.Now().UTC(),
	}
}

var eventKinds = []string{
	"placement_decision",
	"log_scan",
	"state_vault_capture",
	"unmanaged_detection",
	"unmanaged_suggestion",
}

// Generate produces count events cycling through all supported kinds,
// each with a distinct RFC3339 timestamp so output frames never collide.
func (g *Generator) Generate(count int) []event.RawEvent {
	events := make([]event.RawEvent, 0, count)
	for i := 0; i < count; i++ {
		kind := eventKinds[i%len(eventKinds)]
		events = append(events, g.generateEvent(kind, i))
	}
	g.logger.Info("generated events", zap.Int("count", count))
	return events
}

func (g *Generator) generateEvent(kind string, seq int) event.RawEvent {
	var payload map[string]interface{}
	switch kind {
	case "placement_decision":
		payload = g.placementDecision()
	case "log_scan":
		payload = g.logScan()
	case "state_vault_capture":
		payload = g.stateVaultCapture()
	default:
		payload = g.unmanagedReport()
	}

	return event.RawEvent{
		"event_type": kind,
		"timestamp":  g.now.Add(time.Duration(seq) * time.Second).Format(time.RFC3339),
		"payload":    payload,
	}
}

func (g *Generator) placementDecision() map[string]interface{} {
	return map[string]interface{}{
		"operation_id":     uuid.New().String(),
		"package_id":       g.packageID(),
		"intent":           g.faker.RandomStringElement([]string{"install", "update", "remove"}),
		"profile":          g.faker.RandomStringElement([]string{"default", "work", "minimal"}),
		"selected_surface": g.faker.RandomStringElement([]string{"home", "config", "state"}),
		"result":           g.faker.RandomStringElement([]string{"placed", "skipped", "conflict"}),
		"dry_run":          g.faker.Boolean().Bool(),
	}
}

func (g *Generator) logScan() map[string]interface{} {
	findings := make([]interface{}, 0, 3)
	for i := 0; i < g.faker.IntBetween(1, 3); i++ {
		findings = append(findings, map[string]interface{}{
			"source":   fmt.Sprintf("/var/log/%s.log", g.faker.Lorem().Word()),
			"category": g.faker.RandomStringElement([]string{"drift", "warning", "error"}),
			"line":     g.faker.Lorem().Sentence(6),
		})
	}
	return map[string]interface{}{
		"findings": findings,
		"since":    g.now.Add(-time.Hour).Format(time.RFC3339),
		"limit":    g.faker.IntBetween(10, 200),
	}
}

func (g *Generator) stateVaultCapture() map[string]interface{} {
	return map[string]interface{}{
		"operation_id": uuid.New().String(),
		"package_id":   g.packageID(),
		"vault_path":   fmt.Sprintf("/home/%s/.local/share/vault", g.faker.Internet().User()),
		"entry_dir":    fmt.Sprintf(".config/%s", g.faker.Lorem().Word()),
		"dry_run":      g.faker.Boolean().Bool(),
	}
}

func (g *Generator) unmanagedReport() map[string]interface{} {
	entries := make([]interface{}, 0, 3)
	for i := 0; i < g.faker.IntBetween(1, 3); i++ {
		name := g.faker.Lorem().Word()
		entries = append(entries, map[string]interface{}{
			"path":              fmt.Sprintf("/home/%s/.%s", g.faker.Internet().User(), name),
			"name":              name,
			"kind":              g.faker.RandomStringElement([]string{"file", "dir", "symlink"}),
			"origin":            g.faker.RandomStringElement([]string{"manual", "installer", "unknown"}),
			"suggested_surface": g.faker.RandomStringElement([]string{"home", "config"}),
			"suggested_route":   fmt.Sprintf("packages/%s", name),
			"origin_confidence": g.confidence(),
		})
	}
	return map[string]interface{}{"entries": entries}
}

// confidence varies its JSON type the way real detectors do.
func (g *Generator) confidence() interface{} {
	switch g.rand.Intn(3) {
	case 0:
		return float64(g.faker.IntBetween(1, 99)) / 100
	case 1:
		return g.faker.RandomStringElement([]string{"low", "medium", "high"})
	default:
		return g.faker.Boolean().Bool()
	}
}

func (g *Generator) packageID() string {
	return fmt.Sprintf("pkg-%s", g.faker.Lorem().Word())
}

// WriteNDJSON writes the events to w, one JSON object per line.
func WriteNDJSON(w io.Writer, events []event.RawEvent) error {
	enc := json.NewEncoder(w)
	for _, e := range events {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("encode event: %w", err)
		}
	}
	return nil
}
