// Package decoder turns NDJSON input into raw events.
package decoder

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/jittakal/orchframes/pkg/event"
)

// maxLineBytes bounds a single event line; orchestrator events are small
// but detection reports can carry many entries.
const maxLineBytes = 4 * 1024 * 1024

// DecodeFile reads one file of newline-delimited JSON events.
// Blank lines and lines that fail to parse are dropped without error;
// an unreadable file decodes to an empty event list.
func DecodeFile(path string) []event.RawEvent {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads newline-delimited JSON events from r, keeping only lines
// that parse as JSON objects.
func Decode(r io.Reader) []event.RawEvent {
	var events []event.RawEvent
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var raw event.RawEvent
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			continue
		}
		events = append(events, raw)
	}
	return events
}
