// Package storage implements frame sink writers and output naming.
package storage

import (
	"fmt"
	"strings"

	"github.com/jittakal/orchframes/pkg/event"
)

// FrameFileName derives the output file name for an event:
// <event_type>_<sanitized_timestamp><ext>. Colons in the timestamp are
// replaced so ISO-8601 timestamps are filesystem-safe. Naming is not
// guaranteed unique: two events of the same type with identical (or
// absent) timestamps collide and the later one overwrites the earlier
// file. Callers needing uniqueness must supply distinguishing timestamps.
func FrameFileName(raw event.RawEvent, ext string) string {
	eventType := raw.EventType()
	if eventType == "" {
		eventType = "event"
	}
	timestamp := raw.Timestamp()
	if timestamp == "" {
		timestamp = "unknown"
	}
	timestamp = strings.ReplaceAll(timestamp, ":", "-")
	return fmt.Sprintf("%s_%s%s", eventType, timestamp, ext)
}
