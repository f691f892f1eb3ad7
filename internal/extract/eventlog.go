package extract

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"demclean/internal/model"
)

// logEventRe matches one annotation line in the shared event log.
// Example: '[2023/11/27/ 22:01] Kill Streak:5 ("20231127_2152_cp_altitude_RED_BLU" at 32900)'
// => Kill Streak:5, 20231127_2152_cp_altitude_RED_BLU
var logEventRe = regexp.MustCompile(`\[[\d/\s:]+\]\s?(.+)\s\("(.+)"\s?at`)

// EventLogExtractor extracts the demo-to-events mapping from the shared
// event log that covers an entire demos directory.
type EventLogExtractor struct {
	demoExt string
}

// NewEventLogExtractor creates an extractor for demos with the given
// file extension (e.g. ".dem")
func NewEventLogExtractor(demoExt string) *EventLogExtractor {
	return &EventLogExtractor{demoExt: demoExt}
}

// FindLog locates the shared event log: first in dir, then in its parent.
// Returns the empty string when neither location has it. The log may
// legitimately live one level above the demos (the recorder writes it next
// to the game folder), which is why the parent is searched.
func FindLog(dir, name string) string {
	candidates := []string{
		filepath.Join(dir, name),
		filepath.Join(filepath.Dir(dir), name),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Extract parses the full log content and returns a mapping from demo path
// to its event set. Demo names are matched case-insensitively: the captured
// base name is lower-cased, the demo extension appended, and the result
// resolved against demosDir. References to demos that no longer exist on
// disk are discarded; the log routinely outlives its demos.
func (e *EventLogExtractor) Extract(content string, demosDir string) map[string]*model.EventSet {
	mapping := make(map[string]*model.EventSet)

	for _, match := range logEventRe.FindAllStringSubmatch(content, -1) {
		eventType, demoName := match[1], match[2]

		demoPath := filepath.Join(demosDir, strings.ToLower(demoName)+e.demoExt)
		if _, err := os.Stat(demoPath); err != nil {
			continue
		}

		events, ok := mapping[demoPath]
		if !ok {
			events = model.NewEventSet()
			mapping[demoPath] = events
		}
		events.Add(eventType)
	}

	return mapping
}
