package extract

import (
	"regexp"
	"strings"
	"unicode"

	"demclean/internal/model"
)

// sidecarEventRe matches one event entry inside the sidecar JSON blob.
// Example: '"name": "Bookmark",' => Bookmark
var sidecarEventRe = regexp.MustCompile(`"name":\s*"(.*?)",`)

// emptyEvents is the canonical no-events sidecar, compared after
// whitespace removal
const emptyEvents = `{"events":[]}`

// SidecarExtractor extracts event labels from per-demo JSON sidecar files.
// Content is treated as loosely structured text: no JSON parsing, just
// best-effort regex extraction, so malformed sidecars degrade to a present
// but empty event set rather than an error.
type SidecarExtractor struct{}

// NewSidecarExtractor creates a new sidecar extractor
func NewSidecarExtractor() *SidecarExtractor {
	return &SidecarExtractor{}
}

// Extract extracts the event set from raw sidecar content. A nil result
// means the sidecar holds the canonical empty-events blob, i.e. the demo
// carries no annotations at all.
func (e *SidecarExtractor) Extract(content string) *model.EventSet {
	stripped := stripWhitespace(content)

	if stripped == emptyEvents {
		return nil
	}

	events := model.NewEventSet()
	for _, match := range sidecarEventRe.FindAllStringSubmatch(stripped, -1) {
		events.Add(match[1])
	}
	return events
}

// stripWhitespace removes every whitespace rune from s
func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
