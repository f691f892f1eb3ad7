package model

// EventSet is the set of event-type labels extracted for one demo. Labels
// keep their encounter order for diagnostics, but duplicates carry no
// meaning for the inclusion policy.
//
// A nil *EventSet means "no annotations at all"; a non-nil empty set means
// an annotation exists but yielded no labels. The inclusion policy treats
// the two differently, so the distinction is load-bearing.
type EventSet struct {
	labels []string
	seen   map[string]bool
}

// NewEventSet creates an empty, present event set
func NewEventSet() *EventSet {
	return &EventSet{seen: make(map[string]bool)}
}

// Add inserts a label, ignoring duplicates
func (s *EventSet) Add(label string) {
	if s.seen[label] {
		return
	}
	s.seen[label] = true
	s.labels = append(s.labels, label)
}

// Labels returns the labels in encounter order
func (s *EventSet) Labels() []string {
	return s.labels
}

// Len returns the number of distinct labels
func (s *EventSet) Len() int {
	return len(s.labels)
}
