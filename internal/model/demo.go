package model

// Source identifies which collector produced a record. It doubles as the
// output subfolder name during relocation.
type Source string

const (
	SourceSidecar  Source = "sidecar"  // per-demo JSON annotation files
	SourceEventLog Source = "eventlog" // shared KillStreaks.txt log
)

// Reason explains why a demo passed or failed the inclusion policy
type Reason int

const (
	ReasonNoEvents          Reason = iota // no annotations reference this demo
	ReasonHasEvents                       // annotated, default policy keeps pristine demos only
	ReasonOnlyKillstreaks                 // annotated, but every event is a killstreak
	ReasonHasCustomBookmark               // annotated with at least one non-killstreak event
	ReasonReadFailed                      // annotation data could not be read
)

func (r Reason) String() string {
	switch r {
	case ReasonNoEvents:
		return "no events"
	case ReasonHasEvents:
		return "has events"
	case ReasonOnlyKillstreaks:
		return "has only killstreak events"
	case ReasonHasCustomBookmark:
		return "has custom bookmark"
	case ReasonReadFailed:
		return "failed to read annotation data"
	default:
		return "unknown"
	}
}

// IncludedDemo is one demo file that passed the inclusion policy.
//
// DemoPath refers to an existing file at construction time. Records are
// immutable afterwards, with one exception: the output stage updates the
// paths in place after it physically moves the files.
type IncludedDemo struct {
	DemoPath       string // primary demo file
	AnnotationPath string // per-demo sidecar, empty for the shared-log source
	Reason         Reason // observability only, never consulted downstream
	Source         Source // picks the output subfolder
}
