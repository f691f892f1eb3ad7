package output

import (
	"sync"
	"time"
)

// defaultName is computed once so every action within one run (relocate,
// export) targets the same timestamped name.
var defaultName = sync.OnceValue(func() string {
	return "demclean-" + time.Now().Format("2006-01-02-15-04-05")
})

// DefaultName returns the timestamped default output name for this run,
// e.g. "demclean-2023-11-27-22-01-30". Shared by the relocation directory
// and the manifest file (with an extension appended).
func DefaultName() string {
	return defaultName()
}
