package collector

import "demclean/internal/model"

// Collector scans one demos directory and returns the records that passed
// the inclusion policy, in directory-listing order.
type Collector interface {
	// Source returns the tag stamped on every record this collector produces
	Source() model.Source

	// Collect walks dir and applies the inclusion policy to every demo.
	// Failures local to one demo never abort the batch; only directory-level
	// I/O failures are returned as errors.
	Collect(dir string, killstreakOnly bool) ([]*model.IncludedDemo, error)
}

// Diagnostics receives the human-readable console output emitted while
// collecting: skipped demos, missing annotations, missing log warnings.
// Lines arrive in directory-listing order.
type Diagnostics interface {
	Infof(format string, args ...interface{})
	Skipf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopDiagnostics struct{}

func (nopDiagnostics) Infof(string, ...interface{}) {}
func (nopDiagnostics) Skipf(string, ...interface{}) {}
func (nopDiagnostics) Warnf(string, ...interface{}) {}
