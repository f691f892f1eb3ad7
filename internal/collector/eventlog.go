package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"demclean/internal/extract"
	"demclean/internal/model"
	"demclean/internal/policy"
)

// EventLogCollector triages demos annotated through the single shared
// event log covering a whole directory. The log is resolved from the
// chosen directory or its parent, and its containing directory becomes
// the effective demo search root.
type EventLogCollector struct {
	demoExt   string
	logName   string
	extractor *extract.EventLogExtractor
	diag      Diagnostics
}

// NewEventLogCollector creates a shared-log collector. diag may be nil.
func NewEventLogCollector(cfg *model.Config, diag Diagnostics) *EventLogCollector {
	if diag == nil {
		diag = nopDiagnostics{}
	}
	return &EventLogCollector{
		demoExt:   cfg.Scan.DemoExtension,
		logName:   cfg.Scan.EventLogName,
		extractor: extract.NewEventLogExtractor(cfg.Scan.DemoExtension),
		diag:      diag,
	}
}

// Source returns the shared-log source tag
func (c *EventLogCollector) Source() model.Source {
	return model.SourceEventLog
}

// Collect resolves the shared log, bulk-extracts the complete demo-to-events
// mapping, then walks the log's directory. A missing log is a warning and
// yields zero results, not an error.
func (c *EventLogCollector) Collect(dir string, killstreakOnly bool) ([]*model.IncludedDemo, error) {
	logPath := extract.FindLog(dir, c.logName)
	if logPath == "" {
		c.diag.Warnf("Failed to find event log file. Ensure %q is in the selected demos directory or its parent directory.", c.logName)
		return nil, nil
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		return nil, fmt.Errorf("read event log: %w", err)
	}

	demosDir := filepath.Dir(logPath)
	mapping := c.extractor.Extract(string(content), demosDir)

	entries, err := os.ReadDir(demosDir)
	if err != nil {
		return nil, fmt.Errorf("read demos directory: %w", err)
	}

	var included []*model.IncludedDemo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), c.demoExt) {
			continue
		}

		demoPath := filepath.Join(demosDir, entry.Name())
		decision := policy.Decide(mapping[demoPath], killstreakOnly, policy.LogKillstreak)

		if !decision.Include {
			c.diag.Skipf("Skipping %q: %s", entry.Name(), decision.Reason)
			continue
		}

		included = append(included, &model.IncludedDemo{
			DemoPath: demoPath,
			Reason:   decision.Reason,
			Source:   model.SourceEventLog,
		})
	}

	return included, nil
}
