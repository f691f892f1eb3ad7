package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"demclean/internal/cache"
	"demclean/internal/extract"
	"demclean/internal/model"
	"demclean/internal/policy"
)

// SidecarCollector triages demos annotated by per-demo JSON sidecar files:
// same base name as the demo, different extension.
type SidecarCollector struct {
	demoExt    string
	sidecarExt string
	extractor  *extract.SidecarExtractor
	cache      cache.Cache
	cacheTTL   time.Duration
	diag       Diagnostics
}

// NewSidecarCollector creates a sidecar collector. diag may be nil.
func NewSidecarCollector(cfg *model.Config, c cache.Cache, diag Diagnostics) *SidecarCollector {
	if diag == nil {
		diag = nopDiagnostics{}
	}
	if c == nil {
		c = cache.Nop{}
	}
	return &SidecarCollector{
		demoExt:    cfg.Scan.DemoExtension,
		sidecarExt: cfg.Scan.SidecarExtension,
		extractor:  extract.NewSidecarExtractor(),
		cache:      c,
		cacheTTL:   cfg.Cache.TTL,
		diag:       diag,
	}
}

// Source returns the sidecar source tag
func (c *SidecarCollector) Source() model.Source {
	return model.SourceSidecar
}

// Collect walks dir and applies the inclusion policy to every demo that
// has a sidecar. Demos without one are reported and skipped; unreadable
// sidecars exclude just that demo.
func (c *SidecarCollector) Collect(dir string, killstreakOnly bool) ([]*model.IncludedDemo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read demos directory: %w", err)
	}

	var included []*model.IncludedDemo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), c.demoExt) {
			continue
		}

		demoPath := filepath.Join(dir, entry.Name())
		sidecarPath := strings.TrimSuffix(demoPath, c.demoExt) + c.sidecarExt

		if _, err := os.Stat(sidecarPath); err != nil {
			c.diag.Infof("Can't find %s events file for demo %q", c.sidecarExt, entry.Name())
			continue
		}

		events, err := c.extractEvents(sidecarPath)
		decision := policy.Decision{Include: false, Reason: model.ReasonReadFailed}
		if err != nil {
			c.diag.Warnf("Failed to read events file %q: %v", sidecarPath, err)
		} else {
			decision = policy.Decide(events, killstreakOnly, policy.SidecarKillstreak)
		}

		if !decision.Include {
			c.diag.Skipf("Skipping %q: %s", entry.Name(), decision.Reason)
			continue
		}

		included = append(included, &model.IncludedDemo{
			DemoPath:       demoPath,
			AnnotationPath: sidecarPath,
			Reason:         decision.Reason,
			Source:         model.SourceSidecar,
		})
	}

	return included, nil
}

// extractEvents reads and extracts one sidecar, consulting the cache first
func (c *SidecarCollector) extractEvents(sidecarPath string) (*model.EventSet, error) {
	info, err := os.Stat(sidecarPath)
	if err != nil {
		return nil, err
	}

	key := cache.Key(sidecarPath, info)
	if events, found := c.cache.Get(key); found {
		return events, nil
	}

	content, err := os.ReadFile(sidecarPath)
	if err != nil {
		return nil, err
	}

	events := c.extractor.Extract(string(content))
	c.cache.Set(key, events, c.cacheTTL)
	return events, nil
}
