package pipeline

import (
	"fmt"
	"os"

	"demclean/internal/cache"
	"demclean/internal/collector"
	"demclean/internal/model"
)

// Pipeline orchestrates one triage pass: validate the directory, run the
// chosen collector, hand the immutable result to the output stage. Each
// pass is a single sequential scan -> extract -> decide -> collect flow
// with no state carried between invocations.
type Pipeline struct {
	collectors map[model.Source]collector.Collector
}

// NewPipeline creates a pipeline with both collectors registered.
// diag may be nil to silence console diagnostics.
func NewPipeline(cfg *model.Config, diag collector.Diagnostics) *Pipeline {
	var c cache.Cache = cache.Nop{}
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	return &Pipeline{
		collectors: map[model.Source]collector.Collector{
			model.SourceSidecar:  collector.NewSidecarCollector(cfg, c, diag),
			model.SourceEventLog: collector.NewEventLogCollector(cfg, diag),
		},
	}
}

// Options selects the annotation source and policy for one pass
type Options struct {
	Source         model.Source
	KillstreakOnly bool
}

// Triage runs one collection pass over dir. A nonexistent directory is the
// only precondition failure and aborts before any collection begins.
func (p *Pipeline) Triage(dir string, opts Options) ([]*model.IncludedDemo, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("directory %q does not exist", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", dir)
	}

	col, ok := p.collectors[opts.Source]
	if !ok {
		return nil, fmt.Errorf("unknown annotation source %q", opts.Source)
	}

	return col.Collect(dir, opts.KillstreakOnly)
}
