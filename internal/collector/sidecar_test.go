package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"demclean/internal/cache"
	"demclean/internal/model"
)

// recordingDiag captures diagnostic lines for assertions
type recordingDiag struct {
	infos []string
	skips []string
	warns []string
}

func (d *recordingDiag) Infof(format string, args ...interface{}) {
	d.infos = append(d.infos, fmt.Sprintf(format, args...))
}

func (d *recordingDiag) Skipf(format string, args ...interface{}) {
	d.skips = append(d.skips, fmt.Sprintf(format, args...))
}

func (d *recordingDiag) Warnf(format string, args ...interface{}) {
	d.warns = append(d.warns, fmt.Sprintf(format, args...))
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const (
	emptySidecar      = `{"events":[]}`
	killstreakSidecar = `{"events":[{"name": "Killstreak", "value": "3", "tick": "100"}]}`
	bookmarkSidecar   = `{"events":[{"name": "General", "value": "clutch", "tick": "200"}]}`
)

// sidecarFixture builds a directory with one demo per annotation flavor
func sidecarFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "alpha.dem"), "demo")
	writeFile(t, filepath.Join(dir, "alpha.json"), emptySidecar)
	writeFile(t, filepath.Join(dir, "bravo.dem"), "demo")
	writeFile(t, filepath.Join(dir, "bravo.json"), killstreakSidecar)
	writeFile(t, filepath.Join(dir, "charlie.dem"), "demo")
	writeFile(t, filepath.Join(dir, "charlie.json"), bookmarkSidecar)

	return dir
}

func TestSidecarCollector_KillstreakOnlyScenario(t *testing.T) {
	dir := sidecarFixture(t)
	diag := &recordingDiag{}
	col := NewSidecarCollector(model.DefaultConfig(), nil, diag)

	included, err := col.Collect(dir, true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(included) != 2 {
		t.Fatalf("Expected 2 included demos, got %d", len(included))
	}

	if filepath.Base(included[0].DemoPath) != "alpha.dem" || included[0].Reason != model.ReasonNoEvents {
		t.Errorf("Record 0: expected alpha.dem/no events, got %s/%s", included[0].DemoPath, included[0].Reason)
	}
	if filepath.Base(included[1].DemoPath) != "bravo.dem" || included[1].Reason != model.ReasonOnlyKillstreaks {
		t.Errorf("Record 1: expected bravo.dem/only killstreaks, got %s/%s", included[1].DemoPath, included[1].Reason)
	}

	for _, rec := range included {
		if rec.Source != model.SourceSidecar {
			t.Errorf("Expected sidecar source, got %q", rec.Source)
		}
		if rec.AnnotationPath == "" {
			t.Errorf("Expected annotation path on %s", rec.DemoPath)
		}
	}

	if len(diag.skips) != 1 || !strings.Contains(diag.skips[0], "charlie.dem") {
		t.Errorf("Expected one skip for charlie.dem, got %v", diag.skips)
	}
}

func TestSidecarCollector_DefaultPolicy(t *testing.T) {
	dir := sidecarFixture(t)
	col := NewSidecarCollector(model.DefaultConfig(), nil, nil)

	included, err := col.Collect(dir, false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Default policy keeps pristine demos only; even the killstreak-only
	// demo is excluded.
	if len(included) != 1 || filepath.Base(included[0].DemoPath) != "alpha.dem" {
		t.Fatalf("Expected only alpha.dem, got %v", included)
	}
}

func TestSidecarCollector_MissingSidecar(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "orphan.dem"), "demo")

	diag := &recordingDiag{}
	col := NewSidecarCollector(model.DefaultConfig(), nil, diag)

	included, err := col.Collect(dir, false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(included) != 0 {
		t.Errorf("Expected no included demos, got %v", included)
	}
	if len(diag.infos) != 1 || !strings.Contains(diag.infos[0], "orphan.dem") {
		t.Errorf("Expected a diagnostic for orphan.dem, got %v", diag.infos)
	}
}

func TestSidecarCollector_UnreadableSidecar(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "alpha.dem"), "demo")
	writeFile(t, filepath.Join(dir, "alpha.json"), emptySidecar)
	writeFile(t, filepath.Join(dir, "broken.dem"), "demo")
	// A directory where the sidecar should be: stat succeeds, read fails
	if err := os.Mkdir(filepath.Join(dir, "broken.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	diag := &recordingDiag{}
	col := NewSidecarCollector(model.DefaultConfig(), nil, diag)

	included, err := col.Collect(dir, false)
	if err != nil {
		t.Fatalf("Per-demo read failures must not abort the batch, got %v", err)
	}

	// The unreadable demo is excluded, the rest of the batch continues
	if len(included) != 1 || filepath.Base(included[0].DemoPath) != "alpha.dem" {
		t.Fatalf("Expected only alpha.dem, got %v", included)
	}
	if len(diag.warns) != 1 {
		t.Errorf("Expected one warning, got %v", diag.warns)
	}
	found := false
	for _, skip := range diag.skips {
		if strings.Contains(skip, "broken.dem") && strings.Contains(skip, model.ReasonReadFailed.String()) {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected broken.dem skipped with read-failure reason, got %v", diag.skips)
	}
}

func TestSidecarCollector_Idempotent(t *testing.T) {
	dir := sidecarFixture(t)
	cfg := model.DefaultConfig()
	col := NewSidecarCollector(cfg, cache.NewMemoryCache(cfg.Cache.TTL, 0), nil)

	first, err := col.Collect(dir, true)
	if err != nil {
		t.Fatal(err)
	}
	second, err := col.Collect(dir, true)
	if err != nil {
		t.Fatal(err)
	}

	// Second pass hits the extraction cache and must produce the exact
	// same ordered output.
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical output across runs:\nfirst:  %v\nsecond: %v", first, second)
	}
}
