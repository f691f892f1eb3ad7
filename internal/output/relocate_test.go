package output

import (
	"os"
	"path/filepath"
	"testing"

	"demclean/internal/model"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func relocateFixture(t *testing.T) (string, []*model.IncludedDemo) {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "alpha.dem"), "demo")
	writeFile(t, filepath.Join(dir, "alpha.json"), `{"events":[]}`)
	writeFile(t, filepath.Join(dir, "bravo.dem"), "demo")

	return dir, []*model.IncludedDemo{
		{
			DemoPath:       filepath.Join(dir, "alpha.dem"),
			AnnotationPath: filepath.Join(dir, "alpha.json"),
			Reason:         model.ReasonNoEvents,
			Source:         model.SourceSidecar,
		},
		{
			DemoPath: filepath.Join(dir, "bravo.dem"),
			Reason:   model.ReasonNoEvents,
			Source:   model.SourceEventLog,
		},
	}
}

func TestRelocator_Move(t *testing.T) {
	dir, records := relocateFixture(t)
	dest := filepath.Join(dir, "out")

	r := &Relocator{}
	count, err := r.Relocate(records, dest)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 relocated files, got %d", count)
	}

	// Files land in per-source subfolders, originals are gone
	for _, path := range []string{
		filepath.Join(dest, "sidecar", "alpha.dem"),
		filepath.Join(dest, "sidecar", "alpha.json"),
		filepath.Join(dest, "eventlog", "bravo.dem"),
	} {
		if !exists(path) {
			t.Errorf("Expected %q to exist", path)
		}
	}
	if exists(filepath.Join(dir, "alpha.dem")) || exists(filepath.Join(dir, "bravo.dem")) {
		t.Error("Expected originals to be gone after move")
	}

	// Moved records point at the new locations
	if records[0].DemoPath != filepath.Join(dest, "sidecar", "alpha.dem") {
		t.Errorf("DemoPath not updated: %q", records[0].DemoPath)
	}
	if records[0].AnnotationPath != filepath.Join(dest, "sidecar", "alpha.json") {
		t.Errorf("AnnotationPath not updated: %q", records[0].AnnotationPath)
	}
}

func TestRelocator_Copy(t *testing.T) {
	dir, records := relocateFixture(t)
	dest := filepath.Join(dir, "out")

	r := &Relocator{Copy: true}
	count, err := r.Relocate(records, dest)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 relocated files, got %d", count)
	}

	// Copies keep the originals and the record paths
	if !exists(filepath.Join(dir, "alpha.dem")) || !exists(filepath.Join(dir, "bravo.dem")) {
		t.Error("Expected originals to remain after copy")
	}
	if records[0].DemoPath != filepath.Join(dir, "alpha.dem") {
		t.Errorf("Copy must not update paths, got %q", records[0].DemoPath)
	}
	if !exists(filepath.Join(dest, "eventlog", "bravo.dem")) {
		t.Error("Expected copied demo under the eventlog subfolder")
	}
}
