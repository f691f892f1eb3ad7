// Package output is the stage that acts on already-decided records: it
// relocates included demos into per-source subfolders or exports their
// paths to a manifest file. No data flows back into the collectors.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"demclean/internal/fileutil"
	"demclean/internal/model"
)

// Relocator moves or copies included demos under a destination root
type Relocator struct {
	Copy bool // copy instead of move

	// Printf receives one status line per relocated file; nil disables output
	Printf func(format string, args ...interface{})
}

// Relocate relocates every record's demo (and annotation, when present)
// into destRoot/<source>/. After a move, the record's paths are updated to
// the new location.
func (r *Relocator) Relocate(records []*model.IncludedDemo, destRoot string) (int, error) {
	moved := 0
	for _, rec := range records {
		destDir := filepath.Join(destRoot, string(rec.Source))
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return moved, fmt.Errorf("create output directory: %w", err)
		}

		if err := r.relocateFile(&rec.DemoPath, destDir); err != nil {
			return moved, err
		}
		moved++

		if rec.AnnotationPath != "" {
			if err := r.relocateFile(&rec.AnnotationPath, destDir); err != nil {
				return moved, err
			}
			moved++
		}
	}
	return moved, nil
}

// relocateFile moves or copies one file into destDir; on move, *path is
// updated in place
func (r *Relocator) relocateFile(path *string, destDir string) error {
	newPath := filepath.Join(destDir, filepath.Base(*path))

	if r.Copy {
		if err := fileutil.CopyFile(*path, newPath); err != nil {
			return fmt.Errorf("copy %q: %w", *path, err)
		}
	} else {
		if err := fileutil.MoveFile(*path, newPath); err != nil {
			return fmt.Errorf("move %q: %w", *path, err)
		}
	}

	if r.Printf != nil {
		r.Printf("\t%s %q", r.verb(), filepath.Base(*path))
	}

	if !r.Copy {
		*path = newPath
	}
	return nil
}

func (r *Relocator) verb() string {
	if r.Copy {
		return "Copied"
	}
	return "Moved"
}
