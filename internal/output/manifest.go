package output

import (
	"bufio"
	"fmt"
	"os"

	"demclean/internal/model"
)

// WriteManifest writes one demo path per line to path. When
// includeAnnotations is set, each record's annotation path follows on its
// own line (only the sidecar source carries one). Returns the number of
// paths written.
func WriteManifest(records []*model.IncludedDemo, path string, includeAnnotations bool) (count int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create manifest: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close manifest: %w", closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, rec := range records {
		if _, err := fmt.Fprintln(w, rec.DemoPath); err != nil {
			return count, fmt.Errorf("write manifest: %w", err)
		}
		count++

		if includeAnnotations && rec.AnnotationPath != "" {
			if _, err := fmt.Fprintln(w, rec.AnnotationPath); err != nil {
				return count, fmt.Errorf("write manifest: %w", err)
			}
			count++
		}
	}

	if err := w.Flush(); err != nil {
		return count, fmt.Errorf("flush manifest: %w", err)
	}
	return count, nil
}
