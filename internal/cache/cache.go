package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"time"

	"demclean/internal/model"
)

// Cache stores extraction results so one process can triage the same
// directory more than once (preview, then relocate) without re-reading
// every annotation file.
type Cache interface {
	Get(key string) (*model.EventSet, bool)
	Set(key string, events *model.EventSet, ttl time.Duration)
}

// Key derives a cache key from an annotation file's path and stat info.
// Any modification changes mtime or size and invalidates the entry.
func Key(path string, info fs.FileInfo) string {
	raw := fmt.Sprintf("%s|%d|%d", path, info.ModTime().UnixNano(), info.Size())
	hash := sha256.Sum256([]byte(raw))
	return "demclean:v1:" + hex.EncodeToString(hash[:])
}
