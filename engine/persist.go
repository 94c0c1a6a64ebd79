package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Persist writes record as JSON to dir, named per spec.md §6's scheme
// `<mapping>-<schedule>-<image_num>_<date>_(<time>)_<rand>.pkl`. The
// extension is kept verbatim even though the payload is JSON, not a
// Python pickle: callers treat it as an opaque serialized blob either
// way, and a uuid-derived suffix replaces Python's random.randint for
// collision avoidance. Persist retries on a name collision, matching
// the original's retry-until-unused-filename loop.
func Persist(dir, mappingStrategy, scheduleStrategy string, imageNum int, record ExperimentRecord) (string, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("engine: marshal experiment record: %w", err)
	}

	now := time.Now()
	prefix := fmt.Sprintf("%s-%s-%d", mappingStrategy, scheduleStrategy, imageNum)
	for attempt := 0; attempt < 100; attempt++ {
		suffix := uuid.New().String()[:8]
		name := fmt.Sprintf("%s_%d_%d_(%d_%d_%d)_%s.pkl",
			prefix, now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), suffix)
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			continue // name taken, retry with a fresh suffix
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return "", fmt.Errorf("engine: write %s: %w", path, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("engine: %w", errPersistExhausted)
}
