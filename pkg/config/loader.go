package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// tableCache memoizes parsed correction tables by source key. Entries are
// never evicted: the set of correction tables is small and fixed for the
// lifetime of a process, and repeated scheme construction must not reparse.
type tableCache struct {
	mu    sync.RWMutex
	byKey map[string]*CorrectionTables
}

func (c *tableCache) get(key string) (*CorrectionTables, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.byKey[key]
	return t, ok
}

func (c *tableCache) put(key string, t *CorrectionTables) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byKey[key] = t
}

var loadedTables = tableCache{byKey: make(map[string]*CorrectionTables)}

// LoadTables reads and parses a correction-table YAML file, caching the
// result by absolute path. Repeated loads of the same file return the same
// *CorrectionTables; callers must treat it as read-only.
func LoadTables(path string) (*CorrectionTables, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving correction table path %q: %w", path, err)
	}
	if t, ok := loadedTables.get(abs); ok {
		return t, nil
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("reading correction tables: %w", err)
	}
	t, err := ParseTables(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", abs, err)
	}
	loadedTables.put(abs, t)
	return t, nil
}
