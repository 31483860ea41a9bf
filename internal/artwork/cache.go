package artwork

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	cacheDirName = "storesearch/artwork"
	cacheMaxAge  = 14 * 24 * time.Hour
)

// Cache stores resized artwork as PNG files keyed by URL and cell size.
// A nil *Cache is valid and caches nothing.
type Cache struct {
	dir string
}

// NewCache creates the cache directory under baseDir, or under the XDG cache
// home when baseDir is empty, and prunes stale entries in the background.
func NewCache(baseDir string) (*Cache, error) {
	dir := baseDir
	if dir == "" {
		dir = filepath.Join(xdg.CacheHome, cacheDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artwork cache: %w", err)
	}

	c := &Cache{dir: dir}
	go c.prune(time.Now().Add(-cacheMaxAge))
	return c, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func cacheKey(url string, cols, rows int) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%d:%d", url, cols, rows))
	return hex.EncodeToString(sum[:])
}

func (c *Cache) path(url string, cols, rows int) string {
	return filepath.Join(c.dir, cacheKey(url, cols, rows)+".png")
}

// Get returns cached PNG data, or nil on a miss.
func (c *Cache) Get(url string, cols, rows int) []byte {
	if c == nil {
		return nil
	}
	path := c.path(url, cols, rows)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	now := time.Now()
	_ = os.Chtimes(path, now, now) //nolint:errcheck // best-effort
	return data
}

// Put stores PNG data.
func (c *Cache) Put(url string, cols, rows int, data []byte) error {
	if c == nil {
		return nil
	}
	return os.WriteFile(c.path(url, cols, rows), data, 0o600)
}

func (c *Cache) prune(cutoff time.Time) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name())) //nolint:errcheck // best-effort cleanup
		}
	}
}
