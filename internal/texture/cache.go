package texture

import (
	"image"
	"path/filepath"
	"sync"
)

// Resolver resolves a texture reference from a scene file to a decoded
// image. Returns nil when the texture cannot be loaded; the renderer
// then falls back to the object's flat color.
type Resolver interface {
	Resolve(name string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache rooted at a base
// directory. Failed loads are cached too, so a missing file is statted
// once, not once per frame.
type Cache struct {
	baseDir string

	mu    sync.RWMutex
	items map[string]*cacheEntry
}

type cacheEntry struct {
	img *image.NRGBA
}

// NewCache creates a texture cache resolving names relative to baseDir.
func NewCache(baseDir string) *Cache {
	return &Cache{
		baseDir: baseDir,
		items:   make(map[string]*cacheEntry),
	}
}

// Resolve loads and caches a texture by scene-file name.
func (c *Cache) Resolve(name string) *image.NRGBA {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.baseDir, name)
	}

	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img
	}
	c.mu.RUnlock()

	img, _ := Load(path)

	c.mu.Lock()
	if entry, exists := c.items[path]; exists {
		c.mu.Unlock()
		return entry.img
	}
	c.items[path] = &cacheEntry{img: img}
	c.mu.Unlock()

	return img
}
