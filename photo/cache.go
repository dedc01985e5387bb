package photo

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// preloadLimit bounds concurrent decodes
const preloadLimit = 4

// Cache resolves references to decoded photos and remembers scaled variants
// Safe for concurrent use; entries are immutable once stored
type Cache struct {
	dir    string
	logger *slog.Logger

	mu     sync.RWMutex
	items  map[string]*image.NRGBA
	scaled map[scaledKey]*image.NRGBA
}

type scaledKey struct {
	ref  string
	w, h int
}

// NewCache creates a cache reading from dir, an empty dir serves placeholders only
func NewCache(dir string, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cache{
		dir:    dir,
		logger: logger,
		items:  make(map[string]*image.NRGBA),
		scaled: make(map[scaledKey]*image.NRGBA),
	}
}

// Image returns the photo for ref, never nil
func (c *Cache) Image(ref string) *image.NRGBA {
	// Fast path: read lock
	c.mu.RLock()
	if img, ok := c.items[ref]; ok {
		c.mu.RUnlock()
		return img
	}
	c.mu.RUnlock()

	img := c.resolve(ref)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.items[ref]; ok {
		return prev
	}
	c.items[ref] = img
	return img
}

// Scaled returns the photo for ref fitted to w x h pixels
func (c *Cache) Scaled(ref string, w, h int) *image.NRGBA {
	key := scaledKey{ref: ref, w: w, h: h}
	c.mu.RLock()
	if img, ok := c.scaled[key]; ok {
		c.mu.RUnlock()
		return img
	}
	c.mu.RUnlock()

	img := Fit(c.Image(ref), w, h)

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.scaled[key]; ok {
		return prev
	}
	c.scaled[key] = img
	return img
}

// Len returns the number of decoded photos held
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Preload decodes refs in the background with bounded concurrency
// Decode failures are not errors, they fall back to placeholders
func (c *Cache) Preload(ctx context.Context, refs []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadLimit)

	for _, ref := range refs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("photo: preload %s: %w", ref, err)
			}
			c.Image(ref)
			return nil
		})
	}
	return g.Wait()
}

func (c *Cache) resolve(ref string) *image.NRGBA {
	if ref == "" || c.dir == "" {
		return Placeholder(ref)
	}
	path := filepath.Join(c.dir, filepath.Clean("/"+ref))
	img, err := Load(path)
	if err != nil {
		c.logger.Warn("photo unavailable, using placeholder", "ref", ref, "error", err)
		return Placeholder(ref)
	}
	c.logger.Debug("photo loaded", "ref", ref, "w", img.Bounds().Dx(), "h", img.Bounds().Dy())
	return img
}
