package resources

import (
	"image"
	"sync"

	"github.com/alexisbeaulieu97/stylepreview/internal/ports"
)

// ImageCache keeps decoded images in memory between render calls.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty ImageCache.
func NewImageCache() *ImageCache {
	return &ImageCache{images: make(map[string]image.Image)}
}

// Get returns the image decoded earlier under key.
func (c *ImageCache) Get(key string) (image.Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	img, ok := c.images[key]
	return img, ok
}

// Put stores img under key, replacing any earlier entry.
func (c *ImageCache) Put(key string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.images[key] = img
}

// Len reports the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.images)
}

var _ ports.ImageCache = (*ImageCache)(nil)
