package render

import (
	"fmt"
	"image"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
	"github.com/alexisbeaulieu97/stylepreview/internal/ports"
)

// located is an image found by one tier of the source chain but not yet
// decoded.
type located struct {
	tier string
	key  string
	load func() (image.Image, error)
}

// imageSource is one tier of the image resolution chain.
type imageSource interface {
	locate(ref style.ResourceRef) (located, bool)
}

// stagedSource finds replacements queued by an editing session.
type stagedSource struct {
	queue   ports.OverrideQueue
	decoder ports.ImageDecoder
}

func (s stagedSource) locate(ref style.ResourceRef) (located, bool) {
	if s.queue == nil {
		return located{}, false
	}
	path, ok := s.queue.QueuedOverride(ref.Token, ref.Kind)
	if !ok || path == "" {
		return located{}, false
	}
	return located{
		tier: "staged",
		key:  "file:" + path,
		load: func() (image.Image, error) { return s.decoder.DecodeFile(path) },
	}, true
}

// tableSource finds resources persisted with the style.
type tableSource struct {
	table   ports.ResourceTable
	decoder ports.ImageDecoder
}

func (s tableSource) locate(ref style.ResourceRef) (located, bool) {
	if s.table == nil {
		return located{}, false
	}
	data, ok := s.table.ResourceBytes(ref.Token)
	if !ok || data == nil {
		return located{}, false
	}
	return located{
		tier: "table",
		key:  fmt.Sprintf("resource:%d", ref.Token),
		load: func() (image.Image, error) { return s.decoder.Decode(data) },
	}, true
}

// sourceChain tries its tiers in order; the first tier that has data wins,
// even when decoding that data then fails.
type sourceChain struct {
	tiers []imageSource
	cache ports.ImageCache
}

// Resolve returns the decoded image for ref and the tier it came from. A nil
// image with a nil error means no tier holds data for ref.
func (c *sourceChain) Resolve(ref style.ResourceRef) (image.Image, string, error) {
	for _, tier := range c.tiers {
		loc, ok := tier.locate(ref)
		if !ok {
			continue
		}
		if c.cache != nil {
			if img, hit := c.cache.Get(loc.key); hit {
				return img, loc.tier, nil
			}
		}
		img, err := loc.load()
		if err != nil {
			return nil, loc.tier, err
		}
		if c.cache != nil {
			c.cache.Put(loc.key, img)
		}
		return img, loc.tier, nil
	}
	return nil, "", nil
}
