package ports

import (
	"image"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
)

// ResourceTable exposes the resources persisted with a style. A missing
// resource is reported with ok=false and is not an error.
type ResourceTable interface {
	ResourceBytes(token style.ResourceToken) ([]byte, bool)
}

// OverrideQueue exposes replacements staged during an editing session. A
// queued path takes priority over the persisted resource with the same token.
type OverrideQueue interface {
	QueuedOverride(token style.ResourceToken, kind style.ResourceKind) (string, bool)
}

// ImageDecoder turns encoded image data into a pixel grid. Decoding failures
// are reported as *errors.DecodeError.
type ImageDecoder interface {
	Decode(data []byte) (image.Image, error)
	DecodeFile(path string) (image.Image, error)
}

// ImageCache stores decoded images keyed by resource. Implementations must be
// safe for concurrent use.
type ImageCache interface {
	Get(key string) (image.Image, bool)
	Put(key string, img image.Image)
}
