package ports

import (
	"context"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
)

// LoadedStyle bundles a parsed style with the resource stores its properties
// reference.
type LoadedStyle struct {
	Style     *style.Style
	Resources ResourceTable
	Overrides OverrideQueue
	// Path is the absolute location the style was loaded from.
	Path string
}

// StyleLoader loads a style document from an external source. Implementations
// must respect ctx before expensive work and translate failures into domain
// error codes:
//   - io/fs.ErrNotExist → ErrCodeNotFound
//   - syntax or schema failures → ErrCodeValidation
//   - property values of the wrong kind → ErrCodeType
//   - unexpected I/O issues → ErrCodeInternal with wrapped cause
type StyleLoader interface {
	Load(ctx context.Context, path string) (*LoadedStyle, error)
}
