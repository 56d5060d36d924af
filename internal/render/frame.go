package render

import (
	"image"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
)

// ExtractFrame returns the rectangle of frame index out of count equal strips
// of bounds stacked along layout. Strip sizes use truncating division, so
// trailing pixels that do not fill a whole strip are never selected. A count
// of one or less selects the whole image; an index outside [0, count) selects
// frame 0.
func ExtractFrame(bounds image.Rectangle, layout style.ImageLayout, count, index int) image.Rectangle {
	if count <= 1 {
		return bounds
	}
	if index < 0 || index >= count {
		index = 0
	}

	size := bounds.Size()
	var offset image.Point
	switch layout {
	case style.LayoutHorizontal:
		size.X /= count
		offset.X = size.X * index
	case style.LayoutVertical:
		size.Y /= count
		offset.Y = size.Y * index
	}

	origin := bounds.Min.Add(offset)
	return image.Rectangle{Min: origin, Max: origin.Add(size)}.Intersect(bounds)
}
