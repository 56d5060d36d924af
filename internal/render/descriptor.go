package render

import (
	"image/color"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
)

// imageFileCandidates lists the image properties tried for an image fill, in
// priority order.
var imageFileCandidates = []style.Identifier{style.IdentImageFile, style.IdentImageFile1}

// Background describes what a part's background draws. It is built fresh for
// every render.
type Background struct {
	Fill style.BackgroundType

	// FillColor is set for BorderFill.
	FillColor color.RGBA

	// Image and ImageProperty are set for ImageFill.
	Image         style.ResourceRef
	ImageProperty style.Identifier

	Layout  style.ImageLayout
	Count   int
	Sizing  style.SizingType
	Margins *style.Margins
}

// ResolveBackground reads the background properties of a state. It reports
// false when there is nothing to draw: BGTYPE is absent or NONE (or any value
// other than IMAGEFILE and BORDERFILL), a border fill has no FILLCOLOR, or an
// image fill has neither IMAGEFILE nor IMAGEFILE1.
func ResolveBackground(props *style.PropertySet) (Background, bool) {
	bgType, ok := props.Enum(style.IdentBgType)
	if !ok {
		return Background{}, false
	}

	bg := Background{
		Fill:   style.BackgroundType(bgType),
		Layout: style.LayoutVertical,
		Count:  1,
		Sizing: style.SizingTrueSize,
	}

	switch bg.Fill {
	case style.BackgroundBorderFill:
		c, ok := props.Color(style.IdentFillColor)
		if !ok {
			return Background{}, false
		}
		bg.FillColor = c
	case style.BackgroundImageFill:
		prop, ok := props.Find(imageFileCandidates...)
		if !ok {
			return Background{}, false
		}
		ref, ok := prop.Value.Resource()
		if !ok {
			return Background{}, false
		}
		bg.Image = ref
		bg.ImageProperty = prop.ID
	default:
		return Background{}, false
	}

	if v, ok := props.Enum(style.IdentImageLayout); ok {
		bg.Layout = style.ImageLayout(v)
	}
	if v, ok := props.Int(style.IdentImageCount); ok {
		bg.Count = v
	}
	if v, ok := props.Enum(style.IdentSizingType); ok {
		bg.Sizing = style.SizingType(v)
	}
	if v, ok := props.Margins(style.IdentSizingMargins); ok {
		m := v
		bg.Margins = &m
	}

	return bg, true
}
