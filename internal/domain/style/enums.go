package style

import (
	"fmt"
	"strings"
)

// BackgroundType is the value of the BGTYPE property.
type BackgroundType int

const (
	BackgroundImageFill  BackgroundType = 0
	BackgroundBorderFill BackgroundType = 1
	BackgroundNone       BackgroundType = 2
)

func (b BackgroundType) String() string {
	switch b {
	case BackgroundImageFill:
		return "IMAGEFILE"
	case BackgroundBorderFill:
		return "BORDERFILL"
	case BackgroundNone:
		return "NONE"
	default:
		return fmt.Sprintf("BGTYPE(%d)", int(b))
	}
}

// ImageLayout is the value of the IMAGELAYOUT property: the axis along which
// the frames of a multi-image resource are stacked.
type ImageLayout int

const (
	LayoutVertical   ImageLayout = 0
	LayoutHorizontal ImageLayout = 1
)

func (l ImageLayout) String() string {
	switch l {
	case LayoutVertical:
		return "VERTICAL"
	case LayoutHorizontal:
		return "HORIZONTAL"
	default:
		return fmt.Sprintf("IMAGELAYOUT(%d)", int(l))
	}
}

// SizingType is the value of the SIZINGTYPE property.
type SizingType int

const (
	SizingTrueSize SizingType = 0
	SizingStretch  SizingType = 1
	SizingTile     SizingType = 2
)

func (s SizingType) String() string {
	switch s {
	case SizingTrueSize:
		return "TRUESIZE"
	case SizingStretch:
		return "STRETCH"
	case SizingTile:
		return "TILE"
	default:
		return fmt.Sprintf("SIZINGTYPE(%d)", int(s))
	}
}

var enumNames = map[Identifier]map[string]int{
	IdentBgType: {
		"IMAGEFILE":  int(BackgroundImageFill),
		"BORDERFILL": int(BackgroundBorderFill),
		"NONE":       int(BackgroundNone),
	},
	IdentImageLayout: {
		"VERTICAL":   int(LayoutVertical),
		"HORIZONTAL": int(LayoutHorizontal),
	},
	IdentSizingType: {
		"TRUESIZE": int(SizingTrueSize),
		"STRETCH":  int(SizingStretch),
		"TILE":     int(SizingTile),
	},
}

// ParseEnum maps a symbolic enum name for the given identifier to its numeric value.
func ParseEnum(id Identifier, name string) (int, bool) {
	values, ok := enumNames[id]
	if !ok {
		return 0, false
	}
	v, ok := values[strings.ToUpper(strings.TrimSpace(name))]
	return v, ok
}
