package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
)

// ErrInvalidValue is wrapped by every ParseValue failure.
var ErrInvalidValue = errors.New("invalid property value")

// ParseValue interprets raw according to the value kind of id.
//
//	enum      symbolic name (IMAGEFILE, STRETCH, ...) or integer
//	int       integer
//	color     "#rrggbb", "#rgb" or "r g b" (commas allowed)
//	margins   "left, top, right, bottom"
//	filename  resource token in [0, 65535]
func ParseValue(id style.Identifier, raw string) (style.Value, error) {
	raw = strings.TrimSpace(raw)

	switch id.Kind() {
	case style.KindEnum:
		if v, ok := style.ParseEnum(id, raw); ok {
			return style.EnumValue(v), nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return style.Value{}, invalid(id, raw, "unknown enum name")
		}
		return style.EnumValue(v), nil
	case style.KindInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return style.Value{}, invalid(id, raw, "not an integer")
		}
		return style.IntValue(v), nil
	case style.KindColor:
		c, err := parseColor(raw)
		if err != nil {
			return style.Value{}, invalid(id, raw, err.Error())
		}
		return style.ColorValue(c), nil
	case style.KindMargins:
		m, err := parseMargins(raw)
		if err != nil {
			return style.Value{}, invalid(id, raw, err.Error())
		}
		return style.MarginsValue(m), nil
	case style.KindFilename:
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 || v > math.MaxUint16 {
			return style.Value{}, invalid(id, raw, "resource id must be an integer in [0, 65535]")
		}
		return style.FilenameValue(style.ResourceToken(v)), nil
	default:
		return style.Value{}, invalid(id, raw, "unknown property")
	}
}

func invalid(id style.Identifier, raw, reason string) error {
	return fmt.Errorf("%w: %s=%q: %s", ErrInvalidValue, id, raw, reason)
}

func parseColor(raw string) (color.RGBA, error) {
	if strings.HasPrefix(raw, "#") {
		c, err := colorful.Hex(raw)
		if err != nil {
			return color.RGBA{}, err
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}

	fields := splitList(raw)
	if len(fields) != 3 {
		return color.RGBA{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var rgb [3]uint8
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("component %q out of range [0, 255]", f)
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}

func parseMargins(raw string) (style.Margins, error) {
	fields := splitList(raw)
	if len(fields) != 4 {
		return style.Margins{}, fmt.Errorf("expected 4 insets, got %d", len(fields))
	}
	var v [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return style.Margins{}, fmt.Errorf("inset %q is not an integer", f)
		}
		v[i] = n
	}
	return style.Margins{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}, nil
}

func splitList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
