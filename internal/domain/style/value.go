package style

import (
	"fmt"
	"image/color"
)

// Margins holds the four insets of a SIZINGMARGINS property, in pixels.
type Margins struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

func (m Margins) String() string {
	return fmt.Sprintf("%d, %d, %d, %d", m.Left, m.Top, m.Right, m.Bottom)
}

// ResourceToken identifies a resource bound to a property.
type ResourceToken uint16

// ResourceKind classifies resources so staged overrides can target one kind.
type ResourceKind int

const (
	ResourceImage ResourceKind = iota + 1
)

func (k ResourceKind) String() string {
	if k == ResourceImage {
		return "image"
	}
	return fmt.Sprintf("resource(%d)", int(k))
}

// ResourceRef points a property at a resource.
type ResourceRef struct {
	Token ResourceToken
	Kind  ResourceKind
}

// Value is a tagged union over the payloads a property can carry. The zero
// Value carries nothing and every accessor reports false.
type Value struct {
	kind    Kind
	integer int
	color   color.RGBA
	margins Margins
	ref     ResourceRef
}

// EnumValue wraps a BGTYPE, SIZINGTYPE or IMAGELAYOUT enumerant.
func EnumValue(v int) Value { return Value{kind: KindEnum, integer: v} }

// IntValue wraps a plain integer such as IMAGECOUNT.
func IntValue(v int) Value { return Value{kind: KindInt, integer: v} }

// ColorValue wraps an RGBA colour.
func ColorValue(c color.RGBA) Value { return Value{kind: KindColor, color: c} }

// MarginsValue wraps four insets. Negative insets are kept as given.
func MarginsValue(m Margins) Value { return Value{kind: KindMargins, margins: m} }

// FilenameValue wraps a reference to an image resource.
func FilenameValue(token ResourceToken) Value {
	return Value{kind: KindFilename, ref: ResourceRef{Token: token, Kind: ResourceImage}}
}

// Kind reports which payload the value carries.
func (v Value) Kind() Kind { return v.kind }

// Enum returns the enumerant, reporting false for any other kind.
func (v Value) Enum() (int, bool) {
	return v.integer, v.kind == KindEnum
}

// Int returns the integer, reporting false for any other kind.
func (v Value) Int() (int, bool) {
	return v.integer, v.kind == KindInt
}

// Color returns the colour, reporting false for any other kind.
func (v Value) Color() (color.RGBA, bool) {
	return v.color, v.kind == KindColor
}

// Margins returns the insets, reporting false for any other kind.
func (v Value) Margins() (Margins, bool) {
	return v.margins, v.kind == KindMargins
}

// Resource returns the referenced resource of a filename value.
func (v Value) Resource() (ResourceRef, bool) {
	return v.ref, v.kind == KindFilename
}

// String formats the payload for logs and listings.
func (v Value) String() string {
	switch v.kind {
	case KindEnum, KindInt:
		return fmt.Sprintf("%d", v.integer)
	case KindColor:
		return fmt.Sprintf("#%02x%02x%02x%02x", v.color.R, v.color.G, v.color.B, v.color.A)
	case KindMargins:
		return v.margins.String()
	case KindFilename:
		return fmt.Sprintf("resource #%d", v.ref.Token)
	default:
		return "<empty>"
	}
}
