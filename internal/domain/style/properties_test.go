package style

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPropertySetTypedLookup(t *testing.T) {
	t.Parallel()

	red := color.RGBA{R: 255, A: 255}
	set, err := NewPropertySet(
		Property{ID: IdentBgType, Value: EnumValue(int(BackgroundBorderFill))},
		Property{ID: IdentFillColor, Value: ColorValue(red)},
		Property{ID: IdentImageCount, Value: IntValue(3)},
		Property{ID: IdentSizingMargins, Value: MarginsValue(Margins{Left: 1, Top: 2, Right: 3, Bottom: 4})},
		Property{ID: IdentImageFile1, Value: FilenameValue(42)},
	)
	require.NoError(t, err)
	require.Equal(t, 5, set.Len())

	bg, ok := set.Enum(IdentBgType)
	require.True(t, ok)
	require.Equal(t, int(BackgroundBorderFill), bg)

	c, ok := set.Color(IdentFillColor)
	require.True(t, ok)
	require.Equal(t, red, c)

	n, ok := set.Int(IdentImageCount)
	require.True(t, ok)
	require.Equal(t, 3, n)

	m, ok := set.Margins(IdentSizingMargins)
	require.True(t, ok)
	require.Equal(t, Margins{Left: 1, Top: 2, Right: 3, Bottom: 4}, m)

	ref, ok := set.Filename(IdentImageFile1)
	require.True(t, ok)
	require.Equal(t, ResourceRef{Token: 42, Kind: ResourceImage}, ref)

	_, ok = set.Int(IdentSizingType)
	require.False(t, ok, "absent identifier must report not found")
	_, ok = set.Color(IdentImageCount)
	require.False(t, ok, "accessor of the wrong kind must report not found")
}

func TestPropertySetRejectsMismatchedKind(t *testing.T) {
	t.Parallel()

	_, err := NewPropertySet(Property{ID: IdentFillColor, Value: IntValue(7)})
	require.Error(t, err)
	require.True(t, IsCode(err, ErrCodeType))
}

func TestPropertySetRejectsUnknownIdentifier(t *testing.T) {
	t.Parallel()

	_, err := NewPropertySet(Property{ID: Identifier(9999), Value: IntValue(1)})
	require.True(t, IsCode(err, ErrCodeValidation))
	require.False(t, Identifier(9999).Known())
	require.True(t, IdentFillColor.Known())
}

func TestKnownIdentifierNamesAreSorted(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{
		"BGTYPE", "FILLCOLOR", "IMAGECOUNT", "IMAGEFILE", "IMAGEFILE1",
		"IMAGELAYOUT", "SIZINGMARGINS", "SIZINGTYPE",
	}, KnownIdentifierNames())
}

func TestValueStringIncludesAlpha(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#0a141e80", ColorValue(color.RGBA{R: 10, G: 20, B: 30, A: 128}).String())
	require.Equal(t, "1, 2, 3, 4", MarginsValue(Margins{1, 2, 3, 4}).String())
	require.Equal(t, "<empty>", Value{}.String())
}

func TestPropertySetFindHonoursCandidateOrder(t *testing.T) {
	t.Parallel()

	set, err := NewPropertySet(
		Property{ID: IdentImageFile1, Value: FilenameValue(2)},
		Property{ID: IdentImageFile, Value: FilenameValue(1)},
	)
	require.NoError(t, err)

	p, ok := set.Find(IdentImageFile, IdentImageFile1)
	require.True(t, ok)
	require.Equal(t, IdentImageFile, p.ID)

	p, ok = set.Find(IdentImageFile1, IdentImageFile)
	require.True(t, ok)
	require.Equal(t, IdentImageFile1, p.ID)

	_, ok = set.Find(IdentFillColor)
	require.False(t, ok)
}

func TestPropertySetFirstDeclarationWins(t *testing.T) {
	t.Parallel()

	set, err := NewPropertySet(
		Property{ID: IdentImageCount, Value: IntValue(2)},
		Property{ID: IdentImageCount, Value: IntValue(9)},
	)
	require.NoError(t, err)

	n, ok := set.Int(IdentImageCount)
	require.True(t, ok)
	require.Equal(t, 2, n)
	require.Len(t, set.All(), 2)
}

func TestNilPropertySetIsEmpty(t *testing.T) {
	t.Parallel()

	var set *PropertySet
	_, ok := set.Lookup(IdentBgType)
	require.False(t, ok)
	_, ok = set.Find(IdentImageFile)
	require.False(t, ok)
	require.Zero(t, set.Len())
}

func TestParseIdentifierAndEnum(t *testing.T) {
	t.Parallel()

	id, ok := ParseIdentifier("sizingMargins")
	require.True(t, ok)
	require.Equal(t, IdentSizingMargins, id)
	require.Equal(t, KindMargins, id.Kind())

	_, ok = ParseIdentifier("GLYPHFONT")
	require.False(t, ok)

	v, ok := ParseEnum(IdentSizingType, "tile")
	require.True(t, ok)
	require.Equal(t, int(SizingTile), v)

	_, ok = ParseEnum(IdentImageCount, "TILE")
	require.False(t, ok)
}

func TestStylePartLookupAndValidate(t *testing.T) {
	t.Parallel()

	s := &Style{Name: "Aero", Parts: []*Part{{Name: "BUTTON"}, {Name: "EDIT"}}}
	require.NoError(t, s.Validate())

	p, err := s.Part("button")
	require.NoError(t, err)
	require.Equal(t, "BUTTON", p.Name)

	_, err = s.Part("SCROLLBAR")
	require.True(t, IsCode(err, ErrCodeNotFound))

	dup := &Style{Parts: []*Part{{Name: "A"}, {Name: "a"}}}
	require.True(t, IsCode(dup.Validate(), ErrCodeDuplicate))

	_, ok := (&Part{Name: "EMPTY"}).FirstState()
	require.False(t, ok)
}
