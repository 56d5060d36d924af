package render

import (
	"errors"
	"image"
	"image/color"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
	apperrors "github.com/alexisbeaulieu97/stylepreview/pkg/errors"
)

var (
	red         = color.RGBA{R: 255, A: 255}
	green       = color.RGBA{G: 255, A: 255}
	blue        = color.RGBA{B: 255, A: 255}
	yellow      = color.RGBA{R: 255, G: 255, A: 255}
	grey        = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	transparent = color.RGBA{}
)

type fakeDecoder struct {
	bytes map[string]image.Image
	files map[string]image.Image
	calls atomic.Int32
}

func (d *fakeDecoder) Decode(data []byte) (image.Image, error) {
	d.calls.Add(1)
	img, ok := d.bytes[string(data)]
	if !ok {
		return nil, apperrors.NewDecodeError("bytes", errors.New("image: unknown format"))
	}
	return img, nil
}

func (d *fakeDecoder) DecodeFile(path string) (image.Image, error) {
	d.calls.Add(1)
	img, ok := d.files[path]
	if !ok {
		return nil, apperrors.NewDecodeError(path, errors.New("image: unknown format"))
	}
	return img, nil
}

type fakeTable map[style.ResourceToken][]byte

func (t fakeTable) ResourceBytes(token style.ResourceToken) ([]byte, bool) {
	data, ok := t[token]
	return data, ok
}

type fakeQueue map[style.ResourceToken]string

func (q fakeQueue) QueuedOverride(token style.ResourceToken, kind style.ResourceKind) (string, bool) {
	if kind != style.ResourceImage {
		return "", false
	}
	path, ok := q[token]
	return path, ok
}

type mapCache struct {
	mu sync.Mutex
	m  map[string]image.Image
}

func (c *mapCache) Get(key string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	img, ok := c.m[key]
	return img, ok
}

func (c *mapCache) Put(key string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.m == nil {
		c.m = make(map[string]image.Image)
	}
	c.m[key] = img
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(img, img.Bounds(), c)
	return img
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// pattern returns an opaque image whose pixels all differ from their
// neighbours, so misplaced copies are detected.
func pattern(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 5), B: uint8(x ^ y), A: 255})
		}
	}
	return img
}

// cornered returns a w×h grey image whose four m×m corners are red, green,
// blue and yellow (clockwise from top-left).
func cornered(w, h, m int) *image.RGBA {
	img := solid(w, h, grey)
	fillRect(img, image.Rect(0, 0, m, m), red)
	fillRect(img, image.Rect(w-m, 0, w, m), green)
	fillRect(img, image.Rect(w-m, h-m, w, h), blue)
	fillRect(img, image.Rect(0, h-m, m, h), yellow)
	return img
}

func props(t *testing.T, ps ...style.Property) *style.PropertySet {
	t.Helper()
	set, err := style.NewPropertySet(ps...)
	require.NoError(t, err)
	return set
}

func partWith(t *testing.T, ps ...style.Property) *style.Part {
	t.Helper()
	return &style.Part{
		Name: "TEST/PART",
		States: []style.State{
			{Name: "Normal", Properties: props(t, ps...)},
			{Name: "Hot", Properties: props(t, style.Property{ID: style.IdentBgType, Value: style.EnumValue(int(style.BackgroundBorderFill))})},
		},
	}
}

func bgType(b style.BackgroundType) style.Property {
	return style.Property{ID: style.IdentBgType, Value: style.EnumValue(int(b))}
}

func sizing(s style.SizingType) style.Property {
	return style.Property{ID: style.IdentSizingType, Value: style.EnumValue(int(s))}
}

func imageFile(id style.Identifier, token style.ResourceToken) style.Property {
	return style.Property{ID: id, Value: style.FilenameValue(token)}
}

func margins(l, t, r, b int) style.Property {
	return style.Property{ID: style.IdentSizingMargins, Value: style.MarginsValue(style.Margins{Left: l, Top: t, Right: r, Bottom: b})}
}

func countPixels(img *image.RGBA, match func(color.RGBA) bool) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if match(img.RGBAAt(x, y)) {
				n++
			}
		}
	}
	return n
}

func requireUniform(t *testing.T, img *image.RGBA, want color.RGBA) {
	t.Helper()
	b := img.Bounds()
	require.Equal(t, b.Dx()*b.Dy(), countPixels(img, func(c color.RGBA) bool { return c == want }),
		"expected every pixel to be %v", want)
}
