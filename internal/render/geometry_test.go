package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
)

func TestClampMarginsKeepsInteriorPixel(t *testing.T) {
	t.Parallel()

	for w := 1; w <= 12; w++ {
		for _, h := range []int{1, 2, 7} {
			frame := image.Rect(3, 4, 3+w, 4+h)
			for lead := -2; lead <= 14; lead++ {
				for trail := -2; trail <= 14; trail++ {
					m := ClampMargins(style.Margins{Left: lead, Top: trail, Right: trail, Bottom: lead}, frame)
					require.GreaterOrEqual(t, m.Left, 0)
					require.GreaterOrEqual(t, m.Right, 0)
					require.GreaterOrEqual(t, m.Top, 0)
					require.GreaterOrEqual(t, m.Bottom, 0)
					require.Less(t, m.Left+m.Right, frame.Dx(), "margins %+v frame %v", m, frame)
					require.Less(t, m.Top+m.Bottom, frame.Dy(), "margins %+v frame %v", m, frame)
				}
			}
		}
	}
}

func TestClampMarginsPolicy(t *testing.T) {
	t.Parallel()

	frame := image.Rect(0, 0, 10, 10)
	valid := style.Margins{Left: 2, Top: 3, Right: 4, Bottom: 5}
	require.Equal(t, valid, ClampMargins(valid, frame))

	require.Equal(t, style.Margins{Left: 8, Top: 0, Right: 1, Bottom: 0},
		ClampMargins(style.Margins{Left: 8, Right: 8}, frame), "trailing inset shrinks first")
	require.Equal(t, style.Margins{Left: 9, Top: 9},
		ClampMargins(style.Margins{Left: 20, Top: 20, Right: 20, Bottom: 20}, frame))
	require.Equal(t, style.Margins{},
		ClampMargins(style.Margins{Left: 5, Top: 5, Right: 5, Bottom: 5}, image.Rect(0, 0, 1, 1)))
}

func TestExtractFrame(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		bounds image.Rectangle
		layout style.ImageLayout
		count  int
		index  int
		want   image.Rectangle
	}{
		{"single image", image.Rect(0, 0, 100, 400), style.LayoutVertical, 1, 0, image.Rect(0, 0, 100, 400)},
		{"zero count", image.Rect(0, 0, 100, 400), style.LayoutVertical, 0, 0, image.Rect(0, 0, 100, 400)},
		{"negative count", image.Rect(0, 0, 100, 400), style.LayoutHorizontal, -3, 0, image.Rect(0, 0, 100, 400)},
		{"vertical strips", image.Rect(0, 0, 100, 400), style.LayoutVertical, 4, 0, image.Rect(0, 0, 100, 100)},
		{"horizontal strips", image.Rect(0, 0, 400, 100), style.LayoutHorizontal, 4, 0, image.Rect(0, 0, 100, 100)},
		{"later vertical frame", image.Rect(0, 0, 100, 400), style.LayoutVertical, 4, 2, image.Rect(0, 200, 100, 300)},
		{"later horizontal frame", image.Rect(0, 0, 400, 100), style.LayoutHorizontal, 4, 3, image.Rect(300, 0, 400, 100)},
		{"truncating division", image.Rect(0, 0, 10, 10), style.LayoutVertical, 3, 2, image.Rect(0, 6, 10, 9)},
		{"offset bounds", image.Rect(5, 5, 15, 25), style.LayoutVertical, 2, 0, image.Rect(5, 5, 15, 15)},
		{"index out of range", image.Rect(0, 0, 100, 400), style.LayoutVertical, 4, 9, image.Rect(0, 0, 100, 100)},
		{"unknown layout", image.Rect(0, 0, 100, 400), style.ImageLayout(7), 4, 0, image.Rect(0, 0, 100, 400)},
		{"more frames than pixels", image.Rect(0, 0, 3, 3), style.LayoutVertical, 5, 0, image.Rectangle{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractFrame(tt.bounds, tt.layout, tt.count, tt.index)
			if tt.want.Empty() {
				require.True(t, got.Empty())
				return
			}
			require.Equal(t, tt.want, got)
			require.True(t, got.In(tt.bounds))
		})
	}
}

func TestNineSliceScenario(t *testing.T) {
	t.Parallel()

	pairs := NineSlice(image.Rect(0, 0, 100, 100), image.Rect(0, 0, 50, 50), style.Margins{Left: 10, Top: 10, Right: 10, Bottom: 10})

	corners := map[Region]image.Rectangle{
		TopLeft:     image.Rect(0, 0, 10, 10),
		TopRight:    image.Rect(40, 0, 50, 10),
		BottomLeft:  image.Rect(0, 40, 10, 50),
		BottomRight: image.Rect(40, 40, 50, 50),
	}
	for region, want := range corners {
		p := pairs[region]
		require.Equal(t, region, p.Region)
		require.Equal(t, image.Pt(10, 10), p.Src.Size(), region.String())
		require.Equal(t, want, p.Dst, region.String())
	}

	center := pairs[Center]
	require.Equal(t, image.Rect(10, 10, 90, 90), center.Src)
	require.Equal(t, image.Rect(10, 10, 40, 40), center.Dst)

	require.Equal(t, image.Pt(80, 10), pairs[TopCenter].Src.Size())
	require.Equal(t, image.Pt(30, 10), pairs[TopCenter].Dst.Size())
	require.Equal(t, image.Pt(10, 80), pairs[MiddleRight].Src.Size())
	require.Equal(t, image.Pt(10, 30), pairs[MiddleRight].Dst.Size())
}

func TestNineSliceCoversDestinationExactlyOnce(t *testing.T) {
	t.Parallel()

	src := image.Rect(0, 32, 48, 64)
	dst := image.Rect(0, 0, SurfaceWidth, SurfaceHeight)
	m := ClampMargins(style.Margins{Left: 3, Top: 7, Right: 11, Bottom: 2}, src)

	hits := make([]int, dst.Dx()*dst.Dy())
	for _, p := range NineSlice(src, dst, m) {
		require.True(t, p.Src.In(src), "%s source %v escapes frame", p.Region, p.Src)
		for y := p.Dst.Min.Y; y < p.Dst.Max.Y; y++ {
			for x := p.Dst.Min.X; x < p.Dst.Max.X; x++ {
				hits[y*dst.Dx()+x]++
			}
		}
	}
	for i, n := range hits {
		require.Equal(t, 1, n, "pixel %d covered %d times", i, n)
	}
}

func TestNineSliceSmallDestinationIsDeterministic(t *testing.T) {
	t.Parallel()

	src := image.Rect(0, 0, 100, 100)
	dst := image.Rect(0, 0, 50, 50)
	m := style.Margins{Left: 40, Top: 40, Right: 40, Bottom: 40}

	pairs := NineSlice(src, dst, m)
	require.True(t, pairs[Center].Dst.Empty())
	require.True(t, pairs[TopCenter].Dst.Empty())
	require.True(t, pairs[MiddleLeft].Dst.Empty())
	require.Equal(t, image.Rect(0, 0, 40, 40), pairs[TopLeft].Dst)
	require.Equal(t, image.Rect(10, 0, 50, 40), pairs[TopRight].Dst)
	require.Equal(t, image.Rect(0, 10, 40, 50), pairs[BottomLeft].Dst)
	require.Equal(t, image.Rect(10, 10, 50, 50), pairs[BottomRight].Dst)
	for _, p := range pairs {
		if !p.Dst.Empty() {
			require.True(t, p.Dst.In(dst), "%s spills outside the destination", p.Region)
		}
	}
	require.Equal(t, pairs, NineSlice(src, dst, m))

	img := pattern(100, 100)
	first := image.NewRGBA(dst)
	second := image.NewRGBA(dst)
	require.Equal(t, 4, DrawNineSlice(first, img, src, dst, m))
	require.Equal(t, 4, DrawNineSlice(second, img, src, dst, m))
	require.Equal(t, first.Pix, second.Pix)
}

func TestDrawNineSliceIdentityReproducesSource(t *testing.T) {
	t.Parallel()

	img := pattern(40, 90)
	frame := image.Rect(0, 30, 40, 60)
	m := ClampMargins(style.Margins{Left: 5, Top: 6, Right: 7, Bottom: 8}, frame)

	dst := image.NewRGBA(frame)
	require.Equal(t, 9, DrawNineSlice(dst, img, frame, frame, m))
	for y := frame.Min.Y; y < frame.Max.Y; y++ {
		for x := frame.Min.X; x < frame.Max.X; x++ {
			require.Equal(t, img.RGBAAt(x, y), dst.RGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestDrawNineSliceKeepsCornersUnscaled(t *testing.T) {
	t.Parallel()

	img := pattern(100, 100)
	dst := image.NewRGBA(image.Rect(0, 0, 50, 50))
	DrawNineSlice(dst, img, img.Bounds(), dst.Bounds(), style.Margins{Left: 10, Top: 10, Right: 10, Bottom: 10})

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			require.Equal(t, img.RGBAAt(x, y), dst.RGBAAt(x, y))
			require.Equal(t, img.RGBAAt(90+x, y), dst.RGBAAt(40+x, y))
			require.Equal(t, img.RGBAAt(x, 90+y), dst.RGBAAt(x, 40+y))
			require.Equal(t, img.RGBAAt(90+x, 90+y), dst.RGBAAt(40+x, 40+y))
		}
	}
	require.Equal(t, 50*50, countPixels(dst, func(c color.RGBA) bool { return c.A == 255 }))
}
