package render

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
)

// Region names one cell of a nine-slice grid.
type Region int

const (
	TopLeft Region = iota
	TopCenter
	TopRight
	MiddleLeft
	Center
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
)

var regionNames = [...]string{
	"top-left", "top-center", "top-right",
	"middle-left", "center", "middle-right",
	"bottom-left", "bottom-center", "bottom-right",
}

func (r Region) String() string {
	if r < 0 || int(r) >= len(regionNames) {
		return "unknown"
	}
	return regionNames[r]
}

// SlicePair maps one source cell to the destination cell it is drawn into.
type SlicePair struct {
	Region Region
	Src    image.Rectangle
	Dst    image.Rectangle
}

// resampler is the filter used for every scaled blit. Cells whose source and
// destination sizes match are copied exactly.
var resampler draw.Interpolator = draw.BiLinear

// NineSlice partitions src into a 3×3 grid using m and lays the same grid out
// over dst. Corners keep their source size; the top and bottom edges absorb
// the horizontal size difference, the left and right edges the vertical one,
// and the centre both. m must already be clamped to src.
//
// When dst is smaller than the fixed corners combined, the variable extent is
// negative: edges and centre come out empty and the far corners stay anchored
// at dst.Max, overlapping the near ones.
func NineSlice(src, dst image.Rectangle, m style.Margins) [9]SlicePair {
	varWidth := dst.Dx() - m.Left - m.Right
	varHeight := dst.Dy() - m.Top - m.Bottom

	sx := [4]int{src.Min.X, src.Min.X + m.Left, src.Max.X - m.Right, src.Max.X}
	sy := [4]int{src.Min.Y, src.Min.Y + m.Top, src.Max.Y - m.Bottom, src.Max.Y}

	dx := [4]int{dst.Min.X, dst.Min.X + m.Left, dst.Min.X + m.Left + varWidth, dst.Min.X + m.Left + varWidth + m.Right}
	dy := [4]int{dst.Min.Y, dst.Min.Y + m.Top, dst.Min.Y + m.Top + varHeight, dst.Min.Y + m.Top + varHeight + m.Bottom}

	var pairs [9]SlicePair
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			i := row*3 + col
			pairs[i] = SlicePair{
				Region: Region(i),
				Src:    cell(sx, sy, col, row),
				Dst:    cell(dx, dy, col, row),
			}
		}
	}
	return pairs
}

// cell builds the grid cell without canonicalising it, so a cell whose edges
// cross reports Empty.
func cell(xs, ys [4]int, col, row int) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: xs[col], Y: ys[row]},
		Max: image.Point{X: xs[col+1], Y: ys[row+1]},
	}
}

// DrawNineSlice composites the src area of img into the dstRect area of dst
// with nine-slice scaling. Cells that are empty on either side are skipped.
func DrawNineSlice(dst draw.Image, img image.Image, src, dstRect image.Rectangle, m style.Margins) int {
	drawn := 0
	for _, p := range NineSlice(src, dstRect, m) {
		if p.Src.Empty() || p.Dst.Empty() {
			continue
		}
		resampler.Scale(dst, p.Dst, img, p.Src, draw.Over, nil)
		drawn++
	}
	return drawn
}
