package carve

import (
	"image"
	"math"
)

// EnergyMap holds one non-negative importance value per pixel, stored as a
// dense row-major array aligned 1:1 with the source pixel buffer.
// Low energy marks pixels which are safe to remove.
type EnergyMap struct {
	Width  int
	Height int
	values []float64
}

// At returns the energy value at the (x, y) coordinate.
func (e *EnergyMap) At(x, y int) float64 {
	return e.values[x+y*e.Width]
}

func (e *EnergyMap) set(x, y int, v float64) {
	e.values[x+y*e.Width] = v
}

// Max returns the largest energy value in the map. The maximum is always
// recomputed from the array; it is needed only for visualization and has
// no effect on the seam search.
func (e *EnergyMap) Max() float64 {
	var max float64
	for _, v := range e.values {
		if v > max {
			max = v
		}
	}
	return max
}

// ComputeEnergy computes the dual-gradient energy of each pixel.
//
// The horizontal and vertical color gradients are obtained with central
// differences on interior pixels and one-sided, distance-2 neighbor pairs
// at the image borders. The energy of a pixel is the square root of the
// sum of the six squared per-channel differences (R, G, B for each of the
// two gradients). The channel deltas are squared and summed as exact
// integers, with a single square root at the end.
func ComputeEnergy(img *image.NRGBA) (*EnergyMap, error) {
	if img == nil {
		return nil, ErrInvalidDimension
	}
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	if width < 2 || height < 2 {
		return nil, ErrInvalidDimension
	}

	e := &EnergyMap{
		Width:  width,
		Height: height,
		values: make([]float64, width*height),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			x0, x1 := neighborPair(x, width)
			y0, y1 := neighborPair(y, height)

			h := channelDelta(img, x0, y, x1, y)
			v := channelDelta(img, x, y0, x, y1)

			e.set(x, y, math.Sqrt(float64(h+v)))
		}
	}
	return e, nil
}

// neighborPair selects the gradient sample positions for the coordinate i
// along an axis of the given size: {i-1, i+1} on the interior, {i, i+2} at
// the near border and {i-2, i} at the far border. The distance-2 reach is
// clipped on a 2 pixel axis, where only the direct neighbor exists.
func neighborPair(i, size int) (int, int) {
	switch {
	case i == 0:
		return 0, min(2, size-1)
	case i == size-1:
		return max(i-2, 0), i
	default:
		return i - 1, i + 1
	}
}

// channelDelta returns the sum of the squared per-channel color differences
// between the pixels at (x0, y0) and (x1, y1).
func channelDelta(img *image.NRGBA, x0, y0, x1, y1 int) int {
	p0 := img.PixOffset(x0, y0)
	p1 := img.PixOffset(x1, y1)

	dr := int(img.Pix[p1+0]) - int(img.Pix[p0+0])
	dg := int(img.Pix[p1+1]) - int(img.Pix[p0+1])
	db := int(img.Pix[p1+2]) - int(img.Pix[p0+2])

	return dr*dr + dg*dg + db*db
}

func min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

func max(x, y int) int {
	if x > y {
		return x
	}
	return y
}
