package carve

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeamGraph_UniformImage(t *testing.T) {
	assert := assert.New(t)

	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	draw.Draw(img, img.Bounds(), &image.Uniform{image.Black}, image.Point{}, draw.Src)

	emap, err := ComputeEnergy(img)
	assert.NoError(err)
	graph, err := NewSeamGraph(emap)
	assert.NoError(err)

	seam, dist := graph.FindSeam()
	assert.Len(seam, 6)
	assert.Equal(0.0, dist)

	// With every distance at zero the tie-breaks resolve to the leftmost
	// column at each step.
	for y, p := range seam {
		assert.Equal(y, p.Y)
		assert.Equal(0, p.X)
	}
}

func TestSeamGraph_SeamShape(t *testing.T) {
	img := randImage(23, 17, 99)

	emap, err := ComputeEnergy(img)
	assert.NoError(t, err)
	graph, err := NewSeamGraph(emap)
	assert.NoError(t, err)

	seam, _ := graph.FindSeam()
	assert.Len(t, seam, 17)

	for y, p := range seam {
		assert.Equal(t, y, p.Y)
		assert.GreaterOrEqual(t, p.X, 0)
		assert.Less(t, p.X, 23)
		if y > 0 {
			dx := p.X - seam[y-1].X
			assert.LessOrEqual(t, dx*dx, 1, "columns of adjacent rows may differ by at most 1")
		}
	}
}

func TestSeamGraph_DistanceMatchesPathSum(t *testing.T) {
	img := randImage(15, 12, 3)

	emap, err := ComputeEnergy(img)
	assert.NoError(t, err)
	graph, err := NewSeamGraph(emap)
	assert.NoError(t, err)

	seam, dist := graph.FindSeam()

	var sum float64
	for _, p := range seam {
		sum += emap.At(p.X, p.Y)
	}
	assert.Equal(t, sum, dist)
}

func TestSeamGraph_AvoidsBrightCenter(t *testing.T) {
	assert := assert.New(t)

	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	draw.Draw(img, img.Bounds(), &image.Uniform{image.Black}, image.Point{}, draw.Src)
	img.SetNRGBA(1, 1, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	emap, err := ComputeEnergy(img)
	assert.NoError(err)
	graph, err := NewSeamGraph(emap)
	assert.NoError(err)

	seam, dist := graph.FindSeam()
	assert.Len(seam, 3)
	assert.Equal(0.0, dist)
	assert.NotEqual(1, seam[1].X, "the seam should take a zero-energy path around the center")

	var sum float64
	for _, p := range seam {
		sum += emap.At(p.X, p.Y)
	}
	assert.Equal(sum, dist)
}

func TestSeamGraph_AvoidsContrastStripe(t *testing.T) {
	assert := assert.New(t)

	// A two pixel wide white stripe on a black image raises the energy of
	// the stripe and of its direct surroundings. The minimum seam has to
	// stay in the flat region left of it.
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	draw.Draw(img, img.Bounds(), &image.Uniform{image.Black}, image.Point{}, draw.Src)
	for y := 0; y < 10; y++ {
		img.SetNRGBA(6, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
		img.SetNRGBA(7, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	}

	emap, err := ComputeEnergy(img)
	assert.NoError(err)
	graph, err := NewSeamGraph(emap)
	assert.NoError(err)

	seam, dist := graph.FindSeam()
	assert.Equal(0.0, dist)
	for _, p := range seam {
		assert.Less(p.X, 5)
	}
}

func TestSeamGraph_InvalidDimension(t *testing.T) {
	_, err := NewSeamGraph(nil)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = NewSeamGraph(&EnergyMap{Width: 0, Height: 10})
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = NewSeamGraph(&EnergyMap{Width: 10, Height: 0})
	assert.ErrorIs(t, err, ErrInvalidDimension)
}
