package carve

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnergy_UniformImage(t *testing.T) {
	assert := assert.New(t)

	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.NRGBA{R: 0x7f, G: 0x33, B: 0xaa, A: 0xff}}, image.Point{}, draw.Src)

	emap, err := ComputeEnergy(img)
	assert.NoError(err)

	for y := 0; y < emap.Height; y++ {
		for x := 0; x < emap.Width; x++ {
			assert.Equal(0.0, emap.At(x, y))
		}
	}
	assert.Equal(0.0, emap.Max())
}

func TestEnergy_HorizontalGradient(t *testing.T) {
	assert := assert.New(t)

	// The red channel grows by 10 per column, so every horizontal pair
	// spans two columns and differs by exactly 20, both on the interior
	// and at the borders. The vertical gradient stays zero.
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), A: 0xff})
		}
	}

	emap, err := ComputeEnergy(img)
	assert.NoError(err)

	for y := 0; y < emap.Height; y++ {
		for x := 0; x < emap.Width; x++ {
			assert.Equal(20.0, emap.At(x, y), "at (%d, %d)", x, y)
		}
	}
	assert.Equal(20.0, emap.Max())
}

func TestEnergy_ExactChannelMix(t *testing.T) {
	assert := assert.New(t)

	// A 3-4-0 delta on the R and G channels of the horizontal pair gives
	// sqrt(9+16) = 5 exactly, with no intermediate rounding.
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(2, 0, color.NRGBA{R: 3, G: 4, A: 0xff})
	img.SetNRGBA(2, 1, color.NRGBA{R: 3, G: 4, A: 0xff})

	emap, err := ComputeEnergy(img)
	assert.NoError(err)
	assert.Equal(5.0, emap.At(0, 0))
	assert.Equal(5.0, emap.At(1, 0))
}

func TestEnergy_NonNegativeAndDefined(t *testing.T) {
	img := randImage(17, 11, 42)

	emap, err := ComputeEnergy(img)
	assert.NoError(t, err)

	for y := 0; y < emap.Height; y++ {
		for x := 0; x < emap.Width; x++ {
			assert.GreaterOrEqual(t, emap.At(x, y), 0.0)
		}
	}
}

func TestEnergy_Idempotence(t *testing.T) {
	img := randImage(12, 9, 7)

	first, err := ComputeEnergy(img)
	assert.NoError(t, err)
	second, err := ComputeEnergy(img)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEnergy_InvalidDimension(t *testing.T) {
	assert := assert.New(t)

	_, err := ComputeEnergy(nil)
	assert.ErrorIs(err, ErrInvalidDimension)

	_, err = ComputeEnergy(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(err, ErrInvalidDimension)

	_, err = ComputeEnergy(image.NewNRGBA(image.Rect(0, 0, 1, 5)))
	assert.ErrorIs(err, ErrInvalidDimension)

	_, err = ComputeEnergy(image.NewNRGBA(image.Rect(0, 0, 5, 1)))
	assert.ErrorIs(err, ErrInvalidDimension)
}
