package carve

import (
	"image"
	"image/color"
)

// Image renders the energy map as a grayscale image, scaling each value
// against the recomputed maximum. The rendering is purely presentational
// and never feeds back into the seam search.
func (e *EnergyMap) Image() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, e.Width, e.Height))

	max := e.Max()
	for y := 0; y < e.Height; y++ {
		for x := 0; x < e.Width; x++ {
			var lum uint8
			if max > 0 {
				lum = uint8(e.At(x, y) / max * 255)
			}
			dst.SetNRGBA(x, y, color.NRGBA{R: lum, G: lum, B: lum, A: 0xff})
		}
	}
	return dst
}

// PaintSeam returns a copy of the image with the seam pixels replaced by
// the given color. Used by the debug mode to show which path the carver
// is about to remove.
func PaintSeam(img *image.NRGBA, seam Seam, col color.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(img.Bounds())
	copy(dst.Pix, img.Pix)

	for _, p := range seam {
		dst.SetNRGBA(p.X, p.Y, col)
	}
	return dst
}
