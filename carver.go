package carve

import "image"

// Carver removes minimum-energy seams from an image, one at a time,
// until the requested width reduction is reached. The energy map and the
// search graph are rebuilt from scratch after every removed seam, since
// each removal changes the gradients along the carved path.
type Carver struct {
	Width  int
	Height int
	Seams  []Seam
}

// NewCarver returns a carver for an image of the given dimensions.
func NewCarver(width, height int) *Carver {
	return &Carver{
		Width:  width,
		Height: height,
	}
}

// Shrink removes count vertical seams and returns a new image buffer with
// the width reduced by count. The source image is never mutated. The seams
// removed along the way are recorded on the carver in removal order.
//
// The whole reduction is validated up front: a count equal to or exceeding
// the current width fails with ErrInvalidReduction and a buffer too small
// to carve fails with ErrInvalidDimension, in both cases before any seam
// is computed.
func (c *Carver) Shrink(img *image.NRGBA, count int) (*image.NRGBA, error) {
	if img == nil || c.Width == 0 || c.Height == 0 {
		return nil, ErrInvalidDimension
	}
	if count < 0 || count >= c.Width {
		return nil, ErrInvalidReduction
	}
	if count == 0 {
		return img, nil
	}
	if c.Height < 2 {
		return nil, ErrInvalidDimension
	}

	for i := 0; i < count; i++ {
		emap, err := ComputeEnergy(img)
		if err != nil {
			return nil, err
		}
		graph, err := NewSeamGraph(emap)
		if err != nil {
			return nil, err
		}
		seam, _ := graph.FindSeam()
		c.Seams = append(c.Seams, seam)

		img = c.RemoveSeam(img, seam)
	}
	return img, nil
}

// RemoveSeam copies the image into a new buffer one column narrower,
// skipping the seam pixel of each row. Exactly one pixel is removed per
// row, so the height never changes.
func (c *Carver) RemoveSeam(img *image.NRGBA, seam Seam) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, c.Width-1, c.Height))

	for y := 0; y < c.Height; y++ {
		sx := seam[y].X
		srcOff := img.PixOffset(0, y)
		dstOff := dst.PixOffset(0, y)

		copy(dst.Pix[dstOff:dstOff+sx*4], img.Pix[srcOff:srcOff+sx*4])
		copy(dst.Pix[dstOff+sx*4:dstOff+(c.Width-1)*4], img.Pix[srcOff+(sx+1)*4:srcOff+c.Width*4])
	}

	c.Width--
	return dst
}
