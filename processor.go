package carve

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/teodorv/carve/utils"
)

// SeamCarver is the interface implemented by the Processor. It takes the
// source image and returns the content-aware resized image.
type SeamCarver interface {
	Resize(*image.NRGBA) (image.Image, error)
}

var _ SeamCarver = (*Processor)(nil)

// Processor holds the resize options.
type Processor struct {
	NewWidth   int
	NewHeight  int
	SeamColor  string
	Percentage bool
	Scale      bool
	Debug      bool
	Spinner    *utils.Spinner
}

// Resize invokes the seam carver over the source image.
func Resize(s SeamCarver, img *image.NRGBA) (image.Image, error) {
	return s.Resize(img)
}

// Resize carves the image down to the requested target size.
//
// The width is reduced by removing vertical seams. The height is reduced by
// rotating the image 90 degrees, removing vertical seams on the rotated
// buffer and rotating it back, so the carving core only ever deals with
// vertical seams. Image enlargement through seam insertion is not
// supported.
func (p *Processor) Resize(img *image.NRGBA) (image.Image, error) {
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()

	nw, nh, err := p.targetSize(dx, dy)
	if err != nil {
		return nil, err
	}

	// Proportionally pre-scale the image with a Lanczos filter and carve
	// only the remaining pixels. This trades some content awareness for
	// speed on large reductions.
	if p.Scale && nw > 0 && nh > 0 {
		img = rescaleImage(img, nw, nh)
		dx, dy = img.Bounds().Dx(), img.Bounds().Dy()
	}

	if nw > 0 && nw != dx {
		c := NewCarver(dx, dy)
		img, err = c.Shrink(img, dx-nw)
		if err != nil {
			return nil, err
		}
		dx = nw
	}

	if nh > 0 && nh != dy {
		img = imaging.Rotate90(img)

		c := NewCarver(dy, dx)
		img, err = c.Shrink(img, dy-nh)
		if err != nil {
			return nil, err
		}
		img = imaging.Rotate270(img)
	}
	return img, nil
}

// Process decodes the source image from the reader, resizes it and encodes
// the result into the writer. The io interfaces keep the input and output
// types open: plain files, pipes or network streams all work the same way.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	src, _, err := image.Decode(r)
	if err != nil {
		return err
	}

	res, err := Resize(p, imgToNRGBA(src))
	if err != nil {
		return err
	}
	return encodeImg(w, res)
}

// targetSize resolves the requested options to absolute target dimensions.
// In percentage mode the options express how much of each dimension should
// be carved away. A zero value leaves the dimension untouched.
func (p *Processor) targetSize(dx, dy int) (int, int, error) {
	nw, nh := p.NewWidth, p.NewHeight

	if p.Percentage {
		if nw >= 100 || nh >= 100 {
			return 0, 0, ErrInvalidReduction
		}
		if nw > 0 {
			nw = dx - int(float64(dx)*float64(p.NewWidth)/100)
		}
		if nh > 0 {
			nh = dy - int(float64(dy)*float64(p.NewHeight)/100)
		}
	}

	if nw < 0 || nh < 0 {
		return 0, 0, ErrInvalidReduction
	}
	if nw > dx || nh > dy {
		return 0, 0, errors.New("carve: image enlargement through seam insertion is not supported")
	}
	return nw, nh, nil
}

// rescaleImage scales the image down by the smaller of the two scale
// factors, preserving the aspect ratio while keeping both dimensions at or
// above the carving target.
func rescaleImage(img *image.NRGBA, nw, nh int) *image.NRGBA {
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	sf := utils.Min(w/float64(nw), h/float64(nh))
	if sf <= 1 {
		return img
	}
	return imaging.Resize(img, 0, int(math.Round(h/sf)), imaging.Lanczos)
}

// debugArtifacts computes the energy map of the source image together with
// a copy of it showing the first minimum seam in the configured seam color.
func (p *Processor) debugArtifacts(img *image.NRGBA) (*image.NRGBA, *image.NRGBA, error) {
	emap, err := ComputeEnergy(img)
	if err != nil {
		return nil, nil, err
	}
	graph, err := NewSeamGraph(emap)
	if err != nil {
		return nil, nil, err
	}
	seam, _ := graph.FindSeam()

	col, err := utils.HexToRGBA(p.SeamColor)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid seam color: %w", err)
	}
	return emap.Image(), PaintSeam(img, seam, col), nil
}
