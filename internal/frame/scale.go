package frame

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Placement locates the scaled photo on the canvas.
type Placement struct {
	Width  int // scaled photo width
	Height int // scaled photo height
	X      int // left offset on the canvas
	Y      int // top offset on the canvas
}

// fitDimensions computes the largest aspect-preserving size for a srcW x srcH
// photo inside a boxW x boxH content box. The scale factor is uniform, so
// exactly one axis touches its bound.
func fitDimensions(srcW, srcH, boxW, boxH int) (int, int) {
	s := math.Min(float64(boxW)/float64(srcW), float64(boxH)/float64(srcH))
	return int(math.Round(float64(srcW) * s)), int(math.Round(float64(srcH) * s))
}

// placement fits a srcW x srcH photo into the content box and centers it.
// Vertical centering works against the area above the caption band,
// Height - BottomExtraMargin, not the full canvas height.
func (c Config) placement(srcW, srcH int) Placement {
	w, h := fitDimensions(srcW, srcH, c.boxWidth(), c.boxHeight())
	return Placement{
		Width:  w,
		Height: h,
		X:      (c.Width - w) / 2,
		Y:      (c.Height - h - c.BottomExtraMargin) / 2,
	}
}

// scalePhoto resamples the source to the placement size. Lanczos keeps
// downscaled photos free of aliasing artifacts.
func scalePhoto(src image.Image, p Placement) *image.NRGBA {
	return imaging.Resize(src, p.Width, p.Height, imaging.Lanczos)
}
