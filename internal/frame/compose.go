package frame

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// composeCanvas builds the background canvas, pastes the scaled photo at its
// placement and rounds the photo's corners by blending the mask tile over
// them. The interior of the photo stays a verbatim opaque copy.
func composeCanvas(photo *image.NRGBA, p Placement, cfg Config) (*image.NRGBA, error) {
	r := cfg.CornerRadius
	if 2*r > p.Width || 2*r > p.Height {
		return nil, fmt.Errorf("%w: corner radius %d exceeds half the %dx%d scaled photo",
			ErrGeometry, r, p.Width, p.Height)
	}

	canvas := imaging.New(cfg.Width, cfg.Height, cfg.Background)
	canvas = imaging.Paste(canvas, photo, image.Pt(p.X, p.Y))

	tile := cornerMask(r, cfg.Background)
	for _, c := range corners {
		region := cornerRegion(c, p.Width, p.Height, r)
		for y := region.Min.Y; y < region.Max.Y; y++ {
			for x := region.Min.X; x < region.Max.X; x++ {
				mx, my := maskIndex(c, x, y, p.Width, p.Height, r)
				px := blend(photo.NRGBAAt(x, y), tile.NRGBAAt(mx, my))
				canvas.SetNRGBA(p.X+x, p.Y+y, px)
			}
		}
	}
	return canvas, nil
}

// blend mixes the mask color over the photo pixel weighted by the mask's
// alpha. The result is always opaque; wallpapers never carry transparency.
func blend(photo, mask color.NRGBA) color.NRGBA {
	a := float64(mask.A) / 255
	return color.NRGBA{
		R: uint8((1-a)*float64(photo.R) + a*float64(mask.R)),
		G: uint8((1-a)*float64(photo.G) + a*float64(mask.G)),
		B: uint8((1-a)*float64(photo.B) + a*float64(mask.B)),
		A: 255,
	}
}
