package frame

import (
	"image"
	"image/color"
	"math"
)

// corner identifies one of the four photo corners.
type corner int

const (
	topLeft corner = iota
	topRight
	bottomLeft
	bottomRight
)

var corners = [...]corner{topLeft, topRight, bottomLeft, bottomRight}

// cornerMask builds the quarter-disc alpha tile shared by all four corners.
// Pixel (x,y) carries the background color with alpha rising from 0 inside
// the rounding circle to 255 outside it:
//
//	alpha = clamp(sqrt(x²+y²) - r + 0.5, 0, 1) * 255
//
// The circle is centered at (r,r), so the tile as generated matches the
// bottom-right corner; the other three corners index it through maskIndex
// instead of regenerating the geometry.
func cornerMask(r int, bg color.NRGBA) *image.NRGBA {
	tile := image.NewNRGBA(image.Rect(0, 0, r, r))
	for y := 0; y < r; y++ {
		for x := 0; x < r; x++ {
			d := math.Sqrt(float64(x*x+y*y)) - float64(r) + 0.5
			a := clamp01(d) * 255
			tile.SetNRGBA(x, y, color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: uint8(a)})
		}
	}
	return tile
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// maskIndex maps a photo pixel inside a corner's blend region to its tile
// coordinate. x,y are photo coordinates, w,h the photo size, r the tile
// side. Each corner reflects the tile so alpha grows outward, toward the
// true corner of the photo.
func maskIndex(c corner, x, y, w, h, r int) (int, int) {
	switch c {
	case topLeft:
		return r - 1 - x, r - 1 - y
	case topRight:
		return x - (w - r), r - 1 - y
	case bottomLeft:
		return r - 1 - x, y - (h - r)
	default: // bottomRight
		return x - (w - r), y - (h - r)
	}
}

// cornerRegion returns the photo-space rectangle a corner's blend covers.
func cornerRegion(c corner, w, h, r int) image.Rectangle {
	switch c {
	case topLeft:
		return image.Rect(0, 0, r, r)
	case topRight:
		return image.Rect(w-r, 0, w, r)
	case bottomLeft:
		return image.Rect(0, h-r, r, h)
	default:
		return image.Rect(w-r, h-r, w, h)
	}
}
