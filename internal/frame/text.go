package frame

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// stripPadding is the vertical slack in the caption strip so descenders and
// the 2px glyph inset fit.
const stripPadding = 8

// glyphInset shifts every painted glyph pixel right and down so antialiased
// edges with small negative bearings stay inside the strip.
const glyphInset = 2

// Glyph is one positioned coverage bitmap, ready to paint onto the caption
// strip. Consumed immediately during strip construction.
type Glyph struct {
	Mask   *image.Alpha // coverage, 0..255
	Origin image.Point  // top-left of the mask in strip coordinates
}

// GlyphSource turns a caption into positioned glyph bitmaps. It exists so
// the compositor does not care which font engine rasterizes the outlines.
type GlyphSource interface {
	Layout(text string, sizePx int) ([]Glyph, error)
}

// DefaultTypeface returns the bundled fallback font (Go Regular), used when
// the caller supplies no typeface of their own.
func DefaultTypeface() []byte { return goregular.TTF }

// OpenTypeSource rasterizes glyphs with the x/image opentype engine.
type OpenTypeSource struct {
	font *sfnt.Font
}

// NewOpenTypeSource parses raw TTF/OTF bytes into a glyph source.
func NewOpenTypeSource(ttf []byte) (*OpenTypeSource, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	return &OpenTypeSource{font: f}, nil
}

// Layout walks the text left to right using the face's advance and kerning
// metrics. The baseline is anchored so the face's descent ends at sizePx,
// keeping capitals and descenders inside the band renderCaption composites.
func (s *OpenTypeSource) Layout(text string, sizePx int) ([]Glyph, error) {
	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    float64(sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	defer face.Close()

	var glyphs []Glyph
	dot := fixed.Point26_6{X: 0, Y: fixed.I(sizePx-glyphInset) - face.Metrics().Descent}
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			dot.X += face.Kern(prev, r)
		}
		dr, mask, maskp, advance, ok := face.Glyph(dot, r)
		if ok && !dr.Empty() {
			g := Glyph{
				Mask:   image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy())),
				Origin: dr.Min,
			}
			draw.Draw(g.Mask, g.Mask.Bounds(), mask, maskp, draw.Src)
			glyphs = append(glyphs, g)
		}
		dot.X += advance
		prev = r
	}
	return glyphs, nil
}

// renderCaption paints the caption into a scratch strip and composites the
// inked part onto the canvas below the photo. Centering uses the glyphs'
// actual ink extent rather than the strip width, so short and long captions
// land equally centered.
func renderCaption(canvas *image.NRGBA, caption string, src GlyphSource, p Placement, cfg Config) error {
	glyphs, err := src.Layout(caption, cfg.TextSize)
	if err != nil {
		return err
	}

	stripH := cfg.TextSize + stripPadding
	strip := image.NewNRGBA(image.Rect(0, 0, cfg.Width, stripH))
	draw.Draw(strip, strip.Bounds(), image.NewUniform(cfg.Background), image.Point{}, draw.Src)

	black := color.NRGBA{A: 255}
	maxX := 0
	for _, g := range glyphs {
		w, h := g.Mask.Rect.Dx(), g.Mask.Rect.Dy()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if g.Mask.AlphaAt(x, y).A <= 127 {
					continue
				}
				sx := g.Origin.X + x + glyphInset
				sy := g.Origin.Y + y + glyphInset
				if sx < 0 || sx >= cfg.Width || sy < 0 || sy >= stripH {
					continue
				}
				strip.SetNRGBA(sx, sy, black)
				if sx > maxX {
					maxX = sx
				}
			}
		}
	}
	if maxX == 0 {
		// nothing inked, nothing to place
		return nil
	}

	offX := (cfg.Width - maxX) / 2
	offY := p.Y + p.Height + cfg.Margin/2
	for y := 0; y < cfg.TextSize && offY+y < cfg.Height; y++ {
		for x := 0; x < maxX; x++ {
			canvas.SetNRGBA(offX+x, offY+y, strip.NRGBAAt(x, y))
		}
	}
	return nil
}
