// Package frame composes source photographs into fixed-size stylized
// wallpapers: the photo is Lanczos-scaled into a bordered off-white canvas,
// its corners are rounded by anti-aliased alpha blending, and a caption is
// rasterized beneath it from an outline typeface.
package frame

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// Compose turns an encoded source photo (JPEG or PNG) into a framed
// wallpaper, encoded as PNG. It is a pure function of its inputs: the same
// bytes, caption, typeface and config always produce byte-identical output.
// On error no partial output is returned.
func Compose(src []byte, caption string, ttf []byte, cfg Config) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	glyphs, err := NewOpenTypeSource(ttf)
	if err != nil {
		return nil, err
	}
	return ComposeImage(img, caption, glyphs, cfg)
}

// ComposeImage is Compose for callers that already hold a decoded image and
// a glyph source.
func ComposeImage(img image.Image, caption string, glyphs GlyphSource, cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty source image", ErrDecode)
	}

	p := cfg.placement(b.Dx(), b.Dy())
	photo := scalePhoto(img, p)

	canvas, err := composeCanvas(photo, p, cfg)
	if err != nil {
		return nil, err
	}
	if err := renderCaption(canvas, caption, glyphs, p, cfg); err != nil {
		return nil, err
	}
	if cfg.BadgeText != "" {
		canvas, err = placeBadge(canvas, cfg)
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}
