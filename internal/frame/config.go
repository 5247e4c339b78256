package frame

import (
	"fmt"
	"image/color"
)

// Config holds the canvas geometry and styling for a framed wallpaper.
// The zero value is not usable; start from DefaultConfig and override.
type Config struct {
	Width  int // canvas width in pixels
	Height int // canvas height in pixels

	Margin            int // inset on all four sides
	BottomExtraMargin int // extra space under the photo, reserved for the caption
	CornerRadius      int // rounding radius applied to the photo corners
	TextSize          int // caption glyph size in pixels

	Background color.NRGBA // canvas color, also shows through the rounded corners

	// BadgeText, when non-empty, is encoded as a small QR code pasted into
	// the bottom-right margin area. Meant for linking the wallpaper back to
	// its source page.
	BadgeText string
}

// DefaultConfig returns the standard 2560x1530 wallpaper geometry: 50px
// margins, a 150px caption band, 50px corner rounding and 60px text on an
// off-white background.
func DefaultConfig() Config {
	return Config{
		Width:             2560,
		Height:            1530,
		Margin:            50,
		BottomExtraMargin: 150,
		CornerRadius:      50,
		TextSize:          60,
		Background:        color.NRGBA{R: 229, G: 223, B: 199, A: 255},
	}
}

// boxWidth and boxHeight give the content box available to the photo once
// margins and the caption band are taken out.
func (c Config) boxWidth() int  { return c.Width - 2*c.Margin }
func (c Config) boxHeight() int { return c.Height - 2*c.Margin - c.BottomExtraMargin }

// Validate rejects configurations that would produce out-of-range pixel
// indices during compositing. The corner radius is checked against the
// scaled photo later, once its size is known.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrGeometry, c.Width, c.Height)
	}
	if c.Margin < 0 || c.BottomExtraMargin < 0 || c.CornerRadius < 0 {
		return fmt.Errorf("%w: negative margin or corner radius", ErrGeometry)
	}
	if c.TextSize <= 0 {
		return fmt.Errorf("%w: text size %d", ErrGeometry, c.TextSize)
	}
	if c.boxWidth() <= 0 {
		return fmt.Errorf("%w: margin %d leaves no horizontal room on a %dpx wide canvas", ErrGeometry, c.Margin, c.Width)
	}
	if c.boxHeight() <= 0 {
		return fmt.Errorf("%w: margins leave no vertical room on a %dpx tall canvas", ErrGeometry, c.Height)
	}
	return nil
}
