package frame

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// placeBadge pastes a QR code for cfg.BadgeText into the bottom-right margin
// area. The badge shares the bottom band with the caption but hugs the right
// edge, so the two do not collide on the default geometry.
func placeBadge(canvas *image.NRGBA, cfg Config) (*image.NRGBA, error) {
	size := cfg.BottomExtraMargin - cfg.Margin/2
	if size <= 0 {
		return canvas, nil
	}
	q, err := qrcode.New(cfg.BadgeText, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("badge qr: %w", err)
	}
	q.DisableBorder = true
	pt := image.Pt(cfg.Width-cfg.Margin-size, cfg.Height-cfg.Margin-size)
	return imaging.Paste(canvas, q.Image(size), pt), nil
}
