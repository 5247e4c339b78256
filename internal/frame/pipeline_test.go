package frame

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// photoPNG encodes a w x h gradient as PNG bytes, a stand-in for a source
// photograph.
func photoPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 90,
				A: 255,
			})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestComposeDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	src := photoPNG(t, 640, 480)

	first, err := Compose(src, "rose", DefaultTypeface(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Compose(src, "rose", DefaultTypeface(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("same inputs produced different output bytes")
	}
}

func TestComposeEndToEnd(t *testing.T) {
	cfg := DefaultConfig()
	src := photoPNG(t, 800, 600)

	out, err := Compose(src, "rose", DefaultTypeface(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if b := decoded.Bounds(); b.Dx() != cfg.Width || b.Dy() != cfg.Height {
		t.Fatalf("output is %dx%d, want %dx%d", b.Dx(), b.Dy(), cfg.Width, cfg.Height)
	}

	canvas := image.NewNRGBA(decoded.Bounds())
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			canvas.Set(x, y, decoded.At(x, y))
		}
	}

	// fully opaque output
	for y := 0; y < cfg.Height; y += 97 {
		for x := 0; x < cfg.Width; x += 97 {
			if a := canvas.NRGBAAt(x, y).A; a != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255", x, y, a)
			}
		}
	}

	p := cfg.placement(800, 600)
	bg := cfg.Background

	if got := canvas.NRGBAAt(1, 1); got != bg {
		t.Errorf("margin pixel = %+v, want background %+v", got, bg)
	}
	// placed photo's extreme corner is fully rounded into the background
	if got := canvas.NRGBAAt(p.X, p.Y); got != bg {
		t.Errorf("photo corner = %+v, want background %+v", got, bg)
	}
	// the photo interior survives
	if got := canvas.NRGBAAt(p.X+p.Width/2, p.Y+p.Height/2); got == bg {
		t.Error("photo center equals the background color; photo missing")
	}
	// caption ink appears below the photo, centered
	minX, maxX, found := captionInkBounds(canvas, p, cfg)
	if !found {
		t.Fatal("no caption ink below the photo")
	}
	if center := (minX + maxX) / 2; diffInt(center, cfg.Width/2) > 8 {
		t.Errorf("caption ink center %d, want about %d", center, cfg.Width/2)
	}
}

func TestComposeBadge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BadgeText = "https://example.com/rose"
	src := photoPNG(t, 640, 480)

	out, err := Compose(src, "rose", DefaultTypeface(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}

	size := cfg.BottomExtraMargin - cfg.Margin/2
	region := image.Rect(cfg.Width-cfg.Margin-size, cfg.Height-cfg.Margin-size,
		cfg.Width-cfg.Margin, cfg.Height-cfg.Margin)
	nonBG := 0
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			r, g, b, _ := decoded.At(x, y).RGBA()
			if uint8(r>>8) != cfg.Background.R || uint8(g>>8) != cfg.Background.G || uint8(b>>8) != cfg.Background.B {
				nonBG++
			}
		}
	}
	if nonBG == 0 {
		t.Fatal("badge region contains only background pixels; QR missing")
	}
}

func TestComposeErrors(t *testing.T) {
	validSrc := photoPNG(t, 200, 150)

	t.Run("decode", func(t *testing.T) {
		_, err := Compose([]byte("not an image"), "x", DefaultTypeface(), DefaultConfig())
		if !errors.Is(err, ErrDecode) {
			t.Fatalf("err = %v, want ErrDecode", err)
		}
	})

	t.Run("font", func(t *testing.T) {
		_, err := Compose(validSrc, "x", []byte("not a font"), DefaultConfig())
		if !errors.Is(err, ErrFontLoad) {
			t.Fatalf("err = %v, want ErrFontLoad", err)
		}
	})

	t.Run("geometry", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Width = 0
		_, err := Compose(validSrc, "x", DefaultTypeface(), cfg)
		if !errors.Is(err, ErrGeometry) {
			t.Fatalf("err = %v, want ErrGeometry", err)
		}
	})

	t.Run("radius vs scaled photo", func(t *testing.T) {
		// an extremely wide source scales to a sliver shorter than the
		// corner diameter
		_, err := Compose(photoPNG(t, 4000, 100), "x", DefaultTypeface(), DefaultConfig())
		if !errors.Is(err, ErrGeometry) {
			t.Fatalf("err = %v, want ErrGeometry", err)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"negative margin", func(c *Config) { c.Margin = -1 }, false},
		{"margin eats the canvas", func(c *Config) { c.Margin = 1300 }, false},
		{"caption band eats the canvas", func(c *Config) { c.BottomExtraMargin = 1500 }, false},
		{"zero text size", func(c *Config) { c.TextSize = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrGeometry) {
				t.Fatalf("err = %v, want ErrGeometry", err)
			}
		})
	}
}
