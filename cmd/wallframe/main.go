package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/youruser/wallframe/internal/frame"
	"github.com/youruser/wallframe/internal/rotation"
	"github.com/youruser/wallframe/internal/util"
)

func main() {
	in := flag.String("in", "", "source image to frame (single mode)")
	dir := flag.String("dir", "", "photo directory (rotate mode)")
	statePath := flag.String("state", "", "rotation state file (rotate mode)")
	permPath := flag.String("perm", "", "optional shuffle permutation file (rotate mode)")
	out := flag.String("out", "wallpaper.png", "output PNG path")
	caption := flag.String("caption", "", "caption override; default is the filename without extension")
	fontPath := flag.String("font", "", "TTF/OTF file; bundled Go Regular when empty")
	badge := flag.String("badge", "", "text for an attribution QR badge")
	width := flag.Int("width", 0, "canvas width override")
	height := flag.Int("height", 0, "canvas height override")
	flag.Parse()

	cfg := frame.DefaultConfig()
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	cfg.BadgeText = *badge

	font := frame.DefaultTypeface()
	if *fontPath != "" {
		b, err := os.ReadFile(*fontPath)
		if err != nil {
			log.Fatal("read font: ", err)
		}
		font = b
	}

	switch {
	case *in != "":
		if err := composeOne(*in, *caption, *out, font, cfg); err != nil {
			log.Fatal(err)
		}
	case *dir != "" && *statePath != "":
		if err := rotate(*dir, *statePath, *permPath, *out, font, cfg); err != nil {
			log.Fatal(err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func composeOne(in, caption, out string, font []byte, cfg frame.Config) error {
	src, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	if caption == "" {
		caption = rotation.Caption(in)
	}
	png, err := frame.Compose(src, caption, font, cfg)
	if err != nil {
		return err
	}
	if err := util.EnsureDir(filepath.Dir(out)); err != nil {
		return err
	}
	return os.WriteFile(out, png, 0o644)
}

// rotate frames the next photo in the directory's shuffle order and advances
// the persisted rotation state. Applying the PNG as the desktop background is
// left to the caller's environment.
func rotate(dir, statePath, permPath, out string, font []byte, cfg frame.Config) error {
	names, err := rotation.ListImages(dir)
	if err != nil {
		return err
	}
	perm := rotation.IdentityPermutation(len(names))
	if permPath != "" {
		if perm, err = rotation.LoadPermutation(permPath); err != nil {
			return err
		}
	}

	st, err := rotation.LoadState(statePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		st = rotation.State{}
	}

	name, next, err := rotation.Next(names, perm, st.Index)
	if err != nil {
		return err
	}
	if err := composeOne(filepath.Join(dir, name), "", out, font, cfg); err != nil {
		return err
	}
	log.Printf("framed %s -> %s", name, out)
	return rotation.SaveState(statePath, rotation.State{LastChange: time.Now(), Index: next})
}
