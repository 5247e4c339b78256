// Package rotation supplies the thin glue around the composition core:
// listing the photo directory, walking a fixed shuffle permutation and
// persisting the rotation position between runs.
package rotation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// State records when the wallpaper last changed and which permutation slot
// comes next.
type State struct {
	LastChange time.Time
	Index      int
}

// LoadState reads the two-line state file: unix timestamp, then index.
func LoadState(path string) (State, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return State{}, err
	}
	ts, idx, ok := strings.Cut(strings.TrimSpace(string(raw)), "\n")
	if !ok {
		return State{}, fmt.Errorf("state file %s: want two lines", path)
	}
	sec, err := strconv.ParseInt(strings.TrimSpace(ts), 10, 64)
	if err != nil {
		return State{}, fmt.Errorf("state file %s: timestamp: %w", path, err)
	}
	i, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return State{}, fmt.Errorf("state file %s: index: %w", path, err)
	}
	return State{LastChange: time.Unix(sec, 0), Index: i}, nil
}

// SaveState writes the state back in the same two-line format.
func SaveState(path string, s State) error {
	return os.WriteFile(path, []byte(fmt.Sprintf("%d\n%d", s.LastChange.Unix(), s.Index)), 0o644)
}

// ListImages returns the plain-file names in dir, sorted so the permutation
// has a stable base ordering across runs.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// LoadPermutation parses a comma-separated list of indices. Fields that do
// not parse are skipped.
func LoadPermutation(path string) ([]int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var perm []int
	for _, f := range strings.Split(strings.TrimSpace(string(raw)), ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			continue
		}
		perm = append(perm, n)
	}
	return perm, nil
}

// IdentityPermutation covers n images in sorted order, for callers without a
// shuffle file.
func IdentityPermutation(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// Caption derives the display caption from a filename: base name with the
// extension stripped.
func Caption(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Next picks the current filename through the permutation and returns the
// advanced index, wrapping at the image count.
func Next(names []string, perm []int, idx int) (string, int, error) {
	if len(names) == 0 {
		return "", 0, errors.New("rotation: no images")
	}
	if idx < 0 || idx >= len(perm) {
		return "", 0, fmt.Errorf("rotation: index %d outside permutation of %d", idx, len(perm))
	}
	pi := perm[idx]
	if pi < 0 || pi >= len(names) {
		return "", 0, fmt.Errorf("rotation: permutation entry %d outside %d images", pi, len(names))
	}
	return names[pi], (idx + 1) % len(names), nil
}
