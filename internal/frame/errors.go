package frame

import "errors"

// Sentinel errors returned by the composition pipeline. Callers can match
// them with errors.Is; the wrapped message carries the specifics.
var (
	ErrDecode   = errors.New("frame: decode source image")
	ErrFontLoad = errors.New("frame: load typeface")
	ErrGeometry = errors.New("frame: bad geometry")
	ErrEncode   = errors.New("frame: encode output")
)
