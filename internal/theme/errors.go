package theme

import "errors"

var (
	ErrMissingTheme    = errors.New("no theme document set")
	ErrKeyNotFound     = errors.New("key path not found")
	ErrIndexOutOfRange = errors.New("theme index out of range")
	ErrParseFailure    = errors.New("parse failure")
	ErrThemeNotFound   = errors.New("theme not found")
)
