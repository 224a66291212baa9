package cache

import "errors"

var (
	// ErrUnknownEntry is returned for operations on identifiers not cached.
	ErrUnknownEntry = errors.New("cache: unknown entry")
	// ErrClosed is returned for operations on a closed cache.
	ErrClosed = errors.New("cache: closed")
	// ErrGenerate wraps errors of a Generator.
	ErrGenerate = errors.New("cache: generating map file failed")
)
