package ir

import "errors"

var (
	// ErrPath reports a malformed path, a path which does not resolve, or a
	// request for the path of the root.
	ErrPath = errors.New("path error")
	// ErrChild reports a missing child.
	ErrChild = errors.New("no such child")
	// ErrNoPlug reports a missing attribute.
	ErrNoPlug         = errors.New("no such plug")
	ErrNoDocFormatRev = errors.New("no document format revision")
	ErrDuplicate      = errors.New("duplicate")
	ErrValue          = errors.New("bad value")
)
