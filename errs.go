package gproject

import "errors"

var (
	// ErrNoLiteral reports an edit of a plug which has no literal in the
	// document, such as one created by a connection.
	ErrNoLiteral = errors.New("plug has no literal")
	ErrRewrite   = errors.New("rewrite error")
	ErrInvalid   = errors.New("invalid graph")
	ErrCycle     = errors.New("input cycle")
)
