package codec

import "errors"

var (
	ErrUnknownType = errors.New("unknown value type")
	ErrLiteral     = errors.New("bad literal")
	ErrEncode      = errors.New("cannot encode value")
)
