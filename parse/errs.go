package parse

import "errors"

var (
	// ErrContract reports a second connection to the input of a plug.
	ErrContract = errors.New("contract violation")
	// ErrNoObject reports a reference to an object id which was not
	// created, or which does not denote a node where one is required.
	ErrNoObject = errors.New("no such object")
	ErrNoRoot   = errors.New("no root node")
	// ErrStrict reports input skipped by a lenient parse.
	ErrStrict = errors.New("strict mode")
)
