package token

import (
	"errors"
	"fmt"
)

var (
	ErrGrammar      = errors.New("grammar violation")
	ErrUnterminated = errors.New("unterminated string")
	ErrNumber       = errors.New("number")
)

// GrammarError reports a command whose arguments do not follow the
// grammar of the command.
//
// A GrammarError unwraps to [ErrGrammar] and, when set, to Err.
type GrammarError struct {
	Err    error
	Cmd    string
	Detail string
	Pos    *Pos
}

func (e *GrammarError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrGrammar}
	}
	return []error{ErrGrammar, e.Err}
}

func (e *GrammarError) Error() string {
	msg := ErrGrammar.Error()
	if e.Cmd != "" {
		msg += " in " + e.Cmd
	}
	if e.Pos != nil {
		msg += " at " + e.Pos.String()
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Errorf returns a [GrammarError] located at the argument text of c.
func (c *Command) Errorf(format string, args ...any) error {
	return &GrammarError{
		Cmd:    c.Name,
		Detail: fmt.Sprintf(format, args...),
		Pos:    c.Pos,
	}
}

// Wrap returns a [GrammarError] for c which also unwraps to err.
func (c *Command) Wrap(err error, format string, args ...any) error {
	return &GrammarError{
		Err:    err,
		Cmd:    c.Name,
		Detail: fmt.Sprintf(format, args...),
		Pos:    c.Pos,
	}
}
