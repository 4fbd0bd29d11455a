package token

import (
	"bytes"
	"strconv"
)

const (
	CmdDocFormatRevision = "docformatrevision"
	CmdCreate            = "create"
	CmdCreateNotRef      = "createnotref"
	CmdSet               = "set"
	CmdConnect           = "connect"
	CmdDepend            = "depend"
)

// Known reports whether name is a command understood by the graph builder.
func Known(name string) bool {
	switch name {
	case CmdDocFormatRevision, CmdCreate, CmdCreateNotRef, CmdSet, CmdConnect, CmdDepend:
		return true
	}
	return false
}

// Command is one scanned command line.
type Command struct {
	// Name is the command identifier, e.g. "create".
	Name string
	// OID is the object id assigned by an `oid[N]=` prefix.
	OID    int
	HasOID bool
	// Args is the text between the opening parenthesis and the last
	// closing parenthesis of the line.
	Args string
	// Off is the byte offset of Args in the document.
	Off int
	// Line is the 0 based line of the command.
	Line int
	Pos  *Pos
}

// Skipped is a non blank line which does not have the shape of a command.
type Skipped struct {
	Line int
	Text string
	Pos  *Pos
}

type Scanned struct {
	Doc      *PosDoc
	Commands []Command
	Skipped  []Skipped
}

// Scan splits d into commands, one per line.
//
// Leading white space, trailing white space and a carriage return before
// the line feed are tolerated, as is a missing final line feed.
func Scan(d []byte) *Scanned {
	res := &Scanned{Doc: NewPosDoc(d)}
	line := 0
	for off := 0; off < len(d); line++ {
		end := bytes.IndexByte(d[off:], '\n')
		next := len(d)
		if end == -1 {
			end = len(d)
		} else {
			end += off
			next = end + 1
		}
		if cmd, ok := scanLine(d, off, end); ok {
			cmd.Line = line
			cmd.Pos = res.Doc.Pos(cmd.Off)
			res.Commands = append(res.Commands, cmd)
		} else if txt := bytes.TrimSpace(d[off:end]); len(txt) != 0 {
			res.Skipped = append(res.Skipped, Skipped{
				Line: line,
				Text: string(txt),
				Pos:  res.Doc.Pos(off),
			})
		}
		off = next
	}
	return res
}

func scanLine(d []byte, start, end int) (Command, bool) {
	cmd := Command{}
	i := start
	for i < end && isSpace(d[i]) {
		i++
	}
	for end > i && isSpace(d[end-1]) {
		end--
	}
	if end-i < 3 || d[end-1] != ')' {
		return cmd, false
	}
	if bytes.HasPrefix(d[i:end], []byte("oid[")) {
		j := i + 4
		k := j
		for k < end && isDigit(d[k]) {
			k++
		}
		if k == j || k+1 >= end || d[k] != ']' || d[k+1] != '=' {
			return cmd, false
		}
		oid, err := strconv.Atoi(string(d[j:k]))
		if err != nil {
			return cmd, false
		}
		cmd.OID = oid
		cmd.HasOID = true
		i = k + 2
	}
	j := i
	for j < end && isWord(d[j]) {
		j++
	}
	if j == i || j >= end || d[j] != '(' {
		return cmd, false
	}
	cmd.Name = string(d[i:j])
	cmd.Off = j + 1
	cmd.Args = string(d[j+1 : end-1])
	return cmd, true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlnum(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isWord(c byte) bool {
	return isAlnum(c) || c == '_'
}
