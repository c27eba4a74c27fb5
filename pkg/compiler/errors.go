package compiler

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind groups compilation failures by the stage that detected them.
type ErrorKind int

const (
	LexicalError ErrorKind = iota
	StructuralError
	SyntaxError
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case StructuralError:
		return "indentation error"
	case SyntaxError:
		return "syntax error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

var (
	ErrInvalidNumber      = errors.New("invalid number")
	ErrUnexpectedChar     = errors.New("unexpected character")
	ErrLexemeTooLong      = errors.New("lexeme is too long")
	ErrIndentOverflow     = errors.New("too many indents")
	ErrInconsistentIndent = errors.New("inconsistent indentation")
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrUnexpectedEOF      = errors.New("unexpected end of input")
	ErrBadStatement       = errors.New("bad token")
)

// Error is the single failure a compilation stops at. Err is one of the
// sentinels above, so callers can use errors.Is.
type Error struct {
	Kind  ErrorKind
	Err   error
	Msg   string // detail appended to Err's text
	Token *Token // offending token, nil for character-level lexer errors
	Line  int

	snippet string
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	var sb strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&sb, "line %d: ", e.Line)
	}
	sb.WriteString(msg)
	if e.snippet != "" {
		sb.WriteString("\n  |> ")
		sb.WriteString(e.snippet)
	}
	return sb.String()
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, sentinel error, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: sentinel, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// withSource attaches the trimmed source line the error points at.
func withSource(err error, src string) error {
	var e *Error
	if !errors.As(err, &e) || e.Line <= 0 {
		return err
	}
	lines := strings.Split(src, "\n")
	if e.Line-1 < len(lines) {
		e.snippet = strings.TrimSpace(lines[e.Line-1])
	}
	return err
}
