// Package errs provides the numbered error values surfaced by match and
// update operations. Codes and message formats are wire-compatible with the
// server protocol the engine emulates.
package errs

import "fmt"

type Code int

const (
	BadValue      Code = 2
	FailedToParse Code = 9
	TypeMismatch  Code = 14
	PathNotViable Code = 28
)

func (c Code) String() string {
	s, ok := map[Code]string{
		BadValue:      "BadValue",
		FailedToParse: "FailedToParse",
		TypeMismatch:  "TypeMismatch",
		PathNotViable: "PathNotViable",
	}[c]
	if ok {
		return s
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Error is a coded error. Its message carries the code prefix expected by
// protocol-level consumers, e.g. "[Error 2] Cannot apply array updates ...".
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[Error %d] %s", int(e.Code), e.Msg)
}

func New(code Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func BadValuef(format string, args ...any) *Error {
	return Errorf(BadValue, format, args...)
}

func FailedToParsef(format string, args ...any) *Error {
	return Errorf(FailedToParse, format, args...)
}

func TypeMismatchf(format string, args ...any) *Error {
	return Errorf(TypeMismatch, format, args...)
}

func PathNotViablef(format string, args ...any) *Error {
	return Errorf(PathNotViable, format, args...)
}

// CodeOf returns the code of err when it is an *Error, and 0 otherwise.
func CodeOf(err error) Code {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return 0
}
