package vrml

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every format error returned by the reader.
var ErrFormat = errors.New("invalid scene file")

// Format errors. All of them wrap ErrFormat.
var (
	ErrInvalidHeader      = fmt.Errorf("%w: expected #VRML, #X3D or #Inventor header", ErrFormat)
	ErrUnbalancedBrackets = fmt.Errorf("%w: closing bracket without matching opening bracket", ErrFormat)
	ErrInvalidNumber      = fmt.Errorf("%w: expected numeric value", ErrFormat)
	ErrIndexOutOfRange    = fmt.Errorf("%w: face index out of range", ErrFormat)
	ErrNonTriangularFace  = fmt.Errorf("%w: face is not a triangle", ErrFormat)
	ErrIncompleteTuple    = fmt.Errorf("%w: incomplete value tuple", ErrFormat)
	ErrAttributeCount     = fmt.Errorf("%w: attribute count does not match vertex count", ErrFormat)
	ErrUnterminatedString = fmt.Errorf("%w: string without closing quote", ErrFormat)
	ErrLineTooLong        = fmt.Errorf("%w: line exceeds %d bytes", ErrFormat, MaxLineSize)
)

// FormatError records where in the input a format error was found.
type FormatError struct {
	Line  int    // 1-based line number, 0 when the error concerns the whole file
	Token string // offending token, if any
	Err   error
}

func (e *FormatError) Error() string {
	switch {
	case e.Line == 0:
		return e.Err.Error()
	case e.Token == "":
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Token)
	}
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
