package parser

import "fmt"

// Code classifies a chord-resolution failure.
type Code uint16

const (
	// CodeUnknown indicates an unclassified failure.
	CodeUnknown Code = 0

	// Note and key text
	CodeInvalidNote Code = 1001
	CodeInvalidRoot Code = 1002
	CodeInvalidKey  Code = 1003

	// Literal chord names
	CodeUnsupportedSuffix Code = 2001

	// Roman numerals
	CodeEmptyInput                Code = 3001
	CodeInvalidRomanNumeral       Code = 3002
	CodeInvalidSecondaryTarget    Code = 3003
	CodeUnsupportedSecondaryForm  Code = 3004
	CodeTooManySecondaryDominants Code = 3005
)

// Error is a structured resolution failure. All malformed user input surfaces
// as an *Error value; the resolvers never panic on bad text.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the failure code from an error returned by this package.
func CodeOf(err error) Code {
	if pe, ok := err.(*Error); ok {
		return pe.Code
	}
	return CodeUnknown
}
