package types

import "fmt"

// ParseError is returned by ParseSafetyLevel for unrecognized input. It
// keeps the original, pre-normalization input for diagnostics.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid safety level: %q", e.Input)
}

func NewParseError(input string) *ParseError {
	return &ParseError{Input: input}
}

// DecodeError is returned when JSON deserialization encounters a token that
// is not one of the canonical safety level tokens. It is distinct from
// ParseError: the JSON path accepts neither aliases nor mixed case.
type DecodeError struct {
	Token string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown safety level token: %q", e.Token)
}

func NewDecodeError(token string) *DecodeError {
	return &DecodeError{Token: token}
}
