package engine

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownMethod is returned when no Calculator is registered under a name.
var ErrUnknownMethod = errors.New("sada: unknown method")

// InvalidNumberError reports field text that is not a decimal number.
type InvalidNumberError struct {
	Field string // empty when the text was parsed on its own
	Text  string
	Err   error // underlying strconv error, if any
}

func (e *InvalidNumberError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s is not a valid number", strconv.Quote(e.Text))
	}
	if e.Text == "" {
		return fmt.Sprintf("field %s: value is required", e.Field)
	}
	return fmt.Sprintf("field %s: %s is not a valid number", e.Field, strconv.Quote(e.Text))
}

func (e *InvalidNumberError) Unwrap() error {
	return e.Err
}

// DomainError reports a value outside the domain of a formula.
// Exactly one of Field and Expression is set.
type DomainError struct {
	Field      string
	Expression string
	Value      float64
	Reason     string
}

func (e *DomainError) Error() string {
	if e.Expression != "" {
		return fmt.Sprintf("expression %s = %g: %s", e.Expression, e.Value, e.Reason)
	}
	return fmt.Sprintf("field %s = %g: %s", e.Field, e.Value, e.Reason)
}

// Name returns the field or expression the error is about
func (e *DomainError) Name() string {
	if e.Expression != "" {
		return e.Expression
	}
	return e.Field
}
