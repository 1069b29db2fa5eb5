// Package form holds the editable state of one method: raw field text and the rendered result
// lines, with clear and copy operations.
package form

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/atotto/clipboard"

	"github.com/RMahshie/sada/internal/engine"
)

// ErrUnknownField is returned when setting a field the method does not define
var ErrUnknownField = errors.New("unknown field")

// Clipboard receives copied result text
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// WriterClipboard writes copied text, followed by a newline, to W
type WriterClipboard struct {
	W io.Writer
}

func (c WriterClipboard) WriteAll(text string) error {
	_, err := fmt.Fprintln(c.W, text)
	return err
}

// Form is the editable state of one method. It is not safe for concurrent use.
type Form struct {
	calc  engine.Calculator
	texts map[string]string
	lines []string
}

// New creates an empty form for calc
func New(calc engine.Calculator) *Form {
	return &Form{
		calc:  calc,
		texts: make(map[string]string, len(calc.Keys())),
		lines: make([]string, len(calc.Outputs())),
	}
}

// Method returns the name of the method the form edits
func (f *Form) Method() string {
	return f.calc.Name()
}

// Keys returns the field names in display order
func (f *Form) Keys() []string {
	return f.calc.Keys()
}

// Set stores the raw text of field
func (f *Form) Set(field, text string) error {
	if !slices.Contains(f.calc.Keys(), field) {
		return fmt.Errorf("%w: %q for method %s", ErrUnknownField, field, f.calc.Name())
	}
	f.texts[field] = text
	return nil
}

// Value returns the raw text of field, "" when unset
func (f *Form) Value(field string) string {
	return f.texts[field]
}

// Calculate parses the fields and renders the result lines.
// On error the previously rendered lines are kept.
func (f *Form) Calculate() error {
	values, err := engine.ParseFields(f.texts, f.calc.Keys())
	if err != nil {
		return err
	}

	levels, err := f.calc.Calculate(values)
	if err != nil {
		return err
	}

	f.lines = engine.RenderLines(levels)
	return nil
}

// Lines returns the rendered result lines in output order; unpopulated lines are empty
func (f *Form) Lines() []string {
	return slices.Clone(f.lines)
}

// Text returns the populated lines joined by newlines
func (f *Form) Text() string {
	return engine.JoinLines(f.lines)
}

// Clear empties every field and every result line
func (f *Form) Clear() {
	clear(f.texts)
	f.lines = make([]string, len(f.calc.Outputs()))
}

// Copy writes Text to cb and returns it
func (f *Form) Copy(cb Clipboard) (string, error) {
	text := f.Text()
	if err := cb.WriteAll(text); err != nil {
		return "", fmt.Errorf("failed to copy results: %w", err)
	}
	return text, nil
}
