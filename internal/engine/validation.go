package engine

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/RMahshie/sada/pkg/models"
)

// decimalPattern accepts plain and exponent notation with a dot separator only
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Parse converts field text to a float64.
// Surrounding whitespace is ignored. NaN, infinities, hexadecimal floats, digit separators and
// comma decimal separators are rejected, as are values that overflow a float64.
func Parse(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if !decimalPattern.MatchString(trimmed) {
		return 0, &InvalidNumberError{Text: text}
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &InvalidNumberError{Text: text, Err: err}
	}
	if math.IsInf(v, 0) {
		return 0, &InvalidNumberError{Text: text, Err: strconv.ErrRange}
	}
	return v, nil
}

// ParseAll parses every field in raw.
// Fields are visited in sorted name order and the first failure is returned.
func ParseAll(raw map[string]string) (map[string]float64, error) {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	return ParseFields(raw, names)
}

// ParseFields parses exactly the named fields of raw, in the given order.
// A missing field is treated as empty text. Fields of raw that are not named are ignored.
func ParseFields(raw map[string]string, names []string) (map[string]float64, error) {
	values := make(map[string]float64, len(names))
	for _, name := range names {
		text := raw[name]
		v, err := Parse(text)
		if err != nil {
			numErr := err.(*InvalidNumberError)
			numErr.Field = name
			return nil, numErr
		}
		values[name] = v
	}
	return values, nil
}

// RequirePositive checks that each named value is strictly greater than zero.
// Names are checked in order and the first violation is returned as a *DomainError.
func RequirePositive(values map[string]float64, names ...string) error {
	for _, name := range names {
		if v := values[name]; !(v > 0) {
			return &DomainError{Field: name, Value: v, Reason: "must be greater than zero"}
		}
	}
	return nil
}

// Log10 returns log10(x) for a strictly positive x.
// Any other argument yields a *DomainError naming expr.
func Log10(expr string, x float64) (float64, error) {
	if !(x > 0) || math.IsInf(x, 1) {
		return 0, &DomainError{Expression: expr, Value: x, Reason: "logarithm argument must be a positive finite number"}
	}
	return math.Log10(x), nil
}

// RequireFinite checks that every computed level is a finite number.
// The first offending level is returned as a *DomainError naming the level.
func RequireFinite(levels ...models.Level) error {
	for _, l := range levels {
		if math.IsNaN(l.Value) || math.IsInf(l.Value, 0) {
			return &DomainError{Expression: l.Name, Value: l.Value, Reason: "result is not a finite number"}
		}
	}
	return nil
}
