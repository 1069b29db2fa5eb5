// Package batch runs calculation scenarios read from TOML files.
//
// A batch file holds one [[scenario]] table per calculation:
//
//	[[scenario]]
//	name = "corridor sounder"
//	method = "bbk"
//	[scenario.fields]
//	L = 90
//	r = "10"
//
// Field values may be TOML numbers or strings; strings go through the same validation as
// text typed into a form.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/RMahshie/sada/internal/processing"
	"github.com/RMahshie/sada/pkg/models"
)

// ErrNoScenarios is returned when a batch file defines no scenario
var ErrNoScenarios = errors.New("batch file defines no scenarios")

// Scenario is one named calculation in a batch file
type Scenario struct {
	Name   string         `toml:"name"`
	Method string         `toml:"method"`
	Fields map[string]any `toml:"fields"`
}

// File mirrors the layout of a batch file
type File struct {
	Scenarios []Scenario `toml:"scenario"`
}

// Result is the outcome of one scenario. Exactly one of Calculation and Err is set.
type Result struct {
	Scenario    Scenario
	Calculation *models.Calculation
	Err         error
}

// Load reads and parses a batch file from the given path.
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	return Parse(b)
}

// Parse decodes a batch document.
func Parse(b []byte) (File, error) {
	var f File
	if err := toml.Unmarshal(b, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return File{}, ErrNoScenarios
	}
	for i, s := range f.Scenarios {
		if s.Method == "" {
			return File{}, fmt.Errorf("scenario %d (%s): method is required", i+1, s.Name)
		}
		if s.Name == "" {
			f.Scenarios[i].Name = fmt.Sprintf("scenario-%d", i+1)
		}
	}
	return f, nil
}

// Text returns the field values as raw text
func (s Scenario) Text() map[string]string {
	raw := make(map[string]string, len(s.Fields))
	for name, v := range s.Fields {
		raw[name] = fieldText(v)
	}
	return raw
}

func fieldText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		// rejected by validation as not a number
		return fmt.Sprint(t)
	}
}

// Run calculates every scenario independently, in file order.
// A failing scenario does not stop the others; Run only stops early when ctx is done.
func Run(ctx context.Context, svc processing.CalculationService, f File) ([]Result, error) {
	results := make([]Result, 0, len(f.Scenarios))
	for _, s := range f.Scenarios {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		calc, err := svc.Calculate(ctx, s.Method, s.Text())
		results = append(results, Result{Scenario: s, Calculation: calc, Err: err})
	}
	return results, nil
}

// Failed counts the results that carry an error
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
