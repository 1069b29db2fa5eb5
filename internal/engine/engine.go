package engine

import (
	"fmt"

	"github.com/RMahshie/sada/pkg/models"
)

// Calculator encapsulates one attenuation method (e.g. "bbk", "hs").
type Calculator interface {
	// Name returns the method identifier, used as the key in the Engine.
	Name() string
	// Title returns the human-readable method name.
	Title() string
	// Keys returns the input field names in display order.
	Keys() []string
	// Fields returns the input fields with their descriptions, in the same order as Keys.
	Fields() []models.Field
	// Outputs returns the output level names in display order.
	Outputs() []string
	// References returns the literature the method is published in.
	References() []models.Reference
	// Calculate checks the domain of the parsed values and computes the output levels.
	Calculate(values map[string]float64) ([]models.Level, error)
}

// Engine holds the registered Calculators
type Engine struct {
	calculators []Calculator
}

// NewEngine creates a new Engine with no calculators registered.
func NewEngine() *Engine {
	return &Engine{
		calculators: make([]Calculator, 0),
	}
}

// Register adds a Calculator to the engine.
// Register panics if a calculator with the same Name() is already registered.
func (e *Engine) Register(c Calculator) {
	for _, existing := range e.calculators {
		if existing.Name() == c.Name() {
			panic(fmt.Sprintf("engine: calculator %q already registered", c.Name()))
		}
	}
	e.calculators = append(e.calculators, c)
}

// Lookup returns the Calculator registered under name
func (e *Engine) Lookup(name string) (Calculator, error) {
	for _, c := range e.calculators {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Calculators returns the registered Calculators in registration order
func (e *Engine) Calculators() []Calculator {
	out := make([]Calculator, len(e.calculators))
	copy(out, e.calculators)
	return out
}

// Evaluate parses raw field text for the named method and computes its levels.
// Parse errors are reported before domain errors.
func (e *Engine) Evaluate(name string, raw map[string]string) (map[string]float64, []models.Level, error) {
	c, err := e.Lookup(name)
	if err != nil {
		return nil, nil, err
	}

	values, err := ParseFields(raw, c.Keys())
	if err != nil {
		return nil, nil, err
	}

	levels, err := c.Calculate(values)
	if err != nil {
		return nil, nil, err
	}
	return values, levels, nil
}
