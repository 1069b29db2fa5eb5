// Package criteria evaluates audibility criteria over computed sound levels.
//
// A criterion is a CEL expression such as `Lp2 >= 75.0` whose variables are the output levels
// of one method, declared as doubles.
package criteria

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/RMahshie/sada/internal/engine"
	"github.com/RMahshie/sada/pkg/models"
)

const (
	// DefaultBBK requires 75 dBA inside the room.
	DefaultBBK = "Lp2 >= 75.0"
	// DefaultHS requires 75 dBA in the receiver room.
	DefaultHS = "Lr >= 75.0"
)

// Criterion is a compiled audibility expression.
// Compiled programs are stateless, so a Criterion is safe for concurrent use.
type Criterion struct {
	expr    string
	program cel.Program
}

// Compile compiles expr with one double variable per output name.
// The expression must evaluate to a bool.
func Compile(expr string, outputs []string) (*Criterion, error) {
	opts := []cel.EnvOption{cel.CrossTypeNumericComparisons(true)}
	for _, name := range outputs {
		opts = append(opts, cel.Variable(name, cel.DoubleType))
	}

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("failed to compile criterion %q: %w", expr, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("criterion %q must evaluate to bool, got %s", expr, ast.OutputType())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to create program for criterion %q: %w", expr, err)
	}

	return &Criterion{expr: expr, program: program}, nil
}

// Expression returns the source expression
func (c *Criterion) Expression() string {
	return c.expr
}

// Evaluate reports whether levels satisfy the criterion
func (c *Criterion) Evaluate(levels []models.Level) (bool, error) {
	vars := make(map[string]any, len(levels))
	for _, l := range levels {
		vars[l.Name] = l.Value
	}

	out, _, err := c.program.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate criterion %q: %w", c.expr, err)
	}

	audible, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("criterion %q returned %T, expected bool", c.expr, out.Value())
	}
	return audible, nil
}

// Set holds the compiled criterion of each method that has one
type Set map[string]*Criterion

// NewSet compiles one criterion per method name in exprs.
// An empty expression leaves the method without a criterion.
func NewSet(eng *engine.Engine, exprs map[string]string) (Set, error) {
	set := make(Set, len(exprs))
	for method, expr := range exprs {
		if expr == "" {
			continue
		}

		calc, err := eng.Lookup(method)
		if err != nil {
			return nil, err
		}

		crit, err := Compile(expr, calc.Outputs())
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", method, err)
		}
		set[method] = crit
	}
	return set, nil
}

// Assess evaluates the criterion of method against levels.
// It returns nil when the method has no criterion.
func (s Set) Assess(method string, levels []models.Level) (*models.Assessment, error) {
	crit, ok := s[method]
	if !ok {
		return nil, nil
	}

	audible, err := crit.Evaluate(levels)
	if err != nil {
		return nil, err
	}
	return &models.Assessment{Criterion: crit.Expression(), Audible: audible}, nil
}

// Expression returns the criterion expression of method, or "" when it has none
func (s Set) Expression(method string) string {
	if crit, ok := s[method]; ok {
		return crit.Expression()
	}
	return ""
}
