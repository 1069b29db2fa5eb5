package processing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/sada/internal/criteria"
	"github.com/RMahshie/sada/internal/engine"
	"github.com/RMahshie/sada/internal/engine/methods"
	"github.com/RMahshie/sada/internal/metrics"
	"github.com/RMahshie/sada/pkg/models"
)

// methodUnknown labels metrics for names no calculator is registered under
const methodUnknown = "unknown"

type CalculationService interface {
	Calculate(ctx context.Context, method string, raw map[string]string) (*models.Calculation, error)
	Methods() []models.MethodInfo
}

type calculationService struct {
	engine   *engine.Engine
	criteria criteria.Set
	now      func() time.Time
}

func NewCalculationService(eng *engine.Engine, set criteria.Set) CalculationService {
	return &calculationService{
		engine:   eng,
		criteria: set,
		now:      time.Now,
	}
}

// NewDefaultCalculationService builds the service over the BBK and HS methods with the given
// criterion expressions keyed by method name.
func NewDefaultCalculationService(exprs map[string]string) (CalculationService, error) {
	eng := methods.NewEngine()
	set, err := criteria.NewSet(eng, exprs)
	if err != nil {
		return nil, fmt.Errorf("failed to compile criteria: %w", err)
	}
	return NewCalculationService(eng, set), nil
}

func (s *calculationService) Calculate(ctx context.Context, method string, raw map[string]string) (*models.Calculation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	calc, err := s.calculate(method, raw)

	label := method
	if errors.Is(err, engine.ErrUnknownMethod) {
		label = methodUnknown
	}
	outcome := Outcome(err)
	metrics.IncreaseCalculationsTotalMetric(label, outcome)
	metrics.ObserveCalculationLatency(label, time.Since(start).Seconds())

	if err != nil {
		log.Warn().Err(err).Str("method", method).Str("outcome", outcome).Msg("Calculation rejected")
		return nil, err
	}

	log.Info().
		Str("calculationID", calc.ID).
		Str("method", method).
		Strs("lines", calc.Lines).
		Msg("Calculation completed")
	return calc, nil
}

func (s *calculationService) calculate(method string, raw map[string]string) (*models.Calculation, error) {
	values, levels, err := s.engine.Evaluate(method, raw)
	if err != nil {
		return nil, err
	}

	assessment, err := s.criteria.Assess(method, levels)
	if err != nil {
		return nil, err
	}

	lines := engine.RenderLines(levels)
	return &models.Calculation{
		ID:         uuid.New().String(),
		Method:     method,
		Inputs:     values,
		Levels:     levels,
		Lines:      lines,
		Text:       engine.JoinLines(lines),
		Assessment: assessment,
		CreatedAt:  s.now(),
	}, nil
}

func (s *calculationService) Methods() []models.MethodInfo {
	calcs := s.engine.Calculators()
	infos := make([]models.MethodInfo, 0, len(calcs))
	for _, c := range calcs {
		infos = append(infos, models.MethodInfo{
			Name:       c.Name(),
			Title:      c.Title(),
			Fields:     c.Fields(),
			Outputs:    c.Outputs(),
			References: c.References(),
			Criterion:  s.criteria.Expression(c.Name()),
		})
	}
	return infos
}

// Outcome classifies a calculation error for metrics and reporting
func Outcome(err error) string {
	var numErr *engine.InvalidNumberError
	var domErr *engine.DomainError
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.As(err, &numErr):
		return metrics.OutcomeInvalidNumber
	case errors.As(err, &domErr):
		return metrics.OutcomeDomainError
	default:
		return metrics.OutcomeError
	}
}
