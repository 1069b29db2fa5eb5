package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/sada/internal/engine"
	"github.com/RMahshie/sada/internal/processing"
	"github.com/RMahshie/sada/pkg/models"
)

// Version is reported by the health endpoint and the OpenAPI document
const Version = "0.1.0"

// CalculationHandler handles calculation-related HTTP requests
type CalculationHandler struct {
	svc processing.CalculationService
}

// NewCalculationHandler creates a new calculation handler
func NewCalculationHandler(svc processing.CalculationService) *CalculationHandler {
	return &CalculationHandler{svc: svc}
}

// Health reports service liveness
func (h *CalculationHandler) Health(ctx context.Context, _ *struct{}) (*models.HealthResponse, error) {
	resp := &models.HealthResponse{}
	resp.Body.Status = "healthy"
	resp.Body.Version = Version
	resp.Body.Time = time.Now()
	return resp, nil
}

// ListMethods returns the registered methods with their fields and references
func (h *CalculationHandler) ListMethods(ctx context.Context, _ *struct{}) (*models.ListMethodsResponse, error) {
	return &models.ListMethodsResponse{
		Body: models.ListMethodsResponseBody{Methods: h.svc.Methods()},
	}, nil
}

// Calculate evaluates a method over the raw field text in the request
func (h *CalculationHandler) Calculate(ctx context.Context, req *models.CalculateRequest) (*models.CalculateResponse, error) {
	calc, err := h.svc.Calculate(ctx, req.Method, req.Body.Fields)
	if err != nil {
		return nil, toHTTPError(req.Method, err)
	}
	return &models.CalculateResponse{Body: calc}, nil
}

// toHTTPError maps calculation errors onto huma status errors.
// Validation failures point at the offending field of the request body.
func toHTTPError(method string, err error) error {
	var numErr *engine.InvalidNumberError
	var domErr *engine.DomainError

	switch {
	case errors.Is(err, engine.ErrUnknownMethod):
		return huma.Error404NotFound("Method not found", err)
	case errors.As(err, &numErr):
		return huma.Error422UnprocessableEntity("Please enter valid numbers", &huma.ErrorDetail{
			Location: "body.fields." + numErr.Field,
			Message:  numErr.Error(),
			Value:    numErr.Text,
		})
	case errors.As(err, &domErr):
		detail := &huma.ErrorDetail{
			Location: "body.fields." + domErr.Field,
			Message:  domErr.Error(),
			// formatted so infinities and NaN still encode as JSON
			Value: fmt.Sprintf("%g", domErr.Value),
		}
		// expression and result errors have no single offending field
		if domErr.Field == "" {
			detail.Location = "body.fields"
		}
		return huma.Error422UnprocessableEntity("Input outside the domain of the method", detail)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return huma.Error503ServiceUnavailable("Request canceled", err)
	default:
		log.Error().Err(err).Str("method", method).Msg("Calculation failed")
		return huma.Error500InternalServerError("Failed to calculate", err)
	}
}
