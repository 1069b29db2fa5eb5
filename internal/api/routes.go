package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/RMahshie/sada/internal/api/handlers"
	"github.com/RMahshie/sada/internal/processing"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, svc processing.CalculationService) {
	// Initialize handlers
	calcHandler := handlers.NewCalculationHandler(svc)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, calcHandler.Health)

	// Register calculation routes
	huma.Register(api, huma.Operation{
		OperationID: "listMethods",
		Method:      http.MethodGet,
		Path:        "/api/methods",
		Summary:     "List calculation methods",
		Description: "Returns every method with its input fields, output levels and references",
		Tags:        []string{"Calculation"},
	}, calcHandler.ListMethods)

	huma.Register(api, huma.Operation{
		OperationID:   "calculate",
		Method:        http.MethodPost,
		Path:          "/api/methods/{method}/calculate",
		Summary:       "Calculate sound levels",
		Description:   "Validates the raw field text and computes the sound levels of a method",
		Tags:          []string{"Calculation"},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, calcHandler.Calculate)
}
