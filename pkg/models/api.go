package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"0.1.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// ListMethodsResponse lists the available calculation methods
type ListMethodsResponse struct {
	Body ListMethodsResponseBody
}

// ListMethodsResponseBody is the body of the list methods response
type ListMethodsResponseBody struct {
	Methods []MethodInfo `json:"methods" doc:"Registered calculation methods"`
}

// CalculateRequest represents a request to evaluate a method.
// Field values are raw text; they are parsed and validated by the server.
type CalculateRequest struct {
	Method string `path:"method" example:"bbk" doc:"Method identifier"`
	Body   struct {
		Fields map[string]string `json:"fields" required:"true" doc:"Raw field text keyed by field name"`
	}
}

// CalculateResponse represents the outcome of a calculation
type CalculateResponse struct {
	Body *Calculation `json:"-"`
}
