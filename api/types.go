package api

import "github.com/gharkhoj/gharkhoj-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	builderHandler builderHandler
}

// ProjectListResponse is the page envelope returned by the project
// listing endpoint. Total counts every matching row regardless of the
// pagination window; Limit and Offset are the effective values after
// clamping.
type ProjectListResponse struct {
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
	Data   []models.Project `json:"data"`
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}
