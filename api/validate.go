package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gharkhoj/gharkhoj-backend/database"
	"github.com/gharkhoj/gharkhoj-backend/errs"
	"github.com/gharkhoj/gharkhoj-backend/models"
)

// CreateProjectRequest is the validated body of POST /api/projects.
type CreateProjectRequest struct {
	BuilderID   int64   `json:"builder_id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	PriceRange  *string `json:"price_range,omitempty"`
	PriceMinINR *int64  `json:"price_min_inr,omitempty"`
	PriceMaxINR *int64  `json:"price_max_inr,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// Validate checks the request before it reaches the query layer. The
// repos trust their input past this boundary.
func (req CreateProjectRequest) Validate() *errs.ApiErr {
	if req.BuilderID <= 0 {
		return errs.NewMissingRequiredFieldError("builder_id")
	}
	if strings.TrimSpace(req.Name) == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if strings.TrimSpace(req.Location) == "" {
		return errs.NewMissingRequiredFieldError("location")
	}
	if req.PriceMinINR != nil && *req.PriceMinINR < 0 {
		return errs.NewInvalidFieldError("price_min_inr", "must be non-negative")
	}
	if req.PriceMaxINR != nil && *req.PriceMaxINR < 0 {
		return errs.NewInvalidFieldError("price_max_inr", "must be non-negative")
	}
	if req.PriceMinINR != nil && req.PriceMaxINR != nil && *req.PriceMinINR > *req.PriceMaxINR {
		return errs.NewInvalidFieldError("price_min_inr", "must not exceed price_max_inr")
	}
	if req.Status != nil && !models.ProjectStatus(*req.Status).Valid() {
		return errs.NewInvalidFieldError("status", "must be one of Ongoing, Ready to Move, Completed, Paused")
	}
	return nil
}

// ToModel converts a validated request into a Project row. Status
// defaults to Ongoing when absent.
func (req CreateProjectRequest) ToModel() models.Project {
	status := models.StatusOngoing
	if req.Status != nil {
		status = models.ProjectStatus(*req.Status)
	}
	return models.Project{
		BuilderID:   uint(req.BuilderID),
		Name:        req.Name,
		Location:    req.Location,
		PriceRange:  req.PriceRange,
		PriceMinINR: req.PriceMinINR,
		PriceMaxINR: req.PriceMaxINR,
		Status:      status,
	}
}

// CreateBuilderRequest is the validated body of POST /api/builders.
type CreateBuilderRequest struct {
	Name            string  `json:"name"`
	HQLocation      *string `json:"hq_location,omitempty"`
	EstablishedYear *int    `json:"established_year,omitempty"`
}

func (req CreateBuilderRequest) Validate() *errs.ApiErr {
	if strings.TrimSpace(req.Name) == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if req.EstablishedYear != nil {
		year := *req.EstablishedYear
		if year < 1800 || year > time.Now().Year() {
			return errs.NewInvalidFieldError("established_year", "must be between 1800 and the current year")
		}
	}
	return nil
}

func (req CreateBuilderRequest) ToModel() models.Builder {
	return models.Builder{
		Name:            req.Name,
		HQLocation:      req.HQLocation,
		EstablishedYear: req.EstablishedYear,
	}
}

// parseListProjectsQuery coerces and validates the query string of
// GET /api/projects. Out-of-range limit and offset values are clamped
// by ProjectFilter.Normalized rather than rejected; malformed or
// unknown enum values are rejected.
func parseListProjectsQuery(r *http.Request) (database.ProjectFilter, *errs.ApiErr) {
	values := r.URL.Query()
	filter := database.ProjectFilter{
		Location:    strings.TrimSpace(values.Get("location")),
		BuilderName: strings.TrimSpace(values.Get("builder_name")),
		SortOrder:   "asc",
	}

	if s := strings.TrimSpace(values.Get("limit")); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return filter, errs.NewInvalidFieldError("limit", "must be an integer")
		}
		filter.Limit = v
	}

	if s := strings.TrimSpace(values.Get("offset")); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return filter, errs.NewInvalidFieldError("offset", "must be an integer")
		}
		filter.Offset = v
	}

	if s := strings.TrimSpace(values.Get("status")); s != "" {
		if !models.ProjectStatus(s).Valid() {
			return filter, errs.NewInvalidFieldError("status", "must be one of Ongoing, Ready to Move, Completed, Paused")
		}
		filter.Status = models.ProjectStatus(s)
	}

	if s := strings.TrimSpace(values.Get("sort_by")); s != "" {
		if s != database.SortByPriceMin && s != database.SortByEstablishedYear {
			return filter, errs.NewInvalidFieldError("sort_by", "must be one of price_min, established_year")
		}
		filter.SortBy = s
	}

	if s := strings.TrimSpace(values.Get("sort_order")); s != "" {
		if s != "asc" && s != "desc" {
			return filter, errs.NewInvalidFieldError("sort_order", "must be asc or desc")
		}
		filter.SortOrder = s
	}

	return filter, nil
}
