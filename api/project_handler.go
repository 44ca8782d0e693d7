package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gharkhoj/gharkhoj-backend/database"
	"github.com/gharkhoj/gharkhoj-backend/errs"
	"github.com/gharkhoj/gharkhoj-backend/models"
	"github.com/gharkhoj/gharkhoj-backend/price"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// listProjects returns one page of projects matching the query filters,
// each with its builder attached, inside a {total, limit, offset, data}
// envelope.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, apiErr := parseListProjectsQuery(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		// Normalize here too so the envelope echoes effective values.
		filter = filter.Normalized()

		projects, total, err := h.projectRepo.FindAndCount(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "projects", err))
			return
		}

		if projects == nil {
			projects = []models.Project{}
		}

		h.responder.WriteJSON(w, ProjectListResponse{
			Total:  total,
			Limit:  filter.Limit,
			Offset: filter.Offset,
			Data:   projects,
		})
	}
}

// getProject retrieves a single project by ID with its builder
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "projectID")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil || id == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid project ID"))
			return
		}

		project, err := h.projectRepo.FindByID(uint(id))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project. When the body carries a
// price_range but lacks explicit numeric bounds, the missing bounds are
// derived from the range text before persistence and never recomputed
// afterward.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if apiErr := req.Validate(); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project := req.ToModel()
		if project.PriceRange != nil && (project.PriceMinINR == nil || project.PriceMaxINR == nil) {
			bounds := price.ParseRange(*project.PriceRange)
			if project.PriceMinINR == nil {
				project.PriceMinINR = bounds.Min
			}
			if project.PriceMaxINR == nil {
				project.PriceMaxINR = bounds.Max
			}
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.logger.Error().Err(err).Uint("builderID", project.BuilderID).Msg("Failed to create project")
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		// Reload so the response carries the builder association
		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}
		if created == nil {
			created = &project
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}
