package api

import (
	"encoding/json"
	"net/http"

	"github.com/gharkhoj/gharkhoj-backend/database"
	"github.com/gharkhoj/gharkhoj-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type builderHandler struct {
	responder   Responder
	logger      zerolog.Logger
	builderRepo *database.BuilderRepo
}

func newBuilderHandler(builderRepo *database.BuilderRepo) builderHandler {
	logger := log.With().Str("handlerName", "builderHandler").Logger()

	return builderHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		builderRepo: builderRepo,
	}
}

// createBuilder creates a new builder. Builder names are unique; a
// duplicate surfaces as 409.
func (h builderHandler) createBuilder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBuilderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode builder request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if apiErr := req.Validate(); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		builder := req.ToModel()
		if err := h.builderRepo.Add(&builder); err != nil {
			h.logger.Error().Err(err).Str("builderName", builder.Name).Msg("Failed to create builder")
			h.responder.WriteError(w, wrapDatabaseError("create", "builder", err))
			return
		}

		h.logger.Info().Uint("builderID", builder.ID).Msg("Builder created successfully")

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, builder)
	}
}
