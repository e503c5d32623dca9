package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/teaminova/staytax-backend/internal/domain"
)

// configRequest is the JSON body accepted by PUT /config.
type configRequest struct {
	AppName         string          `json:"app_name"`
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	DefaultDailyTax decimal.Decimal `json:"default_daily_tax"`
	LogoURL         string          `json:"logo_url"`
}

// configResponse is the JSON representation of the operator settings.
type configResponse struct {
	ID              uuid.UUID       `json:"id"`
	AppName         string          `json:"app_name"`
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	DefaultDailyTax decimal.Decimal `json:"default_daily_tax"`
	LogoURL         string          `json:"logo_url,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// handleGetConfig handles GET /config.
// The first fetch against an empty store creates and returns the default row.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.config.Get(r.Context())
	if err != nil {
		respondInternal(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, configToResponse(cfg))
}

// handleUpdateConfig handles PUT /config.
func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	updated, err := s.config.Update(r.Context(), domain.AppConfig{
		AppName:         req.AppName,
		Year:            req.Year,
		Month:           req.Month,
		DefaultDailyTax: req.DefaultDailyTax,
		LogoURL:         req.LogoURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondError(w, r, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, notFoundBody("configuration not found"))
			return
		}
		respondInternal(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, configToResponse(updated))
}

// configToResponse converts a domain.AppConfig into its JSON representation.
func configToResponse(cfg domain.AppConfig) configResponse {
	return configResponse{
		ID:              cfg.ID,
		AppName:         cfg.AppName,
		Year:            cfg.Year,
		Month:           cfg.Month,
		DefaultDailyTax: cfg.DefaultDailyTax,
		LogoURL:         cfg.LogoURL,
		CreatedAt:       cfg.CreatedAt,
		UpdatedAt:       cfg.UpdatedAt,
	}
}
