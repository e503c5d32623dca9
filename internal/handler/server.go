// Package handler implements the HTTP handlers for the stay tax API.
// All handlers are methods on Server. Methods are split into resource-specific
// files (stay.go, config.go, summary.go, export.go, health.go) but all share
// the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/teaminova/staytax-backend/internal/domain"
)

// StayServicer defines the business operations the stay handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type StayServicer interface {
	Create(ctx context.Context, stay domain.Stay) ([]domain.Stay, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Stay, error)
	List(ctx context.Context, month int) ([]domain.Stay, error)
	Update(ctx context.Context, stay domain.Stay) (domain.Stay, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ConfigServicer defines the operations the settings handlers depend on.
type ConfigServicer interface {
	Get(ctx context.Context) (domain.AppConfig, error)
	Update(ctx context.Context, cfg domain.AppConfig) (domain.AppConfig, error)
}

// SummaryServicer defines the operation the summary handler depends on.
type SummaryServicer interface {
	Summary(ctx context.Context) (domain.Totals, error)
}

// ExportServicer defines the operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the dependencies for all API endpoints.
// Wire it in main.go via Routes.
type Server struct {
	stays   StayServicer
	config  ConfigServicer
	summary SummaryServicer
	export  ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(stays StayServicer, config ConfigServicer, summary SummaryServicer, export ExportServicer) *Server {
	return &Server{stays: stays, config: config, summary: summary, export: export}
}

// Routes registers every endpoint on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.handleGetHealth)

	r.Route("/stays", func(r chi.Router) {
		r.Post("/", s.handleCreateStay)
		r.Get("/", s.handleListStays)
		r.Get("/{id}", s.handleGetStay)
		r.Put("/{id}", s.handleUpdateStay)
		r.Delete("/{id}", s.handleDeleteStay)
	})

	r.Get("/config", s.handleGetConfig)
	r.Put("/config", s.handleUpdateConfig)

	r.Get("/summary", s.handleGetSummary)
	r.Get("/export", s.handleGetExport)
}

// respondJSON serializes v with the given status. Encoding failures are only
// logged; headers have already been written at that point.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "encode response", "error", err)
	}
}

// respondError writes the standard error envelope.
func respondError(w http.ResponseWriter, r *http.Request, status int, body errorResponse) {
	respondJSON(w, r, status, body)
}

// respondInternal logs err and writes a generic 500 body. Store-communication
// failures land here: the message stays generic, the log line carries detail.
func respondInternal(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed", "error", err)
	respondError(w, r, http.StatusInternalServerError, internalBody())
}

// decodeJSON parses the request body into dst. Returns a caller-facing error
// message on malformed input.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
