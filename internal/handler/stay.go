package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/teaminova/staytax-backend/internal/domain"
)

// stayRequest is the JSON body accepted by POST /stays and PUT /stays/{id}.
// Month and total tax are derived server-side and never accepted here.
type stayRequest struct {
	EntryDate     openapi_types.Date `json:"entry_date"`
	FirstName     string             `json:"first_name"`
	LastName      string             `json:"last_name"`
	NumGuests     int                `json:"num_guests"`
	NumMinors     int                `json:"num_minors"`
	NumNights     int                `json:"num_nights"`
	DailyTax      decimal.Decimal    `json:"daily_tax"`
	PreStayNotes  string             `json:"pre_stay_notes"`
	PostStayNotes string             `json:"post_stay_notes"`
}

// stayResponse is the JSON representation of a persisted stay.
type stayResponse struct {
	ID            uuid.UUID          `json:"id"`
	EntryDate     openapi_types.Date `json:"entry_date"`
	FirstName     string             `json:"first_name"`
	LastName      string             `json:"last_name"`
	NumGuests     int                `json:"num_guests"`
	NumMinors     int                `json:"num_minors"`
	NumNights     int                `json:"num_nights"`
	DailyTax      decimal.Decimal    `json:"daily_tax"`
	TotalTax      decimal.Decimal    `json:"total_tax"`
	Month         int                `json:"month"`
	PreStayNotes  string             `json:"pre_stay_notes,omitempty"`
	PostStayNotes string             `json:"post_stay_notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// handleCreateStay handles POST /stays.
// A stay crossing a calendar-month boundary is persisted as two segments, so
// the 201 response body is always an array of one or two stays.
func (s *Server) handleCreateStay(w http.ResponseWriter, r *http.Request) {
	var req stayRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	created, err := s.stays.Create(r.Context(), requestToStay(req))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondError(w, r, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		respondInternal(w, r, err)
		return
	}

	data := make([]stayResponse, len(created))
	for i, stay := range created {
		data[i] = stayToResponse(stay)
	}
	respondJSON(w, r, http.StatusCreated, data)
}

// handleListStays handles GET /stays.
// Supports an optional ?month=1..12 query parameter for the monthly
// drill-down view.
func (s *Server) handleListStays(w http.ResponseWriter, r *http.Request) {
	month := 0
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			respondError(w, r, http.StatusUnprocessableEntity, requestBody("month must be an integer between 1 and 12"))
			return
		}
		month = m
	}

	stays, err := s.stays.List(r.Context(), month)
	if err != nil {
		respondInternal(w, r, err)
		return
	}

	data := make([]stayResponse, len(stays))
	for i, stay := range stays {
		data[i] = stayToResponse(stay)
	}
	respondJSON(w, r, http.StatusOK, data)
}

// handleGetStay handles GET /stays/{id}.
func (s *Server) handleGetStay(w http.ResponseWriter, r *http.Request) {
	id, ok := stayIDParam(w, r)
	if !ok {
		return
	}

	stay, err := s.stays.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, notFoundBody("stay not found"))
			return
		}
		respondInternal(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, stayToResponse(stay))
}

// handleUpdateStay handles PUT /stays/{id}.
// The body is a full replace of the editable fields; month and total tax are
// recomputed from the submitted values.
func (s *Server) handleUpdateStay(w http.ResponseWriter, r *http.Request) {
	id, ok := stayIDParam(w, r)
	if !ok {
		return
	}

	var req stayRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	stay := requestToStay(req)
	stay.ID = id

	updated, err := s.stays.Update(r.Context(), stay)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, notFoundBody("stay not found"))
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			respondError(w, r, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		respondInternal(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, stayToResponse(updated))
}

// handleDeleteStay handles DELETE /stays/{id}.
func (s *Server) handleDeleteStay(w http.ResponseWriter, r *http.Request) {
	id, ok := stayIDParam(w, r)
	if !ok {
		return
	}

	if err := s.stays.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, notFoundBody("stay not found"))
			return
		}
		respondInternal(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// stayIDParam parses the {id} path parameter. On malformed input it writes a
// 422 response and returns ok=false.
func stayIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusUnprocessableEntity, requestBody("invalid stay id"))
		return uuid.Nil, false
	}
	return id, true
}

// --- mapping helpers --------------------------------------------------------

// requestToStay converts a request body into a domain.Stay draft.
// Derived fields are left zeroed; the service recomputes them.
func requestToStay(req stayRequest) domain.Stay {
	return domain.Stay{
		EntryDate:     req.EntryDate.Time,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		NumGuests:     req.NumGuests,
		NumMinors:     req.NumMinors,
		NumNights:     req.NumNights,
		DailyTax:      req.DailyTax,
		PreStayNotes:  req.PreStayNotes,
		PostStayNotes: req.PostStayNotes,
	}
}

// stayToResponse converts a domain.Stay into its JSON representation.
func stayToResponse(stay domain.Stay) stayResponse {
	return stayResponse{
		ID:            stay.ID,
		EntryDate:     openapi_types.Date{Time: stay.EntryDate},
		FirstName:     stay.FirstName,
		LastName:      stay.LastName,
		NumGuests:     stay.NumGuests,
		NumMinors:     stay.NumMinors,
		NumNights:     stay.NumNights,
		DailyTax:      stay.DailyTax,
		TotalTax:      stay.TotalTax,
		Month:         stay.Month,
		PreStayNotes:  stay.PreStayNotes,
		PostStayNotes: stay.PostStayNotes,
		CreatedAt:     stay.CreatedAt,
		UpdatedAt:     stay.UpdatedAt,
	}
}
