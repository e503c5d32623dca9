package handler

import "net/http"

// handleGetSummary handles GET /summary.
// It returns the monthly, trimester, and yearly rollups over all recorded
// stays, recomputed from the store on every request.
func (s *Server) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	totals, err := s.summary.Summary(r.Context())
	if err != nil {
		respondInternal(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, totals)
}
