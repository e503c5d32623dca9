package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/teaminova/staytax-backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"id", "entry_date", "exit_date", "first_name", "last_name",
	"num_guests", "num_minors", "num_nights", "daily_tax", "total_tax",
	"month", "pre_stay_notes", "post_stay_notes",
}

// handleGetExport handles GET /export.
// It returns one flat row per stay. Use ?format=csv to receive CSV; default
// is JSON.
func (s *Server) handleGetExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		respondInternal(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSVResponse(w, rows)
		return
	}
	respondJSON(w, r, http.StatusOK, rows)
}

// writeCSVResponse encodes the rows as CSV with a header line.
func writeCSVResponse(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	cw.Write(csvHeaders) //nolint:errcheck // writes to bytes.Buffer never fail
	for _, row := range rows {
		cw.Write(rowToCSVRecord(row)) //nolint:errcheck
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="stays.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}

// rowToCSVRecord encodes a domain.ExportRow as a flat string slice in
// csvHeaders order.
func rowToCSVRecord(row domain.ExportRow) []string {
	return []string{
		row.ID,
		row.EntryDate,
		row.ExitDate,
		row.FirstName,
		row.LastName,
		strconv.Itoa(row.NumGuests),
		strconv.Itoa(row.NumMinors),
		strconv.Itoa(row.NumNights),
		row.DailyTax,
		row.TotalTax,
		strconv.Itoa(row.Month),
		row.PreStayNotes,
		row.PostStayNotes,
	}
}
