package service

import (
	"context"
	"fmt"

	"github.com/teaminova/staytax-backend/internal/domain"
	"github.com/teaminova/staytax-backend/internal/repo"
)

// ExportService assembles a flat full-data export of all recorded stays,
// with dates and money pre-formatted for CSV or JSON encoding.
type ExportService struct {
	stays repo.StayRepo
}

// NewExportService constructs an ExportService backed by the provided StayRepo.
func NewExportService(r repo.StayRepo) *ExportService {
	return &ExportService{stays: r}
}

// Export returns one ExportRow per stay, in the list's entry-date-descending
// order. Always returns a non-nil slice so callers can safely range over it.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	stays, err := s.stays.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(stays))
	for _, stay := range stays {
		rows = append(rows, domain.ExportRow{
			ID:            stay.ID.String(),
			EntryDate:     stay.EntryDate.Format("2006-01-02"),
			ExitDate:      stay.ExitDate().Format("2006-01-02"),
			FirstName:     stay.FirstName,
			LastName:      stay.LastName,
			NumGuests:     stay.NumGuests,
			NumMinors:     stay.NumMinors,
			NumNights:     stay.NumNights,
			DailyTax:      stay.DailyTax.String(),
			TotalTax:      stay.TotalTax.String(),
			Month:         stay.Month,
			PreStayNotes:  stay.PreStayNotes,
			PostStayNotes: stay.PostStayNotes,
		})
	}
	return rows, nil
}
