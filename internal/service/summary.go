package service

import (
	"context"
	"fmt"

	"github.com/teaminova/staytax-backend/internal/domain"
	"github.com/teaminova/staytax-backend/internal/repo"
)

// SummaryService produces the monthly, trimester, and yearly rollups over all
// recorded stays. Totals are recomputed from a fresh list on every call;
// there is no incremental or cached state.
type SummaryService struct {
	stays repo.StayRepo
}

// NewSummaryService constructs a SummaryService backed by the provided StayRepo.
func NewSummaryService(r repo.StayRepo) *SummaryService {
	return &SummaryService{stays: r}
}

// Summary lists every stay and aggregates them into the three rollup levels.
// No year filtering is applied: all recorded stays contribute, regardless of
// entry year.
func (s *SummaryService) Summary(ctx context.Context) (domain.Totals, error) {
	stays, err := s.stays.List(ctx)
	if err != nil {
		return domain.Totals{}, fmt.Errorf("service.SummaryService.Summary: %w", err)
	}
	return domain.Aggregate(stays), nil
}
