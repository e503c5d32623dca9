// Package service contains the business logic for the stay tax API.
// Services validate inputs, derive the computed fields, and orchestrate repo
// calls. No SQL lives here; services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/teaminova/staytax-backend/internal/domain"
	"github.com/teaminova/staytax-backend/internal/repo"
)

// StayService implements business logic for stay operations: validation,
// derived-field recomputation, and the month-boundary split on create.
type StayService struct {
	stays repo.StayRepo
}

// NewStayService constructs a StayService backed by the provided StayRepo.
func NewStayService(r repo.StayRepo) *StayService {
	return &StayService{stays: r}
}

// Create validates a new stay draft, derives its month and total tax, splits
// it at a calendar-month boundary if its date range crosses one, and persists
// the resulting one or two segments.
//
// Segment writes are strictly sequential: the second segment is only
// submitted after the first insert has been acknowledged, so the stored order
// is stable. If the first write fails the second is never submitted; if the
// second fails after the first succeeded, the first segment remains persisted
// with no automatic compensation and the error is surfaced to the caller.
func (s *StayService) Create(ctx context.Context, stay domain.Stay) ([]domain.Stay, error) {
	if err := validateStay(stay); err != nil {
		return nil, err
	}

	segments := domain.SplitAtMonthBoundary(stay.Derive())

	created := make([]domain.Stay, 0, len(segments))
	for _, segment := range segments {
		persisted, err := s.stays.Create(ctx, segment)
		if err != nil {
			return nil, fmt.Errorf("service.StayService.Create: %w", err)
		}
		created = append(created, persisted)
	}
	return created, nil
}

// GetByID returns a single stay by ID.
// Returns domain.ErrNotFound if no stay with that ID exists.
func (s *StayService) GetByID(ctx context.Context, id uuid.UUID) (domain.Stay, error) {
	result, err := s.stays.GetByID(ctx, id)
	if err != nil {
		return domain.Stay{}, fmt.Errorf("service.StayService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all stays ordered by entry date descending. A month of 1-12
// restricts the result to that calendar-month bucket (the monthly drill-down
// view); month 0 means no filter. The filter keys on each stay's stored month
// field, matching how aggregation buckets.
// Always returns a non-nil slice so callers can safely range over it.
func (s *StayService) List(ctx context.Context, month int) ([]domain.Stay, error) {
	stays, err := s.stays.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.StayService.List: %w", err)
	}

	if month == 0 {
		if stays == nil {
			return []domain.Stay{}, nil
		}
		return stays, nil
	}

	filtered := make([]domain.Stay, 0, len(stays))
	for _, stay := range stays {
		if stay.Month == month {
			filtered = append(filtered, stay)
		}
	}
	return filtered, nil
}

// Update validates and persists a full replace of an existing stay's editable
// fields, recomputing month and total tax from the submitted values. Editing
// never re-splits a stay; splitting happens only on create.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// stay does not exist.
func (s *StayService) Update(ctx context.Context, stay domain.Stay) (domain.Stay, error) {
	if err := validateStay(stay); err != nil {
		return domain.Stay{}, err
	}
	result, err := s.stays.Update(ctx, stay.Derive())
	if err != nil {
		return domain.Stay{}, fmt.Errorf("service.StayService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a stay by ID.
// Returns domain.ErrNotFound if the stay does not exist.
func (s *StayService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.stays.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.StayService.Delete: %w", err)
	}
	return nil
}

// validateStay enforces the form-boundary rules common to Create and Update:
// required names, positive guest and night counts, non-negative minors and
// rate, bounded notes. A minor count above the guest count is deliberately
// not rejected (known gap: it yields a negative total tax).
func validateStay(stay domain.Stay) error {
	if strings.TrimSpace(stay.FirstName) == "" {
		return fmt.Errorf("%w: first_name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(stay.LastName) == "" {
		return fmt.Errorf("%w: last_name is required", domain.ErrValidation)
	}
	if stay.EntryDate.IsZero() {
		return fmt.Errorf("%w: entry_date is required", domain.ErrValidation)
	}
	if stay.NumGuests < 1 {
		return fmt.Errorf("%w: num_guests must be at least 1", domain.ErrValidation)
	}
	if stay.NumMinors < 0 {
		return fmt.Errorf("%w: num_minors must not be negative", domain.ErrValidation)
	}
	if stay.NumNights < 1 {
		return fmt.Errorf("%w: num_nights must be at least 1", domain.ErrValidation)
	}
	if stay.DailyTax.IsNegative() {
		return fmt.Errorf("%w: daily_tax must not be negative", domain.ErrValidation)
	}
	if len(stay.PreStayNotes) > domain.MaxNotesLen {
		return fmt.Errorf("%w: pre_stay_notes must be at most %d characters", domain.ErrValidation, domain.MaxNotesLen)
	}
	if len(stay.PostStayNotes) > domain.MaxNotesLen {
		return fmt.Errorf("%w: post_stay_notes must be at most %d characters", domain.ErrValidation, domain.MaxNotesLen)
	}
	return nil
}
