// Package repo contains all database access logic for the stay tax API.
// Each record type has its own file with an interface and a Postgres
// implementation. No business logic lives here; only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/teaminova/staytax-backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StayRepo defines the persistence operations for stay records.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type StayRepo interface {
	// Create inserts a new stay and returns the persisted record (with
	// store-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, stay domain.Stay) (domain.Stay, error)

	// GetByID retrieves a single stay by its UUID primary key.
	// Returns domain.ErrNotFound if no stay with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Stay, error)

	// List returns all stays ordered by entry_date descending. Segments of a
	// split stay share display order via the created_at tiebreak.
	List(ctx context.Context) ([]domain.Stay, error)

	// Update overwrites every editable field of an existing stay, including
	// the recomputed derived fields, and returns the updated record.
	// Returns domain.ErrNotFound if no stay with that ID exists.
	Update(ctx context.Context, stay domain.Stay) (domain.Stay, error)

	// Delete removes a stay by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// stayColumns is the column list shared by every stay query, in scanStay order.
const stayColumns = `id, entry_date, first_name, last_name, num_guests, num_minors,
		num_nights, daily_tax, total_tax, month, pre_stay_notes, post_stay_notes,
		created_at, updated_at`

// pgStayRepo is the Postgres implementation of StayRepo.
type pgStayRepo struct {
	db db
}

// NewStayRepo constructs a StayRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewStayRepo(db db) StayRepo {
	return &pgStayRepo{db: db}
}

// Create inserts a new stay row and returns the full persisted record.
func (r *pgStayRepo) Create(ctx context.Context, stay domain.Stay) (domain.Stay, error) {
	const q = `
		INSERT INTO stays (entry_date, first_name, last_name, num_guests, num_minors,
			num_nights, daily_tax, total_tax, month, pre_stay_notes, post_stay_notes)
		VALUES (@entry_date, @first_name, @last_name, @num_guests, @num_minors,
			@num_nights, @daily_tax, @total_tax, @month, @pre_stay_notes, @post_stay_notes)
		RETURNING ` + stayColumns

	row := r.db.QueryRow(ctx, q, stayArgs(stay))
	result, err := scanStay(row)
	if err != nil {
		return domain.Stay{}, fmt.Errorf("repo.StayRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a stay by primary key.
func (r *pgStayRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Stay, error) {
	const q = `
		SELECT ` + stayColumns + `
		FROM stays
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanStay(row)
	if err != nil {
		return domain.Stay{}, fmt.Errorf("repo.StayRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all stays ordered by entry_date descending (most recent first).
func (r *pgStayRepo) List(ctx context.Context) ([]domain.Stay, error) {
	const q = `
		SELECT ` + stayColumns + `
		FROM stays
		ORDER BY entry_date DESC, created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.StayRepo.List: %w", err)
	}
	defer rows.Close()

	var stays []domain.Stay
	for rows.Next() {
		s, err := scanStay(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.StayRepo.List: scan: %w", err)
		}
		stays = append(stays, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StayRepo.List: rows: %w", err)
	}

	return stays, nil
}

// Update overwrites all editable and derived fields of a stay and returns the
// updated record.
func (r *pgStayRepo) Update(ctx context.Context, stay domain.Stay) (domain.Stay, error) {
	const q = `
		UPDATE stays
		SET entry_date      = @entry_date,
		    first_name      = @first_name,
		    last_name       = @last_name,
		    num_guests      = @num_guests,
		    num_minors      = @num_minors,
		    num_nights      = @num_nights,
		    daily_tax       = @daily_tax,
		    total_tax       = @total_tax,
		    month           = @month,
		    pre_stay_notes  = @pre_stay_notes,
		    post_stay_notes = @post_stay_notes,
		    updated_at      = now()
		WHERE id = @id
		RETURNING ` + stayColumns

	args := stayArgs(stay)
	args["id"] = stay.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanStay(row)
	if err != nil {
		return domain.Stay{}, fmt.Errorf("repo.StayRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a stay by primary key.
func (r *pgStayRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM stays WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.StayRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.StayRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// stayArgs maps a domain.Stay onto the named insert/update arguments.
func stayArgs(stay domain.Stay) pgx.NamedArgs {
	return pgx.NamedArgs{
		"entry_date":      stay.EntryDate,
		"first_name":      stay.FirstName,
		"last_name":       stay.LastName,
		"num_guests":      stay.NumGuests,
		"num_minors":      stay.NumMinors,
		"num_nights":      stay.NumNights,
		"daily_tax":       stay.DailyTax,
		"total_tax":       stay.TotalTax,
		"month":           stay.Month,
		"pre_stay_notes":  stay.PreStayNotes,
		"post_stay_notes": stay.PostStayNotes,
	}
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanStay to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanStay maps a single database row into a domain.Stay.
// It handles the UUID and date conversions; the numeric columns scan directly
// into decimal.Decimal via the shopspring codec registered on the connection.
func scanStay(s scanner) (domain.Stay, error) {
	var (
		stay  domain.Stay
		id    pgtype.UUID
		entry pgtype.Date
		daily decimal.Decimal
		total decimal.Decimal
	)

	err := s.Scan(&id, &entry, &stay.FirstName, &stay.LastName, &stay.NumGuests,
		&stay.NumMinors, &stay.NumNights, &daily, &total, &stay.Month,
		&stay.PreStayNotes, &stay.PostStayNotes, &stay.CreatedAt, &stay.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Stay{}, domain.ErrNotFound
		}
		return domain.Stay{}, err
	}

	stay.ID = uuid.UUID(id.Bytes)
	stay.EntryDate = entry.Time
	stay.DailyTax = daily
	stay.TotalTax = total

	return stay, nil
}
