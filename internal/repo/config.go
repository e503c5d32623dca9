package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/teaminova/staytax-backend/internal/domain"
)

// ConfigRepo defines the persistence operations for the singleton operator
// configuration. The bootstrap-a-default-row-when-missing behavior lives in
// the service layer; this repo only reports domain.ErrNotFound.
type ConfigRepo interface {
	// Get returns the one configuration row.
	// Returns domain.ErrNotFound when no row exists yet.
	Get(ctx context.Context) (domain.AppConfig, error)

	// Create inserts a configuration row and returns the persisted record.
	// Used once, to bootstrap the singleton.
	Create(ctx context.Context, cfg domain.AppConfig) (domain.AppConfig, error)

	// Update overwrites the row identified by cfg.ID and returns the updated
	// record. Returns domain.ErrNotFound if that row does not exist.
	Update(ctx context.Context, cfg domain.AppConfig) (domain.AppConfig, error)
}

const configColumns = `id, app_name, year, month, default_daily_tax, logo_url,
		created_at, updated_at`

// pgConfigRepo is the Postgres implementation of ConfigRepo.
type pgConfigRepo struct {
	db db
}

// NewConfigRepo constructs a ConfigRepo backed by the provided db connection.
func NewConfigRepo(db db) ConfigRepo {
	return &pgConfigRepo{db: db}
}

// Get fetches the singleton row. The oldest row wins if the table ever holds
// more than one.
func (r *pgConfigRepo) Get(ctx context.Context) (domain.AppConfig, error) {
	const q = `
		SELECT ` + configColumns + `
		FROM app_config
		ORDER BY created_at ASC
		LIMIT 1`

	row := r.db.QueryRow(ctx, q)
	result, err := scanConfig(row)
	if err != nil {
		return domain.AppConfig{}, fmt.Errorf("repo.ConfigRepo.Get: %w", err)
	}
	return result, nil
}

// Create inserts the configuration row and returns the persisted record.
func (r *pgConfigRepo) Create(ctx context.Context, cfg domain.AppConfig) (domain.AppConfig, error) {
	const q = `
		INSERT INTO app_config (app_name, year, month, default_daily_tax, logo_url)
		VALUES (@app_name, @year, @month, @default_daily_tax, @logo_url)
		RETURNING ` + configColumns

	args := pgx.NamedArgs{
		"app_name":          cfg.AppName,
		"year":              cfg.Year,
		"month":             cfg.Month,
		"default_daily_tax": cfg.DefaultDailyTax,
		"logo_url":          cfg.LogoURL,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanConfig(row)
	if err != nil {
		return domain.AppConfig{}, fmt.Errorf("repo.ConfigRepo.Create: %w", err)
	}
	return result, nil
}

// Update overwrites the row identified by cfg.ID and returns the updated record.
func (r *pgConfigRepo) Update(ctx context.Context, cfg domain.AppConfig) (domain.AppConfig, error) {
	const q = `
		UPDATE app_config
		SET app_name          = @app_name,
		    year              = @year,
		    month             = @month,
		    default_daily_tax = @default_daily_tax,
		    logo_url          = @logo_url,
		    updated_at        = now()
		WHERE id = @id
		RETURNING ` + configColumns

	args := pgx.NamedArgs{
		"id":                cfg.ID,
		"app_name":          cfg.AppName,
		"year":              cfg.Year,
		"month":             cfg.Month,
		"default_daily_tax": cfg.DefaultDailyTax,
		"logo_url":          cfg.LogoURL,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanConfig(row)
	if err != nil {
		return domain.AppConfig{}, fmt.Errorf("repo.ConfigRepo.Update: %w", err)
	}
	return result, nil
}

// scanConfig maps a single database row into a domain.AppConfig.
func scanConfig(s scanner) (domain.AppConfig, error) {
	var (
		cfg  domain.AppConfig
		id   pgtype.UUID
		rate decimal.Decimal
	)

	err := s.Scan(&id, &cfg.AppName, &cfg.Year, &cfg.Month, &rate,
		&cfg.LogoURL, &cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AppConfig{}, domain.ErrNotFound
		}
		return domain.AppConfig{}, err
	}

	cfg.ID = uuid.UUID(id.Bytes)
	cfg.DefaultDailyTax = rate

	return cfg, nil
}
