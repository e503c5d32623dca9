package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teaminova/staytax-backend/internal/domain"
	"github.com/teaminova/staytax-backend/internal/repo"
)

// ConfigService implements business logic for the singleton operator
// configuration. There is no package-level configuration state anywhere in
// the module; callers fetch the record through this service and thread it
// explicitly.
type ConfigService struct {
	config repo.ConfigRepo

	// now is swappable in tests so the bootstrapped defaults are predictable.
	now func() time.Time
}

// NewConfigService constructs a ConfigService backed by the provided ConfigRepo.
func NewConfigService(r repo.ConfigRepo) *ConfigService {
	return &ConfigService{config: r, now: time.Now}
}

// WithClock replaces the service's clock. Test hook.
func (s *ConfigService) WithClock(now func() time.Time) *ConfigService {
	s.now = now
	return s
}

// Get returns the singleton configuration, creating the hard-coded default
// row on the fly when none exists yet. A missing row is not an error.
func (s *ConfigService) Get(ctx context.Context) (domain.AppConfig, error) {
	cfg, err := s.config.Get(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.AppConfig{}, fmt.Errorf("service.ConfigService.Get: %w", err)
	}

	created, err := s.config.Create(ctx, domain.DefaultAppConfig(s.now()))
	if err != nil {
		return domain.AppConfig{}, fmt.Errorf("service.ConfigService.Get: bootstrap default: %w", err)
	}
	return created, nil
}

// Update validates and persists new settings onto the existing singleton row,
// preserving its identity. Returns domain.ErrNotFound if no row exists;
// updates never implicitly create the singleton.
func (s *ConfigService) Update(ctx context.Context, cfg domain.AppConfig) (domain.AppConfig, error) {
	if err := validateConfig(cfg); err != nil {
		return domain.AppConfig{}, err
	}

	current, err := s.config.Get(ctx)
	if err != nil {
		return domain.AppConfig{}, fmt.Errorf("service.ConfigService.Update: %w", err)
	}

	cfg.ID = current.ID
	result, err := s.config.Update(ctx, cfg)
	if err != nil {
		return domain.AppConfig{}, fmt.Errorf("service.ConfigService.Update: %w", err)
	}
	return result, nil
}

// validateConfig enforces the form-boundary rules for settings updates.
func validateConfig(cfg domain.AppConfig) error {
	if cfg.AppName == "" {
		return fmt.Errorf("%w: app_name is required", domain.ErrValidation)
	}
	if cfg.Year < 1 {
		return fmt.Errorf("%w: year must be positive", domain.ErrValidation)
	}
	if cfg.Month < 1 || cfg.Month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", domain.ErrValidation)
	}
	if cfg.DefaultDailyTax.IsNegative() {
		return fmt.Errorf("%w: default_daily_tax must not be negative", domain.ErrValidation)
	}
	return nil
}
