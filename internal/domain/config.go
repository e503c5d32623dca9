package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppConfig is the operator's settings record. Exactly one row exists for the
// whole system; it is bootstrapped with defaults on first access and updated
// in place, never deleted.
//
// Month is used only to pre-fill defaults on the new-stay form. Year is not
// applied as a filter anywhere; aggregation covers all recorded stays
// regardless of entry year.
type AppConfig struct {
	ID              uuid.UUID       `json:"id"`
	AppName         string          `json:"app_name"`
	Year            int             `json:"year"`
	Month           int             `json:"month"` // 1-12
	DefaultDailyTax decimal.Decimal `json:"default_daily_tax"`
	LogoURL         string          `json:"logo_url,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// DefaultAppConfig returns the hard-coded configuration created when no row
// exists yet. Year and month default to the current reporting period.
func DefaultAppConfig(now time.Time) AppConfig {
	return AppConfig{
		AppName:         "TeamInova B&B Local Stay Tax Calculator",
		Year:            now.Year(),
		Month:           int(now.Month()),
		DefaultDailyTax: decimal.NewFromFloat(2.0),
		LogoURL:         "",
	}
}
