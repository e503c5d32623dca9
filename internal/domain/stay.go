// Package domain contains the core data types and pure calculation logic for
// the stay tax application. This package has zero dependencies on the rest of
// the module and is imported by every other internal package (repo, service,
// handler).
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxNotesLen is the maximum length, in characters, of each of the two
// free-text note fields on a stay.
const MaxNotesLen = 1000

// Stay represents one recorded guest booking segment: a guest party, the
// night they arrived, how many nights they stayed, and the local stay tax
// owed for that segment.
//
// Month and TotalTax are derived fields. They are recomputed from EntryDate
// and the tax inputs on every create and update (see Derive) and are never
// accepted from the caller.
type Stay struct {
	ID            uuid.UUID       `json:"id"`
	EntryDate     time.Time       `json:"entry_date"` // date only, no time component
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	NumGuests     int             `json:"num_guests"`
	NumMinors     int             `json:"num_minors"`
	NumNights     int             `json:"num_nights"`
	DailyTax      decimal.Decimal `json:"daily_tax"`
	TotalTax      decimal.Decimal `json:"total_tax"`
	Month         int             `json:"month"` // 1-12, calendar month of EntryDate
	PreStayNotes  string          `json:"pre_stay_notes,omitempty"`
	PostStayNotes string          `json:"post_stay_notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ComputeTax returns the total stay tax for the given inputs:
//
//	(numGuests - numMinors) * numNights * dailyTax
//
// Minors are exempt from the tax. The arithmetic is exact; no rounding is
// applied; presentation layers may round for display only.
//
// The function deliberately does not validate numMinors <= numGuests, so a
// minor count above the guest count yields a negative total. Callers own
// that policy decision.
func ComputeTax(numGuests, numMinors, numNights int, dailyTax decimal.Decimal) decimal.Decimal {
	taxable := int64(numGuests-numMinors) * int64(numNights)
	return dailyTax.Mul(decimal.NewFromInt(taxable))
}

// Derive returns a copy of the stay with Month and TotalTax recomputed from
// the stay's own fields. Call it whenever EntryDate, NumGuests, NumMinors,
// NumNights, or DailyTax may have changed; i.e. on every create and update.
func (s Stay) Derive() Stay {
	s.Month = int(s.EntryDate.Month())
	s.TotalTax = ComputeTax(s.NumGuests, s.NumMinors, s.NumNights, s.DailyTax)
	return s
}

// ExitDate returns the exclusive end date of the stay: EntryDate plus
// NumNights days. A guest entering Jan 28 for 5 nights exits Feb 2.
func (s Stay) ExitDate() time.Time {
	return s.EntryDate.AddDate(0, 0, s.NumNights)
}
