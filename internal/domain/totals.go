package domain

import "github.com/shopspring/decimal"

// MonthlyTotal is the sum of tax, nights, and guests over all stays recorded
// for one calendar month. Derived only; never persisted.
type MonthlyTotal struct {
	Month       int             `json:"month"` // 1-12
	TotalTax    decimal.Decimal `json:"total_tax"`
	TotalNights int             `json:"total_nights"`
	TotalGuests int             `json:"total_guests"`
}

// TrimesterTotal is the sum of three consecutive monthly totals. Trimester q
// covers months 3q-2 through 3q (Q1 = Jan-Mar, ..., Q4 = Oct-Dec).
type TrimesterTotal struct {
	Trimester   int             `json:"trimester"` // 1-4
	TotalTax    decimal.Decimal `json:"total_tax"`
	TotalNights int             `json:"total_nights"`
	TotalGuests int             `json:"total_guests"`
}

// YearlyTotal is the sum of all four trimester totals.
type YearlyTotal struct {
	TotalTax    decimal.Decimal `json:"total_tax"`
	TotalNights int             `json:"total_nights"`
	TotalGuests int             `json:"total_guests"`
}

// Totals carries the three rollup levels produced by Aggregate.
type Totals struct {
	Monthly    []MonthlyTotal   `json:"monthly"`    // always 12 entries, months 1-12
	Trimesters []TrimesterTotal `json:"trimesters"` // always 4 entries
	Yearly     YearlyTotal      `json:"yearly"`
}

// Aggregate buckets the given stays into 12 monthly totals, rolls those up
// into 4 trimester totals, and sums the trimesters into a yearly total.
//
// Bucketing keys on each stay's stored Month field, not on its entry date;
// the stored value is the source of truth at aggregation time. Stays are not
// filtered by year; every recorded stay contributes to every rollup.
//
// The function is pure and order-independent, and recomputes everything from
// scratch on each call.
func Aggregate(stays []Stay) Totals {
	monthly := make([]MonthlyTotal, 12)
	for i := range monthly {
		monthly[i] = MonthlyTotal{Month: i + 1, TotalTax: decimal.Zero}
	}

	for _, stay := range stays {
		if stay.Month < 1 || stay.Month > 12 {
			continue // stale or corrupt month value, nothing to bucket into
		}
		b := &monthly[stay.Month-1]
		b.TotalTax = b.TotalTax.Add(stay.TotalTax)
		b.TotalNights += stay.NumNights
		b.TotalGuests += stay.NumGuests
	}

	trimesters := make([]TrimesterTotal, 4)
	for i := range trimesters {
		trimesters[i] = TrimesterTotal{Trimester: i + 1, TotalTax: decimal.Zero}
	}
	for i, m := range monthly {
		q := &trimesters[i/3]
		q.TotalTax = q.TotalTax.Add(m.TotalTax)
		q.TotalNights += m.TotalNights
		q.TotalGuests += m.TotalGuests
	}

	yearly := YearlyTotal{TotalTax: decimal.Zero}
	for _, q := range trimesters {
		yearly.TotalTax = yearly.TotalTax.Add(q.TotalTax)
		yearly.TotalNights += q.TotalNights
		yearly.TotalGuests += q.TotalGuests
	}

	return Totals{Monthly: monthly, Trimesters: trimesters, Yearly: yearly}
}
