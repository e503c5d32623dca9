package domain

import "fmt"

// multiMonthMarker is the explanatory line appended to the pre-stay notes of
// both segments when a stay is split at a month boundary. Dates are formatted
// as 2006-01-02.
const multiMonthMarker = "Multi-Month Stay - from: %s to %s"

// SplitAtMonthBoundary partitions a new stay whose date range crosses a
// calendar-month boundary into two persistable segments, one per month.
//
// If the stay's exclusive exit date falls in the same calendar month and year
// as its entry date, the stay is returned unchanged as a single segment.
//
// Otherwise two segments are returned:
//
//   - segment A keeps the original entry date and covers the nights remaining
//     in the entry month;
//   - segment B starts on the first day of the following month and covers the
//     remainder.
//
// Both segments carry identical guest, name, rate, and post-stay note fields.
// A marker line naming the full original range is appended to the pre-stay
// notes of each segment, and Month and TotalTax are rederived per segment
// from its own entry date and night count. Tax is linear in nights, so the
// two segment taxes always sum to the tax of the unsplit stay.
//
// A stay ending exactly on the first day of the next month still produces
// two segments, the second with zero nights and zero tax. Stays spanning
// three or more calendar months are not handled; segment B keeps the full
// remainder even when it would itself cross another boundary.
func SplitAtMonthBoundary(stay Stay) []Stay {
	entry := stay.EntryDate
	exit := stay.ExitDate()

	if entry.Month() == exit.Month() && entry.Year() == exit.Year() {
		return []Stay{stay}
	}

	// Last day of the entry month: day 0 of the following month.
	lastOfMonth := entry.AddDate(0, 0, -entry.Day()+1).AddDate(0, 1, -1)
	daysInFirstMonth := lastOfMonth.Day() - entry.Day() + 1
	daysInSecondMonth := stay.NumNights - daysInFirstMonth

	marker := fmt.Sprintf(multiMonthMarker, entry.Format("2006-01-02"), exit.Format("2006-01-02"))

	first := stay
	first.NumNights = daysInFirstMonth
	first.PreStayNotes = appendNoteLine(stay.PreStayNotes, marker)

	second := stay
	second.EntryDate = lastOfMonth.AddDate(0, 0, 1)
	second.NumNights = daysInSecondMonth
	second.PreStayNotes = appendNoteLine(stay.PreStayNotes, marker)

	return []Stay{first.Derive(), second.Derive()}
}

// appendNoteLine appends line to notes, separated by a newline when notes is
// non-empty.
func appendNoteLine(notes, line string) string {
	if notes == "" {
		return line
	}
	return notes + "\n" + line
}
