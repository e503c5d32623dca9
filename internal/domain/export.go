package domain

// ExportRow is a single row in the full-data export: a flat view of one stay
// with dates and money pre-formatted as strings, ready for CSV or JSON
// encoding.
//
// EntryDate and ExitDate are "2006-01-02" formatted. DailyTax and TotalTax
// are exact decimal strings (no display rounding).
type ExportRow struct {
	ID            string `json:"id"`
	EntryDate     string `json:"entry_date"`
	ExitDate      string `json:"exit_date"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	NumGuests     int    `json:"num_guests"`
	NumMinors     int    `json:"num_minors"`
	NumNights     int    `json:"num_nights"`
	DailyTax      string `json:"daily_tax"`
	TotalTax      string `json:"total_tax"`
	Month         int    `json:"month"`
	PreStayNotes  string `json:"pre_stay_notes,omitempty"`
	PostStayNotes string `json:"post_stay_notes,omitempty"`
}
