package entity

import "time"

// Report is one discovered edition of the situation report, as listed on
// the index page. Editions appear in page order, newest first.
type Report struct {
	Timestamp time.Time // Publication time, JST, minute precision
	Path      string    // Relative URL of the spreadsheet
}
