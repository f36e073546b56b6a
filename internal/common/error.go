package common

import "fmt"

var (
	// ErrNoDatePattern means a title does not end with the dated-report
	// expression. Index scanners treat it as "end of known data", not a failure.
	ErrNoDatePattern = fmt.Errorf("no date pattern in title")

	ErrReportFileNotFoundError = fmt.Errorf("report file not found")
	ErrSaveDirNotFoundError    = fmt.Errorf("save directory not found")
	ErrReportListNotFoundError = fmt.Errorf("report list not found on index page")
)
