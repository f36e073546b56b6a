package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/mskmysht/covid-treatment-sickbed/internal/common"
	"github.com/mskmysht/covid-treatment-sickbed/internal/numeral"
)

// JST is the fixed zone every report timestamp is published in. Japan has
// no daylight saving.
var JST = time.FixedZone("JST", 9*60*60)

// The dated-title suffix, e.g. 「…調査結果（2022年11月30日0時時点）」. The
// parentheses are full-width, each component is a run of ASCII or full-width
// digits and the minute part may be missing. Anything before the opening
// parenthesis is ignored.
var datetimeRegexp = regexp.MustCompile(
	`（(?P<year>[0-9０-９]+)年(?P<month>[0-9０-９]+)月(?P<day>[0-9０-９]+)日(?P<hour>[0-9０-９]+)時((?P<minute>[0-9０-９]+)分)?時点）$`)

// DateCapture holds the raw capture groups of the dated-title pattern before
// digit normalization. Minute is empty when the title omits it.
type DateCapture struct {
	Year   string
	Month  string
	Day    string
	Hour   string
	Minute string
}

// ExtractDateTime reads the publication time out of a report title. A title
// without the dated suffix yields common.ErrNoDatePattern, which scanners
// treat as the end of the report list rather than a failure.
func ExtractDateTime(title string) (time.Time, error) {
	m := datetimeRegexp.FindStringSubmatch(title)
	if m == nil {
		return time.Time{}, common.ErrNoDatePattern
	}

	capture := DateCapture{
		Year:   m[datetimeRegexp.SubexpIndex("year")],
		Month:  m[datetimeRegexp.SubexpIndex("month")],
		Day:    m[datetimeRegexp.SubexpIndex("day")],
		Hour:   m[datetimeRegexp.SubexpIndex("hour")],
		Minute: m[datetimeRegexp.SubexpIndex("minute")],
	}

	year, err := captureToInt("year", capture.Year)
	if err != nil {
		return time.Time{}, err
	}

	month, err := captureToInt("month", capture.Month)
	if err != nil {
		return time.Time{}, err
	}

	day, err := captureToInt("day", capture.Day)
	if err != nil {
		return time.Time{}, err
	}

	hour, err := captureToInt("hour", capture.Hour)
	if err != nil {
		return time.Time{}, err
	}

	minute := 0
	if capture.Minute != "" {
		minute, err = captureToInt("minute", capture.Minute)
		if err != nil {
			return time.Time{}, err
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, JST), nil
}

func captureToInt(name, raw string) (int, error) {
	s, err := numeral.ToHalfDigits(raw)
	if err != nil {
		return 0, fmt.Errorf("cannot normalize %s %q: %w", name, raw, err)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %s %q: %w", name, s, err)
	}

	return n, nil
}
