package common

import "time"

// DateLayout
const (
	DateFormatYYYYMMDD            = "2006-01-02"
	DateFormatYYYYMM              = "2006-01"
	DateFormatYYYYMMDDWithoutDash = "20060102"
	DateFormatYYYYMMDDWithTime    = "2006-01-02 15:04:05"
)

// Now is overridable on tests
var Now = time.Now

// MonthRange returns the first and last calendar day of the given month,
// both truncated to midnight UTC. The range is inclusive on both ends.
func MonthRange(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// DaysBetween returns the absolute difference in whole calendar days
// between two dates. Time-of-day is ignored.
func DaysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	diff := int(a.Sub(b).Hours() / 24)
	if diff < 0 {
		diff = -diff
	}
	return diff
}

// ValidPeriod reports whether month/year form a usable calendar period.
func ValidPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 2000 && year <= 2100
}
