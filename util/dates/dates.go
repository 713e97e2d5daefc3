package dates

import "time"

// Layout is the calendar date format used in front matter and file names.
const Layout = "2006-01-02"

func DateString(t time.Time) string {
	return t.Format(Layout)
}

// StartOfDay drops the clock time, keeping the date in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
