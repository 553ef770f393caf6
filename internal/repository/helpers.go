package repository

import "time"

// timeLayout is fixed width so lexical order in SQLite matches time order.
// RFC3339Nano trims trailing zeros and would not sort correctly.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
