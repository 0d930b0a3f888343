package domain

import "time"

// DateKeyLayout is the calendar-date key format used for daily summaries.
const DateKeyLayout = "2006-01-02"

// DateKey returns the calendar-date key for a timestamp in local time.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// Midnight truncates a timestamp to the start of its calendar day in local time.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DiffDays returns the number of whole calendar days between the days of
// from and to. Same day yields 0, to one day after from yields 1.
func DiffDays(from, to time.Time) int {
	return int(Midnight(to).Sub(Midnight(from)).Hours() / 24)
}

// DayBounds returns the inclusive timestamp range covering one calendar date
// key in local time, from 00:00:00 to 23:59:59.
func DayBounds(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(DateKeyLayout, date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := day
	end := day.Add(24*time.Hour - time.Second)
	return start, end, nil
}
