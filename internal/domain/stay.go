package domain

import "time"

// DateOfStay single date (End == nil) or an inclusive date range
type DateOfStay struct {
	Start time.Time
	End   *time.Time
}

// IsRange returns true if the stay spans a start/end range
func (d DateOfStay) IsRange() bool {
	return d.End != nil
}

// DurationDays returns the inclusive day count of the stay (1 for a single date)
func (d DateOfStay) DurationDays() int {
	if d.End == nil {
		return 1
	}
	start := truncateDay(d.Start)
	end := truncateDay(*d.End)
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// Dates returns every day of the stay
func (d DateOfStay) Dates() []time.Time {
	n := d.DurationDays()
	start := truncateDay(d.Start)
	dates := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

// Contains returns true if the date falls within the stay
func (d DateOfStay) Contains(date time.Time) bool {
	day := truncateDay(date)
	start := truncateDay(d.Start)
	if d.End == nil {
		return day.Equal(start)
	}
	end := truncateDay(*d.End)
	return !day.Before(start) && !day.After(end)
}

// Stay aggregate root of a booking attempt
type Stay struct {
	Date     *DateOfStay
	Adults   int
	Children int
}

// NewStay returns a stay with default values
func NewStay() Stay {
	return Stay{
		Adults:   DefaultAdults,
		Children: DefaultChildren,
	}
}

// MaxAdults returns the highest adult count allowed with the current children count
func (s Stay) MaxAdults() int {
	return MaxParticipants - s.Children
}

// MaxChildren returns the highest children count allowed with the current adult count
func (s Stay) MaxChildren() int {
	return MaxParticipants - s.Adults
}

// TotalParticipants returns adults + children
func (s Stay) TotalParticipants() int {
	return s.Adults + s.Children
}

// DurationDays returns the stay length in days, 1 when no range is set
func (s Stay) DurationDays() int {
	if s.Date == nil {
		return 1
	}
	return s.Date.DurationDays()
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
