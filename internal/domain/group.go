package domain

import (
	"regexp"
	"strconv"

	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/types"
)

var dayCountPattern = regexp.MustCompile(`\d+`)

// GroupSession one dated meeting of a group package
type GroupSession struct {
	Date string // YYYY-MM-DD
	Time types.TimeRange
}

// InsuranceOffer insurance sold together with a group package
type InsuranceOffer struct {
	PricePerDay float64
}

// Group a multi-day class package sold as one unit
type Group struct {
	ID           int
	Name         string
	Activity     ActivityType
	Sessions     []GroupSession // ordered by date
	Description  string         // e.g. "5 dni zajęć, zajęcia 1x dziennie"
	Schedule     string         // e.g. "od 9:30 do 10:30"
	Price        *float64       // nil for happy hours packages
	IsHappyHours bool
	Insurance    *InsuranceOffer
}

// DayCount returns the number of class days encoded in the description.
// Falls back to the number of distinct session dates.
func (g *Group) DayCount() int {
	if m := dayCountPattern.FindString(g.Description); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n
		}
	}
	return len(g.SessionDates())
}

// SessionDates returns distinct session dates in schedule order
func (g *Group) SessionDates() []string {
	seen := make(map[string]struct{}, len(g.Sessions))
	dates := make([]string, 0, len(g.Sessions))
	for _, s := range g.Sessions {
		if _, ok := seen[s.Date]; ok {
			continue
		}
		seen[s.Date] = struct{}{}
		dates = append(dates, s.Date)
	}
	return dates
}

// SessionsOn returns the sessions scheduled on the given date
func (g *Group) SessionsOn(date string) []GroupSession {
	var result []GroupSession
	for _, s := range g.Sessions {
		if s.Date == date {
			result = append(result, s)
		}
	}
	return result
}
