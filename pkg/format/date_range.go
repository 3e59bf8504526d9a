package format

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Названия месяцев в родительном падеже ("1 grudnia")
var monthsPL = [...]string{
	"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca",
	"lipca", "sierpnia", "września", "października", "listopada", "grudnia",
}

var monthsEN = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DateRange форматирует дату или диапазон дат на польском:
//   - "2025-12-01" -> "1 grudnia"
//   - ["2025-12-01", "2025-12-05"] или "2025-12-01,2025-12-05" -> "1 grudnia - 5 grudnia (4dni)"
//
// Для нераспознанного ввода возвращает пустую строку.
func DateRange(input interface{}) string {
	return DateRangeLocale(input, "pl")
}

// DateRangeLocale то же, что DateRange, для указанной локали (pl, en)
func DateRangeLocale(input interface{}, locale string) string {
	start, end, ok := parseRange(input)
	if !ok {
		return ""
	}

	startFormatted := formatDay(start, locale)
	if end == nil {
		return startFormatted
	}

	days := calendarDaysBetween(start, *end)
	suffix := "dni"
	if locale == "en" {
		suffix = "days"
	}

	return fmt.Sprintf("%s - %s (%d%s)", startFormatted, formatDay(*end, locale), days, suffix)
}

func parseRange(input interface{}) (time.Time, *time.Time, bool) {
	var startRaw, endRaw interface{}

	switch v := input.(type) {
	case time.Time:
		startRaw = v
	case *time.Time:
		if v == nil {
			return time.Time{}, nil, false
		}
		startRaw = *v
	case string:
		first, second, found := strings.Cut(v, ",")
		startRaw = first
		if found {
			endRaw = second
		}
	case []string:
		if len(v) == 0 {
			return time.Time{}, nil, false
		}
		startRaw = v[0]
		if len(v) > 1 {
			endRaw = v[1]
		}
	case []time.Time:
		if len(v) == 0 {
			return time.Time{}, nil, false
		}
		startRaw = v[0]
		if len(v) > 1 {
			endRaw = v[1]
		}
	default:
		return time.Time{}, nil, false
	}

	start, ok := parseDate(startRaw)
	if !ok {
		return time.Time{}, nil, false
	}

	if endRaw == nil {
		return start, nil, true
	}
	end, ok := parseDate(endRaw)
	if !ok {
		return start, nil, true
	}

	return start, &end, true
}

func parseDate(v interface{}) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, !d.IsZero()
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		if t, err := time.Parse(dateLayout, s); err == nil {
			return t, true
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatDay(t time.Time, locale string) string {
	months := monthsPL
	if locale == "en" {
		months = monthsEN
	}
	return fmt.Sprintf("%d %s", t.Day(), months[t.Month()-1])
}

// calendarDaysBetween разница в календарных днях без учета времени суток
func calendarDaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}
