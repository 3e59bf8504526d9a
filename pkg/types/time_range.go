package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidTimeRange возвращается при некорректном формате диапазона
	ErrInvalidTimeRange = errors.New("types: invalid time range")

	// ErrInvalidClock возвращается при некорректном формате времени H:MM
	ErrInvalidClock = errors.New("types: invalid clock time")
)

// TimeRange диапазон времени занятия в формате "H:MM - H:MM" (24h, минуты всегда указаны)
type TimeRange string

// NewTimeRange собирает диапазон из минут от начала суток
func NewTimeRange(startMinutes, endMinutes int) TimeRange {
	return TimeRange(fmt.Sprintf("%s - %s", FormatClock(startMinutes), FormatClock(endMinutes)))
}

// String возвращает строковое представление
func (r TimeRange) String() string {
	return string(r)
}

// Bounds возвращает начало и конец диапазона в минутах от начала суток
func (r TimeRange) Bounds() (start int, end int, err error) {
	parts := strings.Split(string(r), "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeRange, string(r))
	}

	start, err = parseClock(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeRange, string(r), err)
	}
	end, err = parseClock(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeRange, string(r), err)
	}

	return start, end, nil
}

// Hours возвращает длительность диапазона в часах (end - start, в десятичных часах)
func (r TimeRange) Hours() (float64, error) {
	start, end, err := r.Bounds()
	if err != nil {
		return 0, err
	}
	return float64(end)/60 - float64(start)/60, nil
}

// Validate проверяет формат диапазона
func (r TimeRange) Validate() error {
	_, _, err := r.Bounds()
	return err
}

// parseClock разбирает "H:MM" в минуты от начала суток
func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || hh == "" || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 24 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return hours*60 + minutes, nil
}

// FormatClock форматирует минуты от начала суток как H:MM
func FormatClock(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
