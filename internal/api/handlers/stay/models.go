package stay

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
)

var (
	errInvalidCounts = errors.New("invalid participant counts")
	errInvalidDate   = errors.New("invalid date of stay")
)

// UpdateStayRequest HTTP request model; отсутствующие поля не меняются
type UpdateStayRequest struct {
	Date      *DateRequest `json:"date,omitempty"`
	ClearDate bool         `json:"clearDate,omitempty"`
	Adults    *int         `json:"adults,omitempty"`
	Children  *int         `json:"children,omitempty"`
}

// DateRequest дата или диапазон (YYYY-MM-DD)
type DateRequest struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// Counts возвращает итоговое количество участников с учетом текущих значений
func (r *UpdateStayRequest) Counts(current domain.Stay) (adults, children int, err error) {
	adults, children = current.Adults, current.Children
	if r.Adults != nil {
		adults = *r.Adults
	}
	if r.Children != nil {
		children = *r.Children
	}
	if adults < 0 || children < 0 {
		return 0, 0, fmt.Errorf("%w: counts must not be negative", errInvalidCounts)
	}
	if adults+children > domain.MaxParticipants {
		return 0, 0, fmt.Errorf("%w: at most %d participants", errInvalidCounts, domain.MaxParticipants)
	}
	return adults, children, nil
}

// DateOfStay разбирает дату пребывания
func (r *DateRequest) DateOfStay() (*domain.DateOfStay, error) {
	start, err := time.Parse(domain.DateFormat, r.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: start %q", errInvalidDate, r.Start)
	}
	date := &domain.DateOfStay{Start: start}
	if r.End == nil || *r.End == "" {
		return date, nil
	}

	end, err := time.Parse(domain.DateFormat, *r.End)
	if err != nil {
		return nil, fmt.Errorf("%w: end %q", errInvalidDate, *r.End)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end is before start", errInvalidDate)
	}
	date.End = &end
	return date, nil
}
