package get_eligible_groups

import "github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"

// Request модель запроса групп, доступных участнику
type Request struct {
	SessionID     string
	ParticipantID string
}

// Response модель ответа со списком групп
type Response struct {
	ParticipantID   string
	Activity        domain.ActivityType
	StayDays        int
	Permitted       bool // false, если участнику недоступны групповые занятия
	Groups          []Group
	SelectedGroupID *int
}

// Group модель группового пакета
type Group struct {
	ID              int
	Name            string
	Activity        domain.ActivityType
	Description     string
	Schedule        string
	Dates           []string
	DayCount        int
	Price           float64 // для happy hours - цена из тарифов
	PriceLabel      string
	IsHappyHours    bool
	InsurancePerDay *float64
}
