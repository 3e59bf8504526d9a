package handlers

import (
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/flow"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
)

// StayPolicy сужение активностей и типов занятий для участника
type StayPolicy interface {
	PermittedActivities(p *domain.Participant) []domain.ActivityType
	PermittedLessonTypes(p *domain.Participant) []domain.LessonType
}

// SessionState снимок состояния сессии для клиента
type SessionState struct {
	ID           string             `json:"id"`
	Locale       string             `json:"locale"`
	Stay         StayState          `json:"stay"`
	Participants []ParticipantState `json:"participants"`
	CartSize     int                `json:"cartSize"`
	Timer        TimerState         `json:"timer"`
	Flow         FlowState          `json:"flow"`
}

// StayState параметры пребывания
type StayState struct {
	Date         *DateState `json:"date"`
	Adults       int        `json:"adults"`
	Children     int        `json:"children"`
	MaxAdults    int        `json:"maxAdults"`
	MaxChildren  int        `json:"maxChildren"`
	DurationDays int        `json:"durationDays"`
}

// DateState дата или диапазон дат пребывания (YYYY-MM-DD)
type DateState struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// ParticipantState участник и доступные ему варианты
type ParticipantState struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Surname              string   `json:"surname"`
	Type                 string   `json:"type"`
	Age                  *int     `json:"age,omitempty"`
	ActivityType         string   `json:"activityType"`
	SkillLevel           string   `json:"skillLevel"`
	Language             string   `json:"language"`
	PermittedActivities  []string `json:"permittedActivities"`
	PermittedLessonTypes []string `json:"permittedLessonTypes"`
}

// TimerState таймер удержания брони
type TimerState struct {
	State        string `json:"state"`
	Remaining    int    `json:"remaining"`
	Formatted    string `json:"formatted"`
	WarningShown bool   `json:"warningShown"`
}

// FlowState положение в мастере бронирования
type FlowState struct {
	Current    flow.Step   `json:"current"`
	StepName   string      `json:"stepName"`
	Completed  []flow.Step `json:"completed"`
	CanProceed bool        `json:"canProceed"`
}

// NewSessionState собирает снимок; вызывается под блокировкой сессии
func NewSessionState(s *session.Session, policy StayPolicy) *SessionState {
	stay := s.Stay.Stay()
	state := &SessionState{
		ID:     s.ID,
		Locale: s.Locale(),
		Stay: StayState{
			Adults:       stay.Adults,
			Children:     stay.Children,
			MaxAdults:    stay.MaxAdults(),
			MaxChildren:  stay.MaxChildren(),
			DurationDays: stay.DurationDays(),
		},
		CartSize: s.Classes.Cart().Len(),
		Timer:    NewTimerState(s),
		Flow:     NewFlowState(s.Flow),
	}
	if stay.Date != nil {
		date := &DateState{Start: stay.Date.Start.Format(domain.DateFormat)}
		if stay.Date.End != nil {
			end := stay.Date.End.Format(domain.DateFormat)
			date.End = &end
		}
		state.Stay.Date = date
	}

	participants := s.Stay.Roster().Participants()
	state.Participants = make([]ParticipantState, 0, len(participants))
	for _, p := range participants {
		state.Participants = append(state.Participants, NewParticipantState(p, policy))
	}
	return state
}

// NewParticipantState модель участника
func NewParticipantState(p *domain.Participant, policy StayPolicy) ParticipantState {
	ps := ParticipantState{
		ID:                   p.ID,
		Name:                 p.Name,
		Surname:              p.Surname,
		Type:                 string(p.Type),
		Age:                  p.Age,
		ActivityType:         string(p.ActivityType),
		SkillLevel:           p.SkillLevel,
		Language:             string(p.Language),
		PermittedActivities:  []string{},
		PermittedLessonTypes: []string{},
	}
	for _, a := range policy.PermittedActivities(p) {
		ps.PermittedActivities = append(ps.PermittedActivities, string(a))
	}
	for _, lt := range policy.PermittedLessonTypes(p) {
		ps.PermittedLessonTypes = append(ps.PermittedLessonTypes, string(lt))
	}
	return ps
}

// NewTimerState модель таймера
func NewTimerState(s *session.Session) TimerState {
	return TimerState{
		State:        string(s.Timer.State()),
		Remaining:    s.Timer.Remaining(),
		Formatted:    s.Timer.FormattedTime(),
		WarningShown: s.Timer.WarningShown(),
	}
}

// NewFlowState модель мастера
func NewFlowState(f *flow.Flow) FlowState {
	current := f.Current()
	return FlowState{
		Current:    current,
		StepName:   current.Name(),
		Completed:  f.Completed(),
		CanProceed: f.CanProceed(),
	}
}
