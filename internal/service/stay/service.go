package stay

import (
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
)

// Service состояние пребывания: дата и количество участников.
// Каждое изменение количества синхронизирует список участников.
// Ограничение adults+children <= 12 проверяется на входе (HTTP), сервис доверяет значениям.
type Service struct {
	stay   domain.Stay
	roster *Roster
	logger Logger
}

// NewService создает пребывание со значениями по умолчанию и синхронизирует список участников
func NewService(ids IDGenerator, catalog SkillCatalog, logger Logger) *Service {
	s := &Service{
		stay:   domain.NewStay(),
		roster: NewRoster(ids, catalog, logger),
		logger: logger,
	}
	s.roster.Sync(s.stay.Adults, s.stay.Children)
	return s
}

// Stay возвращает снимок пребывания
func (s *Service) Stay() domain.Stay {
	st := s.stay
	if st.Date != nil {
		d := *st.Date
		if d.End != nil {
			end := *d.End
			d.End = &end
		}
		st.Date = &d
	}
	return st
}

// Roster возвращает список участников
func (s *Service) Roster() *Roster {
	return s.roster
}

// SetAdults меняет количество взрослых
func (s *Service) SetAdults(n int) {
	s.SetCounts(n, s.stay.Children)
}

// SetChildren меняет количество детей
func (s *Service) SetChildren(n int) {
	s.SetCounts(s.stay.Adults, n)
}

// SetCounts меняет оба количества и синхронизирует список один раз
func (s *Service) SetCounts(adults, children int) {
	if adults == s.stay.Adults && children == s.stay.Children {
		return
	}
	s.stay.Adults = adults
	s.stay.Children = children
	s.roster.Sync(adults, children)
	s.logger.Info("Stay.SetCounts: adults=%d, children=%d, participants=%d", adults, children, s.roster.Len())
}

// SetDate устанавливает дату или диапазон пребывания (nil - сброс)
func (s *Service) SetDate(date *domain.DateOfStay) {
	s.stay.Date = date
}

// DurationDays длительность пребывания в днях
func (s *Service) DurationDays() int {
	return s.stay.DurationDays()
}

// Reset возвращает пребывание к значениям по умолчанию
func (s *Service) Reset() {
	s.stay.Date = nil
	s.SetCounts(domain.DefaultAdults, domain.DefaultChildren)
	s.logger.Info("Stay.Reset: stay reset to defaults")
}
