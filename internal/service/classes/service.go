package classes

import (
	"fmt"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
)

var kinds = []domain.SlotKind{domain.SlotKindIndividual, domain.SlotKindShared}

// Service каталог занятий, фильтры, пагинация и корзина одной сессии
type Service struct {
	catalog *Catalog
	cart    *Cart
	logger  Logger

	preferences              map[domain.SlotKind]domain.FilterPreferences
	preferPreviousInstructor bool
	limits                   map[domain.SlotKind]int
	selectedSlots            map[domain.SlotKind]*domain.Slot
	selectedGroup            *domain.Group
	date                     string
}

// NewService создает сервис поверх сгенерированного каталога
func NewService(catalog *Catalog, cart *Cart, logger Logger) *Service {
	s := &Service{
		catalog: catalog,
		cart:    cart,
		logger:  logger,
	}
	s.Reset(domain.DefaultFilterPreferences(), false)
	return s
}

// Catalog возвращает каталог
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Cart возвращает корзину
func (s *Service) Cart() *Cart {
	return s.cart
}

// Preferences возвращает набор предпочтений
func (s *Service) Preferences(kind domain.SlotKind) (domain.FilterPreferences, error) {
	if !kind.IsValid() {
		return domain.FilterPreferences{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	p := s.preferences[kind]
	if p.SelectedInstructor != nil {
		name := *p.SelectedInstructor
		p.SelectedInstructor = &name
	}
	return p, nil
}

// SetPreferences заменяет набор предпочтений; пагинация набора возвращается к начальной
func (s *Service) SetPreferences(kind domain.SlotKind, prefs domain.FilterPreferences) error {
	if !kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	s.preferences[kind] = prefs.WithDefaults()
	s.limits[kind] = domain.DefaultSlotLimit
	s.logger.Info("SetPreferences: kind=%s timeOfDay=%s duration=%s gender=%s",
		kind, prefs.TimeOfDay, prefs.Duration, prefs.InstructorGender)
	return nil
}

// PreferPreviousInstructor возвращает флаг фильтра "ранее выбранный инструктор"
func (s *Service) PreferPreviousInstructor() bool {
	return s.preferPreviousInstructor
}

// SetPreferPreviousInstructor переключает фильтр "ранее выбранный инструктор"
func (s *Service) SetPreferPreviousInstructor(enabled bool) {
	s.preferPreviousInstructor = enabled
}

// Date возвращает выбранную дату
func (s *Service) Date() string {
	return s.date
}

// SetDate выбирает дату, по которой фильтруются слоты (пусто - без фильтра по дате)
func (s *Service) SetDate(date string) {
	if date != s.date {
		for _, k := range kinds {
			s.limits[k] = domain.DefaultSlotLimit
		}
	}
	s.date = date
}

// FilteredSlots возвращает все слоты, прошедшие фильтры набора kind
func (s *Service) FilteredSlots(kind domain.SlotKind) ([]domain.Slot, error) {
	prefs, err := s.Preferences(kind)
	if err != nil {
		return nil, err
	}
	return FilterSlots(s.catalog.Slots(), prefs, s.filterContext()), nil
}

// DisplayedSlots возвращает отфильтрованные слоты в пределах лимита отображения и общее количество
func (s *Service) DisplayedSlots(kind domain.SlotKind) ([]domain.Slot, int, error) {
	filtered, err := s.FilteredSlots(kind)
	if err != nil {
		return nil, 0, err
	}
	limit := s.limits[kind]
	if limit > len(filtered) {
		limit = len(filtered)
	}
	return filtered[:limit], len(filtered), nil
}

// Limit возвращает текущий лимит отображения
func (s *Service) Limit(kind domain.SlotKind) int {
	return s.limits[kind]
}

// LoadMore расширяет лимит до всех отфильтрованных слотов
func (s *Service) LoadMore(kind domain.SlotKind) error {
	filtered, err := s.FilteredSlots(kind)
	if err != nil {
		return err
	}
	s.limits[kind] = len(filtered)
	return nil
}

// EligibleGroups возвращает группы, доступные для длительности пребывания и вида активности
func (s *Service) EligibleGroups(stayDays int, activity domain.ActivityType) []domain.Group {
	return EligibleGroups(s.catalog.Groups(), stayDays, activity)
}

// SelectSlot запоминает выбранный слот набора kind
func (s *Service) SelectSlot(kind domain.SlotKind, slotID string) (*domain.Slot, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	slot, err := s.catalog.Slot(slotID)
	if err != nil {
		s.logger.Warn("SelectSlot: %v", err)
		return nil, err
	}
	s.selectedSlots[kind] = slot
	return slot, nil
}

// SelectedSlot возвращает выбранный слот набора kind или nil
func (s *Service) SelectedSlot(kind domain.SlotKind) *domain.Slot {
	return s.selectedSlots[kind]
}

// SelectGroup запоминает выбранную группу
func (s *Service) SelectGroup(groupID int) (*domain.Group, error) {
	g, err := s.catalog.Group(groupID)
	if err != nil {
		s.logger.Warn("SelectGroup: %v", err)
		return nil, err
	}
	s.selectedGroup = g
	return g, nil
}

// SelectedGroup возвращает выбранную группу или nil
func (s *Service) SelectedGroup() *domain.Group {
	return s.selectedGroup
}

// Reset восстанавливает сохраненные предпочтения поверх значений по умолчанию,
// сбрасывает выбранные слоты, группу и пагинацию. Каталог и корзина не меняются.
func (s *Service) Reset(saved domain.FilterPreferences, preferPreviousInstructor bool) {
	prefs := saved.WithDefaults()
	s.preferences = make(map[domain.SlotKind]domain.FilterPreferences, len(kinds))
	s.limits = make(map[domain.SlotKind]int, len(kinds))
	s.selectedSlots = make(map[domain.SlotKind]*domain.Slot, len(kinds))
	for _, k := range kinds {
		p := prefs
		if p.SelectedInstructor != nil {
			name := *p.SelectedInstructor
			p.SelectedInstructor = &name
		}
		s.preferences[k] = p
		s.limits[k] = domain.DefaultSlotLimit
	}
	s.preferPreviousInstructor = preferPreviousInstructor
	s.selectedGroup = nil
	s.date = ""
	s.logger.Info("ResetClasses: preferences restored, selections cleared")
}

func (s *Service) filterContext() FilterContext {
	fc := FilterContext{
		Date:                     s.date,
		PreferPreviousInstructor: s.preferPreviousInstructor,
	}
	if s.preferPreviousInstructor {
		fc.BookedInstructors = s.cart.BookedInstructors()
	}
	return fc
}
