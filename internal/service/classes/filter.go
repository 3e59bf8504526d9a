package classes

import (
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
)

// FilterContext состояние вне набора предпочтений, влияющее на фильтрацию
type FilterContext struct {
	Date                     string   // выбранная дата YYYY-MM-DD, пусто - фильтр по дате пропускается
	PreferPreviousInstructor bool     // "szukaj wcześniej wybranego instruktora"
	BookedInstructors        []string // инструкторы из уже сделанных бронирований
}

// FilterSlots применяет цепочку фильтров к слотам.
// Фильтры конъюнктивны, порядок не влияет на результат.
func FilterSlots(slots []domain.Slot, prefs domain.FilterPreferences, fc FilterContext) []domain.Slot {
	result := make([]domain.Slot, 0, len(slots))
	for i := range slots {
		if matchSlot(&slots[i], prefs, fc) {
			result = append(result, slots[i])
		}
	}
	return result
}

func matchSlot(s *domain.Slot, prefs domain.FilterPreferences, fc FilterContext) bool {
	// (a) дата
	if fc.Date != "" && s.Date != fc.Date {
		return false
	}

	// (b) время дня
	if isSet(prefs.TimeOfDay) && string(s.TimeOfDay) != prefs.TimeOfDay {
		return false
	}

	// (c) ранее выбранный инструктор
	if fc.PreferPreviousInstructor {
		if !s.HasInstructor() {
			return false
		}
		if len(fc.BookedInstructors) > 0 && !contains(fc.BookedInstructors, s.Instructor.Name) {
			return false
		}
	}

	// (d) конкретный инструктор
	if prefs.FindSpecificInstructor && prefs.SelectedInstructor != nil && *prefs.SelectedInstructor != "" {
		if s.InstructorName() != *prefs.SelectedInstructor {
			return false
		}
	}

	// (e) длительность
	if isSet(prefs.Duration) && s.Duration != prefs.Duration {
		return false
	}

	// (f) пол инструктора; неизвестная метка фильтр не применяет
	if isSet(prefs.InstructorGender) {
		if gender, ok := domain.GenderFromLabel(prefs.InstructorGender); ok {
			if !s.HasInstructor() || s.Instructor.Gender != gender {
				return false
			}
		}
	}

	// (g) специалист по работе с детьми
	if prefs.ChildSpecialist && !s.ChildSpecialist {
		return false
	}

	return true
}

// EligibleGroups оставляет группы, которые помещаются в пребывание и совпадают по виду активности
func EligibleGroups(groups []domain.Group, stayDays int, activity domain.ActivityType) []domain.Group {
	result := make([]domain.Group, 0, len(groups))
	for i := range groups {
		g := &groups[i]
		if g.DayCount() > stayDays {
			continue
		}
		if g.Activity != activity {
			continue
		}
		result = append(result, *g)
	}
	return result
}

func isSet(option string) bool {
	return option != "" && option != domain.AnyOption
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
