package get_available_slots

import (
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/format"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/ptr"
)

// toSlots конвертирует слоты каталога в модель ответа
func toSlots(slots []domain.Slot) []Slot {
	result := make([]Slot, 0, len(slots))
	for i := range slots {
		result = append(result, toSlot(&slots[i]))
	}
	return result
}

func toSlot(s *domain.Slot) Slot {
	slot := Slot{
		ID:              s.ID,
		Date:            s.Date,
		Time:            s.Time.String(),
		Duration:        s.Duration,
		Price:           s.Price,
		PriceLabel:      format.Price(s.Price),
		TimeOfDay:       string(s.TimeOfDay),
		IsHappyHours:    s.IsHappyHours,
		ChildSpecialist: s.ChildSpecialist,
	}
	if s.HasInstructor() {
		slot.Instructor = ptr.Ptr(s.Instructor.Name)
		slot.InstructorGender = ptr.Ptr(string(s.Instructor.Gender))
	}
	return slot
}
