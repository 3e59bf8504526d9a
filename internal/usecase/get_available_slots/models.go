package get_available_slots

import "github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"

// Request модель запроса на получение слотов
type Request struct {
	SessionID string          // ID сессии бронирования
	Kind      domain.SlotKind // individual или shared
	Date      *string         // Дата YYYY-MM-DD; nil - оставить выбранную, "" - сбросить
	ShowAll   bool            // Показать весь отфильтрованный список ("pokaż więcej")
}

// Response модель ответа со списком слотов
type Response struct {
	Kind           domain.SlotKind
	Date           string // Выбранная дата, пустая если не выбрана
	Slots          []Slot // Отображаемая страница
	Total          int    // Длина отфильтрованного списка
	Limit          int
	HasMore        bool
	SelectedSlotID *string
}

// Slot модель слота
type Slot struct {
	ID               string
	Date             string
	Time             string // "9:00 - 11:00"
	Duration         string // "2h"
	Price            float64
	PriceLabel       string // "50,00"
	Instructor       *string
	InstructorGender *string
	TimeOfDay        string
	IsHappyHours     bool
	ChildSpecialist  bool
}
