package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
)

// Код и название дополнительной опции ребенка
const (
	ChildAddOnCode = "lunch_and_care"
	ChildAddOnName = "Obiad i opieka między zajęciami"
)

// Request модель запроса на добавление занятия в корзину
type Request struct {
	SessionID     string            // ID сессии бронирования
	ParticipantID string            // ID участника
	Type          domain.LessonType // individual, shared или group
	SlotID        string            // ID слота (individual, shared)
	GroupID       int               // ID группы (group)
	Insurance     bool              // Добавить страховку
	ChildAddOn    bool              // Добавить опцию ребенка
}

// Response модель ответа с добавленными строками корзины
type Response struct {
	Bookings       []Booking // Для группы - по строке на каждую дату
	GroupBookingID *string
	CartSize       int
	HoldRemaining  int // Секунды до истечения удержания
}

// Booking модель строки корзины
type Booking struct {
	ID             string
	ParticipantID  string
	Date           string
	Type           domain.LessonType
	SlotID         *string
	GroupID        *int
	Time           string
	Instructor     *string
	Price          float64
	Insurance      *float64
	ChildAddOn     *float64
	GroupBookingID *string
	CreatedAt      time.Time
}
