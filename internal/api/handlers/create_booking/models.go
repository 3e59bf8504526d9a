package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ParticipantID string `json:"participantId"`
	Type          string `json:"type"`              // "individual", "shared", "group"
	SlotID        string `json:"slotId,omitempty"`  // для individual и shared
	GroupID       int    `json:"groupId,omitempty"` // для group
	Insurance     bool   `json:"insurance"`
	ChildAddOn    bool   `json:"childAddOn"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Bookings       []BookingResponse `json:"bookings"`
	GroupBookingID *string           `json:"groupBookingId,omitempty"`
	CartSize       int               `json:"cartSize"`
	HoldRemaining  int               `json:"holdRemaining"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             string   `json:"id"`
	ParticipantID  string   `json:"participantId"`
	Date           string   `json:"date"`
	Type           string   `json:"type"`
	SlotID         *string  `json:"slotId,omitempty"`
	GroupID        *int     `json:"groupId,omitempty"`
	Time           string   `json:"time"`
	Instructor     *string  `json:"instructor,omitempty"`
	Price          float64  `json:"price"`
	Insurance      *float64 `json:"insurance,omitempty"`
	ChildAddOn     *float64 `json:"childAddOn,omitempty"`
	GroupBookingID *string  `json:"groupBookingId,omitempty"`
	CreatedAt      string   `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(sessionID string) *createBooking.Request {
	return &createBooking.Request{
		SessionID:     sessionID,
		ParticipantID: r.ParticipantID,
		Type:          domain.LessonType(r.Type),
		SlotID:        r.SlotID,
		GroupID:       r.GroupID,
		Insurance:     r.Insurance,
		ChildAddOn:    r.ChildAddOn,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	bookings := make([]BookingResponse, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		bookings = append(bookings, BookingResponse{
			ID:             b.ID,
			ParticipantID:  b.ParticipantID,
			Date:           b.Date,
			Type:           string(b.Type),
			SlotID:         b.SlotID,
			GroupID:        b.GroupID,
			Time:           b.Time,
			Instructor:     b.Instructor,
			Price:          b.Price,
			Insurance:      b.Insurance,
			ChildAddOn:     b.ChildAddOn,
			GroupBookingID: b.GroupBookingID,
			CreatedAt:      b.CreatedAt.Format(time.RFC3339),
		})
	}

	return &CreateBookingResponse{
		Bookings:       bookings,
		GroupBookingID: resp.GroupBookingID,
		CartSize:       resp.CartSize,
		HoldRemaining:  resp.HoldRemaining,
	}
}
