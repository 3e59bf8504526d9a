package get_cart

import (
	"time"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/pricing"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/format"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/ptr"
)

// CartResponse HTTP response model
type CartResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// BookingResponse строка корзины
type BookingResponse struct {
	ID             string   `json:"id"`
	ParticipantID  string   `json:"participantId"`
	Date           string   `json:"date"`
	Type           string   `json:"type"`
	Time           string   `json:"time,omitempty"`
	SlotID         *string  `json:"slotId,omitempty"`
	GroupID        *int     `json:"groupId,omitempty"`
	GroupName      *string  `json:"groupName,omitempty"`
	Instructor     *string  `json:"instructor,omitempty"`
	Price          float64  `json:"price"`
	PriceLabel     string   `json:"priceLabel"`
	IsHappyHours   bool     `json:"isHappyHours"`
	Insurance      *float64 `json:"insurance,omitempty"`
	ChildAddOn     *float64 `json:"childAddOn,omitempty"`
	GroupBookingID *string  `json:"groupBookingId,omitempty"`
	CreatedAt      string   `json:"createdAt"`
}

func toBookingResponse(b *domain.Booking, cfg domain.PricingConfig) BookingResponse {
	price := pricing.BookingPrice(b, cfg)
	resp := BookingResponse{
		ID:            b.ID,
		ParticipantID: b.ParticipantID,
		Date:          b.Date,
		Type:          string(b.Type),
		Price:         price,
		PriceLabel:    format.Price(price),
		IsHappyHours:  b.IsHappyHours(),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
	if b.Slot != nil {
		resp.SlotID = ptr.Ptr(b.Slot.ID)
		resp.Time = b.Slot.Time.String()
	}
	if b.Group != nil {
		resp.GroupID = ptr.Ptr(b.Group.ID)
		resp.GroupName = ptr.Ptr(b.Group.Name)
		if sessions := b.Group.SessionsOn(b.Date); len(sessions) > 0 {
			resp.Time = sessions[0].Time.String()
		}
	}
	if name := b.InstructorName(); name != "" {
		resp.Instructor = ptr.Ptr(name)
	}
	if b.HasInsurance() {
		resp.Insurance = ptr.Ptr(b.Insurance.Price)
	}
	if b.HasChildAddOn() {
		resp.ChildAddOn = ptr.Ptr(b.ChildAddOn.Price)
	}
	if b.GroupBookingID != "" {
		resp.GroupBookingID = ptr.Ptr(b.GroupBookingID)
	}
	return resp
}
