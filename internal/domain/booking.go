package domain

import "time"

// Insurance insurance selection attached to a booking
// For group bookings Price is per session date, otherwise per booking
type Insurance struct {
	Enabled bool
	Price   float64
}

// AddOn extra service for a child (e.g. lunch and care between lessons)
type AddOn struct {
	Code  string
	Name  string
	Price float64
}

// Booking a participant's commitment to a slot or a group, stored in the cart
type Booking struct {
	ID             string
	ParticipantID  string
	Date           string // YYYY-MM-DD of the lesson
	Type           LessonType
	Slot           *Slot  // individual and shared bookings
	Group          *Group // group bookings
	Instructor     *Instructor
	Insurance      *Insurance
	ChildAddOn     *AddOn
	GroupBookingID string // shared by all per-date lines of one group purchase
	CreatedAt      time.Time
}

// IsGroup returns true for group package lines
func (b *Booking) IsGroup() bool {
	return b.Type == LessonGroup
}

// IsHappyHours returns true if the referenced slot or group is sold in happy hours
func (b *Booking) IsHappyHours() bool {
	if b.Slot != nil && b.Slot.IsHappyHours {
		return true
	}
	return b.Group != nil && b.Group.IsHappyHours
}

// HasInsurance returns true if insurance is selected for the booking
func (b *Booking) HasInsurance() bool {
	return b.Insurance != nil && b.Insurance.Enabled
}

// HasChildAddOn returns true if a child add-on is selected
func (b *Booking) HasChildAddOn() bool {
	return b.ChildAddOn != nil
}

// InstructorName returns the resolved instructor's name or an empty string
func (b *Booking) InstructorName() string {
	if b.Instructor != nil && b.Instructor.Name != "" {
		return b.Instructor.Name
	}
	if b.Slot != nil {
		return b.Slot.InstructorName()
	}
	return ""
}
