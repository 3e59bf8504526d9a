package classes

import (
	"fmt"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
)

// GroupBookingRequest покупка группового пакета одним участником
type GroupBookingRequest struct {
	ParticipantID string
	Group         *domain.Group
	Insurance     *domain.Insurance // Price - цена за день занятий
	ChildAddOn    *domain.AddOn
}

// Cart корзина бронирований сессии
type Cart struct {
	bookings []*domain.Booking
	ids      IDGenerator
	clock    TimeProvider
	metrics  Metrics
	logger   Logger
}

// NewCart создает пустую корзину
func NewCart(ids IDGenerator, clock TimeProvider, metrics Metrics, logger Logger) *Cart {
	return &Cart{
		ids:     ids,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

// Add добавляет бронирование слота, присваивая новый ID.
// Инструктор слота поднимается в поле Instructor бронирования.
func (c *Cart) Add(b domain.Booking) (*domain.Booking, error) {
	if b.ParticipantID == "" {
		return nil, fmt.Errorf("%w: participant id is required", ErrInvalidBooking)
	}
	if !b.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown lesson type %q", ErrInvalidBooking, b.Type)
	}
	if b.Type != domain.LessonGroup && b.Slot == nil {
		return nil, fmt.Errorf("%w: %s booking requires a slot", ErrInvalidBooking, b.Type)
	}
	if b.Type == domain.LessonGroup && b.Group == nil {
		return nil, fmt.Errorf("%w: group booking requires a group", ErrInvalidBooking)
	}

	booking := b
	booking.ID = c.ids.New()
	booking.CreatedAt = c.clock.Now()
	if booking.Instructor == nil && booking.Slot != nil && booking.Slot.HasInstructor() {
		in := *booking.Slot.Instructor
		booking.Instructor = &in
	}
	if booking.Date == "" && booking.Slot != nil {
		booking.Date = booking.Slot.Date
	}

	c.bookings = append(c.bookings, &booking)
	c.metrics.BookingAdded(string(booking.Type))
	c.logger.Info("AddBooking: booking id=%s added (participant=%s, type=%s, date=%s)",
		booking.ID, booking.ParticipantID, booking.Type, booking.Date)

	return clone(&booking), nil
}

// AddGroup добавляет по одной строке на каждую дату занятий группы с общим groupBookingId
func (c *Cart) AddGroup(req GroupBookingRequest) ([]*domain.Booking, error) {
	if req.Group == nil {
		return nil, fmt.Errorf("%w: group booking requires a group", ErrInvalidBooking)
	}
	dates := req.Group.SessionDates()
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: group id=%d has no sessions", ErrInvalidBooking, req.Group.ID)
	}

	groupBookingID := c.ids.New()
	result := make([]*domain.Booking, 0, len(dates))
	for _, date := range dates {
		b := domain.Booking{
			ParticipantID:  req.ParticipantID,
			Date:           date,
			Type:           domain.LessonGroup,
			Group:          req.Group,
			Insurance:      req.Insurance,
			ChildAddOn:     req.ChildAddOn,
			GroupBookingID: groupBookingID,
		}
		added, err := c.Add(b)
		if err != nil {
			c.Remove(groupBookingLineID(result))
			return nil, err
		}
		result = append(result, added)
	}

	c.logger.Info("AddGroupBooking: group id=%d booked for participant=%s as %s (%d dates)",
		req.Group.ID, req.ParticipantID, groupBookingID, len(dates))
	return result, nil
}

// Remove удаляет бронирование; бронирование с groupBookingId удаляется вместе со всем пакетом.
// Отсутствующий ID не является ошибкой. Возвращает количество удаленных строк.
func (c *Cart) Remove(bookingID string) int {
	if bookingID == "" {
		return 0
	}

	var target *domain.Booking
	for _, b := range c.bookings {
		if b.ID == bookingID {
			target = b
			break
		}
	}
	if target == nil {
		c.logger.Warn("RemoveBooking: booking id=%s not found", bookingID)
		return 0
	}

	kept := c.bookings[:0]
	removed := 0
	for _, b := range c.bookings {
		sameGroup := target.GroupBookingID != "" && b.GroupBookingID == target.GroupBookingID
		if b.ID == target.ID || sameGroup {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(c.bookings); i++ {
		c.bookings[i] = nil
	}
	c.bookings = kept

	c.metrics.BookingsRemoved(removed)
	c.logger.Info("RemoveBooking: removed %d bookings (id=%s, groupBookingId=%s)", removed, bookingID, target.GroupBookingID)
	return removed
}

// Clear удаляет все бронирования всех участников
func (c *Cart) Clear() int {
	n := len(c.bookings)
	c.bookings = nil
	if n > 0 {
		c.metrics.BookingsRemoved(n)
	}
	c.logger.Info("ClearCart: %d bookings removed", n)
	return n
}

// Bookings возвращает снимок корзины в порядке добавления
func (c *Cart) Bookings() []*domain.Booking {
	result := make([]*domain.Booking, len(c.bookings))
	for i, b := range c.bookings {
		result[i] = clone(b)
	}
	return result
}

// Len количество строк в корзине
func (c *Cart) Len() int {
	return len(c.bookings)
}

// BookingsFor возвращает бронирования участника на дату
func (c *Cart) BookingsFor(participantID, date string) []*domain.Booking {
	result := make([]*domain.Booking, 0)
	for _, b := range c.bookings {
		if b.ParticipantID == participantID && b.Date == date {
			result = append(result, clone(b))
		}
	}
	return result
}

// HasChildAddOns проверяет, выбрал ли кто-нибудь дополнительную опцию для ребенка
func (c *Cart) HasChildAddOns() bool {
	for _, b := range c.bookings {
		if b.HasChildAddOn() {
			return true
		}
	}
	return false
}

// BookedInstructors возвращает инструкторов из бронирований без повторов
func (c *Cart) BookedInstructors() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, b := range c.bookings {
		name := b.InstructorName()
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// RemoveParticipant удаляет все бронирования участника (участник выпал из списка)
func (c *Cart) RemoveParticipant(participantID string) int {
	kept := c.bookings[:0]
	removed := 0
	for _, b := range c.bookings {
		if b.ParticipantID == participantID {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(c.bookings); i++ {
		c.bookings[i] = nil
	}
	c.bookings = kept
	if removed > 0 {
		c.metrics.BookingsRemoved(removed)
		c.logger.Info("RemoveParticipantBookings: removed %d bookings of participant=%s", removed, participantID)
	}
	return removed
}

func groupBookingLineID(lines []*domain.Booking) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[0].ID
}

func clone(b *domain.Booking) *domain.Booking {
	c := *b
	return &c
}
