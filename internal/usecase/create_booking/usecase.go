package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/i18n"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/classes"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/pricing"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/ptr"
)

// UseCase use case для добавления занятия в корзину сессии
type UseCase struct {
	sessions SessionRegistry
	policy   LessonPolicy
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionRegistry, policy LessonPolicy, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		policy:   policy,
		logger:   logger,
	}
}

// Execute выполняет use case добавления занятия.
// Первое добавление запускает таймер удержания брони.
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: session=%s, participant=%s, type=%s, slot=%q, group=%d",
		req.SessionID, req.ParticipantID, req.Type, req.SlotID, req.GroupID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию
	s, err := uc.sessions.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			uc.logger.Warn("CreateBooking: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("CreateBooking: failed to get session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	s.Lock()
	defer s.Unlock()

	// 3. Участник и доступный ему тип занятия
	participant, err := s.Stay.Roster().Get(req.ParticipantID)
	if err != nil {
		uc.logger.Warn("CreateBooking: participant %s not found in session %s", req.ParticipantID, req.SessionID)
		return nil, ErrParticipantNotFound
	}
	if !uc.policy.IsLessonTypePermitted(participant, req.Type) {
		uc.logger.Warn("CreateBooking: lesson type %s is not permitted for participant %s", req.Type, participant.ID)
		return nil, ErrLessonTypeNotPermitted
	}
	if err := validateChildAddOn(req, participant); err != nil {
		uc.logger.Warn("CreateBooking: %v (participant %s)", err, participant.ID)
		return nil, err
	}

	// 4. Добавляем в корзину
	var added []*domain.Booking
	if req.Type == domain.LessonGroup {
		added, err = uc.addGroup(s, req, participant)
	} else {
		added, err = uc.addSlot(s, req)
	}
	if err != nil {
		return nil, err
	}

	// 5. Удержание брони и уведомление
	s.Timer.Start()
	s.Notifier.ShowSimpleMessage(s.Text(i18n.KeyBookingAdded), domain.SeveritySuccess)

	resp := &Response{
		Bookings:      make([]Booking, 0, len(added)),
		CartSize:      s.Classes.Cart().Len(),
		HoldRemaining: s.Timer.Remaining(),
	}
	cfg := s.PricingConfig()
	for _, b := range added {
		resp.Bookings = append(resp.Bookings, toBooking(b, cfg))
	}
	if len(added) > 0 && added[0].GroupBookingID != "" {
		resp.GroupBookingID = ptr.Ptr(added[0].GroupBookingID)
	}

	uc.logger.Info("CreateBooking: session=%s, participant=%s: %d lines added, cart size %d",
		req.SessionID, participant.ID, len(added), resp.CartSize)

	return resp, nil
}

func (uc *UseCase) addSlot(s *session.Session, req *Request) ([]*domain.Booking, error) {
	slot, err := s.Classes.Catalog().Slot(req.SlotID)
	if err != nil {
		if errors.Is(err, classes.ErrSlotNotFound) {
			uc.logger.Warn("CreateBooking: slot %s not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateBooking: failed to get slot %s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	cfg := s.PricingConfig()
	b := domain.Booking{
		ParticipantID: req.ParticipantID,
		Type:          req.Type,
		Slot:          slot,
	}
	if req.Insurance {
		b.Insurance = &domain.Insurance{Enabled: true, Price: cfg.InsurancePrice}
	}
	if req.ChildAddOn {
		b.ChildAddOn = childAddOn(cfg)
	}

	added, err := s.Classes.Cart().Add(b)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to add slot %s: %v", slot.ID, err)
		return nil, fmt.Errorf("%w: failed to add booking: %v", ErrInternal, err)
	}

	kind := domain.SlotKind(req.Type)
	if _, err := s.Classes.SelectSlot(kind, slot.ID); err != nil {
		uc.logger.Warn("CreateBooking: failed to select slot %s: %v", slot.ID, err)
	}

	return []*domain.Booking{added}, nil
}

func (uc *UseCase) addGroup(s *session.Session, req *Request, p *domain.Participant) ([]*domain.Booking, error) {
	group, err := s.Classes.Catalog().Group(req.GroupID)
	if err != nil {
		if errors.Is(err, classes.ErrGroupNotFound) {
			uc.logger.Warn("CreateBooking: group %d not found", req.GroupID)
			return nil, ErrGroupNotFound
		}
		uc.logger.Error("CreateBooking: failed to get group %d: %v", req.GroupID, err)
		return nil, fmt.Errorf("%w: failed to get group: %v", ErrInternal, err)
	}

	if err := validateGroupEligible(group, p, s.Stay.DurationDays()); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	cfg := s.PricingConfig()
	groupReq := classes.GroupBookingRequest{
		ParticipantID: p.ID,
		Group:         group,
	}
	if req.Insurance {
		if group.Insurance == nil {
			uc.logger.Warn("CreateBooking: group %d is sold without insurance", group.ID)
			return nil, ErrInsuranceNotOffered
		}
		groupReq.Insurance = &domain.Insurance{Enabled: true, Price: group.Insurance.PricePerDay}
	}
	if req.ChildAddOn {
		groupReq.ChildAddOn = childAddOn(cfg)
	}

	added, err := s.Classes.Cart().AddGroup(groupReq)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to add group %d: %v", group.ID, err)
		return nil, fmt.Errorf("%w: failed to add group booking: %v", ErrInternal, err)
	}

	if _, err := s.Classes.SelectGroup(group.ID); err != nil {
		uc.logger.Warn("CreateBooking: failed to select group %d: %v", group.ID, err)
	}

	return added, nil
}

func childAddOn(cfg domain.PricingConfig) *domain.AddOn {
	return &domain.AddOn{Code: ChildAddOnCode, Name: ChildAddOnName, Price: cfg.ChildAddOnPrice}
}

func toBooking(b *domain.Booking, cfg domain.PricingConfig) Booking {
	resp := Booking{
		ID:            b.ID,
		ParticipantID: b.ParticipantID,
		Date:          b.Date,
		Type:          b.Type,
		Price:         pricing.BookingPrice(b, cfg),
		CreatedAt:     b.CreatedAt,
	}
	if b.Slot != nil {
		resp.SlotID = ptr.Ptr(b.Slot.ID)
		resp.Time = b.Slot.Time.String()
	}
	if b.Group != nil {
		resp.GroupID = ptr.Ptr(b.Group.ID)
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
