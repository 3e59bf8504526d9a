package get_eligible_groups

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/pricing"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/format"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/ptr"
)

// UseCase use case для получения групп, подходящих участнику и длительности пребывания
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

// Execute выполняет use case получения групп
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetEligibleGroups: session=%s, participant=%s", req.SessionID, req.ParticipantID)

	if req.SessionID == "" || req.ParticipantID == "" {
		uc.logger.Warn("GetEligibleGroups: validation failed: session and participant are required")
		return nil, fmt.Errorf("%w: sessionID and participantID are required", ErrInvalidInput)
	}

	s, err := uc.sessions.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			uc.logger.Warn("GetEligibleGroups: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("GetEligibleGroups: failed to get session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	s.Lock()
	defer s.Unlock()

	participant, err := s.Stay.Roster().Get(req.ParticipantID)
	if err != nil {
		uc.logger.Warn("GetEligibleGroups: participant %s not found in session %s", req.ParticipantID, req.SessionID)
		return nil, ErrParticipantNotFound
	}

	activity := participant.ActivityType
	if activity == "" {
		activity = domain.ActivitySki
	}

	resp := &Response{
		ParticipantID: participant.ID,
		Activity:      activity,
		StayDays:      s.Stay.DurationDays(),
		Permitted:     uc.policy.IsLessonTypePermitted(participant, domain.LessonGroup),
		Groups:        []Group{},
	}
	if !resp.Permitted {
		uc.logger.Info("GetEligibleGroups: group lessons are not permitted for participant %s", participant.ID)
		return resp, nil
	}

	cfg := s.PricingConfig()
	for _, g := range s.Classes.EligibleGroups(resp.StayDays, activity) {
		resp.Groups = append(resp.Groups, toGroup(g, cfg))
	}
	if selected := s.Classes.SelectedGroup(); selected != nil {
		resp.SelectedGroupID = ptr.Ptr(selected.ID)
	}

	uc.logger.Info("GetEligibleGroups: session=%s, participant=%s, activity=%s, days=%d: %d groups",
		req.SessionID, participant.ID, activity, resp.StayDays, len(resp.Groups))

	return resp, nil
}

func toGroup(g domain.Group, cfg domain.PricingConfig) Group {
	price := pricing.BookingPrice(&domain.Booking{Type: domain.LessonGroup, Group: &g}, cfg)
	group := Group{
		ID:           g.ID,
		Name:         g.Name,
		Activity:     g.Activity,
		Description:  g.Description,
		Schedule:     g.Schedule,
		Dates:        g.SessionDates(),
		DayCount:     g.DayCount(),
		Price:        price,
		PriceLabel:   format.Price(price),
		IsHappyHours: g.IsHappyHours,
	}
	if g.Insurance != nil {
		perDay := g.Insurance.PricePerDay
		if perDay <= 0 {
			perDay = cfg.GroupInsurancePerDay
		}
		group.InsurancePerDay = ptr.Ptr(perDay)
	}
	return group
}
