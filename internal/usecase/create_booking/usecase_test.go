package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/integrations/loyaltycard"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/holdtimer"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/stay"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/stayconfig"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/logger"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/metrics"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/ptr"
)

var today = time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return today }

type idleScheduler struct{}

func (idleScheduler) Every(time.Duration, func()) func() { return func() {} }
func (idleScheduler) After(time.Duration, func()) func() { return func() {} }

func newUseCase(t *testing.T) (*UseCase, *session.Session) {
	t.Helper()
	log := logger.NewNop()
	var m *metrics.Metrics
	registry := session.NewRegistry(session.Deps{
		Clock:     fixedClock{},
		Skills:    stayconfig.New(),
		Validator: loyaltycard.NewStub(0, log),
		Metrics:   m,
		Logger:    log,
		Scheduler: func(*session.Session) holdtimer.Scheduler { return idleScheduler{} },
	}, time.Hour)
	t.Cleanup(registry.Close)

	return NewUseCase(registry, stayconfig.New(), log), registry.Create(nil)
}

func firstParticipant(s *session.Session) string {
	return s.Stay.Roster().Participants()[0].ID
}

func TestExecute_IndividualSlot(t *testing.T) {
	uc, s := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID:     s.ID,
		ParticipantID: firstParticipant(s),
		Type:          domain.LessonIndividual,
		SlotID:        "2025-12-02-0",
		Insurance:     true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	b := resp.Bookings[0]
	assert.Equal(t, "2025-12-02", b.Date)
	assert.Equal(t, 50.0, b.Price)
	assert.Equal(t, "9:00 - 11:00", b.Time)
	require.NotNil(t, b.Instructor)
	assert.Equal(t, "Marcin Kowalik", *b.Instructor)
	require.NotNil(t, b.Insurance)
	assert.Equal(t, domain.DefaultInsurancePrice, *b.Insurance)
	assert.Nil(t, resp.GroupBookingID)
	assert.Equal(t, 1, resp.CartSize)

	s.Lock()
	defer s.Unlock()
	assert.Equal(t, holdtimer.StateRunning, s.Timer.State())
	selected := s.Classes.SelectedSlot(domain.SlotKindIndividual)
	require.NotNil(t, selected)
	assert.Equal(t, "2025-12-02-0", selected.ID)
}

func TestExecute_GroupPackage(t *testing.T) {
	uc, s := newUseCase(t)

	s.Lock()
	end := today.AddDate(0, 0, 4)
	s.Stay.SetDate(&domain.DateOfStay{Start: today, End: &end})
	s.Unlock()

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID:     s.ID,
		ParticipantID: firstParticipant(s),
		Type:          domain.LessonGroup,
		GroupID:       1,
		Insurance:     true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 5)
	require.NotNil(t, resp.GroupBookingID)
	for _, b := range resp.Bookings {
		require.NotNil(t, b.GroupBookingID)
		assert.Equal(t, *resp.GroupBookingID, *b.GroupBookingID)
		assert.Equal(t, "9:30 - 10:30", b.Time)
	}
	assert.Equal(t, "2025-12-01", resp.Bookings[0].Date)
	assert.Equal(t, "2025-12-05", resp.Bookings[4].Date)
}

func TestExecute_GroupLongerThanStay(t *testing.T) {
	uc, s := newUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:     s.ID,
		ParticipantID: firstParticipant(s),
		Type:          domain.LessonGroup,
		GroupID:       1,
	})
	assert.ErrorIs(t, err, ErrGroupNotEligible)
}

func TestExecute_GroupWithoutInsuranceOffer(t *testing.T) {
	uc, s := newUseCase(t)

	s.Lock()
	end := today.AddDate(0, 0, 1)
	s.Stay.SetDate(&domain.DateOfStay{Start: today, End: &end})
	_, err := s.Stay.Roster().Update(firstParticipant(s), stay.ParticipantUpdate{ActivityType: ptr.Ptr(domain.ActivitySnowboard)})
	require.NoError(t, err)
	s.Unlock()

	_, err = uc.Execute(context.Background(), &Request{
		SessionID:     s.ID,
		ParticipantID: firstParticipant(s),
		Type:          domain.LessonGroup,
		GroupID:       5,
		Insurance:     true,
	})
	assert.ErrorIs(t, err, ErrInsuranceNotOffered)
}

func TestExecute_ChildRules(t *testing.T) {
	uc, s := newUseCase(t)

	s.Lock()
	s.SetCounts(1, 1)
	child := s.Stay.Roster().Participants()[1].ID
	s.Unlock()

	// без возраста и активности ребенок не может пойти в группу
	_, err := uc.Execute(context.Background(), &Request{
		SessionID:     s.ID,
		ParticipantID: child,
		Type:          domain.LessonGroup,
		GroupID:       2,
	})
	assert.ErrorIs(t, err, ErrLessonTypeNotPermitted)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID:     s.ID,
		ParticipantID: child,
		Type:          domain.LessonShared,
		SlotID:        "2025-12-03-1",
		ChildAddOn:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Bookings[0].ChildAddOn)
	assert.Equal(t, domain.DefaultChildAddOnPrice, *resp.Bookings[0].ChildAddOn)

	_, err = uc.Execute(context.Background(), &Request{
		SessionID:     s.ID,
		ParticipantID: firstParticipant(s),
		Type:          domain.LessonShared,
		SlotID:        "2025-12-03-1",
		ChildAddOn:    true,
	})
	assert.ErrorIs(t, err, ErrChildAddOnNotAllowed)
}

func TestExecute_Errors(t *testing.T) {
	uc, s := newUseCase(t)
	pid := firstParticipant(s)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"missing session", &Request{ParticipantID: pid, Type: domain.LessonIndividual, SlotID: "x"}, ErrInvalidInput},
		{"unknown lesson type", &Request{SessionID: s.ID, ParticipantID: pid, Type: "private", SlotID: "x"}, ErrInvalidInput},
		{"slot required", &Request{SessionID: s.ID, ParticipantID: pid, Type: domain.LessonShared}, ErrInvalidInput},
		{"group required", &Request{SessionID: s.ID, ParticipantID: pid, Type: domain.LessonGroup}, ErrInvalidInput},
		{"unknown session", &Request{SessionID: "nope", ParticipantID: pid, Type: domain.LessonIndividual, SlotID: "x"}, ErrSessionNotFound},
		{"unknown participant", &Request{SessionID: s.ID, ParticipantID: "nope", Type: domain.LessonIndividual, SlotID: "x"}, ErrParticipantNotFound},
		{"unknown slot", &Request{SessionID: s.ID, ParticipantID: pid, Type: domain.LessonIndividual, SlotID: "2020-01-01-0"}, ErrSlotNotFound},
		{"unknown group", &Request{SessionID: s.ID, ParticipantID: pid, Type: domain.LessonGroup, GroupID: 999}, ErrGroupNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Zero(t, s.Classes.Cart().Len())
}
