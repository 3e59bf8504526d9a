package get_order_summary

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

	return NewUseCase(registry, log), registry.Create(nil)
}

func TestExecute_FirstLevelDiscount(t *testing.T) {
	uc, s := newUseCase(t)

	pid := s.Stay.Roster().Participants()[0].ID
	_, err := s.Stay.Roster().Update(pid, stay.ParticipantUpdate{Name: ptr.Ptr("Jan"), Surname: ptr.Ptr("Kowalski")})
	require.NoError(t, err)
	end := today.AddDate(0, 0, 4)
	s.Stay.SetDate(&domain.DateOfStay{Start: today, End: &end})

	// 5 dni po 2h = 10h, pierwszy próg
	for _, id := range []string{"2025-12-01-0", "2025-12-02-0", "2025-12-03-0", "2025-12-04-0", "2025-12-05-0"} {
		slot, err := s.Classes.Catalog().Slot(id)
		require.NoError(t, err)
		_, err = s.Classes.Cart().Add(domain.Booking{ParticipantID: pid, Type: domain.LessonIndividual, Slot: slot})
		require.NoError(t, err)
	}

	resp, err := uc.Execute(context.Background(), &Request{SessionID: s.ID})
	require.NoError(t, err)

	assert.Equal(t, "1 grudnia - 5 grudnia (4dni)", resp.StayLabel)
	assert.Equal(t, 5, resp.Bookings)
	assert.Equal(t, 250.0, resp.ClassesSubtotal.Value)
	assert.Equal(t, "250,00", resp.ClassesSubtotal.Label)
	assert.Equal(t, 10.0, resp.TotalHours)
	assert.Equal(t, "first_level", resp.Discount.Tier)
	assert.Equal(t, domain.FirstLevelDiscount, resp.Discount.Percent)
	assert.Equal(t, 14.25, resp.Discount.Amount.Value)
	assert.Equal(t, 235.75, resp.Total.Value)
	assert.Equal(t, "235,75", resp.Total.Label)
	assert.Zero(t, resp.HoursToFirstLevel)
	assert.Equal(t, 10.0, resp.HoursToSecondLevel)
	assert.Equal(t, domain.Currency, resp.Currency)

	require.Len(t, resp.Participants, 1)
	assert.Equal(t, "Jan Kowalski", resp.Participants[0].Name)
	assert.Equal(t, 250.0, resp.Participants[0].Total.Value)
}

func TestExecute_EmptyCart(t *testing.T) {
	uc, s := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: s.ID})
	require.NoError(t, err)
	assert.Empty(t, resp.StayLabel)
	assert.Zero(t, resp.Total.Value)
	assert.Equal(t, "none", resp.Discount.Tier)
	assert.Nil(t, resp.LoyaltyCard.Valid)
	assert.False(t, resp.LoyaltyCard.Loading)
}

func TestExecute_UnknownSession(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "nope"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
