package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/integrations/loyaltycard"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/classes"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/holdtimer"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/stayconfig"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/logger"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/metrics"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC) }

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

func TestExecute_GroupCascade(t *testing.T) {
	uc, s := newUseCase(t)
	pid := s.Stay.Roster().Participants()[0].ID

	group, err := s.Classes.Catalog().Group(2)
	require.NoError(t, err)
	lines, err := s.Classes.Cart().AddGroup(classes.GroupBookingRequest{ParticipantID: pid, Group: group})
	require.NoError(t, err)
	require.Len(t, lines, 3)

	slot, err := s.Classes.Catalog().Slot("2025-12-10-0")
	require.NoError(t, err)
	_, err = s.Classes.Cart().Add(domain.Booking{ParticipantID: pid, Type: domain.LessonIndividual, Slot: slot})
	require.NoError(t, err)

	// удаление любой строки пакета удаляет весь пакет
	resp, err := uc.Execute(context.Background(), &Request{SessionID: s.ID, BookingID: lines[1].ID})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Removed)
	assert.Equal(t, 1, resp.CartSize)
}

func TestExecute_MissingBookingIsNoop(t *testing.T) {
	uc, s := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: s.ID, BookingID: "MISSING1"})
	require.NoError(t, err)
	assert.Zero(t, resp.Removed)
	assert.Zero(t, resp.CartSize)
}

func TestExecute_Errors(t *testing.T) {
	uc, s := newUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{SessionID: s.ID})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SessionID: "nope", BookingID: "X"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
