package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/notifications"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/infra/storage/preferences"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/flow"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/holdtimer"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/stayconfig"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/logger"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeValidator struct{}

func (fakeValidator) Validate(_ context.Context, cardNumber string) (bool, error) {
	return cardNumber == "4111111111111111", nil
}

type nopMetrics struct {
	opened  int
	evicted int
	closed  int
}

func (m *nopMetrics) BookingAdded(string)  {}
func (m *nopMetrics) BookingsRemoved(int)  {}
func (m *nopMetrics) LoyaltyCheck(string)  {}
func (m *nopMetrics) HoldEvent(string)     {}
func (m *nopMetrics) SessionOpened()       { m.opened++ }
func (m *nopMetrics) SessionClosed(e bool) {
	if e {
		m.evicted++
		return
	}
	m.closed++
}

// tickScheduler запускает тики таймера только по команде теста
type tickScheduler struct {
	ticks []func()
}

func (s *tickScheduler) Every(_ time.Duration, fn func()) func() {
	idx := len(s.ticks)
	s.ticks = append(s.ticks, fn)
	return func() { s.ticks[idx] = nil }
}

func (s *tickScheduler) After(time.Duration, func()) func() {
	return func() {}
}

func (s *tickScheduler) advance(sess *Session, n int) {
	for i := 0; i < n; i++ {
		sess.Lock()
		for _, fn := range s.ticks {
			if fn != nil {
				fn()
			}
		}
		sess.Unlock()
	}
}

func newTestRegistry(t *testing.T) (*Registry, *fakeClock, *nopMetrics, *tickScheduler) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)}
	m := &nopMetrics{}
	sched := &tickScheduler{}
	r := NewRegistry(Deps{
		Clock:     clock,
		Skills:    stayconfig.New(),
		Validator: fakeValidator{},
		Metrics:   m,
		Logger:    logger.NewNop(),
		Hold:      holdtimer.Config{DurationSeconds: 3, WarningSeconds: 1, ExtensionSeconds: 2},
		Scheduler: func(*Session) holdtimer.Scheduler { return sched },
	}, time.Hour)
	return r, clock, m, sched
}

func TestRegistry_CreateGetDelete(t *testing.T) {
	r, _, m, _ := newTestRegistry(t)

	s := r.Create(nil)
	require.NotEmpty(t, s.ID)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 1, m.opened)

	got, err := r.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, r.Delete(s.ID))
	_, err = r.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, r.Delete(s.ID), ErrSessionNotFound)
	assert.Equal(t, 1, m.closed)
}

func TestRegistry_EvictIdle(t *testing.T) {
	r, clock, m, _ := newTestRegistry(t)

	idle := r.Create(nil)
	clock.add(30 * time.Minute)
	active := r.Create(nil)
	clock.add(40 * time.Minute)

	assert.Equal(t, 1, r.EvictIdle())
	_, err := r.Get(idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = r.Get(active.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, m.evicted)
}

func TestSession_SeedPreferences(t *testing.T) {
	r, _, _, _ := newTestRegistry(t)

	seed := preferences.NewMemoryStore()
	seed.Set(preferences.KeyLocale, "en")
	seed.Set(preferences.KeySearchPrevInstructor, "true")
	seed.Set(preferences.KeyUserFilterPreferences, `{"timeOfDay":"Rano"}`)

	s := r.Create(seed)
	assert.Equal(t, "en", s.Locale())
	assert.Equal(t, "Add new classes", s.Text("add_new_classes"))
	assert.True(t, s.Classes.PreferPreviousInstructor())

	prefs, err := s.Classes.Preferences(domain.SlotKindIndividual)
	require.NoError(t, err)
	assert.Equal(t, "Rano", prefs.TimeOfDay)

	// изменения в сессии не попадают обратно в исходное хранилище
	s.Preferences.SetLocale("pl")
	v, _ := seed.Get(preferences.KeyLocale)
	assert.Equal(t, "en", v)
}

func TestSession_SetCountsDropsBookingsOfRemovedParticipants(t *testing.T) {
	r, _, _, _ := newTestRegistry(t)
	s := r.Create(nil)

	s.SetCounts(2, 0)
	participants := s.Stay.Roster().Participants()
	require.Len(t, participants, 2)

	slot, err := s.Classes.Catalog().Slot("2025-12-02-0")
	require.NoError(t, err)
	_, err = s.Classes.Cart().Add(domain.Booking{ParticipantID: participants[0].ID, Type: domain.LessonIndividual, Slot: slot})
	require.NoError(t, err)
	_, err = s.Classes.Cart().Add(domain.Booking{ParticipantID: participants[1].ID, Type: domain.LessonIndividual, Slot: slot})
	require.NoError(t, err)

	s.SetCounts(1, 0)
	bookings := s.Classes.Cart().Bookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, participants[0].ID, bookings[0].ParticipantID)

	summary := s.Summary()
	assert.Equal(t, 50.0, summary.ClassesSubtotal)
	assert.Equal(t, 50.0, summary.Total)
}

func TestSession_TimerExpiryReturnsToClassSelection(t *testing.T) {
	r, _, _, sched := newTestRegistry(t)
	s := r.Create(nil)

	slot, err := s.Classes.Catalog().Slot("2025-12-02-0")
	require.NoError(t, err)
	pid := s.Stay.Roster().Participants()[0].ID
	_, err = s.Classes.Cart().Add(domain.Booking{ParticipantID: pid, Type: domain.LessonIndividual, Slot: slot})
	require.NoError(t, err)

	s.Lock()
	require.NoError(t, s.Flow.Complete(flow.Step{Parent: 1, Child: 1}, true))
	require.NoError(t, s.Flow.GoTo(flow.Step{Parent: 1, Child: 2}))
	s.Timer.Start()
	s.Unlock()

	sched.advance(s, 3)

	s.Lock()
	assert.Equal(t, holdtimer.StateExpired, s.Timer.State())
	assert.Zero(t, s.Classes.Cart().Len())
	s.Unlock()

	var action *notifications.Message
	for _, msg := range s.Notifier.Open() {
		if msg.Type == notifications.TypeAction {
			m := msg
			action = &m
		}
	}
	require.NotNil(t, action)
	assert.Equal(t, "Dodaj nowe zajęcia", action.ActionLabel)

	require.True(t, s.Notifier.Act(action.ID))
	s.Lock()
	assert.Equal(t, flow.Step{Parent: 2, Child: 1}, s.Flow.Current())
	s.Unlock()

	assert.False(t, s.Notifier.Act(action.ID))
}

func TestSession_ResetStay(t *testing.T) {
	r, _, _, _ := newTestRegistry(t)
	s := r.Create(nil)

	first := s.Stay.Roster().Participants()[0].ID
	s.SetCounts(3, 2)
	s.Classes.SetDate("2025-12-03")

	s.ResetStay()
	participants := s.Stay.Roster().Participants()
	require.Len(t, participants, 1)
	assert.Equal(t, first, participants[0].ID)
	assert.Empty(t, s.Classes.Date())
}

type countingIDs struct {
	prefix string
	n      int
}

func (g *countingIDs) New() string {
	g.n++
	return fmt.Sprintf("%s%d", g.prefix, g.n)
}

func TestRegistry_GeneratorPerSession(t *testing.T) {
	var generators []*countingIDs
	r := NewRegistry(Deps{
		NewIDs: func() IDGenerator {
			g := &countingIDs{prefix: fmt.Sprintf("S%d-", len(generators)+1)}
			generators = append(generators, g)
			return g
		},
		Clock:     &fakeClock{now: time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)},
		Skills:    stayconfig.New(),
		Validator: fakeValidator{},
		Metrics:   &nopMetrics{},
		Logger:    logger.NewNop(),
		Scheduler: func(*Session) holdtimer.Scheduler { return &tickScheduler{} },
	}, time.Hour)

	first := r.Create(nil)
	second := r.Create(nil)
	require.Len(t, generators, 2)

	assert.Equal(t, "S1-1", first.Stay.Roster().Participants()[0].ID)
	assert.Equal(t, "S2-1", second.Stay.Roster().Participants()[0].ID)

	// сессии не делят счетчик идентификаторов
	require.NoError(t, r.Delete(first.ID))
	second.SetCounts(2, 0)
	assert.Equal(t, "S2-2", second.Stay.Roster().Participants()[1].ID)
}

func TestRegistry_DefaultGenerator(t *testing.T) {
	r, _, _, _ := newTestRegistry(t)
	s := r.Create(nil)
	assert.Len(t, s.Stay.Roster().Participants()[0].ID, 8)
}
