package pricing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/logger"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/ptr"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/types"
)

var cfg = domain.DefaultPricingConfig()

func slotBooking(id, participantID string, start, end int, price float64, happy bool) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		ParticipantID: participantID,
		Type:          domain.LessonIndividual,
		Slot: &domain.Slot{
			ID:           id,
			Time:         types.NewTimeRange(start*60, end*60),
			Price:        price,
			IsHappyHours: happy,
		},
	}
}

func groupLines(groupBookingID, participantID string, group *domain.Group, insurance *domain.Insurance) []*domain.Booking {
	lines := make([]*domain.Booking, 0)
	for _, date := range group.SessionDates() {
		lines = append(lines, &domain.Booking{
			ID:             groupBookingID + "-" + date,
			ParticipantID:  participantID,
			Date:           date,
			Type:           domain.LessonGroup,
			Group:          group,
			Insurance:      insurance,
			GroupBookingID: groupBookingID,
		})
	}
	return lines
}

func threeDayGroup(price *float64, happy bool) *domain.Group {
	return &domain.Group{
		ID:          7,
		Description: "3 dni zajęć, zajęcia 1x dziennie",
		Sessions: []domain.GroupSession{
			{Date: "2025-12-01", Time: "9:30 - 10:30"},
			{Date: "2025-12-02", Time: "9:30 - 10:30"},
			{Date: "2025-12-03", Time: "9:30 - 10:30"},
		},
		Price:        price,
		IsHappyHours: happy,
	}
}

func TestParticipantClassesTotal_GroupCountedOnce(t *testing.T) {
	bookings := groupLines("G1", "P1", threeDayGroup(ptr.Ptr(1400.0), false), nil)
	bookings = append(bookings, slotBooking("S1", "P1", 9, 11, 50, false))
	bookings = append(bookings, slotBooking("S2", "P2", 9, 11, 50, false))

	assert.Equal(t, 1450.0, ParticipantClassesTotal("P1", bookings, cfg))
	assert.Equal(t, 50.0, ParticipantClassesTotal("P2", bookings, cfg))
	assert.Equal(t, 0.0, ParticipantClassesTotal("P3", bookings, cfg))
}

func TestBookingPrice_HappyHoursGroup(t *testing.T) {
	b := groupLines("G1", "P1", threeDayGroup(nil, true), nil)[0]
	assert.Equal(t, cfg.HappyHoursGroupPrice, BookingPrice(b, cfg))
}

func TestParticipantInsuranceTotal(t *testing.T) {
	adult := &domain.Participant{ID: "A1", Type: domain.ParticipantAdult}
	child := &domain.Participant{ID: "C1", Type: domain.ParticipantChild}
	group := threeDayGroup(ptr.Ptr(1400.0), false)

	adultBookings := groupLines("G1", "A1", group, &domain.Insurance{Enabled: true, Price: 12})
	adultBookings = append(adultBookings,
		&domain.Booking{ID: "S1", ParticipantID: "A1", Type: domain.LessonShared, Slot: &domain.Slot{Price: 50}, Insurance: &domain.Insurance{Enabled: true}},
		&domain.Booking{ID: "S2", ParticipantID: "A1", Type: domain.LessonShared, Slot: &domain.Slot{Price: 50}, Insurance: &domain.Insurance{Enabled: false, Price: 99}},
	)
	// 12 * 3 daty + 15 za zajęcia indywidualne
	assert.Equal(t, 36.0+cfg.InsurancePrice, ParticipantInsuranceTotal(adult, adultBookings, cfg))

	childBookings := groupLines("G2", "C1", group, &domain.Insurance{Enabled: true, Price: 12})
	childBookings = append(childBookings,
		&domain.Booking{ID: "S3", ParticipantID: "C1", Type: domain.LessonIndividual, Slot: &domain.Slot{Price: 50}, Insurance: &domain.Insurance{Enabled: true, Price: 20}},
	)
	assert.Equal(t, 20.0, ParticipantInsuranceTotal(child, childBookings, cfg))
}

func TestTotalHours(t *testing.T) {
	bookings := []*domain.Booking{
		slotBooking("S1", "P1", 9, 11, 50, false),
		slotBooking("S2", "P1", 14, 16, 50, false),
		slotBooking("S3", "P1", 10, 12, 50, true),
		{ID: "S4", ParticipantID: "P1", Type: domain.LessonShared, Slot: &domain.Slot{Time: "10:30 - 11:20", Price: 35}},
		{ID: "S5", ParticipantID: "P1", Type: domain.LessonShared, Slot: &domain.Slot{Time: "broken", Price: 35}},
	}
	bookings = append(bookings, groupLines("G1", "P1", threeDayGroup(ptr.Ptr(1400.0), false), nil)...)

	// 2 + 2 + 50/60
	assert.Equal(t, 4.8, TotalHours(bookings))
	assert.Equal(t, 0.0, TotalHours(nil))
}

func TestDiscountRate(t *testing.T) {
	tests := []struct {
		hours   float64
		loyalty bool
		tier    Tier
		rate    float64
	}{
		{hours: 0, tier: TierNone, rate: 0},
		{hours: 9.9, tier: TierNone, rate: 0},
		{hours: 9.9, loyalty: true, tier: TierLoyaltyCard, rate: 12},
		{hours: 10.0, tier: TierFirstLevel, rate: 5.7},
		{hours: 10.0, loyalty: true, tier: TierFirstLevel, rate: 5.7},
		{hours: 19.9, tier: TierFirstLevel, rate: 5.7},
		{hours: 20.0, tier: TierSecondLevel, rate: 11.4},
		{hours: 42, loyalty: true, tier: TierSecondLevel, rate: 11.4},
	}

	for _, tt := range tests {
		tier, rate := DiscountRate(tt.hours, tt.loyalty, cfg)
		assert.Equal(t, tt.tier, tier, "hours=%v loyalty=%v", tt.hours, tt.loyalty)
		assert.Equal(t, tt.rate, rate, "hours=%v loyalty=%v", tt.hours, tt.loyalty)
	}
}

func TestSummarize(t *testing.T) {
	adult := &domain.Participant{ID: "A1", Name: "Jan", Surname: "Kowalski", Type: domain.ParticipantAdult}
	child := &domain.Participant{ID: "C1", Type: domain.ParticipantChild}

	var bookings []*domain.Booking
	// 5 x 2h dla dorosłego = 10h -> pierwszy próg
	for i, day := range []string{"S1", "S2", "S3", "S4", "S5"} {
		b := slotBooking(day, "A1", 9, 11, 50, false)
		if i == 0 {
			b.Insurance = &domain.Insurance{Enabled: true}
		}
		bookings = append(bookings, b)
	}
	bookings = append(bookings, slotBooking("H1", "A1", 10, 12, 50, true))

	childLines := groupLines("G1", "C1", threeDayGroup(ptr.Ptr(1400.0), false), &domain.Insurance{Enabled: true, Price: 12})
	for _, l := range childLines {
		l.ChildAddOn = &domain.AddOn{Code: "lunch", Name: "Obiad"}
	}
	bookings = append(bookings, childLines...)

	s := Summarize(Snapshot{Participants: []*domain.Participant{adult, child}, Bookings: bookings, Config: cfg})

	require.Len(t, s.Participants, 2)
	assert.Equal(t, "Jan Kowalski", s.Participants[0].Name)
	assert.Equal(t, 300.0, s.Participants[0].Classes)
	assert.Equal(t, 15.0, s.Participants[0].Insurance)
	assert.Equal(t, 1400.0, s.Participants[1].Classes)
	assert.Equal(t, 0.0, s.Participants[1].Insurance)
	assert.Equal(t, 40.0, s.Participants[1].ChildAddOns)
	assert.Equal(t, 1440.0, s.Participants[1].Total)

	assert.Equal(t, 1700.0, s.ClassesSubtotal)
	assert.Equal(t, 1650.0, s.EligibleSubtotal)
	assert.Equal(t, 15.0, s.InsuranceSubtotal)
	assert.Equal(t, 40.0, s.ChildAddOnsSubtotal)
	assert.Equal(t, 10.0, s.TotalHours)
	assert.Equal(t, TierFirstLevel, s.Tier)
	assert.Equal(t, 94.05, s.DiscountAmount)
	assert.Equal(t, 1660.95, s.Total)
	assert.Equal(t, 0.0, s.HoursToFirstLevel)
	assert.Equal(t, 10.0, s.HoursToSecondLevel)
}

func TestSummarize_TotalNeverNegative(t *testing.T) {
	c := cfg
	c.LoyaltyCardDiscount = 250
	bookings := []*domain.Booking{slotBooking("S1", "A1", 9, 10, 35, false)}

	s := Summarize(Snapshot{
		Participants:   []*domain.Participant{{ID: "A1", Type: domain.ParticipantAdult}},
		Bookings:       bookings,
		HasLoyaltyCard: true,
		Config:         c,
	})

	assert.Equal(t, TierLoyaltyCard, s.Tier)
	assert.Greater(t, s.DiscountAmount, s.ClassesSubtotal)
	assert.Equal(t, 0.0, s.Total)
	assert.Equal(t, 9.0, s.HoursToFirstLevel)
}

// gatedValidator завершает каждую проверку по сигналу из теста
type gatedValidator struct {
	mu    sync.Mutex
	gates map[string]chan bool
}

func newGatedValidator() *gatedValidator {
	return &gatedValidator{gates: map[string]chan bool{}}
}

func (v *gatedValidator) gate(number string) chan bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.gates[number]; !ok {
		v.gates[number] = make(chan bool, 1)
	}
	return v.gates[number]
}

func (v *gatedValidator) Validate(ctx context.Context, number string) (bool, error) {
	select {
	case ok := <-v.gate(number):
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

type nopMetrics struct{}

func (nopMetrics) LoyaltyCheck(string) {}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loyalty check did not complete")
	}
}

func TestLoyaltyChecker_LatestCheckWins(t *testing.T) {
	v := newGatedValidator()
	c := NewLoyaltyChecker(v, time.Minute, nopMetrics{}, logger.NewNop())

	first, firstGen := c.Check(context.Background(), "1111")
	assert.True(t, c.State().Loading)

	second, secondGen := c.Check(context.Background(), "2222")
	assert.Greater(t, secondGen, firstGen)
	assert.Nil(t, c.State().Valid)

	// вторая проверка завершается раньше первой
	v.gate("2222") <- false
	waitDone(t, second)
	v.gate("1111") <- true
	waitDone(t, first)

	st := c.State()
	require.NotNil(t, st.Valid)
	assert.False(t, *st.Valid)
	assert.False(t, st.Loading)
	assert.Equal(t, "2222", st.CardNumber)
	assert.Equal(t, secondGen, st.Generation)
	assert.NotEqual(t, firstGen, st.Generation)
	assert.False(t, c.HasValidCard())
}

func TestLoyaltyChecker_NewCheckResetsResult(t *testing.T) {
	v := newGatedValidator()
	c := NewLoyaltyChecker(v, time.Minute, nopMetrics{}, logger.NewNop())

	v.gate("1111") <- true
	done, _ := c.Check(context.Background(), "1111")
	waitDone(t, done)
	assert.True(t, c.HasValidCard())

	pending, _ := c.Check(context.Background(), "3333")
	st := c.State()
	assert.Nil(t, st.Valid)
	assert.True(t, st.Loading)

	c.Reset()
	v.gate("3333") <- true
	waitDone(t, pending)
	assert.Nil(t, c.State().Valid)
	assert.False(t, c.State().Loading)
}

type failingValidator struct{}

func (failingValidator) Validate(context.Context, string) (bool, error) {
	return false, errors.New("unavailable")
}

func TestLoyaltyChecker_ErrorLeavesUnchecked(t *testing.T) {
	c := NewLoyaltyChecker(failingValidator{}, time.Minute, nopMetrics{}, logger.NewNop())

	done, _ := c.Check(context.Background(), "1111")
	waitDone(t, done)

	st := c.State()
	assert.Nil(t, st.Valid)
	assert.False(t, st.Loading)
}
