package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/ptr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStay_Limits(t *testing.T) {
	s := NewStay()
	assert.Equal(t, 1, s.Adults)
	assert.Equal(t, 0, s.Children)
	assert.Equal(t, 12, s.MaxAdults())
	assert.Equal(t, 11, s.MaxChildren())

	s.Children = 5
	assert.Equal(t, 7, s.MaxAdults())
}

func TestDateOfStay_DurationDays(t *testing.T) {
	tests := []struct {
		name string
		date DateOfStay
		want int
	}{
		{name: "single date", date: DateOfStay{Start: date(2025, 12, 1)}, want: 1},
		{name: "five days inclusive", date: DateOfStay{Start: date(2025, 12, 1), End: ptr.Ptr(date(2025, 12, 5))}, want: 5},
		{name: "same day range", date: DateOfStay{Start: date(2025, 12, 1), End: ptr.Ptr(date(2025, 12, 1))}, want: 1},
		{name: "reversed range", date: DateOfStay{Start: date(2025, 12, 5), End: ptr.Ptr(date(2025, 12, 1))}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.DurationDays())
		})
	}
}

func TestStay_DurationDays_NoDate(t *testing.T) {
	assert.Equal(t, 1, NewStay().DurationDays())
}

func TestDateOfStay_Contains(t *testing.T) {
	d := DateOfStay{Start: date(2025, 12, 1), End: ptr.Ptr(date(2025, 12, 3))}
	assert.True(t, d.Contains(date(2025, 12, 2)))
	assert.True(t, d.Contains(date(2025, 12, 3)))
	assert.False(t, d.Contains(date(2025, 12, 4)))
	assert.Len(t, d.Dates(), 3)
}

func TestGroup_DayCount(t *testing.T) {
	g := &Group{Description: "5 dni zajęć, zajęcia 1x dziennie"}
	assert.Equal(t, 5, g.DayCount())

	g = &Group{
		Description: "zajęcia weekendowe",
		Sessions: []GroupSession{
			{Date: "2025-12-01", Time: "9:30 - 10:30"},
			{Date: "2025-12-01", Time: "15:30 - 17:30"},
			{Date: "2025-12-02", Time: "9:30 - 10:30"},
		},
	}
	assert.Equal(t, 2, g.DayCount())
	assert.Equal(t, []string{"2025-12-01", "2025-12-02"}, g.SessionDates())
	assert.Len(t, g.SessionsOn("2025-12-01"), 2)
}

func TestGenderFromLabel(t *testing.T) {
	g, ok := GenderFromLabel(GenderLabelMale)
	assert.True(t, ok)
	assert.Equal(t, GenderMale, g)

	g, ok = GenderFromLabel(GenderLabelFemale)
	assert.True(t, ok)
	assert.Equal(t, GenderFemale, g)

	_, ok = GenderFromLabel(AnyOption)
	assert.False(t, ok)
}

func TestBooking_InstructorName(t *testing.T) {
	b := &Booking{Slot: &Slot{Instructor: &Instructor{Name: "Anna Nowak", Gender: GenderFemale}}}
	assert.Equal(t, "Anna Nowak", b.InstructorName())

	b.Instructor = &Instructor{Name: "Marcin Kowalik"}
	assert.Equal(t, "Marcin Kowalik", b.InstructorName())

	assert.Empty(t, (&Booking{}).InstructorName())
}

func TestPricingConfig_WithDefaults(t *testing.T) {
	c := PricingConfig{InsurancePrice: 20}.WithDefaults()
	assert.Equal(t, 20.0, c.InsurancePrice)
	assert.Equal(t, FirstLevelHours, c.FirstLevelHours)
	assert.Equal(t, LoyaltyCardDiscount, c.LoyaltyCardDiscount)
}
