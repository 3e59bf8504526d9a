package stayconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/ptr"
)

func child(age int, activity domain.ActivityType, level string) *domain.Participant {
	return &domain.Participant{
		ID:           "C1",
		Type:         domain.ParticipantChild,
		Age:          ptr.Ptr(age),
		ActivityType: activity,
		SkillLevel:   level,
	}
}

func TestCatalog_SkillLevels(t *testing.T) {
	c := New()

	assert.Len(t, c.SkillLevels(domain.ParticipantAdult, domain.ActivitySnowboard), 4)
	assert.Len(t, c.SkillLevels(domain.ParticipantChild, domain.ActivitySki), 5)
	assert.Len(t, c.SkillLevels(domain.ParticipantChild, domain.ActivitySnowboard), 3)
	assert.Empty(t, c.SkillLevels(domain.ParticipantChild, ""))

	level, err := c.SkillLevel(domain.ParticipantChild, domain.ActivitySki, "silver_group")
	require.NoError(t, err)
	assert.Equal(t, AgeRange{Min: 7, Max: 14}, *level.Ages)
	assert.Equal(t, "silver_group_desc", level.DescriptionKey())

	_, err = c.SkillLevel(domain.ParticipantChild, domain.ActivitySki, "yellow_snowboard")
	assert.ErrorIs(t, err, ErrSkillLevelNotFound)
}

func TestCatalog_SkillLevels_ReturnsCopy(t *testing.T) {
	c := New()
	levels := c.SkillLevels(domain.ParticipantAdult, "")
	levels[0].Code = "changed"

	assert.Equal(t, "firstime", c.SkillLevels(domain.ParticipantAdult, "")[0].Code)
}

func TestCatalog_PermittedActivities(t *testing.T) {
	c := New()

	tests := []struct {
		name string
		p    *domain.Participant
		want []domain.ActivityType
	}{
		{name: "adult", p: &domain.Participant{Type: domain.ParticipantAdult}, want: []domain.ActivityType{domain.ActivitySki, domain.ActivitySnowboard}},
		{name: "child without age", p: &domain.Participant{Type: domain.ParticipantChild}, want: []domain.ActivityType{domain.ActivitySki, domain.ActivitySnowboard}},
		{name: "five year old", p: child(5, "", ""), want: []domain.ActivityType{domain.ActivitySki}},
		{name: "eight year old", p: child(8, "", ""), want: []domain.ActivityType{domain.ActivitySki, domain.ActivitySnowboard}},
		{name: "toddler", p: child(3, "", ""), want: []domain.ActivityType{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.PermittedActivities(tt.p))
		})
	}
}

func TestCatalog_PermittedLessonTypes(t *testing.T) {
	c := New()

	all := []domain.LessonType{domain.LessonIndividual, domain.LessonShared, domain.LessonGroup}
	noGroup := []domain.LessonType{domain.LessonIndividual, domain.LessonShared}

	assert.Equal(t, all, c.PermittedLessonTypes(&domain.Participant{Type: domain.ParticipantAdult}))
	assert.Equal(t, all, c.PermittedLessonTypes(child(8, domain.ActivitySki, "")))
	assert.Equal(t, all, c.PermittedLessonTypes(child(8, domain.ActivitySki, "silver_group")))
	assert.Equal(t, noGroup, c.PermittedLessonTypes(child(8, domain.ActivitySki, "diamond_group")))
	assert.Equal(t, noGroup, c.PermittedLessonTypes(child(15, domain.ActivitySnowboard, "")))
	assert.Equal(t, noGroup, c.PermittedLessonTypes(&domain.Participant{Type: domain.ParticipantChild}))
	assert.Empty(t, c.PermittedLessonTypes(child(2, "", "")))

	assert.True(t, c.IsLessonTypePermitted(child(8, domain.ActivitySki, ""), domain.LessonGroup))
	assert.False(t, c.IsLessonTypePermitted(child(5, domain.ActivitySnowboard, ""), domain.LessonGroup))
}

func TestCatalog_ValidateSelection(t *testing.T) {
	c := New()

	assert.NoError(t, c.ValidateSelection(child(8, domain.ActivitySki, "bronze_group")))
	assert.ErrorIs(t, c.ValidateSelection(child(5, domain.ActivitySnowboard, "")), ErrActivityNotPermitted)
	assert.ErrorIs(t, c.ValidateSelection(child(12, domain.ActivitySki, "orange_group")), ErrAgeOutOfRange)
	assert.ErrorIs(t, c.ValidateSelection(child(8, domain.ActivitySki, "unknown")), ErrSkillLevelNotFound)

	adult := &domain.Participant{Type: domain.ParticipantAdult, ActivityType: domain.ActivitySnowboard, SkillLevel: "advanced"}
	assert.NoError(t, c.ValidateSelection(adult))
}
