package domain

import "github.com/m04kA/SMC-SkiSchoolBooking/pkg/types"

// Gender instructor gender token
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// TimeOfDay bucket of a slot, values match the filter select labels
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "Rano"
	TimeOfDayAfternoon TimeOfDay = "Popołudnie"
	TimeOfDayEvening   TimeOfDay = "Wieczór"
)

// Instructor lesson instructor
type Instructor struct {
	Name   string
	Gender Gender
}

// Slot a single bookable lesson instance on one date
type Slot struct {
	ID              string // "{date}-{templateIndex}"
	Date            string // YYYY-MM-DD
	Time            types.TimeRange
	Price           float64
	Instructor      *Instructor
	Duration        string // "1h", "2h"
	TimeOfDay       TimeOfDay
	IsHappyHours    bool
	ChildSpecialist bool
}

// HasInstructor returns true if an instructor is assigned to the slot
func (s *Slot) HasInstructor() bool {
	return s.Instructor != nil && s.Instructor.Name != ""
}

// InstructorName returns the instructor's name or an empty string
func (s *Slot) InstructorName() string {
	if !s.HasInstructor() {
		return ""
	}
	return s.Instructor.Name
}
