package domain

// SlotKind which preference set and slot list an operation targets
type SlotKind string

const (
	SlotKindIndividual SlotKind = "individual"
	SlotKindShared     SlotKind = "shared"
)

// IsValid returns true for known slot kinds
func (k SlotKind) IsValid() bool {
	return k == SlotKindIndividual || k == SlotKindShared
}

// FilterPreferences user's slot filter selections
// JSON keys match the persisted user_filter_preferences cookie
type FilterPreferences struct {
	TimeOfDay              string  `json:"timeOfDay"`
	Duration               string  `json:"duration"`
	InstructorGender       string  `json:"instructorGender"`
	FindSpecificInstructor bool    `json:"findSpecificInstructor"`
	ChildSpecialist        bool    `json:"childSpecialist"`
	SelectedInstructor     *string `json:"selectedInstructor"`
}

// DefaultFilterPreferences returns hard-coded filter defaults
func DefaultFilterPreferences() FilterPreferences {
	return FilterPreferences{
		TimeOfDay:        AnyOption,
		Duration:         "2h",
		InstructorGender: AnyOption,
	}
}

// GenderFromLabel maps a localized gender label to the internal token
// Returns false for the "Any" sentinel and unknown labels
func GenderFromLabel(label string) (Gender, bool) {
	switch label {
	case GenderLabelMale:
		return GenderMale, true
	case GenderLabelFemale:
		return GenderFemale, true
	default:
		return "", false
	}
}

// WithDefaults fills empty select values from the hard-coded defaults
func (p FilterPreferences) WithDefaults() FilterPreferences {
	d := DefaultFilterPreferences()
	if p.TimeOfDay == "" {
		p.TimeOfDay = d.TimeOfDay
	}
	if p.Duration == "" {
		p.Duration = d.Duration
	}
	if p.InstructorGender == "" {
		p.InstructorGender = d.InstructorGender
	}
	if p.SelectedInstructor != nil && *p.SelectedInstructor == "" {
		p.SelectedInstructor = nil
	}
	return p
}
