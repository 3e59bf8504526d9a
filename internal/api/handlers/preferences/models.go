package preferences

import "github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"

// UpdatePreferencesRequest HTTP request model: набор фильтров и флаг сохранения в cookies
type UpdatePreferencesRequest struct {
	domain.FilterPreferences
	Save bool `json:"save"`
}

// PreferencesResponse HTTP response model
type PreferencesResponse struct {
	Kind                     domain.SlotKind          `json:"kind"`
	Preferences              domain.FilterPreferences `json:"preferences"`
	PreferPreviousInstructor bool                     `json:"preferPreviousInstructor"`
	Instructors              []string                 `json:"instructors"`
}

// PreviousInstructorRequest HTTP request model
type PreviousInstructorRequest struct {
	Enabled bool `json:"enabled"`
}

// LocaleRequest HTTP request model
type LocaleRequest struct {
	Locale string `json:"locale"`
}
