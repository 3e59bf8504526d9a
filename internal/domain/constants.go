package domain

// Stay limits and defaults
const (
	MaxParticipants  = 12 // adults + children cap
	DefaultAdults    = 1
	DefaultChildren  = 0
	CatalogDays      = 30 // rolling window of generated slots
	DefaultSlotLimit = 4  // initial page size of a slot list
)

// Reservation hold timer constants (seconds)
const (
	HoldDurationSeconds  = 20 * 60
	HoldWarningSeconds   = 5 * 60
	HoldExtensionSeconds = 5 * 60
)

// Pricing defaults
const (
	FirstLevelHours     = 10.0
	SecondLevelHours    = 20.0
	FirstLevelDiscount  = 5.7  // %
	SecondLevelDiscount = 11.4 // %
	LoyaltyCardDiscount = 12.0 // %

	DefaultInsurancePrice       = 15.0 // per individual/shared booking
	DefaultGroupInsurancePerDay = 12.0
	DefaultChildAddOnPrice      = 40.0
	DefaultHappyHoursGroupPrice = 990.0
)

// Currency and static links shown next to prices
const (
	Currency          = "zł"
	TermsURL          = "https://szkola-narciarska.example/regulamin"
	PrivacyPolicyURL  = "https://szkola-narciarska.example/polityka-prywatnosci"
	InsuranceTermsURL = "https://szkola-narciarska.example/ubezpieczenie"
	LoyaltyProgramURL = "https://szkola-narciarska.example/karta-stalego-klienta"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AnyOption sentinel of a filter select meaning "no restriction"
const AnyOption = "Dowolna"

// Instructor gender labels as shown in filter selects
const (
	GenderLabelMale   = "Mężczyzna"
	GenderLabelFemale = "Kobieta"
)
