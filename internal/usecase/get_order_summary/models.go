package get_order_summary

import "github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"

// Request модель запроса итога заказа
type Request struct {
	SessionID string
}

// Response итог заказа сессии
type Response struct {
	StayLabel    string // "1 grudnia - 5 grudnia (4dni)"
	Participants []Line
	Bookings     int

	ClassesSubtotal     Amount
	InsuranceSubtotal   Amount
	ChildAddOnsSubtotal Amount
	EligibleSubtotal    Amount
	Discount            Discount
	Total               Amount

	TotalHours         float64
	HoursToFirstLevel  float64
	HoursToSecondLevel float64

	LoyaltyCard LoyaltyCard
	Currency    string
	Links       Links
}

// Amount сумма и ее отображение
type Amount struct {
	Value float64
	Label string // "1 660,95"
}

// Line итог по участнику
type Line struct {
	ParticipantID string
	Name          string
	Type          domain.ParticipantType
	Bookings      int
	Classes       Amount
	Insurance     Amount
	ChildAddOns   Amount
	Total         Amount
}

// Discount примененная скидка
type Discount struct {
	Tier    string
	Percent float64
	Amount  Amount
}

// LoyaltyCard состояние проверки карты постоянного клиента
type LoyaltyCard struct {
	CardNumber string
	Valid      *bool
	Loading    bool
}

// Links ссылки на условия
type Links struct {
	Terms          string
	PrivacyPolicy  string
	InsuranceTerms string
	LoyaltyProgram string
}
