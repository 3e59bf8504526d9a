package i18n

import "strings"

// Ключи уведомлений
const (
	KeyTimeExpireWarning  = "time_expire_warning"
	KeyExtendTimeBy5      = "extend_time_by_5"
	KeyBookingTimeExpired = "booking_time_expired"
	KeyAddNewClasses      = "add_new_classes"
	KeyAdded5Minutes      = "added_5_minutes"
	KeyBookingAdded       = "booking_added"
	KeyBookingRemoved     = "booking_removed"
	KeyLoyaltyCardValid   = "loyalty_card_valid"
	KeyLoyaltyCardInvalid = "loyalty_card_invalid"
)

// DefaultLocale язык по умолчанию
const DefaultLocale = "pl"

// fallbackLocale используется, если в выбранном языке нет ключа
const fallbackLocale = "en"

var messages = map[string]map[string]string{
	"pl": {
		KeyTimeExpireWarning:  "Czas na dokończenie rezerwacji wkrótce minie",
		KeyExtendTimeBy5:      "Przedłuż o 5 minut",
		KeyBookingTimeExpired: "Czas na rezerwację minął, wybrane zajęcia zostały usunięte z koszyka",
		KeyAddNewClasses:      "Dodaj nowe zajęcia",
		KeyAdded5Minutes:      "Dodano 5 minut",
		KeyBookingAdded:       "Zajęcia zostały dodane do koszyka",
		KeyBookingRemoved:     "Zajęcia zostały usunięte z koszyka",
		KeyLoyaltyCardValid:   "Karta stałego klienta została potwierdzona",
		KeyLoyaltyCardInvalid: "Nieprawidłowy numer karty stałego klienta",
	},
	"en": {
		KeyTimeExpireWarning:  "Your reservation time is about to run out",
		KeyExtendTimeBy5:      "Extend by 5 minutes",
		KeyBookingTimeExpired: "Reservation time has expired, selected classes were removed from the cart",
		KeyAddNewClasses:      "Add new classes",
		KeyAdded5Minutes:      "5 minutes added",
		KeyBookingAdded:       "Classes added to the cart",
		KeyBookingRemoved:     "Classes removed from the cart",
		KeyLoyaltyCardValid:   "Loyalty card confirmed",
		KeyLoyaltyCardInvalid: "Invalid loyalty card number",
	},
}

// Localizer тексты уведомлений на одном языке
type Localizer struct {
	locale string
}

// For возвращает тексты для языка; неизвестный язык заменяется языком по умолчанию
func For(locale string) *Localizer {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if _, ok := messages[locale]; !ok {
		locale = DefaultLocale
	}
	return &Localizer{locale: locale}
}

// IsSupported проверяет, есть ли тексты для языка
func IsSupported(locale string) bool {
	_, ok := messages[locale]
	return ok
}

// Locale возвращает язык
func (l *Localizer) Locale() string {
	return l.locale
}

// Text возвращает текст по ключу, при отсутствии перевода - сам ключ
func (l *Localizer) Text(key string) string {
	if text, ok := messages[l.locale][key]; ok {
		return text
	}
	if text, ok := messages[fallbackLocale][key]; ok {
		return text
	}
	return key
}
