package pricing

import (
	"math"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
)

// Tier уровень скидки
type Tier string

const (
	TierNone        Tier = "none"
	TierFirstLevel  Tier = "first_level"
	TierSecondLevel Tier = "second_level"
	TierLoyaltyCard Tier = "loyalty_card"
)

// Snapshot входные данные расчета: список участников, корзина и карта постоянного клиента
type Snapshot struct {
	Participants   []*domain.Participant
	Bookings       []*domain.Booking
	HasLoyaltyCard bool
	Config         domain.PricingConfig
}

// ParticipantLine итог по одному участнику
type ParticipantLine struct {
	ParticipantID string
	Name          string
	Type          domain.ParticipantType
	Bookings      int
	Classes       float64
	Insurance     float64
	ChildAddOns   float64
	Total         float64
}

// Summary итог заказа
type Summary struct {
	Participants        []ParticipantLine
	ClassesSubtotal     float64
	InsuranceSubtotal   float64
	ChildAddOnsSubtotal float64
	EligibleSubtotal    float64
	TotalHours          float64
	Tier                Tier
	DiscountPercent     float64
	DiscountAmount      float64
	Total               float64
	HoursToFirstLevel   float64
	HoursToSecondLevel  float64
}

// BookingPrice цена занятия по бронированию.
// Группа happy hours не имеет собственной цены и продается по цене из конфигурации.
func BookingPrice(b *domain.Booking, cfg domain.PricingConfig) float64 {
	switch {
	case b.Group != nil:
		if b.Group.Price != nil {
			return *b.Group.Price
		}
		if b.Group.IsHappyHours {
			return cfg.HappyHoursGroupPrice
		}
		return 0
	case b.Slot != nil:
		return b.Slot.Price
	default:
		return 0
	}
}

// ParticipantClassesTotal сумма занятий участника; пакет группы учитывается один раз
func ParticipantClassesTotal(participantID string, bookings []*domain.Booking, cfg domain.PricingConfig) float64 {
	return classesTotal(forParticipant(participantID, bookings), cfg, false)
}

// ParticipantInsuranceTotal сумма страховок участника.
// Групповая страховка не применяется к детям; для группы цена за день умножается
// на количество дат занятий и учитывается один раз на пакет.
func ParticipantInsuranceTotal(p *domain.Participant, bookings []*domain.Booking, cfg domain.PricingConfig) float64 {
	return insuranceTotal(p, forParticipant(p.ID, bookings), cfg)
}

// ParticipantChildAddOnsTotal сумма дополнительных опций ребенка, один раз на пакет группы
func ParticipantChildAddOnsTotal(participantID string, bookings []*domain.Booking, cfg domain.PricingConfig) float64 {
	return addOnsTotal(forParticipant(participantID, bookings), cfg)
}

// TotalHours сумма часов индивидуальных и совместных занятий без happy hours, округленная до 0.1
func TotalHours(bookings []*domain.Booking) float64 {
	total := 0.0
	for _, b := range bookings {
		if b.IsGroup() || b.IsHappyHours() || b.Slot == nil {
			continue
		}
		hours, err := b.Slot.Time.Hours()
		if err != nil {
			continue
		}
		total += hours
	}
	return round(total, 1)
}

// DiscountRate выбирает скидку по приоритету: второй уровень, первый уровень, карта постоянного клиента
func DiscountRate(hours float64, hasLoyaltyCard bool, cfg domain.PricingConfig) (Tier, float64) {
	switch {
	case hours >= cfg.SecondLevelHours:
		return TierSecondLevel, cfg.SecondLevelDiscount
	case hours >= cfg.FirstLevelHours:
		return TierFirstLevel, cfg.FirstLevelDiscount
	case hasLoyaltyCard:
		return TierLoyaltyCard, cfg.LoyaltyCardDiscount
	default:
		return TierNone, 0
	}
}

// EligibleSubtotal сумма занятий, на которую распространяется скидка (без happy hours)
func EligibleSubtotal(bookings []*domain.Booking, cfg domain.PricingConfig) float64 {
	return classesTotal(bookings, cfg, true)
}

// Summarize считает итог заказа
func Summarize(s Snapshot) Summary {
	cfg := s.Config.WithDefaults()
	known := make(map[string]*domain.Participant, len(s.Participants))

	summary := Summary{Participants: make([]ParticipantLine, 0, len(s.Participants))}
	for _, p := range s.Participants {
		known[p.ID] = p
		own := forParticipant(p.ID, s.Bookings)
		line := ParticipantLine{
			ParticipantID: p.ID,
			Name:          p.DisplayName(),
			Type:          p.Type,
			Bookings:      len(own),
			Classes:       classesTotal(own, cfg, false),
			Insurance:     insuranceTotal(p, own, cfg),
			ChildAddOns:   addOnsTotal(own, cfg),
		}
		line.Total = round(line.Classes+line.Insurance+line.ChildAddOns, 2)
		summary.Participants = append(summary.Participants, line)
	}

	summary.ClassesSubtotal = classesTotal(s.Bookings, cfg, false)
	summary.EligibleSubtotal = classesTotal(s.Bookings, cfg, true)
	summary.ChildAddOnsSubtotal = addOnsTotal(s.Bookings, cfg)
	for _, p := range s.Participants {
		summary.InsuranceSubtotal += insuranceTotal(p, forParticipant(p.ID, s.Bookings), cfg)
	}
	for _, b := range s.Bookings {
		if _, ok := known[b.ParticipantID]; !ok {
			// бронирование без участника в списке считается как взрослое
			summary.InsuranceSubtotal += insuranceTotal(&domain.Participant{ID: b.ParticipantID, Type: domain.ParticipantAdult}, []*domain.Booking{b}, cfg)
		}
	}
	summary.InsuranceSubtotal = round(summary.InsuranceSubtotal, 2)

	summary.TotalHours = TotalHours(s.Bookings)
	summary.Tier, summary.DiscountPercent = DiscountRate(summary.TotalHours, s.HasLoyaltyCard, cfg)
	summary.DiscountAmount = round(summary.EligibleSubtotal*summary.DiscountPercent/100, 2)

	total := summary.ClassesSubtotal + summary.InsuranceSubtotal + summary.ChildAddOnsSubtotal - summary.DiscountAmount
	summary.Total = round(math.Max(0, total), 2)

	summary.HoursToFirstLevel = round(math.Max(0, cfg.FirstLevelHours-summary.TotalHours), 1)
	summary.HoursToSecondLevel = round(math.Max(0, cfg.SecondLevelHours-summary.TotalHours), 1)

	return summary
}

func classesTotal(bookings []*domain.Booking, cfg domain.PricingConfig, eligibleOnly bool) float64 {
	seen := make(map[string]struct{})
	total := 0.0
	for _, b := range bookings {
		if !firstOfGroup(b, seen) {
			continue
		}
		if eligibleOnly && b.IsHappyHours() {
			continue
		}
		total += BookingPrice(b, cfg)
	}
	return round(total, 2)
}

func insuranceTotal(p *domain.Participant, bookings []*domain.Booking, cfg domain.PricingConfig) float64 {
	seen := make(map[string]struct{})
	total := 0.0
	for _, b := range bookings {
		if !b.HasInsurance() {
			continue
		}
		if b.IsGroup() {
			if p.IsChild() {
				continue
			}
			if !firstOfGroup(b, seen) {
				continue
			}
			perDay := b.Insurance.Price
			if perDay <= 0 {
				perDay = cfg.GroupInsurancePerDay
			}
			days := 1
			if b.Group != nil && len(b.Group.SessionDates()) > 0 {
				days = len(b.Group.SessionDates())
			}
			total += perDay * float64(days)
			continue
		}
		price := b.Insurance.Price
		if price <= 0 {
			price = cfg.InsurancePrice
		}
		total += price
	}
	return round(total, 2)
}

func addOnsTotal(bookings []*domain.Booking, cfg domain.PricingConfig) float64 {
	seen := make(map[string]struct{})
	total := 0.0
	for _, b := range bookings {
		if !b.HasChildAddOn() || !firstOfGroup(b, seen) {
			continue
		}
		price := b.ChildAddOn.Price
		if price <= 0 {
			price = cfg.ChildAddOnPrice
		}
		total += price
	}
	return round(total, 2)
}

// firstOfGroup true для бронирования без пакета и для первой строки пакета
func firstOfGroup(b *domain.Booking, seen map[string]struct{}) bool {
	if b.GroupBookingID == "" {
		return true
	}
	if _, ok := seen[b.GroupBookingID]; ok {
		return false
	}
	seen[b.GroupBookingID] = struct{}{}
	return true
}

func forParticipant(participantID string, bookings []*domain.Booking) []*domain.Booking {
	result := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if b.ParticipantID == participantID {
			result = append(result, b)
		}
	}
	return result
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
