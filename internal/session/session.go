package session

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/notifications"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/i18n"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/infra/storage/preferences"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/classes"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/flow"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/holdtimer"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/pricing"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/stay"
)

// Session одна попытка бронирования.
// Все действия пользователя, тики таймера и действия уведомлений выполняются
// под блокировкой сессии, поэтому сервисы сессии не синхронизируются сами.
type Session struct {
	mu sync.Mutex

	ID        string
	CreatedAt time.Time
	lastSeen  time.Time

	Stay        *stay.Service
	Classes     *classes.Service
	Loyalty     *pricing.LoyaltyChecker
	Timer       *holdtimer.Timer
	Flow        *flow.Flow
	Notifier    *notifications.Hub
	Preferences *preferences.Repository

	pricing domain.PricingConfig
	logger  Logger
}

func newSession(id string, deps Deps, seed preferences.Store) *Session {
	now := deps.Clock.Now()
	s := &Session{
		ID:        id,
		CreatedAt: now,
		lastSeen:  now,
		pricing:   deps.Pricing.WithDefaults(),
		logger:    deps.Logger,
	}

	store := preferences.NewMemoryStore()
	if seed != nil {
		preferences.Copy(store, seed, preferences.Keys...)
	}
	s.Preferences = preferences.NewRepository(store, deps.Logger)

	ids := deps.NewIDs()
	catalog := classes.GenerateCatalog(now, deps.CatalogDays, classes.DefaultSlotTemplates(), classes.DefaultGroupTemplates())
	cart := classes.NewCart(ids, deps.Clock, deps.Metrics, deps.Logger)

	s.Stay = stay.NewService(ids, deps.Skills, deps.Logger)
	s.Classes = classes.NewService(catalog, cart, deps.Logger)
	s.Classes.Reset(s.Preferences.FilterPreferences(), s.Preferences.SearchPrevInstructor())
	s.Loyalty = pricing.NewLoyaltyChecker(deps.Validator, deps.LoyaltyTimeout, deps.Metrics, deps.Logger)
	s.Flow = flow.New(deps.Logger)
	s.Notifier = notifications.NewHub(s, ids, deps.Logger)
	s.Timer = holdtimer.NewTimer(deps.Hold, deps.Scheduler(s), s.Notifier, cart, s.Flow, s, deps.Metrics, deps.Logger)

	return s
}

// Lock захватывает сессию
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock освобождает сессию
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Locale возвращает язык сессии
func (s *Session) Locale() string {
	return s.Preferences.Locale()
}

// Localizer тексты уведомлений на языке сессии
func (s *Session) Localizer() *i18n.Localizer {
	return i18n.For(s.Locale())
}

// Text текст уведомления на текущем языке сессии
func (s *Session) Text(key string) string {
	return s.Localizer().Text(key)
}

// PricingConfig возвращает тарифы сессии
func (s *Session) PricingConfig() domain.PricingConfig {
	return s.pricing
}

// SetCounts меняет количество участников и удаляет бронирования участников, выпавших из списка
func (s *Session) SetCounts(adults, children int) {
	before := s.Stay.Roster().Participants()
	s.Stay.SetCounts(adults, children)
	s.dropOrphanBookings(before)
}

// ResetStay возвращает пребывание к значениям по умолчанию,
// восстанавливает сохраненные фильтры и сбрасывает выбор слотов и групп
func (s *Session) ResetStay() {
	before := s.Stay.Roster().Participants()
	s.Stay.Reset()
	s.dropOrphanBookings(before)
	s.Classes.Reset(s.Preferences.FilterPreferences(), s.Preferences.SearchPrevInstructor())
	s.logger.Info("Session %s: stay reset", s.ID)
}

// Summary считает итог заказа по текущему состоянию
func (s *Session) Summary() pricing.Summary {
	return pricing.Summarize(pricing.Snapshot{
		Participants:   s.Stay.Roster().Participants(),
		Bookings:       s.Classes.Cart().Bookings(),
		HasLoyaltyCard: s.Loyalty.HasValidCard(),
		Config:         s.pricing,
	})
}

// touch отмечает активность сессии
func (s *Session) touch(now time.Time) {
	s.lastSeen = now
}

// close останавливает таймер и отключает клиентов уведомлений
func (s *Session) close() {
	s.mu.Lock()
	s.Timer.Stop()
	s.Loyalty.Reset()
	s.mu.Unlock()
	s.Notifier.Close()
}

func (s *Session) dropOrphanBookings(before []*domain.Participant) {
	for _, p := range before {
		if _, err := s.Stay.Roster().Get(p.ID); err == nil {
			continue
		}
		if n := s.Classes.Cart().RemoveParticipant(p.ID); n > 0 {
			s.logger.Info("Session %s: %d bookings of removed participant %s dropped", s.ID, n, p.ID)
		}
	}
}
