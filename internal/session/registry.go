package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/infra/storage/preferences"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/holdtimer"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/pricing"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/stay"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/scheduler"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/uid"
)

const (
	defaultCatalogDays    = domain.CatalogDays
	defaultIdleTimeout    = time.Hour
	defaultLoyaltyTimeout = 5 * time.Second
)

// Deps зависимости, общие для всех сессий
type Deps struct {
	// NewIDs создает генератор идентификаторов для каждой сессии;
	// по умолчанию uid.Generator, освобождаемый вместе с сессией
	NewIDs    func() IDGenerator
	Clock     TimeProvider
	Skills    stay.SkillCatalog
	Validator pricing.CardValidator
	Metrics   Metrics
	Logger    Logger

	Pricing        domain.PricingConfig
	Hold           holdtimer.Config
	CatalogDays    int
	LoyaltyTimeout time.Duration
	// Scheduler по умолчанию сериализует тики таймера блокировкой сессии
	Scheduler SchedulerFactory
}

// Registry хранилище активных сессий в памяти
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	deps        Deps
	idleTimeout time.Duration
	stopEvict   func()
}

// NewRegistry создает хранилище сессий
func NewRegistry(deps Deps, idleTimeout time.Duration) *Registry {
	if deps.CatalogDays <= 0 {
		deps.CatalogDays = defaultCatalogDays
	}
	if deps.LoyaltyTimeout <= 0 {
		deps.LoyaltyTimeout = defaultLoyaltyTimeout
	}
	if deps.NewIDs == nil {
		deps.NewIDs = func() IDGenerator { return uid.NewGenerator() }
	}
	if deps.Scheduler == nil {
		deps.Scheduler = func(s *Session) holdtimer.Scheduler { return scheduler.NewLocked(s) }
	}
	if idleTimeout <= 0 {
		idleTimeout = defaultIdleTimeout
	}

	return &Registry{
		sessions:    make(map[string]*Session),
		deps:        deps,
		idleTimeout: idleTimeout,
	}
}

// Create открывает новую сессию; seed - сохраненные предпочтения клиента (может быть nil)
func (r *Registry) Create(seed preferences.Store) *Session {
	s := newSession(uuid.NewString(), r.deps, seed)

	r.mu.Lock()
	r.sessions[s.ID] = s
	total := len(r.sessions)
	r.mu.Unlock()

	r.deps.Metrics.SessionOpened()
	r.deps.Logger.Info("Session.Create: session %s opened, active=%d", s.ID, total)
	return s
}

// Get возвращает сессию и отмечает ее активность
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(r.deps.Clock.Now())
	return s, nil
}

// Delete закрывает сессию
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if !ok {
		r.deps.Logger.Warn("Session.Delete: session %s not found", id)
		return ErrSessionNotFound
	}

	s.close()
	r.deps.Metrics.SessionClosed(false)
	r.deps.Logger.Info("Session.Delete: session %s closed", id)
	return nil
}

// Len количество активных сессий
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// EvictIdle закрывает сессии, неактивные дольше idleTimeout; возвращает количество закрытых
func (r *Registry) EvictIdle() int {
	now := r.deps.Clock.Now()

	r.mu.Lock()
	idle := make([]*Session, 0)
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) >= r.idleTimeout {
			idle = append(idle, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range idle {
		s.close()
		r.deps.Metrics.SessionClosed(true)
		r.deps.Logger.Info("Session.EvictIdle: session %s evicted, idle since %s", s.ID, s.lastSeen.Format(time.RFC3339))
	}
	return len(idle)
}

// StartEviction периодически вытесняет неактивные сессии
func (r *Registry) StartEviction(interval time.Duration) {
	// вытеснение само берет блокировку реестра, внешний Locker не нужен
	r.stopEvict = scheduler.NewLocked(noopLocker{}).Every(interval, func() { r.EvictIdle() })
}

// Close останавливает вытеснение и закрывает все сессии
func (r *Registry) Close() {
	if r.stopEvict != nil {
		r.stopEvict()
	}

	r.mu.Lock()
	all := make([]*Session, 0, len(r.sessions))
	for id, s := range r.sessions {
		all = append(all, s)
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	for _, s := range all {
		s.close()
		r.deps.Metrics.SessionClosed(false)
	}
}

type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}
