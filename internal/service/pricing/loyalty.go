package pricing

import (
	"context"
	"strings"
	"sync"
	"time"
)

// LoyaltyState видимое состояние проверки карты
type LoyaltyState struct {
	CardNumber string
	Valid      *bool // nil - карта не проверена
	Loading    bool
	Generation uint64 // проверка, к которой относится состояние
}

// LoyaltyChecker асинхронная проверка карты постоянного клиента.
// Каждая проверка получает номер поколения; результат устаревшей проверки отбрасывается.
type LoyaltyChecker struct {
	mu         sync.Mutex
	generation uint64
	state      LoyaltyState

	validator CardValidator
	timeout   time.Duration
	metrics   Metrics
	logger    Logger
}

// NewLoyaltyChecker создает проверку карт поверх валидатора
func NewLoyaltyChecker(validator CardValidator, timeout time.Duration, metrics Metrics, logger Logger) *LoyaltyChecker {
	return &LoyaltyChecker{
		validator: validator,
		timeout:   timeout,
		metrics:   metrics,
		logger:    logger,
	}
}

// Check сбрасывает результат в "не проверено", включает загрузку и запускает проверку.
// Не блокирует вызывающего; возвращаемый канал закрывается по завершении проверки.
// Возвращается также поколение проверки для сравнения с LoyaltyState.Generation.
func (c *LoyaltyChecker) Check(ctx context.Context, cardNumber string) (<-chan struct{}, uint64) {
	cardNumber = strings.TrimSpace(cardNumber)

	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.state = LoyaltyState{CardNumber: cardNumber, Loading: true}
	c.mu.Unlock()

	c.logger.Info("LoyaltyCheck: started generation=%d", gen)

	done := make(chan struct{})
	// проверка переживает HTTP-запрос, который ее запустил
	checkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	go func() {
		defer close(done)
		defer cancel()

		valid, err := c.validator.Validate(checkCtx, cardNumber)
		c.complete(gen, valid, err)
	}()

	return done, gen
}

// State возвращает текущее состояние проверки
func (c *LoyaltyChecker) State() LoyaltyState {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Generation = c.generation
	if s.Valid != nil {
		v := *s.Valid
		s.Valid = &v
	}
	return s
}

// HasValidCard true, если последняя проверка подтвердила карту
func (c *LoyaltyChecker) HasValidCard() bool {
	s := c.State()
	return s.Valid != nil && *s.Valid
}

// Reset забывает карту; незавершенная проверка будет проигнорирована
func (c *LoyaltyChecker) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.state = LoyaltyState{}
}

func (c *LoyaltyChecker) complete(gen uint64, valid bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Info("LoyaltyCheck: generation=%d superseded by %d, result ignored", gen, c.generation)
		c.metrics.LoyaltyCheck("superseded")
		return
	}

	c.state.Loading = false
	if err != nil {
		c.logger.Error("LoyaltyCheck: generation=%d failed: %v", gen, err)
		c.metrics.LoyaltyCheck("error")
		return
	}

	c.state.Valid = &valid
	if valid {
		c.metrics.LoyaltyCheck("valid")
	} else {
		c.metrics.LoyaltyCheck("invalid")
	}
	c.logger.Info("LoyaltyCheck: generation=%d completed, valid=%t", gen, valid)
}
