package holdtimer

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/i18n"
)

// State состояние таймера удержания брони
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateExpired State = "expired"
)

const tickInterval = time.Second

// Config параметры таймера в секундах
type Config struct {
	DurationSeconds  int
	WarningSeconds   int
	ExtensionSeconds int
	// RedirectDelay задержка автоматического возврата к выбору занятий после истечения, 0 - выключено
	RedirectDelay time.Duration
}

// DefaultConfig 20 минут, предупреждение за 5 минут, продление на 5 минут
func DefaultConfig() Config {
	return Config{
		DurationSeconds:  domain.HoldDurationSeconds,
		WarningSeconds:   domain.HoldWarningSeconds,
		ExtensionSeconds: domain.HoldExtensionSeconds,
	}
}

// Timer обратный отсчет удержания брони.
// Методы и колбэки планировщика должны вызываться последовательно (под блокировкой сессии).
// Операции таймера не возвращают ошибок.
type Timer struct {
	cfg       Config
	remaining int
	state     State
	warned    bool

	cancelTick     func()
	cancelRedirect func()

	scheduler Scheduler
	notifier  Notifier
	cart      CartClearer
	navigator Navigator
	messages  Messages
	metrics   Metrics
	logger    Logger
}

// NewTimer создает таймер в состоянии idle с полной длительностью
func NewTimer(
	cfg Config,
	scheduler Scheduler,
	notifier Notifier,
	cart CartClearer,
	navigator Navigator,
	messages Messages,
	metrics Metrics,
	logger Logger,
) *Timer {
	d := DefaultConfig()
	if cfg.DurationSeconds <= 0 {
		cfg.DurationSeconds = d.DurationSeconds
	}
	if cfg.WarningSeconds <= 0 {
		cfg.WarningSeconds = d.WarningSeconds
	}
	if cfg.ExtensionSeconds <= 0 {
		cfg.ExtensionSeconds = d.ExtensionSeconds
	}

	return &Timer{
		cfg:       cfg,
		remaining: cfg.DurationSeconds,
		state:     StateIdle,
		scheduler: scheduler,
		notifier:  notifier,
		cart:      cart,
		navigator: navigator,
		messages:  messages,
		metrics:   metrics,
		logger:    logger,
	}
}

// Start запускает отсчет; повторный вызов во время работы ничего не делает.
// После истечения запуск начинает новый полный отсчет.
func (t *Timer) Start() {
	if t.state == StateRunning {
		return
	}
	if t.state == StateExpired || t.remaining <= 0 {
		t.cancelPendingRedirect()
		t.remaining = t.cfg.DurationSeconds
		t.warned = false
	}

	t.state = StateRunning
	t.cancelTick = t.scheduler.Every(tickInterval, t.tick)
	t.metrics.HoldEvent("started")
	t.logger.Info("HoldTimer.Start: running, remaining=%s", t.FormattedTime())
}

// Stop останавливает отсчет и отменяет отложенный переход
func (t *Timer) Stop() {
	t.stopTicking()
	t.cancelPendingRedirect()
	if t.state != StateIdle {
		t.logger.Info("HoldTimer.Stop: stopped at remaining=%s", t.FormattedTime())
	}
	t.state = StateIdle
}

// Reset останавливает таймер и восстанавливает полную длительность
func (t *Timer) Reset() {
	t.Stop()
	t.remaining = t.cfg.DurationSeconds
	t.warned = false
	t.logger.Info("HoldTimer.Reset: remaining=%s", t.FormattedTime())
}

// Extend добавляет время и разрешает повторное предупреждение.
// Остановленный или истекший таймер не перезапускается.
func (t *Timer) Extend() {
	t.cancelPendingRedirect()
	t.remaining += t.cfg.ExtensionSeconds
	t.warned = false

	t.notifier.ShowSimpleMessage(t.messages.Text(i18n.KeyAdded5Minutes), domain.SeveritySuccess)
	t.metrics.HoldEvent("extended")
	t.logger.Info("HoldTimer.Extend: remaining=%s, state=%s", t.FormattedTime(), t.state)
}

// State возвращает состояние
func (t *Timer) State() State {
	return t.state
}

// Remaining возвращает оставшиеся секунды
func (t *Timer) Remaining() int {
	return t.remaining
}

// WarningShown true, если предупреждение уже показано в текущем цикле
func (t *Timer) WarningShown() bool {
	return t.warned
}

// FormattedTime оставшееся время в формате MM:SS
func (t *Timer) FormattedTime() string {
	r := t.remaining
	if r < 0 {
		r = 0
	}
	return fmt.Sprintf("%02d:%02d", r/60, r%60)
}

func (t *Timer) tick() {
	if t.state != StateRunning {
		return
	}

	t.remaining--

	if t.remaining == t.cfg.WarningSeconds && !t.warned {
		t.warned = true
		t.notifier.ShowActionMessage(
			t.messages.Text(i18n.KeyTimeExpireWarning),
			t.messages.Text(i18n.KeyExtendTimeBy5),
			t.Extend,
		)
		t.metrics.HoldEvent("warning")
		t.logger.Info("HoldTimer: warning shown at remaining=%s", t.FormattedTime())
	}

	if t.remaining <= 0 {
		t.remaining = 0
		t.expire()
	}
}

// expire очищает корзину и предлагает вернуться к выбору занятий
func (t *Timer) expire() {
	t.stopTicking()
	t.state = StateExpired

	removed := t.cart.Clear()
	t.notifier.ShowActionMessage(
		t.messages.Text(i18n.KeyBookingTimeExpired),
		t.messages.Text(i18n.KeyAddNewClasses),
		t.navigator.ReturnToClassSelection,
	)
	if t.cfg.RedirectDelay > 0 {
		t.cancelRedirect = t.scheduler.After(t.cfg.RedirectDelay, func() {
			t.cancelRedirect = nil
			t.navigator.ReturnToClassSelection()
		})
	}

	t.metrics.HoldEvent("expired")
	t.logger.Warn("HoldTimer: expired, %d bookings removed from cart", removed)
}

func (t *Timer) stopTicking() {
	if t.cancelTick != nil {
		t.cancelTick()
		t.cancelTick = nil
	}
}

func (t *Timer) cancelPendingRedirect() {
	if t.cancelRedirect != nil {
		t.cancelRedirect()
		t.cancelRedirect = nil
	}
}
