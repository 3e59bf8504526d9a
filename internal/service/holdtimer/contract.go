package holdtimer

import (
	"time"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
)

// Scheduler планировщик тиков и отложенных действий.
// Функция отмены должна гарантировать, что fn больше не будет вызвана.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
	After(delay time.Duration, fn func()) (cancel func())
}

// Notifier внешний показ уведомлений
type Notifier interface {
	ShowSimpleMessage(text string, severity domain.Severity)
	ShowActionMessage(content, actionLabel string, onAction func())
}

// CartClearer корзина, очищаемая по истечении времени
type CartClearer interface {
	Clear() int
}

// Navigator возврат пользователя к выбору занятий
type Navigator interface {
	ReturnToClassSelection()
}

// Messages тексты уведомлений
type Messages interface {
	Text(key string) string
}

// Metrics счетчик событий таймера
type Metrics interface {
	HoldEvent(event string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
