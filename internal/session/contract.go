package session

import (
	"time"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/classes"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/holdtimer"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/pricing"
)

// IDGenerator генератор коротких идентификаторов участников, бронирований и сообщений
type IDGenerator interface {
	New() string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// SchedulerFactory создает планировщик таймера, сериализованный блокировкой сессии
type SchedulerFactory func(s *Session) holdtimer.Scheduler

// Metrics метрики, используемые сессией и ее сервисами
type Metrics interface {
	classes.Metrics
	pricing.Metrics
	holdtimer.Metrics
	SessionOpened()
	SessionClosed(evicted bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
