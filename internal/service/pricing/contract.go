package pricing

import "context"

// CardValidator внешний валидатор карт постоянного клиента
type CardValidator interface {
	Validate(ctx context.Context, cardNumber string) (bool, error)
}

// Metrics счетчик проверок карт
type Metrics interface {
	LoyaltyCheck(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
