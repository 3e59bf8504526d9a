package loyaltycard

import (
	"context"
	"strings"
	"time"
)

// Stub имитация сервиса карт с фиксированной задержкой.
// Карта действительна, если номер проходит проверку контрольной суммы.
type Stub struct {
	latency time.Duration
	log     Logger
}

// NewStub создает имитацию сервиса карт
func NewStub(latency time.Duration, log Logger) *Stub {
	return &Stub{latency: latency, log: log}
}

// Validate ждет latency и проверяет номер карты
func (s *Stub) Validate(ctx context.Context, cardNumber string) (bool, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}

	valid := HasValidChecksum(cardNumber)
	s.log.Info("Loyalty card stub check, valid=%t", valid)
	return valid, nil
}

// HasValidChecksum проверяет номер карты (8-19 цифр, пробелы и дефисы игнорируются) по алгоритму Луна
func HasValidChecksum(cardNumber string) bool {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(cardNumber)
	if len(digits) < 8 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		ch := digits[i]
		if ch < '0' || ch > '9' {
			return false
		}
		d := int(ch - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
