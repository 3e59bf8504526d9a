package loyaltycard

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("loyaltycard client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("loyaltycard client: invalid response")

	// ErrServiceDegraded возвращается, когда сервис карт недоступен
	// Карта в этом случае считается непроверенной, скидка не применяется
	ErrServiceDegraded = errors.New("loyaltycard service unavailable: graceful degradation applied")
)
