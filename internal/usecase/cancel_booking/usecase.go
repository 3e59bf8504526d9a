package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/i18n"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
)

// UseCase use case для удаления занятия из корзины
type UseCase struct {
	sessions SessionRegistry
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionRegistry, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		logger:   logger,
	}
}

// Execute удаляет бронирование вместе с пакетом группы.
// Отсутствующее бронирование не является ошибкой: ответ содержит Removed = 0.
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: session=%s, booking=%s", req.SessionID, req.BookingID)

	if req.SessionID == "" || req.BookingID == "" {
		uc.logger.Warn("CancelBooking: validation failed: session and booking are required")
		return nil, fmt.Errorf("%w: sessionID and bookingID are required", ErrInvalidInput)
	}

	s, err := uc.sessions.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			uc.logger.Warn("CancelBooking: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("CancelBooking: failed to get session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	s.Lock()
	defer s.Unlock()

	removed := s.Classes.Cart().Remove(req.BookingID)
	if removed > 0 {
		s.Notifier.ShowSimpleMessage(s.Text(i18n.KeyBookingRemoved), domain.SeverityInfo)
	}

	resp := &Response{
		Removed:  removed,
		CartSize: s.Classes.Cart().Len(),
	}

	uc.logger.Info("CancelBooking: session=%s, booking=%s: %d lines removed, cart size %d",
		req.SessionID, req.BookingID, removed, resp.CartSize)

	return resp, nil
}
