package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers"
	cancelBooking "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/cancel_booking"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgSessionNotFound  = "сессия не найдена"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}/bookings/{bookingId}
// Удаление строки группового пакета удаляет все его даты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	bookingID := vars["bookingId"]

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{
		SessionID: sessionID,
		BookingID: bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrSessionNotFound):
			h.logger.Warn("DELETE /sessions/{id}/bookings/{bookingId} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("DELETE /sessions/{id}/bookings/{bookingId} - Invalid booking ID: %q", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("DELETE /sessions/{id}/bookings/{bookingId} - Failed to remove booking: session_id=%s, booking_id=%s, error=%v",
				sessionID, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{id}/bookings/{bookingId} - Booking removed: session_id=%s, booking_id=%s, removed=%d",
		sessionID, bookingID, result.Removed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
