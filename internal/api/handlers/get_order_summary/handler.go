package get_order_summary

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers"
	getOrderSummary "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/get_order_summary"
)

const msgSessionNotFound = "сессия не найдена"

type Handler struct {
	useCase GetOrderSummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetOrderSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), &getOrderSummary.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, getOrderSummary.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/summary - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /sessions/{id}/summary - Failed to build summary: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/summary - Summary built: session_id=%s, bookings=%d, total=%.2f",
		sessionID, result.Bookings, result.Total.Value)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
