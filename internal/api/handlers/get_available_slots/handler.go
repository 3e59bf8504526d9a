package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingKind     = "вид занятий обязателен (individual или shared)"
	msgInvalidAll      = "некорректный параметр all, ожидается true или false"
	msgUnknownKind     = "неизвестный вид занятий, ожидается individual или shared"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSessionNotFound = "сессия не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/slots
// Query params: kind (required), date (optional, YYYY-MM-DD), all (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	query := r.URL.Query()

	kind := query.Get("kind")
	if kind == "" {
		h.logger.Warn("GET /sessions/{id}/slots - Missing kind")
		handlers.RespondBadRequest(w, msgMissingKind)
		return
	}

	var date *string
	if query.Has("date") {
		d := query.Get("date")
		date = &d
	}

	useCaseReq, err := ToUseCaseRequest(sessionID, kind, date, query.Get("all"))
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/slots - Invalid all parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAll)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/slots - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, getAvailableSlots.ErrUnknownKind):
			h.logger.Warn("GET /sessions/{id}/slots - Unknown kind: %q", kind)
			handlers.RespondBadRequest(w, msgUnknownKind)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /sessions/{id}/slots - Invalid date: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /sessions/{id}/slots - Failed to get slots: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/slots - Slots retrieved: session_id=%s, kind=%s, shown=%d, total=%d",
		sessionID, kind, len(result.Slots), result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
