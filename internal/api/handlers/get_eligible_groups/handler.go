package get_eligible_groups

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers"
	getEligibleGroups "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/get_eligible_groups"
)

const (
	msgMissingParticipant  = "ID участника обязателен"
	msgSessionNotFound     = "сессия не найдена"
	msgParticipantNotFound = "участник не найден"
)

type Handler struct {
	useCase GetEligibleGroupsUseCase
	logger  Logger
}

func NewHandler(useCase GetEligibleGroupsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/groups
// Query params: participantId (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	participantID := r.URL.Query().Get("participantId")
	if participantID == "" {
		h.logger.Warn("GET /sessions/{id}/groups - Missing participant ID")
		handlers.RespondBadRequest(w, msgMissingParticipant)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getEligibleGroups.Request{
		SessionID:     sessionID,
		ParticipantID: participantID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getEligibleGroups.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/groups - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, getEligibleGroups.ErrParticipantNotFound):
			h.logger.Warn("GET /sessions/{id}/groups - Participant not found: participant_id=%s", participantID)
			handlers.RespondNotFound(w, msgParticipantNotFound)

		default:
			h.logger.Error("GET /sessions/{id}/groups - Failed to get groups: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/groups - Groups retrieved: session_id=%s, participant_id=%s, count=%d",
		sessionID, participantID, len(result.Groups))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
