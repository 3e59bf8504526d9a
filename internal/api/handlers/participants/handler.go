package participants

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers"
	stayService "github.com/m04kA/SMC-SkiSchoolBooking/internal/service/stay"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "участник не найден"
	msgInvalidProfile     = "некорректные данные участника"
)

type Handler struct {
	registry SessionRegistry
	policy   handlers.StayPolicy
	logger   Logger
}

func NewHandler(registry SessionRegistry, policy handlers.StayPolicy, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		policy:   policy,
		logger:   logger,
	}
}

// Update PATCH /api/v1/sessions/{sessionId}/participants/{participantId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	participantID := mux.Vars(r)["participantId"]

	var req UpdateParticipantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /participants/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	p, err := s.Stay.Roster().Update(participantID, req.ToServiceUpdate())
	if err != nil {
		switch {
		case errors.Is(err, stayService.ErrParticipantNotFound):
			h.logger.Warn("PATCH /participants/{id} - Participant not found: session_id=%s, participant_id=%s", s.ID, participantID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, stayService.ErrInvalidInput):
			h.logger.Warn("PATCH /participants/{id} - Invalid profile: participant_id=%s, error=%v", participantID, err)
			handlers.RespondBadRequest(w, msgInvalidProfile)

		default:
			h.logger.Error("PATCH /participants/{id} - Failed to update participant: participant_id=%s, error=%v", participantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /participants/{id} - Participant updated: session_id=%s, participant_id=%s", s.ID, p.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewParticipantState(p, h.policy))
}
