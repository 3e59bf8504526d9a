package flow

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers"
	flowService "github.com/m04kA/SMC-SkiSchoolBooking/internal/service/flow"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownAction      = "неизвестное действие мастера"
	msgUnknownStep        = "неизвестный шаг"
	msgStepNotCompleted   = "текущий шаг не завершен"
	msgNoNextStep         = "это последний шаг"
)

type Handler struct {
	registry SessionRegistry
	logger   Logger
}

func NewHandler(registry SessionRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Get GET /api/v1/sessions/{sessionId}/flow
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	handlers.RespondJSON(w, http.StatusOK, handlers.NewFlowState(s.Flow))
}

// Update PUT /api/v1/sessions/{sessionId}/flow
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateFlowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/flow - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	if err := req.Apply(s.Flow); err != nil {
		switch {
		case errors.Is(err, errUnknownAction):
			h.logger.Warn("PUT /sessions/{id}/flow - Unknown action: %q", req.Action)
			handlers.RespondBadRequest(w, msgUnknownAction)

		case errors.Is(err, flowService.ErrUnknownStep):
			h.logger.Warn("PUT /sessions/{id}/flow - Unknown step: %v", err)
			handlers.RespondBadRequest(w, msgUnknownStep)

		case errors.Is(err, flowService.ErrStepNotCompleted):
			h.logger.Warn("PUT /sessions/{id}/flow - Step not completed: session_id=%s, %v", s.ID, err)
			handlers.RespondConflict(w, msgStepNotCompleted)

		case errors.Is(err, flowService.ErrNoNextStep):
			h.logger.Warn("PUT /sessions/{id}/flow - No next step: session_id=%s", s.ID)
			handlers.RespondConflict(w, msgNoNextStep)

		default:
			h.logger.Error("PUT /sessions/{id}/flow - Failed to update flow: session_id=%s, error=%v", s.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	current := s.Flow.Current()
	h.logger.Info("PUT /sessions/{id}/flow - Flow updated: session_id=%s, action=%s, current=%d.%d",
		s.ID, req.Action, current.Parent, current.Child)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewFlowState(s.Flow))
}
