package timer

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers"
)

// Действия с таймером удержания
const (
	ActionStart  = "start"
	ActionStop   = "stop"
	ActionReset  = "reset"
	ActionExtend = "extend"
)

const msgUnknownAction = "неизвестное действие, ожидается start, stop, reset или extend"

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

// Get GET /api/v1/sessions/{sessionId}/timer
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	handlers.RespondJSON(w, http.StatusOK, handlers.NewTimerState(s))
}

// Act POST /api/v1/sessions/{sessionId}/timer/{action}
func (h *Handler) Act(w http.ResponseWriter, r *http.Request) {
	action := mux.Vars(r)["action"]
	switch action {
	case ActionStart, ActionStop, ActionReset, ActionExtend:
	default:
		h.logger.Warn("POST /sessions/{id}/timer/{action} - Unknown action: %q", action)
		handlers.RespondBadRequest(w, msgUnknownAction)
		return
	}

	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	switch action {
	case ActionStart:
		s.Timer.Start()
	case ActionStop:
		s.Timer.Stop()
	case ActionReset:
		s.Timer.Reset()
	case ActionExtend:
		s.Timer.Extend()
	}

	h.logger.Info("POST /sessions/{id}/timer/{action} - Timer %s: session_id=%s, remaining=%d",
		action, s.ID, s.Timer.Remaining())
	handlers.RespondJSON(w, http.StatusOK, handlers.NewTimerState(s))
}
