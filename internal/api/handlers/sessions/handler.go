package sessions

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/infra/storage/preferences"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
)

const msgNotFound = "сессия не найдена"

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

// Create POST /api/v1/sessions
// Сохраненные в cookies предпочтения переносятся в новую сессию
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	s := h.registry.Create(preferences.NewCookieStore(w, r))

	s.Lock()
	state := handlers.NewSessionState(s, h.policy)
	s.Unlock()

	h.logger.Info("POST /sessions - Session created: session_id=%s", s.ID)
	handlers.RespondJSON(w, http.StatusCreated, state)
}

// Get GET /api/v1/sessions/{sessionId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	s.Lock()
	state := handlers.NewSessionState(s, h.policy)
	s.Unlock()

	handlers.RespondJSON(w, http.StatusOK, state)
}

// Delete DELETE /api/v1/sessions/{sessionId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sessionId"]

	if err := h.registry.Delete(id); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			h.logger.Warn("DELETE /sessions/{id} - Session not found: session_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /sessions/{id} - Failed to delete session: session_id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /sessions/{id} - Session closed: session_id=%s", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
