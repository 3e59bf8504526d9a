package notifications

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers"
	hub "github.com/m04kA/SMC-SkiSchoolBooking/internal/api/notifications"
)

const msgMessageNotFound = "уведомление не найдено или уже обработано"

// OpenResponse HTTP response model
type OpenResponse struct {
	Messages []hub.Message `json:"messages"`
}

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

// Connect GET /api/v1/sessions/{sessionId}/ws
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	h.logger.Info("GET /sessions/{id}/ws - Client connecting: session_id=%s", s.ID)
	s.Notifier.ServeHTTP(w, r)
}

// List GET /api/v1/sessions/{sessionId}/notifications
// Открытые уведомления с действием, для клиентов без websocket
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	messages := s.Notifier.Open()
	if messages == nil {
		messages = []hub.Message{}
	}
	handlers.RespondJSON(w, http.StatusOK, OpenResponse{Messages: messages})
}

// Act POST /api/v1/sessions/{sessionId}/notifications/{messageId}/action
// Колбэк берет блокировку сессии сам, поэтому здесь сессия не блокируется
func (h *Handler) Act(w http.ResponseWriter, r *http.Request) {
	messageID := mux.Vars(r)["messageId"]

	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	if !s.Notifier.Act(messageID) {
		h.logger.Warn("POST /notifications/{messageId}/action - Message not found: session_id=%s, message_id=%s", s.ID, messageID)
		handlers.RespondNotFound(w, msgMessageNotFound)
		return
	}

	h.logger.Info("POST /notifications/{messageId}/action - Action performed: session_id=%s, message_id=%s", s.ID, messageID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// Dismiss DELETE /api/v1/sessions/{sessionId}/notifications/{messageId}
func (h *Handler) Dismiss(w http.ResponseWriter, r *http.Request) {
	messageID := mux.Vars(r)["messageId"]

	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	s.Notifier.Dismiss(messageID)
	h.logger.Info("DELETE /notifications/{messageId} - Dismissed: session_id=%s, message_id=%s", s.ID, messageID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
