package stay

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCounts      = "некорректное количество участников (не более 12 вместе)"
	msgInvalidDate        = "некорректная дата пребывания, ожидается YYYY-MM-DD"
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

// Update PUT /api/v1/sessions/{sessionId}/stay
// Изменение количества синхронизирует список участников
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateStayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/stay - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var date *domain.DateOfStay
	if req.Date != nil {
		parsed, err := req.Date.DateOfStay()
		if err != nil {
			h.logger.Warn("PUT /sessions/{id}/stay - %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	adults, children, err := req.Counts(s.Stay.Stay())
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/stay - %v: session_id=%s", err, s.ID)
		if errors.Is(err, errInvalidCounts) {
			handlers.RespondBadRequest(w, msgInvalidCounts)
			return
		}
		handlers.RespondInternalError(w)
		return
	}

	switch {
	case date != nil:
		s.Stay.SetDate(date)
	case req.ClearDate:
		s.Stay.SetDate(nil)
	}
	s.SetCounts(adults, children)

	h.logger.Info("PUT /sessions/{id}/stay - Stay updated: session_id=%s, adults=%d, children=%d",
		s.ID, adults, children)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewSessionState(s, h.policy))
}

// Reset POST /api/v1/sessions/{sessionId}/stay/reset
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	s.ResetStay()

	h.logger.Info("POST /sessions/{id}/stay/reset - Stay reset: session_id=%s", s.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewSessionState(s, h.policy))
}
