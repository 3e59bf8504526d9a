package loyalty_card

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/i18n"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/pricing"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCardNumber  = "номер карты обязателен"
	msgInvalidWait        = "некорректный параметр wait, ожидается true или false"
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

// Get GET /api/v1/sessions/{sessionId}/loyalty-card
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromState(s.Loyalty.State()))
}

// Check POST /api/v1/sessions/{sessionId}/loyalty-card
// Запускает проверку и сразу отвечает 202 с состоянием "загрузка".
// С wait=true ждет результата (или отмены запроса) и отвечает 200.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	wait := false
	if v := r.URL.Query().Get("wait"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("POST /sessions/{id}/loyalty-card - Invalid wait parameter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWait)
			return
		}
		wait = parsed
	}

	var req CheckCardRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/loyalty-card - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if !req.Validate() {
		h.logger.Warn("POST /sessions/{id}/loyalty-card - Missing card number")
		handlers.RespondBadRequest(w, msgMissingCardNumber)
		return
	}

	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	done, gen := s.Loyalty.Check(r.Context(), req.CardNumber)
	go h.notifyWhenDone(s, done, gen)

	h.logger.Info("POST /sessions/{id}/loyalty-card - Check started: session_id=%s", s.ID)

	if !wait {
		handlers.RespondJSON(w, http.StatusAccepted, FromState(s.Loyalty.State()))
		return
	}

	select {
	case <-done:
		handlers.RespondJSON(w, http.StatusOK, FromState(s.Loyalty.State()))
	case <-r.Context().Done():
		h.logger.Warn("POST /sessions/{id}/loyalty-card - Request cancelled while waiting: session_id=%s", s.ID)
	}
}

// notifyWhenDone показывает уведомление с результатом проверки gen.
// Результат устаревшей или неудачной проверки не показывается.
func (h *Handler) notifyWhenDone(s *session.Session, done <-chan struct{}, gen uint64) {
	<-done

	s.Lock()
	defer s.Unlock()

	key, severity, ok := resultMessage(s.Loyalty.State(), gen)
	if !ok {
		return
	}
	s.Notifier.ShowSimpleMessage(s.Text(key), severity)
}

// resultMessage выбирает текст уведомления для завершенной проверки gen.
// ok=false, если состояние принадлежит другой проверке, еще загружается или проверка не удалась.
func resultMessage(state pricing.LoyaltyState, gen uint64) (string, domain.Severity, bool) {
	if state.Generation != gen || state.Loading || state.Valid == nil {
		return "", "", false
	}
	if *state.Valid {
		return i18n.KeyLoyaltyCardValid, domain.SeveritySuccess, true
	}
	return i18n.KeyLoyaltyCardInvalid, domain.SeverityError, true
}
