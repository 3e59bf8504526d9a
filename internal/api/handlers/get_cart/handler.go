package get_cart

import (
	"net/http"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers"
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

// Handle GET /api/v1/sessions/{sessionId}/bookings
// Query params: participantId (опционально) - только строки участника
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	participantID := r.URL.Query().Get("participantId")

	s.Lock()
	defer s.Unlock()

	cfg := s.PricingConfig()
	resp := CartResponse{Bookings: make([]BookingResponse, 0)}
	for _, b := range s.Classes.Cart().Bookings() {
		if participantID != "" && b.ParticipantID != participantID {
			continue
		}
		resp.Bookings = append(resp.Bookings, toBookingResponse(b, cfg))
	}
	resp.Total = len(resp.Bookings)

	h.logger.Info("GET /sessions/{id}/bookings - Cart retrieved: session_id=%s, count=%d", s.ID, resp.Total)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
