package create_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidInput           = "некорректные параметры бронирования"
	msgSessionNotFound        = "сессия не найдена"
	msgParticipantNotFound    = "участник не найден"
	msgSlotNotFound           = "занятие не найдено"
	msgGroupNotFound          = "группа не найдена"
	msgLessonTypeNotPermitted = "этот тип занятий недоступен участнику"
	msgGroupNotEligible       = "группа не подходит по виду спорта или длительности пребывания"
	msgInsuranceNotOffered    = "для этой группы страховка не предлагается"
	msgChildAddOnNotAllowed   = "дополнительная опция доступна только для детей"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/bookings - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, createBooking.ErrParticipantNotFound):
			h.logger.Warn("POST /sessions/{id}/bookings - Participant not found: participant_id=%s", req.ParticipantID)
			handlers.RespondNotFound(w, msgParticipantNotFound)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /sessions/{id}/bookings - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrGroupNotFound):
			h.logger.Warn("POST /sessions/{id}/bookings - Group not found: group_id=%d", req.GroupID)
			handlers.RespondNotFound(w, msgGroupNotFound)

		case errors.Is(err, createBooking.ErrLessonTypeNotPermitted):
			h.logger.Warn("POST /sessions/{id}/bookings - Lesson type not permitted: participant_id=%s, type=%s", req.ParticipantID, req.Type)
			handlers.RespondConflict(w, msgLessonTypeNotPermitted)

		case errors.Is(err, createBooking.ErrGroupNotEligible):
			h.logger.Warn("POST /sessions/{id}/bookings - Group not eligible: participant_id=%s, group_id=%d", req.ParticipantID, req.GroupID)
			handlers.RespondConflict(w, msgGroupNotEligible)

		case errors.Is(err, createBooking.ErrInsuranceNotOffered):
			h.logger.Warn("POST /sessions/{id}/bookings - Insurance not offered: group_id=%d", req.GroupID)
			handlers.RespondBadRequest(w, msgInsuranceNotOffered)

		case errors.Is(err, createBooking.ErrChildAddOnNotAllowed):
			h.logger.Warn("POST /sessions/{id}/bookings - Child add-on not allowed: participant_id=%s", req.ParticipantID)
			handlers.RespondBadRequest(w, msgChildAddOnNotAllowed)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sessions/{id}/bookings - Failed to create booking: session_id=%s, participant_id=%s, error=%v",
				sessionID, req.ParticipantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/bookings - Booking added: session_id=%s, participant_id=%s, lines=%d, cart_size=%d",
		sessionID, req.ParticipantID, len(result.Bookings), result.CartSize)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
