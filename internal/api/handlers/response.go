package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
)

const (
	msgInternalError   = "внутренняя ошибка сервера"
	msgSessionNotFound = "сессия не найдена"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Message string `json:"message"`
}

// SessionGetter поиск сессии по ID
type SessionGetter interface {
	Get(id string) (*session.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RespondJSON пишет JSON-ответ; nil тело дает пустой ответ с кодом
func RespondJSON(w http.ResponseWriter, status int, body interface{}) {
	if body == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// RespondError пишет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Message: message})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondTooManyRequests 429
func RespondTooManyRequests(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusTooManyRequests, message)
}

// RespondInternalError 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON декодирует тело запроса
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

// LookupSession находит сессию из пути запроса ({sessionId}).
// Если сессии нет, пишет 404 и возвращает false.
func LookupSession(w http.ResponseWriter, r *http.Request, sessions SessionGetter, logger Logger) (*session.Session, bool) {
	id := mux.Vars(r)["sessionId"]
	s, err := sessions.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			logger.Warn("%s %s - Session not found: session_id=%s", r.Method, r.URL.Path, id)
			RespondNotFound(w, msgSessionNotFound)
			return nil, false
		}
		logger.Error("%s %s - Failed to get session: session_id=%s, error=%v", r.Method, r.URL.Path, id, err)
		RespondInternalError(w)
		return nil, false
	}
	return s, true
}
