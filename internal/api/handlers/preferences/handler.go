package preferences

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/i18n"
	prefStorage "github.com/m04kA/SMC-SkiSchoolBooking/internal/infra/storage/preferences"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownKind        = "неизвестный вид занятий, ожидается individual или shared"
	msgUnsupportedLocale  = "неподдерживаемый язык"
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

// Get GET /api/v1/sessions/{sessionId}/preferences/{kind}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	kind := domain.SlotKind(mux.Vars(r)["kind"])
	if !kind.IsValid() {
		h.logger.Warn("GET /preferences/{kind} - Unknown kind: %q", kind)
		handlers.RespondBadRequest(w, msgUnknownKind)
		return
	}

	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	h.respond(w, s, kind)
}

// Update PUT /api/v1/sessions/{sessionId}/preferences/{kind}
// Сбрасывает пагинацию списка; при save=true фильтры сохраняются в cookies
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	kind := domain.SlotKind(mux.Vars(r)["kind"])
	if !kind.IsValid() {
		h.logger.Warn("PUT /preferences/{kind} - Unknown kind: %q", kind)
		handlers.RespondBadRequest(w, msgUnknownKind)
		return
	}

	var req UpdatePreferencesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /preferences/{kind} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	prefs := req.FilterPreferences.WithDefaults()
	if err := s.Classes.SetPreferences(kind, prefs); err != nil {
		h.logger.Error("PUT /preferences/{kind} - Failed to set preferences: session_id=%s, error=%v", s.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	if req.Save {
		cookies := prefStorage.NewRepository(prefStorage.NewCookieStore(w, r), h.logger)
		for _, repo := range []*prefStorage.Repository{s.Preferences, cookies} {
			if err := repo.SaveFilterPreferences(prefs); err != nil {
				h.logger.Error("PUT /preferences/{kind} - Failed to save preferences: session_id=%s, error=%v", s.ID, err)
				handlers.RespondInternalError(w)
				return
			}
		}
	}

	h.logger.Info("PUT /preferences/{kind} - Preferences updated: session_id=%s, kind=%s, saved=%t", s.ID, kind, req.Save)
	h.respond(w, s, kind)
}

// UpdatePreviousInstructor PUT /api/v1/sessions/{sessionId}/previous-instructor
func (h *Handler) UpdatePreviousInstructor(w http.ResponseWriter, r *http.Request) {
	var req PreviousInstructorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /previous-instructor - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	s.Classes.SetPreferPreviousInstructor(req.Enabled)
	s.Preferences.SetSearchPrevInstructor(req.Enabled)
	prefStorage.NewRepository(prefStorage.NewCookieStore(w, r), h.logger).SetSearchPrevInstructor(req.Enabled)

	h.logger.Info("PUT /previous-instructor - Flag updated: session_id=%s, enabled=%t", s.ID, req.Enabled)
	handlers.RespondJSON(w, http.StatusOK, req)
}

// UpdateLocale PUT /api/v1/sessions/{sessionId}/locale
func (h *Handler) UpdateLocale(w http.ResponseWriter, r *http.Request) {
	var req LocaleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /locale - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if !i18n.IsSupported(req.Locale) {
		h.logger.Warn("PUT /locale - Unsupported locale: %q", req.Locale)
		handlers.RespondBadRequest(w, msgUnsupportedLocale)
		return
	}

	s, ok := handlers.LookupSession(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	s.Preferences.SetLocale(req.Locale)
	prefStorage.NewRepository(prefStorage.NewCookieStore(w, r), h.logger).SetLocale(req.Locale)

	h.logger.Info("PUT /locale - Locale updated: session_id=%s, locale=%s", s.ID, req.Locale)
	handlers.RespondJSON(w, http.StatusOK, req)
}

func (h *Handler) respond(w http.ResponseWriter, s *session.Session, kind domain.SlotKind) {
	prefs, err := s.Classes.Preferences(kind)
	if err != nil {
		h.logger.Error("preferences - Failed to get preferences: session_id=%s, error=%v", s.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, PreferencesResponse{
		Kind:                     kind,
		Preferences:              prefs,
		PreferPreviousInstructor: s.Classes.PreferPreviousInstructor(),
		Instructors:              s.Classes.Catalog().Instructors(),
	})
}
