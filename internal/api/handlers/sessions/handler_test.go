package sessions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/integrations/loyaltycard"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/holdtimer"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/stayconfig"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/logger"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/metrics"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC) }

type idleScheduler struct{}

func (idleScheduler) Every(time.Duration, func()) func() { return func() {} }
func (idleScheduler) After(time.Duration, func()) func() { return func() {} }

func newRegistry(t *testing.T) *session.Registry {
	t.Helper()
	log := logger.NewNop()
	var m *metrics.Metrics
	registry := session.NewRegistry(session.Deps{
		Clock:     fixedClock{},
		Skills:    stayconfig.New(),
		Validator: loyaltycard.NewStub(0, log),
		Metrics:   m,
		Logger:    log,
		Scheduler: func(*session.Session) holdtimer.Scheduler { return idleScheduler{} },
	}, time.Hour)
	t.Cleanup(registry.Close)
	return registry
}

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	h := NewHandler(newRegistry(t), stayconfig.New(), logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/sessions", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{sessionId}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{sessionId}", h.Delete).Methods(http.MethodDelete)
	return r
}

func TestHandler_CreateSeedsFromCookies(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/sessions", nil)
	req.AddCookie(&http.Cookie{Name: "locale", Value: "en"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var state handlers.SessionState
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	assert.NotEmpty(t, state.ID)
	assert.Equal(t, "en", state.Locale)
	assert.Equal(t, 1, state.Stay.Adults)
	require.Len(t, state.Participants, 1)
	assert.Equal(t, "adult", state.Participants[0].Type)
	assert.Equal(t, "idle", state.Timer.State)
	assert.Equal(t, 1, state.Flow.Current.Parent)
}

func TestHandler_GetAndDelete(t *testing.T) {
	r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sessions", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	var state handlers.SessionState
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	assert.Equal(t, "pl", state.Locale)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/"+state.ID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/sessions/"+state.ID, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/"+state.ID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/sessions/"+state.ID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
