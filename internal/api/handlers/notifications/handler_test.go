package notifications

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func newRouter(t *testing.T) (*mux.Router, *session.Session) {
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

	h := NewHandler(registry, log)
	r := mux.NewRouter()
	r.HandleFunc("/sessions/{sessionId}/notifications", h.List).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{sessionId}/notifications/{messageId}/action", h.Act).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{sessionId}/notifications/{messageId}", h.Dismiss).Methods(http.MethodDelete)
	return r, registry.Create(nil)
}

func list(t *testing.T, r http.Handler, sessionID string) OpenResponse {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/"+sessionID+"/notifications", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp OpenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandler_ActRunsCallbackOnce(t *testing.T) {
	r, s := newRouter(t)

	calls := 0
	s.Notifier.ShowActionMessage("Czas minął", "Dodaj nowe zajęcia", func() { calls++ })

	open := list(t, r, s.ID).Messages
	require.Len(t, open, 1)
	assert.Equal(t, "Dodaj nowe zajęcia", open[0].ActionLabel)

	path := "/sessions/" + s.ID + "/notifications/" + open[0].ID + "/action"

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, calls)
	assert.Empty(t, list(t, r, s.ID).Messages)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 1, calls)
}

func TestHandler_Dismiss(t *testing.T) {
	r, s := newRouter(t)

	calls := 0
	s.Notifier.ShowActionMessage("Czas minął", "Dodaj nowe zajęcia", func() { calls++ })
	open := list(t, r, s.ID).Messages
	require.Len(t, open, 1)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/sessions/"+s.ID+"/notifications/"+open[0].ID, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, list(t, r, s.ID).Messages)
	assert.Zero(t, calls)
}
