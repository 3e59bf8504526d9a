package get_eligible_groups

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/integrations/loyaltycard"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/holdtimer"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/stayconfig"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
	getEligibleGroups "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/get_eligible_groups"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/logger"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/metrics"
)

var today = time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return today }

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

	h := NewHandler(getEligibleGroups.NewUseCase(registry, stayconfig.New(), log), log)
	r := mux.NewRouter()
	r.HandleFunc("/sessions/{sessionId}/groups", h.Handle).Methods(http.MethodGet)
	return r, registry.Create(nil)
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Groups(t *testing.T) {
	r, s := newRouter(t)

	s.Lock()
	end := today.AddDate(0, 0, 2)
	s.Stay.SetDate(&domain.DateOfStay{Start: today, End: &end})
	pid := s.Stay.Roster().Participants()[0].ID
	s.Unlock()

	rec := get(r, "/sessions/"+s.ID+"/groups?participantId="+pid)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GroupsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, pid, resp.ParticipantID)
	assert.Equal(t, "ski", resp.Activity)
	assert.Equal(t, 3, resp.StayDays)
	assert.True(t, resp.Permitted)
	require.NotEmpty(t, resp.Groups)
	for _, g := range resp.Groups {
		assert.Equal(t, "ski", g.Activity)
		assert.Equal(t, 3, g.DayCount)
	}
}

func TestHandler_Errors(t *testing.T) {
	r, s := newRouter(t)

	tests := []struct {
		name   string
		target string
		code   int
	}{
		{name: "missing participant", target: "/sessions/" + s.ID + "/groups", code: http.StatusBadRequest},
		{name: "unknown participant", target: "/sessions/" + s.ID + "/groups?participantId=NOPE", code: http.StatusNotFound},
		{name: "unknown session", target: "/sessions/missing/groups?participantId=NOPE", code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, get(r, tt.target).Code)
		})
	}
}
