package get_cart

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
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/format"
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
	r.HandleFunc("/sessions/{sessionId}/bookings", h.Handle).Methods(http.MethodGet)
	return r, registry.Create(nil)
}

func get(r http.Handler, target string) (*httptest.ResponseRecorder, CartResponse) {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var resp CartResponse
	if rec.Code == http.StatusOK {
		_ = json.NewDecoder(rec.Body).Decode(&resp)
	}
	return rec, resp
}

func TestHandler_Cart(t *testing.T) {
	r, s := newRouter(t)

	rec, resp := get(r, "/sessions/"+s.ID+"/bookings")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Bookings)

	participantID := s.Stay.Roster().Participants()[0].ID
	s.Lock()
	slot, err := s.Classes.Catalog().Slot("2025-12-02-0")
	require.NoError(t, err)
	_, err = s.Classes.Cart().Add(domain.Booking{
		ParticipantID: participantID,
		Type:          domain.LessonShared,
		Slot:          slot,
	})
	s.Unlock()
	require.NoError(t, err)

	rec, resp = get(r, "/sessions/"+s.ID+"/bookings")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, resp.Total)

	line := resp.Bookings[0]
	assert.Equal(t, participantID, line.ParticipantID)
	assert.Equal(t, "2025-12-02", line.Date)
	assert.Equal(t, "shared", line.Type)
	require.NotNil(t, line.SlotID)
	assert.Equal(t, "2025-12-02-0", *line.SlotID)
	assert.Equal(t, format.Price(line.Price), line.PriceLabel)
	assert.Equal(t, "2025-12-01T08:00:00Z", line.CreatedAt)
	assert.Nil(t, line.Insurance)

	// фильтр по участнику
	_, resp = get(r, "/sessions/"+s.ID+"/bookings?participantId=NOPE")
	assert.Equal(t, 0, resp.Total)
}

func TestHandler_SessionNotFound(t *testing.T) {
	r, _ := newRouter(t)
	rec, _ := get(r, "/sessions/missing/bookings")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
