package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	bookingsAdded   *prometheus.CounterVec
	bookingsRemoved prometheus.Counter
	holdEvents      *prometheus.CounterVec
	loyaltyChecks   *prometheus.CounterVec
	activeSessions  prometheus.Gauge
	sessionsEvicted prometheus.Counter
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "cart_bookings_added_total",
			Help:        "Bookings added to carts by lesson type",
			ConstLabels: labels,
		}, []string{"type"}),
		bookingsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "cart_bookings_removed_total",
			Help:        "Bookings removed from carts (cascade counted per line)",
			ConstLabels: labels,
		}),
		holdEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_hold_events_total",
			Help:        "Reservation hold timer events",
			ConstLabels: labels,
		}, []string{"event"}),
		loyaltyChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "loyalty_card_checks_total",
			Help:        "Loyalty card validations by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_sessions_active",
			Help:        "Booking sessions currently held in memory",
			ConstLabels: labels,
		}),
		sessionsEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_sessions_evicted_total",
			Help:        "Idle booking sessions evicted",
			ConstLabels: labels,
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.bookingsAdded,
		m.bookingsRemoved,
		m.holdEvents,
		m.loyaltyChecks,
		m.activeSessions,
		m.sessionsEvicted,
	)

	return m
}

// Handler HTTP-обработчик для экспорта метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает реестр (для тестов)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) BookingAdded(lessonType string) {
	if m == nil {
		return
	}
	m.bookingsAdded.WithLabelValues(lessonType).Inc()
}

func (m *Metrics) BookingsRemoved(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.bookingsRemoved.Add(float64(count))
}

// HoldEvent учитывает событие таймера брони: warning, extended, expired
func (m *Metrics) HoldEvent(event string) {
	if m == nil {
		return
	}
	m.holdEvents.WithLabelValues(event).Inc()
}

// LoyaltyCheck учитывает результат проверки карты: valid, invalid, error, superseded
func (m *Metrics) LoyaltyCheck(outcome string) {
	if m == nil {
		return
	}
	m.loyaltyChecks.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

func (m *Metrics) SessionClosed(evicted bool) {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
	if evicted {
		m.sessionsEvicted.Inc()
	}
}
