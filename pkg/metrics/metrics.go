package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records order and checkout activity.
type StorefrontMetrics struct {
	ordersCreated  *prometheus.CounterVec
	statusUpdates  *prometheus.CounterVec
	activeSessions prometheus.Gauge
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	created := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders persisted at checkout finalization.",
	}, []string{"payment_method"})
	updates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_updates_total",
		Help: "Admin payment status transitions.",
	}, []string{"status"})
	sessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "checkout_sessions_active",
		Help: "Checkout sessions currently held in memory.",
	})
	reg.MustRegister(created, updates, sessions)
	return &StorefrontMetrics{
		ordersCreated:  created,
		statusUpdates:  updates,
		activeSessions: sessions,
	}
}

// IncOrderCreated increments the created counter for the payment method.
func (m *StorefrontMetrics) IncOrderCreated(method string) {
	if m == nil || m.ordersCreated == nil {
		return
	}
	m.ordersCreated.WithLabelValues(normalizeLabel(method)).Inc()
}

// IncStatusUpdate increments the status update counter.
func (m *StorefrontMetrics) IncStatusUpdate(status string) {
	if m == nil || m.statusUpdates == nil {
		return
	}
	m.statusUpdates.WithLabelValues(normalizeLabel(status)).Inc()
}

// SetActiveSessions records the current number of live checkout sessions.
func (m *StorefrontMetrics) SetActiveSessions(count int) {
	if m == nil || m.activeSessions == nil {
		return
	}
	m.activeSessions.Set(float64(count))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
