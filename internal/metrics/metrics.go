// Package metrics provides Prometheus metrics collection and reporting for the SMS bridge.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	// Request metrics
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Gateway error metrics
	GatewayErrorsTotal   *prometheus.CounterVec
	TransportErrorsTotal *prometheus.CounterVec

	// Message metrics
	MessagesSentTotal    prometheus.Counter
	MessageFeaturesTotal *prometheus.CounterVec

	prometheus *prometheus.Registry
}

// NewRegistry creates a Registry backed by a fresh Prometheus registry.
func NewRegistry() *Registry {
	promRegistry := prometheus.NewRegistry()
	factory := promauto.With(promRegistry)

	return &Registry{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sms_bridge_requests_total",
			Help: "Total number of gateway requests",
		}, []string{"endpoint", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sms_bridge_request_duration_seconds",
			Help:    "Gateway request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		RequestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sms_bridge_requests_in_flight",
			Help: "Number of gateway requests currently being processed",
		}),
		GatewayErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sms_bridge_gateway_errors_total",
			Help: "Total number of ERR responses by gateway error code",
		}, []string{"code"}),
		TransportErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sms_bridge_transport_errors_total",
			Help: "Total number of network and HTTP-level failures",
		}, []string{"endpoint"}),
		MessagesSentTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "sms_bridge_messages_sent_total",
			Help: "Total number of messages accepted by the gateway",
		}),
		MessageFeaturesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sms_bridge_message_features_total",
			Help: "Total number of messages requesting each gateway feature",
		}, []string{"feature"}),
		prometheus: promRegistry,
	}
}

// Prometheus returns the underlying registry for use with promhttp.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.prometheus
}

// RecordRequest records a completed gateway request. All helpers are
// nil-safe so the client can run without a metrics registry.
func (r *Registry) RecordRequest(endpoint, status string, duration time.Duration) {
	if r == nil {
		return
	}

	r.RequestsTotal.WithLabelValues(endpoint, status).Inc()
	r.RequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordGatewayError records an ERR response by code.
func (r *Registry) RecordGatewayError(code string) {
	if r == nil {
		return
	}

	r.GatewayErrorsTotal.WithLabelValues(code).Inc()
}

// RecordTransportError records a network or HTTP-level failure.
func (r *Registry) RecordTransportError(endpoint string) {
	if r == nil {
		return
	}

	r.TransportErrorsTotal.WithLabelValues(endpoint).Inc()
}

// RecordMessageSent records a message accepted by the gateway.
func (r *Registry) RecordMessageSent() {
	if r == nil {
		return
	}

	r.MessagesSentTotal.Inc()
}

// RecordMessageFeature records one requested feature on an outbound message.
func (r *Registry) RecordMessageFeature(feature string) {
	if r == nil {
		return
	}

	r.MessageFeaturesTotal.WithLabelValues(feature).Inc()
}

// IncRequestsInFlight increments the in-flight gauge.
func (r *Registry) IncRequestsInFlight() {
	if r == nil {
		return
	}

	r.RequestsInFlight.Inc()
}

// DecRequestsInFlight decrements the in-flight gauge.
func (r *Registry) DecRequestsInFlight() {
	if r == nil {
		return
	}

	r.RequestsInFlight.Dec()
}
