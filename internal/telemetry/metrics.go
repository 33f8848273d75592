// Package telemetry métricas Prometheus del servicio: HTTP y flujo de facturación.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/bill-automation-api/internal/application/billing"
	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
)

// Registry agrupa los colectores en un registro propio (no el global), así los tests pueden crear varios.
type Registry struct {
	reg *prometheus.Registry

	HTTP    *HTTPMetrics
	Billing *BillingMetrics
}

// NewRegistry crea y registra todas las métricas bajo namespace.
func NewRegistry(namespace string) *Registry {
	if namespace == "" {
		namespace = "bill_automation"
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)
	return &Registry{
		reg:     reg,
		HTTP:    newHTTPMetrics(f, namespace),
		Billing: newBillingMetrics(f, namespace),
	}
}

// Handler expone las métricas en formato texto.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer acceso de solo lectura para tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// HTTPMetrics peticiones atendidas por la API.
type HTTPMetrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
}

func newHTTPMetrics(f promauto.Factory, namespace string) *HTTPMetrics {
	return &HTTPMetrics{
		requestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method", "path", "status"}),
		requestsInFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		}),
	}
}

// Begin marca una petición en curso y devuelve la función que la cierra.
func (m *HTTPMetrics) Begin() func(method, path, status string) {
	start := time.Now()
	m.requestsInFlight.Inc()
	return func(method, path, status string) {
		m.requestsInFlight.Dec()
		m.requestsTotal.WithLabelValues(method, path, status).Inc()
		m.requestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
	}
}

var _ billing.Metrics = (*BillingMetrics)(nil)

// BillingMetrics implementa billing.Metrics.
type BillingMetrics struct {
	billsGenerated     *prometheus.CounterVec
	generationFailures *prometheus.CounterVec
	allocationDuration prometheus.Histogram
	renderDuration     prometheus.Histogram
}

func newBillingMetrics(f promauto.Factory, namespace string) *BillingMetrics {
	return &BillingMetrics{
		billsGenerated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "bills_generated_total",
			Help:      "Bills generated, by company, GST type and whether the number was allocated",
		}, []string{"company_id", "gst_type", "allocated"}),
		generationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "generation_failures_total",
			Help:      "Failed bill generations by step",
		}, []string{"step"}),
		allocationDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "allocation_duration_seconds",
			Help:      "Time spent holding the bill counter lock",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		renderDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "render_duration_seconds",
			Help:      "PDF render duration",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}),
	}
}

func (m *BillingMetrics) BillGenerated(companyID string, mode entity.TaxMode, allocated bool) {
	a := "false"
	if allocated {
		a = "true"
	}
	m.billsGenerated.WithLabelValues(companyID, string(mode), a).Inc()
}

func (m *BillingMetrics) GenerationFailed(step string) {
	m.generationFailures.WithLabelValues(step).Inc()
}

func (m *BillingMetrics) ObserveAllocation(d time.Duration) { m.allocationDuration.Observe(d.Seconds()) }

func (m *BillingMetrics) ObserveRender(d time.Duration) { m.renderDuration.Observe(d.Seconds()) }
