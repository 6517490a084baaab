package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Values of the "result" label on FlyweightAcquireTotal.
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

var (
	// Counter: acquire outcomes, labelled hit or miss.
	FlyweightAcquireTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flyweight_acquire_total",
			Help: "Total number of flyweight acquires by result.",
		},
		[]string{"result"},
	)

	// Counter: catalog backend failures, labelled by operation.
	CatalogErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_errors_total",
			Help: "Total number of failed catalog operations.",
		},
		[]string{"op"},
	)

	// Histogram: registry HTTP latency in seconds.
	RegistryLatencySeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "registry_latency_seconds",
			Help:    "HTTP request latency for the registry in seconds.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"path", "method", "status_code"},
	)
)

// Register is called once in main() to register metrics.
func Register() {
	prometheus.MustRegister(
		FlyweightAcquireTotal,
		CatalogErrorsTotal,
		RegistryLatencySeconds,
	)
}

// NewFlyweightEntries returns a gauge that reads the size of one registry at
// scrape time. Register it once per registry.
func NewFlyweightEntries(size func() int) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "flyweight_entries",
			Help: "Number of distinct flyweights held by the registry.",
		},
		func() float64 { return float64(size()) },
	)
}

// Handler exposes the /metrics endpoint for Prometheus to scrape.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware measures registry latency for each HTTP request. The path label
// uses the matched chi route pattern when available to keep cardinality low.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rec, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		RegistryLatencySeconds.
			WithLabelValues(path, r.Method, strconv.Itoa(rec.statusCode)).
			Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}
