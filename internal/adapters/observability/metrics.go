package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hotelpage"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "external_requests_total", Help: "Outbound requests."},
		[]string{"service", "endpoint", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "external_request_duration_seconds",
			Help:    "Outbound request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)
	PageRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "page_renders_total", Help: "Page renders by layout and outcome."},
		[]string{"layout", "outcome"}, // outcome: ok|blocked
	)
	RenderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "page_render_duration_seconds",
			Help:    "Page render duration seconds.",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		},
		[]string{"layout"},
	)
	RenderBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "page_render_bytes",
			Help:    "Rendered document size in bytes.",
			Buckets: prometheus.ExponentialBuckets(1024, 2, 10),
		},
		[]string{"layout"},
	)
	PublishEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "publish_events_total", Help: "Publish outcomes."},
		[]string{"outcome"}, // outcome: ok|blocked|missing|error
	)
	StoreEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "page_store_events_total", Help: "Page store hits/misses/puts/dels."},
		[]string{"store", "event"}, // event: hit|miss|put|del
	)
)

// Serve exposes reg on addr in the background. An empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ExternalRequests, ExternalLatency,
		PageRenders, RenderLatency, RenderBytes, PublishEvents, StoreEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveExternal(service, endpoint string, status int, dur time.Duration) {
	ExternalRequests.WithLabelValues(service, endpoint, strconv.Itoa(status)).Inc()
	ExternalLatency.WithLabelValues(service, endpoint).Observe(dur.Seconds())
}

func ObserveRender(layout, outcome string, dur time.Duration, size int) {
	PageRenders.WithLabelValues(layout, outcome).Inc()
	if outcome == "ok" {
		RenderLatency.WithLabelValues(layout).Observe(dur.Seconds())
		RenderBytes.WithLabelValues(layout).Observe(float64(size))
	}
}

func ObservePublish(outcome string) { PublishEvents.WithLabelValues(outcome).Inc() }

func ObserveStore(store, event string) { // event: hit|miss|put|del
	StoreEvents.WithLabelValues(store, event).Inc()
}

func LabelErr(err error) string {
	if err == nil {
		return "none"
	}
	return fmt.Sprintf("%T", err)
}
