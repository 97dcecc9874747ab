package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hoteldash", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hoteldash", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hoteldash", Name: "external_requests_total", Help: "Outbound requests."},
		[]string{"service", "endpoint", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hoteldash", Name: "external_request_duration_seconds",
			Help:    "Outbound request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hoteldash", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels/errors."},
		[]string{"cache", "event"},
	)
	PipelineLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hoteldash", Name: "pipeline_duration_seconds",
			Help:    "Filter-and-derive pipeline duration seconds.",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"stage"},
	)
	FilteredHotels = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "hoteldash", Name: "filtered_hotels",
		Help:    "Size of the filtered set per dashboard build.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 11),
	})
	CompareRejections = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hoteldash", Name: "compare_rejections_total",
		Help: "Comparison requests rejected by validation.",
	})
	SeededHotels = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hoteldash", Name: "seeded_hotels_total", Help: "Hotels written by the seeder."},
		[]string{"result"},
	)
)

// Serve exposes the default registry on METRICS_ADDR, if set.
func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

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
	reg.MustRegister(HTTPRequests, HTTPLatency, ExternalRequests, ExternalLatency, CacheEvents,
		PipelineLatency, FilteredHotels, CompareRejections, SeededHotels)
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

func ObserveCache(cache, event string) { // event: hit|miss|set|del|error
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObservePipeline(stage string, filtered int, dur time.Duration) {
	PipelineLatency.WithLabelValues(stage).Observe(dur.Seconds())
	if stage == "build" {
		FilteredHotels.Observe(float64(filtered))
	}
}

func ObserveCompareRejected() { CompareRejections.Inc() }

func ObserveSeeded(result string, n int) { SeededHotels.WithLabelValues(result).Add(float64(n)) }
