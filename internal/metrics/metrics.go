// Package metrics exposes the prometheus counters and the ops endpoint
// served next to the API.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "betoffice_http_requests_total",
		Help: "HTTP requests by method and status code.",
	}, []string{"method", "code"})

	SettledBets = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betoffice_settled_bets_total",
		Help: "Bets whose profit was corrected by the settlement sweep.",
	})

	ReportCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betoffice_report_cache_hits_total",
		Help: "Report requests served from cache.",
	})

	ReportCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betoffice_report_cache_misses_total",
		Help: "Report requests recomputed on cache miss.",
	})
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// Middleware counts every request by method and status.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		RequestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
	})
}

// Handler serves /metrics and /healthz on the ops port.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}
