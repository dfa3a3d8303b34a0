package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/BIM-AvailabilityService/pkg/metrics"
)

// statusRecorder перехватывает статус ответа для метрик
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware собирает метрики HTTP запросов: счетчик и длительность
// Лейбл endpoint берется из шаблона роута, а не из конкретного URL,
// чтобы не раздувать кардинальность метрик
func MetricsMiddleware(m *metrics.Metrics, serviceName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			endpoint := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					endpoint = tpl
				}
			}

			status := strconv.Itoa(recorder.status)
			m.HTTPRequestsTotal.WithLabelValues(r.Method, endpoint, status).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
		})
	}
}
