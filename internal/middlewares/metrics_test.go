package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Chatrawit/Meeting2/internal/metrics"
)

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	r.Get("/user/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/user/{id}", "404")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b", "c"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/user/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}

func TestMetricsMiddleware_Unmatched(t *testing.T) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "200")
	before := testutil.ToFloat64(counter)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
