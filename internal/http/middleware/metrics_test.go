package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func histogramCount(t *testing.T, vec *prometheus.HistogramVec, labels ...string) uint64 {
	t.Helper()
	var m dto.Metric
	if err := vec.WithLabelValues(labels...).(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.GET("/api/v1/shows", func(c *gin.Context) { c.String(http.StatusOK, `[]`) })
	r.DELETE("/api/v1/admin/shows/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	reqs := func(method, path, status, area string) float64 {
		return testutil.ToFloat64(httpReqs.WithLabelValues(method, path, status, area))
	}
	baseShows := reqs("GET", "/api/v1/shows", "200", "public")
	baseDelete := reqs("DELETE", "/api/v1/admin/shows/:id", "204", "admin")
	baseMissing := reqs("GET", unmatchedRoute, "404", "public")
	baseSizeShows := histogramCount(t, httpRespSize, "GET", "/api/v1/shows")
	baseSizeDelete := histogramCount(t, httpRespSize, "DELETE", "/api/v1/admin/shows/:id")

	for _, rq := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/shows"},
		{http.MethodDelete, "/api/v1/admin/shows/42"},
		{http.MethodGet, "/wp-login.php"},
		{http.MethodGet, "/.env"},
	} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(rq.method, rq.path, nil))
	}

	if got := reqs("GET", "/api/v1/shows", "200", "public"); got != baseShows+1 {
		t.Fatalf("shows counter = %v; want %v", got, baseShows+1)
	}
	if got := reqs("DELETE", "/api/v1/admin/shows/:id", "204", "admin"); got != baseDelete+1 {
		t.Fatalf("admin delete counter = %v; want %v", got, baseDelete+1)
	}
	// Probes for random paths collapse into one series.
	if got := reqs("GET", unmatchedRoute, "404", "public"); got != baseMissing+2 {
		t.Fatalf("unmatched counter = %v; want %v", got, baseMissing+2)
	}
	if inFlight := testutil.ToFloat64(httpInflight); inFlight != 0 {
		t.Fatalf("httpInflight = %v; want 0", inFlight)
	}
	// A body-less 204 records no response size.
	if got := histogramCount(t, httpRespSize, "GET", "/api/v1/shows"); got != baseSizeShows+1 {
		t.Fatalf("size observations for shows = %d", got)
	}
	if got := histogramCount(t, httpRespSize, "DELETE", "/api/v1/admin/shows/:id"); got != baseSizeDelete {
		t.Fatalf("size observations for 204 = %d", got)
	}
}

func TestRouteArea(t *testing.T) {
	cases := map[string]string{
		"/api/v1/subscribe":             "public",
		"/api/v1/admin/reviews/:id":     "admin",
		"/api/v1/admin":                 "admin",
		"/health":                       "ops",
		"/metrics":                      "ops",
		"/swagger/*any":                 "ops",
		"/api/v1/administrator-profile": "public",
		unmatchedRoute:                  "public",
	}
	for path, want := range cases {
		if got := routeArea(path); got != want {
			t.Fatalf("routeArea(%q) = %q; want %q", path, got, want)
		}
	}
}
