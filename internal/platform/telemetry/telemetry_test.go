package telemetry

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestChartOperationCounter(t *testing.T) {
	p := NewProvider()
	p.ChartOperation("update_tooth")
	p.ChartOperation("update_tooth")
	p.ChartOperation("close")

	if got := p.GetCounter("chart.operation.count", "update_tooth"); got != 2 {
		t.Errorf("update_tooth count = %d, want 2", got)
	}
	if got := p.GetCounter("chart.operation.count", "close"); got != 1 {
		t.Errorf("close count = %d, want 1", got)
	}
	if got := p.GetCounter("chart.operation.count", "create"); got != 0 {
		t.Errorf("create count = %d, want 0", got)
	}
}

func TestGauges(t *testing.T) {
	p := NewProvider()
	p.SetOpenVisits(3)
	if got := p.GetGauge("visit.sessions.open"); got != 3 {
		t.Errorf("open visits = %d, want 3", got)
	}
	p.SetOpenVisits(1)
	if got := p.GetGauge("visit.sessions.open"); got != 1 {
		t.Errorf("open visits = %d, want 1", got)
	}
}

func TestMetricsMiddleware_RecordsRequest(t *testing.T) {
	p := NewProvider()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tooth-states", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := p.MetricsMiddleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got := p.GetCounter("http.server.request.count", "200"); got != 1 {
		t.Errorf("request count = %d, want 1", got)
	}
	if got := p.GetGauge("http.server.active_requests"); got != 0 {
		t.Errorf("active requests = %d, want 0 after completion", got)
	}

	hist := p.getOrCreateHistogram("http.server.request.duration", defaultDurationBuckets)
	if hist.Count() != 1 {
		t.Errorf("duration observations = %d, want 1", hist.Count())
	}
}

func TestPrometheusHandler_Exposition(t *testing.T) {
	p := NewProvider()
	p.ChartOperation("create")
	p.AutosaveResult("committed")
	p.SetOpenVisits(2)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := p.PrometheusHandler()(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	for _, want := range []string{
		`chart_operation_count{operation="create"} 1`,
		`visit_autosave_count{outcome="committed"} 1`,
		"visit_sessions_open 2",
		"# TYPE http_server_request_duration_seconds histogram",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}
