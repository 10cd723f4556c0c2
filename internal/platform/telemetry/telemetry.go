// Package telemetry provides metrics for the odontogram service using only
// standard library constructs: counters, gauges, histograms, and a
// Prometheus text exposition endpoint, without importing a metrics SDK.
package telemetry

import (
	"fmt"
	"math"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
)

// histogram is a thread-safe histogram with configurable bucket boundaries.
// Bucket counts are non-cumulative in storage; cumulative counts are computed
// at export time.
type histogram struct {
	boundaries   []float64
	bucketCounts []int64
	count        int64
	sum          uint64 // stored as math.Float64bits for atomic add
	mu           sync.Mutex
}

func newHistogram(boundaries []float64) *histogram {
	return &histogram{
		boundaries:   boundaries,
		bucketCounts: make([]int64, len(boundaries)),
	}
}

// Observe records a single value.
func (h *histogram) Observe(v float64) {
	atomic.AddInt64(&h.count, 1)
	atomicAddFloat64(&h.sum, v)

	h.mu.Lock()
	for i, b := range h.boundaries {
		if v <= b {
			h.bucketCounts[i]++
			h.mu.Unlock()
			return
		}
	}
	// Value exceeds all boundaries; counted in +Inf at export.
	h.mu.Unlock()
}

// Count returns the total number of observations.
func (h *histogram) Count() int64 {
	return atomic.LoadInt64(&h.count)
}

// Sum returns the total sum of all observations.
func (h *histogram) Sum() float64 {
	return math.Float64frombits(atomic.LoadUint64(&h.sum))
}

func (h *histogram) cumulativeBuckets() []int64 {
	h.mu.Lock()
	raw := make([]int64, len(h.bucketCounts))
	copy(raw, h.bucketCounts)
	h.mu.Unlock()

	cum := make([]int64, len(raw))
	var running int64
	for i, c := range raw {
		running += c
		cum[i] = running
	}
	return cum
}

// atomicAddFloat64 performs an atomic add on a uint64 that stores a float64
// using CAS.
func atomicAddFloat64(addr *uint64, delta float64) {
	for {
		old := atomic.LoadUint64(addr)
		newVal := math.Float64frombits(old) + delta
		if atomic.CompareAndSwapUint64(addr, old, math.Float64bits(newVal)) {
			return
		}
	}
}

type counterStore struct {
	mu    sync.RWMutex
	items map[string]*int64
}

func newCounterStore() *counterStore {
	return &counterStore{items: make(map[string]*int64)}
}

func (s *counterStore) inc(key string) {
	s.mu.RLock()
	p, ok := s.items[key]
	s.mu.RUnlock()
	if ok {
		atomic.AddInt64(p, 1)
		return
	}
	s.mu.Lock()
	p, ok = s.items[key]
	if !ok {
		v := int64(1)
		s.items[key] = &v
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	atomic.AddInt64(p, 1)
}

func (s *counterStore) get(key string) int64 {
	s.mu.RLock()
	p, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return 0
	}
	return atomic.LoadInt64(p)
}

func (s *counterStore) snapshot() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make(map[string]int64, len(s.items))
	for k, p := range s.items {
		cp[k] = atomic.LoadInt64(p)
	}
	return cp
}

type gaugeStore struct {
	mu    sync.RWMutex
	items map[string]*int64
}

func newGaugeStore() *gaugeStore {
	return &gaugeStore{items: make(map[string]*int64)}
}

func (s *gaugeStore) set(name string, val int64) {
	s.mu.RLock()
	p, ok := s.items[name]
	s.mu.RUnlock()
	if ok {
		atomic.StoreInt64(p, val)
		return
	}
	s.mu.Lock()
	p, ok = s.items[name]
	if !ok {
		v := val
		s.items[name] = &v
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	atomic.StoreInt64(p, val)
}

func (s *gaugeStore) add(name string, delta int64) {
	s.mu.RLock()
	p, ok := s.items[name]
	s.mu.RUnlock()
	if ok {
		atomic.AddInt64(p, delta)
		return
	}
	s.mu.Lock()
	p, ok = s.items[name]
	if !ok {
		v := delta
		s.items[name] = &v
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	atomic.AddInt64(p, delta)
}

func (s *gaugeStore) get(name string) int64 {
	s.mu.RLock()
	p, ok := s.items[name]
	s.mu.RUnlock()
	if !ok {
		return 0
	}
	return atomic.LoadInt64(p)
}

// defaultDurationBuckets are the histogram bucket boundaries (in seconds)
// used for HTTP request duration.
var defaultDurationBuckets = []float64{
	0.010, 0.025, 0.050, 0.100, 0.250, 0.500, 1.0, 2.5, 5.0, 10.0,
}

// Provider manages all metrics state for the service.
type Provider struct {
	histograms map[string]*histogram
	histMu     sync.RWMutex
	counters   *counterStore
	gauges     *gaugeStore
}

// NewProvider creates an empty metrics provider.
func NewProvider() *Provider {
	return &Provider{
		histograms: make(map[string]*histogram),
		counters:   newCounterStore(),
		gauges:     newGaugeStore(),
	}
}

func (p *Provider) getOrCreateHistogram(name string, boundaries []float64) *histogram {
	p.histMu.RLock()
	h, ok := p.histograms[name]
	p.histMu.RUnlock()
	if ok {
		return h
	}
	p.histMu.Lock()
	h, ok = p.histograms[name]
	if !ok {
		h = newHistogram(boundaries)
		p.histograms[name] = h
	}
	p.histMu.Unlock()
	return h
}

// ChartOperation increments the chart.operation.count metric. op is the
// logical operation name (create, update_tooth, close, ...).
func (p *Provider) ChartOperation(op string) {
	p.counters.inc("chart.operation.count|" + op)
}

// AutosaveResult increments the visit.autosave.count metric. outcome is
// one of committed, cancelled, failed.
func (p *Provider) AutosaveResult(outcome string) {
	p.counters.inc("visit.autosave.count|" + outcome)
}

// SetOpenVisits records the number of visit sessions currently open.
func (p *Provider) SetOpenVisits(n int64) {
	p.gauges.set("visit.sessions.open", n)
}

// SetDBPoolActive sets the db.pool.active_connections gauge.
func (p *Provider) SetDBPoolActive(n int64) {
	p.gauges.set("db.pool.active_connections", n)
}

// SetDBPoolIdle sets the db.pool.idle_connections gauge.
func (p *Provider) SetDBPoolIdle(n int64) {
	p.gauges.set("db.pool.idle_connections", n)
}

// GetCounter returns the current value of a labeled counter. Exported for
// tests.
func (p *Provider) GetCounter(name, label string) int64 {
	return p.counters.get(name + "|" + label)
}

// GetGauge returns the current value of the named gauge.
func (p *Provider) GetGauge(name string) int64 {
	return p.gauges.get(name)
}

// MetricsMiddleware returns an Echo middleware that records HTTP server
// metrics for every request.
func (p *Provider) MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p.gauges.add("http.server.active_requests", 1)
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			p.gauges.add("http.server.active_requests", -1)

			hist := p.getOrCreateHistogram("http.server.request.duration", defaultDurationBuckets)
			hist.Observe(duration)

			statusStr := fmt.Sprintf("%d", c.Response().Status)
			p.counters.inc("http.server.request.count|" + statusStr)

			return err
		}
	}
}

// PrometheusHandler returns an Echo handler that serves metrics in
// Prometheus text exposition format.
func (p *Provider) PrometheusHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var b strings.Builder

		p.histMu.RLock()
		durationHist := p.histograms["http.server.request.duration"]
		p.histMu.RUnlock()

		b.WriteString("# HELP http_server_request_duration_seconds Duration of HTTP requests in seconds.\n")
		b.WriteString("# TYPE http_server_request_duration_seconds histogram\n")
		if durationHist != nil {
			writeHistogram(&b, "http_server_request_duration_seconds", durationHist, defaultDurationBuckets)
		}
		b.WriteByte('\n')

		b.WriteString("# HELP http_server_active_requests Number of active HTTP requests.\n")
		b.WriteString("# TYPE http_server_active_requests gauge\n")
		fmt.Fprintf(&b, "http_server_active_requests %d\n", p.gauges.get("http.server.active_requests"))
		b.WriteByte('\n')

		counters := p.counters.snapshot()
		writeLabeledCounter(&b, counters, "http.server.request.count",
			"http_server_request_count", "status_code",
			"Total HTTP requests by status code.")
		writeLabeledCounter(&b, counters, "chart.operation.count",
			"chart_operation_count", "operation",
			"Total odontogram operations by type.")
		writeLabeledCounter(&b, counters, "visit.autosave.count",
			"visit_autosave_count", "outcome",
			"Total autosave timer resolutions by outcome.")

		gauges := []struct {
			promName string
			name     string
			help     string
		}{
			{"visit_sessions_open", "visit.sessions.open", "Number of visit sessions currently open."},
			{"db_pool_active_connections", "db.pool.active_connections", "Number of active database pool connections."},
			{"db_pool_idle_connections", "db.pool.idle_connections", "Number of idle database pool connections."},
		}
		for _, g := range gauges {
			fmt.Fprintf(&b, "# HELP %s %s\n", g.promName, g.help)
			fmt.Fprintf(&b, "# TYPE %s gauge\n", g.promName)
			fmt.Fprintf(&b, "%s %d\n", g.promName, p.gauges.get(g.name))
			b.WriteByte('\n')
		}

		return c.String(http.StatusOK, b.String())
	}
}

func writeLabeledCounter(b *strings.Builder, snap map[string]int64,
	metric, promName, label, help string) {

	fmt.Fprintf(b, "# HELP %s %s\n", promName, help)
	fmt.Fprintf(b, "# TYPE %s counter\n", promName)
	for key, val := range snap {
		parts := strings.SplitN(key, "|", 2)
		if len(parts) == 2 && parts[0] == metric {
			fmt.Fprintf(b, "%s{%s=%q} %d\n", promName, label, parts[1], val)
		}
	}
	b.WriteByte('\n')
}

func writeHistogram(b *strings.Builder, name string, h *histogram, boundaries []float64) {
	cum := h.cumulativeBuckets()
	total := h.Count()

	for i, boundary := range boundaries {
		fmt.Fprintf(b, "%s_bucket{le=\"%g\"} %d\n", name, boundary, cum[i])
	}
	fmt.Fprintf(b, "%s_bucket{le=\"+Inf\"} %d\n", name, total)
	fmt.Fprintf(b, "%s_sum %g\n", name, h.Sum())
	fmt.Fprintf(b, "%s_count %d\n", name, total)
}
