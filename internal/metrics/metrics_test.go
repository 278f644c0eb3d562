package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveClick("place", true)
	m.ObserveClick("place", false)
	m.ObserveClick("place", false)
	m.ObserveCommand("set", "ok")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.clickDecisions.WithLabelValues("place", "allow")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.clickDecisions.WithLabelValues("place", "deny")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commands.WithLabelValues("set", "ok")))
}

func TestMetrics_ActiveRegion(t *testing.T) {
	m := New()

	m.SetActiveRegion("sphere", 113)
	m.SetActiveRegion("cuboid", 36)

	assert.Equal(t, 1, testutil.CollectAndCount(m.activeRegion), "активен только один тип")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.activeRegion.WithLabelValues("cuboid")))
	assert.Equal(t, 36.0, testutil.ToFloat64(m.regionVolume))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveClick("destroy", true)
		m.ObserveCommand("clear", "ok")
		m.SetActiveRegion("none", 0)
		m.UpdateProcess()
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveCommand("expand", "noop")
	m.UpdateProcess()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(body, `buildregion_commands_total{command="expand",result="noop"} 1`))
	assert.Contains(t, body, "buildregion_uptime_seconds")
	assert.Contains(t, body, "go_goroutines")
	assert.Contains(t, body, "buildregion_http_requests_inflight 1")

	m.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 1, testutil.CollectAndCount(m.httpDuration), "серия code=200,method=get")
}

func TestProcessStats(t *testing.T) {
	ps := NewProcessStats()

	mb, err := ps.GetMemoryUsage()
	require.NoError(t, err)
	assert.Greater(t, mb, 0.0)
	assert.True(t, strings.HasSuffix(ps.GetUptime(), "с"))
}
