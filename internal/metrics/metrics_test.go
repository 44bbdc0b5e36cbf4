package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()
	m.Events.WithLabelValues("navigate").Inc()
	m.Events.WithLabelValues("navigate").Inc()
	m.Renders.WithLabelValues("dashboard", "html").Inc()
	m.Sessions.Set(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Events.WithLabelValues("navigate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Renders.WithLabelValues("dashboard", "html")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Sessions))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.Events.WithLabelValues("select_tab").Inc()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	body := w.Body.String()
	assert.Equal(t, 200, w.Code)
	assert.True(t, strings.Contains(body, `osiris_ui_events_total{event="select_tab"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}
