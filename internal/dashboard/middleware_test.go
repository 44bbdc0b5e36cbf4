package dashboard

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/osiris-intel/osiris/internal/catalog"
)

func TestSecurityHeaders(t *testing.T) {
	b := newBrowser(t, newTestServer(t))
	w := b.get("/osiris")

	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "no-referrer",
	} {
		if got := w.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if w.Header().Get("Content-Security-Policy") == "" {
		t.Error("missing Content-Security-Policy")
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}
}

func TestLogging_CarriesRequestAndSession(t *testing.T) {
	var buf bytes.Buffer
	srv := NewServer(Options{
		Catalog: catalog.Default(),
		Logger:  slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	b := newBrowser(t, srv)
	w := b.get("/osiris")
	if b.cookie == nil {
		t.Fatal("no session cookie")
	}

	var line map[string]any
	for _, raw := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var rec map[string]any
		if err := json.Unmarshal(raw, &rec); err == nil && rec["msg"] == "request" {
			line = rec
		}
	}
	if line == nil {
		t.Fatalf("no access log line in %s", buf.String())
	}
	if line["request_id"] != w.Header().Get("X-Request-ID") {
		t.Errorf("request_id = %v, want %s", line["request_id"], w.Header().Get("X-Request-ID"))
	}
	if line["session"] != b.cookie.Value {
		t.Errorf("session = %v, want %s", line["session"], b.cookie.Value)
	}
	if line["level"] != "DEBUG" {
		t.Errorf("level = %v, want DEBUG for a 200", line["level"])
	}
}

func TestLogging_ServerErrorsAtWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := requestID(logging(logger)(recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/osiris", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	out := buf.String()
	if !strings.Contains(out, `"msg":"panic recovered"`) {
		t.Errorf("missing panic line: %s", out)
	}
	if !strings.Contains(out, `"level":"WARN","msg":"request"`) {
		t.Errorf("500 should be logged at warn: %s", out)
	}
}

func TestRecovery(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	rl := newRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	if !rl.allow("a") || !rl.allow("a") {
		t.Fatal("first two hits should pass")
	}
	if rl.allow("a") {
		t.Error("third hit inside the window should be limited")
	}
	if !rl.allow("b") {
		t.Error("keys are independent")
	}

	now = now.Add(61 * time.Second)
	if !rl.allow("a") {
		t.Error("window should slide")
	}

	rl.forget("a")
	if _, ok := rl.counters["a"]; ok {
		t.Error("forget should drop the key")
	}
}

func TestRateLimiter_Unlimited(t *testing.T) {
	rl := newRateLimiter(0, time.Minute)
	for range 1000 {
		if !rl.allow("a") {
			t.Fatal("zero limit should never block")
		}
	}
}

func TestServer_DispatchRateLimited(t *testing.T) {
	srv := NewServer(Options{
		Catalog:           catalog.Default(),
		DispatchPerMinute: 2,
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	b := newBrowser(t, srv)
	form := url.Values{"event": {"toggle_sidebar"}}

	b.mustDispatch(form)
	b.mustDispatch(form)
	if w := b.dispatch(form); w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", w.Code)
	}
}

func TestSessions_SweepForgetsLimiter(t *testing.T) {
	now := time.Now()
	s := NewSessions(catalog.Default(), time.Minute)
	s.now = func() time.Time { return now }
	var removed []string
	s.onRemove = func(id string) { removed = append(removed, id) }

	sess := s.Create()
	now = now.Add(2 * time.Minute)
	s.Sweep()
	if len(removed) != 1 || removed[0] != sess.id {
		t.Errorf("removed = %v, want [%s]", removed, sess.id)
	}
}
