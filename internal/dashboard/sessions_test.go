package dashboard

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/osiris-intel/osiris/internal/catalog"
	"github.com/osiris-intel/osiris/internal/view"
)

func TestSessions_CreateAndGet(t *testing.T) {
	s := NewSessions(catalog.Default(), time.Hour)
	sess := s.Create()
	if sess.id == "" {
		t.Fatal("empty session id")
	}
	if got := sess.state.Current(); got != view.ViewHome {
		t.Errorf("new session view = %s, want home", got)
	}
	got, ok := s.Get(sess.id)
	if !ok || got != sess {
		t.Fatal("session not found")
	}
	if _, ok := s.Get("nope"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestSessions_SlidingExpiry(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessions(catalog.Default(), time.Hour)
	s.now = func() time.Time { return now }

	sess := s.Create()
	now = now.Add(50 * time.Minute)
	if _, ok := s.Get(sess.id); !ok {
		t.Fatal("session expired early")
	}
	now = now.Add(50 * time.Minute)
	if _, ok := s.Get(sess.id); !ok {
		t.Fatal("access should refresh the idle timer")
	}
	now = now.Add(time.Hour)
	if _, ok := s.Get(sess.id); ok {
		t.Error("idle session should expire")
	}
	if n := s.Sweep(); n != 1 {
		t.Errorf("swept %d, want 1", n)
	}
	if s.Len() != 0 {
		t.Errorf("len = %d after sweep", s.Len())
	}
}

func TestSessions_ZeroTTLNeverExpires(t *testing.T) {
	now := time.Now()
	s := NewSessions(catalog.Default(), 0)
	s.now = func() time.Time { return now }
	sess := s.Create()
	now = now.Add(365 * 24 * time.Hour)
	if _, ok := s.Get(sess.id); !ok {
		t.Error("session with zero ttl expired")
	}
}

func TestSessions_Rebind(t *testing.T) {
	s := NewSessions(catalog.Default(), time.Hour)
	sess := s.Create()
	sess.state.Dispatch(view.Navigate{To: view.ViewDashboard})

	s.Rebind(catalog.Default().WithUser(catalog.User{Name: "Dana Reyes", Tier: catalog.TierEnterprise}))

	if got := view.Render(sess.state).Shell.User.Name; got != "Dana Reyes" {
		t.Errorf("existing session user = %q", got)
	}
	fresh := s.Create()
	fresh.state.Dispatch(view.Navigate{To: view.ViewDashboard})
	if got := view.Render(fresh.state).Shell.User.Name; got != "Dana Reyes" {
		t.Errorf("new session user = %q", got)
	}
}

func TestSessions_OnChange(t *testing.T) {
	s := NewSessions(catalog.Default(), time.Hour)
	var last int
	s.onChange = func(n int) { last = n }
	s.Create()
	s.Create()
	if last != 2 {
		t.Errorf("onChange = %d, want 2", last)
	}
}

func TestSessions_MiddlewareReplacesExpiredCookie(t *testing.T) {
	s := NewSessions(catalog.Default(), time.Hour)
	var seen *session
	h := s.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = sessionFrom(r.Context())
	}))

	req := httptest.NewRequest("GET", "/osiris", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "stale"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if seen == nil {
		t.Fatal("no session in context")
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != seen.id {
		t.Fatalf("cookies = %+v, want new session %s", cookies, seen.id)
	}
	if cookies[0].SameSite != http.SameSiteStrictMode {
		t.Error("cookie should be SameSite=Strict")
	}

	// A live cookie is reused without a new Set-Cookie.
	req = httptest.NewRequest("GET", "/osiris", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	first := seen
	h.ServeHTTP(w, req)
	if seen != first {
		t.Error("live cookie should map to the same session")
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("no cookie should be set for a live session")
	}
}

func TestSessions_PanicReleasesLock(t *testing.T) {
	s := NewSessions(catalog.Default(), time.Hour)
	sess := s.Create()

	func() {
		defer func() { _ = recover() }()
		sess.locked(func() { panic("render failed") })
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, ok := s.Get(sess.id); !ok {
			t.Error("session lost after panic")
		}
		s.Sweep()
		s.Create()
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("session lock still held after panic")
	}
}
