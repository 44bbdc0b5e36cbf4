package dashboard

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osiris-intel/osiris/internal/catalog"
	"github.com/osiris-intel/osiris/internal/view"
)

const sessionCookieName = "osiris_session"

// session is one browser's UI state. mu serializes dispatch and render.
type session struct {
	id       string
	mu       sync.Mutex
	state    *view.State
	lastSeen time.Time
}

// locked runs fn with the session held. The lock is released even if fn
// panics, so the recovery middleware leaves the session usable.
func (s *session) locked(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// Sessions maps browser cookies to UI state. It is not authentication: any
// request without a live session simply gets a fresh one on the home page.
type Sessions struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
	catalog  *catalog.Catalog

	// onChange reports the live session count after creates and sweeps.
	onChange func(int)
	// onRemove is called with each swept session id.
	onRemove func(string)
}

// NewSessions returns an empty session table. A ttl of zero disables expiry.
func NewSessions(cat *catalog.Catalog, ttl time.Duration) *Sessions {
	return &Sessions{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
		catalog:  cat,
	}
}

// Create starts a new session showing the home page.
func (s *Sessions) Create() *session {
	s.mu.Lock()
	sess := &session{
		id:       uuid.NewString(),
		state:    view.New(s.catalog),
		lastSeen: s.now(),
	}
	s.sessions[sess.id] = sess
	n := len(s.sessions)
	s.mu.Unlock()

	s.report(n)
	return sess
}

// Get returns a live session and refreshes its idle timer.
func (s *Sessions) Get(id string) (*session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if s.expired(sess) {
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess, true
}

// Sweep drops idle sessions and returns how many were removed.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	var removed []string
	for id, sess := range s.sessions {
		sess.mu.Lock()
		dead := s.expired(sess)
		sess.mu.Unlock()
		if dead {
			delete(s.sessions, id)
			removed = append(removed, id)
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	if len(removed) == 0 {
		return 0
	}
	if s.onRemove != nil {
		for _, id := range removed {
			s.onRemove(id)
		}
	}
	s.report(n)
	return len(removed)
}

// Len returns the number of tracked sessions, live or not yet swept.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Rebind points every session, and every future one, at cat.
func (s *Sessions) Rebind(cat *catalog.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = cat
	for _, sess := range s.sessions {
		sess.mu.Lock()
		sess.state.SetCatalog(cat)
		sess.mu.Unlock()
	}
}

func (s *Sessions) expired(sess *session) bool {
	return s.ttl > 0 && s.now().Sub(sess.lastSeen) >= s.ttl
}

func (s *Sessions) report(n int) {
	if s.onChange != nil {
		s.onChange(n)
	}
}

type sessionKey struct{}

// Middleware attaches the caller's session to the request context, issuing
// a new cookie when the caller has none or its session expired.
func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess *session
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			sess, _ = s.Get(cookie.Value)
		}
		if sess == nil {
			s.Sweep()
			sess = s.Create()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sess.id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteStrictMode,
			})
		}
		tagSession(r.Context(), sess.id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
	})
}

func sessionFrom(ctx context.Context) *session {
	sess, _ := ctx.Value(sessionKey{}).(*session)
	return sess
}
