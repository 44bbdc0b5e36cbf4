package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/osiris-intel/osiris/internal/telemetry"
	"github.com/osiris-intel/osiris/internal/view"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// render snapshots the session's screen under its lock.
func (s *Server) render(ctx context.Context, sess *session) view.Screen {
	_, span := telemetry.Tracer().Start(ctx, "render")
	defer span.End()

	var sc view.Screen
	sess.locked(func() { sc = view.Render(sess.state) })

	span.SetAttributes(attribute.String("osiris.page", string(sc.Page)))
	return sc
}

func (s *Server) countRender(sc view.Screen, format string) {
	if s.metrics != nil {
		s.metrics.Renders.WithLabelValues(string(sc.Page), format).Inc()
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	sc := s.render(r.Context(), sess)
	s.countRender(sc, "html")

	trace.SpanFromContext(r.Context()).SetAttributes(attribute.String("osiris.view", string(sc.View)))

	tmpl := shellTmpl
	switch {
	case sc.Home != nil:
		tmpl = homeTmpl
	case sc.Auth != nil:
		tmpl = authTmpl
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, sc); err != nil {
		s.logger.Error("render page", "page", sc.Page, "error", err)
	}
}

func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	sc := s.render(r.Context(), sessionFrom(r.Context()))
	s.countRender(sc, "json")

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(sc)
}

func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if !s.limiter.allow(sess.id) {
		s.logger.Warn("dispatch rate limited", "session", sess.id)
		http.Error(w, "too many requests", http.StatusTooManyRequests)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	events, err := parseEvents(r.PostForm)
	if err != nil {
		s.logger.Debug("dispatch rejected", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var from, to view.ViewID
	sess.locked(func() {
		from = sess.state.Current()
		for _, ev := range events {
			sess.state.Dispatch(ev)
		}
		to = sess.state.Current()
	})

	names := make([]string, 0, len(events))
	for _, ev := range events {
		names = append(names, ev.Name())
		if s.metrics != nil {
			s.metrics.Events.WithLabelValues(ev.Name()).Inc()
		}
	}
	trace.SpanFromContext(r.Context()).SetAttributes(
		attribute.StringSlice("osiris.events", names),
		attribute.String("osiris.view", string(to)),
	)
	s.logger.Debug("dispatch",
		"session", sess.id,
		"events", names,
		"from", from,
		"to", to,
	)

	http.Redirect(w, r, "/osiris", http.StatusSeeOther)
}

// authFields are carried by every form on the auth page so that any button
// there, including the mode toggle, keeps what was typed.
var authFields = []view.Field{view.FieldEmail, view.FieldPassword, view.FieldConfirmPassword}

// parseEvents turns a dispatch form into events. Auth field values present in
// the form are applied first, then the named event.
func parseEvents(form url.Values) ([]view.Event, error) {
	name := form.Get("event")
	if name == "" {
		return nil, fmt.Errorf("missing event")
	}

	var events []view.Event
	for _, f := range authFields {
		if vals, ok := form[string(f)]; ok && len(vals) > 0 {
			events = append(events, view.SetField{Field: f, Value: vals[0]})
		}
	}

	var ev view.Event
	switch name {
	case "navigate":
		ev = view.Navigate{To: view.ViewID(form.Get("view"))}
	case "change_page":
		page, err := strconv.Atoi(form.Get("page"))
		if err != nil {
			return nil, fmt.Errorf("page: %w", err)
		}
		ev = view.ChangePage{Page: page}
	case "prev_page":
		ev = view.PrevPage{}
	case "next_page":
		ev = view.NextPage{}
	case "select_tab":
		ev = view.SelectTab{Tab: view.Tab(form.Get("tab"))}
	case "open_modal":
		ev = view.OpenModal{}
	case "close_modal":
		ev = view.CloseModal{}
	case "submit_workflow":
		ev = view.SubmitWorkflow{}
	case "toggle_sidebar":
		ev = view.ToggleSidebar{}
	case "toggle_auth_mode":
		ev = view.ToggleAuthMode{}
	case "set_field":
		ev = view.SetField{Field: view.Field(form.Get("field")), Value: form.Get("value")}
	case "submit_auth":
		ev = view.SubmitAuth{}
	default:
		return nil, fmt.Errorf("unknown event %q", name)
	}
	return append(events, ev), nil
}
