package tui

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osiris-intel/osiris/internal/catalog"
	"github.com/osiris-intel/osiris/internal/view"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansi.ReplaceAllString(s, "") }

func screenFor(events ...view.Event) view.Screen {
	s := view.New(catalog.Default())
	for _, ev := range events {
		s.Dispatch(ev)
	}
	return view.Render(s)
}

func TestRenderScreen_Dashboard(t *testing.T) {
	out := stripANSI(RenderScreen(screenFor(view.Navigate{To: view.ViewDashboard}), 120))
	for _, want := range []string{"OSIRIS", "1,327", "ShadowBroker ★", "Alerts", "History", "Alex Carter"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderScreen_BreachedPager(t *testing.T) {
	out := stripANSI(RenderScreen(screenFor(
		view.Navigate{To: view.ViewBreachedAccounts},
		view.ChangePage{Page: 3},
	), 120))
	assert.Contains(t, out, "user21@example.com")
	assert.NotContains(t, out, "user11@example.com")
	assert.Contains(t, out, "Page 3 of 3")
}

func TestRenderScreen_OutOfRangePage(t *testing.T) {
	out := stripANSI(RenderScreen(screenFor(
		view.Navigate{To: view.ViewBreachedAccounts},
		view.ChangePage{Page: 7},
	), 120))
	assert.Contains(t, out, "No accounts on this page")
	assert.Contains(t, out, "Page 7 of 3")
}

func TestRenderScreen_AuthMasksPasswords(t *testing.T) {
	out := stripANSI(RenderScreen(screenFor(
		view.Navigate{To: view.ViewAuth},
		view.SetField{Field: view.FieldPassword, Value: "secret"},
	), 80))
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "••••••")
}

func TestRenderScreen_CollapsedSidebar(t *testing.T) {
	out := stripANSI(RenderScreen(screenFor(
		view.Navigate{To: view.ViewAlerts},
		view.ToggleSidebar{},
	), 120))
	assert.NotContains(t, out, "Breached Accounts")
}

func TestBadge_UnknownSeverity(t *testing.T) {
	assert.Equal(t, "Severe", stripANSI(badge(view.SeverityBadge("Severe"))))
}
