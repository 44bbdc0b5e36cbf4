// Package view is the OSIRIS UI state model: a view router, per-page local
// state scoped to the page's mount lifetime, a single Dispatch funnel for
// every mutation, and a pure Render into a Screen that front ends draw.
package view

// ViewID names a navigation destination. Any string is accepted; unknown
// values render the dashboard inside the layout shell.
type ViewID string

const (
	ViewHome             ViewID = "home"
	ViewAuth             ViewID = "auth"
	ViewDashboard        ViewID = "dashboard"
	ViewBreachedAccounts ViewID = "breachedAccounts"
	ViewSecretsFound     ViewID = "secretsFound"
	ViewGraphExplorer    ViewID = "graphExplorer"
	ViewAIWorkflows      ViewID = "aiWorkflows"
	ViewAlerts           ViewID = "alerts"
	ViewQueryHistory     ViewID = "queryHistory"
)

// Views lists every known view in sidebar order, standalone pages first.
func Views() []ViewID {
	return []ViewID{
		ViewHome,
		ViewAuth,
		ViewDashboard,
		ViewBreachedAccounts,
		ViewSecretsFound,
		ViewGraphExplorer,
		ViewAIWorkflows,
		ViewAlerts,
		ViewQueryHistory,
	}
}

// Known reports whether v is one of the enumerated views.
func (v ViewID) Known() bool {
	for _, k := range Views() {
		if v == k {
			return true
		}
	}
	return false
}

// Standalone reports whether v renders full-screen without the layout shell.
func (v ViewID) Standalone() bool {
	return v == ViewHome || v == ViewAuth
}

// resolve maps a view id to the page that renders it.
func resolve(v ViewID) ViewID {
	if v.Known() {
		return v
	}
	return ViewDashboard
}

type navEntry struct {
	view  ViewID
	label string
	icon  string
}

// sidebar is the shell navigation, in display order.
var sidebar = []navEntry{
	{ViewDashboard, "Dashboard", "▦"},
	{ViewBreachedAccounts, "Breached Accounts", "◍"},
	{ViewSecretsFound, "Secrets Found", "⚿"},
	{ViewGraphExplorer, "Graph Explorer", "☍"},
	{ViewAIWorkflows, "AI Workflows", "⚙"},
	{ViewAlerts, "Alerts", "⚠"},
	{ViewQueryHistory, "Query History", "↺"},
}

// Title returns the human page title for a view.
func Title(v ViewID) string {
	switch v {
	case ViewHome:
		return "OSIRIS"
	case ViewAuth:
		return "Sign in"
	}
	for _, e := range sidebar {
		if e.view == v {
			return e.label
		}
	}
	return "Dashboard"
}
