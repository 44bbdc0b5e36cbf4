package view

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/osiris-intel/osiris/internal/catalog"
)

const (
	brand             = "OSIRIS"
	dashboardAlertCap = 5
)

// Render builds the visual tree for the current state. It reads the state and
// catalog only.
func Render(s *State) Screen {
	sc := Screen{
		View:       s.current,
		Page:       s.mounted,
		Standalone: s.mounted.Standalone(),
		Title:      Title(s.mounted),
	}

	switch s.mounted {
	case ViewHome:
		sc.Home = s.renderHome()
		return sc
	case ViewAuth:
		sc.Auth = s.renderAuth()
		return sc
	}

	sc.Shell = s.renderShell()
	switch s.mounted {
	case ViewBreachedAccounts:
		sc.Breached = s.renderBreached()
	case ViewSecretsFound:
		sc.Secrets = s.renderSecrets()
	case ViewGraphExplorer:
		sc.Graph = &GraphPage{
			Title:    "Graph Explorer",
			Controls: []string{"Zoom In", "Zoom Out", "Fit", "Download"},
			Graph:    s.cat.Graph(),
		}
	case ViewAIWorkflows:
		sc.Workflows = s.renderWorkflows()
	case ViewAlerts:
		sc.Alerts = s.renderAlerts()
	case ViewQueryHistory:
		sc.History = &HistoryPage{
			Title:             "Query History",
			FilterPlaceholder: "Filter history...",
			Items:             historyItems(s.cat.History()),
		}
	default:
		sc.Dashboard = s.renderDashboard()
	}
	return sc
}

func (s *State) renderShell() *Shell {
	nav := make([]NavItem, 0, len(sidebar))
	for _, e := range sidebar {
		nav = append(nav, NavItem{
			View:   e.view,
			Label:  e.label,
			Icon:   e.icon,
			Active: e.view == s.current,
		})
	}
	u := s.cat.User()
	return &Shell{
		Brand:             brand,
		Collapsed:         s.SidebarCollapsed(),
		Nav:               nav,
		SearchPlaceholder: "Search selectors, keywords, or IOCs...",
		User: UserBadge{
			Name:   u.Name,
			Plan:   string(u.Tier) + " Plan",
			Avatar: u.Avatar,
		},
	}
}

func (s *State) renderHome() *HomePage {
	return &HomePage{
		Brand:             brand,
		Tagline:           "Uncovering Connections in the Digital Underworld.",
		SearchPlaceholder: "Enter a selector, keyword, or IOC...",
		Sources:           []string{"Darknet Forums", "Breach Datasets", "Paste Sites"},
		LoginLabel:        "Login",
		SignUpLabel:       "Sign Up Free",
		Copyright:         fmt.Sprintf("© %d OSIRIS Intelligence. All rights reserved.", s.now().Year()),
	}
}

func (s *State) renderAuth() *AuthPage {
	f := s.local.auth
	page := &AuthPage{
		Login: f.Login,
		Brand: brand,
		Fields: []FormField{
			{Name: FieldEmail, Type: "email", Placeholder: "Email Address", Value: f.Email},
			{Name: FieldPassword, Type: "password", Placeholder: "Password", Value: f.Password},
		},
	}
	if f.Login {
		page.Heading = "Welcome Back"
		page.Subheading = "Sign in to continue to your dashboard"
		page.Submit = "Login"
		page.SwitchPrompt = "Don't have an account?"
		page.SwitchAction = "Sign Up"
		return page
	}
	page.Fields = append(page.Fields, FormField{
		Name:        FieldConfirmPassword,
		Type:        "password",
		Placeholder: "Confirm Password",
		Value:       f.ConfirmPassword,
	})
	page.Heading = "Create an Account"
	page.Subheading = "Start your journey into the digital underworld"
	page.Submit = "Create Account"
	page.SwitchPrompt = "Already have an account?"
	page.SwitchAction = "Login"
	return page
}

func (s *State) renderDashboard() *DashboardPage {
	stats := s.cat.Stats()
	tier := s.cat.User().Tier

	page := &DashboardPage{
		Cards: []StatCard{
			statCard("Breached Accounts", humanize.Comma(int64(stats.BreachedAccounts)), tier),
			statCard("Secrets Found", humanize.Comma(int64(stats.SecretsFound)), tier),
			statCard("Graph Explorer", "Ready", tier),
		},
		GraphTitle: "Recent Graph Analysis",
		Graph:      s.cat.Graph(),
		Tabs: []TabButton{
			{Tab: TabAlerts, Label: "Alerts", Active: s.local.tab == TabAlerts},
			{Tab: TabHistory, Label: "History", Active: s.local.tab == TabHistory},
		},
	}

	switch s.local.tab {
	case TabAlerts:
		alerts := s.cat.Alerts()
		if len(alerts) > dashboardAlertCap {
			alerts = alerts[:dashboardAlertCap]
		}
		for _, a := range alerts {
			page.Activity = append(page.Activity, ActivityItem{
				Kind:     "alert",
				Title:    a.Agent,
				Subtitle: a.Finding,
				Time:     a.Time,
			})
		}
	case TabHistory:
		page.Activity = historyItems(s.cat.History())
	}
	return page
}

// statCard locks premium cards for free-tier users.
func statCard(title, value string, tier catalog.Tier) StatCard {
	if tier == catalog.TierFree && (title == "Graph Explorer" || title == "AI Workflows") {
		return StatCard{Title: title, Value: "Upgrade", Locked: true, Note: "Available on Tier 2+"}
	}
	return StatCard{Title: title, Value: value}
}

func historyItems(entries []catalog.HistoryEntry) []ActivityItem {
	items := make([]ActivityItem, 0, len(entries))
	for _, h := range entries {
		items = append(items, ActivityItem{
			Kind:     "history",
			Title:    h.Query,
			Subtitle: "View Results",
			Time:     h.Time,
		})
	}
	return items
}

func pagerView(p Pagination) Pager {
	return Pager{
		Current: p.Current,
		Total:   p.TotalPages(),
		HasPrev: p.HasPrev(),
		HasNext: p.HasNext(),
		Label:   p.Label(),
	}
}

func (s *State) renderBreached() *BreachedPage {
	p, _ := s.Pagination()
	return &BreachedPage{
		Title:             "Breached Accounts",
		FilterPlaceholder: "Filter accounts...",
		Columns:           []string{"Email", "Password Hash", "Source", "Breach Date"},
		Rows:              Slice(s.cat.Breached(), p),
		Pager:             pagerView(p),
	}
}

func (s *State) renderSecrets() *SecretsPage {
	p, _ := s.Pagination()
	page := &SecretsPage{
		Title:             "Secrets Found",
		FilterPlaceholder: "Filter secrets...",
		Columns:           []string{"Type", "Value", "Source", "Severity", "Date Found"},
		Pager:             pagerView(p),
	}
	for _, sec := range Slice(s.cat.Secrets(), p) {
		page.Rows = append(page.Rows, SecretRow{Secret: sec, Badge: SeverityBadge(sec.Severity)})
	}
	return page
}

func (s *State) renderWorkflows() *WorkflowsPage {
	page := &WorkflowsPage{
		Title:       "AI Workflows",
		CreateLabel: "Create New Workflow",
	}
	for _, wf := range s.cat.Workflows() {
		action := "Play"
		if wf.Status == catalog.WorkflowActive {
			action = "Pause"
		}
		page.Workflows = append(page.Workflows, WorkflowCard{Workflow: wf, ToggleAction: action})
	}
	if s.local.modalOpen {
		page.Modal = &WorkflowModal{
			Title:            "Create New AI Workflow",
			NamePlaceholder:  "e.g., Monitor High-Value Actors",
			RulesPlaceholder: "Define rules using selectors, keywords, and logic. e.g., (actor:ShadowBroker OR ioc:1.2.3.4) AND keyword:exploit",
			Actions:          []string{"Create Alert", "Send Email Notification", "Push to Webhook"},
			Cancel:           "Cancel",
			Submit:           "Create Workflow",
		}
	}
	return page
}

func (s *State) renderAlerts() *AlertsPage {
	page := &AlertsPage{
		Title:             "Alerts",
		FilterPlaceholder: "Filter alerts...",
		Columns:           []string{"Agent", "Finding", "IOC", "Severity", "Published"},
	}
	for _, a := range s.cat.Alerts() {
		page.Rows = append(page.Rows, AlertRow{Alert: a, Badge: SeverityBadge(a.Severity)})
	}
	return page
}

// SeverityBadge maps a severity to its pill. Unknown values get the neutral
// style and keep their text.
func SeverityBadge(sev catalog.Severity) Badge {
	if !sev.Known() {
		return Badge{Text: string(sev), Class: "neutral"}
	}
	return Badge{Text: string(sev), Class: strings.ToLower(string(sev))}
}
