package view

import (
	"github.com/osiris-intel/osiris/internal/catalog"
	"github.com/osiris-intel/osiris/internal/graph"
)

// Screen is the visual tree produced by Render. Exactly one page section is
// non-nil; Shell is set for every non-standalone page.
type Screen struct {
	View       ViewID `json:"view"`
	Page       ViewID `json:"page"`
	Standalone bool   `json:"standalone"`
	Title      string `json:"title"`
	Shell      *Shell `json:"shell,omitempty"`

	Home      *HomePage      `json:"home,omitempty"`
	Auth      *AuthPage      `json:"auth,omitempty"`
	Dashboard *DashboardPage `json:"dashboard,omitempty"`
	Breached  *BreachedPage  `json:"breached,omitempty"`
	Secrets   *SecretsPage   `json:"secrets,omitempty"`
	Graph     *GraphPage     `json:"graph,omitempty"`
	Workflows *WorkflowsPage `json:"workflows,omitempty"`
	Alerts    *AlertsPage    `json:"alerts,omitempty"`
	History   *HistoryPage   `json:"history,omitempty"`
}

// Shell is the layout frame: sidebar and header.
type Shell struct {
	Brand             string    `json:"brand"`
	Collapsed         bool      `json:"collapsed"`
	Nav               []NavItem `json:"nav"`
	SearchPlaceholder string    `json:"search_placeholder"`
	User              UserBadge `json:"user"`
}

// NavItem is one sidebar link.
type NavItem struct {
	View   ViewID `json:"view"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

// UserBadge is the header profile chip.
type UserBadge struct {
	Name   string `json:"name"`
	Plan   string `json:"plan"`
	Avatar string `json:"avatar,omitempty"`
}

// HomePage is the public landing page.
type HomePage struct {
	Brand             string   `json:"brand"`
	Tagline           string   `json:"tagline"`
	SearchPlaceholder string   `json:"search_placeholder"`
	Sources           []string `json:"sources"`
	LoginLabel        string   `json:"login_label"`
	SignUpLabel       string   `json:"signup_label"`
	Copyright         string   `json:"copyright"`
}

// AuthPage is the login / sign-up form.
type AuthPage struct {
	Login        bool        `json:"login"`
	Brand        string      `json:"brand"`
	Heading      string      `json:"heading"`
	Subheading   string      `json:"subheading"`
	Fields       []FormField `json:"fields"`
	Submit       string      `json:"submit"`
	SwitchPrompt string      `json:"switch_prompt"`
	SwitchAction string      `json:"switch_action"`
}

// FormField is a rendered input with its current value.
type FormField struct {
	Name        Field  `json:"name"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder"`
	Value       string `json:"value"`
}

// DashboardPage is the analyst overview.
type DashboardPage struct {
	Cards      []StatCard     `json:"cards"`
	GraphTitle string         `json:"graph_title"`
	Graph      graph.Layout   `json:"graph"`
	Tabs       []TabButton    `json:"tabs"`
	Activity   []ActivityItem `json:"activity"`
}

// StatCard is a headline counter. Locked cards hide their value behind an
// upgrade prompt.
type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Locked bool   `json:"locked"`
	Note   string `json:"note,omitempty"`
}

// TabButton is one tab in a tab strip.
type TabButton struct {
	Tab    Tab    `json:"tab"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// ActivityItem is a compact row in an activity list.
type ActivityItem struct {
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Time     string `json:"time"`
}

// Badge is a severity pill. Class is one of critical, high, medium, low or
// neutral.
type Badge struct {
	Text  string `json:"text"`
	Class string `json:"class"`
}

// Pager is the rendered pagination control.
type Pager struct {
	Current int    `json:"current"`
	Total   int    `json:"total"`
	HasPrev bool   `json:"has_prev"`
	HasNext bool   `json:"has_next"`
	Label   string `json:"label"`
}

// BreachedPage lists one page of breached accounts.
type BreachedPage struct {
	Title             string                    `json:"title"`
	FilterPlaceholder string                    `json:"filter_placeholder"`
	Columns           []string                  `json:"columns"`
	Rows              []catalog.BreachedAccount `json:"rows"`
	Pager             Pager                     `json:"pager"`
}

// SecretRow is a secret with its severity badge.
type SecretRow struct {
	catalog.Secret
	Badge Badge `json:"badge"`
}

// SecretsPage lists one page of leaked secrets.
type SecretsPage struct {
	Title             string      `json:"title"`
	FilterPlaceholder string      `json:"filter_placeholder"`
	Columns           []string    `json:"columns"`
	Rows              []SecretRow `json:"rows"`
	Pager             Pager       `json:"pager"`
}

// GraphPage is the graph explorer placeholder.
type GraphPage struct {
	Title    string       `json:"title"`
	Controls []string     `json:"controls"`
	Graph    graph.Layout `json:"graph"`
}

// WorkflowCard is a workflow with its run toggle label.
type WorkflowCard struct {
	catalog.Workflow
	ToggleAction string `json:"toggle_action"`
}

// WorkflowModal is the workflow creation dialog.
type WorkflowModal struct {
	Title            string   `json:"title"`
	NamePlaceholder  string   `json:"name_placeholder"`
	RulesPlaceholder string   `json:"rules_placeholder"`
	Actions          []string `json:"actions"`
	Cancel           string   `json:"cancel"`
	Submit           string   `json:"submit"`
}

// WorkflowsPage lists AI workflows.
type WorkflowsPage struct {
	Title       string         `json:"title"`
	CreateLabel string         `json:"create_label"`
	Workflows   []WorkflowCard `json:"workflows"`
	Modal       *WorkflowModal `json:"modal,omitempty"`
}

// AlertRow is an alert with its severity badge.
type AlertRow struct {
	catalog.Alert
	Badge Badge `json:"badge"`
}

// AlertsPage lists every alert.
type AlertsPage struct {
	Title             string     `json:"title"`
	FilterPlaceholder string     `json:"filter_placeholder"`
	Columns           []string   `json:"columns"`
	Rows              []AlertRow `json:"rows"`
}

// HistoryPage lists past queries.
type HistoryPage struct {
	Title             string         `json:"title"`
	FilterPlaceholder string         `json:"filter_placeholder"`
	Items             []ActivityItem `json:"items"`
}
