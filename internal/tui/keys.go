package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Dashboard key.Binding
	Breached  key.Binding
	Secrets   key.Binding
	Graph     key.Binding
	Workflows key.Binding
	Alerts    key.Binding
	History   key.Binding
	Home      key.Binding
	Auth      key.Binding

	PrevPage key.Binding
	NextPage key.Binding
	Tab      key.Binding
	Modal    key.Binding
	Close    key.Binding
	Sidebar  key.Binding

	Help key.Binding
	Quit key.Binding
}

// authKeyMap is active while the login form has focus; plain letters go to
// the inputs.
type authKeyMap struct {
	NextField  key.Binding
	PrevField  key.Binding
	ToggleMode key.Binding
	Submit     key.Binding
	Back       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Dashboard: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "dashboard")),
		Breached:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "breached")),
		Secrets:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "secrets")),
		Graph:     key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "graph")),
		Workflows: key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "workflows")),
		Alerts:    key.NewBinding(key.WithKeys("6"), key.WithHelp("6", "alerts")),
		History:   key.NewBinding(key.WithKeys("7"), key.WithHelp("7", "history")),
		Home:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		Auth:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "login")),

		PrevPage: key.NewBinding(key.WithKeys("left", "["), key.WithHelp("←/[", "prev page")),
		NextPage: key.NewBinding(key.WithKeys("right", "]"), key.WithHelp("→/]", "next page")),
		Tab:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "switch tab")),
		Modal:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new workflow")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Sidebar:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sidebar")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func defaultAuthKeyMap() authKeyMap {
	return authKeyMap{
		NextField:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		ToggleMode: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "login/sign up")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "home")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dashboard, k.PrevPage, k.NextPage, k.Sidebar, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Dashboard, k.Breached, k.Secrets, k.Graph, k.Workflows, k.Alerts, k.History},
		{k.Home, k.Auth, k.Sidebar},
		{k.PrevPage, k.NextPage, k.Tab, k.Modal, k.Close},
		{k.Help, k.Quit},
	}
}

func (k authKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.ToggleMode, k.Submit, k.Back, k.Quit}
}

func (k authKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextField, k.PrevField}, {k.ToggleMode, k.Submit, k.Back, k.Quit}}
}
