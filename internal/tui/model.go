// Package tui is the terminal front end: a bubbletea program over the same
// view state the web dashboard uses.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/osiris-intel/osiris/internal/catalog"
	"github.com/osiris-intel/osiris/internal/view"
)

var navKeys = []struct {
	pick func(keyMap) key.Binding
	to   view.ViewID
}{
	{func(k keyMap) key.Binding { return k.Dashboard }, view.ViewDashboard},
	{func(k keyMap) key.Binding { return k.Breached }, view.ViewBreachedAccounts},
	{func(k keyMap) key.Binding { return k.Secrets }, view.ViewSecretsFound},
	{func(k keyMap) key.Binding { return k.Graph }, view.ViewGraphExplorer},
	{func(k keyMap) key.Binding { return k.Workflows }, view.ViewAIWorkflows},
	{func(k keyMap) key.Binding { return k.Alerts }, view.ViewAlerts},
	{func(k keyMap) key.Binding { return k.History }, view.ViewQueryHistory},
	{func(k keyMap) key.Binding { return k.Home }, view.ViewHome},
	{func(k keyMap) key.Binding { return k.Auth }, view.ViewAuth},
}

var authFields = []view.Field{view.FieldEmail, view.FieldPassword, view.FieldConfirmPassword}

// Model is the bubbletea model.
type Model struct {
	state    *view.State
	keys     keyMap
	authKeys authKeyMap
	help     help.Model
	inputs   []textinput.Model
	focus    int
	width    int
	height   int
	logger   *slog.Logger
	onEvent  func(view.Event)
}

// Option configures a Model.
type Option func(*Model)

// WithLogger routes event logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// WithEventHook calls fn after every dispatched event.
func WithEventHook(fn func(view.Event)) Option {
	return func(m *Model) { m.onEvent = fn }
}

// New returns a model starting on the home page.
func New(cat *catalog.Catalog, opts ...Option) Model {
	m := Model{
		state:    view.New(cat),
		keys:     defaultKeyMap(),
		authKeys: defaultAuthKeyMap(),
		help:     help.New(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	placeholders := []string{"Email Address", "Password", "Confirm Password"}
	for i := range authFields {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 128
		ti.Width = 36
		if i > 0 {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		m.inputs = append(m.inputs, ti)
	}
	return m
}

// State exposes the underlying view state.
func (m Model) State() *view.State { return m.state }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.state.Mounted() == view.ViewAuth {
			return m.updateAuth(msg)
		}
		return m.updateShell(msg)
	}
	return m, nil
}

func (m Model) updateShell(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.PrevPage):
		m.dispatch(view.PrevPage{})
	case key.Matches(msg, m.keys.NextPage):
		m.dispatch(view.NextPage{})
	case key.Matches(msg, m.keys.Tab):
		next := view.TabAlerts
		if m.state.ActiveTab() == view.TabAlerts {
			next = view.TabHistory
		}
		m.dispatch(view.SelectTab{Tab: next})
	case key.Matches(msg, m.keys.Modal):
		m.dispatch(view.OpenModal{})
	case key.Matches(msg, m.keys.Close):
		m.dispatch(view.CloseModal{})
	case key.Matches(msg, m.keys.Sidebar):
		m.dispatch(view.ToggleSidebar{})
	default:
		for _, nk := range navKeys {
			if key.Matches(msg, nk.pick(m.keys)) {
				return m.navigate(nk.to)
			}
		}
	}
	return m, nil
}

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.authKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.authKeys.Back):
		return m.navigate(view.ViewHome)
	case key.Matches(msg, m.authKeys.Submit):
		m.dispatch(view.SubmitAuth{})
		m.blurAll()
		return m, nil
	case key.Matches(msg, m.authKeys.ToggleMode):
		m.dispatch(view.ToggleAuthMode{})
		if m.focus >= m.fieldCount() {
			m.focus = 0
		}
		return m, m.focusInput()
	case key.Matches(msg, m.authKeys.NextField):
		m.focus = (m.focus + 1) % m.fieldCount()
		return m, m.focusInput()
	case key.Matches(msg, m.authKeys.PrevField):
		m.focus = (m.focus - 1 + m.fieldCount()) % m.fieldCount()
		return m, m.focusInput()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.dispatch(view.SetField{Field: authFields[m.focus], Value: m.inputs[m.focus].Value()})
	return m, cmd
}

func (m Model) navigate(to view.ViewID) (tea.Model, tea.Cmd) {
	before := m.state.Mounted()
	m.dispatch(view.Navigate{To: to})
	if m.state.Mounted() == view.ViewAuth && before != view.ViewAuth {
		// fresh form
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.focus = 0
		return m, m.focusInput()
	}
	if m.state.Mounted() != view.ViewAuth {
		m.blurAll()
	}
	return m, nil
}

func (m *Model) dispatch(ev view.Event) {
	from := m.state.Current()
	m.state.Dispatch(ev)
	if _, typing := ev.(view.SetField); !typing {
		m.logger.Debug("tui event", "event", ev.Name(), "from", from, "to", m.state.Current())
	}
	if m.onEvent != nil {
		m.onEvent(ev)
	}
}

// fieldCount is the number of inputs shown in the current auth mode.
func (m Model) fieldCount() int {
	if m.state.Auth().Login {
		return 2
	}
	return 3
}

func (m *Model) focusInput() tea.Cmd {
	m.blurAll()
	return m.inputs[m.focus].Focus()
}

func (m *Model) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m Model) View() string {
	sc := view.Render(m.state)

	var body, helpView string
	if sc.Auth != nil {
		lines := make([]string, 0, len(sc.Auth.Fields))
		for i := range sc.Auth.Fields {
			lines = append(lines, m.inputs[i].View())
		}
		body = renderAuth(sc.Auth, lines, m.width)
		helpView = m.help.View(m.authKeys)
	} else {
		body = RenderScreen(sc, m.width)
		helpView = m.help.View(m.keys)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, "", helpView)
}
