package view

import (
	"time"

	"github.com/osiris-intel/osiris/internal/catalog"
)

// Tab selects the dashboard aside list.
type Tab string

const (
	TabAlerts  Tab = "alerts"
	TabHistory Tab = "history"
)

// Field names an auth form input.
type Field string

const (
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// AuthForm is the login / sign-up form content. Nothing checks it.
type AuthForm struct {
	Login           bool
	Email           string
	Password        string
	ConfirmPassword string
}

// pageLocal is the state owned by the mounted page. It is recreated whenever
// the router mounts a different page.
type pageLocal struct {
	currentPage int
	tab         Tab
	modalOpen   bool
	auth        AuthForm
}

func freshLocal() pageLocal {
	return pageLocal{
		currentPage: 1,
		tab:         TabAlerts,
		auth:        AuthForm{Login: true},
	}
}

// shellLocal lives while the layout shell is mounted.
type shellLocal struct {
	collapsed bool
}

// State is one user's UI state. It is not safe for concurrent use; callers
// that share a State across goroutines must serialize Dispatch and Render.
type State struct {
	cat *catalog.Catalog
	now func() time.Time

	current ViewID
	mounted ViewID
	local   pageLocal
	shell   *shellLocal
}

// New returns a state showing the home page.
func New(cat *catalog.Catalog) *State {
	s := &State{cat: cat, now: time.Now}
	s.navigate(ViewHome)
	return s
}

// SetCatalog swaps the record source, e.g. after a profile reload. Local
// state is kept.
func (s *State) SetCatalog(cat *catalog.Catalog) { s.cat = cat }

// SetClock overrides the clock used for the copyright year.
func (s *State) SetClock(now func() time.Time) { s.now = now }

// Current is the raw view id last navigated to.
func (s *State) Current() ViewID { return s.current }

// Mounted is the page actually rendered for Current.
func (s *State) Mounted() ViewID { return s.mounted }

// CurrentPage is the mounted page's pagination position.
func (s *State) CurrentPage() int { return s.local.currentPage }

// ActiveTab is the dashboard aside tab.
func (s *State) ActiveTab() Tab { return s.local.tab }

// ModalOpen reports whether the workflow creation modal is showing.
func (s *State) ModalOpen() bool { return s.local.modalOpen }

// Auth returns a copy of the auth form.
func (s *State) Auth() AuthForm { return s.local.auth }

// ShellMounted reports whether the layout shell is on screen.
func (s *State) ShellMounted() bool { return s.shell != nil }

// SidebarCollapsed reports the shell's sidebar state; false without a shell.
func (s *State) SidebarCollapsed() bool { return s.shell != nil && s.shell.collapsed }

// Pagination returns the mounted page's pager, and false when the page has
// no paginated list.
func (s *State) Pagination() (Pagination, bool) {
	var count int
	switch s.mounted {
	case ViewBreachedAccounts:
		count = s.cat.Counts()["breached"]
	case ViewSecretsFound:
		count = s.cat.Counts()["secrets"]
	default:
		return Pagination{}, false
	}
	return NewPagination(s.local.currentPage, count), true
}

// navigate sets the current view and applies mount rules: page state resets
// only when a different page is mounted, shell state resets when leaving the
// shell.
func (s *State) navigate(to ViewID) {
	s.current = to
	page := resolve(to)

	if page.Standalone() {
		s.shell = nil
	} else if s.shell == nil {
		s.shell = &shellLocal{}
	}

	if page != s.mounted {
		s.mounted = page
		s.local = freshLocal()
	}
}
