package view

// Event is a user interaction fed to State.Dispatch.
type Event interface {
	// Name is a stable snake_case label for logs and metrics.
	Name() string
}

// Navigate switches the current view. The target is not validated.
type Navigate struct{ To ViewID }

// ChangePage sets the pagination position without clamping.
type ChangePage struct{ Page int }

// PrevPage is the Previous button; a no-op while it is disabled.
type PrevPage struct{}

// NextPage is the Next button; a no-op while it is disabled.
type NextPage struct{}

// SelectTab switches the dashboard aside list.
type SelectTab struct{ Tab Tab }

// OpenModal shows the workflow creation modal.
type OpenModal struct{}

// CloseModal hides the workflow creation modal.
type CloseModal struct{}

// SubmitWorkflow is the modal's Create Workflow button. It does nothing.
type SubmitWorkflow struct{}

// ToggleSidebar collapses or expands the shell sidebar.
type ToggleSidebar struct{}

// ToggleAuthMode flips between login and sign-up.
type ToggleAuthMode struct{}

// SetField records typed text in an auth form field.
type SetField struct {
	Field Field
	Value string
}

// SubmitAuth submits the auth form.
type SubmitAuth struct{}

func (Navigate) Name() string       { return "navigate" }
func (ChangePage) Name() string     { return "change_page" }
func (PrevPage) Name() string       { return "prev_page" }
func (NextPage) Name() string       { return "next_page" }
func (SelectTab) Name() string      { return "select_tab" }
func (OpenModal) Name() string      { return "open_modal" }
func (CloseModal) Name() string     { return "close_modal" }
func (SubmitWorkflow) Name() string { return "submit_workflow" }
func (ToggleSidebar) Name() string  { return "toggle_sidebar" }
func (ToggleAuthMode) Name() string { return "toggle_auth_mode" }
func (SetField) Name() string       { return "set_field" }
func (SubmitAuth) Name() string     { return "submit_auth" }

// Dispatch applies ev. It never fails: events that do not apply to the
// mounted page are ignored, and values are taken as given.
func (s *State) Dispatch(ev Event) {
	switch e := ev.(type) {
	case Navigate:
		s.navigate(e.To)

	case ChangePage:
		if _, ok := s.Pagination(); ok {
			s.local.currentPage = e.Page
		}
	case PrevPage:
		if p, ok := s.Pagination(); ok && p.HasPrev() {
			s.Dispatch(ChangePage{Page: p.Current - 1})
		}
	case NextPage:
		if p, ok := s.Pagination(); ok && p.HasNext() {
			s.Dispatch(ChangePage{Page: p.Current + 1})
		}

	case SelectTab:
		if s.mounted == ViewDashboard {
			s.local.tab = e.Tab
		}

	case OpenModal:
		if s.mounted == ViewAIWorkflows {
			s.local.modalOpen = true
		}
	case CloseModal:
		if s.mounted == ViewAIWorkflows {
			s.local.modalOpen = false
		}
	case SubmitWorkflow:
		// placeholder button

	case ToggleSidebar:
		if s.shell != nil {
			s.shell.collapsed = !s.shell.collapsed
		}

	case ToggleAuthMode:
		if s.mounted == ViewAuth {
			s.local.auth.Login = !s.local.auth.Login
		}
	case SetField:
		if s.mounted != ViewAuth {
			return
		}
		switch e.Field {
		case FieldEmail:
			s.local.auth.Email = e.Value
		case FieldPassword:
			s.local.auth.Password = e.Value
		case FieldConfirmPassword:
			s.local.auth.ConfirmPassword = e.Value
		}
	case SubmitAuth:
		if s.mounted == ViewAuth {
			s.navigate(ViewDashboard)
		}
	}
}
