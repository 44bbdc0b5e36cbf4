package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/osiris-intel/osiris/internal/graph"
	"github.com/osiris-intel/osiris/internal/view"
)

const (
	sidebarWidth          = 24
	collapsedSidebarWidth = 5
	defaultWidth          = 100
)

// RenderScreen draws a screen as terminal text. width <= 0 uses a default.
// Auth inputs are drawn from their stored values with passwords masked.
func RenderScreen(sc view.Screen, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	switch {
	case sc.Home != nil:
		return renderHome(sc.Home, width)
	case sc.Auth != nil:
		inputs := make([]string, len(sc.Auth.Fields))
		for i, f := range sc.Auth.Fields {
			inputs[i] = fieldValue(f)
		}
		return renderAuth(sc.Auth, inputs, width)
	}
	return renderShell(sc, width)
}

func fieldValue(f view.FormField) string {
	v := f.Value
	if f.Type == "password" {
		v = strings.Repeat("•", len([]rune(v)))
	}
	if v == "" {
		return subtleStyle.Render(f.Placeholder)
	}
	return v
}

func renderHome(h *view.HomePage, width int) string {
	var b strings.Builder
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		brandStyle.Render(h.Brand), "   ",
		buttonStyle.Render(h.LoginLabel), " ",
		primaryButton.Render(h.SignUpLabel),
	)
	b.WriteString(header + "\n\n")
	b.WriteString(titleStyle.Render(h.Tagline) + "\n")
	b.WriteString(buttonStyle.Width(min(width-4, 64)).Render(subtleStyle.Render(h.SearchPlaceholder)) + "\n\n")
	b.WriteString(subtleStyle.Render(strings.Join(h.Sources, "  ·  ")) + "\n\n")
	b.WriteString(subtleStyle.Render(h.Copyright))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderAuth draws the form with pre-rendered input lines, one per field.
func renderAuth(a *view.AuthPage, inputs []string, width int) string {
	var b strings.Builder
	b.WriteString(brandStyle.Render(a.Brand) + "\n\n")
	b.WriteString(titleStyle.MarginBottom(0).Render(a.Heading) + "\n")
	b.WriteString(subtleStyle.Render(a.Subheading) + "\n\n")
	for _, in := range inputs {
		b.WriteString(buttonStyle.Width(40).Render(in) + "\n")
	}
	b.WriteString("\n" + primaryButton.Render(a.Submit) + "\n\n")
	b.WriteString(subtleStyle.Render(a.SwitchPrompt) + " " + navActive.Render(a.SwitchAction))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func renderShell(sc view.Screen, width int) string {
	side := renderSidebar(sc.Shell)
	mainWidth := max(width-lipgloss.Width(side)-mainStyle.GetHorizontalPadding(), 20)

	var body string
	switch {
	case sc.Breached != nil:
		body = renderBreached(sc.Breached, mainWidth)
	case sc.Secrets != nil:
		body = renderSecrets(sc.Secrets, mainWidth)
	case sc.Graph != nil:
		body = renderGraphPage(sc.Graph, mainWidth)
	case sc.Workflows != nil:
		body = renderWorkflows(sc.Workflows, mainWidth)
	case sc.Alerts != nil:
		body = renderAlerts(sc.Alerts, mainWidth)
	case sc.History != nil:
		body = renderHistory(sc.History)
	case sc.Dashboard != nil:
		body = renderDashboard(sc.Title, sc.Dashboard, mainWidth)
	}

	main := mainStyle.Width(mainWidth).Render(renderHeader(sc.Shell, mainWidth) + "\n" + body)
	return lipgloss.JoinHorizontal(lipgloss.Top, side, main)
}

func renderSidebar(sh *view.Shell) string {
	var lines []string
	w := sidebarWidth
	if sh.Collapsed {
		w = collapsedSidebarWidth
		lines = append(lines, brandStyle.Render(sh.Brand[:1]), "")
	} else {
		lines = append(lines, brandStyle.Render(sh.Brand), "")
	}
	for i, item := range sh.Nav {
		style := navItem
		if item.Active {
			style = navActive
		}
		text := item.Icon
		if !sh.Collapsed {
			text = fmt.Sprintf("%s %s %s", item.Icon, item.Label, subtleStyle.Render(strconv.Itoa(i+1)))
		}
		lines = append(lines, style.Render(text))
	}
	return sidebarStyle.Width(w).Render(strings.Join(lines, "\n"))
}

func renderHeader(sh *view.Shell, width int) string {
	user := fmt.Sprintf("%s %s", sh.User.Name, subtleStyle.Render(sh.User.Plan))
	search := subtleStyle.Render(sh.SearchPlaceholder)
	gap := max(width-lipgloss.Width(search)-lipgloss.Width(user), 2)
	return headerStyle.Width(width).Render(search + strings.Repeat(" ", gap) + user)
}

func renderDashboard(title string, d *view.DashboardPage, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")

	cards := make([]string, 0, len(d.Cards))
	for _, c := range d.Cards {
		value := brandStyle.Render(c.Value)
		if c.Locked {
			value = lockedStyle.Render(c.Value) + "\n" + subtleStyle.Render(c.Note)
		}
		cards = append(cards, cardStyle.Render(subtleStyle.Render(strings.ToUpper(c.Title))+"\n"+value))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n")

	b.WriteString(titleStyle.MarginBottom(0).Render(d.GraphTitle) + "\n")
	b.WriteString(renderGraph(d.Graph, width) + "\n\n")

	tabs := make([]string, 0, len(d.Tabs))
	for _, t := range d.Tabs {
		if t.Active {
			tabs = append(tabs, activeTab.Render(t.Label))
		} else {
			tabs = append(tabs, inactiveTab.Render(t.Label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...) + "\n")
	if len(d.Activity) > 0 {
		b.WriteString(renderActivity(d.Activity))
	}
	return b.String()
}

func renderActivity(items []view.ActivityItem) string {
	if len(items) == 0 {
		return subtleStyle.Render("Nothing to show")
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			lipgloss.NewStyle().Bold(true).Render(it.Title),
			it.Subtitle,
			subtleStyle.Render(it.Time)))
	}
	return strings.Join(lines, "\n")
}

// renderGraph lists nodes by degree with the hub highlighted, then the links.
func renderGraph(l graph.Layout, width int) string {
	rows := make([][]string, 0, len(l.Nodes))
	for _, n := range l.Nodes {
		label := n.Label
		if n.Hub {
			label = hubStyle.Render(label + " ★")
		}
		rows = append(rows, []string{label, strconv.Itoa(n.InDegree), strconv.Itoa(n.OutDegree)})
	}
	links := make([]string, 0, len(l.Edges))
	for _, e := range l.Edges {
		links = append(links, l.Label(e.From)+" → "+l.Label(e.To))
	}
	return renderTable([]string{"Entity", "In", "Out"}, rows, min(width, 60)) + "\n" +
		subtleStyle.Render(strings.Join(links, "   ")) + "\n" +
		subtleStyle.Render(fmt.Sprintf("%d nodes · %d edges", l.TotalNodes, l.TotalEdges))
}

func renderTable(headers []string, rows [][]string, width int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return cell
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.Render()
}

func renderPager(p view.Pager) string {
	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.PerPage = 1
	pg.TotalPages = p.Total
	pg.Page = p.Current - 1
	pg.ActiveDot = navActive.Render("•")
	pg.InactiveDot = subtleStyle.Render("•")

	prev, next := "‹ prev", "next ›"
	if p.HasPrev {
		prev = navActive.Render(prev)
	} else {
		prev = subtleStyle.Render(prev)
	}
	if p.HasNext {
		next = navActive.Render(next)
	} else {
		next = subtleStyle.Render(next)
	}
	return fmt.Sprintf("%s  %s  %s   %s", prev, pg.View(), next, subtleStyle.Render(p.Label))
}

func pageTitle(title, filter string) string {
	return titleStyle.MarginBottom(0).Render(title) + "  " + subtleStyle.Render(filter) + "\n\n"
}

func renderBreached(p *view.BreachedPage, width int) string {
	rows := make([][]string, 0, len(p.Rows))
	for _, r := range p.Rows {
		rows = append(rows, []string{r.Email, r.PasswordHash, r.Source, r.BreachDate})
	}
	out := pageTitle(p.Title, p.FilterPlaceholder) + renderTable(p.Columns, rows, width)
	if len(rows) == 0 {
		out += "\n" + subtleStyle.Render("No accounts on this page")
	}
	return out + "\n" + renderPager(p.Pager)
}

func badge(b view.Badge) string {
	style, ok := severityStyles[b.Class]
	if !ok {
		style = severityStyles["neutral"]
	}
	return style.Render(b.Text)
}

func renderSecrets(p *view.SecretsPage, width int) string {
	rows := make([][]string, 0, len(p.Rows))
	for _, r := range p.Rows {
		rows = append(rows, []string{r.Type, r.Value, r.Source, badge(r.Badge), r.DateFound})
	}
	out := pageTitle(p.Title, p.FilterPlaceholder) + renderTable(p.Columns, rows, width)
	if len(rows) == 0 {
		out += "\n" + subtleStyle.Render("No secrets on this page")
	}
	return out + "\n" + renderPager(p.Pager)
}

func renderGraphPage(p *view.GraphPage, width int) string {
	controls := make([]string, 0, len(p.Controls))
	for _, c := range p.Controls {
		controls = append(controls, buttonStyle.Render(c))
	}
	return titleStyle.Render(p.Title) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, controls...) + "\n" +
		renderGraph(p.Graph, width)
}

func renderWorkflows(p *view.WorkflowsPage, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.MarginBottom(0).Render(p.Title) + "  " + primaryButton.Render("+ "+p.CreateLabel) + "\n\n")

	cards := make([]string, 0, len(p.Workflows))
	for _, wf := range p.Workflows {
		status := string(wf.Status)
		if st, ok := statusStyles[status]; ok {
			status = st.Render("● " + status)
		}
		cards = append(cards, cardStyle.Width(30).Render(
			lipgloss.NewStyle().Bold(true).Render(wf.Name)+"\n"+
				status+"\n"+
				subtleStyle.Render(fmt.Sprintf("%d rules · Last run %s", wf.Rules, wf.LastRun))+"\n"+
				"["+wf.ToggleAction+"] [Edit]"))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))

	if m := p.Modal; m != nil {
		body := titleStyle.Render(m.Title) + "\n" +
			subtleStyle.Render("WORKFLOW NAME") + "\n" + buttonStyle.Width(min(width-10, 60)).Render(subtleStyle.Render(m.NamePlaceholder)) + "\n" +
			subtleStyle.Render("RULES") + "\n" + buttonStyle.Width(min(width-10, 60)).Render(subtleStyle.Render(m.RulesPlaceholder)) + "\n" +
			subtleStyle.Render("ACTION") + "\n" + strings.Join(m.Actions, " / ") + "\n\n" +
			buttonStyle.Render(m.Cancel+" (esc)") + " " + primaryButton.Render(m.Submit)
		b.WriteString("\n\n" + modalStyle.Render(body))
	}
	return b.String()
}

func renderAlerts(p *view.AlertsPage, width int) string {
	rows := make([][]string, 0, len(p.Rows))
	for _, r := range p.Rows {
		rows = append(rows, []string{r.Agent, r.Finding, r.IOC, badge(r.Badge), r.PublishedDate})
	}
	return pageTitle(p.Title, p.FilterPlaceholder) + renderTable(p.Columns, rows, width)
}

func renderHistory(p *view.HistoryPage) string {
	return pageTitle(p.Title, p.FilterPlaceholder) + renderActivity(p.Items)
}
