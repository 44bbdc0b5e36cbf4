package dashboard

import (
	"html/template"
	"strings"
)

var tmplFuncs = template.FuncMap{
	"avatar": userAvatar,
	"lower":  strings.ToLower,
	// seq yields 1..n for page buttons.
	"seq": func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}
		return out
	},
}

const baseStyle = `
*{margin:0;padding:0;box-sizing:border-box}
:root{
  --bg:#0a0a0f;--surface:#12121a;--surface2:#1a1a26;--border:#2a2a3a;
  --text:#e0e0ee;--text2:#8888aa;--text3:#555570;
  --accent:#6366f1;--accent-light:#818cf8;--accent-dim:#4f46e5;
  --danger:#ef4444;--success:#22c55e;--warn:#f59e0b;
  --mono:'SF Mono','Fira Code','JetBrains Mono',monospace;
  --sans:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;
}
body{font-family:var(--sans);background:var(--bg);color:var(--text);min-height:100vh}
form{display:inline}
button{font-family:inherit;cursor:pointer}
.logo{font-family:var(--mono);font-weight:700;letter-spacing:-0.5px}
.logo span{color:var(--accent-light)}
.btn{display:inline-block;padding:8px 16px;background:var(--accent);color:#fff;border:none;border-radius:6px;font-size:0.82rem;font-weight:600;transition:background 0.2s}
.btn:hover{background:var(--accent-dim)}
.btn-ghost{background:var(--surface2);color:var(--text2);border:1px solid var(--border)}
.btn-ghost:hover{background:var(--accent-dim);color:#fff;border-color:var(--accent)}
.btn:disabled{opacity:0.4;cursor:default}
.link{background:none;border:none;color:var(--accent-light);font-size:inherit;padding:0}
.link:hover{text-decoration:underline}
input[type=text],input[type=email],input[type=password],textarea,select{
  width:100%;padding:10px 14px;background:var(--bg);border:1px solid var(--border);
  border-radius:8px;color:var(--text);font-family:var(--mono);font-size:0.85rem;outline:none;transition:border-color 0.2s;
}
input:focus,textarea:focus,select:focus{border-color:var(--accent)}
input::placeholder,textarea::placeholder{color:var(--text3)}
`

var homeTmpl = template.Must(template.New("home").Funcs(tmplFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Home.Brand}}</title>
<style>` + baseStyle + `
body{display:flex;flex-direction:column}
header{display:flex;align-items:center;justify-content:space-between;padding:20px 40px}
header .logo{font-size:1.3rem}
header .actions{display:flex;gap:12px}
.hero{flex:1;display:flex;flex-direction:column;align-items:center;justify-content:center;text-align:center;padding:40px 24px}
.hero h1{font-size:2.4rem;font-weight:700;max-width:720px;line-height:1.2;margin-bottom:32px}
.hero .search{max-width:640px;width:100%}
.sources{display:flex;gap:28px;margin-top:28px;color:var(--text3);font-size:0.8rem;text-transform:uppercase;letter-spacing:1px}
footer{padding:24px;text-align:center;color:var(--text3);font-size:0.72rem}
</style>
</head>
<body>
<header>
  <div class="logo">{{.Home.Brand}}</div>
  <div class="actions">
    <form method="POST" action="/osiris/dispatch">
      <input type="hidden" name="view" value="auth">
      <button class="btn btn-ghost" name="event" value="navigate">{{.Home.LoginLabel}}</button>
    </form>
    <form method="POST" action="/osiris/dispatch">
      <input type="hidden" name="view" value="auth">
      <button class="btn" name="event" value="navigate">{{.Home.SignUpLabel}}</button>
    </form>
  </div>
</header>
<section class="hero">
  <h1>{{.Home.Tagline}}</h1>
  <div class="search"><input type="text" placeholder="{{.Home.SearchPlaceholder}}"></div>
  <div class="sources">{{range .Home.Sources}}<span>{{.}}</span>{{end}}</div>
</section>
<footer>{{.Home.Copyright}}</footer>
</body>
</html>`))

var authTmpl = template.Must(template.New("auth").Funcs(tmplFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Auth.Brand}} | {{.Auth.Heading}}</title>
<style>` + baseStyle + `
body{display:flex;align-items:center;justify-content:center}
.auth-card{background:var(--surface);border:1px solid var(--border);border-radius:12px;padding:48px 40px;max-width:420px;width:100%;text-align:center}
.auth-card .logo{font-size:1.5rem;margin-bottom:8px}
.auth-card h2{font-size:1.2rem;margin-bottom:6px}
.subtitle{color:var(--text2);font-size:0.85rem;margin-bottom:28px}
.auth-card form{display:block}
.auth-card input{margin-bottom:12px}
.auth-card .btn{width:100%;margin-top:8px;padding:12px}
.switch{margin-top:20px;color:var(--text2);font-size:0.82rem}
.back{margin-top:28px;font-size:0.75rem}
.back .link{color:var(--text3)}
</style>
</head>
<body>
<div class="auth-card">
  <div class="logo">{{.Auth.Brand}}</div>
  <h2>{{.Auth.Heading}}</h2>
  <p class="subtitle">{{.Auth.Subheading}}</p>
  <form method="POST" action="/osiris/dispatch" autocomplete="off">
    {{range .Auth.Fields}}<input type="{{.Type}}" name="{{.Name}}" placeholder="{{.Placeholder}}" value="{{.Value}}" required>
    {{end}}<button type="submit" class="btn" name="event" value="submit_auth">{{.Auth.Submit}}</button>
    <p class="switch">{{.Auth.SwitchPrompt}} <button type="submit" class="link" name="event" value="toggle_auth_mode" formnovalidate>{{.Auth.SwitchAction}}</button></p>
  </form>
  <div class="back">
    <form method="POST" action="/osiris/dispatch">
      <input type="hidden" name="view" value="home">
      <button class="link" name="event" value="navigate">&larr; Back to home</button>
    </form>
  </div>
</div>
</body>
</html>`))

const shellHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Shell.Brand}} | {{.Title}}</title>
<style>` + baseStyle + `
.app{display:flex;min-height:100vh}

/* Sidebar */
aside{width:240px;background:var(--surface);border-right:1px solid var(--border);padding:20px 12px;display:flex;flex-direction:column;gap:4px;transition:width 0.2s}
aside.collapsed{width:64px}
aside .logo{font-size:1.1rem;padding:0 10px 20px}
aside form{display:block}
.nav-btn{display:flex;align-items:center;gap:12px;width:100%;padding:10px;background:none;border:none;border-radius:8px;color:var(--text2);font-size:0.85rem;text-align:left;transition:all 0.2s}
.nav-btn:hover{background:var(--surface2);color:var(--text)}
.nav-btn.active{background:var(--surface2);color:var(--accent-light)}
.nav-btn .icon{width:20px;text-align:center}
aside.collapsed .label{display:none}
aside .collapse{margin-top:auto}

/* Header */
.content{flex:1;display:flex;flex-direction:column;min-width:0}
header{display:flex;align-items:center;gap:16px;padding:12px 28px;border-bottom:1px solid var(--border);background:var(--surface)}
header .search{flex:1;max-width:560px}
header .spacer{flex:1}
.user{display:flex;align-items:center;gap:10px}
.user .name{font-size:0.85rem;font-weight:600}
.user .plan{font-size:0.7rem;color:var(--text3);font-family:var(--mono)}
.avatar{border-radius:50%;display:block}

main{padding:28px;max-width:1200px;width:100%}
h1{font-size:1.4rem;font-weight:600;margin-bottom:20px}
.toolbar{display:flex;gap:12px;align-items:center;margin-bottom:16px}
.toolbar input{max-width:320px}

/* Stats */
.stats{display:grid;grid-template-columns:repeat(3,1fr);gap:16px;margin-bottom:24px}
.stat{background:var(--surface);border:1px solid var(--border);border-radius:10px;padding:20px}
.stat .label{color:var(--text3);font-size:0.72rem;text-transform:uppercase;letter-spacing:1px;margin-bottom:6px}
.stat .value{font-family:var(--mono);font-size:1.8rem;font-weight:700}
.stat.locked .value{color:var(--warn);font-size:1.2rem}
.stat .note{color:var(--text3);font-size:0.72rem;margin-top:4px}

/* Card */
.card{background:var(--surface);border:1px solid var(--border);border-radius:10px;padding:20px;margin-bottom:20px}
.card h2{font-size:0.95rem;font-weight:600;margin-bottom:16px}
.grid-2{display:grid;grid-template-columns:2fr 1fr;gap:20px}

/* Graph */
svg.graph{width:100%;height:320px;background:var(--bg);border-radius:8px}
svg.graph line{stroke:var(--border);stroke-width:1.5}
svg.graph circle{fill:var(--accent-dim);stroke:var(--accent-light);stroke-width:1.5}
svg.graph circle.hub{fill:var(--danger);stroke:#fca5a5}
svg.graph text{fill:var(--text2);font-size:11px;font-family:var(--mono)}
.graph-meta{color:var(--text3);font-size:0.72rem;margin-top:8px;font-family:var(--mono)}

/* Tabs */
.tabs{display:flex;border-bottom:1px solid var(--border);margin-bottom:12px}
.tab{padding:8px 18px;color:var(--text3);font-size:0.82rem;background:none;border:none;border-bottom:2px solid transparent}
.tab:hover{color:var(--text)}
.tab.active{color:var(--accent-light);border-bottom-color:var(--accent-light)}
.activity{list-style:none}
.activity li{padding:10px 0;border-bottom:1px solid var(--border)}
.activity li:last-child{border-bottom:none}
.activity .title{font-size:0.85rem;font-weight:600}
.activity .sub{color:var(--text2);font-size:0.78rem}
.activity .time{color:var(--text3);font-size:0.7rem;font-family:var(--mono)}

/* Table */
table{width:100%;border-collapse:collapse;font-size:0.82rem}
th{text-align:left;color:var(--text3);font-size:0.7rem;text-transform:uppercase;letter-spacing:1px;padding:8px 12px;border-bottom:1px solid var(--border)}
td{padding:10px 12px;border-bottom:1px solid var(--border);color:var(--text2);font-family:var(--mono);font-size:0.78rem}
tr:hover td{background:var(--surface2)}
.empty{color:var(--text3);text-align:center;padding:40px 0;font-size:0.85rem}

/* Severity badges */
.sev{padding:2px 8px;border-radius:4px;font-size:0.7rem;font-weight:600;text-transform:uppercase}
.sev-critical{background:#ef444420;color:var(--danger);font-weight:700}
.sev-high{background:#f59e0b20;color:var(--warn)}
.sev-medium{background:#6366f120;color:var(--accent-light)}
.sev-low{background:#22c55e20;color:var(--success)}
.sev-neutral{background:var(--surface2);color:var(--text3)}

/* Pager */
.pager{display:flex;align-items:center;justify-content:space-between;margin-top:16px}
.pager .label{color:var(--text3);font-size:0.78rem;font-family:var(--mono)}
.pager .pages{display:flex;gap:6px}
.page-btn{padding:4px 10px;background:var(--surface2);color:var(--text2);border:1px solid var(--border);border-radius:6px;font-size:0.75rem}
.page-btn.active{background:var(--accent);color:#fff;border-color:var(--accent)}

/* Workflows */
.workflows{display:grid;grid-template-columns:repeat(auto-fill,minmax(280px,1fr));gap:16px}
.workflow .status{font-size:0.72rem;font-family:var(--mono)}
.workflow .status.active{color:var(--success)}
.workflow .status.paused{color:var(--warn)}
.workflow .meta{color:var(--text3);font-size:0.75rem;margin:8px 0 14px}

/* Modal */
.modal-overlay{position:fixed;inset:0;background:rgba(0,0,0,0.55);z-index:199}
.modal-overlay form,.modal-overlay button{display:block;width:100%;height:100%;background:none;border:none;cursor:default}
.modal{position:fixed;top:50%;left:50%;transform:translate(-50%,-50%);width:520px;max-width:92vw;background:var(--surface);border:1px solid var(--border);border-radius:12px;padding:28px;z-index:200}
.modal h3{font-size:1.05rem;margin-bottom:18px}
.modal .field{margin-bottom:14px}
.modal label{display:block;color:var(--text3);font-size:0.7rem;text-transform:uppercase;letter-spacing:1px;margin-bottom:4px}
.modal textarea{min-height:90px;resize:vertical}
.modal .buttons{display:flex;justify-content:flex-end;gap:10px;margin-top:18px}

@media(max-width:900px){
  .stats{grid-template-columns:1fr}
  .grid-2{grid-template-columns:1fr}
}
</style>
</head>
<body>
<div class="app">
<aside class="{{if .Shell.Collapsed}}collapsed{{end}}">
  <div class="logo">{{if .Shell.Collapsed}}O{{else}}{{.Shell.Brand}}{{end}}</div>
  {{range .Shell.Nav}}<form method="POST" action="/osiris/dispatch">
    <input type="hidden" name="view" value="{{.View}}">
    <button class="nav-btn{{if .Active}} active{{end}}" name="event" value="navigate" title="{{.Label}}"><span class="icon">{{.Icon}}</span><span class="label">{{.Label}}</span></button>
  </form>
  {{end}}<form method="POST" action="/osiris/dispatch" class="collapse">
    <button class="nav-btn" name="event" value="toggle_sidebar"><span class="icon">{{if .Shell.Collapsed}}&raquo;{{else}}&laquo;{{end}}</span><span class="label">Collapse</span></button>
  </form>
</aside>
<div class="content">
<header>
  <div class="search"><input type="text" placeholder="{{.Shell.SearchPlaceholder}}"></div>
  <div class="spacer"></div>
  <div class="user">
    {{avatar .Shell.User.Name .Shell.User.Avatar 32}}
    <div><div class="name">{{.Shell.User.Name}}</div><div class="plan">{{.Shell.User.Plan}}</div></div>
  </div>
</header>
<main>`

const shellFoot = `</main>
</div>
</div>
</body>
</html>`

const pageBlocks = `
{{define "graph"}}<svg class="graph" role="img" aria-label="Entity graph">
  {{range .Edges}}<line x1="{{.X1}}%" y1="{{.Y1}}%" x2="{{.X2}}%" y2="{{.Y2}}%"/>
  {{end}}{{range .Nodes}}<circle class="{{if .Hub}}hub{{end}}" cx="{{.X}}%" cy="{{.Y}}%" r="{{.R}}"><title>{{.Label}} ({{.Degree}} links)</title></circle>
  <text x="{{.X}}%" y="{{.Y}}%" dy="{{.R}}" dominant-baseline="hanging" text-anchor="middle">{{.Label}}</text>
  {{end}}</svg>
<div class="graph-meta">{{.TotalNodes}} nodes &middot; {{.TotalEdges}} edges</div>{{end}}

{{define "pager"}}<div class="pager">
  <span class="label">{{.Label}}</span>
  <div class="pages">
    <form method="POST" action="/osiris/dispatch"><button class="page-btn" name="event" value="prev_page"{{if not .HasPrev}} disabled{{end}}>&lsaquo; Prev</button></form>
    <form method="POST" action="/osiris/dispatch">
      <input type="hidden" name="event" value="change_page">
      {{$cur := .Current}}{{range seq .Total}}<button class="page-btn{{if eq . $cur}} active{{end}}" name="page" value="{{.}}">{{.}}</button>{{end}}
    </form>
    <form method="POST" action="/osiris/dispatch"><button class="page-btn" name="event" value="next_page"{{if not .HasNext}} disabled{{end}}>Next &rsaquo;</button></form>
  </div>
</div>{{end}}

{{define "badge"}}<span class="sev sev-{{.Class}}">{{.Text}}</span>{{end}}

{{define "activity"}}<ul class="activity">
  {{range .}}<li><div class="title">{{.Title}}</div><div class="sub">{{.Subtitle}}</div><div class="time">{{.Time}}</div></li>
  {{else}}<li class="empty">Nothing to show</li>{{end}}
</ul>{{end}}

{{define "dashboard"}}<h1>{{.Title}}</h1>
{{with .Dashboard}}<div class="stats">
  {{range .Cards}}<div class="stat{{if .Locked}} locked{{end}}"><div class="label">{{.Title}}</div><div class="value">{{.Value}}</div>{{if .Note}}<div class="note">{{.Note}}</div>{{end}}</div>
  {{end}}</div>
<div class="grid-2">
  <div class="card"><h2>{{.GraphTitle}}</h2>{{template "graph" .Graph}}</div>
  <div class="card">
    <form method="POST" action="/osiris/dispatch" class="tabs">
      <input type="hidden" name="event" value="select_tab">
      {{range .Tabs}}<button class="tab{{if .Active}} active{{end}}" name="tab" value="{{.Tab}}">{{.Label}}</button>{{end}}
    </form>
    {{if .Activity}}{{template "activity" .Activity}}{{end}}
  </div>
</div>{{end}}{{end}}

{{define "breached"}}{{with .Breached}}<h1>{{.Title}}</h1>
<div class="toolbar"><input type="text" placeholder="{{.FilterPlaceholder}}"></div>
<div class="card">
<table>
  <thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
  <tbody>{{range .Rows}}<tr><td>{{.Email}}</td><td>{{.PasswordHash}}</td><td>{{.Source}}</td><td>{{.BreachDate}}</td></tr>
  {{else}}<tr><td colspan="4" class="empty">No accounts on this page</td></tr>{{end}}</tbody>
</table>
{{template "pager" .Pager}}
</div>{{end}}{{end}}

{{define "secrets"}}{{with .Secrets}}<h1>{{.Title}}</h1>
<div class="toolbar"><input type="text" placeholder="{{.FilterPlaceholder}}"></div>
<div class="card">
<table>
  <thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
  <tbody>{{range .Rows}}<tr><td>{{.Type}}</td><td>{{.Value}}</td><td>{{.Source}}</td><td>{{template "badge" .Badge}}</td><td>{{.DateFound}}</td></tr>
  {{else}}<tr><td colspan="5" class="empty">No secrets on this page</td></tr>{{end}}</tbody>
</table>
{{template "pager" .Pager}}
</div>{{end}}{{end}}

{{define "graphExplorer"}}{{with .Graph}}<h1>{{.Title}}</h1>
<div class="toolbar">{{range .Controls}}<button class="btn btn-ghost" type="button">{{.}}</button>{{end}}</div>
<div class="card">{{template "graph" .Graph}}</div>{{end}}{{end}}

{{define "workflows"}}{{with .Workflows}}<div class="toolbar"><h1>{{.Title}}</h1><span style="flex:1"></span>
  <form method="POST" action="/osiris/dispatch"><button class="btn" name="event" value="open_modal">+ {{.CreateLabel}}</button></form>
</div>
<div class="workflows">
  {{range .Workflows}}<div class="card workflow">
    <h2>{{.Name}}</h2>
    <div class="status {{lower (print .Status)}}">&#9679; {{.Status}}</div>
    <div class="meta">{{.Rules}} rules &middot; Last run {{.LastRun}}</div>
    <button class="btn btn-ghost" type="button">{{.ToggleAction}}</button>
    <button class="btn btn-ghost" type="button">Edit</button>
  </div>
  {{end}}</div>
{{with .Modal}}<div class="modal-overlay"><form method="POST" action="/osiris/dispatch"><button name="event" value="close_modal" aria-label="Close"></button></form></div>
<div class="modal" role="dialog">
  <h3>{{.Title}}</h3>
  <form method="POST" action="/osiris/dispatch" style="display:block">
    <div class="field"><label>Workflow Name</label><input type="text" name="workflow_name" placeholder="{{.NamePlaceholder}}"></div>
    <div class="field"><label>Rules</label><textarea name="workflow_rules" placeholder="{{.RulesPlaceholder}}"></textarea></div>
    <div class="field"><label>Action</label><select name="workflow_action">{{range .Actions}}<option>{{.}}</option>{{end}}</select></div>
    <div class="buttons">
      <button class="btn btn-ghost" name="event" value="close_modal">{{.Cancel}}</button>
      <button class="btn" name="event" value="submit_workflow">{{.Submit}}</button>
    </div>
  </form>
</div>{{end}}{{end}}{{end}}

{{define "alerts"}}{{with .Alerts}}<h1>{{.Title}}</h1>
<div class="toolbar"><input type="text" placeholder="{{.FilterPlaceholder}}"></div>
<div class="card">
<table>
  <thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
  <tbody>{{range .Rows}}<tr><td>{{.Agent}}</td><td>{{.Finding}}</td><td>{{.IOC}}</td><td>{{template "badge" .Badge}}</td><td>{{.PublishedDate}}</td></tr>
  {{else}}<tr><td colspan="5" class="empty">No alerts</td></tr>{{end}}</tbody>
</table>
</div>{{end}}{{end}}

{{define "history"}}{{with .History}}<h1>{{.Title}}</h1>
<div class="toolbar"><input type="text" placeholder="{{.FilterPlaceholder}}"></div>
<div class="card">{{template "activity" .Items}}</div>{{end}}{{end}}
`

var shellTmpl = template.Must(template.New("shell").Funcs(tmplFuncs).Parse(shellHead + `
{{if .Breached}}{{template "breached" .}}{{else if .Secrets}}{{template "secrets" .}}{{else if .Graph}}{{template "graphExplorer" .}}{{else if .Workflows}}{{template "workflows" .}}{{else if .Alerts}}{{template "alerts" .}}{{else if .History}}{{template "history" .}}{{else}}{{template "dashboard" .}}{{end}}
` + shellFoot + pageBlocks))
