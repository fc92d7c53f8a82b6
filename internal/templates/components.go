package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

// The markup is kept as html/template so the package builds without the
// templ code generator; each view is exposed as a templ.Component.

var tmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"itemPath":     itemPath,
	"deletePrompt": deletePrompt,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Employee Manager</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link rel="preconnect" href="https://fonts.googleapis.com">
<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
<link href="https://fonts.googleapis.com/css2?family=IBM+Plex+Mono:wght@400;500;600&family=IBM+Plex+Sans:wght@300;400;500;600&display=swap" rel="stylesheet">
<style>
  :root {
    --ink: #0d1117;
    --paper: #f5f0e8;
    --ledger: #e8e0cc;
    --accent: #c0392b;
    --muted: #6b5e4e;
    --rule: #b8a898;
  }
  * { box-sizing: border-box; }
  body {
    background: var(--paper);
    color: var(--ink);
    font-family: 'IBM Plex Sans', sans-serif;
    margin: 0;
    min-height: 100vh;
  }
  main { max-width: 960px; margin: 0 auto; padding: 32px 16px; }
  .mono { font-family: 'IBM Plex Mono', monospace; }
  .toolbar { display: flex; justify-content: space-between; align-items: center; margin-bottom: 16px; }
  .toolbar h1 { font-size: 1.25rem; margin: 0; }
  .btn {
    font-family: 'IBM Plex Mono', monospace;
    font-weight: 600;
    font-size: 0.75rem;
    letter-spacing: 0.08em;
    padding: 6px 14px;
    border: 2px solid var(--ink);
    background: white;
    color: var(--ink);
    cursor: pointer;
    text-transform: uppercase;
    text-decoration: none;
  }
  .btn-primary { background: var(--ink); color: white; }
  .btn-primary:hover { background: var(--accent); border-color: var(--accent); }
  .btn-danger { color: var(--accent); border-color: var(--accent); }
  .btn-danger:hover { background: var(--accent); color: white; }
  table { width: 100%; border-collapse: collapse; background: rgba(255,255,255,0.7); }
  th {
    font-family: 'IBM Plex Mono', monospace;
    font-size: 0.65rem;
    letter-spacing: 0.12em;
    text-transform: uppercase;
    color: var(--muted);
    text-align: left;
    border-bottom: 2px solid var(--ink);
    padding: 8px;
  }
  td { border-bottom: 1px solid var(--ledger); padding: 8px; font-size: 0.9rem; }
  td.actions { text-align: right; white-space: nowrap; }
  .empty, .loading { padding: 48px 0; text-align: center; color: var(--muted); }
  .error {
    display: flex; justify-content: space-between; align-items: center;
    border: 2px solid var(--accent); color: var(--accent);
    background: white; padding: 8px 12px; margin-bottom: 16px;
  }
  .backdrop {
    position: fixed; inset: 0; background: rgba(13,17,23,0.45);
    display: flex; align-items: center; justify-content: center;
  }
  .modal { background: var(--paper); border-left: 4px solid var(--ink); padding: 24px; width: 420px; }
  .modal h2 { margin-top: 0; font-size: 1.1rem; }
  .field { margin-bottom: 12px; }
  .field label {
    font-family: 'IBM Plex Mono', monospace;
    font-size: 0.6rem; font-weight: 600; letter-spacing: 0.1em;
    text-transform: uppercase; color: var(--muted); display: block; margin-bottom: 2px;
  }
  .field input {
    background: white; border: 1px solid var(--rule); border-bottom: 2px solid var(--ink);
    padding: 6px 8px; font-family: 'IBM Plex Mono', monospace; font-size: 0.85rem; width: 100%;
  }
  .field input.missing { border-bottom-color: var(--accent); }
  .field-error { color: var(--accent); font-size: 0.75rem; margin: 2px 0 0; }
  .modal-actions { display: flex; justify-content: flex-end; gap: 8px; margin-top: 16px; }
</style>
</head>
<body>
<main>
{{template "app" .}}
</main>
</body>
</html>
{{define "app"}}<div id="app"{{if .State.Loading}} hx-get="/employees" hx-trigger="load" hx-swap="outerHTML"{{end}}>
  <div class="toolbar">
    <h1>Employees</h1>
    <div>
      <a class="btn" href="/employees/roster.pdf">Export PDF</a>
      <button class="btn btn-primary" hx-get="/employees/new" hx-target="#app" hx-swap="outerHTML">Add Employee</button>
    </div>
  </div>
  {{with .State.Error}}{{template "error" .}}{{end}}
  {{if .State.Loading}}{{template "loading"}}{{else if not .State.Employees}}{{template "empty"}}{{else}}{{template "table" .State.Employees}}{{end}}
  {{with .Form}}{{template "modal" .}}{{end}}
</div>{{end}}
{{define "loading"}}<div class="loading mono">Loading employees...</div>{{end}}
{{define "empty"}}<div class="empty">No employees found</div>{{end}}
{{define "error"}}<div class="error" role="alert">
    <span>{{.}}</span>
    <button class="btn btn-danger" hx-post="/error/dismiss" hx-target="#app" hx-swap="outerHTML" aria-label="Dismiss">&times;</button>
  </div>{{end}}
{{define "table"}}<table>
    <thead>
      <tr><th>Name</th><th>Email</th><th>Position</th><th>Department</th><th></th></tr>
    </thead>
    <tbody>
    {{range .}}
      <tr id="employee-{{.ID}}">
        <td>{{.Name}}</td>
        <td class="mono">{{.Email}}</td>
        <td>{{.Position}}</td>
        <td>{{.Department}}</td>
        <td class="actions">
          <button class="btn" hx-get="{{itemPath .ID}}/edit" hx-target="#app" hx-swap="outerHTML">Edit</button>
          <button class="btn btn-danger" hx-delete="{{itemPath .ID}}?confirm=yes" hx-confirm="{{deletePrompt}}" hx-target="#app" hx-swap="outerHTML">Delete</button>
        </td>
      </tr>
    {{end}}
    </tbody>
  </table>{{end}}
{{define "modal"}}<div class="backdrop">
    <div class="modal" role="dialog" aria-modal="true">
      <h2>{{.Title}}</h2>
      <form {{if .Put}}hx-put="{{.Action}}"{{else}}hx-post="{{.Action}}"{{end}} hx-target="#app" hx-swap="outerHTML">
        {{range .Fields}}
        <div class="field">
          <label for="field-{{.Name}}">{{.Label}}</label>
          <input id="field-{{.Name}}" name="{{.Name}}" type="{{.Type}}" value="{{.Value}}" class="{{if .Missing}}missing{{end}}" required>
          {{if .Missing}}<p class="field-error">Please fill out this field.</p>{{end}}
        </div>
        {{end}}
        <div class="modal-actions">
          <button type="button" class="btn" hx-post="/modal/close" hx-target="#app" hx-swap="outerHTML">Cancel</button>
          <button type="submit" class="btn btn-primary">Save</button>
        </div>
      </form>
    </div>
  </div>{{end}}`))

func component(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return tmpl.ExecuteTemplate(w, name, data)
	})
}

// Page renders the full document around the app region.
func Page(v AppView) templ.Component { return component("page", v) }

// App renders only the #app region; every htmx request swaps it.
func App(v AppView) templ.Component { return component("app", v) }
