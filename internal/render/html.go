// Package render writes a static HTML snapshot of the visible list.
package render

import (
	"html/template"
	"io"

	"tido/internal/query"
	"tido/internal/theme"
	"tido/internal/todo"
)

type Page struct {
	Theme  theme.Theme
	Filter query.Filter
	Search string
	Sort   query.SortKey
	Tasks  []todo.Task
}

type filterButton struct {
	Name   query.Filter
	Active bool
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html data-theme="{{.Theme}}">
<head><meta charset="utf-8"><title>Todo</title></head>
<body>
<div class="filters">
{{- range .Filters}}
<button class="filter-btn{{if .Active}} active{{end}}" data-filter="{{.Name}}">{{.Name}}</button>
{{- end}}
</div>
<input id="searchInput" type="search" value="{{.Search}}">
<ul id="todoList" data-sort="{{.Sort}}">
{{- range .Tasks}}
<li class="todo-item{{if .Completed}} completed{{end}}" data-id="{{.ID}}">
<input type="checkbox" class="todo-checkbox"{{if .Completed}} checked{{end}}>
<span class="todo-text">{{.Text}}</span>
{{- with .DueString}}
<time class="todo-due" datetime="{{.}}">{{.}}</time>
{{- end}}
<button class="todo-delete">Delete</button>
</li>
{{- end}}
</ul>
</body>
</html>
`))

// HTML writes p as a document. Task text is escaped by html/template.
func HTML(w io.Writer, p Page) error {
	filters := make([]filterButton, 0, len(query.Filters))
	for _, f := range query.Filters {
		filters = append(filters, filterButton{Name: f, Active: f == p.Filter})
	}
	th := p.Theme
	if !theme.Valid(string(th)) {
		th = theme.Light
	}
	return page.Execute(w, struct {
		Page
		Theme   theme.Theme
		Filters []filterButton
	}{Page: p, Theme: th, Filters: filters})
}
