package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tido/internal/query"
	"tido/internal/theme"
	"tido/internal/todo"
)

func TestHTML_EscapesTaskText(t *testing.T) {
	var buf bytes.Buffer
	err := HTML(&buf, Page{
		Theme: theme.Dark,
		Tasks: []todo.Task{{ID: 1, Text: `<img src=x onerror="alert(1)">`}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "<img")
	assert.Contains(t, out, "&lt;img src=x onerror=&#34;alert(1)&#34;&gt;")
}

func TestHTML_RootThemeAndFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, Page{Theme: theme.Dark, Filter: query.FilterActive}))

	out := buf.String()
	assert.Contains(t, out, `<html data-theme="dark">`)
	assert.Contains(t, out, `<button class="filter-btn active" data-filter="active">`)
	assert.Contains(t, out, `<button class="filter-btn" data-filter="all">`)
	assert.Contains(t, out, `<ul id="todoList" data-sort="">`)
}

func TestHTML_InvalidThemeFallsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, Page{Theme: "auto"}))

	assert.Contains(t, buf.String(), `data-theme="light"`)
}

func TestHTML_Items(t *testing.T) {
	due := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, Page{
		Theme: theme.Light,
		Sort:  query.SortDueDate,
		Tasks: []todo.Task{
			{ID: 2, Text: "Buy bread", Completed: true, Due: &due},
			{ID: 1, Text: "Buy milk"},
		},
	}))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, `class="todo-delete"`))
	assert.Contains(t, out, `<li class="todo-item completed" data-id="2">`)
	assert.Contains(t, out, `<input type="checkbox" class="todo-checkbox" checked>`)
	assert.Contains(t, out, `<li class="todo-item" data-id="1">`)
	assert.Contains(t, out, `datetime="2024-01-10"`)
	assert.Less(t, strings.Index(out, "Buy bread"), strings.Index(out, "Buy milk"))
}
