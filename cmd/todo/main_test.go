package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tido/internal/app"
	"tido/internal/storage"
	"tido/internal/theme"
)

func TestExportHTML_UsesPersistedTheme(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "prefs.db"))
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Set(theme.Key, "dark"))

	th := theme.New(store, nil, nil)
	th.Init()
	state := app.New(th, app.Options{})
	state.Add("Buy <milk>")
	state.Add("Sell books")
	state.SetSearch("BUY")

	out := filepath.Join(dir, "list.html")
	require.NoError(t, exportHTML(out, state))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, `data-theme="dark"`)
	assert.Contains(t, html, "Buy &lt;milk&gt;")
	assert.NotContains(t, html, "Sell books")
}

func TestRun_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("db_path = ["), 0o644))

	err := run([]string{"--config", path})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_DatabaseErrorReturnsAfterLogOpened(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := run([]string{
		"--config", filepath.Join(dir, "config.toml"),
		"--db", filepath.Join(blocker, "prefs.db"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open database")
	assert.FileExists(t, filepath.Join(dir, "tido.log"))
}

func TestRun_UnknownFlag(t *testing.T) {
	assert.Error(t, run([]string{"--bogus"}))
}
