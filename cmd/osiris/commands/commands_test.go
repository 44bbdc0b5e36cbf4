package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osiris-intel/osiris/internal/view"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestRender_JSON(t *testing.T) {
	out, err := run(t, "render", "--view", "breachedAccounts", "--page", "2", "--json")
	require.NoError(t, err)

	var sc view.Screen
	require.NoError(t, json.Unmarshal([]byte(out), &sc))
	assert.Equal(t, view.ViewBreachedAccounts, sc.View)
	require.NotNil(t, sc.Breached)
	assert.Equal(t, "Page 2 of 3", sc.Breached.Pager.Label)
	assert.Len(t, sc.Breached.Rows, 10)
}

func TestRender_Text(t *testing.T) {
	out, err := run(t, "render", "--view", "aiWorkflows", "--modal", "--width", "120")
	require.NoError(t, err)
	assert.Contains(t, out, "AI Workflows (aiWorkflows)")
	assert.Contains(t, out, "Create New AI Workflow")
}

func TestRender_UnknownViewShowsDashboard(t *testing.T) {
	out, err := run(t, "render", "--view", "reports", "--json")
	require.NoError(t, err)

	var sc view.Screen
	require.NoError(t, json.Unmarshal([]byte(out), &sc))
	assert.Equal(t, view.ViewID("reports"), sc.View)
	assert.Equal(t, view.ViewDashboard, sc.Page)
	assert.NotNil(t, sc.Dashboard)
}

func TestRender_PageIsNotClamped(t *testing.T) {
	tests := []struct {
		arg      string
		current  int
		label    string
		wantPrev bool
	}{
		{"--page=0", 0, "Page 0 of 3", true},
		{"--page=-2", -2, "Page -2 of 3", true},
		{"--page=9", 9, "Page 9 of 3", true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			out, err := run(t, "render", "--view", "breachedAccounts", tt.arg, "--json")
			require.NoError(t, err)

			var sc view.Screen
			require.NoError(t, json.Unmarshal([]byte(out), &sc))
			require.NotNil(t, sc.Breached)
			assert.Equal(t, tt.current, sc.Breached.Pager.Current)
			assert.Equal(t, tt.label, sc.Breached.Pager.Label)
			assert.Equal(t, tt.wantPrev, sc.Breached.Pager.HasPrev)
			assert.Empty(t, sc.Breached.Rows)
		})
	}
}

func TestRenderOptions_NoPageFlagKeepsFirstPage(t *testing.T) {
	evs := renderOptions{view: "breachedAccounts"}.events()
	require.Len(t, evs, 1)
	assert.Equal(t, "navigate", evs[0].Name())
}

func TestRenderOptions_Events(t *testing.T) {
	evs := renderOptions{view: "dashboard", page: 2, pageSet: true, tab: "history", modal: true, collapsed: true}.events()
	names := make([]string, 0, len(evs))
	for _, ev := range evs {
		names = append(names, ev.Name())
	}
	assert.Equal(t, []string{"navigate", "toggle_sidebar", "change_page", "select_tab", "open_modal"}, names)
}

func TestRender_ProfileFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "osiris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\nserver:\n  port: 8090\nprofile:\n  name: Dana Reyes\n  tier: Free\n"), 0o600))

	root := NewRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", path, "render", "--json"})
	require.NoError(t, root.Execute())

	var sc view.Screen
	require.NoError(t, json.Unmarshal(out.Bytes(), &sc))
	assert.Equal(t, "Dana Reyes", sc.Shell.User.Name)
	assert.True(t, sc.Dashboard.Cards[2].Locked)
}

func TestRender_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "osiris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 99999\n"), 0o600))

	root := NewRoot()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "render"})
	assert.Error(t, root.Execute())
}

func TestViews(t *testing.T) {
	out, err := run(t, "views")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(view.Views()))
	assert.Contains(t, out, "breachedAccounts")
	assert.Contains(t, out, "standalone")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "osiris dev"))
}
