package view

import (
	"errors"
	"strings"
	"testing"
	"time"

	"fnctl/internal/functionapp"
	"fnctl/internal/store"
	"fnctl/internal/tui/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedModel(t *testing.T, apps ...functionapp.FunctionApp) *model.Model {
	t.Helper()
	m := model.InitializeModel(model.TUIConfig{Project: "acme", Location: time.UTC})
	m.Width = 160
	m.Height = 40
	s := store.Reduce(store.InitialState(), store.FetchStarted{Project: "acme"})
	m.ApplyState(store.Reduce(s, store.AppsLoaded{Project: "acme", Apps: apps}))
	return m
}

func TestRenderLoadingScreen(t *testing.T) {
	m := model.InitializeModel(model.TUIConfig{Project: "acme"})
	m.ApplyState(store.Reduce(store.InitialState(), store.FetchStarted{Project: "acme"}))

	assert.Contains(t, Render(m), "Loading function apps")
}

func TestRenderKeepsListDuringRefresh(t *testing.T) {
	m := loadedModel(t, functionapp.FunctionApp{Name: "api"})
	m.ApplyState(store.Reduce(m.State, store.FetchStarted{Project: "acme"}))

	out := Render(m)
	assert.NotContains(t, out, "Loading function apps")
	assert.Contains(t, out, "api")
}

func TestRenderFetchErrorBanner(t *testing.T) {
	m := model.InitializeModel(model.TUIConfig{Project: "acme"})
	s := store.Reduce(store.InitialState(), store.FetchStarted{Project: "acme"})
	m.ApplyState(store.Reduce(s, store.FetchFailed{Err: errors.New("backend unreachable")}))

	out := Render(m)
	assert.Contains(t, out, "Failed to load function apps.")
	assert.Contains(t, out, "backend unreachable")
}

func TestRenderDialogOverFetchErrorBanner(t *testing.T) {
	m := loadedModel(t, functionapp.FunctionApp{Name: "api"})
	m.OpenDialog(model.DialogPublish, "api")
	s := store.Reduce(m.State, store.FetchStarted{Project: "acme"})
	m.ApplyState(store.Reduce(s, store.FetchFailed{Err: errors.New("backend unreachable")}))
	require.Equal(t, model.ModeDialog, m.CurrentAppMode)

	out := Render(m)
	assert.Contains(t, out, "Failed to load function apps.")
	assert.Contains(t, out, "Publish to api")
}

func TestRenderEmptyStateAndNoMatches(t *testing.T) {
	m := loadedModel(t)
	assert.Contains(t, Render(m), emptyStateText)

	m = loadedModel(t, functionapp.FunctionApp{Name: "api"})
	m.SearchInput.SetValue("zzz")
	assert.Contains(t, Render(m), noMatchesText)
}

func TestRenderRow(t *testing.T) {
	m := loadedModel(t, functionapp.FunctionApp{
		Name:           "api",
		SiteUrl:        "https://api-0123456789abcdefghij.azurewebsites.net",
		RuntimeStack:   "node",
		RuntimeVersion: "~20",
		AzureAppStatus: "Running",
		Created:        "2024-03-05T14:07:09Z",
	})

	out := Render(m)
	assert.Contains(t, out, "node ~20")
	assert.Contains(t, out, "Running")
	assert.Contains(t, out, "2024-03-05 14:07")
	assert.Contains(t, out, TruncateURL("https://api-0123456789abcdefghij.azurewebsites.net"))
	assert.NotContains(t, out, "azurewebsites.net")
	assert.NotContains(t, out, copiedText)

	m.MarkCopied("api")
	assert.Contains(t, Render(m), copiedText)
}

func TestTruncateURL(t *testing.T) {
	assert.Equal(t, "https://short.example", TruncateURL("https://short.example"))

	long := "https://" + strings.Repeat("a", 40) + ".net"
	got := TruncateURL(long)
	assert.Len(t, got, model.URLDisplayWidth)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestRenderExpandedDetails(t *testing.T) {
	m := loadedModel(t, functionapp.FunctionApp{
		Name: "api",
		Publishes: []functionapp.PublishRecord{
			{Name: "2024-03-05 14:07", AzureDeployStatus: "Succeeded"},
		},
	})
	assert.NotContains(t, Render(m), "Deployments")

	m.ToggleRow("api")
	out := Render(m)
	assert.Contains(t, out, "Deployments:")
	assert.Contains(t, out, "2024-03-05 14:07")
	assert.Contains(t, out, "Succeeded")
}

func TestRenderToast(t *testing.T) {
	m := loadedModel(t, functionapp.FunctionApp{Name: "api"})
	m.ToastVisible = true

	out := Render(m)
	assert.Contains(t, out, "Function app created.")
	assert.Contains(t, out, "Manage notifications (N)")
}

func TestRenderDialogs(t *testing.T) {
	m := loadedModel(t, functionapp.FunctionApp{Name: "api"})

	m.OpenDialog(model.DialogCreate, "")
	out := Render(m)
	assert.Contains(t, out, "Create function app")
	assert.Contains(t, out, ".NET")

	m.OpenDialog(model.DialogPublish, "api")
	m.FailSubmit("Please upload a zip file before publishing.")
	out = Render(m)
	assert.Contains(t, out, "Publish to api")
	assert.Contains(t, out, "Please upload a zip file before publishing.")

	m.OpenDialog(model.DialogDelete, "api")
	assert.Contains(t, Render(m), "Delete api?")
}

func TestRenderContextMenu(t *testing.T) {
	m := loadedModel(t, functionapp.FunctionApp{Name: "api"})
	m.OpenMenu("api")

	out := Render(m)
	for _, item := range model.MenuItems {
		assert.Contains(t, out, item)
	}
}

func TestRenderStatusBar(t *testing.T) {
	m := loadedModel(t, functionapp.FunctionApp{Name: "api"})
	m.StatusBarMessage = "Deleted api"
	m.StatusBarMessageType = model.StatusBarSuccess
	assert.Contains(t, Render(m), "Deleted api")
}

func TestRenderQuitting(t *testing.T) {
	m := loadedModel(t)
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Bye!"
	assert.Contains(t, Render(m), "Bye!")
}

func TestPrepareLogContent(t *testing.T) {
	out := PrepareLogContent([]string{"10:00:00 [INFO] TUI: one", "10:00:01 [ERROR] TUI: two"}, 80)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "one")
	assert.Contains(t, lines[1], "two")
}
