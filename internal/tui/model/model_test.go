package model

import (
	"context"
	"errors"
	"testing"

	"fnctl/internal/functionapp"
	"fnctl/internal/operations"
	"fnctl/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	fetched   []string
	created   []functionapp.CreateRequest
	deleted   []string
	published []functionapp.UploadedFile
	profiles  []functionapp.Profile
	err       error
	profErr   error
}

func (f *fakeRunner) Fetch(_ context.Context, project string) operations.Result {
	f.fetched = append(f.fetched, project)
	return operations.Result{Err: f.err}
}

func (f *fakeRunner) Create(_ context.Context, _ string, req functionapp.CreateRequest) operations.Result {
	f.created = append(f.created, req)
	return operations.Result{Err: f.err}
}

func (f *fakeRunner) Delete(_ context.Context, _, name string) operations.Result {
	f.deleted = append(f.deleted, name)
	return operations.Result{Err: f.err}
}

func (f *fakeRunner) Publish(_ context.Context, _, _ string, file functionapp.UploadedFile) operations.Result {
	f.published = append(f.published, file)
	return operations.Result{Err: f.err}
}

func (f *fakeRunner) SaveProfile(_ context.Context, p functionapp.Profile) operations.Result {
	f.profiles = append(f.profiles, p)
	return operations.Result{Err: f.profErr}
}

func stateWith(names ...string) store.State {
	apps := make([]functionapp.FunctionApp, len(names))
	for i, n := range names {
		apps[i] = functionapp.FunctionApp{Name: n}
	}
	s := store.Reduce(store.InitialState(), store.FetchStarted{Project: "acme"})
	return store.Reduce(s, store.AppsLoaded{Project: "acme", Apps: apps})
}

func newTestModel(t *testing.T, names ...string) *Model {
	t.Helper()
	m := InitializeModel(TUIConfig{Project: "acme", Runner: &fakeRunner{}})
	m.ApplyState(stateWith(names...))
	return m
}

func TestInitializeModelDefaults(t *testing.T) {
	m := InitializeModel(TUIConfig{})
	assert.Equal(t, ModeMain, m.CurrentAppMode)
	assert.Equal(t, DefaultCopyDelay, m.CopyDelay)
	assert.NotNil(t, m.Clipboard)
	assert.Equal(t, "dotnet", m.Create.StackKey)
	assert.Equal(t, "v8.0", m.Create.VersionKey)
	assert.NotNil(t, m.Init())
}

func TestExpandAllToggleCollapseAll(t *testing.T) {
	m := newTestModel(t, "a", "b", "c")

	m.SetAllExpanded(true)
	for _, n := range []string{"a", "b", "c"} {
		assert.True(t, m.IsExpanded(n))
	}

	m.ToggleRow("b")
	assert.False(t, m.IsExpanded("b"))

	m.SetAllExpanded(false)
	for _, n := range []string{"a", "b", "c"} {
		assert.False(t, m.IsExpanded(n), n)
	}
}

func TestNewRowsAdoptAllStateAndRemovedRowsArePruned(t *testing.T) {
	m := newTestModel(t, "a", "b")
	m.SetAllExpanded(true)

	m.ApplyState(stateWith("b", "c"))
	assert.True(t, m.IsExpanded("c"), "new rows follow expand-all")
	_, tracked := m.Expanded["a"]
	assert.False(t, tracked)
}

func TestSearchFiltersByName(t *testing.T) {
	m := newTestModel(t, "prod-api", "staging-api")
	m.SearchInput.SetValue("prod")
	assert.Equal(t, []string{"prod-api"}, functionapp.Names(m.VisibleApps()))

	m.SearchInput.SetValue("PROD")
	assert.Equal(t, []string{"prod-api"}, functionapp.Names(m.VisibleApps()))

	m.SearchInput.SetValue("")
	assert.Len(t, m.VisibleApps(), 2)

	m.SearchInput.SetValue("nothing")
	assert.Empty(t, m.VisibleApps())
	_, ok := m.SelectedApp()
	assert.False(t, ok)
}

func TestCursorClamps(t *testing.T) {
	m := newTestModel(t, "a", "b", "c")
	m.MoveCursor(10)
	assert.Equal(t, 2, m.Cursor)
	m.MoveCursor(-10)
	assert.Equal(t, 0, m.Cursor)

	m.Cursor = 2
	m.ApplyState(stateWith("a"))
	assert.Equal(t, 0, m.Cursor)
	app, ok := m.SelectedApp()
	require.True(t, ok)
	assert.Equal(t, "a", app.Name)
}

func TestCopyIndicatorPerRow(t *testing.T) {
	m := newTestModel(t, "a", "b")

	gen := m.MarkCopied("a")
	assert.True(t, m.Copied["a"])
	assert.False(t, m.Copied["b"])

	again := m.MarkCopied("a")
	assert.False(t, m.ExpireCopied("a", gen), "stale timer must not clear a restarted indicator")
	assert.True(t, m.Copied["a"])

	genB := m.MarkCopied("b")
	assert.True(t, m.ExpireCopied("a", again))
	assert.False(t, m.Copied["a"])
	assert.True(t, m.Copied["b"])
	assert.True(t, m.ExpireCopied("b", genB))
}

func TestToastSuppressedOnFirstSync(t *testing.T) {
	st := store.New()
	st.Dispatch(store.CreateSucceeded{})

	m := InitializeModel(TUIConfig{Store: st})
	assert.False(t, m.ToastVisible)
	assert.True(t, m.FirstSyncDone)
	assert.False(t, st.Snapshot().CreateSuccess, "the flag is consumed silently")

	s := store.Reduce(m.State, store.CreateSucceeded{})
	assert.True(t, m.ApplyState(s))
	assert.True(t, m.ToastVisible)
}

func TestOpenDialogDismissesToast(t *testing.T) {
	m := newTestModel(t, "a")
	m.ToastVisible = true

	m.OpenDialog(DialogDelete, "a")
	assert.False(t, m.ToastVisible)
	assert.Equal(t, ModeDialog, m.CurrentAppMode)
	assert.Equal(t, PhaseOpen, m.Dialog.Phase)
	assert.Equal(t, "a", m.Dialog.Target)
}

func TestDialogPhases(t *testing.T) {
	m := newTestModel(t)
	m.OpenDialog(DialogCreate, "")
	assert.True(t, m.Create.NameInput.Focused())

	m.BeginSubmit()
	assert.True(t, m.Dialog.Submitting())

	m.FailSubmit("name taken")
	assert.Equal(t, PhaseOpen, m.Dialog.Phase)
	assert.Equal(t, "name taken", m.Dialog.Err)

	m.BeginSubmit()
	assert.Empty(t, m.Dialog.Err)

	m.CloseDialog()
	assert.False(t, m.Dialog.Open())
	assert.Equal(t, ModeMain, m.CurrentAppMode)
}

func TestSelectStackResetsVersionAndSkipsDisabled(t *testing.T) {
	m := newTestModel(t)
	m.OpenDialog(DialogCreate, "")

	m.SelectStack(1)
	assert.Equal(t, "node", m.Create.StackKey)
	assert.Equal(t, "20", m.Create.VersionKey)

	m.CycleVersion(1)
	assert.Equal(t, "18", m.Create.VersionKey)

	m.SelectStack(1)
	assert.Equal(t, "java", m.Create.StackKey, "python is disabled")
	assert.Equal(t, "17.0", m.Create.VersionKey)

	m.SelectStack(-1)
	assert.Equal(t, "node", m.Create.StackKey)
	assert.Equal(t, "20", m.Create.VersionKey, "switching back starts from the first version")

	m.CycleVersion(-1)
	assert.Equal(t, "16", m.Create.VersionKey)
}

func TestCreateRequestFromForm(t *testing.T) {
	m := newTestModel(t)
	m.OpenDialog(DialogCreate, "")
	m.Create.NameInput.SetValue("  orders  ")
	m.SelectStack(1)

	req, err := m.CreateRequest()
	require.NoError(t, err)
	assert.Equal(t, "orders", req.Name)
	assert.Equal(t, "node", req.RuntimeStack)
	assert.Equal(t, "~20", req.RuntimeVersion)
}

func TestFocusCreateField(t *testing.T) {
	m := newTestModel(t)
	m.OpenDialog(DialogCreate, "")

	m.FocusCreateField(1)
	assert.Equal(t, FieldStack, m.Create.Focus)
	assert.False(t, m.Create.NameInput.Focused())

	m.FocusCreateField(-2)
	assert.Equal(t, FieldVersion, m.Create.Focus)

	m.FocusCreateField(1)
	assert.Equal(t, FieldName, m.Create.Focus)
	assert.True(t, m.Create.NameInput.Focused())
}

func TestMenu(t *testing.T) {
	m := newTestModel(t, "a")
	m.OpenMenu("a")
	assert.Equal(t, ModeContextMenu, m.CurrentAppMode)
	m.MoveMenu(-1)
	assert.Equal(t, MenuDelete, m.MenuCursor)
	m.MoveMenu(1)
	assert.Equal(t, MenuEditDetails, m.MenuCursor)
}

func TestActivityLogIsBounded(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < MaxActivityLogLines+10; i++ {
		AddRawLineToActivityLog(m, "line")
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.True(t, m.ActivityLogDirty)
}

func TestCommands(t *testing.T) {
	r := &fakeRunner{}

	msg := FetchCmd(r, "acme")()
	assert.Equal(t, OperationDoneMsg{Op: OpFetch, Target: "acme"}, msg)
	assert.Equal(t, []string{"acme"}, r.fetched)

	r.err = errors.New("boom")
	msg = DeleteCmd(r, "acme", "a")()
	done, ok := msg.(OperationDoneMsg)
	require.True(t, ok)
	assert.Equal(t, OpDelete, done.Op)
	assert.EqualError(t, done.Result.Err, "boom")
}

func TestPublishCmdSavesProfileWithID(t *testing.T) {
	r := &fakeRunner{profErr: errors.New("Error occurred during login")}
	file := functionapp.UploadedFile{FileURL: "u", ShaURL: "s"}

	msg := PublishCmd(r, "acme", "api", file, functionapp.Profile{})()
	assert.Empty(t, r.profiles)
	assert.Equal(t, PublishDoneMsg{Target: "api"}, msg)

	msg = PublishCmd(r, "acme", "api", file, functionapp.Profile{ID: "1"})()
	done := msg.(PublishDoneMsg)
	assert.EqualError(t, done.ProfileErr, "Error occurred during login")
	assert.Len(t, r.published, 2)
}

func TestListenForStoreCmd(t *testing.T) {
	st := store.New()
	sub := st.Subscribe()
	cmd := ListenForStoreCmd(sub, st)
	require.NotNil(t, cmd)

	st.Dispatch(store.DeleteStarted{})
	msg, ok := cmd().(StoreChangedMsg)
	require.True(t, ok)
	assert.True(t, msg.State.Deleting)

	st.Unsubscribe(sub)
	assert.Nil(t, ListenForStoreCmd(sub, st)())
	assert.Nil(t, ListenForStoreCmd(nil, st))
}
