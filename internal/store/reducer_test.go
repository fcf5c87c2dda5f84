package store

import (
	"errors"
	"testing"

	"fnctl/internal/functionapp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apps(names ...string) []functionapp.FunctionApp {
	out := make([]functionapp.FunctionApp, len(names))
	for i, n := range names {
		out[i] = functionapp.FunctionApp{Name: n, SiteUrl: "https://" + n + ".azurewebsites.net"}
	}
	return out
}

func loaded(project string, names ...string) State {
	s := Reduce(InitialState(), FetchStarted{Project: project})
	return Reduce(s, AppsLoaded{Project: project, Apps: apps(names...)})
}

func TestInitialState(t *testing.T) {
	s := InitialState()
	assert.Equal(t, StatusIdle, s.Status)
	assert.Empty(t, s.All())
	assert.False(t, s.Busy())
}

func TestAppsLoadedSortsAndDeduplicates(t *testing.T) {
	s := Reduce(InitialState(), FetchStarted{Project: "acme"})
	assert.Equal(t, StatusLoading, s.Status)

	list := apps("zeta", "alpha", "mid", "alpha")
	list[3].SiteUrl = "https://alpha-2.azurewebsites.net"
	s = Reduce(s, AppsLoaded{Project: "acme", Apps: list})

	assert.Equal(t, StatusLoaded, s.Status)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, s.IDs)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, functionapp.Names(s.All()))
	alpha, ok := s.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "https://alpha-2.azurewebsites.net", alpha.SiteUrl)
}

func TestAppsLoadedReplacesPreviousList(t *testing.T) {
	s := loaded("acme", "a", "b")
	s = Reduce(s, FetchStarted{Project: "acme"})
	assert.Equal(t, StatusLoaded, s.Status, "a refresh of the same project keeps the list visible")
	assert.Equal(t, 2, s.Len())

	s = Reduce(s, AppsLoaded{Project: "acme", Apps: apps("b", "c")})
	assert.Equal(t, []string{"b", "c"}, s.IDs)
}

func TestFetchStartedClearsOnProjectChange(t *testing.T) {
	s := loaded("acme", "a", "b")
	s = Reduce(s, FetchStarted{Project: "globex"})

	assert.Equal(t, "globex", s.ProjectName)
	assert.Equal(t, StatusLoading, s.Status)
	assert.Zero(t, s.Len())
}

func TestFetchFailedKeepsList(t *testing.T) {
	s := loaded("acme", "a", "b")
	boom := errors.New("boom")
	s = Reduce(s, FetchFailed{Err: boom})

	assert.Equal(t, StatusError, s.Status)
	assert.Equal(t, boom, s.FetchError)
	assert.Equal(t, []string{"a", "b"}, s.IDs)

	s = Reduce(s, FetchStarted{Project: "acme"})
	assert.NoError(t, s.FetchError)
	assert.Equal(t, StatusLoading, s.Status)
}

func TestAppAddedIgnoresExisting(t *testing.T) {
	s := loaded("acme", "b")
	s = Reduce(s, AppAdded{App: functionapp.FunctionApp{Name: "a"}})
	assert.Equal(t, []string{"a", "b"}, s.IDs)

	s = Reduce(s, AppAdded{App: functionapp.FunctionApp{Name: "b", SiteUrl: "changed"}})
	b, _ := s.Get("b")
	assert.Equal(t, "https://b.azurewebsites.net", b.SiteUrl)
}

func TestAppRemoved(t *testing.T) {
	s := loaded("acme", "a", "b", "c")
	s = Reduce(s, AppRemoved{Name: "b"})
	assert.Equal(t, []string{"a", "c"}, s.IDs)

	same := Reduce(s, AppRemoved{Name: "missing"})
	assert.Equal(t, s.IDs, same.IDs)
}

func TestAppUpdated(t *testing.T) {
	s := loaded("acme", "a")
	s = Reduce(s, AppUpdated{Name: "a", Apply: func(app functionapp.FunctionApp) functionapp.FunctionApp {
		app.Name = "renamed"
		app.Publishes = append(app.Publishes, functionapp.PublishRecord{Name: "p1"})
		return app
	}})

	a, ok := s.Get("a")
	require.True(t, ok)
	assert.Len(t, a.Publishes, 1)
	_, renamed := s.Get("renamed")
	assert.False(t, renamed)

	same := Reduce(s, AppUpdated{Name: "missing", Apply: func(app functionapp.FunctionApp) functionapp.FunctionApp { return app }})
	assert.Equal(t, s.IDs, same.IDs)
}

func TestReduceDoesNotMutateSnapshots(t *testing.T) {
	before := loaded("acme", "a", "b")
	after := Reduce(before, AppRemoved{Name: "a"})
	after = Reduce(after, AppAdded{App: functionapp.FunctionApp{Name: "z"}})

	assert.Equal(t, []string{"a", "b"}, before.IDs)
	_, ok := before.Get("z")
	assert.False(t, ok)
	assert.Equal(t, []string{"b", "z"}, after.IDs)
}

func TestCreateFlags(t *testing.T) {
	boom := errors.New("name taken")
	s := Reduce(InitialState(), CreateStarted{})
	assert.True(t, s.Creating)
	assert.True(t, s.Busy())

	s = Reduce(s, CreateFailed{Err: boom})
	s = Reduce(s, CreateFinished{})
	assert.False(t, s.Creating)
	assert.Equal(t, boom, s.CreateError)

	s = Reduce(s, CreateStarted{})
	assert.NoError(t, s.CreateError)

	s = Reduce(s, CreateSucceeded{})
	assert.True(t, s.CreateSuccess)
	s = Reduce(s, CreateSuccessConsumed{})
	assert.False(t, s.CreateSuccess)
}

func TestDeleteFlags(t *testing.T) {
	boom := errors.New("locked")
	s := Reduce(InitialState(), DeleteStarted{})
	assert.True(t, s.Deleting)

	s = Reduce(s, DeleteFailed{Err: boom})
	assert.False(t, s.Deleting)
	assert.Equal(t, boom, s.DeleteError)

	s = Reduce(s, DeleteStarted{})
	assert.NoError(t, s.DeleteError)
	s = Reduce(s, DeleteFinished{})
	assert.False(t, s.Deleting)
}

func TestPublishFlagsAndErrorsCleared(t *testing.T) {
	boom := errors.New("bad zip")
	s := Reduce(InitialState(), PublishStarted{})
	assert.True(t, s.Publishing)

	s = Reduce(s, PublishFinished{})
	s = Reduce(s, PublishFailed{Err: boom})
	assert.False(t, s.Publishing)
	assert.Equal(t, boom, s.PublishError)

	s = Reduce(s, CreateFailed{Err: boom})
	s = Reduce(s, ErrorsCleared{})
	assert.NoError(t, s.PublishError)
	assert.NoError(t, s.CreateError)
}

func TestAppsCleared(t *testing.T) {
	s := Reduce(loaded("acme", "a"), AppsCleared{})
	assert.Zero(t, s.Len())
	assert.Equal(t, "acme", s.ProjectName)
}
