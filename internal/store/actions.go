package store

import (
	"fnctl/internal/functionapp"
)

// Action is a state transition understood by Reduce.
type Action interface {
	ActionName() string
}

// FetchStarted marks a list fetch for Project. A change of project clears the cache.
type FetchStarted struct{ Project string }

// AppsLoaded replaces the cached apps of Project with Apps.
type AppsLoaded struct {
	Project string
	Apps    []functionapp.FunctionApp
}

// AppsCleared empties the cache.
type AppsCleared struct{}

// FetchFailed records a list fetch error.
type FetchFailed struct{ Err error }

// AppAdded inserts an app unless one with the same name is cached.
type AppAdded struct{ App functionapp.FunctionApp }

// AppRemoved drops an app from the cache.
type AppRemoved struct{ Name string }

// AppUpdated applies Apply to the cached app Name. A rename is rejected.
type AppUpdated struct {
	Name  string
	Apply func(functionapp.FunctionApp) functionapp.FunctionApp
}

// CreateStarted marks a create as in flight and clears its last error.
type CreateStarted struct{}

// CreateFinished marks the in-flight create as done.
type CreateFinished struct{}

// CreateFailed records a create error.
type CreateFailed struct{ Err error }

// CreateSucceeded raises the one-shot create success flag.
type CreateSucceeded struct{}

// CreateSuccessConsumed lowers the create success flag once it is shown.
type CreateSuccessConsumed struct{}

// DeleteStarted marks a delete as in flight and clears its last error.
type DeleteStarted struct{}

// DeleteFinished marks the in-flight delete as done.
type DeleteFinished struct{}

// DeleteFailed records a delete error.
type DeleteFailed struct{ Err error }

// PublishStarted marks a publish as in flight and clears its last error.
type PublishStarted struct{}

// PublishFinished marks the in-flight publish as done.
type PublishFinished struct{}

// PublishFailed records a publish error.
type PublishFailed struct{ Err error }

// ErrorsCleared resets the create and publish errors.
type ErrorsCleared struct{}

func (FetchStarted) ActionName() string          { return "fetchStarted" }
func (AppsLoaded) ActionName() string            { return "appsLoaded" }
func (AppsCleared) ActionName() string           { return "appsCleared" }
func (FetchFailed) ActionName() string           { return "fetchFailed" }
func (AppAdded) ActionName() string              { return "appAdded" }
func (AppRemoved) ActionName() string            { return "appRemoved" }
func (AppUpdated) ActionName() string            { return "appUpdated" }
func (CreateStarted) ActionName() string         { return "createStarted" }
func (CreateFinished) ActionName() string        { return "createFinished" }
func (CreateFailed) ActionName() string          { return "createFailed" }
func (CreateSucceeded) ActionName() string       { return "createSucceeded" }
func (CreateSuccessConsumed) ActionName() string { return "createSuccessConsumed" }
func (DeleteStarted) ActionName() string         { return "deleteStarted" }
func (DeleteFinished) ActionName() string        { return "deleteFinished" }
func (DeleteFailed) ActionName() string          { return "deleteFailed" }
func (PublishStarted) ActionName() string        { return "publishStarted" }
func (PublishFinished) ActionName() string       { return "publishFinished" }
func (PublishFailed) ActionName() string         { return "publishFailed" }
func (ErrorsCleared) ActionName() string         { return "errorsCleared" }
