package functionapp

import (
	"context"
)

// Backend is the toolkit API surface the operations layer depends on.
type Backend interface {
	// ListFunctionApps returns the non-deleted apps of a project with their
	// publish records expanded.
	ListFunctionApps(ctx context.Context, project string) ([]FunctionApp, error)
	CreateFunctionApp(ctx context.Context, project string, req CreateRequest) (FunctionApp, error)
	DeleteFunctionApp(ctx context.Context, project, name string, req DeleteRequest) error
	AddPublish(ctx context.Context, project, name string, rec PublishRecord) (PublishRecord, error)
}

// ProfileUpdater patches the signed-in user's profile.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, p Profile) error
}

// Uploader stores a zip file and returns its descriptor.
type Uploader interface {
	Upload(ctx context.Context, project, path string) (UploadedFile, error)
}
