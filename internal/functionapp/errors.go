package functionapp

import "errors"

// Validation errors raised before any request is issued.
var (
	ErrEmptyName      = errors.New("function app name is required")
	ErrEmptyProject   = errors.New("project name is required")
	ErrUnknownRuntime = errors.New("unknown runtime")
	ErrNoUpload       = errors.New("no zip file uploaded")
)
