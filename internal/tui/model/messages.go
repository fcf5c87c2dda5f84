package model

import (
	"fnctl/internal/functionapp"
	"fnctl/internal/operations"
	"fnctl/internal/store"
	"fnctl/pkg/logging"
)

// Operation names an async operation started from the TUI.
type Operation int

const (
	OpFetch Operation = iota
	OpCreate
	OpDelete
	OpPublish
)

func (o Operation) String() string {
	switch o {
	case OpFetch:
		return "fetch"
	case OpCreate:
		return "create"
	case OpDelete:
		return "delete"
	case OpPublish:
		return "publish"
	default:
		return "unknown"
	}
}

// StoreChangedMsg carries the latest store snapshot.
type StoreChangedMsg struct {
	State store.State
}

// OperationDoneMsg is sent when an awaited operation returns.
type OperationDoneMsg struct {
	Op     Operation
	Target string
	Result operations.Result
}

// PublishDoneMsg is sent when a publish submit finishes. The profile update
// runs alongside the publish and fails independently.
type PublishDoneMsg struct {
	Target     string
	Result     operations.Result
	ProfileErr error
}

// UploadDoneMsg is sent when the zip upload for the publish dialog finishes.
type UploadDoneMsg struct {
	File functionapp.UploadedFile
	Err  error
}

// CopyExpiredMsg clears a row's copied indicator if Gen is still current.
type CopyExpiredMsg struct {
	Name string
	Gen  int
}

// NewLogEntryMsg forwards a log entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearStatusBarMsg clears the status bar.
type ClearStatusBarMsg struct{}
