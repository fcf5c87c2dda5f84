package model

import (
	"context"
	"time"

	"fnctl/internal/functionapp"
	"fnctl/internal/operations"
	"fnctl/internal/store"
	"fnctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// operationTimeout bounds every backend call started from the TUI. Closing a
// dialog does not cancel the call.
const operationTimeout = 60 * time.Second

// ListenForStoreCmd waits for the next store notification and returns the
// latest snapshot, so intermediate snapshots dropped for slowness are harmless.
func ListenForStoreCmd(sub *store.Subscription, st *store.Store) tea.Cmd {
	if sub == nil || st == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-sub.C; !ok {
			return nil
		}
		return StoreChangedMsg{State: st.Snapshot()}
	}
}

// ListenForLogEntriesCmd forwards the next log entry.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// FetchCmd loads the project's apps.
func FetchCmd(r operations.Runner, project string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
		defer cancel()
		return OperationDoneMsg{Op: OpFetch, Target: project, Result: r.Fetch(ctx, project)}
	}
}

// CreateCmd provisions an app.
func CreateCmd(r operations.Runner, project string, req functionapp.CreateRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
		defer cancel()
		return OperationDoneMsg{Op: OpCreate, Target: req.Name, Result: r.Create(ctx, project, req)}
	}
}

// DeleteCmd soft-deletes an app.
func DeleteCmd(r operations.Runner, project, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
		defer cancel()
		return OperationDoneMsg{Op: OpDelete, Target: name, Result: r.Delete(ctx, project, name)}
	}
}

// PublishCmd publishes file to name and patches the profile when it has an ID.
func PublishCmd(r operations.Runner, project, name string, file functionapp.UploadedFile, profile functionapp.Profile) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
		defer cancel()

		var profileErr error
		if profile.ID != "" {
			profileErr = r.SaveProfile(ctx, profile).Err
		}
		return PublishDoneMsg{
			Target:     name,
			Result:     r.Publish(ctx, project, name, file),
			ProfileErr: profileErr,
		}
	}
}

// UploadCmd uploads the zip at path.
func UploadCmd(u functionapp.Uploader, project, path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
		defer cancel()
		file, err := u.Upload(ctx, project, path)
		return UploadDoneMsg{File: file, Err: err}
	}
}

// CopyExpiryCmd fires after delay to clear the copied indicator of name.
func CopyExpiryCmd(name string, gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return CopyExpiredMsg{Name: name, Gen: gen}
	})
}
