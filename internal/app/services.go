package app

import (
	"errors"
	"fmt"
	"time"

	"fnctl/internal/functionapp"
	"fnctl/internal/operations"
	"fnctl/internal/shell"
	"fnctl/internal/store"
	"fnctl/internal/toolkit"
	"fnctl/internal/upload"
)

// Services holds all the initialized services
type Services struct {
	Client     *toolkit.Client
	Uploader   functionapp.Uploader
	Store      *store.Store
	Shell      *shell.Store
	Operations *operations.Operations
	Catalog    functionapp.Catalog
	Location   *time.Location
}

// InitializeServices creates the backend client, the uploader and the store
// the operations dispatch into.
func InitializeServices(cfg *Config) (*Services, error) {
	fc := cfg.FnctlConfig

	loc, err := fc.Display.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid display timezone %q: %w", fc.Display.Timezone, err)
	}

	client, err := toolkit.NewClient(toolkit.Options{
		ServerURL:   fc.Backend.ServerURL,
		ServiceRoot: fc.Backend.ServiceRoot,
		AuthToken:   fc.Backend.AuthToken,
		Timeout:     fc.Backend.Timeout,
	})
	if err != nil {
		if errors.Is(err, toolkit.ErrNotConfigured) {
			return nil, fmt.Errorf("%w: set backend.serverUrl in the config file or FNCTL_SERVER_URL", err)
		}
		return nil, err
	}

	uploader, err := upload.NewHTTPUploader(upload.Options{
		Endpoint:  fc.Backend.ServerURL,
		Path:      fc.Upload.Path,
		AuthToken: fc.Backend.AuthToken,
	})
	if err != nil {
		return nil, err
	}

	st := store.New()
	ops, err := operations.New(operations.Options{
		Store:    st,
		Backend:  client,
		Profiles: client,
		Catalog:  functionapp.DefaultCatalog,
		Location: loc,
		ShaRewrite: operations.OriginRewrite{
			From: fc.Upload.LocalBaseURL,
			To:   fc.Upload.PublicBaseURL,
		},
	})
	if err != nil {
		return nil, err
	}

	return &Services{
		Client:     client,
		Uploader:   uploader,
		Store:      st,
		Shell:      shell.NewStore(),
		Operations: ops,
		Catalog:    functionapp.DefaultCatalog,
		Location:   loc,
	}, nil
}
