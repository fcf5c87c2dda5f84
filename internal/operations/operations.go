package operations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fnctl/internal/functionapp"
	"fnctl/internal/store"
	"fnctl/pkg/logging"
)

const subsystem = "Operations"

// Result is the outcome of an operation. Err is the same error the store
// recorded for the operation's category.
type Result struct {
	Err error
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Runner runs the function app operations against the store.
type Runner interface {
	Fetch(ctx context.Context, project string) Result
	Create(ctx context.Context, project string, req functionapp.CreateRequest) Result
	Delete(ctx context.Context, project, name string) Result
	Publish(ctx context.Context, project, name string, file functionapp.UploadedFile) Result
	SaveProfile(ctx context.Context, p functionapp.Profile) Result
}

// OriginRewrite replaces the From prefix of checksum URLs with To. The upload
// service reports checksum URLs on its local origin.
type OriginRewrite struct {
	From string
	To   string
}

// Apply rewrites url when it starts with From.
func (r OriginRewrite) Apply(url string) string {
	from := strings.TrimSuffix(r.From, "/")
	if from == "" || r.To == "" || !strings.HasPrefix(url, from) {
		return url
	}
	rest := strings.TrimPrefix(url, from)
	// The origin must end at a path boundary, so :8888 never matches :88889.
	if rest != "" && rest[0] != '/' {
		return url
	}
	return strings.TrimSuffix(r.To, "/") + "/" + strings.TrimPrefix(rest, "/")
}

// Options configures Operations.
type Options struct {
	Store   *store.Store
	Backend functionapp.Backend
	// Profiles is optional; SaveProfile is a no-op without it.
	Profiles functionapp.ProfileUpdater
	Catalog  functionapp.Catalog
	// Location names publish records; defaults to time.Local.
	Location   *time.Location
	ShaRewrite OriginRewrite
	Now        func() time.Time
}

// Operations implements Runner.
type Operations struct {
	store    *store.Store
	backend  functionapp.Backend
	profiles functionapp.ProfileUpdater
	catalog  functionapp.Catalog
	location *time.Location
	rewrite  OriginRewrite
	now      func() time.Time
}

var _ Runner = (*Operations)(nil)

// New creates Operations. Store and Backend are required.
func New(opts Options) (*Operations, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("operations: store is required")
	}
	if opts.Backend == nil {
		return nil, fmt.Errorf("operations: backend is required")
	}
	if opts.Catalog == nil {
		opts.Catalog = functionapp.DefaultCatalog
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Operations{
		store:    opts.Store,
		backend:  opts.Backend,
		profiles: opts.Profiles,
		catalog:  opts.Catalog,
		location: opts.Location,
		rewrite:  opts.ShaRewrite,
		now:      opts.Now,
	}, nil
}

// Store returns the store the operations dispatch into.
func (o *Operations) Store() *store.Store { return o.store }

// Catalog returns the runtime catalog used for validation.
func (o *Operations) Catalog() functionapp.Catalog { return o.catalog }

// Fetch loads the project's apps. The cache is cleared first when the project
// differs from the one currently loaded; on failure the prior list is kept.
func (o *Operations) Fetch(ctx context.Context, project string) Result {
	project = strings.TrimSpace(project)
	if project == "" {
		o.store.Dispatch(store.FetchFailed{Err: functionapp.ErrEmptyProject})
		return Result{Err: functionapp.ErrEmptyProject}
	}

	o.store.Dispatch(store.FetchStarted{Project: project})
	logging.Debug(subsystem, "fetching function apps of %s", project)

	apps, err := o.backend.ListFunctionApps(ctx, project)
	if err != nil {
		logging.Error(subsystem, err, "fetch of %s failed", project)
		o.store.Dispatch(store.FetchFailed{Err: err})
		return Result{Err: err}
	}

	live := apps[:0:0]
	for _, app := range apps {
		if !app.IsDeleted() {
			live = append(live, app)
		}
	}
	o.store.Dispatch(store.AppsLoaded{Project: project, Apps: live})
	logging.Info(subsystem, "loaded %d function apps of %s", len(live), project)
	return Result{}
}

// Create provisions a new app. The request is validated before anything is
// sent; a validation failure is recorded as a create error.
func (o *Operations) Create(ctx context.Context, project string, req functionapp.CreateRequest) Result {
	req.Name = strings.TrimSpace(req.Name)
	if err := o.validateCreate(project, req); err != nil {
		logging.Warn(subsystem, "rejected create of %q: %v", req.Name, err)
		o.store.Dispatch(store.CreateFailed{Err: err}, store.CreateFinished{})
		return Result{Err: err}
	}

	o.store.Dispatch(store.CreateStarted{})
	logging.Info(subsystem, "creating function app %s (%s %s)", req.Name, req.RuntimeStack, req.RuntimeVersion)

	created, err := o.backend.CreateFunctionApp(ctx, project, req)
	if err != nil {
		logging.Error(subsystem, err, "create of %s failed", req.Name)
		o.store.Dispatch(store.CreateFailed{Err: err}, store.CreateFinished{})
		return Result{Err: err}
	}

	o.store.Dispatch(
		store.AppAdded{App: created},
		store.CreateFinished{},
		store.CreateSucceeded{},
		store.ErrorsCleared{},
	)
	return Result{}
}

func (o *Operations) validateCreate(project string, req functionapp.CreateRequest) error {
	if strings.TrimSpace(project) == "" {
		return functionapp.ErrEmptyProject
	}
	if req.Name == "" {
		return functionapp.ErrEmptyName
	}
	if !o.catalog.Contains(req.RuntimeStack, req.RuntimeVersion) {
		return fmt.Errorf("%w: %s %q", functionapp.ErrUnknownRuntime, req.RuntimeStack, req.RuntimeVersion)
	}
	return nil
}

// Delete soft-deletes an app and removes it from the cache.
func (o *Operations) Delete(ctx context.Context, project, name string) Result {
	if strings.TrimSpace(name) == "" {
		o.store.Dispatch(store.DeleteFailed{Err: functionapp.ErrEmptyName})
		return Result{Err: functionapp.ErrEmptyName}
	}

	o.store.Dispatch(store.DeleteStarted{})
	logging.Info(subsystem, "deleting function app %s", name)

	if err := o.backend.DeleteFunctionApp(ctx, project, name, functionapp.NewDeleteRequest(o.now())); err != nil {
		logging.Error(subsystem, err, "delete of %s failed", name)
		o.store.Dispatch(store.DeleteFailed{Err: err})
		return Result{Err: err}
	}

	o.store.Dispatch(store.AppRemoved{Name: name}, store.DeleteFinished{})
	return Result{}
}

// Publish records a zip deployment for an app and reloads the project so the
// new publish record shows up.
func (o *Operations) Publish(ctx context.Context, project, name string, file functionapp.UploadedFile) Result {
	if file.FileURL == "" {
		o.store.Dispatch(store.PublishFailed{Err: functionapp.ErrNoUpload})
		return Result{Err: functionapp.ErrNoUpload}
	}

	file.ShaURL = o.rewrite.Apply(file.ShaURL)
	rec := functionapp.NewPublishRecord(file, o.now().In(o.location))

	o.store.Dispatch(store.PublishStarted{})
	logging.Info(subsystem, "publishing %s to %s", file.Name, name)

	if _, err := o.backend.AddPublish(ctx, project, name, rec); err != nil {
		logging.Error(subsystem, err, "publish to %s failed", name)
		o.store.Dispatch(store.PublishFinished{}, store.PublishFailed{Err: err})
		return Result{Err: err}
	}

	o.Fetch(ctx, project)
	o.store.Dispatch(store.PublishFinished{})
	return Result{}
}

// SaveProfile patches the user profile. It does not touch the store; the
// caller shows the error inline.
func (o *Operations) SaveProfile(ctx context.Context, p functionapp.Profile) Result {
	if o.profiles == nil {
		return Result{}
	}
	if err := o.profiles.UpdateProfile(ctx, p); err != nil {
		logging.Error(subsystem, err, "profile update failed")
		return Result{Err: err}
	}
	return Result{}
}
