package toolkit

import (
	"context"
	"fmt"
	"net/http"

	"fnctl/internal/functionapp"
)

var _ functionapp.Backend = (*Client)(nil)
var _ functionapp.ProfileUpdater = (*Client)(nil)

// listQuery excludes soft-deleted apps and expands publish records.
var listQuery = Query{
	"$filter": "Deleted eq null",
	"$expand": "Publishes",
}

// ListFunctionApps fetches the live function apps of a project.
func (c *Client) ListFunctionApps(ctx context.Context, project string) ([]functionapp.FunctionApp, error) {
	var out collection[functionapp.FunctionApp]
	if err := c.do(ctx, http.MethodGet, projectFunctionAppsPath(project), listQuery, nil, &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		return []functionapp.FunctionApp{}, nil
	}
	return out.Items, nil
}

// CreateFunctionApp provisions a new app in a project.
func (c *Client) CreateFunctionApp(ctx context.Context, project string, req functionapp.CreateRequest) (functionapp.FunctionApp, error) {
	var out entity[functionapp.FunctionApp]
	if err := c.do(ctx, http.MethodPost, projectFunctionAppsPath(project), nil, req, &out); err != nil {
		return functionapp.FunctionApp{}, err
	}
	created := out.Item
	if created.Name == "" {
		return functionapp.FunctionApp{}, fmt.Errorf("create %q: backend returned no entity", req.Name)
	}
	return created, nil
}

// DeleteFunctionApp soft-deletes an app by patching its deletion fields.
func (c *Client) DeleteFunctionApp(ctx context.Context, project, name string, req functionapp.DeleteRequest) error {
	return c.do(ctx, http.MethodPatch, functionAppPath(project, name), nil, req, nil)
}

// AddPublish appends a publish record to an app.
func (c *Client) AddPublish(ctx context.Context, project, name string, rec functionapp.PublishRecord) (functionapp.PublishRecord, error) {
	var out entity[functionapp.PublishRecord]
	if err := c.do(ctx, http.MethodPost, publishesPath(project, name), nil, rec, &out); err != nil {
		return functionapp.PublishRecord{}, err
	}
	if out.Item.Name == "" {
		return rec, nil
	}
	return out.Item, nil
}
