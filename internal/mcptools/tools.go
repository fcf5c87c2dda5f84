package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"fnctl/internal/functionapp"
	"fnctl/internal/operations"
	"fnctl/internal/store"
	"fnctl/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// FunctionAppTools provides MCP tools for managing function apps
type FunctionAppTools struct {
	runner   operations.Runner
	store    *store.Store
	uploader functionapp.Uploader
	catalog  functionapp.Catalog
	project  string
}

// NewFunctionAppTools creates the tool set. project is used when a call does
// not name one.
func NewFunctionAppTools(runner operations.Runner, st *store.Store, uploader functionapp.Uploader, catalog functionapp.Catalog, project string) *FunctionAppTools {
	if catalog == nil {
		catalog = functionapp.DefaultCatalog
	}
	return &FunctionAppTools{
		runner:   runner,
		store:    st,
		uploader: uploader,
		catalog:  catalog,
		project:  project,
	}
}

// NewServer creates an MCP server with every tool registered.
func NewServer(version string, tools *FunctionAppTools) *server.MCPServer {
	s := server.NewMCPServer(
		"fnctl",
		version,
		server.WithToolCapabilities(true),
	)
	tools.Register(s)
	return s
}

// Register adds the tools and their handlers to s.
func (ft *FunctionAppTools) Register(s *server.MCPServer) {
	handlers := map[string]server.ToolHandlerFunc{
		"functionapp_list":    ft.HandleList,
		"functionapp_create":  ft.HandleCreate,
		"functionapp_delete":  ft.HandleDelete,
		"functionapp_publish": ft.HandlePublish,
		"runtime_list":        ft.HandleRuntimeList,
	}
	for _, tool := range ft.GetTools() {
		s.AddTool(tool, handlers[tool.Name])
	}
}

// GetTools returns all function app tools
func (ft *FunctionAppTools) GetTools() []mcp.Tool {
	stackKeys := make([]string, 0, len(ft.catalog))
	for _, s := range ft.catalog {
		if !s.Disabled {
			stackKeys = append(stackKeys, s.Key)
		}
	}

	return []mcp.Tool{
		mcp.NewTool("functionapp_list",
			mcp.WithDescription("List the function apps of a project with their publish history"),
			projectParam(),
			mcp.WithString("search",
				mcp.Description("Case-insensitive substring to match against app names"),
			),
		),
		mcp.NewTool("functionapp_create",
			mcp.WithDescription("Provision a new Azure Function App"),
			projectParam(),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Function app name"),
			),
			mcp.WithString("runtime_stack",
				mcp.Required(),
				mcp.Description("Runtime stack key, see runtime_list"),
				mcp.Enum(stackKeys...),
			),
			mcp.WithString("runtime_version",
				mcp.Description("Runtime version key; defaults to the stack's first version"),
			),
		),
		mcp.NewTool("functionapp_delete",
			mcp.WithDescription("Delete a function app"),
			projectParam(),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Function app name to delete"),
			),
		),
		mcp.NewTool("functionapp_publish",
			mcp.WithDescription("Upload a zip package and publish it to a function app"),
			projectParam(),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Function app name to publish to"),
			),
			mcp.WithString("zip_path",
				mcp.Required(),
				mcp.Description("Local path of the .zip package"),
			),
		),
		mcp.NewTool("runtime_list",
			mcp.WithDescription("List the runtime stacks and versions offered for new function apps"),
		),
	}
}

func projectParam() mcp.ToolOption {
	return mcp.WithString("project",
		mcp.Description("Toolkit project name; defaults to the configured project"),
	)
}

func (ft *FunctionAppTools) projectArg(req mcp.CallToolRequest) (string, error) {
	if p, ok := req.GetArguments()["project"].(string); ok && strings.TrimSpace(p) != "" {
		return strings.TrimSpace(p), nil
	}
	if ft.project == "" {
		return "", functionapp.ErrEmptyProject
	}
	return ft.project, nil
}

// HandleList handles the functionapp_list tool call
func (ft *FunctionAppTools) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := ft.projectArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := ft.runner.Fetch(ctx, project); !res.OK() {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list function apps: %v", res.Err)), nil
	}

	search, _ := req.GetArguments()["search"].(string)
	apps := functionapp.Filter(ft.store.All(), search)
	return jsonResult(map[string]interface{}{
		"functionApps": apps,
		"total":        len(apps),
	})
}

// HandleCreate handles the functionapp_create tool call
func (ft *FunctionAppTools) HandleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := ft.projectArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}
	stack, err := req.RequireString("runtime_stack")
	if err != nil {
		return mcp.NewToolResultError("runtime_stack is required"), nil
	}
	version, _ := req.GetArguments()["runtime_version"].(string)

	opt, err := ft.catalog.Resolve(stack, version)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	createReq := functionapp.NewCreateRequest(name, opt)
	if res := ft.runner.Create(ctx, project, createReq); !res.OK() {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create function app: %v", res.Err)), nil
	}

	logging.Info("MCP", "created function app %s in %s", createReq.Name, project)
	return mcp.NewToolResultText(fmt.Sprintf("Successfully created function app '%s' (%s)", createReq.Name, opt.Text)), nil
}

// HandleDelete handles the functionapp_delete tool call
func (ft *FunctionAppTools) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := ft.projectArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}

	if res := ft.runner.Delete(ctx, project, name); !res.OK() {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete function app: %v", res.Err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully deleted function app '%s'", name)), nil
}

// HandlePublish handles the functionapp_publish tool call
func (ft *FunctionAppTools) HandlePublish(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := ft.projectArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}
	zipPath, err := req.RequireString("zip_path")
	if err != nil {
		return mcp.NewToolResultError("zip_path is required"), nil
	}
	if ft.uploader == nil {
		return mcp.NewToolResultError("no upload service configured"), nil
	}

	file, err := ft.uploader.Upload(ctx, project, zipPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to upload %s: %v", zipPath, err)), nil
	}
	if res := ft.runner.Publish(ctx, project, name, file); !res.OK() {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to publish function app: %v", res.Err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully published '%s' to function app '%s'", file.Name, name)), nil
}

// HandleRuntimeList handles the runtime_list tool call
func (ft *FunctionAppTools) HandleRuntimeList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]interface{}{
		"runtimes": ft.catalog,
		"total":    len(ft.catalog),
	})
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
