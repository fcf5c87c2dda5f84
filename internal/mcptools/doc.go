// Package mcptools exposes the function app operations as MCP tools so that
// assistants can list, create, delete and publish function apps through
// `fnctl serve`.
package mcptools
