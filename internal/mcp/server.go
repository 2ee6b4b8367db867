// Package mcp provides a Model Context Protocol server for daydayup.
// It exposes date and duration queries as tools that any MCP-capable agent
// can call.
package mcp

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/daydayup/internal/config"
)

// Env is the configuration shared by every tool call. Per-call arguments
// override it.
type Env struct {
	Settings  config.Settings
	ConfigDir string
	// Now replaces the wall clock when set.
	Now func() time.Time
}

// NewServer creates an MCP server with all daydayup tools registered.
func NewServer(version string, env Env) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "daydayup",
		Version: version,
	}, nil)
	registerTools(server, env)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

func registerTools(server *mcp.Server, env Env) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "query",
		Description: "Answer a date or duration query. Empty input returns facts about today; " +
			"an ISO 8601 duration such as 1DT2H or a millisecond count prefixed with d returns the duration " +
			"and the instants that far before and after now; anything else is parsed as a point in time.",
		Annotations: readOnlyAnnotations(),
	}, handleQuery(env))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify",
		Description: "Report which query mode an input selects without computing results.",
		Annotations: readOnlyAnnotations(),
	}, handleClassify())
}
