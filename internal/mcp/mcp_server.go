// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/whiskerlabs/litterlog/internal/contract"
)

// NewMCPServer initializes and configures the litterlog MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Litterlog Activity Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_report ---
	s.AddTool(mcp.NewTool("get_report",
		mcp.WithDescription("Build the full litter-box summary document: visits, timing, weight trend, personality traits."),
		mcp.WithString("cat_name", mcp.Description("Cat name for the document header.")),
		mcp.WithString("robot_serial", mcp.Description("Robot serial to report on (defaults to the configured robot).")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of activity records to fetch.")),
		mcp.WithBoolean("offline", mcp.Description("Read from the activity cache instead of the vendor API.")),
	), h.handleGetReport)

	// --- 2. Tool: get_visits ---
	s.AddTool(mcp.NewTool("get_visits",
		mcp.WithDescription("Reconstruct individual litter-box visits with weight and clean-cycle duration."),
		mcp.WithString("robot_serial", mcp.Description("Robot serial to report on.")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of activity records to fetch.")),
		mcp.WithBoolean("offline", mcp.Description("Read from the activity cache instead of the vendor API.")),
	), h.handleGetVisits)

	// --- 3. Tool: get_personality ---
	s.AddTool(mcp.NewTool("get_personality",
		mcp.WithDescription("Derive personality trait labels from litter-box visit patterns."),
		mcp.WithString("robot_serial", mcp.Description("Robot serial to report on.")),
		mcp.WithBoolean("offline", mcp.Description("Read from the activity cache instead of the vendor API.")),
	), h.handleGetPersonality)

	return s
}

// StartMCPServer starts the litterlog MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
