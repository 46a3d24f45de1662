// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pulsegen/pulsegen/internal/contract"
)

// NewMCPServer initializes and configures the Pulsegen MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Pulsegen Telemetry Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: synthesize_stream ---
	s.AddTool(mcp.NewTool("synthesize_stream",
		mcp.WithDescription("Synthesize a deterministic heart-rate stream for the given parameters."),
		mcp.WithNumber("duration", mcp.Description("Activity duration in seconds. Defaults to the configured duration.")),
		mcp.WithNumber("sampling", mcp.Description("Sampling interval in seconds.")),
		mcp.WithNumber("resting_bpm", mcp.Description("Resting heart rate floor.")),
		mcp.WithNumber("max_bpm", mcp.Description("Maximum heart rate ceiling.")),
		mcp.WithNumber("interval_intensity", mcp.Description("Probability of an interval burst per sample (0-1).")),
		mcp.WithNumber("dropout", mcp.Description("Probability of a sensor dropout per sample (0-1).")),
		mcp.WithNumber("seed", mcp.Description("Generator seed. The same seed always yields the same stream.")),
	), h.handleSynthesizeStream)

	// --- 2. Tool: preview_activity ---
	s.AddTool(mcp.NewTool("preview_activity",
		mcp.WithDescription("Generate a single activity record (summary plus stream) without writing files."),
		mcp.WithNumber("athlete", mcp.Description("Athlete ID the activity belongs to.")),
		mcp.WithNumber("sequence", mcp.Description("1-based position within the athlete's batch. Defaults to 1.")),
		mcp.WithNumber("duration", mcp.Description("Activity duration in seconds.")),
		mcp.WithNumber("seed", mcp.Description("Base generator seed.")),
	), h.handlePreviewActivity)

	// --- 3. Tool: generate_activities ---
	s.AddTool(mcp.NewTool("generate_activities",
		mcp.WithDescription("Generate activity summaries for a roster of athletes."),
		mcp.WithString("athletes", mcp.Description("Comma-separated athlete IDs, e.g. '101,204,317'.")),
		mcp.WithNumber("count", mcp.Description("Activities per athlete.")),
		mcp.WithNumber("seed", mcp.Description("Base generator seed.")),
		mcp.WithNumber("duration", mcp.Description("Activity duration in seconds.")),
	), h.handleGenerateActivities)

	// --- 4. Tool: store_status ---
	s.AddTool(mcp.NewTool("store_status",
		mcp.WithDescription("Report run tracking store state and row counts."),
	), h.handleStoreStatus)

	return s
}

// StartMCPServer starts the Pulsegen MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
