// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/chakra/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Chakra MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Chakra Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: compute_influences ---
	s.AddTool(mcp.NewTool("compute_influences",
		mcp.WithDescription("Compute the seven chakra activation weights, their normalized influences, the total energy and the dominant signals."),
		mcp.WithNumber("samples", mcp.Description("Number of samples in the time vector (defaults to the configured value).")),
		mcp.WithNumber("start", mcp.Description("Start of the time domain.")),
		mcp.WithNumber("end", mcp.Description("End of the time domain; must be greater than start.")),
	), h.handleComputeInfluences)

	// --- 2. Tool: get_signal ---
	s.AddTool(mcp.NewTool("get_signal",
		mcp.WithDescription("Return the time and value samples of one activation signal."),
		mcp.WithString("name", mcp.Description("Signal name: identifier (E4_Heart), short name (Heart), display name (Third Eye) or index (1-7)."), mcp.Required()),
		mcp.WithNumber("stride", mcp.Description("Keep every n-th sample. Defaults to 1.")),
	), h.handleGetSignal)

	// --- 3. Tool: list_presets ---
	s.AddTool(mcp.NewTool("list_presets",
		mcp.WithDescription("List the named influence presets with their variance against a uniform allocation and dominant signals."),
	), h.handleListPresets)

	return s
}

// StartMCPServer starts the Chakra MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
