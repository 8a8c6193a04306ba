// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package server wires the MCP tool surface over the journal stores.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/akaru-cli/akaru/internal/config"
	"github.com/akaru-cli/akaru/internal/display"
	"github.com/akaru-cli/akaru/internal/tools"
)

// MCPServer bundles the mcp-go server with the shared tool context.
type MCPServer struct {
	mcpServer *server.MCPServer
	toolCtx   *tools.ToolContext
}

// NewMCPServer creates the MCP server and registers all tools.
func NewMCPServer(cfg *config.Config) *MCPServer {
	mcpServer := server.NewMCPServer(
		display.AppName,
		display.Version,
		server.WithToolCapabilities(true),
	)

	toolCtx := tools.NewToolContext(cfg)

	mcpServer.AddTool(tools.NewNoteTool(), tools.NoteHandler(toolCtx))
	mcpServer.AddTool(tools.NewTaskTool(), tools.TaskHandler(toolCtx))
	mcpServer.AddTool(tools.NewMoodTool(), tools.MoodHandler(toolCtx))
	mcpServer.AddTool(tools.NewInsightTool(), tools.InsightHandler(toolCtx))
	mcpServer.AddTool(tools.NewSearchTool(), tools.SearchHandler(toolCtx))

	return &MCPServer{
		mcpServer: mcpServer,
		toolCtx:   toolCtx,
	}
}

// ToolContext exposes the stores shared with the tool handlers.
func (s *MCPServer) ToolContext() *tools.ToolContext {
	return s.toolCtx
}

// ServeStdio blocks serving MCP over stdin/stdout.
func (s *MCPServer) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
