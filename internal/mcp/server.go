// ABOUTME: MCP server implementation for hobbies
// ABOUTME: Provides tools, resources, and prompts for AI agents to browse and update the catalogs

package mcp

import (
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/harper/hobbies/internal/app"
)

// Server wraps the MCP server with hobbies-specific context
type Server struct {
	mcpServer *server.MCPServer
	state     *app.State
	now       func() time.Time
}

// NewServer creates a new MCP server instance over the given catalogs
func NewServer(state *app.State, version string) *Server {
	s := &Server{
		state: state,
		now:   time.Now,
	}

	s.mcpServer = server.NewMCPServer(
		"hobbies",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithPromptCapabilities(true),
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// ServeStdio starts the MCP server on stdio
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
