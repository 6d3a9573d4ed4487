// ABOUTME: MCP server setup for the medtrack session.
// ABOUTME: Wraps the MCP server with the session engine.
package mcp

import (
	"context"

	"github.com/harperreed/medtrack/internal/state"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with session access.
type Server struct {
	mcpServer *mcp.Server
	session   *state.Session
}

// NewServer creates a new MCP server over the given session.
func NewServer(session *state.Session) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "medtrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		session:   session,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
