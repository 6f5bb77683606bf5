package mcp

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	registrysvc "github.com/alanyang/agent-catalog/internal/service/registry"
)

// Server wraps the mark3labs/mcp-go MCPServer and serves it over stdio.
// The catalog is loaded before the server starts; tools only read.
// Tools are registered in tools.go — adding a tool never changes this file.
type Server struct {
	mcpSrv *mcpserver.MCPServer
}

func New(reg *registrysvc.Registry) *Server {
	mcpSrv := mcpserver.NewMCPServer(
		"agent-catalog",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	RegisterTools(mcpSrv, reg)

	return &Server{mcpSrv: mcpSrv}
}

// ServeStdio blocks serving JSON-RPC over stdin/stdout until the client
// disconnects. Callers must keep stdout clean — log to stderr only.
func (s *Server) ServeStdio() error {
	return mcpserver.ServeStdio(s.mcpSrv)
}
